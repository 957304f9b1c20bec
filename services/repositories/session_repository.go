package repositories

import (
	"time"

	"github.com/lumina-arg/lumina_api/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionRepository handles login-session rows. Expiry is lazy: lookups
// filter out expired rows, nothing deletes them automatically.
type SessionRepository struct {
	BaseRepository
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// UpsertSession replaces any existing row with the same token.
func (ds *SessionRepository) UpsertSession(session *model.Session) error {
	return ds.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(session).Error
}

// GetSession returns gorm.ErrRecordNotFound for absent AND expired tokens so
// the two are indistinguishable upstream. It never mutates on read.
func (ds *SessionRepository) GetSession(token string, now time.Time) (*model.Session, error) {
	var session model.Session
	if err := ds.db.Where("id = ? AND expires_at > ?", token, now).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteSession is idempotent; deleting an absent token is not an error.
func (ds *SessionRepository) DeleteSession(token string) error {
	return ds.db.Where("id = ?", token).Delete(&model.Session{}).Error
}

// DeleteExpired removes every row past its expiry and reports how many went.
func (ds *SessionRepository) DeleteExpired(now time.Time) (int64, error) {
	res := ds.db.Where("expires_at <= ?", now).Delete(&model.Session{})
	return res.RowsAffected, res.Error
}
