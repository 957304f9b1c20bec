package repositories

import (
	"github.com/lumina-arg/lumina_api/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PhotoActionRepository handles the per-account action checklist. The
// (user_id, action) unique index turns creation into an atomic upsert, so two
// concurrent creates for the same pair can never produce two rows.
type PhotoActionRepository struct {
	BaseRepository
}

func NewPhotoActionRepository(db *gorm.DB) *PhotoActionRepository {
	return &PhotoActionRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// Upsert inserts the pair or, on conflict, overwrites done with the supplied
// value. Writing an unchanged done is harmless.
func (ds *PhotoActionRepository) Upsert(action *model.PhotoAction) error {
	return ds.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "action"}},
		DoUpdates: clause.AssignmentColumns([]string{"done"}),
	}).Create(action).Error
}

func (ds *PhotoActionRepository) Get(userID uint, action int) (*model.PhotoAction, error) {
	var row model.PhotoAction
	if err := ds.db.Where("user_id = ? AND action = ?", userID, action).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (ds *PhotoActionRepository) List(userID uint) ([]model.PhotoAction, error) {
	var rows []model.PhotoAction
	if err := ds.db.Where("user_id = ?", userID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SetDone forces the pair to done; repeating it changes nothing.
func (ds *PhotoActionRepository) SetDone(userID uint, action int) (int64, error) {
	res := ds.db.Model(&model.PhotoAction{}).
		Where("user_id = ? AND action = ?", userID, action).
		Update("done", true)
	return res.RowsAffected, res.Error
}

func (ds *PhotoActionRepository) DeleteOne(actionID, userID uint) (int64, error) {
	res := ds.db.Where("id = ? AND user_id = ?", actionID, userID).Delete(&model.PhotoAction{})
	return res.RowsAffected, res.Error
}

func (ds *PhotoActionRepository) DeleteAll(userID uint) (int64, error) {
	res := ds.db.Where("user_id = ?", userID).Delete(&model.PhotoAction{})
	return res.RowsAffected, res.Error
}
