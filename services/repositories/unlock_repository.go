package repositories

import (
	"github.com/lumina-arg/lumina_api/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UnlockRepository handles the one-row-per-account app-unlock flags.
type UnlockRepository struct {
	BaseRepository
}

func NewUnlockRepository(db *gorm.DB) *UnlockRepository {
	return &UnlockRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// Ensure provisions the row with all flags off. Calling it again for the same
// username leaves the existing row alone.
func (ds *UnlockRepository) Ensure(username string) error {
	return ds.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoNothing: true,
	}).Create(&model.UnlockApp{Username: username}).Error
}

func (ds *UnlockRepository) Get(username string) (*model.UnlockApp, error) {
	var row model.UnlockApp
	if err := ds.db.Where("username = ?", username).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateFields writes only the supplied columns.
func (ds *UnlockRepository) UpdateFields(username string, fields map[string]interface{}) (int64, error) {
	res := ds.db.Model(&model.UnlockApp{}).
		Where("username = ?", username).
		Updates(fields)
	return res.RowsAffected, res.Error
}
