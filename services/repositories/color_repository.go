package repositories

import (
	"time"

	"github.com/lumina-arg/lumina_api/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ColorRepository handles the bilingual color-reference table.
type ColorRepository struct {
	BaseRepository
}

func NewColorRepository(db *gorm.DB) *ColorRepository {
	return &ColorRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *ColorRepository) Create(color *model.Color) error {
	return ds.db.Create(color).Error
}

func (ds *ColorRepository) List() ([]model.Color, error) {
	var colors []model.Color
	if err := ds.db.Order("eng ASC").Find(&colors).Error; err != nil {
		return nil, err
	}
	return colors, nil
}

func (ds *ColorRepository) Get(id uint) (*model.Color, error) {
	var color model.Color
	if err := ds.db.Where("id = ?", id).First(&color).Error; err != nil {
		return nil, err
	}
	return &color, nil
}

func (ds *ColorRepository) GetByEng(eng string) (*model.Color, error) {
	var color model.Color
	if err := ds.db.Where("eng = ?", eng).First(&color).Error; err != nil {
		return nil, err
	}
	return &color, nil
}

func (ds *ColorRepository) GetBySp(sp string) (*model.Color, error) {
	var color model.Color
	if err := ds.db.Where("sp = ?", sp).First(&color).Error; err != nil {
		return nil, err
	}
	return &color, nil
}

func (ds *ColorRepository) Update(color *model.Color) (int64, error) {
	color.UpdatedAt = time.Now()
	res := ds.db.Model(&model.Color{}).
		Where("id = ?", color.ID).
		Updates(map[string]interface{}{"eng": color.Eng, "sp": color.Sp, "updated_at": color.UpdatedAt})
	return res.RowsAffected, res.Error
}

func (ds *ColorRepository) Delete(id uint) (int64, error) {
	res := ds.db.Where("id = ?", id).Delete(&model.Color{})
	return res.RowsAffected, res.Error
}

func (ds *ColorRepository) SearchByEng(term string) ([]model.Color, error) {
	var colors []model.Color
	if err := ds.db.Where("eng LIKE ?", "%"+term+"%").Order("eng ASC").Find(&colors).Error; err != nil {
		return nil, err
	}
	return colors, nil
}

func (ds *ColorRepository) SearchBySp(term string) ([]model.Color, error) {
	var colors []model.Color
	if err := ds.db.Where("sp LIKE ?", "%"+term+"%").Order("eng ASC").Find(&colors).Error; err != nil {
		return nil, err
	}
	return colors, nil
}

func (ds *ColorRepository) Count() (int64, error) {
	var count int64
	err := ds.db.Model(&model.Color{}).Count(&count).Error
	return count, err
}

// BulkUpsert inserts or refreshes colors by their unique English name inside
// one transaction, so seeding is idempotent.
func (ds *ColorRepository) BulkUpsert(colors []model.Color) error {
	return ds.db.Transaction(func(tx *gorm.DB) error {
		for i := range colors {
			colors[i].UpdatedAt = time.Now()
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "eng"}},
				DoUpdates: clause.AssignmentColumns([]string{"sp", "updated_at"}),
			}).Create(&colors[i]).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
