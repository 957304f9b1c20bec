package repositories

import (
	"time"

	"github.com/lumina-arg/lumina_api/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RateLimitRepository keeps fixed-window counters in the embedded store when
// no Redis instance is configured.
type RateLimitRepository struct {
	BaseRepository
}

func NewRateLimitRepository(db *gorm.DB) *RateLimitRepository {
	return &RateLimitRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// Increment bumps the counter for (key, endpoint), resetting the window when
// it has rolled over, and returns the current window state.
func (ds *RateLimitRepository) Increment(key, endpointType string, windowSize time.Duration, now time.Time) (*model.RateLimitWindow, error) {
	var window model.RateLimitWindow
	err := ds.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}, {Name: "endpoint_type"}},
			DoNothing: true,
		}).Create(&model.RateLimitWindow{
			Key:          key,
			EndpointType: endpointType,
			WindowStart:  now,
			Count:        0,
		}).Error
		if err != nil {
			return err
		}

		if err := tx.Where("key = ? AND endpoint_type = ?", key, endpointType).First(&window).Error; err != nil {
			return err
		}

		if now.Sub(window.WindowStart) >= windowSize {
			window.WindowStart = now
			window.Count = 0
		}
		window.Count++

		return tx.Model(&model.RateLimitWindow{}).
			Where("id = ?", window.ID).
			Updates(map[string]interface{}{
				"window_start":  window.WindowStart,
				"count":         window.Count,
				"blocked_until": window.BlockedUntil,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &window, nil
}

func (ds *RateLimitRepository) Block(key, endpointType string, until time.Time) error {
	return ds.db.Model(&model.RateLimitWindow{}).
		Where("key = ? AND endpoint_type = ?", key, endpointType).
		Update("blocked_until", until).Error
}

func (ds *RateLimitRepository) Get(key, endpointType string) (*model.RateLimitWindow, error) {
	var window model.RateLimitWindow
	if err := ds.db.Where("key = ? AND endpoint_type = ?", key, endpointType).First(&window).Error; err != nil {
		return nil, err
	}
	return &window, nil
}

// Prune drops windows idle past the cutoff.
func (ds *RateLimitRepository) Prune(cutoff time.Time) (int64, error) {
	res := ds.db.Where("window_start < ? AND (blocked_until IS NULL OR blocked_until < ?)", cutoff, cutoff).
		Delete(&model.RateLimitWindow{})
	return res.RowsAffected, res.Error
}
