package model

import "time"

// RateLimitWindow is the sqlite fallback for rate-limit counters when no
// Redis instance is configured.
type RateLimitWindow struct {
	ID           uint      `gorm:"primaryKey"`
	Key          string    `gorm:"uniqueIndex:idx_rate_limit_key_endpoint;not null"`
	EndpointType string    `gorm:"uniqueIndex:idx_rate_limit_key_endpoint;not null"`
	WindowStart  time.Time `gorm:"index"`
	Count        int
	BlockedUntil *time.Time
}
