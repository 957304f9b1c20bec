package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/lumina-arg/lumina_api/services/repositories"
)

// RateLimitService enforces fixed-window limits on the auth endpoints.
// Counters live in Redis when configured, otherwise in the embedded store,
// so a single-node deployment needs nothing extra.
type RateLimitService struct {
	appContext.DefaultService

	configs map[string]*RateLimitConfig
	mutex   sync.RWMutex
	closed  chan struct{}

	sqlSvc   SqlService
	redisSvc *RedisService

	rateRepo *repositories.RateLimitRepository
}

// RateLimitConfig represents rate limiting configuration
type RateLimitConfig struct {
	EndpointType string
	MaxRequests  int
	WindowSize   time.Duration
	BlockTime    time.Duration
	Description  string
	IsActive     bool
}

const RATE_LIMIT_SVC = "rate_limit_svc"

func (svc RateLimitService) Id() string {
	return RATE_LIMIT_SVC
}

func (svc *RateLimitService) Configure(ctx *appContext.Context) error {
	svc.configs = make(map[string]*RateLimitConfig)
	return svc.DefaultService.Configure(ctx)
}

func (svc *RateLimitService) Start() error {
	svc.closed = make(chan struct{}, 1)

	svc.sqlSvc = svc.Service(SQL_SVC).(SqlService)
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	svc.rateRepo = repositories.NewRateLimitRepository(svc.sqlSvc.Db())
	svc.initDefaultConfigs()

	go svc.startCleanupJob()

	return nil
}

func (svc *RateLimitService) Shutdown() {
	svc.closed <- struct{}{}
}

func (svc *RateLimitService) initDefaultConfigs() {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	svc.configs = map[string]*RateLimitConfig{
		"login": {
			EndpointType: "login",
			MaxRequests:  10,
			WindowSize:   15 * time.Minute,
			BlockTime:    30 * time.Minute,
			Description:  "Login attempts rate limit",
			IsActive:     true,
		},
		"register": {
			EndpointType: "register",
			MaxRequests:  5,
			WindowSize:   15 * time.Minute,
			BlockTime:    60 * time.Minute,
			Description:  "Registration rate limit",
			IsActive:     true,
		},
		"admin_login": {
			EndpointType: "admin_login",
			MaxRequests:  5,
			WindowSize:   15 * time.Minute,
			BlockTime:    60 * time.Minute,
			Description:  "Operator login rate limit",
			IsActive:     true,
		},
	}
}

// Allow reports whether the caller identified by key may hit the endpoint,
// and when not, how long until it may retry.
func (svc *RateLimitService) Allow(endpointType, key string) (bool, time.Duration, error) {
	svc.mutex.RLock()
	config, ok := svc.configs[endpointType]
	svc.mutex.RUnlock()

	if !ok || !config.IsActive {
		return true, 0, nil
	}

	if svc.redisSvc.Enabled() {
		return svc.allowRedis(config, key)
	}
	return svc.allowStore(config, key)
}

func (svc *RateLimitService) allowRedis(config *RateLimitConfig, key string) (bool, time.Duration, error) {
	ctx := context.Background()
	counterKey := fmt.Sprintf("ratelimit:%s:%s", config.EndpointType, key)

	count, err := svc.redisSvc.IncrWithWindow(ctx, counterKey, config.WindowSize)
	if err != nil {
		log.WithError(err).Warn("Redis rate limit check failed, allowing request")
		return true, 0, nil
	}

	if count > int64(config.MaxRequests) {
		return false, config.BlockTime, nil
	}
	return true, 0, nil
}

func (svc *RateLimitService) allowStore(config *RateLimitConfig, key string) (bool, time.Duration, error) {
	now := time.Now()

	if window, err := svc.rateRepo.Get(key, config.EndpointType); err == nil {
		if window.BlockedUntil != nil && window.BlockedUntil.After(now) {
			return false, window.BlockedUntil.Sub(now), nil
		}
	}

	window, err := svc.rateRepo.Increment(key, config.EndpointType, config.WindowSize, now)
	if err != nil {
		return false, 0, svc.sqlSvc.HandleError(err)
	}

	if window.Count > config.MaxRequests {
		until := now.Add(config.BlockTime)
		if err := svc.rateRepo.Block(key, config.EndpointType, until); err != nil {
			log.WithError(err).Warn("Failed to record rate limit block")
		}
		return false, config.BlockTime, nil
	}
	return true, 0, nil
}

func (svc *RateLimitService) startCleanupJob() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-24 * time.Hour)
			removed, err := svc.rateRepo.Prune(cutoff)
			if err != nil {
				log.WithError(err).Warn("Rate limit cleanup failed")
				continue
			}
			if removed > 0 {
				log.WithField("removed", removed).Debug("Pruned stale rate limit windows")
			}
		case <-svc.closed:
			return
		}
	}
}
