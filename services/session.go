package services

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/lumina-arg/lumina_api/model"
	"github.com/lumina-arg/lumina_api/services/repositories"
)

// SessionService owns the opaque-token session table. Expiry is lazy: Resolve
// refuses stale rows but never deletes them. SweepExpired is the on-demand
// maintenance operation; no background timer runs it.
type SessionService struct {
	context.DefaultService

	sqlSvc      SqlService
	sessionRepo *repositories.SessionRepository
}

const SESSION_SVC = "session_svc"

func (svc SessionService) Id() string {
	return SESSION_SVC
}

func (svc *SessionService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *SessionService) Start() error {
	svc.sqlSvc = svc.Service(SQL_SVC).(SqlService)
	svc.sessionRepo = repositories.NewSessionRepository(svc.sqlSvc.Db())
	return nil
}

// Create upserts the session row, replacing any row with the same token.
func (svc *SessionService) Create(token string, userID uint, payload map[string]interface{}, expiresAt time.Time) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	session := &model.Session{
		ID:        token,
		UserID:    userID,
		Data:      string(data),
		ExpiresAt: expiresAt,
	}
	if err := svc.sessionRepo.UpsertSession(session); err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	return nil
}

// Resolve returns the session and its decoded payload, or (nil, nil, nil)
// when the token is unknown or expired. The two cases are indistinguishable.
func (svc *SessionService) Resolve(token string) (*model.Session, map[string]interface{}, error) {
	session, err := svc.sessionRepo.GetSession(token, time.Now())
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, svc.sqlSvc.HandleError(err)
	}

	payload := map[string]interface{}{}
	if session.Data != "" {
		if err := json.Unmarshal([]byte(session.Data), &payload); err != nil {
			log.WithError(err).WithField("session_id", session.ID).Warn("Corrupt session payload")
			return nil, nil, nil
		}
	}
	return session, payload, nil
}

// Destroy deletes the token unconditionally; absent tokens are not an error.
func (svc *SessionService) Destroy(token string) error {
	if err := svc.sessionRepo.DeleteSession(token); err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	return nil
}

// SweepExpired removes every row past its expiry.
func (svc *SessionService) SweepExpired() (int64, error) {
	removed, err := svc.sessionRepo.DeleteExpired(time.Now())
	if err != nil {
		return 0, svc.sqlSvc.HandleError(err)
	}
	if removed > 0 {
		log.WithField("removed", removed).Info("Swept expired sessions")
	}
	return removed, nil
}
