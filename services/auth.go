package services

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/lumina-arg/lumina_api/dto"
	"github.com/lumina-arg/lumina_api/model"
	"github.com/lumina-arg/lumina_api/services/repositories"
	"github.com/lumina-arg/lumina_api/shared"
)

// AuthService handles registration, login and logout. Player credentials are
// stored and compared verbatim: the operator console deliberately exposes
// them as part of the game fiction, so there is nothing to protect by
// hashing. The operator account itself is hashed (see AdminService).
type AuthService struct {
	context.DefaultService

	sqlSvc     SqlService
	sessionSvc *SessionService
	unlockSvc  *UnlockService
	monitorSvc *MonitoringService

	userRepo *repositories.UserRepository
}

const AUTH_SVC = "auth_svc"

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthService) Start() error {
	svc.sqlSvc = svc.Service(SQL_SVC).(SqlService)
	svc.sessionSvc = svc.Service(SESSION_SVC).(*SessionService)
	svc.unlockSvc = svc.Service(UNLOCK_SVC).(*UnlockService)
	if m, ok := svc.Service(MONITORING_SVC).(*MonitoringService); ok {
		svc.monitorSvc = m
	}
	svc.userRepo = repositories.NewUserRepository(svc.sqlSvc.Db())
	return nil
}

// Register creates the account and its unlock row. A fresh account has no
// contacts; the tutorial thread appears when the messages app is unlocked
// (see UnlockService).
func (svc *AuthService) Register(req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if _, err := svc.userRepo.GetUserByUsername(req.Username); err == nil {
		return nil, shared.NewConflictError("Username already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, svc.sqlSvc.HandleError(err)
	}

	user := &model.User{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		CreatedAt: time.Now(),
	}
	if err := svc.userRepo.CreateUser(user); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	if err := svc.unlockSvc.Ensure(user.Username); err != nil {
		log.WithError(err).WithField("username", user.Username).Error("Failed to provision unlock row")
	}

	return &dto.RegisterResponse{ID: user.ID, Username: user.Username}, nil
}

// Login verifies the credential and mints a 7-day session. Unknown usernames
// and wrong passwords yield the same error.
func (svc *AuthService) Login(req dto.LoginRequest) (*dto.LoginResponse, string, error) {
	user, err := svc.userRepo.GetUserByUsername(req.Username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", shared.NewUnauthorizedError("Invalid username or password")
	}
	if err != nil {
		return nil, "", svc.sqlSvc.HandleError(err)
	}

	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(req.Password)) != 1 {
		return nil, "", shared.NewUnauthorizedError("Invalid username or password")
	}

	token, err := uuid.NewV7()
	if err != nil {
		return nil, "", shared.NewInternalError(err)
	}

	payload := map[string]interface{}{
		"username": user.Username,
		"userId":   user.ID,
	}
	expiresAt := time.Now().Add(shared.SessionTTL)
	if err := svc.sessionSvc.Create(token.String(), user.ID, payload, expiresAt); err != nil {
		return nil, "", err
	}

	if svc.monitorSvc != nil {
		svc.monitorSvc.RecordSessionIssued()
	}

	log.WithFields(log.Fields{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("User logged in")

	return &dto.LoginResponse{
		User: dto.UserInfo{ID: user.ID, Username: user.Username},
	}, token.String(), nil
}

// Logout destroys the session; a missing or stale token is still a success.
func (svc *AuthService) Logout(token string) error {
	return svc.sessionSvc.Destroy(token)
}
