package services

import (
	"errors"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/lumina-arg/lumina_api/dto"
	"github.com/lumina-arg/lumina_api/services/repositories"
	"github.com/lumina-arg/lumina_api/shared"
)

// UnlockService manages the per-account app-unlock flags. Updates are
// partial: only fields the caller supplies are written. Unlocking the
// messages app provisions the account's tutorial thread.
type UnlockService struct {
	context.DefaultService

	sqlSvc  SqlService
	chatSvc *ChatService

	unlockRepo *repositories.UnlockRepository
	userRepo   *repositories.UserRepository
}

const UNLOCK_SVC = "unlock_svc"

func (svc UnlockService) Id() string {
	return UNLOCK_SVC
}

func (svc *UnlockService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *UnlockService) Start() error {
	svc.sqlSvc = svc.Service(SQL_SVC).(SqlService)
	svc.chatSvc = svc.Service(CHAT_SVC).(*ChatService)
	svc.unlockRepo = repositories.NewUnlockRepository(svc.sqlSvc.Db())
	svc.userRepo = repositories.NewUserRepository(svc.sqlSvc.Db())
	return nil
}

// Ensure provisions the row idempotently; called at registration.
func (svc *UnlockService) Ensure(username string) error {
	if err := svc.unlockRepo.Ensure(username); err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	return nil
}

func (svc *UnlockService) Get(username string) (*dto.UnlockResponse, error) {
	row, err := svc.unlockRepo.Get(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.NewNotFoundError("Not found")
	}
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	return &dto.UnlockResponse{
		Username:      row.Username,
		Messages:      row.Messages,
		Gallery:       row.Gallery,
		MessagePreset: row.MessagePreset,
		MessageDone:   row.MessageDone,
	}, nil
}

func (svc *UnlockService) Update(username string, req dto.UpdateUnlockRequest) (*dto.UnlockResponse, error) {
	fields := map[string]interface{}{}
	if req.Messages != nil {
		fields["messages"] = *req.Messages
	}
	if req.Gallery != nil {
		fields["gallery"] = *req.Gallery
	}
	if req.MessagePreset != nil {
		fields["message_preset"] = *req.MessagePreset
	}
	if req.MessageDone != nil {
		fields["message_done"] = *req.MessageDone
	}

	if len(fields) > 0 {
		affected, err := svc.unlockRepo.UpdateFields(username, fields)
		if err != nil {
			return nil, svc.sqlSvc.HandleError(err)
		}
		if affected == 0 {
			return nil, shared.NewNotFoundError("Not found")
		}
	}

	if req.Messages != nil && *req.Messages {
		svc.provisionTutorial(username)
	}

	return svc.Get(username)
}

// provisionTutorial seeds the tutorial thread when the messages app unlocks.
// Seeding is idempotent, so repeated unlocks are harmless. A failure is
// logged rather than failing the unlock itself.
func (svc *UnlockService) provisionTutorial(username string) {
	user, err := svc.userRepo.GetUserByUsername(username)
	if err != nil {
		log.WithError(err).WithField("username", username).Error("Failed to resolve account for tutorial seed")
		return
	}
	if err := svc.chatSvc.SeedTutorialContact(user.ID); err != nil {
		log.WithError(err).WithField("user_id", user.ID).Error("Failed to seed tutorial contact")
	}
}
