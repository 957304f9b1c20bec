package services

import (
	"errors"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/lumina-arg/lumina_api/dto"
	"github.com/lumina-arg/lumina_api/model"
	"github.com/lumina-arg/lumina_api/services/repositories"
	"github.com/lumina-arg/lumina_api/shared"
)

// PhotoActionService manages the per-account action checklist. Each
// (account, action-code) pair is either pending or done. Creation goes
// through an upsert guarded by the composite unique index, so concurrent
// creates for the same pair collapse into one row.
type PhotoActionService struct {
	context.DefaultService

	sqlSvc     SqlService
	monitorSvc *MonitoringService

	actionRepo *repositories.PhotoActionRepository
}

const PHOTO_ACTION_SVC = "photo_action_svc"

func (svc PhotoActionService) Id() string {
	return PHOTO_ACTION_SVC
}

func (svc *PhotoActionService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *PhotoActionService) Start() error {
	svc.sqlSvc = svc.Service(SQL_SVC).(SqlService)
	if m, ok := svc.Service(MONITORING_SVC).(*MonitoringService); ok {
		svc.monitorSvc = m
	}
	svc.actionRepo = repositories.NewPhotoActionRepository(svc.sqlSvc.Db())
	return nil
}

func (svc *PhotoActionService) recordOutcome(outcome string) {
	if svc.monitorSvc != nil {
		svc.monitorSvc.RecordPhotoAction(outcome)
	}
}

// CreateOrUpdate is the checklist write path. A new pair is inserted in the
// requested state; an existing pair transitions when the supplied done
// differs and no-ops otherwise. A done→pending transition is accepted but
// logged, since only the story engine should ever rewind an action.
func (svc *PhotoActionService) CreateOrUpdate(userID uint, req dto.CreatePhotoActionRequest) (*dto.PhotoActionMutationResponse, error) {
	done := req.Done != nil && *req.Done

	existing, err := svc.actionRepo.Get(userID, req.Action)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, svc.sqlSvc.HandleError(err)
	}

	if existing != nil && existing.Done == done {
		svc.recordOutcome("exists")
		return &dto.PhotoActionMutationResponse{
			Success:  true,
			Message:  "Photo action already exists",
			ActionID: existing.ID,
			Exists:   true,
		}, nil
	}

	if existing != nil && existing.Done && !done {
		log.WithFields(log.Fields{
			"user_id": userID,
			"action":  req.Action,
		}).Warn("Photo action rewound from done to pending")
	}

	row := &model.PhotoAction{
		UserID: userID,
		Action: req.Action,
		Done:   done,
	}
	if err := svc.actionRepo.Upsert(row); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	if existing != nil {
		svc.recordOutcome("updated")
		return &dto.PhotoActionMutationResponse{
			Success:  true,
			Message:  "Photo action updated",
			ActionID: existing.ID,
			Updated:  true,
		}, nil
	}

	created, err := svc.actionRepo.Get(userID, req.Action)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	svc.recordOutcome("created")
	return &dto.PhotoActionMutationResponse{
		Success:  true,
		Message:  "Photo action created",
		ActionID: created.ID,
		Created:  true,
	}, nil
}

// SetDone forces the pair to done; idempotent. Unknown pairs read as absent.
func (svc *PhotoActionService) SetDone(userID uint, action int) error {
	affected, err := svc.actionRepo.SetDone(userID, action)
	if err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	if affected == 0 {
		if _, err := svc.actionRepo.Get(userID, action); errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.NewNotFoundError("Photo action not found")
		}
	}
	return nil
}

func (svc *PhotoActionService) List(userID uint) ([]dto.PhotoActionResponse, error) {
	rows, err := svc.actionRepo.List(userID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	actions := make([]dto.PhotoActionResponse, 0, len(rows))
	for _, row := range rows {
		actions = append(actions, dto.PhotoActionResponse{
			ActionID: row.ID,
			UserID:   row.UserID,
			Action:   row.Action,
			Done:     row.Done,
		})
	}
	return actions, nil
}

func (svc *PhotoActionService) DeleteOne(actionID, userID uint) error {
	affected, err := svc.actionRepo.DeleteOne(actionID, userID)
	if err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	if affected == 0 {
		return shared.NewNotFoundError("Photo action not found")
	}
	return nil
}

func (svc *PhotoActionService) DeleteAll(userID uint) (int64, error) {
	removed, err := svc.actionRepo.DeleteAll(userID)
	if err != nil {
		return 0, svc.sqlSvc.HandleError(err)
	}
	return removed, nil
}
