package services

import (
	"errors"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"gorm.io/gorm"

	"github.com/lumina-arg/lumina_api/dto"
	"github.com/lumina-arg/lumina_api/model"
	"github.com/lumina-arg/lumina_api/services/repositories"
	"github.com/lumina-arg/lumina_api/shared"
)

// UserService serves the legacy users listing and the global message board,
// both predating the chat module and kept for the older app surfaces.
type UserService struct {
	context.DefaultService

	sqlSvc SqlService

	userRepo    *repositories.UserRepository
	messageRepo *repositories.MessageRepository
}

const USER_SVC = "user_svc"

func (svc UserService) Id() string {
	return USER_SVC
}

func (svc *UserService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *UserService) Start() error {
	svc.sqlSvc = svc.Service(SQL_SVC).(SqlService)
	db := svc.sqlSvc.Db()
	svc.userRepo = repositories.NewUserRepository(db)
	svc.messageRepo = repositories.NewMessageRepository(db)
	return nil
}

// ==================== USERS ====================

func (svc *UserService) ListUsers() ([]dto.UserResponse, error) {
	users, err := svc.userRepo.ListUsers()
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, mapUser(u))
	}
	return out, nil
}

func (svc *UserService) GetUser(id uint) (*dto.UserResponse, error) {
	user, err := svc.userRepo.GetUser(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.NewNotFoundError("User not found")
	}
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	resp := mapUser(*user)
	return &resp, nil
}

func (svc *UserService) GetUserByUsername(username string) (*dto.UserResponse, error) {
	user, err := svc.userRepo.GetUserByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.NewNotFoundError("User not found")
	}
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	resp := mapUser(*user)
	return &resp, nil
}

// CreateUser is the legacy passwordless create kept for the old users
// surface; registration with a credential lives in AuthService.
func (svc *UserService) CreateUser(req dto.CreateUserRequest) (*dto.UserResponse, error) {
	if _, err := svc.userRepo.GetUserByUsername(req.Username); err == nil {
		return nil, shared.NewConflictError("Username already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, svc.sqlSvc.HandleError(err)
	}

	user := &model.User{
		Username:  strings.TrimSpace(req.Username),
		Email:     req.Email,
		CreatedAt: time.Now(),
	}
	if err := svc.userRepo.CreateUser(user); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	resp := mapUser(*user)
	return &resp, nil
}

// ==================== MESSAGE BOARD ====================

func (svc *UserService) ListBoardMessages(limit int) ([]dto.BoardMessageResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	messages, err := svc.messageRepo.ListBoardMessages(limit)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	out := make([]dto.BoardMessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, dto.BoardMessageResponse{
			ID:        m.ID,
			UserID:    m.UserID,
			Username:  m.Username,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}

func (svc *UserService) CreateBoardMessage(req dto.CreateBoardMessageRequest) (*dto.BoardMessageResponse, error) {
	message := &model.Message{
		UserID:    req.UserID,
		Content:   strings.TrimSpace(req.Content),
		CreatedAt: time.Now(),
	}
	if err := svc.messageRepo.CreateBoardMessage(message); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	return &dto.BoardMessageResponse{
		ID:        message.ID,
		UserID:    message.UserID,
		Content:   message.Content,
		CreatedAt: message.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (svc *UserService) DeleteBoardMessage(id uint) error {
	if err := svc.messageRepo.DeleteBoardMessage(id); err != nil {
		return svc.sqlSvc.HandleError(err)
	}
	return nil
}

func mapUser(u model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
