package handlers

import (
	"github.com/lumina-arg/lumina_api/dto"
)

type AuthServiceInterface interface {
	Register(req dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(req dto.LoginRequest) (*dto.LoginResponse, string, error)
	Logout(token string) error
}

type ChatServiceInterface interface {
	GetContacts(userID uint) ([]dto.ContactResponse, error)
	GetContact(contactID, userID uint) (*dto.ContactResponse, error)
	CreateContact(userID uint, req dto.CreateContactRequest) (*dto.ContactResponse, error)
	GetMessages(contactID, userID uint, limit int) ([]dto.MessageResponse, error)
	CreateMessage(userID uint, req dto.CreateMessageRequest) (*dto.MessageResponse, error)
	DeleteMessage(messageID, userID uint) error
	ClearMessages(contactID, userID uint) error
	UnreadCount(contactID, userID uint) (int64, error)
	TotalUnreadCount(userID uint) (int64, error)
}

type PhotoActionServiceInterface interface {
	CreateOrUpdate(userID uint, req dto.CreatePhotoActionRequest) (*dto.PhotoActionMutationResponse, error)
	SetDone(userID uint, action int) error
	List(userID uint) ([]dto.PhotoActionResponse, error)
	DeleteOne(actionID, userID uint) error
	DeleteAll(userID uint) (int64, error)
}

type UnlockServiceInterface interface {
	Get(username string) (*dto.UnlockResponse, error)
	Update(username string, req dto.UpdateUnlockRequest) (*dto.UnlockResponse, error)
}

type ColorServiceInterface interface {
	List() ([]dto.ColorResponse, error)
	Get(id uint) (*dto.ColorResponse, error)
	Create(req dto.CreateColorRequest) (*dto.ColorResponse, error)
	Update(id uint, req dto.UpdateColorRequest) (*dto.ColorResponse, error)
	Delete(id uint) error
	Search(eng, sp string) ([]dto.ColorResponse, error)
}

type UserServiceInterface interface {
	ListUsers() ([]dto.UserResponse, error)
	GetUser(id uint) (*dto.UserResponse, error)
	GetUserByUsername(username string) (*dto.UserResponse, error)
	CreateUser(req dto.CreateUserRequest) (*dto.UserResponse, error)
	ListBoardMessages(limit int) ([]dto.BoardMessageResponse, error)
	CreateBoardMessage(req dto.CreateBoardMessageRequest) (*dto.BoardMessageResponse, error)
	DeleteBoardMessage(id uint) error
}

type AdminServiceInterface interface {
	Login(req dto.AdminLoginRequest) (*dto.AdminLoginResponse, error)
	ListTables() ([]dto.TableInfo, error)
	BrowseTable(table string, limit int) (*dto.TableData, error)
	ExecSQL(req dto.SQLRequest) (*dto.SQLResult, error)
	InsertRow(req dto.InsertRowRequest) (*dto.MutationResult, error)
	UpdateRow(req dto.UpdateRowRequest) (*dto.MutationResult, error)
	DeleteRow(req dto.DeleteRowRequest) (*dto.MutationResult, error)
}
