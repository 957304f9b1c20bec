package repositories

import (
	"github.com/lumina-arg/lumina_api/model"
	"gorm.io/gorm"
)

// UserRepository handles account rows. Accounts are create-only: no update or
// delete path exists in normal flow.
type UserRepository struct {
	BaseRepository
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *UserRepository) GetUser(userID uint) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (ds *UserRepository) GetUserByUsername(username string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (ds *UserRepository) ListUsers() ([]model.User, error) {
	var users []model.User
	if err := ds.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (ds *UserRepository) CreateUser(user *model.User) error {
	return ds.db.Create(user).Error
}
