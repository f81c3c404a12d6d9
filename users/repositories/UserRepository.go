package repositories

import (
	"errors"
	"fmt"

	"inspection-backend/db/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(user *models.User) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	UpdateUser(user *models.User) (*models.User, error)
	DeleteUser(id uint) error
}

type userRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{DB: db}
}

func (ur *userRepository) CreateUser(user *models.User) (*models.User, error) {
	if err := ur.DB.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (ur *userRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := ur.DB.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return &user, nil
}

func (ur *userRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := ur.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

func (ur *userRepository) GetAllUsers() ([]models.User, error) {
	var users []models.User
	if err := ur.DB.Order("full_name").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}

func (ur *userRepository) UpdateUser(user *models.User) (*models.User, error) {
	if err := ur.DB.Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user %d: %w", user.ID, err)
	}
	return user, nil
}

func (ur *userRepository) DeleteUser(id uint) error {
	if err := ur.DB.Delete(&models.User{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}
