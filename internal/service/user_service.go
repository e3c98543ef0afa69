package service

import (
	"github.com/investdash/investment-dashboard-backend/internal/apperrors"
	"github.com/investdash/investment-dashboard-backend/internal/model"
	"github.com/investdash/investment-dashboard-backend/internal/repository"
)

// UserService handles user-related business logic operations.
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService creates a new UserService with the provided repository dependency.
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUser creates a new user.
func (s *UserService) CreateUser(name, email string) (model.User, error) {
	if name == "" || email == "" {
		return model.User{}, apperrors.ErrMissingRequiredField
	}
	return s.userRepo.CreateUser(name, email)
}

// GetUser retrieves a single user by ID.
func (s *UserService) GetUser(userID int64) (model.User, error) {
	return s.userRepo.GetUser(userID)
}

// GetUsers retrieves all users.
func (s *UserService) GetUsers() ([]model.User, error) {
	return s.userRepo.GetUsers()
}
