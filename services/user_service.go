package services

import (
	"errors"
	"time"

	"github.com/clockwisehq/workforce-go/dto"
	"github.com/clockwisehq/workforce-go/middleware"
	"github.com/clockwisehq/workforce-go/models"
	"github.com/clockwisehq/workforce-go/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type UserService struct {
	Repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) RegisterUser(input dto.CreateUserInput) error {
	_, err := s.Repos.User.GetByUsername(input.Username)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Username:  input.Username,
		Password:  string(hashed),
		Email:     input.Email,
		FullName:  input.FullName,
		ManagerID: input.ManagerID,
		Role:      models.UserRoleEmployee,
		Status:    models.UserStatusActive,
	}
	return s.Repos.User.Create(&user)
}

func (s *UserService) LoginUser(username, password string) (models.User, string, bool, error) {
	user, err := s.Repos.User.GetByUsername(username)
	if err != nil {
		return models.User{}, "", false, ErrInvalidCredentials
	}

	if user.Status != models.UserStatusActive {
		return models.User{}, "", false, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, "", false, ErrInvalidCredentials
	}

	isAdmin := user.Role == models.UserRoleAdmin
	token, err := middleware.GenerateToken(user.UID, user.Username, isAdmin, 24*time.Hour)
	if err != nil {
		return models.User{}, "", false, err
	}

	return user, token, isAdmin, nil
}

func (s *UserService) GetUser(id uint) (models.User, error) {
	return s.Repos.User.GetByID(id)
}

func (s *UserService) ListUsers() ([]models.User, error) {
	return s.Repos.User.List()
}
