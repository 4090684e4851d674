package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/SHARMA1525/v0-campus-map-integration/internal/auth"
	"github.com/SHARMA1525/v0-campus-map-integration/internal/domain"
	userDomain "github.com/SHARMA1525/v0-campus-map-integration/internal/domain/user"
)

// RegisterRequest holds the data needed to create a campus account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=60"`
	Password string `json:"password" binding:"required,min=6"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// LoginRequest holds login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserDTO is the response representation of an account.
type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenDTO is the login response.
type TokenDTO struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// UserService handles account registration and login.
type UserService struct {
	repo       userDomain.UserRepository
	jwtManager *auth.JWTManager
	logger     *zap.Logger
}

// NewUserService creates a new UserService.
func NewUserService(repo userDomain.UserRepository, jwtManager *auth.JWTManager, logger *zap.Logger) *UserService {
	return &UserService{
		repo:       repo,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// Register creates a new student account.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*UserDTO, error) {
	if _, err := s.repo.FindByUsername(ctx, req.Username); err == nil {
		return nil, domain.NewConflictError("username already taken")
	} else if !isNotFound(err) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u, err := userDomain.NewUser(req.Username, string(hash), req.Email)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.String("username", u.Username()))
	result := toUserDTO(u)
	return &result, nil
}

// Login verifies credentials and issues an access token.
func (s *UserService) Login(ctx context.Context, req LoginRequest) (*TokenDTO, error) {
	u, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.NewUnauthorizedError("invalid username or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash()), []byte(req.Password)); err != nil {
		return nil, domain.NewUnauthorizedError("invalid username or password")
	}

	token, err := s.jwtManager.Generate(u.ID(), u.Username(), u.Role())
	if err != nil {
		return nil, err
	}

	return &TokenDTO{
		Token:    token,
		Username: u.Username(),
		Role:     u.Role(),
	}, nil
}

func isNotFound(err error) bool {
	var domainErr *domain.Error
	return errors.As(err, &domainErr) && domainErr.Code == domain.CodeNotFound
}

func toUserDTO(u *userDomain.User) UserDTO {
	return UserDTO{
		ID:        u.ID(),
		Username:  u.Username(),
		Email:     u.Email(),
		Role:      u.Role(),
		CreatedAt: u.CreatedAt(),
	}
}
