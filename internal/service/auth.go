package service

import (
	"context"
	"errors"

	"library-service-backend/internal/domain"
	"library-service-backend/internal/repository"
	"library-service-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned on a failed login; it deliberately does
// not distinguish an unknown email from a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, email, name, password string) (*domain.User, error) {
	if email == "" {
		return nil, &domain.ValidationError{Field: "email", Message: "email is required"}
	}
	if len(password) < 8 {
		return nil, &domain.ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		var nf *domain.NotFoundError
		if errors.As(err, &nf) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return s.tokens.GenerateAccessToken(user.ID, user.Email, user.IsStaff)
}
