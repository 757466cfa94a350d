package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"anoa.com/sekolahadmin/internal/modules/auth/dto"
	userRepository "anoa.com/sekolahadmin/internal/modules/user/repository"
	"anoa.com/sekolahadmin/pkg/apperror"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	users  userRepository.UserRepository
	secret []byte
	ttl    time.Duration
}

func NewAuthService(users userRepository.UserRepository, secret string, ttl time.Duration) AuthService {
	return &authService{users: users, secret: []byte(secret), ttl: ttl}
}

// Login verifies the credentials and issues a signed token. Wrong email and
// wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("email atau password salah: %w", apperror.ErrUnauthorized)
		}
		return nil, err
	}

	if user.PasswordHash == nil {
		return nil, fmt.Errorf("email atau password salah: %w", apperror.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("email atau password salah: %w", apperror.ErrUnauthorized)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("akun dinonaktifkan: %w", apperror.ErrForbidden)
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	res := &dto.LoginResponse{
		Token: token,
		User: dto.LoginUser{
			ID:    user.ID,
			Email: req.Email,
			Name:  user.Name,
			Roles: make([]string, 0, len(user.Roles)),
		},
	}
	for _, ur := range user.Roles {
		res.User.Roles = append(res.User.Roles, ur.Role.Name)
	}
	return res, nil
}
