package service

import (
	"context"
	"fmt"

	"github.com/cloudpower/site-backend/internal/common"
	"github.com/cloudpower/site-backend/internal/domain"
	"github.com/cloudpower/site-backend/internal/repository"
	"github.com/cloudpower/site-backend/pkg/jwt"
	"github.com/cloudpower/site-backend/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

const msgInvalidCredentials = "帳號或密碼錯誤"

// AuthService authentication business logic
type AuthService interface {
	Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error)
}

type authService struct {
	admins     repository.AdminRepository
	jwtManager *jwt.Manager
}

// NewAuthService creates a new AuthService
func NewAuthService(admins repository.AdminRepository, jwtManager *jwt.Manager) AuthService {
	return &authService{
		admins:     admins,
		jwtManager: jwtManager,
	}
}

// Login checks the account password and issues an access token.
// Unknown accounts and wrong passwords get the same answer.
func (s *authService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	admin, err := s.admins.FindByAccount(ctx, req.Account)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, common.Unauthorized(msgInvalidCredentials)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		logger.GetLogger().Warn().Str("account", req.Account).Msg("login failed")
		return nil, common.Unauthorized(msgInvalidCredentials)
	}

	token, err := s.jwtManager.GenerateAccessToken(admin.ID, admin.Account)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	logger.GetLogger().Info().Str("admin_id", admin.ID).Str("account", admin.Account).Msg("admin logged in")
	return &domain.LoginResponse{AccessToken: token}, nil
}
