package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudpower/site-backend/internal/common"
	"github.com/cloudpower/site-backend/internal/domain"
	"github.com/cloudpower/site-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

const (
	msgAdminNotFound      = "管理員不存在"
	msgAccountTaken       = "帳號已被使用"
	msgPasswordMismatch   = "新密碼與確認密碼不相符"
	msgOldPasswordInvalid = "舊密碼錯誤"

	// PasswordCost is the bcrypt cost for admin passwords
	PasswordCost = 10
)

// AdminService manages the signed-in admin's own account
type AdminService interface {
	Me(ctx context.Context, actor domain.Actor) (*domain.AdminProfile, error)
	UpdateMe(ctx context.Context, actor domain.Actor, req *domain.UpdateAdminRequest) (*domain.AdminProfile, error)
	ChangePassword(ctx context.Context, actor domain.Actor, req *domain.ChangePasswordRequest) error
}

type adminService struct {
	admins repository.AdminRepository
}

// NewAdminService creates a new AdminService
func NewAdminService(admins repository.AdminRepository) AdminService {
	return &adminService{admins: admins}
}

func (s *adminService) find(ctx context.Context, id string) (*domain.Admin, error) {
	admin, err := s.admins.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, msgAdminNotFound)
	}
	return admin, nil
}

func (s *adminService) Me(ctx context.Context, actor domain.Actor) (*domain.AdminProfile, error) {
	admin, err := s.find(ctx, actor.AdminID)
	if err != nil {
		return nil, err
	}
	profile := admin.Profile()
	return &profile, nil
}

func (s *adminService) UpdateMe(ctx context.Context, actor domain.Actor, req *domain.UpdateAdminRequest) (*domain.AdminProfile, error) {
	admin, err := s.find(ctx, actor.AdminID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Avatar != nil {
		fields["avatar"] = *req.Avatar
	}
	if req.Account != nil {
		account := strings.TrimSpace(*req.Account)
		if account != admin.Account {
			taken, err := s.admins.AccountTaken(ctx, account, admin.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, common.BadRequest(msgAccountTaken)
			}
			fields["account"] = account
		}
	}

	if len(fields) > 0 {
		if err := s.admins.Update(ctx, admin.ID, fields); err != nil {
			return nil, fmt.Errorf("update admin: %w", err)
		}
		audit(actor, "admin", admin.ID).Int("fields", len(fields)).Msg("admin profile updated")
	}
	return s.Me(ctx, actor)
}

func (s *adminService) ChangePassword(ctx context.Context, actor domain.Actor, req *domain.ChangePasswordRequest) error {
	admin, err := s.find(ctx, actor.AdminID)
	if err != nil {
		return err
	}
	if req.NewPassword != req.ConfirmPassword {
		return common.BadRequest(msgPasswordMismatch)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.OldPassword)); err != nil {
		return common.BadRequest(msgOldPasswordInvalid)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), PasswordCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.admins.UpdatePassword(ctx, admin.ID, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	audit(actor, "admin", admin.ID).Msg("admin password changed")
	return nil
}
