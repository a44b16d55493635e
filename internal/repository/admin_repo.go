package repository

import (
	"context"
	"time"

	"github.com/cloudpower/site-backend/internal/domain"
	"gorm.io/gorm"
)

// AdminRepository defines the interface for admin account data access
type AdminRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Admin, error)
	FindByAccount(ctx context.Context, account string) (*domain.Admin, error)
	AccountTaken(ctx context.Context, account, exceptID string) (bool, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	UpdatePassword(ctx context.Context, id, hash string) error
}

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) FindByID(ctx context.Context, id string) (*domain.Admin, error) {
	var admin domain.Admin
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) FindByAccount(ctx context.Context, account string) (*domain.Admin, error) {
	var admin domain.Admin
	if err := r.db.WithContext(ctx).Where("account = ?", account).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// AccountTaken reports whether another admin already uses account
func (r *adminRepository) AccountTaken(ctx context.Context, account, exceptID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Admin{}).
		Where("account = ? AND id <> ?", account, exceptID).
		Count(&count).Error
	return count > 0, err
}

func (r *adminRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	updates := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		updates[k] = v
	}
	updates["updated_at"] = time.Now()
	return r.db.WithContext(ctx).Model(&domain.Admin{}).Where("id = ?", id).Updates(updates).Error
}

func (r *adminRepository) UpdatePassword(ctx context.Context, id, hash string) error {
	return r.Update(ctx, id, map[string]interface{}{"password": hash})
}
