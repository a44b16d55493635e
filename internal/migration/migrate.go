package migration

import (
	"errors"
	"fmt"
	"os"

	"github.com/cloudpower/site-backend/internal/domain"
	"github.com/cloudpower/site-backend/pkg/logger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// BcryptCost is the cost used for every stored admin password
const BcryptCost = 10

const (
	defaultAdminAccount  = "admin"
	defaultAdminPassword = "admin123456"
)

// Models lists every table in creation order (categories before content)
func Models() []interface{} {
	return []interface{}{
		&domain.Admin{},
		&domain.Banner{},
		&domain.Customer{},
		&domain.NewsCategory{},
		&domain.BlogCategory{},
		&domain.CaseCategory{},
		&domain.ServiceCategory{},
		&domain.News{},
		&domain.Blog{},
		&domain.Case{},
		&domain.Service{},
		&domain.About{},
		&domain.PrivacyPolicy{},
		&domain.CompanyInfo{},
		&domain.Contact{},
	}
}

// Run creates or updates every table, then seeds empty singletons
func Run(db *gorm.DB) error {
	if err := AutoMigrate(db); err != nil {
		return err
	}
	return Seed(db)
}

// AutoMigrate creates missing tables and columns
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Seed inserts the default admin and singleton rows when missing.
// It is safe to run repeatedly.
func Seed(db *gorm.DB) error {
	steps := []struct {
		name  string
		model interface{}
		row   func() (interface{}, error)
	}{
		{"admin", &domain.Admin{}, defaultAdmin},
		{"company_info", &domain.CompanyInfo{}, func() (interface{}, error) { return defaultCompanyInfo(), nil }},
		{"about", &domain.About{}, func() (interface{}, error) {
			return &domain.About{RichText: domain.RichText{
				ZhContent: "<p>關於我們的內容</p>",
				EnContent: "<p>About us content</p>",
			}}, nil
		}},
		{"privacy_policy", &domain.PrivacyPolicy{}, func() (interface{}, error) {
			return &domain.PrivacyPolicy{RichText: domain.RichText{
				ZhContent: "<p>隱私權政策內容</p>",
				EnContent: "<p>Privacy Policy content</p>",
			}}, nil
		}},
	}

	for _, step := range steps {
		var count int64
		if err := db.Model(step.model).Count(&count).Error; err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
		if count > 0 {
			continue
		}

		row, err := step.row()
		if err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
		if err := db.Create(row).Error; err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
		logger.GetLogger().Info().Str("table", step.name).Msg("seeded default row")
	}
	return nil
}

func defaultAdmin() (interface{}, error) {
	password := os.Getenv("ADMIN_DEFAULT_PASSWORD")
	if password == "" {
		password = defaultAdminPassword
	}
	if len(password) < 6 {
		return nil, errors.New("ADMIN_DEFAULT_PASSWORD must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return nil, err
	}
	return &domain.Admin{
		Account:  defaultAdminAccount,
		Name:     defaultAdminAccount,
		Password: string(hash),
	}, nil
}

func defaultCompanyInfo() *domain.CompanyInfo {
	return &domain.CompanyInfo{
		ZhAddress:     "台灣台北市",
		EnAddress:     "Taipei, Taiwan",
		ZhPhone:       "+886-2-1234-5678",
		EnPhone:       "+886-2-1234-5678",
		ZhEmail:       "info@company.com",
		EnEmail:       "info@company.com",
		ZhOpeningTime: "週一至週五 09:00-18:00",
		EnOpeningTime: "Mon-Fri 09:00-18:00",
	}
}
