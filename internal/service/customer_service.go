package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudpower/site-backend/internal/common"
	"github.com/cloudpower/site-backend/internal/domain"
	"github.com/cloudpower/site-backend/internal/repository"
	"github.com/cloudpower/site-backend/pkg/i18n"
)

const (
	msgCustomerNotFound   = "合作客戶不存在"
	msgCustomerMissingIDs = "以下客戶 ID 不存在: "
)

// CustomerService defines the business logic for partner customers
type CustomerService interface {
	Create(ctx context.Context, actor domain.Actor, req *domain.CreateCustomerRequest) (*domain.Customer, error)
	List(ctx context.Context, loc i18n.Locale) ([]domain.CustomerResponse, error)
	ListAdmin(ctx context.Context) ([]domain.Customer, error)
	Get(ctx context.Context, id string, loc i18n.Locale) (*domain.CustomerResponse, error)
	GetAdmin(ctx context.Context, id string) (*domain.Customer, error)
	Update(ctx context.Context, actor domain.Actor, id string, req *domain.UpdateCustomerRequest) (*domain.Customer, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
	Reorder(ctx context.Context, actor domain.Actor, items []domain.SortItem) ([]domain.Customer, error)
}

type customerService struct {
	repo repository.SortableRepository[domain.Customer]
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(repo repository.SortableRepository[domain.Customer]) CustomerService {
	return &customerService{repo: repo}
}

func validateCustomer(c *domain.Customer) error {
	switch {
	case strings.TrimSpace(c.ZhName) == "":
		return common.BadRequest("中文名稱不能為空")
	case strings.TrimSpace(c.EnName) == "":
		return common.BadRequest("英文名稱不能為空")
	case strings.TrimSpace(c.Logo) == "":
		return common.BadRequest("Logo 不能為空")
	}
	return nil
}

func (s *customerService) Create(ctx context.Context, actor domain.Actor, req *domain.CreateCustomerRequest) (*domain.Customer, error) {
	customer := &domain.Customer{
		ZhName: strings.TrimSpace(req.ZhName),
		EnName: strings.TrimSpace(req.EnName),
		Logo:   req.Logo,
		URL:    req.URL,
	}
	if err := validateCustomer(customer); err != nil {
		return nil, err
	}

	next, err := s.repo.NextSortOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("next customer sort order: %w", err)
	}
	customer.SortOrder = next

	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	audit(actor, "customer", customer.ID).Msg("customer created")
	return customer, nil
}

func (s *customerService) List(ctx context.Context, loc i18n.Locale) ([]domain.CustomerResponse, error) {
	customers, err := s.repo.ListAll(ctx, repository.ListFilter{})
	if err != nil {
		return nil, err
	}
	return domain.MapSlice(customers, func(c *domain.Customer) domain.CustomerResponse {
		return c.Localize(loc)
	}), nil
}

func (s *customerService) ListAdmin(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.ListAll(ctx, repository.ListFilter{})
}

func (s *customerService) Get(ctx context.Context, id string, loc i18n.Locale) (*domain.CustomerResponse, error) {
	customer, err := s.GetAdmin(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := customer.Localize(loc)
	return &resp, nil
}

func (s *customerService) GetAdmin(ctx context.Context, id string) (*domain.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, msgCustomerNotFound)
	}
	return customer, nil
}

func (s *customerService) Update(ctx context.Context, actor domain.Actor, id string, req *domain.UpdateCustomerRequest) (*domain.Customer, error) {
	customer, err := s.GetAdmin(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := req.Apply(customer)
	if err := validateCustomer(customer); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}

	audit(actor, "customer", id).Int("fields", len(fields)).Msg("customer updated")
	return s.GetAdmin(ctx, id)
}

func (s *customerService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundAs(err, msgCustomerNotFound)
	}
	audit(actor, "customer", id).Msg("customer deleted")
	return nil
}

func (s *customerService) Reorder(ctx context.Context, actor domain.Actor, items []domain.SortItem) ([]domain.Customer, error) {
	if err := s.repo.Reorder(ctx, items); err != nil {
		var missing *repository.MissingIDsError
		if errors.As(err, &missing) {
			return nil, common.NotFound(missingIDsMessage(msgCustomerMissingIDs, missing))
		}
		return nil, fmt.Errorf("reorder customers: %w", err)
	}

	audit(actor, "customer", "").Int("count", len(items)).Msg("customers reordered")
	return s.repo.ListAll(ctx, repository.ListFilter{})
}
