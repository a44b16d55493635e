package routes

import (
	"time"

	"github.com/cloudpower/site-backend/internal/domain"
	"github.com/cloudpower/site-backend/internal/handler"
	"github.com/cloudpower/site-backend/internal/repository"
	"github.com/cloudpower/site-backend/internal/service"
	"github.com/cloudpower/site-backend/pkg/jwt"
	"gorm.io/gorm"
)

// Dependencies are the collaborators shared by the handler graph.
// Uploader and Notifier may be nil when storage or mail is disabled.
type Dependencies struct {
	DB          *gorm.DB
	JWT         *jwt.Manager
	Uploader    service.Uploader
	Notifier    service.Notifier
	NotifyTo    string
	MaxUploadMB int
	Location    *time.Location
}

// NewHandlers builds repositories, services and handlers. The contact
// service is returned so the caller can drain pending mail on shutdown.
func NewHandlers(d Dependencies) (*Handlers, service.ContactService) {
	db := d.DB

	// Repositories
	newsCats := repository.NewCategoryRepository[domain.NewsCategory](db, repository.CategorySpec, &domain.News{})
	blogCats := repository.NewCategoryRepository[domain.BlogCategory](db, repository.CategorySpec, &domain.Blog{})
	caseCats := repository.NewCategoryRepository[domain.CaseCategory](db, repository.CategorySpec, &domain.Case{})
	productCats := repository.NewCategoryRepository[domain.ServiceCategory](db, repository.CategorySpec, &domain.Service{})
	admins := repository.NewAdminRepository(db)

	// Services
	contactService := service.NewContactService(
		repository.NewContentRepository[domain.Contact](db, repository.ContactSpec),
		d.Notifier, d.NotifyTo, d.Location,
	)
	newsService := service.NewNewsService(repository.NewContentRepository[domain.News](db, repository.NewsSpec), newsCats)
	blogService := service.NewBlogService(repository.NewContentRepository[domain.Blog](db, repository.BlogSpec), blogCats)
	caseService := service.NewCaseService(repository.NewContentRepository[domain.Case](db, repository.CaseSpec), caseCats)
	productService := service.NewProductService(repository.NewContentRepository[domain.Service](db, repository.ServiceSpec), productCats)

	h := &Handlers{
		Auth:     handler.NewAuthHandler(service.NewAuthService(admins, d.JWT)),
		Admin:    handler.NewAdminHandler(service.NewAdminService(admins)),
		File:     handler.NewFileHandler(service.NewFileService(d.Uploader, d.MaxUploadMB)),
		Contact:  handler.NewContactHandler(contactService),
		Banner:   handler.NewBannerHandler(service.NewBannerService(repository.NewSortableRepository[domain.Banner](db, repository.BannerSpec))),
		Customer: handler.NewCustomerHandler(service.NewCustomerService(repository.NewSortableRepository[domain.Customer](db, repository.CustomerSpec))),
		News:     handler.NewNewsHandler(newsService),
		Blog:     handler.NewBlogHandler(blogService),
		Case:     handler.NewCaseHandler(caseService),
		Product:  handler.NewProductHandler(productService),

		About: handler.NewSingletonHandler[domain.About, domain.PageResponse, domain.UpdatePageRequest](
			service.NewAboutService(repository.NewSingletonRepository[domain.About](db)), "關於我們"),
		Privacy: handler.NewSingletonHandler[domain.PrivacyPolicy, domain.PageResponse, domain.UpdatePageRequest](
			service.NewPrivacyPolicyService(repository.NewSingletonRepository[domain.PrivacyPolicy](db)), "隱私權政策"),
		Company: handler.NewSingletonHandler[domain.CompanyInfo, domain.CompanyInfoResponse, domain.UpdateCompanyInfoRequest](
			service.NewCompanyInfoService(repository.NewSingletonRepository[domain.CompanyInfo](db)), "公司資訊"),

		NewsCat: handler.NewCategoryHandler(
			service.NewCategoryService[domain.NewsCategory](newsCats, service.NewsCategoryLabels), "新聞分類"),
		BlogCat: handler.NewCategoryHandler(
			service.NewCategoryService[domain.BlogCategory](blogCats, service.BlogCategoryLabels), "部落格分類"),
		CaseCat: handler.NewCategoryHandler(
			service.NewCategoryService[domain.CaseCategory](caseCats, service.CaseCategoryLabels), "案例分類"),
		ProductCat: handler.NewCategoryHandler(
			service.NewCategoryService[domain.ServiceCategory](productCats, service.ServiceCategoryLabels), "服務分類"),
	}
	return h, contactService
}
