package routes

import (
	"github.com/cloudpower/site-backend/internal/config"
	"github.com/cloudpower/site-backend/internal/handler"
	"github.com/cloudpower/site-backend/internal/middleware"
	"github.com/cloudpower/site-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// multipartOverhead is allowed on top of the upload limit for form boundaries
const multipartOverhead = 1 << 20

// Handlers bundles every resource handler registered by Setup
type Handlers struct {
	Auth       *handler.AuthHandler
	Admin      *handler.AdminHandler
	File       *handler.FileHandler
	Contact    *handler.ContactHandler
	Banner     *handler.BannerHandler
	Customer   *handler.CustomerHandler
	News       *handler.NewsHandler
	Blog       *handler.BlogHandler
	Case       *handler.CaseHandler
	Product    *handler.ProductHandler
	About      SingletonRoutes
	Privacy    SingletonRoutes
	Company    SingletonRoutes
	NewsCat    CRUDRoutes
	BlogCat    CRUDRoutes
	CaseCat    CRUDRoutes
	ProductCat CRUDRoutes
}

// CRUDRoutes is the handler set of a resource with public and admin reads
type CRUDRoutes interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	ListAdmin(c *gin.Context)
	Get(c *gin.Context)
	GetAdmin(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// SingletonRoutes is the handler set of a one-row resource
type SingletonRoutes interface {
	Get(c *gin.Context)
	GetAdmin(c *gin.Context)
	Update(c *gin.Context)
}

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	h *Handlers,
	jwtManager *jwt.Manager,
	redisClient *redis.Client,
	cfg *config.Config,
) {
	auth := middleware.JWTAuth(jwtManager)

	// Authentication (no token required)
	router.POST("/auth/login", h.Auth.Login)

	// Signed-in admin
	admin := router.Group("/admin", auth)
	admin.GET("/me", h.Admin.Me)
	admin.PUT("/me", h.Admin.UpdateMe)
	admin.PUT("/me/password", h.Admin.ChangePassword)

	// Media upload
	maxUpload := int64(cfg.Storage.MaxUploadMB) << 20
	router.POST("/files/upload", auth, middleware.BodyLimit(maxUpload+multipartOverhead), h.File.Upload)

	// Contact form: public submit with its own limit, admin inbox
	contact := router.Group("/contact")
	contact.POST("", middleware.RateLimit(redisClient, middleware.ContactRateLimitConfig(cfg.RateLimit.ContactPerMinute)), h.Contact.Submit)
	contact.GET("", auth, h.Contact.List)
	contact.GET("/:id", auth, h.Contact.Get)
	contact.DELETE("/:id", auth, h.Contact.Delete)

	// Sortable resources register /sort before /:id
	banners := router.Group("/banners")
	banners.PUT("/sort", auth, h.Banner.Sort)
	registerCRUD(banners, h.Banner, auth)

	customers := router.Group("/customers")
	customers.PUT("/sort", auth, h.Customer.Sort)
	registerCRUD(customers, h.Customer, auth)

	// Paginated content
	registerCRUD(router.Group("/news"), h.News, auth)
	registerCRUD(router.Group("/blogs"), h.Blog, auth)
	registerCRUD(router.Group("/cases"), h.Case, auth)
	registerCRUD(router.Group("/services"), h.Product, auth)

	// Categories
	registerCRUD(router.Group("/news-categories"), h.NewsCat, auth)
	registerCRUD(router.Group("/blog-categories"), h.BlogCat, auth)
	registerCRUD(router.Group("/case-categories"), h.CaseCat, auth)
	registerCRUD(router.Group("/service-categories"), h.ProductCat, auth)

	// Singletons
	registerSingleton(router.Group("/about"), h.About, auth)
	registerSingleton(router.Group("/privacy-policy"), h.Privacy, auth)
	registerSingleton(router.Group("/company-info"), h.Company, auth)
}

// registerCRUD adds the seven routes of a resource. /admin and
// /admin/:id are registered ahead of /:id.
func registerCRUD(g *gin.RouterGroup, h CRUDRoutes, auth gin.HandlerFunc) {
	g.POST("", auth, h.Create)
	g.GET("", h.List)
	g.GET("/admin", auth, h.ListAdmin)
	g.GET("/admin/:id", auth, h.GetAdmin)
	g.GET("/:id", h.Get)
	g.PUT("/:id", auth, h.Update)
	g.DELETE("/:id", auth, h.Delete)
}

func registerSingleton(g *gin.RouterGroup, h SingletonRoutes, auth gin.HandlerFunc) {
	g.GET("", h.Get)
	g.GET("/admin", auth, h.GetAdmin)
	g.PUT("", auth, h.Update)
}
