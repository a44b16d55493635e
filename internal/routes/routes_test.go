package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/cloudpower/site-backend/internal/config"
	"github.com/cloudpower/site-backend/internal/handler"
	"github.com/cloudpower/site-backend/internal/middleware"
	"github.com/cloudpower/site-backend/internal/migration"
	"github.com/cloudpower/site-backend/internal/service"
	"github.com/cloudpower/site-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// APISuite drives the full route table against an in-memory database
type APISuite struct {
	suite.Suite
	db      *gorm.DB
	router  *gin.Engine
	contact service.ContactService
	token   string
}

type envelope struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result"`
	Message string          `json:"message"`
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.T().Setenv("ADMIN_DEFAULT_PASSWORD", "admin123456")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	s.Require().NoError(err)
	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	s.Require().NoError(migration.Run(db))
	s.db = db

	cfg := config.Default()
	jwtManager := jwt.NewManager("test-secret-key-for-route-tests", 3600)

	handlers, contact := NewHandlers(Dependencies{
		DB:          db,
		JWT:         jwtManager,
		MaxUploadMB: cfg.Storage.MaxUploadMB,
		Location:    time.UTC,
	})
	s.contact = contact

	s.router = gin.New()
	s.router.Use(middleware.I18n())
	s.router.GET("/health", handler.NewHealthHandler(db).Check)
	Setup(s.router, handlers, jwtManager, nil, cfg)

	s.token = s.login()
}

func (s *APISuite) TearDownTest() {
	s.contact.Wait()
}

func (s *APISuite) do(method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func (s *APISuite) admin(method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	return s.do(method, path, body, map[string]string{"Authorization": "Bearer " + s.token})
}

func (s *APISuite) login() string {
	w, env := s.do(http.MethodPost, "/auth/login", map[string]string{
		"account":  "admin",
		"password": "admin123456",
	}, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Require().Equal("登入成功", env.Message)

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	s.Require().NoError(json.Unmarshal(env.Result, &resp))
	s.Require().NotEmpty(resp.AccessToken)
	return resp.AccessToken
}

func (s *APISuite) id(env envelope) string {
	var row struct {
		ID string `json:"id"`
	}
	s.Require().NoError(json.Unmarshal(env.Result, &row))
	s.Require().NotEmpty(row.ID)
	return row.ID
}

func (s *APISuite) TestHealth() {
	w, _ := s.do(http.MethodGet, "/health", nil, nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *APISuite) TestLogin_InvalidPassword() {
	w, env := s.do(http.MethodPost, "/auth/login", map[string]string{
		"account":  "admin",
		"password": "wrong-password",
	}, nil)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.False(env.Success)
	s.Equal("帳號或密碼錯誤", env.Message)
	s.Equal("null", string(env.Result))
}

func (s *APISuite) TestGuardedRoutesRequireToken() {
	cases := []struct {
		method, path string
	}{
		{http.MethodPost, "/news"},
		{http.MethodGet, "/news/admin"},
		{http.MethodGet, "/news/admin/some-id"},
		{http.MethodPut, "/banners/sort"},
		{http.MethodDelete, "/news-categories/some-id"},
		{http.MethodGet, "/contact"},
		{http.MethodPut, "/about"},
		{http.MethodGet, "/admin/me"},
		{http.MethodPost, "/files/upload"},
	}
	for _, tc := range cases {
		w, env := s.do(tc.method, tc.path, nil, nil)
		s.Equal(http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
		s.False(env.Success)
	}
}

func (s *APISuite) TestNewsLifecycle() {
	w, env := s.admin(http.MethodPost, "/news-categories", map[string]string{"zh_name": "公告", "en_name": "Announcements"})
	s.Require().Equal(http.StatusCreated, w.Code)
	s.Equal("新聞分類創建成功", env.Message)
	categoryID := s.id(env)

	w, env = s.admin(http.MethodPost, "/news", map[string]interface{}{
		"zh_title":   "新品發表",
		"en_title":   "Product launch",
		"cover":      "https://cdn.example.com/cover.jpg",
		"zh_content": "<p>內容</p><script>alert(1)</script>",
		"en_content": "<p>Body</p>",
		"categoryId": categoryID,
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	s.Equal("新聞創建成功", env.Message)
	newsID := s.id(env)

	var created struct {
		Status    string `json:"status"`
		ZhContent string `json:"zh_content"`
		CreatedAt string `json:"createdAt"`
	}
	s.Require().NoError(json.Unmarshal(env.Result, &created))
	s.Equal("Draft", created.Status)
	s.Equal("<p>內容</p>", created.ZhContent)
	s.Regexp(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}$`, created.CreatedAt)

	// drafts stay out of the public list
	w, env = s.do(http.MethodGet, "/news", nil, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(string(env.Result), `"total":0`)

	w, env = s.admin(http.MethodPut, "/news/"+newsID, map[string]string{"status": "Active"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal("新聞更新成功", env.Message)

	w, env = s.do(http.MethodGet, "/news", nil, map[string]string{"Accept-Language": "zh-TW"})
	s.Require().Equal(http.StatusOK, w.Code)
	var page struct {
		Data []struct {
			Title    string `json:"title"`
			Category struct {
				Name string `json:"name"`
			} `json:"category"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(env.Result, &page))
	s.Require().Len(page.Data, 1)
	s.Equal("新品發表", page.Data[0].Title)
	s.Equal("公告", page.Data[0].Category.Name)

	w, env = s.do(http.MethodGet, "/news/"+newsID, nil, map[string]string{"Accept-Language": "fr"})
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("獲取新聞詳情成功", env.Message)
	var detail struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	s.Require().NoError(json.Unmarshal(env.Result, &detail))
	s.Equal("Product launch", detail.Title)
	s.Equal("<p>Body</p>", detail.Content)

	// the category is still referenced
	w, env = s.admin(http.MethodDelete, "/news-categories/"+categoryID, nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("無法刪除：此分類下還有 1 篇新聞", env.Message)

	w, _ = s.admin(http.MethodDelete, "/news/"+newsID, nil)
	s.Equal(http.StatusOK, w.Code)
	w, env = s.do(http.MethodGet, "/news/"+newsID, nil, nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("新聞不存在", env.Message)

	w, _ = s.admin(http.MethodDelete, "/news-categories/"+categoryID, nil)
	s.Equal(http.StatusOK, w.Code)
	w, _ = s.admin(http.MethodGet, "/news-categories/admin/"+categoryID, nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *APISuite) TestNews_UnknownCategory() {
	w, env := s.admin(http.MethodPost, "/news", map[string]interface{}{
		"zh_title":   "標題",
		"en_title":   "Title",
		"cover":      "cover.jpg",
		"categoryId": "00000000-0000-0000-0000-000000000000",
	})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("指定的新聞分類不存在", env.Message)
}

func (s *APISuite) TestNews_InvalidStatusFilter() {
	w, env := s.admin(http.MethodGet, "/news/admin?status=Archived", nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("無效的狀態值", env.Message)
}

func (s *APISuite) TestBannerSort() {
	create := func(image string) string {
		w, env := s.admin(http.MethodPost, "/banners", map[string]interface{}{
			"type":     "IMAGE",
			"zh_image": image,
			"en_image": image,
		})
		s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
		return s.id(env)
	}
	first := create("a.jpg")
	second := create("b.jpg")

	w, env := s.admin(http.MethodPut, "/banners/sort", map[string]interface{}{
		"orders": []map[string]interface{}{
			{"id": first, "sortOrder": 2},
			{"id": second, "sortOrder": 1},
		},
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal("Banner排序更新成功", env.Message)

	w, env = s.do(http.MethodGet, "/banners", nil, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var banners []struct {
		ID    string `json:"id"`
		Image string `json:"image"`
	}
	s.Require().NoError(json.Unmarshal(env.Result, &banners))
	s.Require().Len(banners, 2)
	s.Equal(second, banners[0].ID)
	s.Equal(first, banners[1].ID)

	w, env = s.admin(http.MethodPut, "/banners/sort", map[string]interface{}{
		"orders": []map[string]interface{}{{"id": "missing", "sortOrder": 1}},
	})
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("以下 Banner ID 不存在: missing", env.Message)
}

func (s *APISuite) TestCustomerSort_MissingID() {
	w, env := s.admin(http.MethodPost, "/customers", map[string]string{
		"zh_name": "雲端科技",
		"en_name": "Cloud Tech",
		"logo":    "https://cdn.example.com/logo.png",
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	id := s.id(env)

	w, env = s.admin(http.MethodPut, "/customers/sort", map[string]interface{}{
		"orders": []map[string]interface{}{
			{"id": id, "sortOrder": 1},
			{"id": "ghost", "sortOrder": 2},
		},
	})
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("以下客戶 ID 不存在: ghost", env.Message)

	// the batch is rejected as a whole
	var sortOrder int
	s.Require().NoError(s.db.Table("customers").Select("sort_order").Where("id = ?", id).Scan(&sortOrder).Error)
	s.Equal(1, sortOrder)
}

func (s *APISuite) TestBanner_LanguageVisibility() {
	w, env := s.admin(http.MethodPost, "/banners", map[string]interface{}{
		"type":     "IMAGE",
		"showInZh": true,
		"showInEn": false,
		"zh_image": "zh.jpg",
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	id := s.id(env)

	list := func(headers map[string]string) []string {
		w, env := s.do(http.MethodGet, "/banners", nil, headers)
		s.Require().Equal(http.StatusOK, w.Code)
		var banners []struct {
			ID string `json:"id"`
		}
		s.Require().NoError(json.Unmarshal(env.Result, &banners))
		ids := make([]string, 0, len(banners))
		for _, b := range banners {
			ids = append(ids, b.ID)
		}
		return ids
	}

	s.Equal([]string{id}, list(map[string]string{"Accept-Language": "zh-TW"}))
	s.Empty(list(nil))

	w, env = s.admin(http.MethodPut, "/banners/"+id, map[string]bool{"showInZh": false})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("至少需選擇一個顯示語言（中文或英文）", env.Message)
}

func (s *APISuite) TestAboutSingleton() {
	w, env := s.admin(http.MethodPut, "/about", map[string]string{"zh_content": "<p>新的介紹</p>"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal("關於我們更新成功", env.Message)

	w, env = s.do(http.MethodGet, "/about", nil, map[string]string{"Accept-Language": "zh"})
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("獲取關於我們成功", env.Message)
	s.Contains(string(env.Result), "新的介紹")

	w, env = s.do(http.MethodGet, "/about", nil, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(string(env.Result), "About us content")
}

func (s *APISuite) TestContactForm() {
	w, env := s.do(http.MethodPost, "/contact", map[string]string{
		"name":    "王小明",
		"email":   "ming@example.com",
		"phone":   "0912345678",
		"message": "想了解報價",
	}, nil)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	s.Equal("聯絡表單提交成功", env.Message)
	id := s.id(env)

	w, env = s.do(http.MethodPost, "/contact", map[string]string{
		"name":    "王小明",
		"email":   "not-an-email",
		"phone":   "0912345678",
		"message": "hi",
	}, nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.False(env.Success)

	w, env = s.admin(http.MethodGet, "/contact?query="+url.QueryEscape("報價"), nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(string(env.Result), id)

	w, _ = s.admin(http.MethodDelete, "/contact/"+id, nil)
	s.Equal(http.StatusOK, w.Code)
	w, env = s.admin(http.MethodGet, "/contact/"+id, nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("聯絡訊息不存在", env.Message)
}

func (s *APISuite) TestAdminProfileAndPassword() {
	w, env := s.admin(http.MethodGet, "/admin/me", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(string(env.Result), `"account":"admin"`)

	w, env = s.admin(http.MethodPut, "/admin/me/password", map[string]string{
		"oldPassword":     "admin123456",
		"newPassword":     "changed-secret",
		"confirmPassword": "different",
	})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("新密碼與確認密碼不相符", env.Message)

	w, env = s.admin(http.MethodPut, "/admin/me/password", map[string]string{
		"oldPassword":     "admin123456",
		"newPassword":     "changed-secret",
		"confirmPassword": "changed-secret",
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal("更新管理員密碼成功", env.Message)

	w, _ = s.do(http.MethodPost, "/auth/login", map[string]string{
		"account":  "admin",
		"password": "changed-secret",
	}, nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *APISuite) TestUpload_MissingFile() {
	body := &bytes.Buffer{}
	req := httptest.NewRequest(http.MethodPost, "/files/upload", body)
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "請選擇要上傳的檔案")
}
