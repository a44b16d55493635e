package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/cloudpower/site-backend/internal/domain"
	"github.com/cloudpower/site-backend/internal/migration"
	"github.com/cloudpower/site-backend/pkg/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type RepositorySuite struct {
	suite.Suite
	db  *gorm.DB
	ctx context.Context
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupTest() {
	// a fresh in-memory database per test; one connection keeps it alive
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	s.Require().NoError(err)
	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	s.Require().NoError(db.AutoMigrate(migration.Models()...))

	s.db = db
	s.ctx = context.Background()
}

func (s *RepositorySuite) newsCategory(zh, en string) *domain.NewsCategory {
	c := &domain.NewsCategory{Category: domain.Category{ZhName: zh, EnName: en}}
	s.Require().NoError(s.db.Create(c).Error)
	return c
}

func (s *RepositorySuite) news(categoryID string, mutate func(*domain.News)) *domain.News {
	n := &domain.News{
		Visibility: domain.Visibility{ShowInZh: true, ShowInEn: true},
		ZhTitle:    "標題",
		EnTitle:    "Title",
		Cover:      "cover.jpg",
		CategoryID: categoryID,
		Status:     domain.StatusActive,
	}
	if mutate != nil {
		mutate(n)
	}
	s.Require().NoError(s.db.Create(n).Error)
	return n
}

func (s *RepositorySuite) TestPaginate_PageBoundaries() {
	cat := s.newsCategory("公告", "Announcements")
	for i := 0; i < 7; i++ {
		s.news(cat.ID, nil)
	}
	repo := NewContentRepository[domain.News](s.db, NewsSpec)

	seen := map[string]bool{}
	for page, want := range map[int]struct {
		n       int
		hasNext bool
	}{1: {3, true}, 2: {3, true}, 3: {1, false}} {
		items, p, err := repo.List(s.ctx, ListFilter{Page: page, Limit: 3, Public: true, Locale: i18n.LocaleEn})
		s.Require().NoError(err)
		s.Len(items, want.n, "page %d", page)
		s.Equal(want.hasNext, p.HasNext, "page %d", page)
		s.Equal(int64(7), p.Total)
		s.Equal(page, p.Page)
		s.Equal(3, p.Limit)
		for _, it := range items {
			s.False(seen[it.ID], "row %s returned twice", it.ID)
			seen[it.ID] = true
			s.Require().NotNil(it.Category, "category preloaded")
		}
	}
	s.Len(seen, 7)
}

func (s *RepositorySuite) TestPaginate_ExactMultipleAndDefaults() {
	cat := s.newsCategory("公告", "Announcements")
	for i := 0; i < 4; i++ {
		s.news(cat.ID, nil)
	}
	repo := NewContentRepository[domain.News](s.db, NewsSpec)

	items, p, err := repo.List(s.ctx, ListFilter{Page: 2, Limit: 2})
	s.Require().NoError(err)
	s.Len(items, 2)
	s.False(p.HasNext)

	_, p, err = repo.List(s.ctx, ListFilter{Page: -1, Limit: 0})
	s.Require().NoError(err)
	s.Equal(1, p.Page)
	s.Equal(domain.DefaultLimit, p.Limit)

	items, p, err = repo.List(s.ctx, ListFilter{Page: 9, Limit: 2})
	s.Require().NoError(err)
	s.Empty(items)
	s.False(p.HasNext)
}

func (s *RepositorySuite) TestPaginate_NewestFirst() {
	cat := s.newsCategory("公告", "Announcements")
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		created := base.Add(time.Duration(i) * time.Hour)
		s.news(cat.ID, func(n *domain.News) {
			n.EnTitle = fmt.Sprintf("n%d", i)
			n.CreatedAt = created
		})
	}
	repo := NewContentRepository[domain.News](s.db, NewsSpec)

	items, _, err := repo.List(s.ctx, ListFilter{})
	s.Require().NoError(err)
	s.Require().Len(items, 3)
	s.Equal("n2", items[0].EnTitle)
	s.Equal("n0", items[2].EnTitle)
}

func (s *RepositorySuite) TestVisibility_PublicAndAdmin() {
	cat := s.newsCategory("公告", "Announcements")
	zhOnly := s.news(cat.ID, func(n *domain.News) { n.ShowInEn = false })
	enOnly := s.news(cat.ID, func(n *domain.News) { n.ShowInZh = false })
	draft := s.news(cat.ID, func(n *domain.News) { n.Status = domain.StatusDraft })
	closed := s.news(cat.ID, func(n *domain.News) { n.Status = domain.StatusClosed })
	repo := NewContentRepository[domain.News](s.db, NewsSpec)

	ids := func(f ListFilter) []string {
		items, _, err := repo.List(s.ctx, f)
		s.Require().NoError(err)
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, it.ID)
		}
		return out
	}

	zh := ids(ListFilter{Public: true, Locale: i18n.Resolve("zh-TW")})
	s.ElementsMatch([]string{zhOnly.ID}, zh)

	en := ids(ListFilter{Public: true, Locale: i18n.Resolve("")})
	s.ElementsMatch([]string{enOnly.ID}, en)

	// admin: no status and no language unless supplied
	s.ElementsMatch([]string{zhOnly.ID, enOnly.ID, draft.ID, closed.ID}, ids(ListFilter{}))
	s.ElementsMatch([]string{draft.ID}, ids(ListFilter{Status: domain.StatusDraft}))
	s.ElementsMatch([]string{zhOnly.ID, draft.ID, closed.ID}, ids(ListFilter{Locale: i18n.ResolveOptional("zh")}))
}

func (s *RepositorySuite) TestCategoryFilter() {
	a := s.newsCategory("甲", "A")
	b := s.newsCategory("乙", "B")
	s.news(a.ID, nil)
	inB := s.news(b.ID, nil)
	repo := NewContentRepository[domain.News](s.db, NewsSpec)

	items, p, err := repo.List(s.ctx, ListFilter{CategoryID: b.ID})
	s.Require().NoError(err)
	s.Equal(int64(1), p.Total)
	s.Equal(inB.ID, items[0].ID)
}

func (s *RepositorySuite) TestSearch_BilingualCaseInsensitive() {
	cat := s.newsCategory("公告", "Announcements")
	cloud := s.news(cat.ID, func(n *domain.News) {
		n.ZhTitle = "雲端服務"
		n.EnTitle = "Cloud Service"
		n.ShowInEn = false
	})
	s.news(cat.ID, func(n *domain.News) {
		n.ZhTitle = "其他"
		n.EnTitle = "Other"
		n.EnTags = "100% match_test"
	})
	repo := NewContentRepository[domain.News](s.db, NewsSpec)

	for _, q := range []string{"cloud", "CLOUD", "  Cloud ", "雲端"} {
		items, _, err := repo.List(s.ctx, ListFilter{Query: q, Public: true, Locale: i18n.LocaleZh})
		s.Require().NoError(err)
		s.Require().Len(items, 1, q)
		s.Equal(cloud.ID, items[0].ID, q)
	}

	// whitespace only means no filter
	_, p, err := repo.List(s.ctx, ListFilter{Query: "   "})
	s.Require().NoError(err)
	s.Equal(int64(2), p.Total)

	// wildcards are literal
	_, p, err = repo.List(s.ctx, ListFilter{Query: "%"})
	s.Require().NoError(err)
	s.Equal(int64(1), p.Total)
	_, p, err = repo.List(s.ctx, ListFilter{Query: "h_t"})
	s.Require().NoError(err)
	s.Equal(int64(1), p.Total)
	_, p, err = repo.List(s.ctx, ListFilter{Query: "x_y"})
	s.Require().NoError(err)
	s.Equal(int64(0), p.Total)
}

func (s *RepositorySuite) TestUpdate_OnlyGivenColumns() {
	cat := s.newsCategory("公告", "Announcements")
	n := s.news(cat.ID, nil)
	repo := NewContentRepository[domain.News](s.db, NewsSpec)

	s.Require().NoError(repo.Update(s.ctx, n.ID, map[string]interface{}{"en_title": "Changed"}))

	got, err := repo.FindByID(s.ctx, n.ID)
	s.Require().NoError(err)
	s.Equal("Changed", got.EnTitle)
	s.Equal("標題", got.ZhTitle)
	s.False(got.UpdatedAt.Before(n.UpdatedAt))
}

func (s *RepositorySuite) TestDelete_NotFound() {
	repo := NewContentRepository[domain.News](s.db, NewsSpec)
	err := repo.Delete(s.ctx, "missing")
	s.True(IsNotFound(err))
}

func (s *RepositorySuite) banners(n int) []*domain.Banner {
	repo := NewSortableRepository[domain.Banner](s.db, BannerSpec)
	out := make([]*domain.Banner, 0, n)
	for i := 0; i < n; i++ {
		next, err := repo.NextSortOrder(s.ctx)
		s.Require().NoError(err)
		b := &domain.Banner{
			Visibility: domain.Visibility{ShowInZh: true, ShowInEn: true},
			Duration:   3,
			Type:       domain.BannerTypeImage,
			SortOrder:  next,
		}
		s.Require().NoError(repo.Create(s.ctx, b))
		out = append(out, b)
	}
	return out
}

func (s *RepositorySuite) TestNextSortOrder() {
	bs := s.banners(3)
	s.Equal(1, bs[0].SortOrder)
	s.Equal(2, bs[1].SortOrder)
	s.Equal(3, bs[2].SortOrder)
}

func (s *RepositorySuite) TestReorder_Applies() {
	bs := s.banners(3)
	repo := NewSortableRepository[domain.Banner](s.db, BannerSpec)

	err := repo.Reorder(s.ctx, []domain.SortItem{
		{ID: bs[0].ID, SortOrder: 3},
		{ID: bs[1].ID, SortOrder: 1},
		{ID: bs[2].ID, SortOrder: 2},
	})
	s.Require().NoError(err)

	items, err := repo.ListAll(s.ctx, ListFilter{})
	s.Require().NoError(err)
	s.Equal([]string{bs[1].ID, bs[2].ID, bs[0].ID}, []string{items[0].ID, items[1].ID, items[2].ID})
}

func (s *RepositorySuite) TestReorder_MissingIDChangesNothing() {
	bs := s.banners(3)
	repo := NewSortableRepository[domain.Banner](s.db, BannerSpec)

	err := repo.Reorder(s.ctx, []domain.SortItem{
		{ID: bs[0].ID, SortOrder: 9},
		{ID: "ghost-1", SortOrder: 1},
		{ID: bs[1].ID, SortOrder: 8},
		{ID: "ghost-2", SortOrder: 2},
	})

	var missing *MissingIDsError
	s.Require().ErrorAs(err, &missing)
	s.Equal([]string{"ghost-1", "ghost-2"}, missing.IDs)

	for i, b := range bs {
		var got domain.Banner
		s.Require().NoError(s.db.First(&got, "id = ?", b.ID).Error)
		s.Equal(i+1, got.SortOrder)
	}
}

func (s *RepositorySuite) TestReorder_PermissiveValues() {
	bs := s.banners(2)
	repo := NewSortableRepository[domain.Banner](s.db, BannerSpec)

	s.Require().NoError(repo.Reorder(s.ctx, []domain.SortItem{
		{ID: bs[0].ID, SortOrder: 5},
		{ID: bs[1].ID, SortOrder: 5},
	}))
}

func (s *RepositorySuite) TestDeleteGuarded_RefusesWhileReferenced() {
	cat := s.newsCategory("公告", "Announcements")
	n1 := s.news(cat.ID, nil)
	n2 := s.news(cat.ID, nil)
	cats := NewCategoryRepository[domain.NewsCategory](s.db, CategorySpec, &domain.News{})
	news := NewContentRepository[domain.News](s.db, NewsSpec)

	err := cats.DeleteGuarded(s.ctx, cat.ID)
	var refErr *ReferencedError
	s.Require().ErrorAs(err, &refErr)
	s.Equal(int64(2), refErr.Count)

	exists, err := cats.Exists(s.ctx, cat.ID)
	s.Require().NoError(err)
	s.True(exists)

	s.Require().NoError(news.Delete(s.ctx, n1.ID))
	s.Require().NoError(news.Delete(s.ctx, n2.ID))
	s.Require().NoError(cats.DeleteGuarded(s.ctx, cat.ID))

	// soft deleted: invisible to reads, row kept
	exists, err = cats.Exists(s.ctx, cat.ID)
	s.Require().NoError(err)
	s.False(exists)
	_, err = cats.FindByID(s.ctx, cat.ID)
	s.True(IsNotFound(err))

	var raw domain.NewsCategory
	s.Require().NoError(s.db.Unscoped().First(&raw, "id = ?", cat.ID).Error)
	s.True(raw.DeletedAt.Valid)

	err = cats.DeleteGuarded(s.ctx, cat.ID)
	s.True(IsNotFound(err))
}

func (s *RepositorySuite) TestDeleteGuarded_HardDelete() {
	cat := &domain.BlogCategory{Category: domain.Category{ZhName: "技術", EnName: "Tech"}}
	s.Require().NoError(s.db.Create(cat).Error)
	cats := NewCategoryRepository[domain.BlogCategory](s.db, CategorySpec, &domain.Blog{})

	s.Require().NoError(cats.DeleteGuarded(s.ctx, cat.ID))

	var count int64
	s.Require().NoError(s.db.Unscoped().Model(&domain.BlogCategory{}).Where("id = ?", cat.ID).Count(&count).Error)
	s.Zero(count)
}

func (s *RepositorySuite) TestSingleton_FirstIsOldest() {
	repo := NewSingletonRepository[domain.About](s.db)
	_, err := repo.First(s.ctx)
	s.True(IsNotFound(err))

	older := &domain.About{Model: domain.Model{CreatedAt: time.Now().Add(-time.Hour)}, RichText: domain.RichText{EnContent: "old"}}
	newer := &domain.About{RichText: domain.RichText{EnContent: "new"}}
	s.Require().NoError(repo.Create(s.ctx, newer))
	s.Require().NoError(repo.Create(s.ctx, older))

	got, err := repo.First(s.ctx)
	s.Require().NoError(err)
	s.Equal("old", got.EnContent)
}

func (s *RepositorySuite) TestAdmin_AccountTaken() {
	a := &domain.Admin{Account: "alice", Name: "Alice", Password: "x"}
	b := &domain.Admin{Account: "bob", Name: "Bob", Password: "x"}
	s.Require().NoError(s.db.Create(a).Error)
	s.Require().NoError(s.db.Create(b).Error)
	repo := NewAdminRepository(s.db)

	taken, err := repo.AccountTaken(s.ctx, "bob", a.ID)
	s.Require().NoError(err)
	s.True(taken)

	taken, err = repo.AccountTaken(s.ctx, "alice", a.ID)
	s.Require().NoError(err)
	s.False(taken)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "100!% !_ok!!", escapeLike("100% _ok!"))

	sql, args := searchCondition([]string{"zh_title", "en_title"}, "Cloud")
	assert.Equal(t, "(LOWER(zh_title) LIKE ? ESCAPE '!' OR LOWER(en_title) LIKE ? ESCAPE '!')", sql)
	require.Len(t, args, 2)
	assert.Equal(t, "%cloud%", args[0])
}
