package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/rentall-backend/internal/models"
)

type stubNames struct {
	software []models.Software
	err      error
}

func (s stubNames) ListSoftwareNames(ctx context.Context) ([]models.Software, error) {
	return s.software, s.err
}

func newTestSitemap(t *testing.T, names SoftwareNameLister) *SitemapService {
	blogs, err := NewBlogService()
	require.NoError(t, err)
	s := NewSitemapService(names, blogs, "https://www.example.com/")
	s.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestSitemapBuild(t *testing.T) {
	updated := time.Date(2025, 2, 10, 8, 0, 0, 0, time.UTC)
	s := newTestSitemap(t, stubNames{software: []models.Software{{Name: "Fleet Desk", UpdatedAt: updated}}})

	set := s.Build(context.Background())
	require.Len(t, set.URLs, len(staticRoutes)+3+3)

	home := set.URLs[0]
	assert.Equal(t, "https://www.example.com", home.Loc)
	assert.Equal(t, 1.0, home.Priority)
	assert.Equal(t, "2025-03-01", home.LastMod)

	byLoc := map[string]SitemapURL{}
	for _, u := range set.URLs {
		byLoc[u.Loc] = u
	}
	assert.Equal(t, 0.8, byLoc["https://www.example.com/blogs/1"].Priority)
	assert.Equal(t, 0.6, byLoc["https://www.example.com/blogs/3"].Priority)
	assert.Equal(t, "2025-01-05", byLoc["https://www.example.com/blogs/3"].LastMod)

	product := byLoc["https://www.example.com/product/Fleet%20Desk"]
	assert.Equal(t, "weekly", product.ChangeFreq)
	assert.Equal(t, 0.7, product.Priority)
	assert.Equal(t, "2025-02-10", product.LastMod)
	assert.Equal(t, 0.6, byLoc["https://www.example.com/review/Fleet%20Desk"].Priority)
}

func TestSitemapDropsSoftwareOnStoreError(t *testing.T) {
	s := newTestSitemap(t, stubNames{err: errors.New("db down")})

	set := s.Build(context.Background())
	assert.Len(t, set.URLs, len(staticRoutes)+3)

	body, err := s.XML(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "<?xml"))
	assert.Contains(t, string(body), `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
}

func TestRobots(t *testing.T) {
	s := newTestSitemap(t, stubNames{})

	robots := s.Robots()
	assert.Contains(t, robots, "Disallow: /_next/\n")
	assert.Contains(t, robots, "Sitemap: https://www.example.com/sitemap.xml")
}
