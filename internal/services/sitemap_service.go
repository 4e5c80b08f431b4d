// internal/services/sitemap_service.go
package services

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/rentall-backend/internal/models"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// SoftwareNameLister lists every product name with its last update.
type SoftwareNameLister interface {
	ListSoftwareNames(ctx context.Context) ([]models.Software, error)
}

type SitemapService struct {
	software SoftwareNameLister
	blogs    *BlogService
	baseURL  string
	now      func() time.Time
}

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

type URLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

type staticRoute struct {
	path       string
	changeFreq string
	priority   float64
}

var staticRoutes = []staticRoute{
	{"", "daily", 1.0},
	{"/about", "monthly", 0.8},
	{"/analyse", "daily", 0.9},
	{"/blogs", "daily", 0.8},
	{"/write-review", "monthly", 0.7},
	{"/list-software", "weekly", 0.7},
	{"/login", "yearly", 0.3},
	{"/signup", "yearly", 0.3},
}

var disallowedPaths = []string{"/api/", "/auth/", "/logout", "/test", "/popup", "/_next/", "/private/"}

func NewSitemapService(software SoftwareNameLister, blogs *BlogService, baseURL string) *SitemapService {
	return &SitemapService{
		software: software,
		blogs:    blogs,
		baseURL:  strings.TrimRight(baseURL, "/"),
		now:      time.Now,
	}
}

// Build lists static, blog and product pages. Products are left out when
// the catalog cannot be read.
func (s *SitemapService) Build(ctx context.Context) URLSet {
	today := formatLastMod(s.now())
	set := URLSet{Xmlns: sitemapNamespace}

	for _, r := range staticRoutes {
		set.URLs = append(set.URLs, SitemapURL{
			Loc:        s.baseURL + r.path,
			LastMod:    today,
			ChangeFreq: r.changeFreq,
			Priority:   r.priority,
		})
	}

	for _, post := range s.blogs.All() {
		priority := 0.6
		if post.Featured {
			priority = 0.8
		}
		set.URLs = append(set.URLs, SitemapURL{
			Loc:        fmt.Sprintf("%s/blogs/%d", s.baseURL, post.ID),
			LastMod:    post.Date,
			ChangeFreq: "monthly",
			Priority:   priority,
		})
	}

	software, err := s.software.ListSoftwareNames(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Sitemap omitting software routes")
		return set
	}

	for _, sw := range software {
		lastMod := today
		if !sw.UpdatedAt.IsZero() {
			lastMod = formatLastMod(sw.UpdatedAt)
		}
		name := url.PathEscape(sw.Name)
		set.URLs = append(set.URLs,
			SitemapURL{Loc: s.baseURL + "/software/" + name, LastMod: lastMod, ChangeFreq: "weekly", Priority: 0.7},
			SitemapURL{Loc: s.baseURL + "/product/" + name, LastMod: lastMod, ChangeFreq: "weekly", Priority: 0.7},
			SitemapURL{Loc: s.baseURL + "/review/" + name, LastMod: lastMod, ChangeFreq: "weekly", Priority: 0.6},
		)
	}
	return set
}

func (s *SitemapService) XML(ctx context.Context) ([]byte, error) {
	body, err := xml.MarshalIndent(s.Build(ctx), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

func (s *SitemapService) Robots() string {
	var b strings.Builder
	b.WriteString("User-agent: *\nAllow: /\n")
	for _, path := range disallowedPaths {
		b.WriteString("Disallow: " + path + "\n")
	}
	b.WriteString("\nSitemap: " + s.baseURL + "/sitemap.xml\n")
	return b.String()
}

func formatLastMod(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
