// internal/services/blog_service.go
package services

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"

	"github.com/javajoker/rentall-backend/internal/models"
)

const (
	AllCategories     = "All Categories"
	RelatedPostsLimit = 3
)

var ErrBlogPostNotFound = errors.New("blog post not found")

//go:embed content/blogs.yaml
var blogContent []byte

type blogCatalog struct {
	Categories  []string          `yaml:"categories"`
	PopularTags []string          `yaml:"popular_tags"`
	Posts       []models.BlogPost `yaml:"posts"`
}

// BlogService serves editorial posts compiled into the binary.
type BlogService struct {
	catalog  blogCatalog
	markdown goldmark.Markdown
}

type BlogFilter struct {
	Category string
	Tag      string
	Search   string
	Featured *bool
}

type BlogCategories struct {
	Categories  []string `json:"categories"`
	PopularTags []string `json:"popular_tags"`
}

type BlogPostDetail struct {
	models.BlogPost
	HTML    string            `json:"html"`
	Related []models.BlogPost `json:"related"`
}

func NewBlogService() (*BlogService, error) {
	return newBlogService(blogContent)
}

func newBlogService(data []byte) (*BlogService, error) {
	var catalog blogCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse blog content: %w", err)
	}

	// newest first
	sort.SliceStable(catalog.Posts, func(i, j int) bool {
		return catalog.Posts[i].Date > catalog.Posts[j].Date
	})

	return &BlogService{
		catalog:  catalog,
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}, nil
}

func (s *BlogService) List(filter BlogFilter) []models.BlogPost {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	posts := []models.BlogPost{}
	for _, post := range s.catalog.Posts {
		if filter.Category != "" && filter.Category != AllCategories && post.Category != filter.Category {
			continue
		}
		if filter.Tag != "" && !post.HasTag(filter.Tag) {
			continue
		}
		if filter.Featured != nil && post.Featured != *filter.Featured {
			continue
		}
		if search != "" && !matchesBlogSearch(post, search) {
			continue
		}
		posts = append(posts, post)
	}
	return posts
}

func (s *BlogService) Categories() BlogCategories {
	return BlogCategories{
		Categories:  s.catalog.Categories,
		PopularTags: s.catalog.PopularTags,
	}
}

// Get renders the post body and picks related posts: same category or a
// shared tag first, then any other post.
func (s *BlogService) Get(id int) (*BlogPostDetail, error) {
	post, ok := s.find(id)
	if !ok {
		return nil, ErrBlogPostNotFound
	}

	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(post.Content), &buf); err != nil {
		return nil, fmt.Errorf("failed to render blog post %d: %w", id, err)
	}

	return &BlogPostDetail{
		BlogPost: post,
		HTML:     buf.String(),
		Related:  s.related(post),
	}, nil
}

// All returns every post, newest first.
func (s *BlogService) All() []models.BlogPost {
	return s.catalog.Posts
}

func (s *BlogService) find(id int) (models.BlogPost, bool) {
	for _, post := range s.catalog.Posts {
		if post.ID == id {
			return post, true
		}
	}
	return models.BlogPost{}, false
}

func (s *BlogService) related(post models.BlogPost) []models.BlogPost {
	related := []models.BlogPost{}
	picked := map[int]bool{post.ID: true}

	for _, candidate := range s.catalog.Posts {
		if len(related) == RelatedPostsLimit {
			return related
		}
		if picked[candidate.ID] {
			continue
		}
		if candidate.Category == post.Category || sharesTag(candidate, post) {
			related = append(related, candidate)
			picked[candidate.ID] = true
		}
	}

	for _, candidate := range s.catalog.Posts {
		if len(related) == RelatedPostsLimit {
			break
		}
		if !picked[candidate.ID] {
			related = append(related, candidate)
			picked[candidate.ID] = true
		}
	}
	return related
}

func sharesTag(a, b models.BlogPost) bool {
	for _, tag := range a.Tags {
		if b.HasTag(tag) {
			return true
		}
	}
	return false
}

func matchesBlogSearch(post models.BlogPost, search string) bool {
	if strings.Contains(strings.ToLower(post.Title), search) ||
		strings.Contains(strings.ToLower(post.Excerpt), search) {
		return true
	}
	for _, tag := range post.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}
