package blogservice

import (
	"context"
	"database/sql"

	"github.com/sushihentaime/blogory/internal/common"
)

func NewBlogService(db *sql.DB, c *common.Cache) *BlogService {
	return &BlogService{m: newBlogModel(db), c: c}
}

type CreateBlogRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	UserID      int    `json:"user_id"`
}

// CreateBlog creates a new blog post for the given user. Blogs are immutable
// once created; there is no update or delete.
func (s *BlogService) CreateBlog(ctx context.Context, req *CreateBlogRequest) (*Blog, error) {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateDescription(v, req.Description)
	validateInt(v, req.UserID, "user_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if req.Image == "" {
		req.Image = DefaultImageURL
	}

	blog, err := s.m.insert(ctx, req.Title, req.Description, req.Image, req.UserID)
	if err != nil {
		return nil, err
	}

	// Listing pages and author profiles are stale now.
	s.c.Flush()

	return blog, nil
}

// GetBlogs returns the blog listing, newest-first, with the author embedded
// and the description excluded. Default limit is 10 and default offset is 0.
func (s *BlogService) GetBlogs(ctx context.Context, limit, offset *int) ([]BlogSummary, error) {
	l, o := 10, 0
	if limit != nil && *limit > 0 {
		l = *limit
	}
	if offset != nil && *offset > 0 {
		o = *offset
	}

	key := common.CacheKeyBlogs(l, o)
	if cached, ok := s.c.Get(key); ok {
		return cached.([]BlogSummary), nil
	}

	blogs, err := s.m.getBlogs(ctx, l, o)
	if err != nil {
		return nil, err
	}

	s.c.Set(key, blogs)

	return blogs, nil
}

// GetBlogByID returns a single blog post with its author embedded.
func (s *BlogService) GetBlogByID(ctx context.Context, id int) (*Blog, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if cached, ok := s.c.Get(common.CacheKeyBlog(id)); ok {
		return cached.(*Blog), nil
	}

	blog, err := s.m.getBlogByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.c.Set(common.CacheKeyBlog(id), blog)

	return blog, nil
}

// GetLikedBlogs returns the blogs a user has liked, most recently liked first.
func (s *BlogService) GetLikedBlogs(ctx context.Context, userID int) ([]LikedBlog, error) {
	v := common.NewValidator()
	validateInt(v, userID, "user_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getLikedBlogs(ctx, userID)
}
