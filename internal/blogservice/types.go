package blogservice

import (
	"database/sql"
	"time"

	"github.com/sushihentaime/blogory/internal/common"
)

// DefaultImageURL is used when a blog is created without an uploaded image.
const DefaultImageURL = "https://formfees.com/wp-content/uploads/dummy.webp"

type BlogService struct {
	m *BlogModel
	c *common.Cache
}

type BlogModel struct {
	db *sql.DB
}

// Author is the trimmed user shape embedded in blog read views.
type Author struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type Blog struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Author      Author    `json:"authorDetails"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BlogSummary is a row of the blog listing. The description is deliberately
// left out of the listing query; it only travels on single-blog fetches.
type BlogSummary struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Image  string `json:"image"`
	Author Author `json:"authorDetails"`
}

// LikedBlog is a row of the liked-blogs listing, ordered by like time.
type LikedBlog struct {
	BlogID  int       `json:"blogId"`
	Title   string    `json:"title"`
	Image   string    `json:"image"`
	Author  Author    `json:"authorDetails"`
	LikedAt time.Time `json:"liked_at"`
}
