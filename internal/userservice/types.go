package userservice

import (
	"database/sql"
	"time"

	"github.com/sushihentaime/blogory/internal/common"
)

const (
	// TokenTTL is the lifetime of an issued access token.
	TokenTTL = 365 * 24 * time.Hour

	// DefaultAvatarURL is used when a user registers without uploading an avatar.
	DefaultAvatarURL = "https://media.istockphoto.com/id/1341046662/vector/picture-profile-icon-human-or-people-sign-and-symbol-for-template-design.jpg?s=612x612&w=0&k=20&c=A7z3OK0fElK3tFntKObma-3a7PyO8_2xxW0jtmjzT78="
)

type UserService struct {
	m      *UserModel
	mb     common.MessageProducer
	c      *common.Cache
	secret string
}

type UserModel struct {
	db *sql.DB
}

type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  Password  `json:"-"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Password struct {
	Plain string `json:"-"`
	hash  []byte `json:"-"`
}

// AuthUser is what register and login hand back to the HTTP layer.
type AuthUser struct {
	Token  string `json:"token"`
	Name   string `json:"userName"`
	Avatar string `json:"userAvatar"`
}

// Author is a row of the all-authors listing: a user with at least one blog.
type Author struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
	BlogCount int    `json:"blogCount"`
}

// AuthorBlog is the trimmed blog shape embedded in an author profile.
type AuthorBlog struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
}

// AuthorProfile is the single-author view: the user plus their blogs,
// newest-first, and a blog count.
type AuthorProfile struct {
	ID        int          `json:"id"`
	Name      string       `json:"name"`
	Avatar    string       `json:"avatar"`
	BlogCount int          `json:"blogCount"`
	Blogs     []AuthorBlog `json:"blogs"`
}
