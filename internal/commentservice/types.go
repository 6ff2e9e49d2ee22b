package commentservice

import (
	"database/sql"
	"time"
)

type CommentService struct {
	m *CommentModel
}

type CommentModel struct {
	db *sql.DB
}

type Comment struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	BlogID    int       `json:"blogId"`
	UserID    int       `json:"userId"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Commenter is the trimmed user shape embedded in comment listings.
type Commenter struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type CommentView struct {
	ID      int       `json:"id"`
	Content string    `json:"content"`
	User    Commenter `json:"user"`
}
