package likeservice

import (
	"database/sql"
	"time"
)

type LikeService struct {
	m *LikeModel
}

type LikeModel struct {
	db *sql.DB
}

type Like struct {
	ID        int       `json:"id"`
	BlogID    int       `json:"blogId"`
	UserID    int       `json:"userId"`
	CreatedAt time.Time `json:"created_at"`
}

// Author is the trimmed user shape embedded in the like status view.
type Author struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// LikeStatus is the read view for a blog's likes: the total count, whether
// the calling user is among them, and the blog's author.
type LikeStatus struct {
	BlogID    int    `json:"blogId"`
	Author    Author `json:"authorDetails"`
	LikeCount int    `json:"likeCount"`
	UserLiked bool   `json:"userLiked"`
}
