package likeservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sushihentaime/blogory/internal/common"
)

var (
	ErrAlreadyLiked = errors.New("already liked")
	ErrLikeNotFound = errors.New("like not found")
	ErrBlogNotFound = errors.New("blog not found")
)

func newLikeModel(db *sql.DB) *LikeModel {
	return &LikeModel{db: db}
}

func (m *LikeModel) insert(ctx context.Context, blogID, userID int) (*Like, error) {
	query := `
		INSERT INTO likes (blog_id, user_id)
		VALUES ($1, $2)
		RETURNING id, created_at`

	like := Like{
		BlogID: blogID,
		UserID: userID,
	}

	err := m.db.QueryRowContext(ctx, query, blogID, userID).Scan(&like.ID, &like.CreatedAt)
	if err != nil {
		switch {
		case common.DuplicateKeyError(err, "likes_user_id_blog_id_key"):
			return nil, ErrAlreadyLiked
		case common.ForeignKeyError(err, "likes_blog_id_fkey"):
			return nil, ErrBlogNotFound
		default:
			return nil, err
		}
	}

	return &like, nil
}

func (m *LikeModel) delete(ctx context.Context, blogID, userID int) error {
	query := `
		DELETE FROM likes
		WHERE blog_id = $1 AND user_id = $2`

	res, err := m.db.ExecContext(ctx, query, blogID, userID)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows != 1 {
		switch {
		case rows == 0:
			return ErrLikeNotFound
		default:
			return fmt.Errorf("expected 1 row to be affected, got %d", rows)
		}
	}

	return nil
}

// getStatus joins the blog, its author, and its likes in one grouped query,
// computing the count and whether the given user appears among the likers.
func (m *LikeModel) getStatus(ctx context.Context, blogID, userID int) (*LikeStatus, error) {
	query := `
		SELECT b.id, u.id, u.name, u.avatar, COUNT(l.id), COALESCE(BOOL_OR(l.user_id = $2), FALSE)
		FROM blogs b
		INNER JOIN users u ON u.id = b.user_id
		LEFT JOIN likes l ON l.blog_id = b.id
		WHERE b.id = $1
		GROUP BY b.id, u.id, u.name, u.avatar`

	var status LikeStatus
	err := m.db.QueryRowContext(ctx, query, blogID, userID).Scan(&status.BlogID, &status.Author.ID, &status.Author.Name, &status.Author.Avatar, &status.LikeCount, &status.UserLiked)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrBlogNotFound
		default:
			return nil, err
		}
	}

	return &status, nil
}
