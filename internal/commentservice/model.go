package commentservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sushihentaime/blogory/internal/common"
)

var (
	ErrBlogNotFound   = errors.New("blog not found")
	ErrUserForeignKey = errors.New("user_id does not exist")
)

func newCommentModel(db *sql.DB) *CommentModel {
	return &CommentModel{db: db}
}

func (m *CommentModel) insert(ctx context.Context, content string, blogID, userID int) (*Comment, error) {
	query := `
		INSERT INTO comments (content, blog_id, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	comment := Comment{
		Content: content,
		BlogID:  blogID,
		UserID:  userID,
	}

	err := m.db.QueryRowContext(ctx, query, content, blogID, userID).Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		switch {
		case common.ForeignKeyError(err, "comments_blog_id_fkey"):
			return nil, ErrBlogNotFound
		case common.ForeignKeyError(err, "comments_user_id_fkey"):
			return nil, ErrUserForeignKey
		default:
			return nil, err
		}
	}

	return &comment, nil
}

func (m *CommentModel) getByBlogID(ctx context.Context, blogID int) ([]CommentView, error) {
	query := `
		SELECT c.id, c.content, u.id, u.name, u.avatar
		FROM comments c
		INNER JOIN users u ON u.id = c.user_id
		WHERE c.blog_id = $1
		ORDER BY c.created_at DESC`

	rows, err := m.db.QueryContext(ctx, query, blogID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []CommentView{}
	for rows.Next() {
		var c CommentView
		err := rows.Scan(&c.ID, &c.Content, &c.User.ID, &c.User.Name, &c.User.Avatar)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}
