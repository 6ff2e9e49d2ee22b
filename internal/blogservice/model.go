package blogservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sushihentaime/blogory/internal/common"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrUserForeignKey = errors.New("user_id does not exist")
)

func newBlogModel(db *sql.DB) *BlogModel {
	return &BlogModel{db: db}
}

func (m *BlogModel) insert(ctx context.Context, title, description, image string, userID int) (*Blog, error) {
	query := `
		INSERT INTO blogs (title, description, image, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	blog := Blog{
		Title:       title,
		Description: description,
		Image:       image,
		Author:      Author{ID: userID},
	}

	err := m.db.QueryRowContext(ctx, query, title, description, image, userID).Scan(&blog.ID, &blog.CreatedAt, &blog.UpdatedAt)
	if err != nil {
		switch {
		case common.ForeignKeyError(err, "blogs_user_id_fkey"):
			return nil, ErrUserForeignKey
		default:
			return nil, err
		}
	}

	return &blog, nil
}

// getBlogs joins the users table so each row carries its author, leaving the
// heavy description column out of the result set entirely.
func (m *BlogModel) getBlogs(ctx context.Context, limit, offset int) ([]BlogSummary, error) {
	query := `
		SELECT b.id, b.title, b.image, u.id, u.name, u.avatar
		FROM blogs b
		INNER JOIN users u ON u.id = b.user_id
		ORDER BY b.created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := m.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := []BlogSummary{}
	for rows.Next() {
		var b BlogSummary
		err := rows.Scan(&b.ID, &b.Title, &b.Image, &b.Author.ID, &b.Author.Name, &b.Author.Avatar)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

func (m *BlogModel) getBlogByID(ctx context.Context, id int) (*Blog, error) {
	query := `
		SELECT b.id, b.title, b.description, b.image, b.created_at, b.updated_at, u.id, u.name, u.avatar
		FROM blogs b
		INNER JOIN users u ON u.id = b.user_id
		WHERE b.id = $1`

	var blog Blog
	err := m.db.QueryRowContext(ctx, query, id).Scan(&blog.ID, &blog.Title, &blog.Description, &blog.Image, &blog.CreatedAt, &blog.UpdatedAt, &blog.Author.ID, &blog.Author.Name, &blog.Author.Avatar)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &blog, nil
}

// getLikedBlogs walks likes -> blogs -> users so each liked blog carries its
// author, ordered by when the like was made.
func (m *BlogModel) getLikedBlogs(ctx context.Context, userID int) ([]LikedBlog, error) {
	query := `
		SELECT l.blog_id, l.created_at, b.title, b.image, u.id, u.name, u.avatar
		FROM likes l
		INNER JOIN blogs b ON b.id = l.blog_id
		INNER JOIN users u ON u.id = b.user_id
		WHERE l.user_id = $1
		ORDER BY l.created_at DESC`

	rows, err := m.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := []LikedBlog{}
	for rows.Next() {
		var b LikedBlog
		err := rows.Scan(&b.BlogID, &b.LikedAt, &b.Title, &b.Image, &b.Author.ID, &b.Author.Name, &b.Author.Avatar)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}
