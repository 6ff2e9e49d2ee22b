package commentservice

import (
	"context"
	"database/sql"

	"github.com/sushihentaime/blogory/internal/common"
)

func NewCommentService(db *sql.DB) *CommentService {
	return &CommentService{m: newCommentModel(db)}
}

// CreateComment adds a comment by a user to an existing blog.
func (s *CommentService) CreateComment(ctx context.Context, content string, blogID, userID int) (*Comment, error) {
	v := common.NewValidator()
	validateContent(v, content)
	validateInt(v, blogID, "blog_id")
	validateInt(v, userID, "user_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.insert(ctx, content, blogID, userID)
}

// GetComments returns the comments of a blog, newest-first, with the
// commenter embedded.
func (s *CommentService) GetComments(ctx context.Context, blogID int) ([]CommentView, error) {
	v := common.NewValidator()
	validateInt(v, blogID, "blog_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getByBlogID(ctx, blogID)
}
