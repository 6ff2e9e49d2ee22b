package likeservice

import (
	"context"
	"database/sql"

	"github.com/sushihentaime/blogory/internal/common"
)

func NewLikeService(db *sql.DB) *LikeService {
	return &LikeService{m: newLikeModel(db)}
}

// AddLike records that a user likes a blog. A (user, blog) pair is either
// liked or not; liking twice fails with ErrAlreadyLiked. The transition is a
// single insert guarded by a unique index, so two concurrent likes of the
// same pair cannot both succeed.
func (s *LikeService) AddLike(ctx context.Context, blogID, userID int) (*Like, error) {
	v := common.NewValidator()
	validateInt(v, blogID, "blog_id")
	validateInt(v, userID, "user_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.insert(ctx, blogID, userID)
}

// RemoveLike undoes a like. Removing a like that does not exist fails with
// ErrLikeNotFound.
func (s *LikeService) RemoveLike(ctx context.Context, blogID, userID int) error {
	v := common.NewValidator()
	validateInt(v, blogID, "blog_id")
	validateInt(v, userID, "user_id")
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.delete(ctx, blogID, userID)
}

// GetLike returns the like count for a blog, whether the calling user has
// liked it, and the blog's author.
func (s *LikeService) GetLike(ctx context.Context, blogID, userID int) (*LikeStatus, error) {
	v := common.NewValidator()
	validateInt(v, blogID, "blog_id")
	validateInt(v, userID, "user_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getStatus(ctx, blogID, userID)
}
