package likeservice

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sushihentaime/blogory/internal/common"
)

func setupTestService(t *testing.T) (*LikeService, *sql.DB) {
	db := common.TestDB("file://../../migrations", t)
	return NewLikeService(db), db
}

func insertUser(t *testing.T, db *sql.DB, name, email string) int {
	var id int
	err := db.QueryRow("INSERT INTO users (name, email, password, avatar) VALUES ($1, $2, $3, $4) RETURNING id", name, email, []byte("hash"), "https://example.com/avatar.png").Scan(&id)
	if err != nil {
		t.Fatalf("could not insert user: %v", err)
	}
	return id
}

func insertBlog(t *testing.T, db *sql.DB, userID int) int {
	var id int
	err := db.QueryRow("INSERT INTO blogs (title, description, image, user_id) VALUES ($1, $2, $3, $4) RETURNING id", "title", "description", "https://example.com/img.png", userID).Scan(&id)
	if err != nil {
		t.Fatalf("could not insert blog: %v", err)
	}
	return id
}

func TestLikeLifecycle(t *testing.T) {
	s, db := setupTestService(t)
	writerID := insertUser(t, db, "Writer", "writer@example.com")
	readerID := insertUser(t, db, "Reader", "reader@example.com")
	blogID := insertBlog(t, db, writerID)

	// fresh blog has no likes
	status, err := s.GetLike(context.Background(), blogID, readerID)
	assert.NoError(t, err)
	assert.Equal(t, blogID, status.BlogID)
	assert.Equal(t, 0, status.LikeCount)
	assert.False(t, status.UserLiked)
	assert.Equal(t, "Writer", status.Author.Name)

	like, err := s.AddLike(context.Background(), blogID, readerID)
	assert.NoError(t, err)
	assert.Equal(t, blogID, like.BlogID)
	assert.Equal(t, readerID, like.UserID)
	assert.NotZero(t, like.ID)

	status, err = s.GetLike(context.Background(), blogID, readerID)
	assert.NoError(t, err)
	assert.Equal(t, 1, status.LikeCount)
	assert.True(t, status.UserLiked)

	// the author has not liked their own blog
	status, err = s.GetLike(context.Background(), blogID, writerID)
	assert.NoError(t, err)
	assert.Equal(t, 1, status.LikeCount)
	assert.False(t, status.UserLiked)

	err = s.RemoveLike(context.Background(), blogID, readerID)
	assert.NoError(t, err)

	status, err = s.GetLike(context.Background(), blogID, readerID)
	assert.NoError(t, err)
	assert.Equal(t, 0, status.LikeCount)
	assert.False(t, status.UserLiked)
}

func TestAddLikeTwice(t *testing.T) {
	s, db := setupTestService(t)
	writerID := insertUser(t, db, "Writer", "writer@example.com")
	readerID := insertUser(t, db, "Reader", "reader@example.com")
	blogID := insertBlog(t, db, writerID)

	_, err := s.AddLike(context.Background(), blogID, readerID)
	assert.NoError(t, err)

	_, err = s.AddLike(context.Background(), blogID, readerID)
	assert.ErrorIs(t, err, ErrAlreadyLiked)

	// the duplicate attempt did not change the count
	status, err := s.GetLike(context.Background(), blogID, readerID)
	assert.NoError(t, err)
	assert.Equal(t, 1, status.LikeCount)
}

func TestAddLikeUnknownBlog(t *testing.T) {
	s, db := setupTestService(t)
	readerID := insertUser(t, db, "Reader", "reader@example.com")

	_, err := s.AddLike(context.Background(), 999, readerID)
	assert.ErrorIs(t, err, ErrBlogNotFound)
}

func TestRemoveLikeNotFound(t *testing.T) {
	s, db := setupTestService(t)
	writerID := insertUser(t, db, "Writer", "writer@example.com")
	readerID := insertUser(t, db, "Reader", "reader@example.com")
	blogID := insertBlog(t, db, writerID)

	err := s.RemoveLike(context.Background(), blogID, readerID)
	assert.ErrorIs(t, err, ErrLikeNotFound)
}

func TestGetLikeUnknownBlog(t *testing.T) {
	s, db := setupTestService(t)
	readerID := insertUser(t, db, "Reader", "reader@example.com")

	_, err := s.GetLike(context.Background(), 999, readerID)
	assert.ErrorIs(t, err, ErrBlogNotFound)
}

func TestLikeCountAcrossUsers(t *testing.T) {
	s, db := setupTestService(t)
	writerID := insertUser(t, db, "Writer", "writer@example.com")
	firstID := insertUser(t, db, "First", "first@example.com")
	secondID := insertUser(t, db, "Second", "second@example.com")
	blogID := insertBlog(t, db, writerID)

	_, err := s.AddLike(context.Background(), blogID, firstID)
	assert.NoError(t, err)
	_, err = s.AddLike(context.Background(), blogID, secondID)
	assert.NoError(t, err)

	status, err := s.GetLike(context.Background(), blogID, firstID)
	assert.NoError(t, err)
	assert.Equal(t, 2, status.LikeCount)
	assert.True(t, status.UserLiked)
}

func TestLikeValidation(t *testing.T) {
	s, _ := setupTestService(t)

	_, err := s.AddLike(context.Background(), 0, 0)

	var validationErr common.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
