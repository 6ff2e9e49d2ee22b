package userservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sushihentaime/blogory/internal/common"
)

var (
	ErrAuthenticationFailure = fmt.Errorf("invalid credentials")
)

func NewUserService(db *sql.DB, mb common.MessageProducer, c *common.Cache, secret string) *UserService {
	return &UserService{
		m:      NewUserModel(db),
		mb:     mb,
		c:      c,
		secret: secret,
	}
}

// Register creates a new user account, issues an access token, and publishes
// a user.registered event for the welcome email.
func (s *UserService) Register(ctx context.Context, name, email, password, avatar string) (*AuthUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	v := common.NewValidator()
	validateName(v, name)
	validateEmail(v, email)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if avatar == "" {
		avatar = DefaultAvatarURL
	}

	u := User{
		Name:     name,
		Email:    email,
		Avatar:   avatar,
		Password: Password{Plain: password},
	}

	err := u.Password.set(u.Password.Plain)
	if err != nil {
		return nil, err
	}

	err = s.m.insert(ctx, &u)
	if err != nil {
		return nil, err
	}

	token, err := newToken(s.secret, u.ID, TokenTTL)
	if err != nil {
		return nil, err
	}

	data := struct {
		Email string
		Name  string
	}{
		Email: u.Email,
		Name:  u.Name,
	}

	emailData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	err = s.mb.Publish(ctx, emailData, common.UserRegisteredKey, common.UserExchange)
	if err != nil {
		return nil, err
	}

	return &AuthUser{Token: token, Name: u.Name, Avatar: u.Avatar}, nil
}

// Login authenticates a user by email and password and issues an access token.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	v := common.NewValidator()
	validateEmail(v, email)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	user, err := s.m.getByEmail(ctx, email)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, ErrAuthenticationFailure
		default:
			return nil, err
		}
	}

	ok, err := user.Password.compare(password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAuthenticationFailure
	}

	token, err := newToken(s.secret, user.ID, TokenTTL)
	if err != nil {
		return nil, err
	}

	return &AuthUser{Token: token, Name: user.Name, Avatar: user.Avatar}, nil
}

// VerifyToken checks a bearer token and returns the user ID it was issued for.
func (s *UserService) VerifyToken(token string) (int, error) {
	return parseToken(s.secret, token)
}

// GetAllAuthors returns every user who has written at least one blog,
// together with their blog count.
func (s *UserService) GetAllAuthors(ctx context.Context) ([]Author, error) {
	return s.m.getAuthors(ctx)
}

// GetAuthor returns an author profile: the user, their blogs newest-first
// (title and image only), and the blog count.
func (s *UserService) GetAuthor(ctx context.Context, authorID int) (*AuthorProfile, error) {
	v := common.NewValidator()
	validateInt(v, authorID, "author_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if cached, ok := s.c.Get(common.CacheKeyAuthor(authorID)); ok {
		return cached.(*AuthorProfile), nil
	}

	user, err := s.m.getByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	blogs, err := s.m.getAuthorBlogs(ctx, authorID)
	if err != nil {
		return nil, err
	}

	profile := &AuthorProfile{
		ID:        user.ID,
		Name:      user.Name,
		Avatar:    user.Avatar,
		BlogCount: len(blogs),
		Blogs:     blogs,
	}

	s.c.Set(common.CacheKeyAuthor(authorID), profile)

	return profile, nil
}
