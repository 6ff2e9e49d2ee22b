package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func paramRequest(key, value string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	params := httprouter.Params{{Key: key, Value: value}}
	return r.WithContext(context.WithValue(r.Context(), httprouter.ParamsKey, params))
}

func TestReadIDParam(t *testing.T) {
	app := newMiddlewareApplication()

	testCases := []struct {
		name    string
		value   string
		want    int
		wantErr string
	}{
		{
			name:  "valid id",
			value: "42",
			want:  42,
		},
		{
			name:    "not a number",
			value:   "abc",
			wantErr: "invalid blogId parameter",
		},
		{
			name:    "zero",
			value:   "0",
			wantErr: "invalid blogId parameter",
		},
		{
			name:    "negative",
			value:   "-1",
			wantErr: "invalid blogId parameter",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := app.readIDParam(paramRequest("blogId", tc.value), "blogId")

			if tc.wantErr != "" {
				assert.EqualError(t, err, tc.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.want, id)
		})
	}
}

func TestReadLimitOffsetParams(t *testing.T) {
	app := newMiddlewareApplication()

	t.Run("absent parameters", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/blog/all-blogs", nil)

		limit, offset, err := app.readLimitOffsetParams(r)
		assert.NoError(t, err)
		assert.Nil(t, limit)
		assert.Nil(t, offset)
	})

	t.Run("both parameters", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/blog/all-blogs?limit=5&offset=10", nil)

		limit, offset, err := app.readLimitOffsetParams(r)
		assert.NoError(t, err)
		assert.Equal(t, 5, *limit)
		assert.Equal(t, 10, *offset)
	})

	t.Run("malformed limit", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/blog/all-blogs?limit=abc", nil)

		_, _, err := app.readLimitOffsetParams(r)
		assert.EqualError(t, err, "invalid limit parameter")
	})
}

func TestExtractTokenFromHeader(t *testing.T) {
	app := newMiddlewareApplication()

	testCases := []struct {
		name   string
		header string
		want   string
	}{
		{
			name:   "bearer token",
			header: "Bearer abc123",
			want:   "abc123",
		},
		{
			name:   "missing prefix",
			header: "abc123",
			want:   "",
		},
		{
			name:   "wrong scheme",
			header: "Basic abc123",
			want:   "",
		},
		{
			name:   "empty header",
			header: "",
			want:   "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, app.extractTokenFromHeader(tc.header))
		})
	}
}

func TestParseJSON(t *testing.T) {
	app := newMiddlewareApplication()

	testCases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "valid body",
			body: `{"email": "test@example.com"}`,
		},
		{
			name:    "badly-formed JSON",
			body:    `{"email": `,
			wantErr: "request body contains badly-formed JSON",
		},
		{
			name:    "unknown field",
			body:    `{"unknown": "field"}`,
			wantErr: `request body contains unknown field "unknown"`,
		},
		{
			name:    "empty body",
			body:    ``,
			wantErr: "request body must not be empty",
		},
		{
			name:    "multiple JSON values",
			body:    `{"email": "a@b.com"}{"email": "c@d.com"}`,
			wantErr: "request body must only contain a single JSON value",
		},
		{
			name:    "wrong type",
			body:    `{"email": 123}`,
			wantErr: `request body contains an invalid value for the "email" field`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			var dst struct {
				Email string `json:"email"`
			}

			err := app.parseJSON(w, r, &dst)

			if tc.wantErr != "" {
				assert.EqualError(t, err, tc.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "test@example.com", dst.Email)
		})
	}
}
