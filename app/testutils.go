package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/sushihentaime/blogory/internal/blogservice"
	"github.com/sushihentaime/blogory/internal/commentservice"
	"github.com/sushihentaime/blogory/internal/common"
	"github.com/sushihentaime/blogory/internal/likeservice"
	"github.com/sushihentaime/blogory/internal/userservice"
)

type testProducer struct{}

func (testProducer) Publish(ctx context.Context, msg []byte, key common.BindingKey, exchange common.Exchange) error {
	return nil
}

func newTestApplication(t *testing.T) *application {
	db := common.TestDB("file://../migrations", t)

	cfg := &Config{
		Environment: "test",
		Version:     "1.0.0",
		JWTSecret:   "test-secret",
		CORSOrigin:  "http://localhost:3000",
	}

	cache := common.NewCache(5*time.Minute, 10*time.Minute)

	return &application{
		config:         cfg,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		userService:    userservice.NewUserService(db, testProducer{}, cache, cfg.JWTSecret),
		blogService:    blogservice.NewBlogService(db, cache),
		commentService: commentservice.NewCommentService(db),
		likeService:    likeservice.NewLikeService(db),
	}
}

type testServer struct {
	*httptest.Server
}

func newTestServer(app *application) *testServer {
	return &testServer{httptest.NewServer(app.routes())}
}

// do sends a request with an optional JSON body and bearer token, returning
// the status code and the decoded response envelope.
func (ts *testServer) do(t *testing.T, method, urlPath, token string, body any) (int, envelope) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("could not marshal request body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+urlPath, reader)
	if err != nil {
		t.Fatalf("could not create request: %v", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("could not send request: %v", err)
	}
	defer res.Body.Close()

	var payload envelope
	err = json.NewDecoder(res.Body).Decode(&payload)
	if err != nil {
		t.Fatalf("could not decode response body: %v", err)
	}

	return res.StatusCode, payload
}

// formatID turns a decoded JSON number back into a URL path segment.
func formatID(id float64) string {
	return strconv.Itoa(int(id))
}

// register creates a user through the API and returns their access token.
func (ts *testServer) register(t *testing.T, name, email, password string) string {
	status, body := ts.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	if status != http.StatusCreated {
		t.Fatalf("could not register %s: got status %d", email, status)
	}

	token, ok := body["token"].(string)
	if !ok || token == "" {
		t.Fatalf("register response missing token: %v", body)
	}

	return token
}
