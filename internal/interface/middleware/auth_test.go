package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-blog-api/internal/application"
	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-blog-api/internal/domain/repository"
	"github.com/oksasatya/go-blog-api/pkg/helpers"
)

type staticUserRepo struct {
	user *entity.User
}

func (r *staticUserRepo) Create(context.Context, *entity.User) error { return nil }
func (r *staticUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if r.user != nil && r.user.ID == id {
		cp := *r.user
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}
func (r *staticUserRepo) GetByEmail(context.Context, string) (*entity.User, error) {
	return nil, repository.ErrNotFound
}
func (r *staticUserRepo) List(context.Context) ([]entity.User, error) { return nil, nil }
func (r *staticUserRepo) CredentialByEmail(context.Context, string) (*entity.Credential, error) {
	return nil, repository.ErrNotFound
}

func newGuardedRouter(users repository.UserRepository, jwt *helpers.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := application.NewAuthService(users, jwt, nil, nil, false)
	r := gin.New()
	r.GET("/protected", Auth(svc), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(CtxUserIDKey)})
	})
	return r
}

func TestAuth_MissingToken(t *testing.T) {
	t.Parallel()

	jwt := &helpers.TokenManager{Secret: []byte("0123456789abcdef0123456789abcdef"), TTL: time.Hour}
	r := newGuardedRouter(&staticUserRepo{}, jwt)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for missing token, got %d", w.Code)
	}
}

func TestAuth_UniformRejection(t *testing.T) {
	t.Parallel()

	jwt := &helpers.TokenManager{Secret: []byte("0123456789abcdef0123456789abcdef"), TTL: time.Hour}
	expiredJWT := &helpers.TokenManager{Secret: jwt.Secret, TTL: -time.Second}

	u := &entity.User{ID: "user-1", Email: "a@example.com", Name: "A"}
	r := newGuardedRouter(&staticUserRepo{user: u}, jwt)

	valid, _, err := jwt.Generate("user-1")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	expired, _, err := expiredJWT.Generate("user-1")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	staleUser, _, err := jwt.Generate("deleted-user")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	cases := []struct {
		name  string
		token string
	}{
		{"malformed", "not.a.jwt"},
		{"expired", expired},
		{"tampered", valid + "x"},
		{"deleted user", staleUser},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+tc.token)
			r.ServeHTTP(w, req)

			// Every failure kind answers the same 401.
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
		})
	}
}

func TestAuth_ValidTokenAttachesIdentity(t *testing.T) {
	t.Parallel()

	jwt := &helpers.TokenManager{Secret: []byte("0123456789abcdef0123456789abcdef"), TTL: time.Hour}
	u := &entity.User{ID: "user-1", Email: "a@example.com", Name: "A"}
	r := newGuardedRouter(&staticUserRepo{user: u}, jwt)

	tok, _, err := jwt.Generate("user-1")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if body := w.Body.String(); !strings.Contains(body, "user-1") {
		t.Fatalf("expected user id in response, got %s", body)
	}
}

func TestAuth_CookieFallback(t *testing.T) {
	t.Parallel()

	jwt := &helpers.TokenManager{Secret: []byte("0123456789abcdef0123456789abcdef"), TTL: time.Hour}
	u := &entity.User{ID: "user-1", Email: "a@example.com", Name: "A"}
	r := newGuardedRouter(&staticUserRepo{user: u}, jwt)

	tok, _, err := jwt.Generate("user-1")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: tok})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 via cookie, got %d", w.Code)
	}
}
