package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"quiz-platform/internal/models"
	"quiz-platform/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newRouter(tokens *service.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	protected := r.Group("/protected", RequireAuth(tokens))
	protected.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": UserID(c).Hex(), "role": Role(c)})
	})

	admin := r.Group("/admin", RequireAuth(tokens), RequireAdmin())
	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r
}

func signedToken(t *testing.T, tokens *service.TokenService, role string) string {
	t.Helper()
	token, err := tokens.Generate(&models.User{
		ID:       primitive.NewObjectID(),
		Username: "ann",
		Role:     role,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return token
}

func TestRequireAuthMissingHeader(t *testing.T) {
	tokens := service.NewTokenService("test-secret", 7)
	router := newRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected/me", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", w.Code)
	}
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	tokens := service.NewTokenService("test-secret", 7)
	router := newRouter(tokens)

	for _, header := range []string{"garbage", "Basic abc", "Bearer not.a.token"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected/me", nil)
		req.Header.Set("Authorization", header)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("Header %q: expected 401, got %d", header, w.Code)
		}
	}
}

func TestRequireAuthValidToken(t *testing.T) {
	tokens := service.NewTokenService("test-secret", 7)
	router := newRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected/me", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, tokens, models.RoleUser))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestRequireAuthForeignSecret(t *testing.T) {
	tokens := service.NewTokenService("test-secret", 7)
	foreign := service.NewTokenService("other-secret", 7)
	router := newRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected/me", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, foreign, models.RoleUser))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", w.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	tokens := service.NewTokenService("test-secret", 7)
	router := newRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, tokens, models.RoleUser))
	router.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("User role: expected 403, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, tokens, models.RoleAdmin))
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Admin role: expected 200, got %d", w.Code)
	}
}
