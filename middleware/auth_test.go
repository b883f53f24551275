package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/SumanKr7/CosmoXclub/models"
	"github.com/SumanKr7/CosmoXclub/session"
	"github.com/SumanKr7/CosmoXclub/store"
)

func testRouter(st store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions(session.Name, cookie.NewStore([]byte("test-secret"))))

	r.GET("/seed-user/:uid", func(c *gin.Context) {
		_ = session.StartUser(c, c.Param("uid"), "id-token", "refresh-token", "u@example.com")
		c.Status(http.StatusOK)
	})
	r.GET("/seed-admin", func(c *gin.Context) {
		_ = session.StartAdmin(c)
		c.Status(http.StatusOK)
	})

	userGroup := r.Group("/", RequireUser())
	userGroup.GET("/my-account", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": c.GetString("uid")})
	})

	houseGroup := userGroup.Group("/", RequireVerifiedEmail(st))
	houseGroup.GET("/edit-home-details", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	adminGroup := r.Group("/", RequireAdmin())
	adminGroup.GET("/dashboard", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return r
}

// sessionCookie drives a seed route and returns the resulting cookie header.
func sessionCookie(t *testing.T, r *gin.Engine, path string) string {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("seed %s: status %d", path, w.Code)
	}
	ck := w.Header().Get("Set-Cookie")
	if ck == "" {
		t.Fatalf("seed %s: no session cookie", path)
	}
	return ck
}

func get(r *gin.Engine, path, cookieHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookieHeader != "" {
		req.Header.Set("Cookie", cookieHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRequireUser(t *testing.T) {
	st := store.NewMemory()
	r := testRouter(st)

	if w := get(r, "/my-account", ""); w.Code != http.StatusFound || w.Header().Get("Location") != "/" {
		t.Errorf("anonymous: status %d location %q", w.Code, w.Header().Get("Location"))
	}

	ck := sessionCookie(t, r, "/seed-user/u1")
	if w := get(r, "/my-account", ck); w.Code != http.StatusOK {
		t.Errorf("signed in: status %d", w.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	st := store.NewMemory()
	r := testRouter(st)

	// A user session does not open admin routes.
	userCk := sessionCookie(t, r, "/seed-user/u1")
	if w := get(r, "/dashboard", userCk); w.Code != http.StatusFound {
		t.Errorf("user session on admin route: status %d", w.Code)
	}

	adminCk := sessionCookie(t, r, "/seed-admin")
	if w := get(r, "/dashboard", adminCk); w.Code != http.StatusOK {
		t.Errorf("admin session: status %d", w.Code)
	}

	// And starting an admin session drops the user one.
	if w := get(r, "/my-account", adminCk); w.Code != http.StatusFound {
		t.Errorf("admin session on user route: status %d", w.Code)
	}
}

func TestRequireVerifiedEmail(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()
	_ = st.SetUser(ctx, "u1", models.User{Email: "u@example.com", EmailVerified: models.StatusNotVerified})
	_ = st.SetUser(ctx, "u2", models.User{Email: "v@example.com", EmailVerified: models.StatusVerified})

	r := testRouter(st)

	ck := sessionCookie(t, r, "/seed-user/u1")
	if w := get(r, "/edit-home-details", ck); w.Code != http.StatusFound || w.Header().Get("Location") != "/my-account" {
		t.Errorf("unverified: status %d location %q", w.Code, w.Header().Get("Location"))
	}

	ck = sessionCookie(t, r, "/seed-user/u2")
	if w := get(r, "/edit-home-details", ck); w.Code != http.StatusOK {
		t.Errorf("verified: status %d", w.Code)
	}
}
