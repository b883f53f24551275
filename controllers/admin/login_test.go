package adminController

import (
	"net/http"
	"net/url"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/SumanKr7/CosmoXclub/config"
	"github.com/SumanKr7/CosmoXclub/store"
)

func adminConfig(t *testing.T, password string) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return &config.Config{
		AdminEmail:        "admin@example.com",
		AdminPasswordHash: string(hash),
	}
}

func TestAdminLogin(t *testing.T) {
	cfg := adminConfig(t, "Sup3rSecret!")
	st := store.NewMemory()
	r := newRouter()
	r.POST("/admin", Login(cfg, st))

	w := postForm(r, "/admin", url.Values{
		"email":    {"admin@example.com"},
		"password": {"Sup3rSecret!"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}
	if w.Header().Get("Set-Cookie") == "" {
		t.Error("no admin session cookie set")
	}
}

func TestAdminLoginWrongPassword(t *testing.T) {
	cfg := adminConfig(t, "Sup3rSecret!")
	st := store.NewMemory()
	r := newRouter()
	r.POST("/admin", Login(cfg, st))

	w := postForm(r, "/admin", url.Values{
		"email":    {"admin@example.com"},
		"password": {"Wr0ngPass!"},
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestAdminLoginWrongEmail(t *testing.T) {
	cfg := adminConfig(t, "Sup3rSecret!")
	st := store.NewMemory()
	r := newRouter()
	r.POST("/admin", Login(cfg, st))

	w := postForm(r, "/admin", url.Values{
		"email":    {"user@example.com"},
		"password": {"Sup3rSecret!"},
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestAdminLoginStoreDown(t *testing.T) {
	cfg := adminConfig(t, "Sup3rSecret!")
	st := store.NewMemory()
	st.Down = true
	r := newRouter()
	r.POST("/admin", Login(cfg, st))

	w := postForm(r, "/admin", url.Values{
		"email":    {"admin@example.com"},
		"password": {"Sup3rSecret!"},
	})
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", w.Code)
	}
}
