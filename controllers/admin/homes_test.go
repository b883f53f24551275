package adminController

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/SumanKr7/CosmoXclub/models"
	"github.com/SumanKr7/CosmoXclub/session"
	"github.com/SumanKr7/CosmoXclub/store"
)

type fakeImages struct {
	deleted []string
	removed []string
}

func (f *fakeImages) SaveProfileImage(uid, dataURL string) (string, error) {
	return "/static/profile/" + uid + ".webp", nil
}

func (f *fakeImages) SaveHomeImage(uid, dataURL string) (string, error) {
	return "/static/uploads/" + uid + "/new.webp", nil
}

func (f *fakeImages) DeleteFiles(urls []string) {
	f.deleted = append(f.deleted, urls...)
}

func (f *fakeImages) RemoveUserUploads(uid string) error {
	f.removed = append(f.removed, uid)
	return nil
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions(session.Name, cookie.NewStore([]byte("test-secret"))))
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func seedListing(t *testing.T) *store.Memory {
	t.Helper()
	st := store.NewMemory()
	ctx := context.Background()
	_ = st.SetUser(ctx, "u1", models.User{Name: "Asha", Email: "asha@example.com"})
	if err := st.UpdateProperty(ctx, "u1", map[string]interface{}{
		"title":        "Hillside cottage",
		"house_status": models.StatusNotVerified,
		"guest_points": 0,
	}); err != nil {
		t.Fatal(err)
	}
	return st
}

func TestModerateHomeUpdatesStatusAndPoints(t *testing.T) {
	st := seedListing(t)
	imgs := &fakeImages{}
	r := newRouter()
	r.POST("/all-homes", ModerateHome(st, imgs))

	w := postForm(r, "/all-homes", url.Values{
		"user_id":         {"u1"},
		"dropdown_option": {models.StatusVerified},
		"guest_points":    {"25"},
	})
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/all-homes" {
		t.Fatalf("status %d location %q", w.Code, w.Header().Get("Location"))
	}

	u, _ := st.User(context.Background(), "u1")
	if u.Properties.HouseStatus != models.StatusVerified {
		t.Errorf("house_status = %q", u.Properties.HouseStatus)
	}
	if u.Properties.GuestPoints != 25 {
		t.Errorf("guest_points = %d", u.Properties.GuestPoints)
	}
}

func TestModerateHomeRejectsNonNumericPoints(t *testing.T) {
	st := seedListing(t)
	r := newRouter()
	r.POST("/all-homes", ModerateHome(st, &fakeImages{}))

	postForm(r, "/all-homes", url.Values{
		"user_id":         {"u1"},
		"dropdown_option": {models.StatusVerified},
		"guest_points":    {"lots"},
	})

	u, _ := st.User(context.Background(), "u1")
	if u.Properties.HouseStatus != models.StatusNotVerified {
		t.Errorf("status changed despite invalid points: %q", u.Properties.HouseStatus)
	}
}

func TestModerateHomeJSONDelete(t *testing.T) {
	st := seedListing(t)
	imgs := &fakeImages{}
	r := newRouter()
	r.POST("/all-homes", ModerateHome(st, imgs))

	w := postJSON(r, "/all-homes", `{"user_id":"u1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"success":true`) {
		t.Errorf("body = %s", w.Body.String())
	}

	u, _ := st.User(context.Background(), "u1")
	if u.Properties != nil {
		t.Error("listing still present")
	}
	if len(imgs.removed) != 1 || imgs.removed[0] != "u1" {
		t.Errorf("uploads removed = %v", imgs.removed)
	}
}

func TestModerateHomeJSONMissingUserID(t *testing.T) {
	st := seedListing(t)
	r := newRouter()
	r.POST("/all-homes", ModerateHome(st, &fakeImages{}))

	if w := postJSON(r, "/all-homes", `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestHomeDetailsUnknownUID(t *testing.T) {
	st := seedListing(t)
	r := newRouter()
	r.GET("/admin-home-details/:uid", HomeDetails(st))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-home-details/nobody", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
}
