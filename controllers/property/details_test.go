package propertyControllers

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

// fakeImages records calls without touching disk.
type fakeImages struct {
	saved   []string
	deleted []string
	removed []string
}

func (f *fakeImages) SaveProfileImage(uid, dataURL string) (string, error) {
	url := "/static/profile/" + uid + ".webp"
	f.saved = append(f.saved, url)
	return url, nil
}

func (f *fakeImages) SaveHomeImage(uid, dataURL string) (string, error) {
	url := "/static/uploads/" + uid + "/new.webp"
	f.saved = append(f.saved, url)
	return url, nil
}

func (f *fakeImages) DeleteFiles(urls []string) {
	f.deleted = append(f.deleted, urls...)
}

func (f *fakeImages) RemoveUserUploads(uid string) error {
	f.removed = append(f.removed, uid)
	return nil
}

// asUser routes everything through the session middleware with a fixed uid,
// the way RequireUser would set it.
func asUser(uid string) (*gin.Engine, *gin.RouterGroup) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions(session.Name, cookie.NewStore([]byte("test-secret"))))
	g := r.Group("/", func(c *gin.Context) {
		c.Set("uid", uid)
	})
	return r, g
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func validDetailsForm() url.Values {
	return url.Values{
		"title":          {"Cozy hillside bungalow"},
		"location_type":  {"Mountain"},
		"property_type":  {"Bungalow"},
		"guest_capacity": {"4"},
		"size":           {"1200.50"},
		"bedrooms":       {"3"},
		"bathrooms":      {"2"},
		"address":        {"12 Ridge Road, Ooty"},
		"city":           {"Ooty"},
		"state":          {"Tamil Nadu"},
		"pincode":        {"643001"},
		"description":    {"Quiet home with a valley view."},
		"contact_name":   {"Asha Rao"},
		"contact_email":  {"asha@example.com"},
		"contact_phone":  {"9876543210"},
		"amenities":      {"Wifi"},
	}
}

func TestSubmitHomeDetailsResetsModeration(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()
	_ = st.SetUser(ctx, "u1", models.User{Email: "asha@example.com"})
	_ = st.UpdateProperty(ctx, "u1", map[string]interface{}{
		"house_status": models.StatusVerified,
		"guest_points": 10,
	})
	_ = st.SetPropertyImages(ctx, "u1", []string{"/static/uploads/u1/a.webp"})

	r, g := asUser("u1")
	g.POST("/edit-home-details", SubmitHomeDetails(st))

	w := postForm(r, "/edit-home-details", validDetailsForm())
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/edit-home-details" {
		t.Errorf("location = %q", loc)
	}

	u, err := st.User(ctx, "u1")
	if err != nil || u.Properties == nil {
		t.Fatalf("user after submit: %v %v", u, err)
	}
	if u.Properties.HouseStatus != models.StatusNotVerified {
		t.Errorf("house_status = %q, want Not Verified", u.Properties.HouseStatus)
	}
	if u.Properties.GuestPoints != 0 {
		t.Errorf("guest_points = %d, want 0", u.Properties.GuestPoints)
	}
	if u.Properties.Title != "Cozy hillside bungalow" {
		t.Errorf("title = %q", u.Properties.Title)
	}
}

func TestSubmitHomeDetailsWithoutImagesRedirectsToUpload(t *testing.T) {
	st := store.NewMemory()
	_ = st.SetUser(context.Background(), "u1", models.User{Email: "asha@example.com"})

	r, g := asUser("u1")
	g.POST("/edit-home-details", SubmitHomeDetails(st))

	w := postForm(r, "/edit-home-details", validDetailsForm())
	if loc := w.Header().Get("Location"); loc != "/update-home-images" {
		t.Errorf("location = %q, want /update-home-images", loc)
	}
}

func TestSubmitHomeDetailsRejectsInvalidForm(t *testing.T) {
	st := store.NewMemory()
	_ = st.SetUser(context.Background(), "u1", models.User{Email: "asha@example.com"})

	form := validDetailsForm()
	form.Set("pincode", "000001")

	r, g := asUser("u1")
	g.POST("/edit-home-details", SubmitHomeDetails(st))
	postForm(r, "/edit-home-details", form)

	u, _ := st.User(context.Background(), "u1")
	if u.Properties != nil {
		t.Error("invalid form should not create a listing")
	}
}

func TestDeleteMyHome(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()
	_ = st.SetUser(ctx, "u1", models.User{Email: "asha@example.com"})
	_ = st.UpdateProperty(ctx, "u1", map[string]interface{}{"house_status": models.StatusVerified})

	imgs := &fakeImages{}
	r, g := asUser("u1")
	g.POST("/my-home", DeleteMyHome(st, imgs))

	w := postForm(r, "/my-home", url.Values{})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}

	u, _ := st.User(ctx, "u1")
	if u.Properties != nil {
		t.Error("listing still present")
	}
	if len(imgs.removed) != 1 || imgs.removed[0] != "u1" {
		t.Errorf("uploads removed = %v", imgs.removed)
	}
}
