package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/smadsen/powerium/middleware"
	"github.com/smadsen/powerium/models"
	"github.com/smadsen/powerium/repository"
	"github.com/smadsen/powerium/session"
	"github.com/smadsen/powerium/views"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, name, email, password string) (*models.User, error) {
	if _, ok := f.users[email]; ok {
		return nil, repository.ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	f.users[email] = u
	return u, nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.users[email], nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

type fakeUsageRepo struct {
	records []models.UsageRecord
}

func (f *fakeUsageRepo) CreateUsageRecord(ctx context.Context, rec *models.UsageRecord) error {
	rec.ID = primitive.NewObjectID()
	rec.DateCreated = time.Now().UTC()
	f.records = append(f.records, *rec)
	return nil
}

func (f *fakeUsageRepo) GetUsageByUser(ctx context.Context, userID primitive.ObjectID) ([]models.UsageRecord, error) {
	var out []models.UsageRecord
	for _, rec := range f.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

// newApp spins up the full route table behind a test server, wrapped
// the way main wraps it, plus a cookie-carrying client.
func newApp(t *testing.T) (*httptest.Server, *http.Client, *fakeUserRepo, *fakeUsageRepo) {
	t.Helper()
	users := &fakeUserRepo{users: make(map[string]*models.User)}
	usage := &fakeUsageRepo{}
	sm := session.NewManager("test-secret", users)
	v, err := views.NewRenderer()
	require.NoError(t, err)

	r := SetupRoutes(sm, users, usage, v)
	srv := httptest.NewServer(middleware.MethodOverride(r))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return srv, &http.Client{Jar: jar}, users, usage
}

func get(t *testing.T, client *http.Client, base, path string) (*http.Response, string) {
	t.Helper()
	resp, err := client.Get(base + path)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, string(body)
}

func postForm(t *testing.T, client *http.Client, base, path string, values url.Values) (*http.Response, string) {
	t.Helper()
	resp, err := client.PostForm(base+path, values)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, string(body)
}

func TestAnonymousIsRedirectedToLogin(t *testing.T) {
	srv, client, _, _ := newApp(t)

	for _, path := range []string{"/", "/inputs", "/trends", "/suggestions"} {
		resp, _ := get(t, client, srv.URL, path)
		assert.Equal(t, "/login", resp.Request.URL.Path, "path %s", path)
	}
}

func TestPublicPagesNeedNoSession(t *testing.T) {
	srv, client, _, _ := newApp(t)

	for path, want := range map[string]string{
		"/about":   "About Powerium",
		"/contact": "Help",
	} {
		resp, body := get(t, client, srv.URL, path)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, want)
	}
}

func TestRegisterLoginSubmitAndLogout(t *testing.T) {
	srv, client, _, usage := newApp(t)

	// Register lands on the login page with a notice.
	resp, body := postForm(t, client, srv.URL, "/register", url.Values{
		"name":     {"A"},
		"email":    {"a@x.com"},
		"password": {"p1"},
	})
	assert.Equal(t, "/login", resp.Request.URL.Path)
	assert.Contains(t, body, "Account created")

	// Login lands on the home page.
	resp, body = postForm(t, client, srv.URL, "/login", url.Values{
		"email":    {"a@x.com"},
		"password": {"p1"},
	})
	assert.Equal(t, "/", resp.Request.URL.Path)
	assert.Contains(t, body, "Welcome back")

	// Authenticated visits to login and register bounce home.
	resp, _ = get(t, client, srv.URL, "/login")
	assert.Equal(t, "/", resp.Request.URL.Path)
	resp, _ = get(t, client, srv.URL, "/register")
	assert.Equal(t, "/", resp.Request.URL.Path)

	// Submit usage; the record belongs to the logged-in user.
	resp, body = postForm(t, client, srv.URL, "/inputs", url.Values{
		"lightType":           {"led"},
		"natType":             {"often"},
		"tintUse":             {"no"},
		"thermoType":          {"smart"},
		"plugType":            {"yes"},
		"waterTemp":           {"125"},
		"sinkUsage":           {"20"},
		"showerLength":        {"10"},
		"airConditioningTemp": {"72"},
		"eatingOut":           {"3"},
	})
	assert.Equal(t, "/", resp.Request.URL.Path)
	assert.Contains(t, body, "Usage saved")
	require.Len(t, usage.records, 1)

	resp, body = get(t, client, srv.URL, "/trends")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "led")

	resp, body = get(t, client, srv.URL, "/suggestions")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "water heater")

	// Logout goes through the method-override DELETE route.
	resp, _ = postForm(t, client, srv.URL, "/logout", url.Values{
		"_method": {"DELETE"},
	})
	assert.Equal(t, "/login", resp.Request.URL.Path)

	// The old session no longer opens protected pages.
	resp, _ = get(t, client, srv.URL, "/")
	assert.Equal(t, "/login", resp.Request.URL.Path)
}

func TestLoginWithWrongPasswordShowsFlash(t *testing.T) {
	srv, client, users, _ := newApp(t)
	_, err := users.CreateUser(context.Background(), "A", "a@x.com", "p1")
	require.NoError(t, err)

	resp, body := postForm(t, client, srv.URL, "/login", url.Values{
		"email":    {"a@x.com"},
		"password": {"wrong"},
	})
	assert.Equal(t, "/login", resp.Request.URL.Path)
	assert.Contains(t, body, "Invalid email or password")

	// Still anonymous: home redirects to login.
	resp, _ = get(t, client, srv.URL, "/")
	assert.Equal(t, "/login", resp.Request.URL.Path)
}
