package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/smadsen/powerium/models"
	"github.com/smadsen/powerium/repository"
	"github.com/smadsen/powerium/session"
	"github.com/smadsen/powerium/views"
)

type fakeUserRepo struct {
	users     map[string]*models.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, name, email, password string) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
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
	records   []models.UsageRecord
	createErr error
	getErr    error
}

func (f *fakeUsageRepo) CreateUsageRecord(ctx context.Context, rec *models.UsageRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	rec.ID = primitive.NewObjectID()
	rec.DateCreated = time.Now().UTC()
	f.records = append(f.records, *rec)
	return nil
}

func (f *fakeUsageRepo) GetUsageByUser(ctx context.Context, userID primitive.ObjectID) ([]models.UsageRecord, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	var out []models.UsageRecord
	for _, rec := range f.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

var (
	_ repository.UserRepository  = (*fakeUserRepo)(nil)
	_ repository.UsageRepository = (*fakeUsageRepo)(nil)
)

func newRenderer(t *testing.T) *views.Renderer {
	t.Helper()
	v, err := views.NewRenderer()
	require.NoError(t, err)
	return v
}

func formRequest(target string, values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

// loginAs registers nothing; it authenticates an existing user and
// returns the resulting session cookie.
func loginAs(t *testing.T, sm *session.Manager, email, password string) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, sm.Authenticate(w, r, email, password))
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies[0]
}

func validUsageValues() url.Values {
	return url.Values{
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
	}
}
