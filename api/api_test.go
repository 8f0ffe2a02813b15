package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"jobtrackr/api/internal/model"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	viper.Set("jwt.secret", "test-secret")
	viper.Set("jwt.expiry_days", 30)
	viper.Set("host.frontend_url", "http://localhost:3000")
	viper.Set("reset.token_ttl_minutes", 10)

	os.Exit(m.Run())
}

// fakeMailer records the last reset mail instead of delivering it, and
// can be told to fail to exercise the rollback path
type fakeMailer struct {
	fail bool
	to   string
	url  string
}

func (m *fakeMailer) SendResetPasswordMail(to, resetURL string) error {
	if m.fail {
		return errors.New("smtp unavailable")
	}

	m.to = to
	m.url = resetURL
	return nil
}

// newTestAPI builds the full router around a fresh in-memory database,
// one per test so state never leaks between them
func newTestAPI(t *testing.T) (*API, *fakeMailer) {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	d, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := d.AutoMigrate(model.User{}, model.Application{}, model.Interview{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	mail := &fakeMailer{}
	return New(d, mail), mail
}

func doJSON(t *testing.T, a *API, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		r = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON response %q: %v", w.Body.String(), err)
	}
	return out
}

// registerUser creates an account through the real endpoint and returns
// its session token
func registerUser(t *testing.T, a *API, email string) string {
	t.Helper()

	w := doJSON(t, a, "POST", "/api/auth/register", "", gin.H{
		"email":     email,
		"password":  "password123",
		"firstName": "Test",
		"lastName":  "User",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register returned %d: %s", w.Code, w.Body.String())
	}

	return decode(t, w)["token"].(string)
}

// createApplication posts a minimal application and returns its ID
func createApplication(t *testing.T, a *API, token, company string) uint {
	t.Helper()

	w := doJSON(t, a, "POST", "/api/applications", token, gin.H{
		"company":  company,
		"position": "Engineer",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create application returned %d: %s", w.Code, w.Body.String())
	}

	data := decode(t, w)["data"].(map[string]any)
	return uint(data["id"].(float64))
}

func TestUserCacheKey(t *testing.T) {
	k1 := UserCacheKey("alice", "/api/dashboard/stats")
	k2 := UserCacheKey("bob", "/api/dashboard/stats")

	if k1 == k2 {
		t.Fatal("cache keys for different users collide")
	}
}
