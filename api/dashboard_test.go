package api

import (
	"fmt"
	"jobtrackr/api/internal/model"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestDashboardStats(t *testing.T) {
	a, _ := newTestAPI(t)
	token := registerUser(t, a, "dash@example.com")

	// Three applications land this week, one of them rejected
	appID := createApplication(t, a, token, "Acme")
	createApplication(t, a, token, "Globex")
	rejected := createApplication(t, a, token, "Initech")

	w := doJSON(t, a, "PUT", fmt.Sprintf("/api/applications/%d", rejected), token, gin.H{
		"status": model.AppStatusRejected,
	})
	if w.Code != http.StatusOK {
		t.Fatal(w.Body.String())
	}

	// Two scheduled interviews within the week
	createInterview(t, a, token, appID, time.Now().Add(time.Minute))
	createInterview(t, a, token, appID, time.Now().Add(2*time.Minute))

	w = doJSON(t, a, "GET", "/api/dashboard/stats", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got %d: %s", w.Code, w.Body.String())
	}

	data := decode(t, w)["data"].(map[string]any)

	apps := data["applications"].(map[string]any)
	if apps["total"].(float64) != 3 {
		t.Errorf("applications total = %v, want 3", apps["total"])
	}
	if apps["weeklyChange"].(float64) != 3 {
		t.Errorf("applications weeklyChange = %v, want 3", apps["weeklyChange"])
	}

	interviews := data["interviews"].(map[string]any)
	if interviews["upcoming"].(float64) != 2 {
		t.Errorf("interviews upcoming = %v, want 2", interviews["upcoming"])
	}
	if interviews["thisWeek"].(float64) != 2 {
		t.Errorf("interviews thisWeek = %v, want 2", interviews["thisWeek"])
	}

	rejections := data["rejections"].(map[string]any)
	if rejections["total"].(float64) != 1 {
		t.Errorf("rejections total = %v, want 1", rejections["total"])
	}
	if rejections["weeklyChange"].(float64) != 1 {
		t.Errorf("rejections weeklyChange = %v, want 1", rejections["weeklyChange"])
	}
}

func TestDashboardStatsIsScoped(t *testing.T) {
	a, _ := newTestAPI(t)
	alice := registerUser(t, a, "alice@example.com")
	bob := registerUser(t, a, "bob@example.com")

	createApplication(t, a, alice, "Acme")

	// Warm alice's cache first, bob must still get his own numbers
	if w := doJSON(t, a, "GET", "/api/dashboard/stats", alice, nil); w.Code != http.StatusOK {
		t.Fatal(w.Body.String())
	}

	w := doJSON(t, a, "GET", "/api/dashboard/stats", bob, nil)
	if w.Code != http.StatusOK {
		t.Fatal(w.Body.String())
	}

	data := decode(t, w)["data"].(map[string]any)
	apps := data["applications"].(map[string]any)
	if apps["total"].(float64) != 0 {
		t.Fatal("one user got another's cached dashboard")
	}
}

func TestDashboardActivity(t *testing.T) {
	a, _ := newTestAPI(t)
	token := registerUser(t, a, "dash@example.com")

	appID := createApplication(t, a, token, "Acme")
	createInterview(t, a, token, appID, time.Now().AddDate(0, 0, 3))
	createInterview(t, a, token, appID, time.Now().AddDate(0, 0, -3))

	w := doJSON(t, a, "GET", "/api/dashboard/activity", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got %d: %s", w.Code, w.Body.String())
	}

	data := decode(t, w)["data"].(map[string]any)

	recent := data["recentApplications"].([]any)
	if len(recent) != 1 {
		t.Fatalf("recentApplications has %d entries, want 1", len(recent))
	}

	// Only the future interview shows up
	upcoming := data["upcomingInterviews"].([]any)
	if len(upcoming) != 1 {
		t.Fatalf("upcomingInterviews has %d entries, want 1", len(upcoming))
	}
}

func TestDashboardTimeline(t *testing.T) {
	a, _ := newTestAPI(t)
	token := registerUser(t, a, "dash@example.com")

	// The application lands now, the interview a minute later
	appID := createApplication(t, a, token, "Acme")
	createInterview(t, a, token, appID, time.Now().Add(time.Minute))

	w := doJSON(t, a, "GET", "/api/dashboard/timeline", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got %d: %s", w.Code, w.Body.String())
	}

	data := decode(t, w)["data"].([]any)
	if len(data) != 2 {
		t.Fatalf("timeline has %d events, want 2", len(data))
	}

	first := data[0].(map[string]any)
	second := data[1].(map[string]any)

	// Newest first: the interview outranks the application it follows
	if first["type"] != "interview" || second["type"] != "application" {
		t.Fatalf("timeline order wrong: %v then %v", first["type"], second["type"])
	}

	if first["subtitle"] != "Acme - Engineer" {
		t.Errorf("interview subtitle = %v", first["subtitle"])
	}
	if second["title"] != "Applied to Acme" {
		t.Errorf("application title = %v", second["title"])
	}
}
