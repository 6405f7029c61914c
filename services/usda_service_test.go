package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testService(serverURL string) *USDAService {
	return &USDAService{
		baseURL: serverURL,
		apiKey:  func() string { return "test-key" },
		backoff: 0,
		client:  &http.Client{Timeout: 2 * time.Second},
	}
}

const searchBody = `{
  "foods": [
    {
      "description": "Egg, whole, cooked",
      "foodNutrients": [
        {"nutrientName": "Energy", "value": 155},
        {"nutrientName": "Protein", "value": 12.6},
        {"nutrientName": "Carbohydrate, by difference", "value": 1.1},
        {"nutrientName": "Total lipid (fat)", "value": 10.6}
      ]
    },
    {"description": "Egg substitute", "foodNutrients": []}
  ]
}`

func TestResolveSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != "2 eggs" {
			t.Errorf("unexpected query param: %q", got)
		}
		if r.URL.Query().Get("api_key") == "" {
			t.Error("api_key param missing")
		}
		fmt.Fprint(w, searchBody)
	}))
	defer server.Close()

	m, err := testService(server.URL).Resolve("2 eggs")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if m.Calories != 155 || m.Protein != 12.6 || m.Carbs != 1.1 || m.Fat != 10.6 {
		t.Errorf("unexpected macros: %+v", m)
	}
}

func TestResolveAtwaterFallback(t *testing.T) {
	body := `{"foods": [{"description": "Almonds", "foodNutrients": [
		{"nutrientName": "Energy", "value": 0},
		{"nutrientName": "Energy (Atwater General Factors)", "value": 598},
		{"nutrientName": "Protein", "value": 21}
	]}]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	defer server.Close()

	m, err := testService(server.URL).Resolve("almonds")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if m.Calories != 598 {
		t.Errorf("expected Atwater energy 598, got %v", m.Calories)
	}
	if m.Fat != 0 {
		t.Errorf("missing nutrient should default to 0, got %v", m.Fat)
	}
}

func TestResolveNoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"foods": []}`)
	}))
	defer server.Close()

	_, err := testService(server.URL).Resolve("xyzzy")
	re, ok := err.(*ResolveError)
	if !ok {
		t.Fatalf("expected *ResolveError, got %v", err)
	}
	if re.Kind != KindNoMatch {
		t.Errorf("expected no_match, got %s", re.Kind)
	}
}

func TestResolveNotConfigured(t *testing.T) {
	s := testService("http://unused")
	s.apiKey = func() string { return "" }

	_, err := s.Resolve("2 eggs")
	re, ok := err.(*ResolveError)
	if !ok || re.Kind != KindNotConfigured {
		t.Fatalf("expected not_configured, got %v", err)
	}
	if !re.NeedsKey() {
		t.Error("not_configured should report NeedsKey")
	}
}

func TestResolveClientErrorNotRetried(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	_, err := testService(server.URL).Resolve("???")
	re, ok := err.(*ResolveError)
	if !ok || re.Kind != KindClientError {
		t.Fatalf("expected client_error, got %v", err)
	}
	if attempts != 1 {
		t.Errorf("400 must not be retried, saw %d attempts", attempts)
	}
}

func TestResolveAuthFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := testService(server.URL).Resolve("2 eggs")
	re, ok := err.(*ResolveError)
	if !ok || re.Kind != KindAuthFailed {
		t.Fatalf("expected auth_failed, got %v", err)
	}
	if !re.NeedsKey() {
		t.Error("auth_failed should report NeedsKey")
	}
}

func TestResolveRetriesServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts <= 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, searchBody)
	}))
	defer server.Close()

	m, err := testService(server.URL).Resolve("2 eggs")
	if err != nil {
		t.Fatalf("expected success on fourth attempt, got %v", err)
	}
	if m.Calories != 155 {
		t.Errorf("unexpected calories: %v", m.Calories)
	}
	if attempts != 4 {
		t.Errorf("expected 4 attempts, got %d", attempts)
	}
}

func TestResolveTransientAfterBudget(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := testService(server.URL).Resolve("2 eggs")
	re, ok := err.(*ResolveError)
	if !ok || re.Kind != KindTransient {
		t.Fatalf("expected transient, got %v", err)
	}
	if attempts != maxAttempts {
		t.Errorf("expected %d attempts, got %d", maxAttempts, attempts)
	}
}

func TestResolveRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := testService(server.URL).Resolve("2 eggs")
	re, ok := err.(*ResolveError)
	if !ok || re.Kind != KindRateLimited {
		t.Fatalf("expected rate_limited, got %v", err)
	}
}
