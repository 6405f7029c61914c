package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/NateDevIO/MacroMeter/config"
	"github.com/NateDevIO/MacroMeter/models"
)

const (
	usdaBaseURL    = "https://api.nal.usda.gov/fdc/v1"
	searchPageSize = 5
	maxAttempts    = 4
	baseBackoff    = 500 * time.Millisecond

	// Queries past this length still go out, but matching gets noticeably
	// worse; callers surface a warning.
	LongQueryChars = 200
)

// ResolveKind classifies a failed nutrition lookup so callers can decide
// between remediation (credentials), retry-later, and giving up.
type ResolveKind string

const (
	KindNotConfigured ResolveKind = "not_configured"
	KindNoMatch       ResolveKind = "no_match"
	KindAuthFailed    ResolveKind = "auth_failed"
	KindRateLimited   ResolveKind = "rate_limited"
	KindTransient     ResolveKind = "transient"
	KindClientError   ResolveKind = "client_error"
)

// ResolveError is the terminal outcome of a lookup that produced no macros.
type ResolveError struct {
	Kind    ResolveKind
	Message string
}

func (e *ResolveError) Error() string { return e.Message }

// NeedsKey reports whether the failure is fixable by (re)configuring the
// USDA API key.
func (e *ResolveError) NeedsKey() bool {
	return e.Kind == KindNotConfigured || e.Kind == KindAuthFailed
}

// USDAService resolves free-text food descriptions against the USDA
// FoodData Central search endpoint. The API key is read through a provider
// on every call rather than captured at construction, so late-arriving
// configuration takes effect without rebuilding the client.
type USDAService struct {
	baseURL string
	apiKey  func() string
	backoff time.Duration
	client  *http.Client
}

func NewUSDAService() *USDAService {
	baseURL := usdaBaseURL
	if v := os.Getenv("USDA_API_URL"); v != "" {
		baseURL = v
	}
	return &USDAService{
		baseURL: baseURL,
		apiKey:  config.APIKey,
		backoff: baseBackoff,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type foodSearchResponse struct {
	Foods []struct {
		Description   string `json:"description"`
		FoodNutrients []struct {
			NutrientName string  `json:"nutrientName"`
			Value        float64 `json:"value"`
		} `json:"foodNutrients"`
	} `json:"foods"`
}

// Resolve looks up the query and returns the macros of the highest-ranked
// match. Transient failures (timeouts, connection errors, 429, 5xx) are
// retried with increasing backoff; other 4xx responses surface immediately.
// Every call is a fresh round trip, nothing is cached.
func (s *USDAService) Resolve(query string) (models.MacroSet, error) {
	key := s.apiKey()
	if key == "" || key == "your_api_key_here" {
		return models.MacroSet{}, &ResolveError{
			Kind:    KindNotConfigured,
			Message: "USDA API key not configured. Add USDA_API_KEY to the environment or .env file.",
		}
	}

	params := url.Values{
		"api_key":  {key},
		"query":    {query},
		"pageSize": {fmt.Sprint(searchPageSize)},
		"dataType": {"Survey (FNDDS),Foundation,SR Legacy"},
	}
	endpoint := s.baseURL + "/foods/search?" + params.Encode()

	var lastErr *ResolveError
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(s.backoff * time.Duration(attempt))
		}

		resp, err := s.client.Get(endpoint)
		if err != nil {
			lastErr = &ResolveError{
				Kind:    KindTransient,
				Message: fmt.Sprintf("unable to reach the USDA API: %v", err),
			}
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = &ResolveError{
				Kind:    KindTransient,
				Message: fmt.Sprintf("failed to read USDA response: %v", err),
			}
			continue
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			return parseSearchResult(query, body)

		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			return models.MacroSet{}, &ResolveError{
				Kind:    KindAuthFailed,
				Message: "USDA API authentication failed. Please check your API key.",
			}

		case resp.StatusCode == http.StatusTooManyRequests:
			lastErr = &ResolveError{
				Kind:    KindRateLimited,
				Message: "USDA API rate limit reached. Please wait a moment.",
			}

		case resp.StatusCode >= 500:
			lastErr = &ResolveError{
				Kind:    KindTransient,
				Message: fmt.Sprintf("USDA API temporarily unavailable (HTTP %d)", resp.StatusCode),
			}

		default:
			// 400 and the remaining 4xx family are terminal: the request
			// itself is wrong, repeating it cannot help.
			return models.MacroSet{}, &ResolveError{
				Kind:    KindClientError,
				Message: fmt.Sprintf("USDA API rejected the request (HTTP %d). Try a simpler search term.", resp.StatusCode),
			}
		}
	}

	if lastErr == nil {
		lastErr = &ResolveError{Kind: KindTransient, Message: "lookup failed after multiple attempts"}
	}
	return models.MacroSet{}, lastErr
}

func parseSearchResult(query string, body []byte) (models.MacroSet, error) {
	var sr foodSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return models.MacroSet{}, &ResolveError{
			Kind:    KindTransient,
			Message: fmt.Sprintf("failed to parse USDA response: %v", err),
		}
	}
	if len(sr.Foods) == 0 {
		return models.MacroSet{}, &ResolveError{
			Kind:    KindNoMatch,
			Message: fmt.Sprintf("couldn't find nutrition data for %q. Try being more specific.", query),
		}
	}

	// The first result is the upstream's best match; no re-ranking here.
	nutrients := make(map[string]float64, len(sr.Foods[0].FoodNutrients))
	for _, n := range sr.Foods[0].FoodNutrients {
		nutrients[n.NutrientName] = n.Value
	}

	m := models.MacroSet{
		Calories: nutrients["Energy"],
		Protein:  nutrients["Protein"],
		Carbs:    nutrients["Carbohydrate, by difference"],
		Fat:      nutrients["Total lipid (fat)"],
	}
	if m.Calories == 0 {
		m.Calories = nutrients["Energy (Atwater General Factors)"]
	}
	return m, nil
}
