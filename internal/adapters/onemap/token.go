package onemap

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// refreshMargin renews tokens slightly before their reported expiry.
const refreshMargin = 5 * time.Minute

// TokenSource implements ports.TokenProvider against the OneMap token
// endpoint. The token is cached until near expiry and refreshed on demand.
// A refresh failure yields an empty token (estimate-only mode), never an
// error. Safe for concurrent use; a race costs at most a redundant refresh.
type TokenSource struct {
	httpc    *http.Client
	baseURL  string
	email    string
	password string

	static string

	mu        sync.Mutex
	token     string
	expiresAt time.Time

	now func() time.Time
}

// NewTokenSource builds a refreshing source from account credentials.
func NewTokenSource(baseURL, email, password string) *TokenSource {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &TokenSource{
		httpc:    &http.Client{Timeout: 10 * time.Second},
		baseURL:  baseURL,
		email:    email,
		password: password,
		now:      time.Now,
	}
}

// NewStaticTokenSource wraps an externally managed token string.
func NewStaticTokenSource(token string) *TokenSource {
	return &TokenSource{static: token, now: time.Now}
}

// Token returns a usable token or "" when none can be obtained.
func (t *TokenSource) Token(ctx context.Context) string {
	if t.static != "" {
		return t.static
	}
	if t.email == "" || t.password == "" {
		return ""
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.token != "" && t.now().Before(t.expiresAt.Add(-refreshMargin)) {
		return t.token
	}

	token, expiresAt, err := t.fetch(ctx)
	if err != nil {
		log.Printf("token refresh failed, proceeding estimate-only: %v", err)
		return ""
	}

	t.token = token
	t.expiresAt = expiresAt
	return t.token
}

type tokenResponse struct {
	AccessToken     string `json:"access_token"`
	ExpiryTimestamp string `json:"expiry_timestamp"`
}

func (t *TokenSource) fetch(ctx context.Context) (string, time.Time, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    t.email,
		"password": t.password,
	})
	if err != nil {
		return "", time.Time{}, err
	}

	endpoint := t.baseURL + "/api/auth/post/getToken"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", time.Time{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpc.Do(req)
	if err != nil {
		return "", time.Time{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", time.Time{}, &httpStatusError{Code: resp.StatusCode}
	}

	var decoded tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", time.Time{}, err
	}

	expiresAt := t.now().Add(24 * time.Hour)
	if unix, err := strconv.ParseInt(decoded.ExpiryTimestamp, 10, 64); err == nil {
		expiresAt = time.Unix(unix, 0)
	}

	return decoded.AccessToken, expiresAt, nil
}
