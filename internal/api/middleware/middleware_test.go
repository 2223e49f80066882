package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

const validUserID = "11111111-1111-1111-1111-111111111111"

func TestRequireUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		header     string
		query      string
		wantStatus int
		wantUserID string
	}{
		{
			name:       "header identity",
			header:     validUserID,
			wantStatus: http.StatusOK,
			wantUserID: validUserID,
		},
		{
			name:       "query identity",
			query:      validUserID,
			wantStatus: http.StatusOK,
			wantUserID: validUserID,
		},
		{
			name:       "upper case uuid is normalized",
			header:     "AAAAAAAA-BBBB-CCCC-DDDD-EEEEEEEEEEEE",
			wantStatus: http.StatusOK,
			wantUserID: "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
		},
		{
			name:       "missing identity",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed identity",
			header:     "1",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			r := gin.New()
			r.Use(RequireUser())
			r.GET("/test", func(c *gin.Context) {
				seen = GetUserID(c)
				c.Status(http.StatusOK)
			})

			target := "/test"
			if tt.query != "" {
				target += "?user_id=" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.header != "" {
				req.Header.Set(UserIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if seen != tt.wantUserID {
				t.Errorf("user id = %q, want %q", seen, tt.wantUserID)
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(60, 2)
	now := time.Now()
	rl.now = func() time.Time { return now }

	if !rl.Allow("a") || !rl.Allow("a") {
		t.Fatal("burst of 2 should be allowed")
	}
	if rl.Allow("a") {
		t.Error("third request in the same instant should be limited")
	}
	if !rl.Allow("b") {
		t.Error("keys must not share buckets")
	}

	// One token per second at 60/min.
	now = now.Add(time.Second)
	if !rl.Allow("a") {
		t.Error("token should refill after a second")
	}

	now = now.Add(staleAfter + time.Second)
	rl.Sweep()
	if rl.Len() != 0 {
		t.Errorf("expected stale keys to be swept, %d left", rl.Len())
	}
}

func TestPerUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequireUser())
	r.Use(PerUser(NewRateLimiter(1, 1)))
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(UserIDHeader, validUserID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Errorf("got statuses %v, want [200 429]", codes)
	}
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		allowed    []string
		origin     string
		method     string
		wantOrigin string
		wantStatus int
	}{
		{
			name:       "open policy echoes origin",
			origin:     "https://app.example",
			method:     http.MethodGet,
			wantOrigin: "https://app.example",
			wantStatus: http.StatusOK,
		},
		{
			name:       "allow list match",
			allowed:    []string{"https://app.example"},
			origin:     "https://app.example",
			method:     http.MethodGet,
			wantOrigin: "https://app.example",
			wantStatus: http.StatusOK,
		},
		{
			name:       "allow list miss",
			allowed:    []string{"https://app.example"},
			origin:     "https://evil.example",
			method:     http.MethodGet,
			wantOrigin: "",
			wantStatus: http.StatusOK,
		},
		{
			name:       "preflight",
			origin:     "https://app.example",
			method:     http.MethodOptions,
			wantOrigin: "https://app.example",
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(CORS(tt.allowed))
			r.Handle(tt.method, "/test", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(tt.method, "/test", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
		})
	}
}

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	if got := w.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", got)
	}
	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want nosniff", got)
	}
}
