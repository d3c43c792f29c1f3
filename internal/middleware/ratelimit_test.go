package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimiterKeysByRemoteAddr(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	handler := rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/blocks", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	// Burst of 2 per address, then throttled.
	if code := send("10.0.0.1:1234"); code != http.StatusOK {
		t.Fatalf("first request: status = %d", code)
	}
	if code := send("10.0.0.1:1234"); code != http.StatusOK {
		t.Fatalf("second request: status = %d", code)
	}
	if code := send("10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Fatalf("third request: status = %d, want 429", code)
	}

	// A different address has its own bucket.
	if code := send("10.0.0.2:1234"); code != http.StatusOK {
		t.Fatalf("other client: status = %d", code)
	}
}
