package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestVaryAddsAccept(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api", nil)

	h := Vary()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Vary"); got != "Accept" {
		t.Fatalf("expected Vary: Accept, got %q", got)
	}
}
