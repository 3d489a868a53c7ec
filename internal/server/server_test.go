package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNormalizeAddr(t *testing.T) {
	cases := map[string]string{
		"":      "",
		"8080":  ":8080",
		":9090": ":9090",
	}
	for in, want := range cases {
		if got := normalizeAddr(in); got != want {
			t.Errorf("normalizeAddr(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWithCORS(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	cases := []struct {
		name    string
		allowed []string
		origin  string
		want    string
	}{
		{"allowed origin", []string{"http://phone.local"}, "http://phone.local", "http://phone.local"},
		{"foreign origin", []string{"http://phone.local"}, "http://evil.example", ""},
		{"any origin by default", nil, "http://anywhere.example", "*"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := WithCORS(ok, tc.allowed)

			req := httptest.NewRequest(http.MethodOptions, "/api/v1/session/start", nil)
			req.Header.Set("Origin", tc.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			req.Header.Set("Access-Control-Request-Headers", "Authorization")
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tc.want {
				t.Fatalf("Allow-Origin = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestShutdownBeforeRun(t *testing.T) {
	var s Server
	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown without run: %v", err)
	}
}
