package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/llm"
	"ats-backend/internal/shared/config"
)

type stubLLM struct{}

func (stubLLM) Analyze(ctx context.Context, input llm.AnalyzeInput) (string, error) {
	return "{}", nil
}

func TestHealthRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(config.Config{Port: "8080"}, stubLLM{})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestAddr(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ":8080"},
		{"9090", ":9090"},
		{":9090", ":9090"},
	}
	for _, tc := range cases {
		if got := Addr(tc.in); got != tc.want {
			t.Fatalf("Addr(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
