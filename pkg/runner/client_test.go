package runner_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"conversation-intent-toolkit/pkg/runner"
)

func TestQuery(t *testing.T) {
	t.Run("Successful Query", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/query" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			var req runner.QueryRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("bad request body: %v", err)
			}
			if req.Query != "hotels in Paris" {
				t.Errorf("unexpected query %q", req.Query)
			}
			if req.SessionID != "sess-1" {
				t.Errorf("unexpected session id %q", req.SessionID)
			}
			json.NewEncoder(w).Encode(runner.QueryResponse{Result: "Here are some hotels"})
		}))
		defer srv.Close()

		c := runner.NewClient(srv.URL, "", 0)
		got, err := c.Query(context.Background(), "hotels in Paris", "sess-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "Here are some hotels" {
			t.Errorf("unexpected result %q", got)
		}
	})

	t.Run("HTTP Error Status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := runner.NewClient(srv.URL, "", 0)
		if _, err := c.Query(context.Background(), "q", ""); err == nil {
			t.Fatalf("expected error on 500 response")
		}
	})

	t.Run("Runner Error Field", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(runner.QueryResponse{Error: "No query provided"})
		}))
		defer srv.Close()

		c := runner.NewClient(srv.URL, "", 0)
		if _, err := c.Query(context.Background(), "q", ""); err == nil {
			t.Fatalf("expected error when runner reports one")
		}
	})

	t.Run("Model Is Forwarded", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req runner.QueryRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Model != "openai/gpt-5-mini" {
				t.Errorf("unexpected model %q", req.Model)
			}
			json.NewEncoder(w).Encode(runner.QueryResponse{Result: "ok"})
		}))
		defer srv.Close()

		c := runner.NewClient(srv.URL, "openai/gpt-5-mini", 0)
		if _, err := c.Query(context.Background(), "q", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
