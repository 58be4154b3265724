package netx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGet(t *testing.T) {
	t.Run("success 200 OK", func(t *testing.T) {
		var gotMethod, gotAccept, gotUA string

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotAccept = r.Header.Get("Accept")
			gotUA = r.Header.Get("User-Agent")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`[1,2,3]`))
		}))
		defer ts.Close()

		status, body, err := Get(context.Background(), ts.Client(), ts.URL+"/coins", "coinviewer-test")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != http.StatusOK {
			t.Fatalf("status = %d, want 200", status)
		}
		if string(body) != `[1,2,3]` {
			t.Fatalf("body = %q", string(body))
		}
		if gotMethod != http.MethodGet {
			t.Fatalf("method = %q, want GET", gotMethod)
		}
		if gotAccept != "application/json" {
			t.Fatalf("Accept = %q, want application/json", gotAccept)
		}
		if gotUA != "coinviewer-test" {
			t.Fatalf("User-Agent = %q, want coinviewer-test", gotUA)
		}
	})

	t.Run("non-2xx is not an error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"slow down"}`))
		}))
		defer ts.Close()

		status, body, err := Get(context.Background(), ts.Client(), ts.URL, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != http.StatusTooManyRequests {
			t.Fatalf("status = %d, want 429", status)
		}
		if len(body) == 0 {
			t.Fatal("expected error body to be returned")
		}
	})

	t.Run("network error", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		ts.Close()

		_, _, err := Get(context.Background(), http.DefaultClient, ts.URL, "")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		defer ts.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := Get(ctx, ts.Client(), ts.URL, "")
		if err == nil {
			t.Fatal("expected error for canceled context, got nil")
		}
	})
}

func TestIsSuccessful(t *testing.T) {
	for status, want := range map[int]bool{
		199: false, 200: true, 201: true, 204: true, 299: true,
		301: false, 404: false, 500: false, 503: false,
	} {
		if got := IsSuccessful(status); got != want {
			t.Fatalf("IsSuccessful(%d) = %v, want %v", status, got, want)
		}
	}
}
