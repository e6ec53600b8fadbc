package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vkotlyar/homesense/internal/common"
)

func TestComplete_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("email"); got != "demo@example.com" {
			t.Errorf("unexpected email header: %q", got)
		}
		if got := r.Header.Get("pid"); got != "A123" {
			t.Errorf("unexpected pid header: %q", got)
		}
		var req completeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Prompt != "what to wear" {
			t.Errorf("unexpected request body: %+v (%v)", req, err)
		}
		fmt.Fprint(w, `{"result":{"response":"a light jacket"}}`)
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	out, err := c.Complete(context.Background(), "demo@example.com", "A123", "what to wear")
	if err != nil {
		t.Fatalf("Complete error: %v", err)
	}
	if out != "a light jacket" {
		t.Fatalf("unexpected completion: %q", out)
	}
}

func TestComplete_EmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":{}}`)
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	out, err := c.Complete(context.Background(), "demo@example.com", "A123", "hello")
	if err != nil {
		t.Fatalf("Complete error: %v", err)
	}
	if out != emptyCompletion {
		t.Fatalf("unexpected completion: %q", out)
	}
}

func TestComplete_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	_, err := c.Complete(context.Background(), "demo@example.com", "A123", "hello")
	if !errors.Is(err, common.ErrorUpstream) {
		t.Fatalf("want common.ErrorUpstream, got %v", err)
	}
}

func TestComplete_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithHTTPClient(&http.Client{Timeout: 20 * time.Millisecond}))
	_, err := c.Complete(context.Background(), "demo@example.com", "A123", "hello")
	if !errors.Is(err, common.ErrorUpstreamTimeout) {
		t.Fatalf("want common.ErrorUpstreamTimeout, got %v", err)
	}
}

func TestComplete_EmptyPrompt(t *testing.T) {
	c := New()
	_, err := c.Complete(context.Background(), "demo@example.com", "A123", "")
	if !errors.Is(err, common.ErrorInvalidRequest) {
		t.Fatalf("want common.ErrorInvalidRequest, got %v", err)
	}
}
