package cli

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/v1/rules" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		io.WriteString(w, `{"code":10000}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	data, err := c.Get(context.Background(), "/api/v1/rules")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(data) != `{"code":10000}` {
		t.Errorf("body = %s", data)
	}
}

func TestClientPostJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		if payload["code"] != "print(1)" {
			t.Errorf("payload = %v", payload)
		}
		io.WriteString(w, `{"code":10000}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	if _, err := c.PostJSON(context.Background(), "/api/v1/analyze", map[string]string{"code": "print(1)"}); err != nil {
		t.Fatalf("PostJSON: %v", err)
	}
}

func TestClientBaseURLTrimsSlash(t *testing.T) {
	c := NewClient("http://127.0.0.1:8080/", time.Second)
	if c.BaseURL() != "http://127.0.0.1:8080" {
		t.Errorf("BaseURL = %q", c.BaseURL())
	}
	c.SetBaseURL("http://other:9090///")
	if c.BaseURL() != "http://other:9090" {
		t.Errorf("BaseURL after set = %q", c.BaseURL())
	}
}

func TestClientContextCancel(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	c := NewClient(srv.URL, time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := c.Get(ctx, "/slow"); err == nil {
		t.Fatal("expected context deadline error")
	}
}
