package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"anoa.com/sekolahadmin/pkg/apperror"
)

func TestListUsers(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/users" {
			t.Errorf("path = %q, want /v1/users", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{
				"id": "user_2abc",
				"first_name": "Budi",
				"last_name": "Santoso",
				"email_addresses": [{"email_address": "budi@mail.com"}],
				"image_url": "https://img.clerk.com/budi.png"
			}
		]`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "sk_test_secret")
	users, err := c.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}

	if gotAuth != "Bearer sk_test_secret" {
		t.Errorf("Authorization = %q, want bearer secret", gotAuth)
	}
	if len(users) != 1 {
		t.Fatalf("got %d users, want 1", len(users))
	}
	if users[0].FullName() != "Budi Santoso" {
		t.Errorf("FullName = %q", users[0].FullName())
	}
	if users[0].PrimaryEmail() != "budi@mail.com" {
		t.Errorf("PrimaryEmail = %q", users[0].PrimaryEmail())
	}
}

func TestListUsersUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errors":[{"message":"Invalid API key"}]}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "bad-key")
	_, err := c.ListUsers(context.Background())
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}
	if !errors.Is(err, apperror.ErrUpstream) {
		t.Errorf("error %v should wrap apperror.ErrUpstream", err)
	}
}

func TestListUsersNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // closed before use

	c := NewClient(server.URL, "sk")
	_, err := c.ListUsers(context.Background())
	if !errors.Is(err, apperror.ErrUpstream) {
		t.Errorf("network failure should wrap apperror.ErrUpstream, got %v", err)
	}
}

func TestListUsersMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "sk")
	if _, err := c.ListUsers(context.Background()); !errors.Is(err, apperror.ErrUpstream) {
		t.Errorf("malformed body should wrap apperror.ErrUpstream, got %v", err)
	}
}
