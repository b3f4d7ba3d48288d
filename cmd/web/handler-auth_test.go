package main

import (
	"net/http"
	"testing"

	"github.com/Gym-Brothers/Server/internal/e2etest"
	"github.com/Gym-Brothers/Server/internal/testhelpers"
)

func testLookupEnv(key string) (string, bool) {
	switch key {
	case "GYMBRO_SQLITE_URL":
		return ":memory:", true
	case "GYMBRO_ADDR":
		return "localhost:0", true
	case "GYMBRO_SECURE_COOKIES":
		return "false", true
	default:
		return "", false
	}
}

func Test_application_login(t *testing.T) {
	ctx := t.Context()

	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()

	// Protected endpoints reject anonymous requests.
	resp, err := client.Get(ctx, "/api/users/me")
	if err != nil {
		t.Fatalf("Failed to get current user: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("anonymous /api/users/me status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}

	// Unknown users cannot log in.
	if err = client.Login(ctx, 9999); err == nil {
		t.Error("expected login with unknown user to fail")
	}

	// The seeded demo user can.
	if err = client.Login(ctx, 1); err != nil {
		t.Fatalf("Failed to login: %v", err)
	}

	var user struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	if err = client.GetJSON(ctx, "/api/users/me", &user); err != nil {
		t.Fatalf("Failed to get current user: %v", err)
	}
	if user.ID != 1 || user.Name == "" {
		t.Errorf("current user = %+v, want the seeded user with ID 1", user)
	}

	// Logout invalidates the session.
	if err = client.Logout(ctx); err != nil {
		t.Fatalf("Failed to logout: %v", err)
	}
	resp, err = client.Get(ctx, "/api/users/me")
	if err != nil {
		t.Fatalf("Failed to get current user: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("post-logout /api/users/me status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
}
