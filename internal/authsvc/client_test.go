package authsvc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestServer(t *testing.T, contacts string, tokenStatus int) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("token method = %s, want POST", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("failed to parse token form: %v", err)
		}
		if got := r.PostFormValue("grant_type"); got != "client_credentials" {
			t.Errorf("grant_type = %s, want client_credentials", got)
		}
		if tokenStatus != http.StatusOK {
			w.WriteHeader(tokenStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "test-token"})
	})
	mux.HandleFunc("/entities/", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("authorization = %q, want bearer test-token", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(contacts))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()

	client, err := NewClient(Config{
		AuthSvcURL:   srv.URL,
		TokenURL:     srv.URL + "/token",
		ClientID:     "furnishings-job",
		ClientSecret: "secret",
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}

func TestGetContactEmail(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, `{"contacts":[{"email":"test@no-reply.com"}]}`, http.StatusOK)
	client := newTestClient(t, srv)

	email, err := client.GetContactEmail(context.Background(), "BC1234567")
	if err != nil {
		t.Fatalf("GetContactEmail() error = %v", err)
	}
	if email != "test@no-reply.com" {
		t.Fatalf("email = %q, want test@no-reply.com", email)
	}
}

func TestGetContactEmailNoContacts(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, `{"contacts":[]}`, http.StatusOK)
	client := newTestClient(t, srv)

	email, err := client.GetContactEmail(context.Background(), "BC1234567")
	if err != nil {
		t.Fatalf("GetContactEmail() error = %v", err)
	}
	if email != "" {
		t.Fatalf("email = %q, want empty", email)
	}
}

func TestGetContactEmailTokenFailure(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, `{"contacts":[]}`, http.StatusUnauthorized)
	client := newTestClient(t, srv)

	_, err := client.GetContactEmail(context.Background(), "BC1234567")
	if err == nil {
		t.Fatal("expected error when token exchange fails")
	}
	if !strings.Contains(err.Error(), "token exchange") {
		t.Fatalf("error = %v, want token exchange failure", err)
	}
}

func TestGetContactEmailRequiresIdentifier(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, `{"contacts":[]}`, http.StatusOK)
	client := newTestClient(t, srv)

	if _, err := client.GetContactEmail(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty identifier")
	}
}

func TestNewClientValidation(t *testing.T) {
	t.Parallel()

	_, err := NewClient(Config{TokenURL: "https://sso.example.com/token", ClientID: "id", ClientSecret: "s"})
	if err == nil {
		t.Fatal("expected error for missing auth service url")
	}

	_, err = NewClient(Config{AuthSvcURL: "https://auth.example.com", TokenURL: "https://sso.example.com/token"})
	if err == nil {
		t.Fatal("expected error for missing client credentials")
	}
}
