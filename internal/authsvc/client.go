// Package authsvc talks to the account service: a bearer-token exchange and
// the entity-contacts lookup used to resolve a business's notification email.
package authsvc

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 20 * time.Second

// ContactLookup resolves the contact email for a business identifier.
// An empty string means no contact email exists; that is not an error.
type ContactLookup interface {
	GetContactEmail(ctx context.Context, identifier string) (string, error)
}

type Config struct {
	AuthSvcURL   string
	TokenURL     string
	ClientID     string
	ClientSecret string
}

// Client implements ContactLookup against the account service. The bearer
// token is exchanged on demand per lookup; no token caching is assumed here.
type Client struct {
	http *resty.Client
	cfg  Config
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type contactsResponse struct {
	Contacts []struct {
		Email string `json:"email"`
	} `json:"contacts"`
}

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.AuthSvcURL) == "" {
		return nil, fmt.Errorf("auth service url is required")
	}
	if strings.TrimSpace(cfg.TokenURL) == "" {
		return nil, fmt.Errorf("token url is required")
	}
	if strings.TrimSpace(cfg.ClientID) == "" || strings.TrimSpace(cfg.ClientSecret) == "" {
		return nil, fmt.Errorf("client credentials are required")
	}

	client := resty.New()
	client.SetTimeout(defaultTimeout)
	client.SetRetryCount(0)

	return NewClientWithResty(cfg, client)
}

func NewClientWithResty(cfg Config, httpClient *resty.Client) (*Client, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("resty client is required")
	}
	if httpClient.GetClient().Timeout == 0 {
		httpClient.SetTimeout(defaultTimeout)
	}

	return &Client{
		http: httpClient,
		cfg:  cfg,
	}, nil
}

// BearerToken performs a client-credentials exchange against the account
// service token endpoint.
func (c *Client) BearerToken(ctx context.Context) (string, error) {
	var token tokenResponse
	response, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetFormData(map[string]string{
			"grant_type":    "client_credentials",
			"client_id":     c.cfg.ClientID,
			"client_secret": c.cfg.ClientSecret,
		}).
		SetResult(&token).
		Post(c.cfg.TokenURL)
	if err != nil {
		return "", fmt.Errorf("token exchange request failed: %w", err)
	}
	if response.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("token exchange returned status %d", response.StatusCode())
	}
	if strings.TrimSpace(token.AccessToken) == "" {
		return "", fmt.Errorf("token exchange returned empty access token")
	}

	return token.AccessToken, nil
}

func (c *Client) GetContactEmail(ctx context.Context, identifier string) (string, error) {
	trimmed := strings.TrimSpace(identifier)
	if trimmed == "" {
		return "", fmt.Errorf("business identifier is required")
	}

	token, err := c.BearerToken(ctx)
	if err != nil {
		return "", err
	}

	var contacts contactsResponse
	response, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&contacts).
		Get(fmt.Sprintf("%s/entities/%s/contacts", strings.TrimRight(c.cfg.AuthSvcURL, "/"), trimmed))
	if err != nil {
		return "", fmt.Errorf("contact lookup request failed: %w", err)
	}
	if response.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("contact lookup returned status %d", response.StatusCode())
	}

	for _, contact := range contacts.Contacts {
		if email := strings.TrimSpace(contact.Email); email != "" {
			return email, nil
		}
	}

	return "", nil
}
