package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	authUsecases "mesaayuda/internal/application/auth/usecases"
	userUsecases "mesaayuda/internal/application/user/usecases"
	"mesaayuda/internal/shared/config"
	"mesaayuda/internal/shared/errors"
	"mesaayuda/internal/shared/logger"
)

const (
	// HTTP request timeout
	requestTimeout = 10 * time.Second
	// Maximum response body size for identity provider responses (1MB)
	maxResponseSize = 1 << 20
)

// Client talks to the external identity provider's REST API. The anon
// key authenticates public endpoints (password grant, logout); the
// service-role key authenticates the admin user listing.
type Client struct {
	baseURL        string
	anonKey        string
	serviceRoleKey string
	httpClient     *http.Client
	logger         logger.Interface
}

func NewClient(cfg *config.IdentityConfig, logger logger.Interface) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("identity base URL is required")
	}
	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		anonKey:        cfg.AnonKey,
		serviceRoleKey: cfg.ServiceRoleKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logger,
	}, nil
}

// Ensure Client implements both outbound ports.
var (
	_ authUsecases.IdentityAuthenticator = (*Client)(nil)
	_ userUsecases.IdentityDirectory     = (*Client)(nil)
)

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Message          string `json:"msg"`
}

func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*authUsecases.IdentitySession, error) {
	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sign-in request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/auth/v1/token?grant_type=password", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.anonKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call identity provider: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read sign-in response: %w", err)
	}

	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized {
		var errResp errorResponse
		_ = json.Unmarshal(data, &errResp)
		c.logger.Warnw("sign-in rejected by identity provider",
			"status", resp.StatusCode,
			"error", errResp.ErrorDescription)
		return nil, errors.NewUnauthorizedError("invalid login credentials")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var token tokenResponse
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to decode sign-in response: %w", err)
	}

	return &authUsecases.IdentitySession{
		AccessToken:  token.AccessToken,
		TokenType:    token.TokenType,
		ExpiresIn:    token.ExpiresIn,
		RefreshToken: token.RefreshToken,
		UserID:       token.User.ID,
		Email:        token.User.Email,
	}, nil
}

func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/auth/v1/logout", nil)
	if err != nil {
		return fmt.Errorf("failed to build sign-out request: %w", err)
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call identity provider: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	return nil
}

type adminUser struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	CreatedAt    time.Time  `json:"created_at"`
	LastSignInAt *time.Time `json:"last_sign_in_at"`
}

type adminUsersResponse struct {
	Users []adminUser `json:"users"`
}

// ListUsers fetches the provider's account listing with the
// service-role key. Entries whose ID is not a UUID are skipped; the
// provider also reports service accounts there.
func (c *Client) ListUsers(ctx context.Context) ([]userUsecases.IdentityUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/auth/v1/admin/users", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build admin users request: %w", err)
	}
	req.Header.Set("apikey", c.serviceRoleKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceRoleKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call identity provider: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read admin users response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var listing adminUsersResponse
	if err := json.Unmarshal(data, &listing); err != nil {
		return nil, fmt.Errorf("failed to decode admin users response: %w", err)
	}

	users := make([]userUsecases.IdentityUser, 0, len(listing.Users))
	for _, u := range listing.Users {
		if _, err := uuid.Parse(u.ID); err != nil {
			c.logger.Warnw("skipping identity account with non-UUID ID", "id", u.ID)
			continue
		}
		users = append(users, userUsecases.IdentityUser{
			ID:           u.ID,
			Email:        u.Email,
			CreatedAt:    u.CreatedAt,
			LastSignInAt: u.LastSignInAt,
		})
	}

	return users, nil
}
