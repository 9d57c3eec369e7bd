package client

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/elearn-admin-gateway/internal/models"
	"github.com/go-resty/resty/v2"
)

// UserClient talks to the user-management service. All operations except
// Login carry the caller's bearer credential.
type UserClient struct {
	http *resty.Client
}

// NewUserClient creates a UserClient for the given base URL.
func NewUserClient(baseURL string, timeout time.Duration) *UserClient {
	return &UserClient{http: newHTTPClient(baseURL, timeout)}
}

// Login exchanges credentials for a session token and role.
func (c *UserClient) Login(ctx context.Context, req models.LoginRequest) (*models.Session, error) {
	const op = "login"
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(&req).
		Post("/api/admin/login")
	if err != nil {
		return nil, transportErr(op, err)
	}
	if !resp.IsSuccess() {
		return nil, statusErr(op, resp.StatusCode())
	}
	var session models.Session
	if err := json.Unmarshal(resp.Body(), &session); err != nil {
		return nil, decodeErr(op, err)
	}
	return &session, nil
}

// ListUsers fetches the full user collection. An empty collection is a
// valid success.
func (c *UserClient) ListUsers(ctx context.Context, token string) ([]models.UserRecord, error) {
	const op = "list users"
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get("/api/admin/all")
	if err != nil {
		return nil, transportErr(op, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, statusErr(op, resp.StatusCode())
	}
	var users []models.UserRecord
	if err := json.Unmarshal(resp.Body(), &users); err != nil {
		return nil, decodeErr(op, err)
	}
	return users, nil
}

// GetUser fetches a single user by id.
func (c *UserClient) GetUser(ctx context.Context, token, id string) (*models.UserRecord, error) {
	const op = "get user"
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get("/api/admin/" + id)
	if err != nil {
		return nil, transportErr(op, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, statusErr(op, resp.StatusCode())
	}
	var user models.UserRecord
	if err := json.Unmarshal(resp.Body(), &user); err != nil {
		return nil, decodeErr(op, err)
	}
	return &user, nil
}

// CreateUser creates a user record.
func (c *UserClient) CreateUser(ctx context.Context, token string, in models.UserInput) (*models.UserRecord, error) {
	const op = "create user"
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(&in).
		Post("/api/admin/")
	if err != nil {
		return nil, transportErr(op, err)
	}
	if !resp.IsSuccess() {
		return nil, statusErr(op, resp.StatusCode())
	}
	var user models.UserRecord
	if err := json.Unmarshal(resp.Body(), &user); err != nil {
		return nil, decodeErr(op, err)
	}
	return &user, nil
}

// UpdateUser replaces an existing user record.
func (c *UserClient) UpdateUser(ctx context.Context, token, id string, in models.UserInput) (*models.UserRecord, error) {
	const op = "update user"
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(&in).
		Put("/api/admin/" + id)
	if err != nil {
		return nil, transportErr(op, err)
	}
	if !resp.IsSuccess() {
		return nil, statusErr(op, resp.StatusCode())
	}
	var user models.UserRecord
	if err := json.Unmarshal(resp.Body(), &user); err != nil {
		return nil, decodeErr(op, err)
	}
	return &user, nil
}

// DeleteUser removes a user record.
func (c *UserClient) DeleteUser(ctx context.Context, token, id string) error {
	const op = "delete user"
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		Delete("/api/admin/" + id)
	if err != nil {
		return transportErr(op, err)
	}
	if !resp.IsSuccess() {
		return statusErr(op, resp.StatusCode())
	}
	return nil
}
