// Package accountapi is the HTTP/JSON transport to the remote account service.
package accountapi

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"cabinet/config"
	"cabinet/internal/domain/entity"
	domainerrors "cabinet/internal/domain/errors"
	"cabinet/internal/domain/service"
	"cabinet/internal/errors"
	"cabinet/internal/util"

	"go.uber.org/fx"
)

// Account service endpoints, relative to the configured base URL.
const (
	LoginPath            = "/api/accounts/login"
	MePath               = "/api/accounts/me"
	UpdateUsernamePath   = "/api/accounts/updateUsername"
	UpdateLastActivePath = "/api/accounts/updateLastActive"
)

// Bodies larger than this are truncated; account responses are a few hundred bytes.
const maxResponseBytes = 1 << 20

// Error details quote at most this much of a response body.
const maxDetailRunes = 200

type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type loginRequest struct {
	GUID string `json:"guid"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type updateUsernameRequest struct {
	Username string `json:"username"`
}

// httpClient implements AccountAPI over net/http.
type httpClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New builds the account API client from the application configuration.
func New(params Params) service.AccountAPI {
	return NewClient(params.Config.Account, params.Logger)
}

// NewClient creates a client for the service at cfg.BaseURL.
func NewClient(cfg config.AccountConfig, logger *slog.Logger) service.AccountAPI {
	logger = logger.With(slog.String("component", "account_api"))

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.InsecureSkipVerify {
		logger.Warn("TLS certificate verification is disabled for the account service",
			slog.String("base_url", cfg.BaseURL),
		)
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // development only, opt-in
	}

	return &httpClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		logger: logger,
	}
}

// Login posts the device identity and returns the issued token.
func (c *httpClient) Login(ctx context.Context, guid string) (string, error) {
	status, body, err := c.do(ctx, http.MethodPost, LoginPath, "", loginRequest{GUID: guid})
	if err != nil {
		return "", err
	}

	if !isSuccess(status) {
		return "", errors.WithStack(domainerrors.ErrAuthFailure.WithHTTPCode(status).WithDetails(snippet(body)))
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", errors.Wrap(domainerrors.ErrAuthFailure.WithHTTPCode(status).WithDetails(err.Error()), "decode login response")
	}
	if resp.Token == "" {
		return "", errors.WithStack(domainerrors.ErrAuthFailure.WithHTTPCode(status).WithDetails("empty token"))
	}

	return resp.Token, nil
}

// GetMe fetches the account bound to token.
func (c *httpClient) GetMe(ctx context.Context, token string) (*entity.AccountProfile, error) {
	status, body, err := c.do(ctx, http.MethodGet, MePath, token, nil)
	if err != nil {
		return nil, err
	}

	if !isSuccess(status) {
		return nil, errors.WithStack(classifyStatus(status).WithDetails(snippet(body)))
	}

	var profile entity.AccountProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnexpectedStatus.WithHTTPCode(status).WithDetails(err.Error()), "decode profile")
	}

	return &profile, nil
}

// UpdateUsername reports the raw status; the caller decides what it means.
func (c *httpClient) UpdateUsername(ctx context.Context, token, username string) (int, error) {
	status, _, err := c.do(ctx, http.MethodPut, UpdateUsernamePath, token, updateUsernameRequest{Username: username})
	if err != nil {
		return 0, err
	}

	return status, nil
}

// UpdateLastActive records a heartbeat.
func (c *httpClient) UpdateLastActive(ctx context.Context, token string) error {
	status, body, err := c.do(ctx, http.MethodPut, UpdateLastActivePath, token, nil)
	if err != nil {
		return err
	}

	if !isSuccess(status) {
		return errors.WithStack(classifyStatus(status).WithDetails(snippet(body)))
	}

	return nil
}

// do sends one request. A returned error means no response was received.
func (c *httpClient) do(ctx context.Context, method, path, token string, payload any) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, errors.WithStack(err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, errors.WithStack(err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("Sending request", slog.String("method", method), slog.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Joined so callers can still tell a cancelled context from a refused connection.
		return 0, nil, errors.Wrapf(errors.Join(domainerrors.ErrTransportFailure.WithDetails(err.Error()), err), "%s %s", method, path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, nil, errors.Wrapf(domainerrors.ErrTransportFailure.WithDetails(err.Error()), "read %s %s response", method, path)
	}

	c.logger.Debug("Received response",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
	)

	return resp.StatusCode, body, nil
}

func classifyStatus(status int) *domainerrors.BaseError {
	switch {
	case status == http.StatusUnauthorized:
		return domainerrors.ErrUnauthorized.WithHTTPCode(status)
	case status == http.StatusNotFound:
		return domainerrors.ErrNotFound.WithHTTPCode(status)
	case status == http.StatusConflict:
		return domainerrors.ErrConflict.WithHTTPCode(status)
	case status >= http.StatusInternalServerError:
		return domainerrors.ErrServerError.WithHTTPCode(status)
	default:
		return domainerrors.ErrUnexpectedStatus.WithHTTPCode(status)
	}
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func snippet(body []byte) string {
	return util.Truncate(string(body), maxDetailRunes)
}
