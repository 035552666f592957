package odin

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/juju/errors"

	"petclinic/internal/platform/httpclient"
	"petclinic/internal/ports/auth"
)

const (
	ErrNotConfigured = errors.ConstError("odin client not configured")
	ErrUnauthorized  = errors.ConstError("odin unauthorized")
	ErrUpstream      = errors.ConstError("odin upstream error")
)

const verifyPath = "/v1/tokens/verify"

type Config struct {
	BaseURL string
	APIKey  string

	// Header donde va la API key; por defecto "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration
}

// Client habla con el IAM (Odin) para validar tokens del staff.
type Client struct {
	http         *httpclient.Client
	apiKey       string
	apiKeyHeader string
}

func NewClient(cfg Config) (*Client, error) {
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	hc, err := httpclient.NewWithBaseURL(cfg.BaseURL, timeout)
	if err != nil {
		return nil, errors.Annotate(err, "odin")
	}
	return &Client{
		http:         hc,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http.BaseURL != "" && c.apiKey != ""
}

type verifyResponse struct {
	UserID   string   `json:"user_id"`
	Email    string   `json:"email"`
	ClinicID string   `json:"clinic_id"`
	Roles    []string `json:"roles"`
}

// VerifyToken valida el token contra Odin y devuelve los claims.
func (c *Client) VerifyToken(ctx context.Context, token string) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrUnauthorized
	}

	headers := map[string]string{
		c.apiKeyHeader:  c.apiKey,
		"Authorization": "Bearer " + token,
	}

	var out verifyResponse
	err := c.http.DoJSON(ctx, http.MethodPost, verifyPath, headers, map[string]string{"token": token}, &out)
	if err != nil {
		switch httpclient.StatusCode(err) {
		case http.StatusUnauthorized, http.StatusForbidden:
			return auth.Claims{}, ErrUnauthorized
		default:
			return auth.Claims{}, errors.Annotatef(ErrUpstream, "%v", err)
		}
	}

	out.UserID = strings.TrimSpace(out.UserID)
	if out.UserID == "" {
		return auth.Claims{}, errors.Annotate(ErrUpstream, "response missing user_id")
	}

	return auth.Claims{
		UserID:   out.UserID,
		Email:    strings.TrimSpace(out.Email),
		ClinicID: strings.TrimSpace(out.ClinicID),
		Roles:    out.Roles,
	}, nil
}
