package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/testgen/internal/config"
	"github.com/MKhiriev/testgen/internal/logger"
	"github.com/MKhiriev/testgen/internal/utils"
	"github.com/MKhiriev/testgen/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.ServerAddress and configures the underlying client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.ServerAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the operator credentials to
// POST /api/user/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

// ListScoreCards implements [ServerAdapter]. It GETs the dashboard listing
// of one project and decodes the response into scorecards. Requires a valid
// bearer token.
func (h *httpServerAdapter) ListScoreCards(ctx context.Context, projectCode string) ([]models.ScoreCard, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("project_code", projectCode).
		Get("/api/data-quality/dashboards")
	if err != nil {
		return nil, fmt.Errorf("list dashboards request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var cards []models.ScoreCard
	if err = json.Unmarshal(resp.Body(), &cards); err != nil {
		return nil, fmt.Errorf("decode dashboards response: %w", err)
	}

	return cards, nil
}

// GetScoreCard implements [ServerAdapter]. It fetches one scorecard by
// dashboard id. Requires a valid bearer token.
func (h *httpServerAdapter) GetScoreCard(ctx context.Context, id string) (models.ScoreCard, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/data-quality/dashboards/" + url.PathEscape(id))
	if err != nil {
		return models.ScoreCard{}, fmt.Errorf("get dashboard request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ScoreCard{}, err
	}

	var card models.ScoreCard
	if err = json.Unmarshal(resp.Body(), &card); err != nil {
		return models.ScoreCard{}, fmt.Errorf("decode dashboard response: %w", err)
	}

	return card, nil
}

// Recalculate implements [ServerAdapter]. It triggers a score refresh of one
// dashboard. Requires a valid bearer token.
func (h *httpServerAdapter) Recalculate(ctx context.Context, id string) (models.RecalculateResponse, error) {
	resp, err := h.authedRequest(ctx).
		Post("/api/data-quality/dashboards/" + url.PathEscape(id) + "/recalculate")
	if err != nil {
		return models.RecalculateResponse{}, fmt.Errorf("recalculate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RecalculateResponse{}, err
	}

	var result models.RecalculateResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.RecalculateResponse{}, fmt.Errorf("decode recalculate response: %w", err)
	}

	return result, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
