package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-course-keeper/internal/config"
	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/models"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// The base URL may omit the scheme, in which case http is assumed.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

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

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/sessions")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	var body models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.Token{}, fmt.Errorf("decode login response: %w", err)
	}

	token, err := decodeToken(body.Token)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse token: %w", err)
	}

	h.SetToken(token.SignedString)
	h.logger.Debug().Str("role", token.Claims.Role.String()).Msg("session opened")

	return token, nil
}

func (h *httpServerAdapter) CreateCourse(ctx context.Context, title string) (uuid.UUID, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateCourseRequest{Title: title}).
		Post("/courses")
	if err != nil {
		return uuid.Nil, fmt.Errorf("create course request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return uuid.Nil, err
	}

	var body models.CreateCourseResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return uuid.Nil, fmt.Errorf("decode create course response: %w", err)
	}

	return body.CourseID, nil
}

func (h *httpServerAdapter) GetCourse(ctx context.Context, id string) (models.Course, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Course{}, err
	}

	resp, err := req.
		SetPathParam("id", id).
		Get("/courses/{id}")
	if err != nil {
		return models.Course{}, fmt.Errorf("get course request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Course{}, err
	}

	var body models.CourseResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.Course{}, fmt.Errorf("decode course response: %w", err)
	}

	return body.Course, nil
}

func (h *httpServerAdapter) ListCourses(ctx context.Context, request models.ListCoursesRequest) (models.CoursePage, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.CoursePage{}, err
	}

	if request.Search != "" {
		req.SetQueryParam("search", request.Search)
	}
	if request.OrderBy != "" {
		req.SetQueryParam("orderBy", string(request.OrderBy))
	}
	if request.Page > 0 {
		req.SetQueryParam("page", strconv.FormatUint(request.Page, 10))
	}

	resp, err := req.Get("/courses")
	if err != nil {
		return models.CoursePage{}, fmt.Errorf("list courses request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CoursePage{}, err
	}

	var page models.CoursePage
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return models.CoursePage{}, fmt.Errorf("decode list courses response: %w", err)
	}

	return page, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// authedRequest returns a request carrying the raw session token in the
// Authorization header.
func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNotLoggedIn
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", token), nil
}

// decodeToken reads the claims of a server-issued token without verifying
// the signature; the client does not hold the signing key.
func decodeToken(signed string) (models.Token, error) {
	var claims models.Claims
	if _, _, err := jwt.NewParser().ParseUnverified(signed, &claims); err != nil {
		return models.Token{}, err
	}

	return models.Token{Claims: claims, SignedString: signed}, nil
}
