package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/myflix/myflix-client/internal/client/config"
	"github.com/myflix/myflix-client/internal/client/models"
	"github.com/myflix/myflix-client/internal/client/repositories/session"
	"github.com/myflix/myflix-client/internal/logging"
)

const (
	userAgent       = "myflix-client/1.0"
	headerRequestID = "X-Request-ID"
)

// HTTPClient implements Client over net/http. It is safe for concurrent use.
type HTTPClient struct {
	baseURL  string
	http     *http.Client
	store    SessionStore
	limiter  *rate.Limiter
	validate *validator.Validate
	logger   logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for cfg.APIBaseURL. A zero RequestTimeout
// means no timeout; a zero RequestsPerSecond means no client-side limit.
func NewHTTPClient(cfg *config.Config, store SessionStore, logger logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(cfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("api base url %q must be an absolute http(s) URL", cfg.APIBaseURL)
	}
	u.RawQuery, u.Fragment = "", ""

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &HTTPClient{
		baseURL:  strings.TrimSuffix(u.String(), "/") + "/",
		http:     &http.Client{Timeout: cfg.RequestTimeout},
		store:    store,
		limiter:  rate.NewLimiter(limit, 1),
		validate: validator.New(),
		logger:   logger,
	}, nil
}

type request struct {
	method string
	path   []string // unescaped segments
	body   any
	auth   bool
}

// endpoint joins the base URL with percent-encoded path segments.
func (c *HTTPClient) endpoint(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return c.baseURL + strings.Join(escaped, "/")
}

// do sends one request and returns the raw body of a 2xx answer.
// Anything else comes back as an *APIError.
func (c *HTTPClient) do(ctx context.Context, r request) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, newTransportError(err)
	}

	var body io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.endpoint(r.path...), body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set(headerRequestID, reqID)
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.auth {
		if token := c.store.Token(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	log := c.logger.With("request_id", reqID, "method", r.method, "path", req.URL.EscapedPath())
	log.Debug(ctx, "api request")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "api request got no response", "error", err)
		return nil, newTransportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn(ctx, "api response unreadable", "status", resp.StatusCode, "error", err)
		return nil, newTransportError(err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		log.Debug(ctx, "api response", "status", resp.StatusCode, "bytes", len(raw))
		return raw, nil
	}
	return nil, normalize(ctx, log, resp.StatusCode, raw)
}

// normalize turns a non-2xx answer into an *APIError. Only the first
// structured message, or the generic one, reaches the caller.
func normalize(ctx context.Context, log logging.Logger, status int, body []byte) *APIError {
	kind := KindServer
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		kind = KindAuth
	}

	if msg, ok := firstErrorMessage(body); ok {
		if kind != KindAuth {
			kind = KindValidation
		}
		log.Warn(ctx, "api request rejected", "status", status, "body", string(body))
		return &APIError{Kind: kind, Message: msg, Status: status}
	}

	log.Error(ctx, "api request failed", "status", status, "body", string(body))
	return &APIError{Kind: kind, Message: GenericErrorMessage, Status: status}
}

// call performs r and decodes a 2xx body into a new T. An empty body yields
// the zero T.
func call[T any](ctx context.Context, c *HTTPClient, r request) (*T, error) {
	raw, err := c.do(ctx, r)
	if err != nil {
		return nil, err
	}

	out := new(T)
	if len(bytes.TrimSpace(raw)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.logger.Error(ctx, "api response is not the expected shape",
			"method", r.method, "path", strings.Join(r.path, "/"), "body", string(raw), "error", err)
		return nil, &APIError{Kind: KindServer, Message: GenericErrorMessage, cause: err}
	}
	return out, nil
}

// requireSegment rejects identifiers that would produce an empty URL path
// segment.
func (c *HTTPClient) requireSegment(name, value string) error {
	if err := c.validate.Var(strings.TrimSpace(value), "required"); err != nil {
		return newValidationError(name+" is required", err)
	}
	return nil
}

// currentUser returns the cached user needed to build user-scoped paths.
func (c *HTTPClient) currentUser(ctx context.Context) (*models.User, error) {
	sess := c.store.Load(ctx)
	if sess.User == nil {
		return nil, &APIError{Kind: KindAuth, Message: "You are not logged in.", cause: session.ErrNoSession}
	}
	return sess.User, nil
}

func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) (*models.User, error) {
	return call[models.User](ctx, c, request{method: http.MethodPost, path: []string{"users"}, body: reg})
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.LoginResult, error) {
	return call[models.LoginResult](ctx, c, request{method: http.MethodPost, path: []string{"login"}, body: creds})
}

func (c *HTTPClient) ListMovies(ctx context.Context) ([]models.Movie, error) {
	movies, err := call[[]models.Movie](ctx, c, request{method: http.MethodGet, path: []string{"movies"}, auth: true})
	if err != nil {
		return nil, err
	}
	if *movies == nil {
		return []models.Movie{}, nil
	}
	return *movies, nil
}

func (c *HTTPClient) GetMovie(ctx context.Context, title string) (*models.Movie, error) {
	if err := c.requireSegment("movie title", title); err != nil {
		return nil, err
	}
	return call[models.Movie](ctx, c, request{method: http.MethodGet, path: []string{"movies", title}, auth: true})
}

func (c *HTTPClient) GetDirector(ctx context.Context, name string) (*models.Director, error) {
	if err := c.requireSegment("director name", name); err != nil {
		return nil, err
	}
	return call[models.Director](ctx, c, request{method: http.MethodGet, path: []string{"movies", "director", name}, auth: true})
}

func (c *HTTPClient) GetGenre(ctx context.Context, name string) (*models.Genre, error) {
	if err := c.requireSegment("genre name", name); err != nil {
		return nil, err
	}
	return call[models.Genre](ctx, c, request{method: http.MethodGet, path: []string{"movies", "genre", name}, auth: true})
}

// GetFavorites answers from the cached user; no request is made.
func (c *HTTPClient) GetFavorites(ctx context.Context) ([]string, error) {
	sess := c.store.Load(ctx)
	if sess.User == nil || sess.User.FavoriteMovies == nil {
		return []string{}, nil
	}
	return slices.Clone(sess.User.FavoriteMovies), nil
}

// AddFavorite asks the server to add movieID and, once it agreed, mirrors
// the change into the session store.
func (c *HTTPClient) AddFavorite(ctx context.Context, movieID string) (*models.User, error) {
	if err := c.requireSegment("movie id", movieID); err != nil {
		return nil, err
	}
	user, err := c.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   []string{"users", user.Username, "movies", movieID},
		auth:   true,
	})
	if err != nil {
		return nil, err
	}
	return c.mirrorFavorites(ctx, raw, func() (*models.User, error) {
		return c.store.AddFavorite(ctx, movieID)
	})
}

// RemoveFavorite is the DELETE counterpart of AddFavorite.
func (c *HTTPClient) RemoveFavorite(ctx context.Context, movieID string) (*models.User, error) {
	if err := c.requireSegment("movie id", movieID); err != nil {
		return nil, err
	}
	user, err := c.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   []string{"users", user.Username, "movies", movieID},
		auth:   true,
	})
	if err != nil {
		return nil, err
	}
	return c.mirrorFavorites(ctx, raw, func() (*models.User, error) {
		return c.store.RemoveFavorite(ctx, movieID)
	})
}

// mirrorFavorites updates the cache after a successful favorite call. When
// the server answered with the updated user that answer wins; otherwise
// (plain text or empty body) the local mutation is applied.
func (c *HTTPClient) mirrorFavorites(ctx context.Context, raw []byte, local func() (*models.User, error)) (*models.User, error) {
	var server models.User
	if err := json.Unmarshal(raw, &server); err == nil && server.Username != "" {
		if err := c.store.ReplaceUser(ctx, &server); err != nil {
			return nil, fmt.Errorf("cache user: %w", err)
		}
		return server.Snapshot(), nil
	}

	u, err := local()
	if err != nil {
		return nil, fmt.Errorf("cache favorites: %w", err)
	}
	return u, nil
}

// UpdateProfile sends upd for the cached user. The caller decides whether
// to cache the returned record.
func (c *HTTPClient) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	user, err := c.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return call[models.User](ctx, c, request{
		method: http.MethodPut,
		path:   []string{"users", user.Username},
		body:   upd,
		auth:   true,
	})
}

// DeleteAccount removes the cached user's account. The caller clears the
// session afterwards.
func (c *HTTPClient) DeleteAccount(ctx context.Context) error {
	user, err := c.currentUser(ctx)
	if err != nil {
		return err
	}
	if err := c.requireSegment("user id", user.ID); err != nil {
		return err
	}
	_, err = c.do(ctx, request{method: http.MethodDelete, path: []string{"users", user.ID}, auth: true})
	return err
}
