// Package pokeapi is the client for the public PokéAPI catalog service
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/KirkDiggler/pokedex/internal/clients/pokeapi Client

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KirkDiggler/pokedex/internal/entities"
	"github.com/KirkDiggler/pokedex/internal/errors"
)

const (
	// DefaultBaseURL is the versioned PokéAPI root
	DefaultBaseURL = "https://pokeapi.co/api/v2/"
	// DefaultHTTPTimeout bounds every request when no timeout is configured
	DefaultHTTPTimeout = 30 * time.Second
	// DefaultListLimit is large enough to return the whole catalog in one page
	DefaultListLimit = 100000
	// DefaultUserAgent identifies this client to the upstream
	DefaultUserAgent = "pokedex/1.0"

	// maxImageBytes caps a sprite download
	maxImageBytes = 10 << 20
)

// Client defines the interface for PokéAPI interactions.
// Every call is a single synchronous GET; nothing is retried or cached.
type Client interface {
	// GetPokemon fetches the raw record for one pokemon by name
	GetPokemon(ctx context.Context, name string) (entities.Record, error)

	// ListPokemonNames fetches every pokemon name, in upstream order
	ListPokemonNames(ctx context.Context) ([]string, error)

	// FetchImage downloads the body at an absolute URL, typically a sprite
	FetchImage(ctx context.Context, imageURL string) ([]byte, error)
}

// Config contains configuration options for the PokéAPI client.
type Config struct {
	// BaseURL for the API (optional, defaults to https://pokeapi.co/api/v2/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// ListLimit is the page size used to list names (optional, defaults to 100000)
	ListLimit int
	// UserAgent sent with every request (optional)
	UserAgent string
	// HTTPClient overrides the transport (optional); HTTPTimeout is ignored when set
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = DefaultHTTPTimeout
	}
	if cfg.ListLimit == 0 {
		cfg.ListLimit = DefaultListLimit
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	vb := errors.NewValidationBuilder()
	if u, err := url.Parse(cfg.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		vb.InvalidField("BaseURL", "must be an absolute URL")
	}
	if cfg.HTTPTimeout < 0 {
		vb.Field("HTTPTimeout", "must not be negative")
	}
	if cfg.ListLimit < 0 {
		vb.Field("ListLimit", "must not be negative")
	}
	return vb.Build()
}

type client struct {
	httpClient *http.Client
	baseURL    string
	listLimit  int
	userAgent  string
}

// New creates a new PokéAPI client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.HTTPTimeout,
		}
	}

	baseURL := cfg.BaseURL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &client{
		httpClient: httpClient,
		baseURL:    baseURL,
		listLimit:  cfg.ListLimit,
		userAgent:  cfg.UserAgent,
	}, nil
}

func (c *client) GetPokemon(ctx context.Context, name string) (entities.Record, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.InvalidArgument("pokemon name is required")
	}

	endpoint := fmt.Sprintf("%spokemon/%s/", c.baseURL, url.PathEscape(name))

	var record entities.Record
	if err := c.getJSON(ctx, endpoint, &record); err != nil {
		return nil, errors.Wrapf(err, "failed to get pokemon %s", name)
	}
	if record == nil {
		return nil, errors.DataLossf("pokemon %s: response body is not a JSON object", name).
			WithMeta("url", endpoint)
	}

	return record, nil
}

// listResponse is the subset of the paginated listing this client reads
type listResponse struct {
	Results *[]namedResource `json:"results"`
}

type namedResource struct {
	Name *string `json:"name"`
	URL  string  `json:"url"`
}

func (c *client) ListPokemonNames(ctx context.Context) ([]string, error) {
	endpoint := fmt.Sprintf("%spokemon?limit=%d&offset=0", c.baseURL, c.listLimit)

	slog.Info("Calling PokéAPI to list pokemon", "limit", c.listLimit)

	var resp listResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to list pokemon")
	}
	if resp.Results == nil {
		return nil, errors.MissingField("results")
	}

	names := make([]string, 0, len(*resp.Results))
	for i, ref := range *resp.Results {
		if ref.Name == nil {
			return nil, errors.MissingField(fmt.Sprintf("results[%d].name", i))
		}
		names = append(names, *ref.Name)
	}

	slog.Info("Got pokemon names", "count", len(names))
	return names, nil
}

func (c *client) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	if imageURL == "" {
		return nil, errors.InvalidArgument("image url is required")
	}

	resp, err := c.do(ctx, imageURL)
	if err != nil {
		return nil, err
	}
	defer closeBody(resp.Body)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read image body").
			WithMeta("url", imageURL)
	}
	if len(body) > maxImageBytes {
		return nil, errors.ResourceExhausted("image exceeds size limit").
			WithMeta("url", imageURL).
			WithMeta("limit", maxImageBytes)
	}

	return body, nil
}

// getJSON issues a GET and decodes the body into out. Numbers are kept as
// json.Number so integer fields survive untouched. Anything after the first
// JSON value is a decode failure.
func (c *client) getJSON(ctx context.Context, endpoint string, out any) error {
	resp, err := c.do(ctx, endpoint)
	if err != nil {
		return err
	}
	defer closeBody(resp.Body)

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return errors.WrapWithCode(err, errors.CodeDataLoss, "failed to decode response body").
			WithMeta("url", endpoint)
	}
	// the body must hold exactly one JSON value
	if _, err := dec.Token(); err != io.EOF {
		return errors.DataLoss("unexpected data after JSON value in response body").
			WithMeta("url", endpoint)
	}
	return nil
}

// do performs the GET and turns transport failures and non-2xx statuses into
// coded errors. On success the caller owns resp.Body.
func (c *client) do(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to build request").
			WithMeta("url", endpoint)
	}
	req.Header.Set("Accept", "application/json, image/*;q=0.9, */*;q=0.8")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(ctx, err).WithMeta("url", endpoint)
	}

	slog.Debug("PokéAPI request",
		"url", endpoint,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if code := errors.FromHTTPStatus(resp.StatusCode); code != errors.CodeOK {
		closeBody(resp.Body)
		return nil, errors.Newf(code, "unexpected status %d", resp.StatusCode).
			WithMeta("url", endpoint).
			WithMeta("status", resp.StatusCode)
	}

	return resp, nil
}

func transportError(ctx context.Context, err error) *errors.Error {
	if stderrors.Is(ctx.Err(), context.Canceled) {
		return errors.WrapWithCode(err, errors.CodeCanceled, "request canceled")
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.WrapWithCode(err, errors.CodeDeadlineExceeded, "request timed out")
	}
	var netErr net.Error
	if stderrors.As(err, &netErr) && netErr.Timeout() {
		return errors.WrapWithCode(err, errors.CodeDeadlineExceeded, "request timed out")
	}
	return errors.WrapWithCode(err, errors.CodeUnavailable, "request failed")
}

func closeBody(body io.ReadCloser) {
	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 4<<10))
	_ = body.Close() // nolint:errcheck // safe to ignore on a read-only body
}
