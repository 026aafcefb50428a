package rickmorty

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sethvargo/go-retry"
)

// Fetcher defines the read operations the UI and CLI depend on.
// It is implemented by *Client and can be faked in tests.
type Fetcher interface {
	ListCharacters(ctx context.Context, filter CharacterFilter, page int) (Page[Character], error)
	GetCharacter(ctx context.Context, id int) (Character, error)
	GetCharactersByIDs(ctx context.Context, ids []int) ([]Character, error)
	ListLocations(ctx context.Context, filter LocationFilter, page int) (Page[Location], error)
	GetLocation(ctx context.Context, id int) (Location, error)
	GetLocationsByIDs(ctx context.Context, ids []int) ([]Location, error)
	ListEpisodes(ctx context.Context, filter EpisodeFilter, page int) (Page[Episode], error)
	GetEpisode(ctx context.Context, id int) (Episode, error)
	GetEpisodesByIDs(ctx context.Context, ids []int) ([]Episode, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

const (
	DefaultBaseURL       = "https://rickandmortyapi.com/api"
	DefaultTimeout       = 10 * time.Second
	DefaultRetryAttempts = 3
	DefaultMaxBackoff    = 30 * time.Second
	defaultUserAgent     = "portal/0.1"

	firstBackoff = time.Second
	maxErrorBody = 512
)

// Config holds the client settings. Zero fields fall back to defaults. Use
// WithRetryAttempts(0) to disable retries.
type Config struct {
	BaseURL       string
	Timeout       time.Duration
	RetryAttempts int
	MaxBackoff    time.Duration
	UserAgent     string
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:       DefaultBaseURL,
		Timeout:       DefaultTimeout,
		RetryAttempts: DefaultRetryAttempts,
		MaxBackoff:    DefaultMaxBackoff,
		UserAgent:     defaultUserAgent,
	}
}

// Option overrides a single client setting.
type Option func(*options)

type options struct {
	cfg    Config
	http   *http.Client
	logger *log.Logger
}

// WithConfig merges the non-zero fields of cfg over the defaults.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		if strings.TrimSpace(cfg.BaseURL) != "" {
			o.cfg.BaseURL = cfg.BaseURL
		}
		if cfg.Timeout > 0 {
			o.cfg.Timeout = cfg.Timeout
		}
		if cfg.MaxBackoff > 0 {
			o.cfg.MaxBackoff = cfg.MaxBackoff
		}
		if cfg.UserAgent != "" {
			o.cfg.UserAgent = cfg.UserAgent
		}
		if cfg.RetryAttempts != 0 {
			o.cfg.RetryAttempts = cfg.RetryAttempts
		}
	}
}

// WithBaseURL points the client at another API root.
func WithBaseURL(base string) Option {
	return func(o *options) { o.cfg.BaseURL = base }
}

// WithTimeout sets the per-attempt request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.cfg.Timeout = d }
}

// WithRetryAttempts sets how many extra attempts follow a failed one.
func WithRetryAttempts(n int) Option {
	return func(o *options) { o.cfg.RetryAttempts = n }
}

// WithMaxBackoff caps the delay between attempts. Zero disables the cap.
func WithMaxBackoff(d time.Duration) Option {
	return func(o *options) { o.cfg.MaxBackoff = d }
}

// WithHTTPClient replaces the underlying http.Client. Its Timeout is left alone.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.http = c }
}

// WithLogger sets the logger used for attempt and retry events.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Client talks to the Rick and Morty REST API.
type Client struct {
	baseURL    *url.URL
	http       *http.Client
	cfg        Config
	log        *log.Logger
	newBackoff func() retry.Backoff
}

// New builds a Client. No I/O happens here.
func New(opts ...Option) (*Client, error) {
	o := options{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cfg.RetryAttempts < 0 {
		return nil, fmt.Errorf("retry attempts must be non-negative, got %d", o.cfg.RetryAttempts)
	}
	base, err := parseBaseURL(o.cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	o.cfg.BaseURL = base.String()

	httpClient := o.http
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.cfg.Timeout}
	}
	logger := o.logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := &Client{
		baseURL: base,
		http:    httpClient,
		cfg:     o.cfg,
		log:     logger.WithPrefix("rickmorty"),
	}
	c.newBackoff = c.backoff
	return c, nil
}

var (
	defaultOnce   sync.Once
	defaultClient *Client
)

// Default returns the process-wide client built from DefaultConfig. It is
// created on first use and never reconfigured; callers that need different
// settings should call New.
func Default() *Client {
	defaultOnce.Do(func() {
		c, err := New()
		if err != nil {
			panic(fmt.Sprintf("rickmorty: default client: %v", err))
		}
		defaultClient = c
	})
	return defaultClient
}

// Config returns the effective settings.
func (c *Client) Config() Config {
	return c.cfg
}

// CharacterFilter narrows /character listings. Empty fields are omitted.
type CharacterFilter struct {
	Name    string
	Status  Status
	Species string
	Type    string
	Gender  Gender
}

// LocationFilter narrows /location listings. Empty fields are omitted.
type LocationFilter struct {
	Name      string
	Type      string
	Dimension string
}

// EpisodeFilter narrows /episode listings. Empty fields are omitted.
type EpisodeFilter struct {
	Name string
	Code string
}

// ListCharacters fetches one page of characters matching filter.
func (c *Client) ListCharacters(ctx context.Context, filter CharacterFilter, page int) (Page[Character], error) {
	values := pageValues(page)
	setIf(values, "name", filter.Name)
	setIf(values, "status", string(filter.Status))
	setIf(values, "species", filter.Species)
	setIf(values, "type", filter.Type)
	setIf(values, "gender", string(filter.Gender))

	var payload Page[Character]
	if err := c.fetch(ctx, c.endpoint(values, "character"), &payload); err != nil {
		return Page[Character]{}, err
	}
	return payload, nil
}

// GetCharacter fetches a single character.
func (c *Client) GetCharacter(ctx context.Context, id int) (Character, error) {
	var payload Character
	if err := c.fetch(ctx, c.endpoint(nil, "character", strconv.Itoa(id)), &payload); err != nil {
		return Character{}, err
	}
	return payload, nil
}

// GetCharactersByIDs fetches several characters in one request.
func (c *Client) GetCharactersByIDs(ctx context.Context, ids []int) ([]Character, error) {
	if len(ids) == 0 {
		return []Character{}, nil
	}
	var payload oneOrMany[Character]
	if err := c.fetch(ctx, c.endpoint(nil, "character", joinIDs(ids)), &payload); err != nil {
		return nil, err
	}
	return []Character(payload), nil
}

// ListLocations fetches one page of locations.
func (c *Client) ListLocations(ctx context.Context, filter LocationFilter, page int) (Page[Location], error) {
	values := pageValues(page)
	setIf(values, "name", filter.Name)
	setIf(values, "type", filter.Type)
	setIf(values, "dimension", filter.Dimension)

	var payload Page[Location]
	if err := c.fetch(ctx, c.endpoint(values, "location"), &payload); err != nil {
		return Page[Location]{}, err
	}
	return payload, nil
}

// GetLocation fetches a single location.
func (c *Client) GetLocation(ctx context.Context, id int) (Location, error) {
	var payload Location
	if err := c.fetch(ctx, c.endpoint(nil, "location", strconv.Itoa(id)), &payload); err != nil {
		return Location{}, err
	}
	return payload, nil
}

// GetLocationsByIDs fetches several locations in one request.
func (c *Client) GetLocationsByIDs(ctx context.Context, ids []int) ([]Location, error) {
	if len(ids) == 0 {
		return []Location{}, nil
	}
	var payload oneOrMany[Location]
	if err := c.fetch(ctx, c.endpoint(nil, "location", joinIDs(ids)), &payload); err != nil {
		return nil, err
	}
	return []Location(payload), nil
}

// ListEpisodes fetches one page of episodes.
func (c *Client) ListEpisodes(ctx context.Context, filter EpisodeFilter, page int) (Page[Episode], error) {
	values := pageValues(page)
	setIf(values, "name", filter.Name)
	setIf(values, "episode", filter.Code)

	var payload Page[Episode]
	if err := c.fetch(ctx, c.endpoint(values, "episode"), &payload); err != nil {
		return Page[Episode]{}, err
	}
	return payload, nil
}

// GetEpisode fetches a single episode.
func (c *Client) GetEpisode(ctx context.Context, id int) (Episode, error) {
	var payload Episode
	if err := c.fetch(ctx, c.endpoint(nil, "episode", strconv.Itoa(id)), &payload); err != nil {
		return Episode{}, err
	}
	return payload, nil
}

// GetEpisodesByIDs fetches several episodes in one request.
func (c *Client) GetEpisodesByIDs(ctx context.Context, ids []int) ([]Episode, error) {
	if len(ids) == 0 {
		return []Episode{}, nil
	}
	var payload oneOrMany[Episode]
	if err := c.fetch(ctx, c.endpoint(nil, "episode", joinIDs(ids)), &payload); err != nil {
		return nil, err
	}
	return []Episode(payload), nil
}

func (c *Client) endpoint(values url.Values, segments ...string) *url.URL {
	u := c.baseURL.JoinPath(segments...)
	if len(values) > 0 {
		u.RawQuery = values.Encode()
	}
	return u
}

// get performs a single attempt and decodes the body into dest.
func (c *Client) get(ctx context.Context, reqURL *url.URL, requestID string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			Endpoint:   reqURL.Path,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body),
		}
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w: %w", ErrMalformedResponse, err)
	}
	if v, ok := dest.(validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func pageValues(page int) url.Values {
	if page < 1 {
		page = 1
	}
	values := url.Values{}
	values.Set("page", strconv.Itoa(page))
	return values
}

func setIf(values url.Values, key, value string) {
	if strings.TrimSpace(value) != "" {
		values.Set(key, value)
	}
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base url %q: missing host", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
