package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"inn-lookup-bot/internal/domain/inn"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 1 << 20
)

// jsonAPI decodes numbers as json.Number so a numeric name keeps its digits
var jsonAPI = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

const (
	itemsKey       = "items"
	legalEntityKey = "ЮЛ"
	fullNameKey    = "НаимПолнЮЛ"
	fullAddressKey = "АдресПолн"
)

var (
	errNotObject     = errors.New("response is not a JSON object")
	errItemsNotArray = errors.New("items is not an array")
	errItemNotObject = errors.New("first item is not an object")
	errEntityInvalid = errors.New("legal entity is not an object")
)

// Observer receives the outcome kind of every lookup
type Observer interface {
	ObserveLookup(outcome string)
}

// Client queries the company registry search API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
	observer   Observer
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithObserver(observer Observer) Option {
	return func(c *Client) {
		c.observer = observer
	}
}

// NewClient creates a registry client for the API rooted at baseURL
func NewClient(baseURL, apiKey string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("registry: base URL must not be empty")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("registry: invalid base URL: %w", err)
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("registry: API key must not be empty")
	}

	c := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     log.Logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With().Str("component", "registry").Logger()
	return c, nil
}

func (c *Client) searchURL(id string) string {
	return c.baseURL + "/search?q=" + url.QueryEscape(id) + "&key=" + url.QueryEscape(c.apiKey)
}

// Lookup searches the registry for a single identifier. Every failure is
// reported through the returned Outcome; Lookup does not retry.
func (c *Client) Lookup(ctx context.Context, id string) inn.Outcome {
	outcome := c.lookup(ctx, id)
	if c.observer != nil {
		c.observer.ObserveLookup(string(outcome.Kind))
	}
	return outcome
}

func (c *Client) lookup(ctx context.Context, id string) inn.Outcome {
	logger := c.loggerFor(ctx).With().Str("inn", id).Logger()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(id), nil)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build request")
		return inn.TransportError(id, err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		err = stripURL(err)
		logger.Error().Err(err).Msg("registry request failed")
		return inn.TransportError(id, err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode == http.StatusUnauthorized {
		logger.Error().Int("status", res.StatusCode).Msg("registry rejected the API key")
		return inn.Unauthorized(id)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		logger.Warn().Int("status", res.StatusCode).Msg("unexpected registry response")
		return inn.UnexpectedStatus(id, res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		err = stripURL(err)
		logger.Error().Err(err).Msg("failed to read registry response")
		return inn.TransportError(id, err)
	}

	if strings.TrimSpace(string(body)) == "" {
		logger.Warn().Msg("empty registry response")
		return inn.Empty(id)
	}

	var payload map[string]any
	if err := jsonAPI.Unmarshal(body, &payload); err != nil {
		logger.Error().Err(err).Msg("failed to parse registry response")
		return inn.ParseError(id, err)
	}
	if payload == nil {
		logger.Error().Err(errNotObject).Msg("failed to parse registry response")
		return inn.ParseError(id, errNotObject)
	}

	entity, found, err := firstLegalEntity(payload)
	if err != nil {
		logger.Error().Err(err).Msg("failed to parse registry response")
		return inn.ParseError(id, err)
	}
	if !found {
		logger.Info().Msg("company not found")
		return inn.NotFound(id)
	}

	return inn.Found(id, field(entity, fullNameKey), field(entity, fullAddressKey))
}

// firstLegalEntity returns the "ЮЛ" object of the first search item. An items
// value holding nothing (absent, null, a scalar, an empty array or object)
// means no company was found.
func firstLegalEntity(payload map[string]any) (map[string]any, bool, error) {
	var first any
	switch items := payload[itemsKey].(type) {
	case []any:
		if len(items) == 0 {
			return nil, false, nil
		}
		first = items[0]
	case map[string]any:
		if len(items) == 0 {
			return nil, false, nil
		}
		return nil, false, errItemsNotArray
	default:
		return nil, false, nil
	}

	item, ok := first.(map[string]any)
	if !ok {
		return nil, false, errItemNotObject
	}

	switch entity := item[legalEntityKey].(type) {
	case nil:
		return nil, true, nil
	case map[string]any:
		return entity, true, nil
	default:
		return nil, false, errEntityInvalid
	}
}

// field renders a legal entity attribute as text. Missing and null values are
// empty so the caller falls back to its placeholder; non-string values keep
// their JSON form.
func field(entity map[string]any, key string) string {
	switch v := entity[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		raw, err := jsonAPI.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(raw)
	}
}

// loggerFor prefers the request-scoped logger carried by ctx so lookup logs
// share its correlation fields, and falls back to the client's own logger.
func (c *Client) loggerFor(ctx context.Context) zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled || l == zerolog.DefaultContextLogger {
		return c.logger
	}
	return l.With().Str("component", "registry").Logger()
}

// stripURL unwraps *url.Error so the request URL, which carries the API
// key, never reaches logs or users.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err
	}
	return err
}
