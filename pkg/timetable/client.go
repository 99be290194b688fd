package timetable

import (
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var baseURL = "https://timetable.spbu.ru/api/v1"

const (
	timeoutEnv = "SPBU_TT_API_REQUEST_TIMEOUT"
	userAgent  = "spbuctl/1.0 (+https://github.com/EeOneDown/spbuTimetableAPI)"
)

// DefaultTimeout bounds one round trip. It is read once from
// SPBU_TT_API_REQUEST_TIMEOUT (whole seconds) and defaults to five seconds;
// an invalid value is reported through the global zerolog logger.
var DefaultTimeout = timeoutFromEnv(log.Logger)

const fallbackTimeout = 5 * time.Second

// timeoutFromEnv warns on l and falls back to five seconds when the variable
// is set but is not a positive number of seconds.
func timeoutFromEnv(l zerolog.Logger) time.Duration {
	v, ok := os.LookupEnv(timeoutEnv)
	if !ok {
		return fallbackTimeout
	}
	secs, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || secs <= 0 {
		l.Warn().
			Str("variable", timeoutEnv).
			Str("value", v).
			Dur("fallback", fallbackTimeout).
			Msg("ignoring invalid request timeout")
		return fallbackTimeout
	}
	return time.Duration(secs) * time.Second
}

// Client handles HTTP requests to the SPbU timetable API.
// It holds no per-call state and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	timeout    time.Duration
	baseURL    string
	log        zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the timeout for every call made by the client.
// A client passed with WithHTTPClient is copied, never changed.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithBaseURL points the client at another API root.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client, including its timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger enables debug logging of requests.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// NewClient creates a new API client
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		baseURL: baseURL,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

// do performs r and decodes a 200 response into out. Any other status becomes
// an *APIError; transport errors are returned as net/http produced them.
func (c *Client) do(r request, out any) error {
	reqURL := c.baseURL + r.path
	if len(r.query) > 0 {
		reqURL += "?" + r.query.Encode()
	}

	req, err := http.NewRequest(r.method.Verb(), reqURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug().Err(err).
			Str("operation", r.method.Name()).
			Str("url", reqURL).
			Msg("request failed")
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	c.log.Debug().
		Str("operation", r.method.Name()).
		Str("url", reqURL).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request completed")

	if resp.StatusCode != http.StatusOK {
		return newAPIError(r.method.Name(), resp, body)
	}

	return decodeInto(body, out)
}
