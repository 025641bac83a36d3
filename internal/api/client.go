package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/carlmjohnson/requests"
	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/tidwall/sjson"
)

const (
	defaultEndpoint = "https://googleads.googleapis.com"
	defaultVersion  = "v14"

	// requestTimeout bounds each call when the caller's context carries no
	// deadline of its own.
	requestTimeout = 60 * time.Second
)

// Client handles mutate calls against the advertising platform's REST
// surface. It performs a single synchronous round trip per call; retries and
// token refresh belong to whoever hands it credentials.
type Client struct {
	endpoint      string
	version       string
	httpClient    *http.Client
	authToken     string
	devToken      string
	loginCustomer string
	debug         bool
}

// New creates a client. authToken is the bearer credential, devToken the
// platform developer token; both travel on every request.
func New(authToken, devToken string, opts ...Option) *Client {
	if authToken == "" || devToken == "" {
		fmt.Fprintf(os.Stderr, "Warning: missing credentials; set ADSCTL_AUTH_TOKEN and ADSCTL_DEV_TOKEN or pass -auth/-dev-token\n")
	}

	c := &Client{
		endpoint:   defaultEndpoint,
		version:    defaultVersion,
		httpClient: &http.Client{Timeout: requestTimeout},
		authToken:  authToken,
		devToken:   devToken,
	}
	if os.Getenv("ADSCTL_DEBUG") == "true" {
		c.debug = true
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetDebug toggles request/response dumping after construction.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// post sends one JSON request and decodes the response into out. On failure
// it returns one of the two typed errors from errors.go.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	requestID := uuid.NewString()

	b := requests.
		URL(c.endpoint).
		Path(path).
		Client(c.httpClient).
		Header("developer-token", c.devToken).
		Header("x-request-id", requestID).
		Bearer(c.authToken).
		ContentType("application/json")
	if c.loginCustomer != "" {
		b = b.Header("login-customer-id", c.loginCustomer)
	}

	if c.debug {
		c.dumpRequest(path, requestID, body)
	}

	var status int
	var errBody json.RawMessage
	err := b.
		BodyJSON(body).
		AddValidator(func(res *http.Response) error {
			status = res.StatusCode
			return nil
		}).
		ErrorJSON(&errBody).
		ToJSON(out).
		Fetch(ctx)
	if err != nil {
		return decodeFailure(errBody, status, err)
	}

	if c.debug {
		fmt.Fprintf(os.Stderr, "adsctl: response for %s:\n%s", requestID, spew.Sdump(out))
	}
	return nil
}

// dumpRequest logs the outgoing call with credential headers redacted.
func (c *Client) dumpRequest(path, requestID string, body any) {
	headers, err := json.Marshal(map[string]string{
		"authorization":     "Bearer " + c.authToken,
		"developer-token":   c.devToken,
		"login-customer-id": c.loginCustomer,
		"x-request-id":      requestID,
	})
	if err == nil {
		headers, _ = sjson.SetBytes(headers, "authorization", "REDACTED")
		headers, _ = sjson.SetBytes(headers, "developer-token", "REDACTED")
	}
	payload, _ := json.MarshalIndent(body, "", "  ")
	fmt.Fprintf(os.Stderr, "adsctl: POST %s%s\nheaders: %s\nbody: %s\n", c.endpoint, path, headers, payload)
}
