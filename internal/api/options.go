package api

import "net/http"

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the API endpoint (scheme and host).
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithVersion sets the API version path segment.
func WithVersion(version string) Option {
	return func(c *Client) {
		c.version = version
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLoginCustomer sets the manager account id sent as login-customer-id.
func WithLoginCustomer(id string) Option {
	return func(c *Client) {
		c.loginCustomer = id
	}
}

// WithDebug enables request/response dumping to stderr.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}
