package gateway

import (
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TokenSource supplies the bearer token attached to authenticated requests.
// An empty token means no Authorization header is sent.
type TokenSource interface {
	Token() string
}

// Client translates course, lecture and profile operations into the remote
// API's request/response contract. Calls without a binary file use JSON
// bodies; calls carrying a file are sent as multipart form data.
type Client struct {
	http   *resty.Client
	logger zerolog.Logger
}

// New builds a Client against the given base URL. tokens may be nil for an
// unauthenticated client.
func New(baseURL string, timeout time.Duration, tokens TokenSource, logger zerolog.Logger) *Client {
	c := &Client{
		logger: logger.With().Str("service", "Gateway").Logger(),
	}
	c.http = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			req.SetHeader("X-Request-ID", uuid.NewString())
			if tokens != nil {
				if tok := tokens.Token(); tok != "" {
					req.SetHeader("Authorization", "Bearer "+tok)
				}
			}
			return nil
		})
	return c
}

// errorBody is the remote's error envelope.
type errorBody struct {
	Message string `json:"message"`
}

// apiError builds the semantic error for a non-2xx response.
func (c *Client) apiError(resp *resty.Response) error {
	var body errorBody
	_ = json.Unmarshal(resp.Body(), &body)
	err := &APIError{
		Kind:    kindForStatus(resp.StatusCode()),
		Status:  resp.StatusCode(),
		Message: body.Message,
	}
	c.logger.Warn().
		Int("status_code", resp.StatusCode()).
		Str("path", resp.Request.URL).
		Str("error_body", body.Message).
		Msg("API returned error")
	return err
}

func (c *Client) transportError(op string, err error) error {
	c.logger.Error().Err(err).Str("op", op).Msg("request failed before a response arrived")
	return &TransportError{Op: op, Err: err}
}
