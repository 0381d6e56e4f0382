package twilio

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	httpclient "MarketPing/pkg/http"
	"MarketPing/pkg/logger"
	"MarketPing/pkg/util"
)

// MaxBodyLen is the hard message size limit enforced by the API, in
// characters, not bytes.
const MaxBodyLen = 1600

const defaultBaseURL = "https://api.twilio.com"

// Client sends WhatsApp messages through the Twilio REST API. It
// implements repository.Messenger.
type Client struct {
	http       *httpclient.Client
	accountSID string
	authHeader string
	from       string
	baseURL    string
	log        *logger.Logger
}

type Option func(*Client)

func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = strings.TrimSuffix(url, "/")
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http = httpclient.NewClient(httpclient.WithTimeout(timeout))
		}
	}
}

func NewClient(accountSID, authToken, from string, log *logger.Logger, opts ...Option) *Client {
	c := &Client{
		http:       httpclient.NewClient(),
		accountSID: accountSID,
		authHeader: "Basic " + base64.StdEncoding.EncodeToString([]byte(accountSID+":"+authToken)),
		from:       from,
		baseURL:    defaultBaseURL,
		log:        log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type messageResponse struct {
	SID          string `json:"sid"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

// Send delivers one message body to the given address and returns the
// message SID. Addresses are stored bare; the channel prefix is applied
// here.
func (c *Client) Send(ctx context.Context, to, body string) (string, error) {
	if !strings.HasPrefix(to, "whatsapp:") {
		to = "whatsapp:" + to
	}
	body = util.TruncateRunes(body, MaxBodyLen)

	var resp messageResponse
	err := c.http.SendAndParse(ctx, &httpclient.RequestOptions{
		Method: httpclient.MethodPost,
		URL:    fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.accountSID),
		Headers: map[string]string{
			"Authorization": c.authHeader,
			"Content-Type":  "application/x-www-form-urlencoded",
		},
		Body: map[string]string{
			"From": c.from,
			"To":   to,
			"Body": body,
		},
	}, &resp)
	if err != nil {
		return "", fmt.Errorf("twilio send: %w", err)
	}

	c.log.Debug("message sent",
		logger.String("to", to),
		logger.String("sid", resp.SID),
		logger.String("status", resp.Status))
	return resp.SID, nil
}
