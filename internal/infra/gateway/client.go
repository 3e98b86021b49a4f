package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/noumaankhatib/mindfulqalb-payments/internal/domain/payment"
	"github.com/noumaankhatib/mindfulqalb-payments/internal/pkg/errs"
)

var (
	// ErrUnavailable covers timeouts and 5xx responses. A timeout is a
	// retryable upstream condition, never "payment invalid".
	ErrUnavailable = errs.New("payment gateway unavailable")
	// ErrRejected covers 4xx responses: the gateway understood and refused.
	ErrRejected = errs.New("payment gateway rejected request")
)

type Config struct {
	Name            string
	BaseURL         string
	KeyID           string
	KeySecret       string
	OrderIDPrefix   string
	PaymentIDPrefix string
	Timeout         time.Duration
}

// Client talks to one checkout provider's REST API. Both providers expose
// the same order/refund surface; credentials, id prefixes and the signing
// secret differ per provider.
type Client struct {
	name          string
	baseURL       string
	keyID         string
	keySecret     string
	orderPrefix   string
	paymentPrefix string
	verifier      *payment.SignatureVerifier
	httpClient    *retryablehttp.Client
}

func NewClient(cfg Config) *Client {
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = 2
	httpClient.RetryWaitMin = 500 * time.Millisecond
	httpClient.RetryWaitMax = 3 * time.Second
	httpClient.HTTPClient.Timeout = cfg.Timeout
	httpClient.Logger = nil

	return &Client{
		name:          cfg.Name,
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		keyID:         cfg.KeyID,
		keySecret:     cfg.KeySecret,
		orderPrefix:   cfg.OrderIDPrefix,
		paymentPrefix: cfg.PaymentIDPrefix,
		verifier:      payment.NewSignatureVerifier(cfg.KeySecret),
		httpClient:    httpClient,
	}
}

func (c *Client) Name() string {
	return c.name
}

func (c *Client) OrderIDPrefix() string {
	return c.orderPrefix
}

func (c *Client) PaymentIDPrefix() string {
	return c.paymentPrefix
}

func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	return c.verifier.Verify(orderID, paymentID, signature)
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type createOrderResponse struct {
	ID string `json:"id"`
}

// CreateOrder registers an order for the final payable amount and returns
// the gateway-issued order id.
func (c *Client) CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (string, error) {
	body := createOrderRequest{
		Amount:   amountPaise,
		Currency: currency,
		Receipt:  receipt,
	}

	resp, err := c.post(ctx, c.baseURL+"/orders", body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return "", err
	}

	var result createOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errs.Mark(errs.Wrap(err, "failed to decode order response"), ErrUnavailable)
	}
	if result.ID == "" {
		return "", errs.Mark(errs.New("gateway returned empty order id"), ErrUnavailable)
	}
	return result.ID, nil
}

type refundRequest struct {
	Amount int64 `json:"amount"`
}

// Refund issues a partial or full refund of a captured payment.
func (c *Client) Refund(ctx context.Context, paymentID string, amountPaise int64) error {
	url := fmt.Sprintf("%s/payments/%s/refund", c.baseURL, paymentID)

	resp, err := c.post(ctx, url, refundRequest{Amount: amountPaise})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.checkStatus(resp)
}

func (c *Client) post(ctx context.Context, url string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode gateway request")
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build gateway request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Mark(err, ErrUnavailable)
	}
	return resp, nil
}

func (c *Client) checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return errs.Mark(errs.New(fmt.Sprintf("gateway returned %d", resp.StatusCode)), ErrRejected)
	default:
		return errs.Mark(errs.New(fmt.Sprintf("gateway returned %d", resp.StatusCode)), ErrUnavailable)
	}
}
