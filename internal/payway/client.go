package payway

import (
	"context"
	"time"

	"go.uber.org/zap"

	"payrelay/internal/pkg/httpclient"
)

// Client runs the full payment-initiation round trip: build a signed
// purchase request, post it to the hosted checkout, classify the reply.
type Client struct {
	purchaseURL string
	http        *httpclient.Client
	builder     *Builder
	classifier  *Classifier
	logger      *zap.Logger
}

// NewClient creates a gateway client for one merchant configuration.
// The timeout bounds the outbound call; the gateway has no documented
// SLA.
func NewClient(cfg Config, purchaseURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	builder, err := NewBuilder(cfg)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		purchaseURL: purchaseURL,
		http:        httpclient.New().WithTimeout(timeout),
		builder:     builder,
		classifier:  NewClassifier(logger),
		logger:      logger,
	}, nil
}

// CreatePayment initiates a payment and returns the request that was
// sent alongside the classified outcome. Input and configuration
// problems come back as errors; transport and gateway problems come
// back as a Failure outcome so the caller can tell them apart.
func (c *Client) CreatePayment(ctx context.Context, option Option, amount string, items []Item) (*PaymentRequest, Outcome, error) {
	req, err := c.builder.Build(option, amount, items)
	if err != nil {
		return nil, Outcome{}, err
	}

	resp, err := c.http.PostJSON(ctx, c.purchaseURL, req)
	if err != nil {
		c.logger.Error("gateway call failed",
			zap.String("tran_id", req.TranID),
			zap.Error(err),
		)
		return req, c.classifier.NetworkFailure(err), nil
	}

	outcome := c.classifier.Classify(resp.StatusCode, resp.Header, resp.Body)
	c.logger.Info("gateway reply classified",
		zap.String("tran_id", req.TranID),
		zap.String("outcome", string(outcome.Type)),
		zap.Int("status", resp.StatusCode),
	)
	return req, outcome, nil
}
