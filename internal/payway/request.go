package payway

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// CallbackPath is the route the gateway posts status pushbacks to.
const CallbackPath = "/api/payment-callback"

// Option is the UI-facing payment method tag.
type Option string

const (
	OptionCard Option = "card"
	OptionKHQR Option = "khqr-qr"
)

// GatewayValue maps the UI tag to the payment_option value the gateway
// expects on the wire and in the signed message.
func (o Option) GatewayValue() (string, error) {
	switch o {
	case OptionCard:
		return "cards", nil
	case OptionKHQR:
		return "abapay_khqr", nil
	}
	return "", ErrInvalidOption
}

// Item is one line of the purchase.
type Item struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// PaymentRequest is the signed purchase payload posted to the gateway.
// Items holds the exact JSON string the signature was computed over;
// re-marshalling it would risk a byte-level mismatch the gateway rejects.
type PaymentRequest struct {
	ReqTime       string          `json:"req_time"`
	TranID        string          `json:"tran_id"`
	MerchantID    string          `json:"merchant_id"`
	Amount        string          `json:"amount"`
	Currency      string          `json:"currency"`
	Items         json.RawMessage `json:"items"`
	PaymentOption string          `json:"payment_option"`
	ReturnURL     string          `json:"return_url"`
	CancelURL     string          `json:"cancel_url"`
	PushbackURL   string          `json:"pushback_url"`
	Hash          string          `json:"hash"`
}

// SignedMessage reconstructs the exact string the request's hash was
// computed over. The field order is fixed by the gateway contract.
func (r *PaymentRequest) SignedMessage() string {
	return r.ReqTime + r.TranID + r.MerchantID + r.Amount + string(r.Items) + r.PaymentOption
}

// Config carries the merchant settings the adapter components need.
type Config struct {
	MerchantID  string
	APIKey      string
	Currency    string
	FrontendURL string
	BackendURL  string
}

// Builder assembles signed purchase requests.
type Builder struct {
	cfg     Config
	signer  *Signer
	tranIDs *TranIDGenerator
	now     func() time.Time
}

// NewBuilder creates a builder for one merchant configuration.
func NewBuilder(cfg Config) (*Builder, error) {
	if cfg.MerchantID == "" {
		return nil, ErrConfiguration
	}
	signer, err := NewSigner([]byte(cfg.APIKey))
	if err != nil {
		return nil, err
	}
	if cfg.Currency == "" {
		cfg.Currency = "USD"
	}
	return &Builder{
		cfg:     cfg,
		signer:  signer,
		tranIDs: NewTranIDGenerator(),
		now:     time.Now,
	}, nil
}

// Build assembles a ready-to-send purchase request. The signature covers
// req_time + tran_id + merchant_id + amount + items + payment_option and
// is always computed last, so any later field change invalidates it.
func (b *Builder) Build(option Option, amount string, items []Item) (*PaymentRequest, error) {
	gwOption, err := option.GatewayValue()
	if err != nil {
		return nil, err
	}

	formatted, err := NormalizeAmount(amount)
	if err != nil {
		return nil, err
	}

	if items == nil {
		items = []Item{}
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, ErrInvalidItems
	}

	tranID := b.tranIDs.Next()
	req := &PaymentRequest{
		ReqTime:       b.now().UTC().Format("2006-01-02 15:04:05"),
		TranID:        tranID,
		MerchantID:    b.cfg.MerchantID,
		Amount:        formatted,
		Currency:      b.cfg.Currency,
		Items:         itemsJSON,
		PaymentOption: gwOption,
		ReturnURL:     b.cfg.FrontendURL + "/payment-success?tran_id=" + tranID,
		CancelURL:     b.cfg.FrontendURL + "/payment-cancel",
		PushbackURL:   b.cfg.BackendURL + CallbackPath,
	}
	req.Hash = b.signer.SignBase64(req.SignedMessage())
	return req, nil
}

// NormalizeAmount renders the amount with exactly two fraction digits.
func NormalizeAmount(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidAmount
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return "", ErrInvalidAmount
	}
	return strconv.FormatFloat(f, 'f', 2, 64), nil
}
