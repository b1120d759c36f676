package payway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// OutcomeType tags the shape of a gateway reply.
type OutcomeType string

const (
	// OutcomeFormRedirect: the gateway returned a checkout link the
	// browser must navigate to, plus the form fields to carry along.
	OutcomeFormRedirect OutcomeType = "form_redirect"
	// OutcomeInlineImage: the gateway returned a KHQR code as an inline
	// base64 PNG.
	OutcomeInlineImage OutcomeType = "khqr"
	// OutcomeRawMarkup: the gateway returned an HTML document, typically
	// an auto-submitting card form. Rendering it is the caller's problem.
	OutcomeRawMarkup OutcomeType = "html"
	// OutcomeFailure: the call failed; Reason says why.
	OutcomeFailure OutcomeType = "failure"
)

// Outcome is a classified gateway reply. Exactly one payload field is
// populated, according to Type.
type Outcome struct {
	Type       OutcomeType
	TargetURL  string            // form_redirect
	FormFields map[string]string // form_redirect
	QRImage    string            // khqr: base64-encoded PNG
	HTML       string            // html
	Reason     string            // failure
}

// Classifier sorts gateway replies into Outcome variants. The gateway's
// response shape is not formally specified and has been observed to
// vary, so anything unrecognized is logged with the raw body.
type Classifier struct {
	logger *zap.Logger
}

func NewClassifier(logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{logger: logger}
}

// Classify maps an HTTP reply from the gateway to an Outcome.
func (cl *Classifier) Classify(status int, header http.Header, body []byte) Outcome {
	if status >= http.StatusBadRequest {
		return Outcome{Type: OutcomeFailure, Reason: failureReason(status, body)}
	}

	if strings.Contains(header.Get("Content-Type"), "text/html") {
		return Outcome{Type: OutcomeRawMarkup, HTML: string(body)}
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err == nil {
		if img, ok := payload["khqr_image"].(string); ok && img != "" {
			return Outcome{Type: OutcomeInlineImage, QRImage: img}
		}
		if link, ok := payload["checkout_link"].(string); ok && link != "" {
			return Outcome{
				Type:       OutcomeFormRedirect,
				TargetURL:  link,
				FormFields: stringFields(payload),
			}
		}
	}

	cl.logger.Warn("unclassifiable gateway response",
		zap.Int("status", status),
		zap.ByteString("body", body),
	)
	return Outcome{Type: OutcomeFailure, Reason: "unexpected response shape"}
}

// NetworkFailure maps a transport-level error to a Failure outcome,
// keeping timeouts distinguishable from connection failures.
func (cl *Classifier) NetworkFailure(err error) Outcome {
	if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
		return Outcome{Type: OutcomeFailure, Reason: "timeout waiting for the payment gateway"}
	}
	return Outcome{Type: OutcomeFailure, Reason: "could not connect to the payment gateway"}
}

func failureReason(status int, body []byte) string {
	var payload struct {
		Description string `json:"description"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Description != "" {
		return payload.Description
	}
	return fmt.Sprintf("gateway request failed with status %d", status)
}

// stringFields keeps the scalar string fields of a redirect body so the
// caller can replay them as form values.
func stringFields(payload map[string]interface{}) map[string]string {
	fields := make(map[string]string, len(payload))
	for k, v := range payload {
		if s, ok := v.(string); ok {
			fields[k] = s
		}
	}
	return fields
}

func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
