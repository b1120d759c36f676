package models

import "payrelay/internal/payway"

// CreatePaymentRequest is the body the UI posts to /api/create-payment.
type CreatePaymentRequest struct {
	PaymentOption string        `json:"paymentOption" validate:"required,oneof=card khqr-qr"`
	Amount        string        `json:"amount" validate:"required"`
	Items         []payway.Item `json:"items"`
}

// PaymentResponse mirrors the classified gateway outcome for the UI.
// Exactly one of URL/Payload/Data is set depending on Type.
type PaymentResponse struct {
	Type    string      `json:"type"`
	URL     string      `json:"url,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
	Data    string      `json:"data,omitempty"`
}

// ErrorResponse carries a human-readable failure message to the UI.
type ErrorResponse struct {
	Message string `json:"message"`
}

// CallbackAck is the envelope the gateway expects in reply to a
// pushback. The status strings "0" and "1" are its wire contract and
// must be reproduced verbatim.
type CallbackAck struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func AckSuccess() CallbackAck {
	return CallbackAck{Status: "0", Message: "Success"}
}

func AckFailure(reason string) CallbackAck {
	return CallbackAck{Status: "1", Message: reason}
}
