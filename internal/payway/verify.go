package payway

// CallbackEvent is the pushback body the gateway posts once a payment
// settles or fails. All fields are required.
type CallbackEvent struct {
	TranID     string `json:"tran_id" form:"tran_id"`
	Status     string `json:"status" form:"status"`
	Amount     string `json:"amount" form:"amount"`
	MerchantID string `json:"merchant_id" form:"merchant_id"`
	Hash       string `json:"hash" form:"hash"`
}

// Complete reports whether every required field is present.
func (e *CallbackEvent) Complete() bool {
	return e.TranID != "" && e.Status != "" && e.Amount != "" &&
		e.MerchantID != "" && e.Hash != ""
}

// Verifier authenticates pushbacks by recomputing their keyed hash.
type Verifier struct {
	merchantID string
	signer     *Signer
}

func NewVerifier(cfg Config) (*Verifier, error) {
	if cfg.MerchantID == "" {
		return nil, ErrConfiguration
	}
	signer, err := NewSigner([]byte(cfg.APIKey))
	if err != nil {
		return nil, err
	}
	return &Verifier{merchantID: cfg.MerchantID, signer: signer}, nil
}

// Verify reports whether the event was signed by the gateway for this
// merchant. It fails closed: a missing field, a foreign merchant id, or
// a hash mismatch all return false, never an error. The hash covers
// tran_id + merchant_id + status + amount, in that order; both the
// Base64 and hex encodings the gateway has been seen to emit are
// accepted, compared in constant time.
func (v *Verifier) Verify(e CallbackEvent) bool {
	if !e.Complete() {
		return false
	}
	if e.MerchantID != v.merchantID {
		return false
	}
	message := e.TranID + v.merchantID + e.Status + e.Amount
	b64 := HashEqual(v.signer.SignBase64(message), e.Hash)
	hexMatch := HashEqual(v.signer.SignHex(message), e.Hash)
	return b64 || hexMatch
}
