package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"payrelay/internal/handler"
	"payrelay/internal/payway"
)

var merchantCfg = payway.Config{
	MerchantID:  "ec461963",
	APIKey:      "test-api-key",
	Currency:    "USD",
	FrontendURL: "https://shop.example.com",
	BackendURL:  "https://api.example.com",
}

func callbackServer(t *testing.T) *echo.Echo {
	t.Helper()
	verifier, err := payway.NewVerifier(merchantCfg)
	require.NoError(t, err)

	e := echo.New()
	h := handler.NewPaymentCallbackHandler(verifier, zap.NewNop())
	e.POST(payway.CallbackPath, h.Callback)
	return e
}

func signCallback(t *testing.T, tranID, status, amount string) string {
	t.Helper()
	signer, err := payway.NewSigner([]byte(merchantCfg.APIKey))
	require.NoError(t, err)
	return signer.SignBase64(tranID + merchantCfg.MerchantID + status + amount)
}

func postForm(e *echo.Echo, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, payway.CallbackPath, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCallbackAccepted(t *testing.T) {
	e := callbackServer(t)

	form := url.Values{
		"tran_id":     {"20260831100000001"},
		"status":      {"0"},
		"amount":      {"1.00"},
		"merchant_id": {merchantCfg.MerchantID},
		"hash":        {signCallback(t, "20260831100000001", "0", "1.00")},
	}
	rec := postForm(e, form)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"0","message":"Success"}`, rec.Body.String())
}

func TestCallbackTamperedAmount(t *testing.T) {
	e := callbackServer(t)

	form := url.Values{
		"tran_id":     {"20260831100000001"},
		"status":      {"0"},
		"amount":      {"1.01"}, // signed for 1.00
		"merchant_id": {merchantCfg.MerchantID},
		"hash":        {signCallback(t, "20260831100000001", "0", "1.00")},
	}
	rec := postForm(e, form)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"1","message":"signature verification failed"}`, rec.Body.String())
}

func TestCallbackMissingField(t *testing.T) {
	e := callbackServer(t)

	form := url.Values{
		"tran_id":     {"20260831100000001"},
		"status":      {"0"},
		"merchant_id": {merchantCfg.MerchantID},
		// no amount, no hash
	}
	rec := postForm(e, form)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"status":"1","message":"missing required fields"}`, rec.Body.String())
}

func TestCallbackJSONBody(t *testing.T) {
	e := callbackServer(t)

	hash := signCallback(t, "20260831100000002", "4", "5.00")
	body := `{"tran_id":"20260831100000002","status":"4","amount":"5.00",` +
		`"merchant_id":"` + merchantCfg.MerchantID + `","hash":"` + hash + `"}`

	req := httptest.NewRequest(http.MethodPost, payway.CallbackPath, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"0","message":"Success"}`, rec.Body.String())
}
