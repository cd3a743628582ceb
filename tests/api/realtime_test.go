package apitest

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"
)

func signClient(key, clientID string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(clientID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestRealtimeAPI_CodeLookup(t *testing.T) {
	e, db := newServer(t)
	seedEngines(t, db)

	// no key configured: lookups are open
	t.Setenv("PORTAL_CRYPT_KEY", "")
	var body struct {
		Available int64 `json:"nb_stock_dispo"`
	}
	rec := getJSON(t, e, "/api/realtime/code-lookup?code=k9k702", &body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if body.Available != 1 {
		t.Errorf("nb_stock_dispo = %d, want 1", body.Available)
	}

	// once a key is configured, unsigned calls are rejected
	t.Setenv("PORTAL_CRYPT_KEY", "portal-secret")
	if rec := getJSON(t, e, "/api/realtime/code-lookup?code=k9k702", nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("unsigned status = %d, want 401", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/realtime/code-lookup?code=k9k702", nil)
	req.Header.Set("X-Client-ID", "dealer-7")
	req.Header.Set("X-Client-Sig", signClient("portal-secret", "dealer-7"))
	signed := httptest.NewRecorder()
	e.ServeHTTP(signed, req)
	if signed.Code != http.StatusOK {
		t.Errorf("signed status = %d, body %s", signed.Code, signed.Body.String())
	}
}
