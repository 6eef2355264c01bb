package pricing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/plankworks/plank/pkg/errors"
	"github.com/plankworks/plank/pkg/tabletop"
)

func TestClient_Quote(t *testing.T) {
	var received tabletop.Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]float64{"price": 512.5})
	}))
	defer srv.Close()

	price, err := NewClient(srv.URL).Quote(context.Background(), basePayload())
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if price != 512.5 {
		t.Errorf("price = %v, want 512.5", price)
	}
	if received.LengthMm != 2000 || received.Material != tabletop.MaterialLaminate {
		t.Errorf("service received %+v, want the full payload", received)
	}
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(map[string]float64{"price": 100})
	}))
	defer srv.Close()

	price, err := NewClient(srv.URL).Quote(context.Background(), basePayload())
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if price != 100 {
		t.Errorf("price = %v, want 100", price)
	}
	if calls.Load() != 3 {
		t.Errorf("calls = %d, want 3 (two retries)", calls.Load())
	}
}

func TestClient_ClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Quote(context.Background(), basePayload())
	if !errors.Is(err, errors.ErrCodePricingFailed) {
		t.Fatalf("err = %v, want PRICING_FAILED", err)
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1 (4xx is permanent)", calls.Load())
	}
}
