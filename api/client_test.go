package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketfolio"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

func TestLoginReturnsTextToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/Auth/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte("tok-123\n"))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	token, err := c.Login(context.Background(), "a@b.c", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token != "tok-123" {
		t.Errorf("token = %q, want %q", token, "tok-123")
	}
}

func TestLoginRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	if _, err := c.Login(context.Background(), "a@b.c", "wrong"); err == nil {
		t.Fatal("Login on 401 should fail")
	}
}

func TestAuthenticatedRoutesCarryBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken("tok-xyz"))
	if _, err := c.Transactions(context.Background(), 7); err != nil {
		t.Fatalf("Transactions: %v", err)
	}
	if gotAuth != "Bearer tok-xyz" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-xyz")
	}
}

func TestPublicRoutesCarryNoToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken("tok-xyz"))
	if _, err := c.Cryptos(context.Background(), SortByRank, OrderAsc); err != nil {
		t.Fatalf("Cryptos: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("public route sent Authorization = %q", gotAuth)
	}
}

func TestCryptosDecodesTypedRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("SortBy"); got != "4" {
			t.Errorf("SortBy = %q, want %q", got, "4")
		}
		if got := r.URL.Query().Get("Order"); got != "1" {
			t.Errorf("Order = %q, want %q", got, "1")
		}
		w.Write([]byte(`[
			{"id":"bitcoin","name":"Bitcoin","symbol":"btc","current_price":69000.5,
			 "market_cap":1300000000000,"price_change_percentage_24h":-1.25}
		]`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	cryptos, err := c.Cryptos(context.Background(), SortByMarketCap, OrderDesc)
	if err != nil {
		t.Fatalf("Cryptos: %v", err)
	}
	if len(cryptos) != 1 {
		t.Fatalf("got %d cryptos, want 1", len(cryptos))
	}
	btc := cryptos[0]
	if btc.ID != "bitcoin" || btc.CurrentPrice != 69000.5 {
		t.Errorf("decoded %+v", btc)
	}
	if !btc.PriceChangePercentage24h.Equal(marketfolio.Percent(-1.25)) {
		t.Errorf("change = %v, want -1.25", btc.PriceChangePercentage24h)
	}
}

func TestMalformedPayloadIsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	if _, err := c.Stocks(context.Background(), SortByRank, OrderAsc); err == nil {
		t.Fatal("Stocks should fail on an off-shape payload")
	}
}

func TestWriteRouteReportsRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "insufficient funds", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken("tok"))
	amount := 50.0
	if err := c.BuyCrypto(context.Background(), 7, "bitcoin", &amount, nil); err == nil {
		t.Fatal("BuyCrypto should fail on 400")
	}
}
