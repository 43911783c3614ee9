package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketfolio/api"
)

type fixedToken string

func (t fixedToken) Token() string { return string(t) }

func TestExpiredTokenLeavesHistoryUntouched(t *testing.T) {
	expired := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if expired {
			http.Error(w, "expired", http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`[{"id":1,"userId":7,"concept":"Deposit","amount":500}]`))
	}))
	defer srv.Close()

	s := NewTransactions(api.New(srv.URL, fixedToken("tok")))
	if !s.GetTransactions(context.Background(), 7) {
		t.Fatal("GetTransactions = false, want true")
	}

	expired = true
	if s.GetTransactions(context.Background(), 7) {
		t.Error("GetTransactions = true on a 401, want false")
	}
	if got := s.Transactions(); len(got) != 1 || got[0].Amount != 500 {
		t.Errorf("history after 401 = %+v, want the previous snapshot", got)
	}
}

func TestMakeDeposit(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewTransactions(api.New(srv.URL, fixedToken("tok")))
	res := s.MakeDeposit(context.Background(), 7, 250, 1)
	if !res.Applied {
		t.Fatal("Applied = false, want true")
	}
	if !res.ShouldRefetch {
		t.Error("ShouldRefetch = false, an accepted write needs a re-fetch")
	}
	if gotPath != "/Transactions/deposit" {
		t.Errorf("path = %q, want /Transactions/deposit", gotPath)
	}
	if gotBody["amount"] != 250.0 {
		t.Errorf("amount = %v, want 250", gotBody["amount"])
	}
}

func TestRejectedTradeIsNotApplied(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "insufficient funds", http.StatusBadRequest)
	}))
	defer srv.Close()

	s := NewTransactions(api.New(srv.URL, fixedToken("tok")))
	amount := 100.0
	res := s.BuyCrypto(context.Background(), 7, "bitcoin", &amount, nil)
	if res.Applied {
		t.Error("Applied = true for a rejected trade")
	}
	if res.ShouldRefetch {
		t.Error("ShouldRefetch = true for a rejected trade")
	}
}
