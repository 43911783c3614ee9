package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCryptoChartExtractsSeries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/CryptoApi/bitcoin/charts" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("days"); got != "7" {
			t.Errorf("days = %q, want 7", got)
		}
		w.Write([]byte(`{
			"prices": [[1712345600000, 69001.23], [1712349200000, 69420.0]],
			"market_caps": [[1712345600000, 1.3e12]]
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	points, err := c.CryptoChart(context.Background(), "bitcoin", 7)
	if err != nil {
		t.Fatalf("CryptoChart: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[0].Price != 69001.23 {
		t.Errorf("price = %v, want 69001.23", points[0].Price)
	}
	want := time.UnixMilli(1712345600000).UTC()
	if !points[0].Time.Equal(want) {
		t.Errorf("time = %v, want %v", points[0].Time, want)
	}
}

func TestCryptoChartRejectsOffShapePayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing series", `{"market_caps": []}`},
		{"series not a list", `{"prices": "nope"}`},
		{"point not a pair", `{"prices": [[1712345600000]]}`},
		{"point not numeric", `{"prices": [["soon", "cheap"]]}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := New(srv.URL, nil)
			if _, err := c.CryptoChart(context.Background(), "bitcoin", 7); err == nil {
				t.Error("CryptoChart should reject the payload")
			}
		})
	}
}

func TestStockChartExtractsSeries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"symbol": "AAPL",
			"historical": [
				{"date": "2024-02-13", "close": 185.04, "open": 184.0},
				{"date": "2024-02-12", "close": 187.15, "open": 186.5}
			]
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	points, err := c.StockChart(context.Background(), "AAPL", 30)
	if err != nil {
		t.Fatalf("StockChart: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[1].Price != 187.15 {
		t.Errorf("price = %v, want 187.15", points[1].Price)
	}
	if got := points[0].Time.Format("2006-01-02"); got != "2024-02-13" {
		t.Errorf("date = %q, want 2024-02-13", got)
	}
}
