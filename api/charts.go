package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"marketfolio"
)

// The chart routes hand back the upstream aggregator's payload untouched, so
// their shape is whatever the provider sends. The series is extracted by
// path and validated point by point; anything off-shape is a decode error,
// not a silently propagated blob.

/*
	crypto chart payload:
	{
	    "prices": [
	        [1712345600000, 69001.23],
	        [1712349200000, 69420.00]
	    ],
	    "market_caps": [...],
	    "total_volumes": [...]
	}
*/

// CryptoChart fetches the price series of one cryptocurrency over the given
// number of days.
func (c *Client) CryptoChart(ctx context.Context, id string, days int) ([]marketfolio.ChartPoint, error) {
	q := url.Values{"days": {strconv.Itoa(days)}}
	var jobj any
	if err := c.getJSON(ctx, "/CryptoApi/"+url.PathEscape(id)+"/charts", q, false, &jobj); err != nil {
		return nil, err
	}

	jval, err := jsonpath.Get("$.prices", jobj)
	if err != nil {
		return nil, fmt.Errorf("no price series in chart payload for %q: %w", id, err)
	}
	rows, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("price series for %q is not a list: %T", id, jval)
	}

	points := make([]marketfolio.ChartPoint, 0, len(rows))
	for i, row := range rows {
		pair, ok := row.([]any)
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("chart point %d for %q is not a [time, price] pair", i, id)
		}
		ts, tok := pair[0].(float64)
		price, pok := pair[1].(float64)
		if !tok || !pok {
			return nil, fmt.Errorf("chart point %d for %q holds non numeric values", i, id)
		}
		points = append(points, marketfolio.ChartPoint{
			Time:  time.UnixMilli(int64(ts)).UTC(),
			Price: price,
		})
	}
	return points, nil
}

/*
	stock chart payload:
	{
	    "symbol": "AAPL",
	    "historical": [
	        { "date": "2024-02-13", "close": 185.04, ... },
	        { "date": "2024-02-12", "close": 187.15, ... }
	    ]
	}
*/

// StockChart fetches the daily close series of one stock over the given
// number of days.
func (c *Client) StockChart(ctx context.Context, id string, days int) ([]marketfolio.ChartPoint, error) {
	q := url.Values{"days": {strconv.Itoa(days)}}
	var jobj any
	if err := c.getJSON(ctx, "/StockApi/"+url.PathEscape(id)+"/charts", q, false, &jobj); err != nil {
		return nil, err
	}

	jval, err := jsonpath.Get("$.historical", jobj)
	if err != nil {
		return nil, fmt.Errorf("no historical series in chart payload for %q: %w", id, err)
	}
	rows, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("historical series for %q is not a list: %T", id, jval)
	}

	points := make([]marketfolio.ChartPoint, 0, len(rows))
	for i, row := range rows {
		sample, ok := row.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("chart sample %d for %q is not an object", i, id)
		}
		date, dok := sample["date"].(string)
		close, cok := sample["close"].(float64)
		if !dok || !cok {
			return nil, fmt.Errorf("chart sample %d for %q misses date or close", i, id)
		}
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, fmt.Errorf("chart sample %d for %q has invalid date %q: %w", i, id, date, err)
		}
		points = append(points, marketfolio.ChartPoint{Time: day, Price: close})
	}
	return points, nil
}
