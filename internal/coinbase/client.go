package coinbase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"time"

	"cryptoview/internal/market"
)

const DefaultBaseURL = "https://api.coinbase.com/v2/prices/"

type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client is a read-only client for the Coinbase prices API.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

type spotResponse struct {
	Data struct {
		Amount string `json:"amount"`
	} `json:"data"`
}

type historyResponse struct {
	Data struct {
		Prices []rawPrice `json:"prices"`
	} `json:"data"`
}

type rawPrice struct {
	Price string `json:"price"`
	Time  string `json:"time"`
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// CurrentValue fetches the spot price for the coin against USD.
func (c *Client) CurrentValue(ctx context.Context, coin market.Coin) (float64, error) {
	url := fmt.Sprintf("%s%s-USD/spot", c.cfg.BaseURL, coin.Symbol)

	var payload spotResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return 0, fmt.Errorf("spot [%s]: %w", coin.Symbol, err)
	}

	amount, err := strconv.ParseFloat(payload.Data.Amount, 64)
	if err != nil {
		return 0, &InvalidResponseError{Field: "data.amount", Reason: fmt.Sprintf("not a numeric string: %q", payload.Data.Amount)}
	}
	return amount, nil
}

// ValueHistory fetches the historical price series for the coin over the
// period, normalized to floats and sorted ascending by time.
func (c *Client) ValueHistory(ctx context.Context, coin market.Coin, period market.Period) (market.ValueHistory, error) {
	url := fmt.Sprintf("%s%s-USD/historic?period=%s", c.cfg.BaseURL, coin.Symbol, period)

	var payload historyResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, fmt.Errorf("historic [%s/%s]: %w", coin.Symbol, period, err)
	}

	if len(payload.Data.Prices) == 0 {
		return nil, &InvalidResponseError{Field: "data.prices", Reason: "missing or empty"}
	}
	return normalizeHistory(payload.Data.Prices)
}

// normalizeHistory converts the raw string pairs into PricePoints and
// sorts them ascending by time. The sort is stable, so points with
// equal timestamps keep their payload order.
func normalizeHistory(raw []rawPrice) (market.ValueHistory, error) {
	history := make(market.ValueHistory, 0, len(raw))
	for _, r := range raw {
		price, err := strconv.ParseFloat(r.Price, 64)
		if err != nil {
			return nil, &InvalidResponseError{Field: "data.prices.price", Reason: fmt.Sprintf("not a numeric string: %q", r.Price)}
		}
		ts, err := time.Parse(time.RFC3339, r.Time)
		if err != nil {
			return nil, &InvalidResponseError{Field: "data.prices.time", Reason: fmt.Sprintf("not a timestamp: %q", r.Time)}
		}
		history = append(history, market.PricePoint{Price: price, Time: ts})
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Time.Before(history[j].Time)
	})
	return history, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("request failed: %s - %s", resp.Status, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
