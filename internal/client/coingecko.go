package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	coinGeckoADAID = "cardano"
)

// CoinGeckoClient client for CoinGecko API
type CoinGeckoClient struct {
	baseURL string
	client  *http.Client
}

// NewCoinGeckoClient creates a new CoinGecko client
func NewCoinGeckoClient(baseURL string) *CoinGeckoClient {
	return &CoinGeckoClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// PriceResponse response from CoinGecko simple/price: coin id -> currency -> price
type PriceResponse map[string]map[string]float64

// GetADARate gets ADA exchange rate to vsCurrency (e.g. "usd", "eur")
func (c *CoinGeckoClient) GetADARate(ctx context.Context, vsCurrency string) (string, error) {
	vsCurrency = strings.ToLower(vsCurrency)
	query := url.Values{}
	query.Set("ids", coinGeckoADAID)
	query.Set("vs_currencies", vsCurrency)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/simple/price?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to get rate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to get rate: status %d", resp.StatusCode)
	}

	var priceResp PriceResponse
	if err := json.NewDecoder(resp.Body).Decode(&priceResp); err != nil {
		return "", fmt.Errorf("failed to decode rate: %w", err)
	}

	price, ok := priceResp[coinGeckoADAID][vsCurrency]
	if !ok {
		return "", fmt.Errorf("no ADA rate for currency %q", vsCurrency)
	}

	return strconv.FormatFloat(price, 'f', 4, 64), nil
}
