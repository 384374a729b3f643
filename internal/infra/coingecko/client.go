// Package coingecko fetches the live BCH/USD exchange rate.
package coingecko

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/philmade/gather-shop/internal/infra"
	"github.com/philmade/gather-shop/internal/pkg/config"
	"github.com/philmade/gather-shop/internal/pkg/errs"
)

const (
	assetID       = "bitcoin-cash"
	quoteCurrency = "usd"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.RatesConfig) *Client {
	return &Client{
		baseURL: cfg.URL,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// Rate returns the current USD price of one BCH.
func (c *Client) Rate(ctx context.Context) (decimal.Decimal, error) {
	q := url.Values{}
	q.Set("ids", assetID)
	q.Set("vs_currencies", quoteCurrency)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return decimal.Decimal{}, errs.Wrap(err, "failed to build rate request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return decimal.Decimal{}, infra.WrapGatewayErr(infra.KindUnavailable, "exchange rate service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Decimal{}, infra.WrapGatewayErr(infra.KindUnavailable, "exchange rate service returned "+resp.Status, nil)
	}

	var parsed map[string]map[string]json.Number
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&parsed); err != nil {
		return decimal.Decimal{}, infra.WrapGatewayErr(infra.KindUpstreamError, "failed to decode rate response", err)
	}

	raw, ok := parsed[assetID][quoteCurrency]
	if !ok {
		return decimal.Decimal{}, infra.WrapGatewayErr(infra.KindUpstreamError, "rate response missing "+assetID, nil)
	}
	rate, err := decimal.NewFromString(raw.String())
	if err != nil {
		return decimal.Decimal{}, infra.WrapGatewayErr(infra.KindUpstreamError, "unparseable rate "+raw.String(), err)
	}
	if rate.IsZero() || rate.IsNegative() {
		return decimal.Decimal{}, infra.WrapGatewayErr(infra.KindUpstreamError, "non-positive exchange rate "+rate.String(), nil)
	}
	return rate, nil
}
