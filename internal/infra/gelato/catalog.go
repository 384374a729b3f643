// Package gelato contains the HTTP gateways for Gelato's product catalog and
// order APIs.
package gelato

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/philmade/gather-shop/internal/infra"
	"github.com/philmade/gather-shop/internal/pkg/config"
	"github.com/philmade/gather-shop/internal/pkg/errs"
)

// CatalogProduct is one search hit: the concrete purchasable variant plus the
// attribute values it was indexed under.
type CatalogProduct struct {
	UID        string
	Attributes map[string]string
}

type CatalogClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewCatalogClient(cfg config.GelatoConfig) *CatalogClient {
	return &CatalogClient{
		baseURL: cfg.CatalogURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

type searchRequest struct {
	AttributeFilters map[string][]string `json:"attributeFilters"`
	Limit            int                 `json:"limit"`
	Offset           int                 `json:"offset,omitempty"`
}

type searchResponse struct {
	Products []struct {
		ProductUID string            `json:"productUid"`
		Attributes map[string]string `json:"attributes"`
	} `json:"products"`
}

// SearchProducts issues one page of an attribute-filter search against a
// catalog. Filters are single-valued on our side; Gelato's API takes a list
// per attribute.
func (c *CatalogClient) SearchProducts(ctx context.Context, catalogUID string, filters map[string]string, limit, offset int) ([]CatalogProduct, error) {
	attrFilters := make(map[string][]string, len(filters))
	for k, v := range filters {
		attrFilters[k] = []string{v}
	}

	body, err := json.Marshal(searchRequest{AttributeFilters: attrFilters, Limit: limit, Offset: offset})
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode catalog search request")
	}

	url := fmt.Sprintf("%s/catalogs/%s/products:search", c.baseURL, catalogUID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build catalog search request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, infra.WrapGatewayErr(infra.KindUnavailable, "gelato catalog search failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, infra.WrapGatewayErr(infra.KindUpstreamError,
			fmt.Sprintf("gelato catalog search returned %d", resp.StatusCode), nil)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, infra.WrapGatewayErr(infra.KindUpstreamError, "failed to decode catalog search response", err)
	}

	products := make([]CatalogProduct, 0, len(parsed.Products))
	for _, p := range parsed.Products {
		products = append(products, CatalogProduct{UID: p.ProductUID, Attributes: p.Attributes})
	}
	return products, nil
}

// ProductPrice fetches the USD cost price for a product UID. Gelato returns a
// list of price points; the first entry is the single-quantity cost.
func (c *CatalogClient) ProductPrice(ctx context.Context, productUID string) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/products/%s/prices", c.baseURL, productUID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Decimal{}, errs.Wrap(err, "failed to build price request")
	}
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return decimal.Decimal{}, infra.WrapGatewayErr(infra.KindUnavailable, "gelato price lookup failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Decimal{}, infra.WrapGatewayErr(infra.KindUpstreamError,
			fmt.Sprintf("gelato price lookup returned %d", resp.StatusCode), nil)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Decimal{}, infra.WrapGatewayErr(infra.KindUpstreamError, "failed to read price response", err)
	}

	// Decode prices as json.Number so the USD cost survives as an exact decimal.
	var prices []struct {
		Price json.Number `json:"price"`
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&prices); err != nil {
		return decimal.Decimal{}, infra.WrapGatewayErr(infra.KindUpstreamError, "failed to decode price response", err)
	}
	if len(prices) == 0 {
		return decimal.Decimal{}, infra.WrapGatewayErr(infra.KindNotFound, "no price listed for product "+productUID, nil)
	}

	cost, err := decimal.NewFromString(prices[0].Price.String())
	if err != nil {
		return decimal.Decimal{}, infra.WrapGatewayErr(infra.KindUpstreamError, "unparseable price "+prices[0].Price.String(), err)
	}
	return cost, nil
}
