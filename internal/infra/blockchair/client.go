// Package blockchair looks up Bitcoin Cash transactions on the Blockchair
// explorer API.
package blockchair

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/philmade/gather-shop/internal/infra"
	"github.com/philmade/gather-shop/internal/pkg/config"
	"github.com/philmade/gather-shop/internal/pkg/errs"
)

// Output is one transaction output as reported by the explorer. Value is in
// satoshis.
type Output struct {
	Recipient string
	ValueSats int64
}

// Transaction is the subset of a ledger transaction payment verification
// needs. Mempool (zero-confirmation) transactions are reported the same way
// as mined ones.
type Transaction struct {
	Outputs []Output
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.LedgerConfig) *Client {
	return &Client{
		baseURL: cfg.URL,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

type dashboardResponse struct {
	Data map[string]struct {
		Outputs []struct {
			Recipient string `json:"recipient"`
			Value     int64  `json:"value"`
		} `json:"outputs"`
	} `json:"data"`
}

// Transaction fetches a transaction by hex id. A transaction absent from the
// chain and the mempool yields KindNotFound; transport failures and non-200
// responses yield KindUnavailable so callers can advertise a retry.
func (c *Client) Transaction(ctx context.Context, txID string) (*Transaction, error) {
	url := fmt.Sprintf("%s/dashboards/transaction/%s", c.baseURL, txID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build transaction request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, infra.WrapGatewayErr(infra.KindUnavailable, "ledger explorer unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, infra.WrapGatewayErr(infra.KindUnavailable,
			fmt.Sprintf("ledger explorer returned %d", resp.StatusCode), nil)
	}

	// Blockchair keys the payload by tx hash; an unknown transaction comes
	// back as an empty data object rather than a 404.
	var parsed dashboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, infra.WrapGatewayErr(infra.KindUnavailable, "failed to decode ledger response", err)
	}

	txData, ok := parsed.Data[txID]
	if !ok {
		return nil, infra.WrapGatewayErr(infra.KindNotFound, "transaction not found on ledger", nil)
	}

	tx := &Transaction{Outputs: make([]Output, 0, len(txData.Outputs))}
	for _, out := range txData.Outputs {
		tx.Outputs = append(tx.Outputs, Output{Recipient: out.Recipient, ValueSats: out.Value})
	}
	return tx, nil
}
