//go:build unit

package blockchair_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/philmade/gather-shop/internal/infra"
	"github.com/philmade/gather-shop/internal/infra/blockchair"
	"github.com/philmade/gather-shop/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(url string) *blockchair.Client {
	return blockchair.NewClient(config.LedgerConfig{URL: url, Timeout: time.Second})
}

func TestClient_Transaction(t *testing.T) {
	ctx := context.Background()
	const txID = "b1e4b40416eb4f471ed66ee7c5fd5679cee39f38b7240660ad5e0db6bd854528"

	t.Run("parses outputs of a known transaction", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/dashboards/transaction/"+txID, r.URL.Path)
			fmt.Fprintf(w, `{"data":{"%s":{"outputs":[
				{"recipient":"qshop","value":1500000},
				{"recipient":"qchange","value":31337}
			]}}}`, txID)
		}))
		defer srv.Close()

		tx, err := newClient(srv.URL).Transaction(ctx, txID)
		require.NoError(t, err)
		require.Len(t, tx.Outputs, 2)
		assert.Equal(t, "qshop", tx.Outputs[0].Recipient)
		assert.Equal(t, int64(1_500_000), tx.Outputs[0].ValueSats)
	})

	t.Run("empty data object means not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"data":{}}`)
		}))
		defer srv.Close()

		_, err := newClient(srv.URL).Transaction(ctx, txID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("non-200 is unavailable, not not-found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		_, err := newClient(srv.URL).Transaction(ctx, txID)
		assert.True(t, infra.IsKind(err, infra.KindUnavailable))
		assert.False(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("unreachable explorer is unavailable", func(t *testing.T) {
		_, err := newClient("http://127.0.0.1:1").Transaction(ctx, txID)
		assert.True(t, infra.IsKind(err, infra.KindUnavailable))
	})
}
