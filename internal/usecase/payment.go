package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/philmade/gather-shop/internal/infra"
	"github.com/philmade/gather-shop/internal/infra/blockchair"
)

// txIDPattern is the ledger's fixed transaction hash shape: 64 lowercase hex
// characters. Anything else is rejected before any network call.
var txIDPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

var satsPerBCH = decimal.NewFromInt(100_000_000)

const addressPrefix = "bitcoincash:"

// LedgerGateway is the public-ledger transaction lookup boundary.
type LedgerGateway interface {
	Transaction(ctx context.Context, txID string) (*blockchair.Transaction, error)
}

// VerifyResult reports the outcome of checking a claimed payment.
// Unavailable marks transient explorer trouble so callers can answer with a
// retryable status instead of a hard rejection.
type VerifyResult struct {
	OK          bool
	Unavailable bool
	Message     string
}

// PaymentVerifier confirms a claimed transaction against the public ledger:
// the transaction exists (mempool counts), at least one output pays the shop
// address, and that output alone covers the expected amount.
type PaymentVerifier interface {
	Verify(ctx context.Context, txID string, expectedBCH decimal.Decimal) VerifyResult
}

type paymentVerifierImpl struct {
	ledger      LedgerGateway
	shopAddress string
}

func NewPaymentVerifier(ledger LedgerGateway, shopAddress string) PaymentVerifier {
	return &paymentVerifierImpl{
		ledger:      ledger,
		shopAddress: shopAddress,
	}
}

func (v *paymentVerifierImpl) Verify(ctx context.Context, txID string, expectedBCH decimal.Decimal) VerifyResult {
	if !txIDPattern.MatchString(txID) {
		return VerifyResult{Message: fmt.Sprintf(
			"Invalid transaction ID format. Expected a 64-character lowercase hex string. "+
				"Received: '%s' (%d chars). A valid tx_id looks like: "+
				"b1e4b40416eb4f471ed66ee7c5fd5679cee39f38b7240660ad5e0db6bd854528",
			txID, len(txID))}
	}

	tx, err := v.ledger.Transaction(ctx, txID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return VerifyResult{Message: fmt.Sprintf("Transaction %s not found on the BCH blockchain.", txID)}
		}
		return VerifyResult{
			Unavailable: true,
			Message:     "Payment verification service unavailable. Please try again.",
		}
	}

	// Amounts compare in the ledger's smallest unit. The stored total is an
	// exact decimal, so the conversion is exact too.
	expectedSats := expectedBCH.Mul(satsPerBCH).IntPart()
	shopAddr := strings.TrimPrefix(v.shopAddress, addressPrefix)

	// First output to the shop address decides; qualifying outputs are not
	// summed.
	for _, out := range tx.Outputs {
		if out.Recipient != shopAddr {
			continue
		}
		if out.ValueSats >= expectedSats {
			return VerifyResult{OK: true, Message: "Payment verified on blockchain."}
		}
		actualBCH := decimal.NewFromInt(out.ValueSats).Div(satsPerBCH)
		return VerifyResult{Message: fmt.Sprintf(
			"Payment amount insufficient. Expected >= %s BCH, found %s BCH.",
			expectedBCH.String(), actualBCH.String())}
	}

	return VerifyResult{Message: fmt.Sprintf(
		"Transaction does not include payment to shop address (%s). "+
			"Please send BCH to the payment_address returned in your order.",
		v.shopAddress)}
}
