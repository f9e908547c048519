// Package transaction looks up transactions on the ledger.
package transaction

import (
	"context"

	"github.com/aqrl/xrpl-toolkit/xrpl/models"
)

// GetTransactionFromHash sends a tx request for txHash as given and returns
// the response unmodified. A malformed hash is left to the server to reject.
func GetTransactionFromHash(ctx context.Context, txHash string, client models.Client) (*models.Response, error) {
	return client.Request(ctx, &models.Tx{Transaction: txHash})
}

// Result returns the engine result of a tx response (eg. tesSUCCESS) and
// whether the transaction is in a validated ledger
func Result(resp *models.Response) (result string, validated bool) {
	return resp.Get("meta.TransactionResult").String(), resp.Get("validated").Bool()
}
