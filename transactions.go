package coinpayments

import (
	"context"
	"fmt"
	"strconv"

	"github.com/coinpayments/coinpayments-go/utils"
)

// TransactionFilter narrows the transaction listing. Zero values are
// omitted.
type TransactionFilter struct {
	Page            uint32
	PerPage         uint32
	Status          TransactionStatus
	TransactionType TransactionType
}

func (f *TransactionFilter) queryParams() []utils.QueryParam {
	if f == nil {
		return nil
	}
	var params []utils.QueryParam
	if f.Page > 0 {
		params = append(params, utils.QueryParam{Key: "page", Value: strconv.FormatUint(uint64(f.Page), 10)})
	}
	if f.PerPage > 0 {
		params = append(params, utils.QueryParam{Key: "per_page", Value: strconv.FormatUint(uint64(f.PerPage), 10)})
	}
	if f.Status != "" {
		params = append(params, utils.QueryParam{Key: "status", Value: string(f.Status)})
	}
	if f.TransactionType != "" {
		params = append(params, utils.QueryParam{Key: "type", Value: string(f.TransactionType)})
	}
	return params
}

func validateWalletPath(walletLabel, currencyID string) error {
	if !utils.IsValidWalletLabel(walletLabel) {
		return invalidParams("wallet label %q", walletLabel)
	}
	if !utils.IsValidCurrencyID(currencyID) {
		return invalidParams("currency id %q", currencyID)
	}
	return nil
}

// GetTransactions lists the transactions of one wallet. A nil filter returns
// everything with server-side pagination defaults.
func (c *Client) GetTransactions(ctx context.Context, walletLabel, currencyID string, filter *TransactionFilter) (*GetTransactionsResponse, error) {
	if err := validateWalletPath(walletLabel, currencyID); err != nil {
		return nil, err
	}
	endpoint := fmt.Sprintf("v3/merchant/wallets/%s/%s/transactions", walletLabel, currencyID)
	return getRequest[*GetTransactionsResponse](ctx, c, endpoint, filter.queryParams())
}

// GetTransaction looks up a single transaction by transaction ID or spend
// request ID. At least one of the two must be set.
func (c *Client) GetTransaction(ctx context.Context, walletLabel, currencyID, transactionID, spendRequestID string) (*Transaction, error) {
	if err := validateWalletPath(walletLabel, currencyID); err != nil {
		return nil, err
	}
	if transactionID == "" && spendRequestID == "" {
		return nil, invalidParams("transaction id or spend request id is required")
	}

	var params []utils.QueryParam
	if transactionID != "" {
		params = append(params, utils.QueryParam{Key: "transactionId", Value: transactionID})
	}
	if spendRequestID != "" {
		params = append(params, utils.QueryParam{Key: "spendRequestId", Value: spendRequestID})
	}

	endpoint := fmt.Sprintf("v3/merchant/wallets/%s/%s/transaction", walletLabel, currencyID)
	return getRequest[*Transaction](ctx, c, endpoint, params)
}

// GetTransactionCount returns transaction totals for one wallet.
func (c *Client) GetTransactionCount(ctx context.Context, walletLabel, currencyID string) (*TransactionCountResponse, error) {
	if err := validateWalletPath(walletLabel, currencyID); err != nil {
		return nil, err
	}
	endpoint := fmt.Sprintf("v3/merchant/wallets/%s/%s/transactions/count", walletLabel, currencyID)
	return getRequest[*TransactionCountResponse](ctx, c, endpoint, nil)
}

// CreateSpendRequest prepares a withdrawal or conversion from a wallet. The
// response carries a preview with the fee the confirmation will commit to.
func (c *Client) CreateSpendRequest(ctx context.Context, walletLabel, currencyID string, request *CreateSpendRequest) (*SpendRequestResponse, error) {
	if err := validateWalletPath(walletLabel, currencyID); err != nil {
		return nil, err
	}
	if request == nil {
		return nil, invalidParams("spend request is required")
	}
	if request.DestinationAddress == nil && request.DestinationCurrencyID == nil {
		return nil, invalidParams("destination address or destination currency is required")
	}
	if err := utils.Validator.Struct(request); err != nil {
		return nil, &InvalidParametersError{Reason: "spend request", Err: err}
	}

	endpoint := fmt.Sprintf("v3/merchant/wallets/%s/%s/spend/request", walletLabel, currencyID)
	return postRequest[*SpendRequestResponse](ctx, c, endpoint, request)
}

// ConfirmSpendRequest commits a prepared spend request and returns the
// resulting transaction.
func (c *Client) ConfirmSpendRequest(ctx context.Context, walletLabel, currencyID, spendRequestID string) (*Transaction, error) {
	if err := validateWalletPath(walletLabel, currencyID); err != nil {
		return nil, err
	}
	if spendRequestID == "" {
		return nil, invalidParams("spend request id is required")
	}

	endpoint := fmt.Sprintf("v3/merchant/wallets/%s/%s/spend/confirmation", walletLabel, currencyID)
	return postRequest[*Transaction](ctx, c, endpoint, spendConfirmationRequest{SpendRequestID: spendRequestID})
}

// GetWalletConsolidation lists consolidation operations for one wallet.
// Pass 0 for page or perPage to use the server defaults.
func (c *Client) GetWalletConsolidation(ctx context.Context, walletLabel, currencyID string, page, perPage uint32) ([]ConsolidationInfo, error) {
	if err := validateWalletPath(walletLabel, currencyID); err != nil {
		return nil, err
	}

	var params []utils.QueryParam
	if page > 0 {
		params = append(params, utils.QueryParam{Key: "page", Value: strconv.FormatUint(uint64(page), 10)})
	}
	if perPage > 0 {
		params = append(params, utils.QueryParam{Key: "per_page", Value: strconv.FormatUint(uint64(perPage), 10)})
	}

	endpoint := fmt.Sprintf("v3/merchant/wallets/%s/%s/consolidation", walletLabel, currencyID)
	return getRequest[[]ConsolidationInfo](ctx, c, endpoint, params)
}

// ExecuteWalletConsolidation sweeps funds from one wallet's addresses into a
// target wallet.
func (c *Client) ExecuteWalletConsolidation(ctx context.Context, walletLabel, currencyID, targetWalletLabel string, request *ConsolidationRequest) (*ConsolidationInfo, error) {
	if err := validateWalletPath(walletLabel, currencyID); err != nil {
		return nil, err
	}
	if !utils.IsValidWalletLabel(targetWalletLabel) {
		return nil, invalidParams("target wallet label %q", targetWalletLabel)
	}
	if err := utils.Validator.Struct(request); err != nil {
		return nil, &InvalidParametersError{Reason: "consolidation request", Err: err}
	}

	endpoint := fmt.Sprintf("v3/merchant/wallets/%s/%s/consolidation/%s", walletLabel, currencyID, targetWalletLabel)
	return postRequest[*ConsolidationInfo](ctx, c, endpoint, request)
}

// ExecuteMultiWalletConsolidation sweeps funds from several wallets into one
// target.
func (c *Client) ExecuteMultiWalletConsolidation(ctx context.Context, targetWalletLabel string, request *ConsolidationRequest) (*ConsolidationInfo, error) {
	if !utils.IsValidWalletLabel(targetWalletLabel) {
		return nil, invalidParams("target wallet label %q", targetWalletLabel)
	}
	if err := utils.Validator.Struct(request); err != nil {
		return nil, &InvalidParametersError{Reason: "consolidation request", Err: err}
	}

	endpoint := fmt.Sprintf("v3/merchant/wallets/consolidation/%s", targetWalletLabel)
	return postRequest[*ConsolidationInfo](ctx, c, endpoint, request)
}

// PreviewConsolidation estimates the outcome of a consolidation without
// executing it.
func (c *Client) PreviewConsolidation(ctx context.Context, request *ConsolidationPreviewRequest) (*ConsolidationPreviewResponse, error) {
	if err := utils.Validator.Struct(request); err != nil {
		return nil, &InvalidParametersError{Reason: "consolidation preview request", Err: err}
	}
	return postRequest[*ConsolidationPreviewResponse](ctx, c, "v3/merchant/wallets/consolidation-preview", request)
}

// GetConsolidationTransactions lists the transactions produced by one
// consolidation.
func (c *Client) GetConsolidationTransactions(ctx context.Context, walletLabel, currencyID, consolidationID string) ([]Transaction, error) {
	if err := validateWalletPath(walletLabel, currencyID); err != nil {
		return nil, err
	}
	if consolidationID == "" {
		return nil, invalidParams("consolidation id is required")
	}
	endpoint := fmt.Sprintf("v3/merchant/wallets/%s/%s/consolidation-transactions/%s", walletLabel, currencyID, consolidationID)
	return getRequest[[]Transaction](ctx, c, endpoint, nil)
}

// IsCompleted reports whether the transaction reached the chain or received
// all confirmations.
func (t *Transaction) IsCompleted() bool {
	return t.Status == TransactionStatusCompleted || t.Status == TransactionStatusConfirmedOnBlockchain
}

// IsPending reports whether the transaction is still awaiting confirmations
// or processing.
func (t *Transaction) IsPending() bool {
	switch t.Status {
	case TransactionStatusPending, TransactionStatusPendingReceive, TransactionStatusProcessing:
		return true
	}
	return false
}

// IsFailed reports whether the transaction failed or expired.
func (t *Transaction) IsFailed() bool {
	switch t.Status {
	case TransactionStatusFailed, TransactionStatusFailedOnBlockchain, TransactionStatusExpired:
		return true
	}
	return false
}

// TotalAmount returns the amount plus the fee when one is present.
func (t *Transaction) TotalAmount() float64 {
	total := t.AmountF
	if t.FeeF != nil {
		total += *t.FeeF
	}
	return total
}

// FilterTransactionsByType returns the transactions of the given type.
func FilterTransactionsByType(transactions []Transaction, transactionType TransactionType) []Transaction {
	var filtered []Transaction
	for _, tx := range transactions {
		if tx.TransactionType == transactionType {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

// FilterTransactionsByStatus returns the transactions in the given state.
func FilterTransactionsByStatus(transactions []Transaction, status TransactionStatus) []Transaction {
	var filtered []Transaction
	for _, tx := range transactions {
		if tx.Status == status {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

// FilterTransactionsByDateRange returns the transactions created within the
// inclusive range. Timestamps compare lexically, which is correct for the
// ISO 8601 strings the API returns.
func FilterTransactionsByDateRange(transactions []Transaction, startDate, endDate string) []Transaction {
	var filtered []Transaction
	for _, tx := range transactions {
		if tx.CreatedAt >= startDate && tx.CreatedAt <= endDate {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

// GroupTransactionsByCurrency buckets transactions by currency id.
func GroupTransactionsByCurrency(transactions []Transaction) map[string][]Transaction {
	grouped := make(map[string][]Transaction)
	for _, tx := range transactions {
		grouped[tx.CurrencyID] = append(grouped[tx.CurrencyID], tx)
	}
	return grouped
}
