package coinpayments

// TransactionType categorizes a wallet ledger entry.
type TransactionType string

const (
	// Receiving funds from within the CoinPayments system.
	TransactionInternalReceive TransactionType = "internalReceive"
	// Receiving UTXO funds from an external source.
	TransactionUtxoExternalReceive TransactionType = "utxoExternalReceive"
	// Receiving funds from external account-based addresses.
	TransactionAccountBasedExternalReceive TransactionType = "accountBasedExternalReceive"
	// Sending funds to an external address.
	TransactionExternalSpend TransactionType = "externalSpend"
	// Sending funds from one CoinPayments user to another.
	TransactionInternalSpend TransactionType = "internalSpend"
	// Sending funds between wallets of the same user.
	TransactionSameUserSpend TransactionType = "sameUserSpend"
	// Receiving funds from another wallet of the same user.
	TransactionSameUserReceive TransactionType = "sameUserReceive"
	// Receiving tokens from external account-based transfers.
	TransactionAccountBasedExternalTokenReceive TransactionType = "accountBasedExternalTokenReceive"
	// Sending account-based tokens to an external address.
	TransactionAccountBasedTokenSpend TransactionType = "accountBasedTokenSpend"
	// Converting funds between user wallets.
	TransactionConversion TransactionType = "conversion"
	// Funds swept to an external wallet by auto-sweeping.
	TransactionAutoSweeping TransactionType = "autoSweeping"
	// Receiving test funds.
	TransactionReceiveTestFundsFromPool TransactionType = "receiveTestFundsFromPool"
	// Returning test funds.
	TransactionReturnTestFundsToPool TransactionType = "returnTestFundsToPool"
	// Unrecognized transaction type.
	TransactionUnknown TransactionType = "unknown"
)

// TransactionStatus is the processing state of a transaction.
type TransactionStatus string

const (
	// Initiated withdrawal, not on the blockchain yet.
	TransactionStatusCreated TransactionStatus = "created"
	// Detected on the blockchain, awaiting required confirmations.
	TransactionStatusPending TransactionStatus = "pending"
	// Validation state is being processed.
	TransactionStatusProcessing TransactionStatus = "processing"
	// Put on chain, visible in the mempool.
	TransactionStatusCompleted TransactionStatus = "completed"
	// Not confirmed in time.
	TransactionStatusExpired TransactionStatus = "expired"
	TransactionStatusFailed  TransactionStatus = "failed"
	// Received all required confirmations.
	TransactionStatusConfirmedOnBlockchain TransactionStatus = "confirmedOnBlockchain"
	// Incoming deposit on chain, awaiting confirmations.
	TransactionStatusPendingReceive TransactionStatus = "pendingReceive"
	// Did not receive the required confirmations.
	TransactionStatusFailedOnBlockchain TransactionStatus = "failedOnBlockchain"
	TransactionStatusCancelled          TransactionStatus = "cancelled"
	TransactionStatusRejected           TransactionStatus = "rejected"
	TransactionStatusUnknown            TransactionStatus = "unknown"
)

// Transaction is a single wallet ledger entry.
type Transaction struct {
	ID                    string            `json:"id"`
	WalletID              string            `json:"wallet_id"`
	CurrencyID            string            `json:"currency_id"`
	TransactionType       TransactionType   `json:"transaction_type"`
	Amount                string            `json:"amount"`
	AmountF               float64           `json:"amount_f"`
	Fee                   *string           `json:"fee,omitempty"`
	FeeF                  *float64          `json:"fee_f,omitempty"`
	Status                TransactionStatus `json:"status"`
	Address               *string           `json:"address,omitempty"`
	TxID                  *string           `json:"txid,omitempty"`
	Confirmations         uint32            `json:"confirmations"`
	RequiredConfirmations uint32            `json:"required_confirmations"`
	Network               string            `json:"network"`
	CreatedAt             string            `json:"created_at"`
	UpdatedAt             string            `json:"updated_at"`
	CompletedAt           *string           `json:"completed_at,omitempty"`
}

// SpendRequestStatus is the state of a prepared withdrawal or conversion.
type SpendRequestStatus string

const (
	SpendRequestPending   SpendRequestStatus = "pending"
	SpendRequestConfirmed SpendRequestStatus = "confirmed"
	SpendRequestCancelled SpendRequestStatus = "cancelled"
	SpendRequestExpired   SpendRequestStatus = "expired"
	SpendRequestFailed    SpendRequestStatus = "failed"
)

// SpendRequest is a prepared withdrawal or conversion awaiting confirmation.
type SpendRequest struct {
	ID                    string             `json:"id"`
	WalletLabel           string             `json:"wallet_label"`
	CurrencyID            string             `json:"currency_id"`
	Amount                string             `json:"amount"`
	AmountF               float64            `json:"amount_f"`
	Fee                   string             `json:"fee"`
	FeeF                  float64            `json:"fee_f"`
	TotalAmount           string             `json:"total_amount"`
	TotalAmountF          float64            `json:"total_amount_f"`
	DestinationAddress    *string            `json:"destination_address,omitempty"`
	DestinationCurrencyID *string            `json:"destination_currency_id,omitempty"`
	Note                  *string            `json:"note,omitempty"`
	Status                SpendRequestStatus `json:"status"`
	CreatedAt             string             `json:"created_at"`
	ExpiresAt             string             `json:"expires_at"`
}

// CreateSpendRequest prepares a withdrawal or conversion. Set a destination
// address for withdrawals, a destination currency for conversions.
type CreateSpendRequest struct {
	Amount                string  `json:"amount" validate:"required,amount"`
	DestinationAddress    *string `json:"destination_address,omitempty"`
	DestinationCurrencyID *string `json:"destination_currency_id,omitempty" validate:"omitempty,currency_id"`
	Note                  *string `json:"note,omitempty"`
	AutoConfirm           *bool   `json:"auto_confirm,omitempty"`
}

// NewCreateSpendRequest returns a request that needs explicit confirmation.
func NewCreateSpendRequest(amount string) *CreateSpendRequest {
	autoConfirm := false
	return &CreateSpendRequest{
		Amount:      amount,
		AutoConfirm: &autoConfirm,
	}
}

// ToAddress sets the withdrawal destination.
func (r *CreateSpendRequest) ToAddress(address string) *CreateSpendRequest {
	r.DestinationAddress = &address
	return r
}

// ToCurrency sets the conversion target currency.
func (r *CreateSpendRequest) ToCurrency(currencyID string) *CreateSpendRequest {
	r.DestinationCurrencyID = &currencyID
	return r
}

// WithNote attaches a note to the spend request.
func (r *CreateSpendRequest) WithNote(note string) *CreateSpendRequest {
	r.Note = &note
	return r
}

// AutoConfirmed marks the request for confirmation without a second call.
func (r *CreateSpendRequest) AutoConfirmed() *CreateSpendRequest {
	autoConfirm := true
	r.AutoConfirm = &autoConfirm
	return r
}

// SpendPreview estimates the cost of a pending spend request.
type SpendPreview struct {
	Amount                    string  `json:"amount"`
	AmountF                   float64 `json:"amount_f"`
	Fee                       string  `json:"fee"`
	FeeF                      float64 `json:"fee_f"`
	Total                     string  `json:"total"`
	TotalF                    float64 `json:"total_f"`
	ExchangeRate              *string `json:"exchange_rate,omitempty"`
	EstimatedConfirmationTime *uint32 `json:"estimated_confirmation_time,omitempty"`
}

// SpendRequestResponse pairs a created spend request with its cost preview.
type SpendRequestResponse struct {
	Request SpendRequest `json:"request"`
	Preview SpendPreview `json:"preview"`
}

type spendConfirmationRequest struct {
	SpendRequestID string `json:"spend_request_id"`
}

// GetTransactionsResponse lists wallet transactions.
type GetTransactionsResponse struct {
	Transactions []Transaction       `json:"transactions"`
	Pagination   *PaginationMetadata `json:"pagination,omitempty"`
}

// TransactionCountResponse summarizes transaction counts by state.
type TransactionCountResponse struct {
	Count          uint32 `json:"count"`
	PendingCount   uint32 `json:"pending_count"`
	CompletedCount uint32 `json:"completed_count"`
	FailedCount    uint32 `json:"failed_count"`
}

// ConsolidationStatus is the state of an address consolidation.
type ConsolidationStatus string

const (
	ConsolidationPending    ConsolidationStatus = "pending"
	ConsolidationInProgress ConsolidationStatus = "inProgress"
	ConsolidationCompleted  ConsolidationStatus = "completed"
	ConsolidationFailed     ConsolidationStatus = "failed"
	ConsolidationCancelled  ConsolidationStatus = "cancelled"
)

// ConsolidationInfo describes one sweep of addresses into a target.
type ConsolidationInfo struct {
	ID              string              `json:"id"`
	WalletLabel     string              `json:"wallet_label"`
	CurrencyID      string              `json:"currency_id"`
	SourceAddresses []string            `json:"source_addresses"`
	TargetAddress   string              `json:"target_address"`
	Amount          string              `json:"amount"`
	AmountF         float64             `json:"amount_f"`
	Fee             string              `json:"fee"`
	FeeF            float64             `json:"fee_f"`
	Status          ConsolidationStatus `json:"status"`
	CreatedAt       string              `json:"created_at"`
	CompletedAt     *string             `json:"completed_at,omitempty"`
}

// ConsolidationRequest sweeps funds from source addresses into a target
// wallet. A nil Amount sweeps everything.
type ConsolidationRequest struct {
	SourceAddresses   []string `json:"source_addresses" validate:"required,min=1"`
	TargetWalletLabel string   `json:"target_wallet_label" validate:"required,wallet_label"`
	Amount            *string  `json:"amount,omitempty" validate:"omitempty,amount"`
	Note              *string  `json:"note,omitempty"`
}

// ConsolidationSourceWallet names one wallet's addresses for a preview.
type ConsolidationSourceWallet struct {
	WalletLabel string   `json:"wallet_label" validate:"required,wallet_label"`
	CurrencyID  string   `json:"currency_id" validate:"required,currency_id"`
	Addresses   []string `json:"addresses" validate:"required,min=1"`
}

// ConsolidationPreviewRequest estimates a multi-wallet consolidation.
type ConsolidationPreviewRequest struct {
	SourceWallets     []ConsolidationSourceWallet `json:"source_wallets" validate:"required,min=1,dive"`
	TargetWalletLabel string                      `json:"target_wallet_label" validate:"required,wallet_label"`
	TargetCurrencyID  string                      `json:"target_currency_id" validate:"required,currency_id"`
}

// ConsolidationPreviewResponse is the estimated outcome of a consolidation.
type ConsolidationPreviewResponse struct {
	TotalAmount   string  `json:"total_amount"`
	TotalAmountF  float64 `json:"total_amount_f"`
	TotalFee      string  `json:"total_fee"`
	TotalFeeF     float64 `json:"total_fee_f"`
	NetAmount     string  `json:"net_amount"`
	NetAmountF    float64 `json:"net_amount_f"`
	AddressCount  uint32  `json:"address_count"`
	EstimatedTime *uint32 `json:"estimated_time,omitempty"`
}
