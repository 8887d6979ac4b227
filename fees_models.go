package coinpayments

// FeeType is how a blockchain fee is computed.
type FeeType string

const (
	FeeTypeFixed      FeeType = "fixed"
	FeeTypePercentage FeeType = "percentage"
	FeeTypeDynamic    FeeType = "dynamic"
	FeeTypeGas        FeeType = "gas"
)

// FeePriority trades fee size against confirmation speed.
type FeePriority string

const (
	FeePrioritySlow     FeePriority = "slow"
	FeePriorityStandard FeePriority = "standard"
	FeePriorityFast     FeePriority = "fast"
	FeePriorityPriority FeePriority = "priority"
)

// FeeTransactionType is the operation a fee estimate covers.
type FeeTransactionType string

const (
	FeeTransactionSend          FeeTransactionType = "send"
	FeeTransactionWithdrawal    FeeTransactionType = "withdrawal"
	FeeTransactionConversion    FeeTransactionType = "conversion"
	FeeTransactionConsolidation FeeTransactionType = "consolidation"
	FeeTransactionContract      FeeTransactionType = "contract"
)

// CongestionLevel is the network load bucket.
type CongestionLevel string

const (
	CongestionLow      CongestionLevel = "low"
	CongestionMedium   CongestionLevel = "medium"
	CongestionHigh     CongestionLevel = "high"
	CongestionCritical CongestionLevel = "critical"
)

// BlockchainFee is one fee option.
type BlockchainFee struct {
	CurrencyID                string      `json:"currency_id"`
	FeeType                   FeeType     `json:"fee_type"`
	Amount                    string      `json:"amount"`
	AmountF                   float64     `json:"amount_f"`
	CurrencySymbol            string      `json:"currency_symbol"`
	EstimatedConfirmationTime *uint32     `json:"estimated_confirmation_time,omitempty"` // minutes
	PriorityLevel             FeePriority `json:"priority_level"`
}

// FeeCalculationRequest asks for fee estimates for one transaction shape.
type FeeCalculationRequest struct {
	CurrencyID      string             `json:"currency_id" validate:"required,currency_id"`
	TransactionType FeeTransactionType `json:"transaction_type" validate:"required"`
	Amount          *string            `json:"amount,omitempty" validate:"omitempty,amount"`
	Priority        *FeePriority       `json:"priority,omitempty"`
	RecipientCount  *uint32            `json:"recipient_count,omitempty"`
}

// NewFeeCalculationRequest builds a request with the standard priority and a
// single recipient.
func NewFeeCalculationRequest(currencyID string, txType FeeTransactionType) *FeeCalculationRequest {
	priority := FeePriorityStandard
	recipients := uint32(1)
	return &FeeCalculationRequest{
		CurrencyID:      currencyID,
		TransactionType: txType,
		Priority:        &priority,
		RecipientCount:  &recipients,
	}
}

// WithAmount sets the transaction amount.
func (r *FeeCalculationRequest) WithAmount(amount string) *FeeCalculationRequest {
	r.Amount = &amount
	return r
}

// WithPriority sets the fee priority.
func (r *FeeCalculationRequest) WithPriority(priority FeePriority) *FeeCalculationRequest {
	r.Priority = &priority
	return r
}

// WithRecipientCount sets the number of recipients.
func (r *FeeCalculationRequest) WithRecipientCount(count uint32) *FeeCalculationRequest {
	r.RecipientCount = &count
	return r
}

// FeeCalculationResponse carries the fee options and a recommendation.
type FeeCalculationResponse struct {
	CurrencyID      string             `json:"currency_id"`
	TransactionType FeeTransactionType `json:"transaction_type"`
	Fees            []BlockchainFee    `json:"fees"`
	RecommendedFee  BlockchainFee      `json:"recommended_fee"`
	NetworkStatus   NetworkStatus      `json:"network_status"`
}

// NetworkStatus is the congestion snapshot fee estimates are based on.
type NetworkStatus struct {
	CurrencyID              string          `json:"currency_id"`
	CongestionLevel         CongestionLevel `json:"congestion_level"`
	AverageConfirmationTime uint32          `json:"average_confirmation_time"` // minutes
	MempoolSize             *uint64         `json:"mempool_size,omitempty"`
	LastUpdated             string          `json:"last_updated"`
}

// GasFee is the gas breakdown for EVM chains.
type GasFee struct {
	CurrencyID    string  `json:"currency_id"`
	GasPrice      string  `json:"gas_price"`
	GasLimit      uint64  `json:"gas_limit"`
	BaseFee       *string `json:"base_fee,omitempty"`
	PriorityFee   *string `json:"priority_fee,omitempty"`
	MaxFee        *string `json:"max_fee,omitempty"`
	EstimatedCost string  `json:"estimated_cost"`
}
