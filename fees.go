package coinpayments

import (
	"context"
	"fmt"
	"strconv"

	"github.com/coinpayments/coinpayments-go/utils"
)

// CalculateBlockchainFee returns fee estimates for a transaction. A nil
// request estimates a standard single-recipient send.
func (c *Client) CalculateBlockchainFee(ctx context.Context, currencyID string, request *FeeCalculationRequest) (*FeeCalculationResponse, error) {
	if !utils.IsValidCurrencyID(currencyID) {
		return nil, invalidParams("currency id %q", currencyID)
	}
	if request == nil {
		request = NewFeeCalculationRequest(currencyID, FeeTransactionSend)
	}
	if err := utils.Validator.Struct(request); err != nil {
		return nil, &InvalidParametersError{Reason: "fee calculation request", Err: err}
	}

	endpoint := fmt.Sprintf("v2/fees/blockchain/%s", currencyID)
	return postRequest[*FeeCalculationResponse](ctx, c, endpoint, request)
}

// GetGasFee returns gas fee information for an EVM currency. gasLimit 0 uses
// the server default.
func (c *Client) GetGasFee(ctx context.Context, currencyID string, gasLimit uint64) (*GasFee, error) {
	if !utils.IsValidCurrencyID(currencyID) {
		return nil, invalidParams("currency id %q", currencyID)
	}

	var params []utils.QueryParam
	if gasLimit > 0 {
		params = append(params, utils.QueryParam{Key: "gas_limit", Value: strconv.FormatUint(gasLimit, 10)})
	}

	endpoint := fmt.Sprintf("v2/fees/gas/%s", currencyID)
	return getRequest[*GasFee](ctx, c, endpoint, params)
}

// GetNetworkStatus returns the congestion snapshot for one currency.
func (c *Client) GetNetworkStatus(ctx context.Context, currencyID string) (*NetworkStatus, error) {
	if !utils.IsValidCurrencyID(currencyID) {
		return nil, invalidParams("currency id %q", currencyID)
	}
	endpoint := fmt.Sprintf("v2/fees/network-status/%s", currencyID)
	return getRequest[*NetworkStatus](ctx, c, endpoint, nil)
}

// GetRecommendedFee returns the fee option closest to the target
// confirmation time in minutes.
func (c *Client) GetRecommendedFee(ctx context.Context, currencyID string, targetConfirmationTime uint32) (*BlockchainFee, error) {
	request := NewFeeCalculationRequest(currencyID, FeeTransactionSend)
	resp, err := c.CalculateBlockchainFee(ctx, currencyID, request)
	if err != nil {
		return nil, err
	}

	var best *BlockchainFee
	bestDelta := int64(-1)
	for i := range resp.Fees {
		fee := &resp.Fees[i]
		estimated := int64(^uint32(0))
		if fee.EstimatedConfirmationTime != nil {
			estimated = int64(*fee.EstimatedConfirmationTime)
		}
		delta := estimated - int64(targetConfirmationTime)
		if delta < 0 {
			delta = -delta
		}
		if best == nil || delta < bestDelta {
			best = fee
			bestDelta = delta
		}
	}

	if best == nil {
		return nil, &APIError{Message: "no suitable fee found for target confirmation time"}
	}
	return best, nil
}

// CalculateTotalCost returns amount plus the fee.
func CalculateTotalCost(amount float64, fee *BlockchainFee) float64 {
	return amount + fee.AmountF
}

// CheapestFee returns the lowest-cost option, or nil for an empty list.
func CheapestFee(fees []BlockchainFee) *BlockchainFee {
	var cheapest *BlockchainFee
	for i := range fees {
		if cheapest == nil || fees[i].AmountF < cheapest.AmountF {
			cheapest = &fees[i]
		}
	}
	return cheapest
}

// FastestFee returns the option with the shortest estimated confirmation
// time, or nil for an empty list.
func FastestFee(fees []BlockchainFee) *BlockchainFee {
	estimated := func(f *BlockchainFee) uint32 {
		if f.EstimatedConfirmationTime == nil {
			return ^uint32(0)
		}
		return *f.EstimatedConfirmationTime
	}

	var fastest *BlockchainFee
	for i := range fees {
		if fastest == nil || estimated(&fees[i]) < estimated(fastest) {
			fastest = &fees[i]
		}
	}
	return fastest
}

// IsNetworkCongested reports whether the network load is high or critical.
func IsNetworkCongested(status *NetworkStatus) bool {
	return status.CongestionLevel == CongestionHigh || status.CongestionLevel == CongestionCritical
}

// EstimateMultiRecipientFee scales a base fee by recipient count. Percentage
// fees do not scale; dynamic and gas fees scale at roughly 30% per extra
// recipient.
func EstimateMultiRecipientFee(baseFee *BlockchainFee, recipientCount uint32) float64 {
	switch baseFee.FeeType {
	case FeeTypeFixed:
		return baseFee.AmountF * float64(recipientCount)
	case FeeTypePercentage:
		return baseFee.AmountF
	default:
		return baseFee.AmountF * (1.0 + float64(recipientCount-1)*0.3)
	}
}

// GasUnit is a gas price denomination.
type GasUnit string

const (
	GasUnitWei   GasUnit = "wei"
	GasUnitGwei  GasUnit = "gwei"
	GasUnitEther GasUnit = "ether"
)

// ConvertGasPrice converts a gwei gas price to another unit.
func ConvertGasPrice(gasPriceGwei float64, toUnit GasUnit) float64 {
	switch toUnit {
	case GasUnitWei:
		return gasPriceGwei * 1_000_000_000.0
	case GasUnitEther:
		return gasPriceGwei / 1_000_000_000.0
	default:
		return gasPriceGwei
	}
}
