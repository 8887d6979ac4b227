package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator is shared by the request DTO validation; validator instances are
// safe for concurrent use.
var Validator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		return IsValidAmount(fl.Field().String())
	})
	_ = v.RegisterValidation("currency_id", func(fl validator.FieldLevel) bool {
		return IsValidCurrencyID(fl.Field().String())
	})
	_ = v.RegisterValidation("wallet_label", func(fl validator.FieldLevel) bool {
		return IsValidWalletLabel(fl.Field().String())
	})
	return v
}

// IsValidEmail performs the same cheap sanity check the API applies before
// dispatch; full validation is the server's job.
func IsValidEmail(email string) bool {
	return len(email) > 5 && strings.Contains(email, "@") && strings.Contains(email, ".")
}

// IsValidCurrencyID reports whether id looks like a currency id, either a
// plain numeric id ("4") or a token id ("4:0xcontract").
func IsValidCurrencyID(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		if !isAlphanumeric(r) && r != ':' {
			return false
		}
	}
	return true
}

// IsValidWalletLabel reports whether label is usable as a wallet label:
// non-empty, at most 100 chars, alphanumeric plus '-' and '_'.
func IsValidWalletLabel(label string) bool {
	if label == "" || len(label) > 100 {
		return false
	}
	for _, r := range label {
		if !isAlphanumeric(r) && r != '-' && r != '_' {
			return false
		}
	}
	return true
}

// IsValidBitcoinAddress is a format check only (prefix and length), not a
// checksum validation.
func IsValidBitcoinAddress(address string) bool {
	switch {
	case strings.HasPrefix(address, "bc1"):
		return len(address) >= 42 && len(address) <= 62
	case strings.HasPrefix(address, "1"), strings.HasPrefix(address, "3"):
		return len(address) >= 26 && len(address) <= 35
	default:
		return false
	}
}

// IsValidEthereumAddress checks the 0x-prefixed 40-hex-char form.
func IsValidEthereumAddress(address string) bool {
	if !strings.HasPrefix(address, "0x") || len(address) != 42 {
		return false
	}
	for _, r := range address[2:] {
		if !isHexDigit(r) {
			return false
		}
	}
	return true
}

// IsValidURL accepts http and https URLs only.
func IsValidURL(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
