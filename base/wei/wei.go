// Package wei converts between human decimal ether strings and the integer
// base-unit representation the chain works with. No floating point is used
// anywhere on the money path.
package wei

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mysterymart/goapi/domain"
)

// Decimals is the base-unit scale of the native currency (1 ether = 10^18 wei).
const Decimals = 18

// ToBaseUnits parses a decimal ether string into wei. It fails with
// domain.ErrInvalidAmount when the string is empty, non-numeric, negative,
// or carries more than 18 fractional digits (which would lose precision).
func ToBaseUnits(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, domain.ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, domain.ErrInvalidAmount
	}
	if d.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	shifted := d.Shift(Decimals)
	if !shifted.IsInteger() {
		return nil, domain.ErrInvalidAmount
	}
	return shifted.BigInt(), nil
}

// ToPositiveBaseUnits is ToBaseUnits for call sites that require a strictly
// positive amount, e.g. listing prices and bids.
func ToPositiveBaseUnits(s string) (*big.Int, error) {
	v, err := ToBaseUnits(s)
	if err != nil {
		return nil, err
	}
	if v.Sign() == 0 {
		return nil, domain.ErrInvalidAmount
	}
	return v, nil
}

// ToDecimalString renders wei as the canonical trailing-zero-normalized
// decimal ether string. Presentational only; never feed it back into
// arithmetic.
func ToDecimalString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return decimal.NewFromBigInt(v, -Decimals).String()
}
