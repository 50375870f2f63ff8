package numeric

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// PctChange computes the signed percentage change from old to current,
// (current - old) / old * 100, at the engine's precision. The second
// return value is false when either input is absent or old is zero, where
// the change is undefined.
func (e *Engine) PctChange(old, current *decimal.Decimal) (decimal.Decimal, bool) {
	if old == nil || current == nil {
		return decimal.Decimal{}, false
	}
	if old.IsZero() {
		return decimal.Decimal{}, false
	}
	return current.Sub(*old).DivRound(*old, e.precision).Mul(hundred), true
}
