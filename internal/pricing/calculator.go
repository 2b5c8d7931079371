package pricing

import (
	"github.com/shopspring/decimal"
)

// ComputeTotal returns quantity*unitPrice rounded to the cent. The product is
// taken in decimal, so 3 x 0.075 is 0.225 and rounds to 0.23.
// Inputs must be finite; callers reject bad keystrokes before getting here.
func ComputeTotal(quantity, unitPrice float64) float64 {
	f, _ := decimal.NewFromFloat(quantity).Mul(decimal.NewFromFloat(unitPrice)).Round(2).Float64()
	return f
}

// Round2 rounds half away from zero at two decimals. The value is first taken at its
// shortest decimal form, so 1.005 rounds to 1.01 and not to 1.00.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Sum adds amounts at cent precision.
func Sum(amounts ...float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	f, _ := total.Round(2).Float64()
	return f
}

// Percent reports part/whole as a whole-number percentage capped at 100.
func Percent(part, whole float64) int {
	if whole <= 0 {
		return 0
	}
	p := decimal.NewFromFloat(part).Div(decimal.NewFromFloat(whole)).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return int(p)
}
