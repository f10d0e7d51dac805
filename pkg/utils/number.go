package utils

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

func RoundWithTwoDecimalPlace(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}

	return d.Round(2)
}

// PercentChange retorna a variação percentual de previous para current.
// Sem base de comparação (previous zero) o resultado é zero
func PercentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}

	return RoundWithTwoDecimalPlace(current.Sub(previous).Div(previous).Mul(hundred))
}
