package pkg

import "github.com/shopspring/decimal"

// Round2 rounds an amount to cents. Used only at output boundaries.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func SumDecimals(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
