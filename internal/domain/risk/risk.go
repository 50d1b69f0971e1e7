package risk

import "github.com/shopspring/decimal"

type Level string

const (
	LevelGreen  Level = "GREEN"
	LevelYellow Level = "YELLOW"
	LevelRed    Level = "RED"
)

type Policy interface {
	Classify(balance decimal.Decimal) Level
}

// Relative grades a balance as a percentage of Reference. Both bounds are inclusive.
type Relative struct {
	Reference     decimal.Decimal
	GreenPercent  decimal.Decimal
	YellowPercent decimal.Decimal
}

func (r Relative) Classify(balance decimal.Decimal) Level {
	percent := balance.Div(r.Reference).Mul(hundred)
	switch {
	case percent.GreaterThanOrEqual(r.GreenPercent):
		return LevelGreen
	case percent.GreaterThanOrEqual(r.YellowPercent):
		return LevelYellow
	default:
		return LevelRed
	}
}

// Absolute grades a balance against fixed amounts. Both bounds are exclusive.
type Absolute struct {
	Green  decimal.Decimal
	Yellow decimal.Decimal
}

func (a Absolute) Classify(balance decimal.Decimal) Level {
	switch {
	case balance.GreaterThan(a.Green):
		return LevelGreen
	case balance.GreaterThan(a.Yellow):
		return LevelYellow
	default:
		return LevelRed
	}
}

var hundred = decimal.NewFromInt(100)

// ForProjection picks the relative policy when the reference balance is
// positive and the absolute one otherwise.
func ForProjection(reference decimal.Decimal) Policy {
	if reference.IsPositive() {
		return Relative{
			Reference:     reference,
			GreenPercent:  decimal.NewFromInt(30),
			YellowPercent: decimal.NewFromInt(5),
		}
	}
	return Absolute{
		Green:  decimal.NewFromInt(1000),
		Yellow: decimal.Zero,
	}
}

// ForSimulation is the fixed policy of the purchase simulator.
func ForSimulation() Policy {
	return Absolute{
		Green:  decimal.NewFromInt(10000),
		Yellow: decimal.Zero,
	}
}
