package earnings

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Cents rounds a float amount to two decimal places.
func Cents(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// FormatMoney renders an amount as dollars and cents, e.g. "$35.71".
func FormatMoney(v float64) string {
	return "$" + decimal.NewFromFloat(v).StringFixed(2)
}

// FormatRate renders a small per-unit amount with four decimal places.
func FormatRate(v float64) string {
	return "$" + decimal.NewFromFloat(v).StringFixed(4)
}

func (r Rates) Hourly() float64 {
	if r.TotalSeconds == 0 {
		return 0
	}
	return r.DailySalary / (float64(r.TotalSeconds) / 3600)
}

func (r Rates) PerMinute() float64 {
	return r.MoneyPerSecond * 60
}

// TimePerDollar is how long it takes to earn one unit of currency,
// saturating at the largest representable duration.
func (r Rates) TimePerDollar() time.Duration {
	if r.SecondsPerDollar >= float64(math.MaxInt64)/float64(time.Second) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(r.SecondsPerDollar * float64(time.Second))
}

// FormatTimePerDollar renders whole minutes and seconds, e.g. "1m40s".
func FormatTimePerDollar(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf("%dm%02ds", total/60, total%60)
}
