package panels

import (
	"strings"

	"github.com/Rhymond/go-money"

	"github.com/zappabad/stockgame/internal/market"
)

// FormatWon renders an amount as won (zero-decimal, thousands-grouped).
func FormatWon(amount int64) string {
	return money.New(amount, money.KRW).Display()
}

// FormatDelta renders a signed price change, empty when flat.
func FormatDelta(delta int64) string {
	if delta == 0 {
		return ""
	}
	if delta > 0 {
		return "+" + FormatWon(delta)
	}
	return FormatWon(delta)
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders a price series as block characters, scaled to the
// series' own min/max, showing the most recent points that fit.
func Sparkline[T int64 | market.Price](series []T, width int) string {
	if len(series) == 0 || width <= 0 {
		return ""
	}

	if len(series) > width {
		series = series[len(series)-width:]
	}

	lo, hi := series[0], series[0]
	for _, v := range series {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	var b strings.Builder
	span := int64(hi - lo)
	for _, v := range series {
		idx := 0
		if span > 0 {
			idx = int(int64(v-lo) * int64(len(sparkRunes)-1) / span)
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}
