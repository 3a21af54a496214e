// Package demo serves the static market series and news timeline used by the
// dashboard. Nothing here is persisted.
package demo

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// MarketPoint is one daily OHLCV bar of the demo index.
type MarketPoint struct {
	Date   string          `json:"date"`
	Open   decimal.Decimal `json:"open"`
	Close  decimal.Decimal `json:"close"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Volume decimal.Decimal `json:"volume"`
}

// MarshalJSON writes the prices as JSON numbers rather than decimal strings.
func (p MarketPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date   string      `json:"date"`
		Open   json.Number `json:"open"`
		Close  json.Number `json:"close"`
		High   json.Number `json:"high"`
		Low    json.Number `json:"low"`
		Volume json.Number `json:"volume"`
	}{
		Date:   p.Date,
		Open:   json.Number(p.Open.String()),
		Close:  json.Number(p.Close.String()),
		High:   json.Number(p.High.String()),
		Low:    json.Number(p.Low.String()),
		Volume: json.Number(p.Volume.String()),
	})
}

// PriceChange returns the intraday move (close-open)/open in percent, rounded to 2 places.
func (p MarketPoint) PriceChange() decimal.Decimal {
	if p.Open.IsZero() {
		return decimal.Zero
	}
	return p.Close.Sub(p.Open).Div(p.Open).Mul(decimal.NewFromInt(100)).Round(2)
}

func bar(date string, open, close, high, low, volume int64) MarketPoint {
	return MarketPoint{
		Date:   date,
		Open:   decimal.NewFromInt(open),
		Close:  decimal.NewFromInt(close),
		High:   decimal.NewFromInt(high),
		Low:    decimal.NewFromInt(low),
		Volume: decimal.NewFromInt(volume),
	}
}

var marketData = []MarketPoint{
	bar("2024-05-07", 3250, 3265, 3280, 3240, 150),
	bar("2024-05-08", 3265, 3270, 3285, 3250, 140),
	bar("2024-05-09", 3270, 3260, 3290, 3255, 130),
	bar("2024-05-10", 3260, 3255, 3275, 3245, 120),
	bar("2024-05-11", 3280, 3200, 3285, 3180, 450),
	bar("2024-05-12", 3200, 3210, 3220, 3190, 160),
	bar("2024-05-13", 3210, 3220, 3230, 3200, 170),
	bar("2024-05-14", 3220, 3230, 3240, 3210, 180),
	bar("2024-05-15", 3230, 3240, 3250, 3220, 190),
	bar("2024-05-16", 3220, 3300, 3320, 3205, 380),
	bar("2024-05-17", 3300, 3310, 3320, 3290, 200),
	bar("2024-05-18", 3310, 3320, 3330, 3300, 210),
	bar("2024-05-19", 3320, 3330, 3340, 3310, 220),
	bar("2024-05-20", 3330, 3340, 3350, 3320, 230),
	bar("2024-05-21", 3350, 3400, 3420, 3340, 420),
	bar("2024-05-22", 3400, 3410, 3420, 3390, 240),
	bar("2024-05-23", 3410, 3420, 3430, 3400, 250),
	bar("2024-05-24", 3420, 3330, 3425, 3300, 600),
	bar("2024-05-25", 3330, 3320, 3340, 3310, 260),
	bar("2024-05-26", 3320, 3380, 3400, 3300, 520),
	bar("2024-05-27", 3380, 3400, 3410, 3370, 270),
	bar("2024-05-28", 3400, 3450, 3460, 3390, 400),
	bar("2024-05-29", 3450, 3460, 3470, 3440, 280),
	bar("2024-05-30", 3460, 3420, 3465, 3400, 480),
	bar("2024-05-31", 3420, 3430, 3440, 3410, 290),
	bar("2024-06-01", 3430, 3440, 3450, 3420, 300),
	bar("2024-06-02", 3430, 3500, 3520, 3420, 650),
	bar("2024-06-03", 3500, 3510, 3520, 3490, 310),
	bar("2024-06-04", 3510, 3520, 3530, 3500, 320),
	bar("2024-06-05", 3520, 3600, 3620, 3510, 800),
}

// MarketData returns a copy of the full demo series in date order.
func MarketData() []MarketPoint {
	out := make([]MarketPoint, len(marketData))
	copy(out, marketData)
	return out
}

// MarketDataByDate returns the points whose date equals date (YYYY-MM-DD).
func MarketDataByDate(date string) []MarketPoint {
	var out []MarketPoint
	for _, p := range marketData {
		if p.Date == date {
			out = append(out, p)
		}
	}
	return out
}
