package market

import "time"

// PricePoint is one sample of a coin's USD price.
type PricePoint struct {
	Price float64   `json:"price"`
	Time  time.Time `json:"time"`
}

// ValueHistory is a price series sorted ascending by time. It is replaced
// wholesale on every fetch cycle, never mutated in place.
type ValueHistory []PricePoint

// Earliest returns the first point of the series.
func (h ValueHistory) Earliest() (PricePoint, bool) {
	if len(h) == 0 {
		return PricePoint{}, false
	}
	return h[0], true
}

// Latest returns the last point of the series.
func (h ValueHistory) Latest() (PricePoint, bool) {
	if len(h) == 0 {
		return PricePoint{}, false
	}
	return h[len(h)-1], true
}

type Coin struct {
	Symbol string
	Name   string
}

var Coins = []Coin{
	{Symbol: "BTC", Name: "Bitcoin"},
	{Symbol: "ETH", Name: "Ethereum"},
	{Symbol: "LTC", Name: "Litecoin"},
	{Symbol: "BCH", Name: "Bitcoin Cash"},
}

// Period selects the historical window requested from the API.
type Period string

const (
	PeriodHour  Period = "hour"
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
	PeriodAll   Period = "all"
)

var Periods = []Period{
	PeriodHour,
	PeriodDay,
	PeriodWeek,
	PeriodMonth,
	PeriodYear,
	PeriodAll,
}

var periodLabels = map[Period]string{
	PeriodHour:  "1H",
	PeriodDay:   "1D",
	PeriodWeek:  "1W",
	PeriodMonth: "1M",
	PeriodYear:  "1Y",
	PeriodAll:   "ALL",
}

// Label returns the short display label for the period.
func (p Period) Label() string {
	if l, ok := periodLabels[p]; ok {
		return l
	}
	return string(p)
}

// Selection is the user's current (coin, period) pair. Changing it
// invalidates any previously loaded history.
type Selection struct {
	CoinIndex int
	Period    Period
}

// Coin returns the selected coin.
func (s Selection) Coin() Coin {
	return Coins[s.CoinIndex]
}

// NextCoin cycles to the next coin, wrapping around.
func (s Selection) NextCoin() Selection {
	s.CoinIndex = (s.CoinIndex + 1) % len(Coins)
	return s
}

// WithPeriod returns the selection with the period replaced.
func (s Selection) WithPeriod(p Period) Selection {
	s.Period = p
	return s
}
