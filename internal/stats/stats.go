// Package stats implements the performance statistics engine for account
// history series. Given the dated value/return rows the trading backend
// serves for an account, it derives cumulative and annualized performance,
// volatility, Sharpe and Sortino ratios, max drawdown, win/loss averages,
// and a year-by-month performance matrix.
//
// The engine is a pure computation: it never mutates its input, performs no
// I/O besides a warning log for unparseable dates, and is safe to call
// concurrently. Every ratio with a denominator carries an explicit zero
// guard, so the engine returns neutral zero values instead of NaN or panics
// for empty or degenerate series.
package stats

import (
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"github.com/andrealuzzi/tradingweb/internal/model"
)

// DefaultTradingDays is the annualization constant: the assumed number of
// trading days per year. 252 is the standard count for US markets.
const DefaultTradingDays = 252

// Result holds every statistic derived from one account history series.
// All fields are recomputed from scratch on each call; nothing is cached
// or incrementally updated.
type Result struct {
	CumulativePerformance float64 `json:"cumulativePerformance"`
	TotalReturn           float64 `json:"totalReturn"`
	AnnualizedPerformance float64 `json:"annualizedPerformance"`
	Mean                  float64 `json:"mean"`
	Variance              float64 `json:"variance"`
	Volatility            float64 `json:"volatility"`
	SharpeRatio           float64 `json:"sharpeRatio"`
	DownsideDeviation     float64 `json:"downsideDeviation"`
	SortinoRatio          float64 `json:"sortinoRatio"`
	MaxDrawdown           float64 `json:"maxDrawdown"`
	WinRatio              float64 `json:"winRatio"`
	PositiveDays          int     `json:"positiveDays"`
	TotalDays             int     `json:"totalDays"`
	AvgWin                float64 `json:"avgWin"`
	AvgLoss               float64 `json:"avgLoss"`

	// MonthlyMatrix maps year ("2024") to two-digit month ("01".."12") to
	// the summed performance for that month. YearlyCumulative maps year to
	// the sum of its monthly buckets, absent months counting as zero.
	MonthlyMatrix    map[string]map[string]float64 `json:"monthlyMatrix"`
	YearlyCumulative map[string]float64            `json:"yearlyCumulative"`
}

// Engine computes statistics with a configurable annualization constant.
// The zero value is not usable; construct with NewEngine.
type Engine struct {
	tradingDays float64
}

// NewEngine returns an Engine using the given trading-days-per-year
// constant. Values <= 0 fall back to DefaultTradingDays.
func NewEngine(tradingDays int) *Engine {
	if tradingDays <= 0 {
		tradingDays = DefaultTradingDays
	}
	return &Engine{tradingDays: float64(tradingDays)}
}

// Compute derives statistics from rows using DefaultTradingDays.
func Compute(rows []model.HistoryRow) Result {
	return NewEngine(DefaultTradingDays).Compute(rows)
}

// dated pairs a history row with its parsed observation date.
type dated struct {
	row  model.HistoryRow
	date time.Time
}

// Compute derives a Result from rows. The input may be unordered; the
// engine sorts a copy ascending by date (stable, so rows with equal dates
// keep their relative order). Rows whose performance is missing or not
// numeric are excluded from every performance-derived statistic; rows whose
// value is missing or not numeric are excluded from the drawdown scan.
func (e *Engine) Compute(rows []model.HistoryRow) Result {
	sorted := make([]dated, len(rows))
	for i, row := range rows {
		sorted[i] = dated{row: row, date: parseDate(row.Date)}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].date.Before(sorted[j].date)
	})

	performances := make([]float64, 0, len(sorted))
	for _, d := range sorted {
		if p := d.row.Performance.Float(); !math.IsNaN(p) && !math.IsInf(p, 0) {
			performances = append(performances, p)
		}
	}

	r := Result{
		MonthlyMatrix:    make(map[string]map[string]float64),
		YearlyCumulative: make(map[string]float64),
	}

	for _, p := range performances {
		r.CumulativePerformance += p
		if p >= 0 {
			r.PositiveDays++
		}
	}
	r.TotalDays = len(performances)
	if r.TotalDays > 0 {
		r.WinRatio = float64(r.PositiveDays) / float64(r.TotalDays)
	}

	compounded := 1.0
	for _, p := range performances {
		compounded *= 1 + p
	}
	r.TotalReturn = compounded - 1
	if r.TotalDays > 0 {
		r.AnnualizedPerformance = math.Pow(1+r.TotalReturn, e.tradingDays/float64(r.TotalDays)) - 1
	}

	r.Mean = mean(performances)
	for _, p := range performances {
		dev := p - r.Mean
		r.Variance += dev * dev
	}
	if r.TotalDays > 0 {
		r.Variance /= float64(r.TotalDays)
	}
	r.Volatility = math.Sqrt(r.Variance * e.tradingDays)
	if r.Volatility != 0 {
		r.SharpeRatio = r.AnnualizedPerformance / r.Volatility
	}

	var wins, losses []float64
	var sumSqNeg float64
	for _, p := range performances {
		switch {
		case p > 0:
			wins = append(wins, p)
		case p < 0:
			losses = append(losses, p)
			sumSqNeg += p * p
		}
	}
	if len(losses) > 0 {
		r.DownsideDeviation = math.Sqrt(sumSqNeg / float64(len(losses)))
	}
	if r.DownsideDeviation != 0 {
		// Numerator is the overall mean return, not a downside-adjusted one.
		r.SortinoRatio = r.Mean / r.DownsideDeviation * math.Sqrt(e.tradingDays)
	}
	r.AvgWin = mean(wins)
	r.AvgLoss = mean(losses)

	r.MaxDrawdown = maxDrawdown(sorted)

	for _, d := range sorted {
		p := d.row.Performance.Float()
		if math.IsNaN(p) || math.IsInf(p, 0) {
			continue
		}
		year := fmt.Sprintf("%04d", d.date.Year())
		month := fmt.Sprintf("%02d", int(d.date.Month()))
		if r.MonthlyMatrix[year] == nil {
			r.MonthlyMatrix[year] = make(map[string]float64)
		}
		r.MonthlyMatrix[year][month] += p
	}
	for year, months := range r.MonthlyMatrix {
		var total float64
		for m := 1; m <= 12; m++ {
			total += months[fmt.Sprintf("%02d", m)]
		}
		r.YearlyCumulative[year] = total
	}

	return r
}

// maxDrawdown scans the value series in ascending-date order, tracking the
// running peak and the largest fractional decline from it. Rows without a
// usable value are skipped.
func maxDrawdown(sorted []dated) float64 {
	var peak, worst float64
	first := true
	for _, d := range sorted {
		if !d.row.Value.Valid {
			continue
		}
		v := d.row.Value.Value
		if first {
			peak = v
			first = false
		}
		if v > peak {
			peak = v
		}
		denom := peak
		if denom == 0 {
			denom = 1
		}
		if dd := (peak - v) / denom; dd > worst {
			worst = dd
		}
	}
	return worst
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// dateLayouts are tried in order when parsing a row date. The backend
// normally serves plain dates but some feeds include a time component.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// parseDate parses a row date. Unparseable dates sort as the Unix epoch so
// a single bad row cannot scramble the whole series; the condition is
// logged because it usually means the backend feed changed shape.
func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	log.Printf("stats: unparseable history date %q, sorting as epoch", s)
	return time.Unix(0, 0).UTC()
}
