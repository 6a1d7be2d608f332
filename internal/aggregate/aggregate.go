// Package aggregate computes the dashboard's derived views. Every function is
// pure: it reads its arguments and never mutates them.
package aggregate

import (
	"sort"
	"time"

	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/hustle-tracker/internal/core"
)

const DefaultRecentCount = 5

// Totals holds the income, expense and balance of a set of transactions.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

type MonthBucket struct {
	Month   string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

type CategoryAmount struct {
	Category core.Category
	Amount   decimal.Decimal
}

type SourceTotals struct {
	SourceID string
	Name     string
	Totals
}

// TotalsByType sums income and expense regardless of status.
func TotalsByType(txs []core.Transaction) Totals {
	t := Totals{}
	for _, tx := range txs {
		if tx.IsIncome() {
			t.Income = t.Income.Add(tx.Amount)
		} else {
			t.Expense = t.Expense.Add(tx.Amount)
		}
	}
	t.Balance = t.Income.Sub(t.Expense)
	return t
}

// MonthlySeries buckets by short English month name ("Jan"). Buckets have no
// year, so January 2023 and January 2024 share one bucket. Order is that of
// each month's first appearance. Transactions with unparseable dates are skipped.
func MonthlySeries(txs []core.Transaction) []MonthBucket {
	return bucketBy(txs, func(d time.Time) string {
		return d.Format("Jan")
	})
}

// MonthlySeriesByYear is MonthlySeries keyed by calendar month, labelled "2006-01".
func MonthlySeriesByYear(txs []core.Transaction) []MonthBucket {
	return bucketBy(txs, func(d time.Time) string {
		return now.With(d).BeginningOfMonth().Format("2006-01")
	})
}

func bucketBy(txs []core.Transaction, label func(time.Time) string) []MonthBucket {
	series := []MonthBucket{}
	index := map[string]int{}
	for _, tx := range txs {
		d := tx.OccurredOn()
		if d.IsZero() {
			continue
		}
		month := label(d)
		i, ok := index[month]
		if !ok {
			i = len(series)
			index[month] = i
			series = append(series, MonthBucket{Month: month})
		}
		if tx.IsIncome() {
			series[i].Income = series[i].Income.Add(tx.Amount)
		} else {
			series[i].Expense = series[i].Expense.Add(tx.Amount)
		}
	}
	return series
}

// CategoryDistribution sums amounts per category across both types, in order
// of first appearance.
func CategoryDistribution(txs []core.Transaction) []CategoryAmount {
	dist := []CategoryAmount{}
	index := map[core.Category]int{}
	for _, tx := range txs {
		i, ok := index[tx.Category]
		if !ok {
			i = len(dist)
			index[tx.Category] = i
			dist = append(dist, CategoryAmount{Category: tx.Category})
		}
		dist[i].Amount = dist[i].Amount.Add(tx.Amount)
	}
	return dist
}

// PerSourceTotals returns one entry per source, in source order.
func PerSourceTotals(txs []core.Transaction, sources []core.Source) []SourceTotals {
	out := make([]SourceTotals, 0, len(sources))
	for _, src := range sources {
		out = append(out, SourceTotals{
			SourceID: src.ID,
			Name:     src.Name,
			Totals:   TotalsByType(FilterBySource(txs, src.ID)),
		})
	}
	return out
}

// RecentTransactions returns the n most recent transactions by date. Equal
// dates keep their original order.
func RecentTransactions(txs []core.Transaction, n int) []core.Transaction {
	if n < 0 {
		n = 0
	}
	sorted := make([]core.Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OccurredOn().After(sorted[j].OccurredOn())
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// SourceName resolves id against sources, falling back to core.UnknownSourceName.
func SourceName(sources []core.Source, id string) string {
	for _, src := range sources {
		if src.ID == id {
			return src.Name
		}
	}
	return core.UnknownSourceName
}

// FilterBySource keeps transactions attributed to sourceID. Empty sourceID keeps all.
func FilterBySource(txs []core.Transaction, sourceID string) []core.Transaction {
	if sourceID == "" {
		out := make([]core.Transaction, len(txs))
		copy(out, txs)
		return out
	}
	out := make([]core.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.SourceID == sourceID {
			out = append(out, tx)
		}
	}
	return out
}
