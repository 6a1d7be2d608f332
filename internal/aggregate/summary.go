package aggregate

import "github.com/carson-networks/hustle-tracker/internal/core"

// RecentItem is a recent transaction with its source's display name.
type RecentItem struct {
	core.Transaction
	SourceName string
}

// Summary is everything the dashboard shows for one caller.
type Summary struct {
	SourceID string
	Totals   Totals
	Monthly  []MonthBucket
	// MonthlyByYear keeps months of different years apart.
	MonthlyByYear []MonthBucket
	Categories    []CategoryAmount
	PerSource     []SourceTotals
	Recent        []RecentItem
}

// Summarize builds the dashboard views. Totals, series, categories and recent
// items honour the sourceID filter ("" for all); per-source totals always
// cover every source.
func Summarize(txs []core.Transaction, sources []core.Source, sourceID string) Summary {
	filtered := FilterBySource(txs, sourceID)

	recent := RecentTransactions(filtered, DefaultRecentCount)
	items := make([]RecentItem, len(recent))
	for i, tx := range recent {
		items[i] = RecentItem{Transaction: tx, SourceName: SourceName(sources, tx.SourceID)}
	}

	return Summary{
		SourceID:      sourceID,
		Totals:        TotalsByType(filtered),
		Monthly:       MonthlySeries(filtered),
		MonthlyByYear: MonthlySeriesByYear(filtered),
		Categories:    CategoryDistribution(filtered),
		PerSource:     PerSourceTotals(txs, sources),
		Recent:        items,
	}
}
