// Package analytics holds the pure computation core of the insight engine:
// temporal aggregation, outlier detection, category comparison, trend and
// savings calculation, and budget variance projection. Every function in
// this package is side-effect free and recomputes from scratch on each call.
package analytics

import (
	"sort"
	"time"

	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/models"

	"github.com/shopspring/decimal"
)

// Granularity selects the bucket key resolution for temporal aggregation.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// TypeFilter restricts aggregation to one transaction type.
type TypeFilter string

const (
	FilterNone    TypeFilter = ""
	FilterIncome  TypeFilter = models.TransactionTypeIncome
	FilterExpense TypeFilter = models.TransactionTypeExpense
)

// Bucket is the aggregated total for one time period, broken down by
// category. Buckets are derived, never persisted; Total always equals the
// sum of the ByCategory values.
type Bucket struct {
	Key        string                     `json:"key"`
	Total      decimal.Decimal            `json:"total"`
	ByCategory map[string]decimal.Decimal `json:"by_category"`
}

// BucketKey truncates a timestamp to the given granularity.
func BucketKey(t time.Time, g Granularity) string {
	switch g {
	case GranularityDay:
		return t.Format("2006-01-02")
	case GranularityYear:
		return t.Format("2006")
	default:
		return t.Format("2006-01")
	}
}

// BucketByPeriod aggregates transactions into per-period buckets in a
// single linear pass. The caller is expected to have already restricted
// the slice to the desired window; filter restricts by transaction type.
func BucketByPeriod(transactions []models.Transaction, g Granularity, filter TypeFilter) map[string]*Bucket {
	buckets := make(map[string]*Bucket)

	for i := range transactions {
		txn := &transactions[i]

		if filter != FilterNone && txn.Type != string(filter) {
			continue
		}

		key := BucketKey(txn.Date, g)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &Bucket{
				Key:        key,
				Total:      decimal.Zero,
				ByCategory: make(map[string]decimal.Decimal),
			}
			buckets[key] = bucket
		}

		bucket.Total = bucket.Total.Add(txn.Amount)
		bucket.ByCategory[txn.Category] = bucket.ByCategory[txn.Category].Add(txn.Amount)
	}

	return buckets
}

// SortedKeys returns the bucket keys in chronological order. Bucket keys
// are zero-padded date prefixes, so lexicographic order is chronological.
func SortedKeys(buckets map[string]*Bucket) []string {
	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// SumByCategory groups transaction amounts by category.
func SumByCategory(transactions []models.Transaction) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for i := range transactions {
		txn := &transactions[i]
		totals[txn.Category] = totals[txn.Category].Add(txn.Amount)
	}
	return totals
}

// DailyTotals sums transaction amounts per calendar day.
func DailyTotals(transactions []models.Transaction) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for i := range transactions {
		txn := &transactions[i]
		key := BucketKey(txn.Date, GranularityDay)
		totals[key] = totals[key].Add(txn.Amount)
	}
	return totals
}

// MonthFlow is the income/expense pair for one calendar month.
type MonthFlow struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// MonthlyFlows splits transactions into per-month income and expense
// totals, returned in chronological order. This is the table handed to
// the forecast oracle and the input to savings-rate analysis.
func MonthlyFlows(transactions []models.Transaction) []MonthFlow {
	byMonth := make(map[string]*MonthFlow)

	for i := range transactions {
		txn := &transactions[i]
		key := BucketKey(txn.Date, GranularityMonth)

		flow, ok := byMonth[key]
		if !ok {
			flow = &MonthFlow{Month: key, Income: decimal.Zero, Expense: decimal.Zero}
			byMonth[key] = flow
		}

		if txn.Type == models.TransactionTypeIncome {
			flow.Income = flow.Income.Add(txn.Amount)
		} else {
			flow.Expense = flow.Expense.Add(txn.Amount)
		}
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	flows := make([]MonthFlow, 0, len(months))
	for _, month := range months {
		flows = append(flows, *byMonth[month])
	}
	return flows
}
