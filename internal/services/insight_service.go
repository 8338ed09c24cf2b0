package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/analytics"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/models"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidAlertID = errors.New("invalid alert ID")
)

const (
	// Caps on noisy alert classes, largest deviations kept first.
	maxUnusualAlerts   = 3
	maxHighDailyAlerts = 2

	// A day is a high-spending day when it exceeds both the relative
	// multiple of the mean and the absolute floor.
	highDailyMeanMultiple = 2.5
	highDailySevereMult   = 4.0
	highDailyAbsoluteMin  = 2000.0
)

// insightService composes spending alerts from category comparison,
// outlier detection, and daily spending analysis.
type insightService struct {
	transactionRepo   repositories.TransactionRepositoryInterface
	userRepo          repositories.UserRepositoryInterface
	enricher          AlertEnricherInterface
	metrics           MetricsRecorderInterface
	logger            *slog.Logger
	historyDays       int
	historySampleSize int
	now               func() time.Time
}

// NewInsightService creates a new insight service
func NewInsightService(
	transactionRepo repositories.TransactionRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	enricher AlertEnricherInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
	historyDays int,
	historySampleSize int,
) InsightServiceInterface {
	return &insightService{
		transactionRepo:   transactionRepo,
		userRepo:          userRepo,
		enricher:          enricher,
		metrics:           metrics,
		logger:            logger,
		historyDays:       historyDays,
		historySampleSize: historySampleSize,
		now:               time.Now,
	}
}

// GetSpendingAlerts recomputes the user's alerts from scratch. The three
// inputs (current month, previous month, history window) are fetched
// concurrently; the alert classes are then composed in a stable order so
// identical snapshots yield identical reports.
func (s *insightService) GetSpendingAlerts(ctx context.Context, userID uuid.UUID) (*models.AlertReport, error) {
	start := s.now()
	defer func() {
		s.metrics.RecordProcessingTime("alert.computation", time.Since(start))
	}()

	if _, err := s.userRepo.GetByID(userID); err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	now := s.now()
	currentMonthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	previousMonthStart := currentMonthStart.AddDate(0, -1, 0)
	nextMonthStart := currentMonthStart.AddDate(0, 1, 0)
	historyStart := now.AddDate(0, 0, -s.historyDays)

	var current, previous, historical []models.Transaction

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.transactionRepo.GetByUserAndDateRange(userID, currentMonthStart, nextMonthStart)
		return err
	})
	g.Go(func() error {
		var err error
		previous, err = s.transactionRepo.GetByUserAndDateRange(userID, previousMonthStart, currentMonthStart)
		return err
	})
	g.Go(func() error {
		var err error
		historical, err = s.transactionRepo.GetRecentExpenses(userID, historyStart, s.historySampleSize)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load alert inputs: %w", err)
	}

	currentExpenses := filterExpenses(current)
	previousExpenses := filterExpenses(previous)

	alerts := s.categoryAlerts(currentExpenses, previousExpenses)
	// gctx dies once Wait returns; enrichment calls must outlive the
	// fetch group, so they get the caller's context
	alerts = append(alerts, s.unusualTransactionAlerts(ctx, currentExpenses, historical)...)
	alerts = append(alerts, s.highSpendingDayAlerts(currentExpenses)...)

	for _, alert := range alerts {
		s.metrics.IncrementCounter("alert.generated", map[string]string{
			"type":     alert.Type,
			"severity": alert.Severity,
		})
	}

	return &models.AlertReport{
		UserID:      userID,
		Alerts:      alerts,
		BucketKey:   analytics.BucketKey(now, analytics.GranularityMonth),
		GeneratedAt: now,
	}, nil
}

// categoryAlerts turns month-over-month category movement into alerts.
// Only categories with spend in the current month can raise an alert.
func (s *insightService) categoryAlerts(current, previous []models.Transaction) []models.Alert {
	deltas := analytics.CompareCategories(
		analytics.SumByCategory(current),
		analytics.SumByCategory(previous),
	)

	now := s.now()
	var alerts []models.Alert
	for _, delta := range deltas {
		if !delta.Current.IsPositive() {
			continue
		}

		switch delta.Classification {
		case analytics.ClassIncrease:
			severity := models.SeverityMedium
			if delta.DeltaPercent > analytics.DeltaHighThreshold {
				severity = models.SeverityHigh
			}
			alerts = append(alerts, models.Alert{
				ID:       models.AlertID(models.AlertTypeSpendingIncrease, delta.Category),
				Type:     models.AlertTypeSpendingIncrease,
				Category: delta.Category,
				Message: fmt.Sprintf("You're spending %.0f%% more on %s this month (₹%s vs ₹%s)",
					delta.DeltaPercent, delta.Category,
					delta.Current.StringFixed(2), delta.Previous.StringFixed(2)),
				Severity:  severity,
				Timestamp: now,
			})
		case analytics.ClassDecrease:
			alerts = append(alerts, models.Alert{
				ID:       models.AlertID(models.AlertTypeSpendingDecrease, delta.Category),
				Type:     models.AlertTypeSpendingDecrease,
				Category: delta.Category,
				Message: fmt.Sprintf("Great! You're spending %.0f%% less on %s this month",
					math.Abs(delta.DeltaPercent), delta.Category),
				Severity:  models.SeverityLow,
				Timestamp: now,
			})
		case analytics.ClassNewCategory:
			alerts = append(alerts, models.Alert{
				ID:       models.AlertID(models.AlertTypeNewCategory, delta.Category),
				Type:     models.AlertTypeNewCategory,
				Category: delta.Category,
				Message: fmt.Sprintf("New spending detected in %s: ₹%s this month",
					delta.Category, delta.Current.StringFixed(2)),
				Severity:  models.SeverityMedium,
				Timestamp: now,
			})
		}
	}

	return alerts
}

// unusualTransactionAlerts flags current-month expenses above the Tukey
// fence derived from the history window. Messages are enriched by the
// generative model where possible; a templated message is the fallback.
func (s *insightService) unusualTransactionAlerts(ctx context.Context, current, historical []models.Transaction) []models.Alert {
	if len(current) == 0 {
		return nil
	}

	amounts := make([]float64, 0, len(historical))
	for i := range historical {
		amounts = append(amounts, historical[i].Amount.InexactFloat64())
	}

	env, ok := analytics.ComputeEnvelope(amounts)
	if !ok {
		return nil
	}

	outliers := analytics.DetectOutliers(current, env)
	if len(outliers) > maxUnusualAlerts {
		outliers = outliers[:maxUnusualAlerts]
	}

	now := s.now()
	alerts := make([]models.Alert, 0, len(outliers))
	for _, outlier := range outliers {
		txn := outlier.Transaction
		amount := txn.Amount.InexactFloat64()

		message := fmt.Sprintf("Unusual transaction detected: ₹%s for %s",
			txn.Amount.StringFixed(2), txn.Category)

		enriched, err := s.enricher.DescribeUnusualTransaction(ctx, &txn, UnusualContext{
			Q1:         env.Q1,
			Q3:         env.Q3,
			AboveRange: amount - env.Q3,
		})
		if err != nil {
			s.logger.Warn("alert enrichment failed, using fallback message",
				"transaction_id", txn.ID, "error", err)
		} else if enriched != "" {
			message = enriched
		}

		severity := models.SeverityMedium
		if amount > env.UpperBound*2 {
			severity = models.SeverityHigh
		}

		txnID := txn.ID
		alerts = append(alerts, models.Alert{
			ID:            models.AlertID(models.AlertTypeUnusualTransaction, txn.ID.String()),
			Type:          models.AlertTypeUnusualTransaction,
			Category:      txn.Category,
			TransactionID: &txnID,
			Message:       message,
			Severity:      severity,
			Timestamp:     now,
			Amount:        amount,
		})
	}

	return alerts
}

// highSpendingDayAlerts flags days whose total spend is far above the
// month's daily mean, largest days first.
func (s *insightService) highSpendingDayAlerts(current []models.Transaction) []models.Alert {
	daily := analytics.DailyTotals(current)
	if len(daily) == 0 {
		return nil
	}

	sum := 0.0
	for _, total := range daily {
		sum += total.InexactFloat64()
	}
	mean := sum / float64(len(daily))

	type dayTotal struct {
		day    string
		amount float64
	}
	var highDays []dayTotal
	for day, total := range daily {
		amount := total.InexactFloat64()
		if amount > mean*highDailyMeanMultiple && amount > highDailyAbsoluteMin {
			highDays = append(highDays, dayTotal{day: day, amount: amount})
		}
	}

	sort.Slice(highDays, func(i, j int) bool {
		if highDays[i].amount != highDays[j].amount {
			return highDays[i].amount > highDays[j].amount
		}
		return highDays[i].day < highDays[j].day
	})
	if len(highDays) > maxHighDailyAlerts {
		highDays = highDays[:maxHighDailyAlerts]
	}

	now := s.now()
	alerts := make([]models.Alert, 0, len(highDays))
	for _, d := range highDays {
		severity := models.SeverityMedium
		if d.amount > mean*highDailySevereMult {
			severity = models.SeverityHigh
		}

		alerts = append(alerts, models.Alert{
			ID:        models.AlertID(models.AlertTypeHighDailySpending, d.day),
			Type:      models.AlertTypeHighDailySpending,
			Message:   fmt.Sprintf("High spending day: ₹%.2f on %s", d.amount, d.day),
			Severity:  severity,
			Timestamp: now,
			Amount:    d.amount,
			Date:      d.day,
		})
	}

	return alerts
}

// MarkAlertAsRead acknowledges an alert. Alerts are recomputed views, so
// acknowledgement only validates the ID shape; persistence of read state
// is the client's concern.
func (s *insightService) MarkAlertAsRead(ctx context.Context, userID uuid.UUID, alertID string) error {
	if alertID == "" {
		return ErrInvalidAlertID
	}

	alertType, _, found := strings.Cut(alertID, ":")
	if !found {
		return ErrInvalidAlertID
	}

	switch alertType {
	case models.AlertTypeSpendingIncrease, models.AlertTypeSpendingDecrease,
		models.AlertTypeNewCategory, models.AlertTypeUnusualTransaction,
		models.AlertTypeHighDailySpending:
	default:
		return ErrInvalidAlertID
	}

	s.logger.Info("alert acknowledged", "user_id", userID, "alert_id", alertID)
	return nil
}

func filterExpenses(transactions []models.Transaction) []models.Transaction {
	expenses := make([]models.Transaction, 0, len(transactions))
	for i := range transactions {
		if transactions[i].IsExpense() {
			expenses = append(expenses, transactions[i])
		}
	}
	return expenses
}
