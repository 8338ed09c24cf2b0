package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/config"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/dto"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/models"

	"google.golang.org/genai"
)

var (
	ErrOracleUnavailable   = errors.New("insight oracle unavailable")
	ErrOracleMalformed     = errors.New("insight oracle returned malformed output")
	ErrOracleMissingFields = errors.New("insight oracle output missing required fields")
	ErrOracleTimeout       = errors.New("insight oracle timed out")
)

// GeminiOracle backs the three generative ports (transaction parsing,
// cash-flow forecasting, alert enrichment) with the Gemini API. All calls
// go through a shared circuit breaker and a concurrency semaphore.
type GeminiOracle struct {
	client         *genai.Client
	model          string
	timeout        time.Duration
	circuitBreaker CircuitBreakerInterface
	metrics        MetricsRecorderInterface
	semaphore      chan struct{}
	logger         *slog.Logger
}

// NewGeminiOracle creates the Gemini-backed oracle client
func NewGeminiOracle(ctx context.Context, cfg *config.GeminiConfig, circuitBreaker CircuitBreakerInterface, metrics MetricsRecorderInterface, logger *slog.Logger) (*GeminiOracle, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	maxConcurrent := cfg.MaxConcurrentCalls
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &GeminiOracle{
		client:         client,
		model:          cfg.Model,
		timeout:        cfg.Timeout,
		circuitBreaker: circuitBreaker,
		metrics:        metrics,
		semaphore:      make(chan struct{}, maxConcurrent),
		logger:         logger,
	}, nil
}

// generate runs one guarded model call and returns the raw response text
func (g *GeminiOracle) generate(ctx context.Context, operation, prompt string) (string, error) {
	if g.circuitBreaker.IsOpen() {
		g.metrics.IncrementCounter("oracle.call", map[string]string{"operation": operation, "status": "circuit_open"})
		return "", ErrOracleUnavailable
	}

	select {
	case g.semaphore <- struct{}{}:
		defer func() { <-g.semaphore }()
	case <-ctx.Done():
		return "", fmt.Errorf("waiting for oracle slot: %w", ctx.Err())
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(callCtx, g.model, genai.Text(prompt), nil)
	g.metrics.RecordProcessingTime("oracle."+operation, time.Since(start))

	if err != nil {
		g.circuitBreaker.RecordFailure()
		g.metrics.IncrementCounter("oracle.call", map[string]string{"operation": operation, "status": "error"})
		g.logger.Error("oracle call failed", "operation", operation, "error", err)

		if errors.Is(err, context.DeadlineExceeded) || callCtx.Err() == context.DeadlineExceeded {
			return "", ErrOracleTimeout
		}
		return "", fmt.Errorf("%w: %v", ErrOracleUnavailable, err)
	}

	text := resp.Text()
	if text == "" {
		g.circuitBreaker.RecordFailure()
		g.metrics.IncrementCounter("oracle.call", map[string]string{"operation": operation, "status": "empty"})
		return "", ErrOracleMalformed
	}

	g.circuitBreaker.RecordSuccess()
	g.metrics.IncrementCounter("oracle.call", map[string]string{"operation": operation, "status": "success"})
	return text, nil
}

// parsedTransactionPayload mirrors the JSON shape the parse prompt asks for
type parsedTransactionPayload struct {
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	UpiRef      string  `json:"upiRef"`
	BankAccount string  `json:"bankAccount"`
}

// ParseTransactionText extracts structured transaction fields from a raw
// UPI/bank message
func (g *GeminiOracle) ParseTransactionText(ctx context.Context, text string) (*dto.ParsedTransaction, error) {
	prompt := fmt.Sprintf(`Parse this UPI/bank transaction message and extract the following information in JSON format:

Text: %q

Extract:
{
  "amount": number (without currency symbol),
  "type": "INCOME" or "EXPENSE",
  "description": "merchant name or transaction description",
  "category": "appropriate category like food, transport, shopping, etc.",
  "date": "YYYY-MM-DD format",
  "upiRef": "UPI reference number if available",
  "bankAccount": "last 4 digits of account if mentioned"
}

Common patterns to look for:
- "Rs.500 debited" = EXPENSE
- "Rs.500 credited" = INCOME
- "to VPA merchant@paytm" = merchant is "Paytm"
- "UPI Ref: 123456" = reference number
- Dates like "12-Sep-25" should be converted to "2025-09-12"

If any information is unclear, make reasonable assumptions. Return only valid JSON.`, text)

	raw, err := g.generate(ctx, "parse", prompt)
	if err != nil {
		return nil, err
	}

	var payload parsedTransactionPayload
	if err := json.Unmarshal([]byte(cleanModelJSON(raw)), &payload); err != nil {
		g.logger.Warn("oracle parse output is not valid JSON", "error", err)
		return nil, ErrOracleMalformed
	}

	if payload.Amount <= 0 || payload.Type == "" || payload.Description == "" {
		return nil, ErrOracleMissingFields
	}
	if !models.IsValidTransactionType(payload.Type) {
		return nil, ErrOracleMissingFields
	}

	date, err := time.Parse("2006-01-02", payload.Date)
	if err != nil {
		// An unparseable date is recoverable; the import falls back to now.
		date = time.Now()
	}

	return &dto.ParsedTransaction{
		Amount:       payload.Amount,
		Type:         payload.Type,
		Description:  payload.Description,
		Category:     payload.Category,
		Date:         date,
		UpiReference: payload.UpiRef,
		BankAccount:  payload.BankAccount,
		Source:       models.TransactionSourceUPIImport,
	}, nil
}

// PredictCashFlow asks the model for a three month cash flow prediction
// from the historical monthly table
func (g *GeminiOracle) PredictCashFlow(ctx context.Context, historical map[string]models.MonthlyTotals) (*OraclePrediction, error) {
	months := make([]string, 0, len(historical))
	for month := range historical {
		months = append(months, month)
	}
	sort.Strings(months)

	var table strings.Builder
	for _, month := range months {
		data := historical[month]
		fmt.Fprintf(&table, "%s: Income ₹%.2f, Expense ₹%.2f, Net ₹%.2f\n",
			month, data.Income, data.Expense, data.Income-data.Expense)
	}

	prompt := fmt.Sprintf(`Analyze this financial data and predict the next 3 months cash flow:

Historical Monthly Data:
%s
Provide predictions for the next 3 months in this JSON format:
{
  "predictions": [
    {
      "month": "2025-10",
      "predictedIncome": number,
      "predictedExpense": number,
      "confidence": "high|medium|low",
      "factors": ["list of factors affecting prediction"]
    }
  ],
  "insights": ["key insights about cash flow patterns"],
  "recommendations": ["actionable recommendations"]
}`, table.String())

	raw, err := g.generate(ctx, "forecast", prompt)
	if err != nil {
		return nil, err
	}

	var prediction OraclePrediction
	if err := json.Unmarshal([]byte(cleanModelJSON(raw)), &prediction); err != nil {
		g.logger.Warn("oracle forecast output is not valid JSON", "error", err)
		return nil, ErrOracleMalformed
	}

	if err := validatePredictions(prediction.Predictions); err != nil {
		g.logger.Warn("oracle forecast output rejected", "error", err)
		return nil, err
	}

	return &prediction, nil
}

// validatePredictions enforces the forecast output contract: at least one
// prediction, every month in YYYY-MM form, and months strictly consecutive.
// Unknown confidence values degrade to low instead of failing the forecast.
func validatePredictions(predictions []models.MonthPrediction) error {
	if len(predictions) == 0 {
		return ErrOracleMissingFields
	}

	var previous time.Time
	for i := range predictions {
		p := &predictions[i]
		if p.Month == "" {
			return ErrOracleMissingFields
		}

		month, err := time.Parse("2006-01", p.Month)
		if err != nil {
			return ErrOracleMalformed
		}
		if i > 0 && !month.Equal(previous.AddDate(0, 1, 0)) {
			return ErrOracleMalformed
		}
		previous = month

		if !models.IsValidConfidence(p.Confidence) {
			p.Confidence = models.ConfidenceLow
		}
	}

	return nil
}

// DescribeUnusualTransaction asks the model for a short alert message
// about a statistically unusual transaction
func (g *GeminiOracle) DescribeUnusualTransaction(ctx context.Context, txn *models.Transaction, env UnusualContext) (string, error) {
	prompt := fmt.Sprintf(`Analyze this transaction for unusualness:
Amount: ₹%s
Category: %s
Description: %s
Date: %s

User's typical spending range: ₹%.2f - ₹%.2f
This transaction is ₹%.2f above typical range.

Provide a brief, helpful alert message about this unusual spending. Keep it under 100 characters.
Focus on the amount being unusually high for this category.`,
		txn.Amount.StringFixed(2), txn.Category, txn.Description, txn.Date.Format("Mon Jan 2 2006"),
		env.Q1, env.Q3, env.AboveRange)

	raw, err := g.generate(ctx, "enrich", prompt)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(raw), nil
}

// cleanModelJSON strips Markdown fences and surrounding junk the model
// sometimes wraps its JSON in despite instructions
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		// Drop the first line (``` or ```json).
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)

	// Keep only from the first brace to the matching last brace when the
	// model added prose around the JSON object.
	if start := strings.IndexAny(s, "[{"); start != -1 {
		if end := strings.LastIndexAny(s, "]}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}
