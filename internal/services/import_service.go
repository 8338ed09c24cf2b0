package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/dto"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/models"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrDuplicateTransaction = errors.New("similar transaction already exists")
	ErrUnparseableText      = errors.New("could not parse transaction data from text")
)

// importService parses raw UPI/bank messages through the generative
// parser and persists the results with duplicate suppression.
type importService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	accountRepo     repositories.AccountRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	parser          TransactionParserInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewImportService creates a new import service
func NewImportService(
	transactionRepo repositories.TransactionRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	parser TransactionParserInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ImportServiceInterface {
	return &importService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		userRepo:        userRepo,
		parser:          parser,
		metrics:         metrics,
		logger:          logger,
	}
}

// ParseTransaction extracts structured transaction fields from raw text.
// Parsing is read-only; nothing is persisted until ImportTransaction.
func (s *importService) ParseTransaction(ctx context.Context, userID uuid.UUID, text string) (*dto.ParsedTransaction, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	parsed, err := s.parser.ParseTransactionText(ctx, text)
	if err != nil {
		s.metrics.IncrementCounter("import.attempt", map[string]string{"outcome": "parse_failed"})
		if errors.Is(err, ErrOracleMalformed) || errors.Is(err, ErrOracleMissingFields) {
			return nil, fmt.Errorf("%w: %v", ErrUnparseableText, err)
		}
		return nil, err
	}

	return parsed, nil
}

// ImportTransaction persists a parsed transaction into the user's default
// account. A same-amount, same-description transaction within 24 hours of
// the parsed date is suppressed as a duplicate.
func (s *importService) ImportTransaction(ctx context.Context, userID uuid.UUID, parsed *dto.ParsedTransaction) (*models.Transaction, error) {
	account, err := s.accountRepo.GetDefaultByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve default account: %w", err)
	}

	amount := decimal.NewFromFloat(parsed.Amount)

	existing, err := s.transactionRepo.FindDuplicate(userID, amount, parsed.Description, parsed.Date)
	if err != nil {
		return nil, fmt.Errorf("duplicate check failed: %w", err)
	}
	if existing != nil {
		s.metrics.IncrementCounter("import.attempt", map[string]string{"outcome": "duplicate"})
		s.logger.Info("duplicate transaction suppressed",
			"user_id", userID, "existing_id", existing.ID, "description", parsed.Description)
		return nil, ErrDuplicateTransaction
	}

	date := parsed.Date
	if date.IsZero() {
		date = time.Now()
	}

	transaction := &models.Transaction{
		UserID:       userID,
		AccountID:    account.ID,
		Type:         parsed.Type,
		Amount:       amount,
		Category:     parsed.Category,
		Description:  parsed.Description,
		Date:         date,
		Source:       models.TransactionSourceUPIImport,
		UpiReference: parsed.UpiReference,
		BankAccount:  parsed.BankAccount,
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		s.metrics.IncrementCounter("import.attempt", map[string]string{"outcome": "failed"})
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.metrics.IncrementCounter("import.attempt", map[string]string{"outcome": "success"})
	return transaction, nil
}

// BatchImport parses and imports a batch of raw messages, tallying
// successes, failures, and suppressed duplicates separately. One bad
// message never aborts the rest of the batch.
func (s *importService) BatchImport(ctx context.Context, userID uuid.UUID, texts []string) (*dto.BatchImportResult, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	s.metrics.RecordGauge("import.batch_size", float64(len(texts)), nil)

	result := &dto.BatchImportResult{Errors: []string{}}

	for _, text := range texts {
		parsed, err := s.parser.ParseTransactionText(ctx, text)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, err.Error())
			s.metrics.IncrementCounter("import.attempt", map[string]string{"outcome": "parse_failed"})
			continue
		}

		if _, err := s.ImportTransaction(ctx, userID, parsed); err != nil {
			if errors.Is(err, ErrDuplicateTransaction) {
				result.Duplicates++
				continue
			}
			result.Failed++
			result.Errors = append(result.Errors, err.Error())
			continue
		}

		result.Success++
	}

	return result, nil
}
