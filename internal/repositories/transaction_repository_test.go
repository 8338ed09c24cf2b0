package repositories

import (
	"testing"
	"time"

	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/database"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// TransactionRepositoryTestSuite is the test suite for the transaction repository
type TransactionRepositoryTestSuite struct {
	suite.Suite
	db      *database.DB
	repo    TransactionRepositoryInterface
	user    *models.User
	account *models.Account
}

// SetupTest runs before each test
func (s *TransactionRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db, gofakeit.Email())
	s.account = database.CreateTestAccount(s.T(), s.db, s.user, true)
}

// TearDownTest runs after each test
func (s *TransactionRepositoryTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestTransactionRepositorySuite runs the test suite
func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositoryTestSuite))
}

func (s *TransactionRepositoryTestSuite) TestCreate() {
	txn := &models.Transaction{
		UserID:      s.user.ID,
		AccountID:   s.account.ID,
		Type:        models.TransactionTypeExpense,
		Amount:      decimal.NewFromFloat(450.50),
		Category:    "food",
		Description: "Swiggy order",
		Date:        time.Now(),
	}

	err := s.repo.Create(txn)

	s.NoError(err)
	s.NotEqual(uuid.Nil, txn.ID)
	s.Equal(models.TransactionSourceManual, txn.Source)
}

func (s *TransactionRepositoryTestSuite) TestCreate_InvalidType() {
	txn := &models.Transaction{
		UserID:      s.user.ID,
		AccountID:   s.account.ID,
		Type:        "TRANSFER",
		Amount:      decimal.NewFromInt(100),
		Description: "invalid",
		Date:        time.Now(),
	}

	err := s.repo.Create(txn)

	s.Error(err)
}

func (s *TransactionRepositoryTestSuite) TestCreateBatch() {
	transactions := []models.Transaction{
		{
			UserID: s.user.ID, AccountID: s.account.ID,
			Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(100),
			Category: "food", Description: "lunch", Date: time.Now(),
		},
		{
			UserID: s.user.ID, AccountID: s.account.ID,
			Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(50000),
			Category: "salary", Description: "salary credit", Date: time.Now(),
		},
	}

	err := s.repo.CreateBatch(transactions)
	s.NoError(err)

	var count int64
	s.db.Model(&models.Transaction{}).Count(&count)
	s.Equal(int64(2), count)
}

func (s *TransactionRepositoryTestSuite) TestCreateBatch_Empty() {
	s.NoError(s.repo.CreateBatch(nil))
}

func (s *TransactionRepositoryTestSuite) TestGetByID_NotFound() {
	txn, err := s.repo.GetByID(uuid.New())

	s.ErrorIs(err, ErrTransactionNotFound)
	s.Nil(txn)
}

func (s *TransactionRepositoryTestSuite) TestGetByUserAndDateRange_HalfOpenInterval() {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	inside := database.CreateTestTransaction(s.T(), s.db, s.user, s.account,
		models.TransactionTypeExpense, "food", 100, base)
	// Exactly at the end boundary: excluded.
	database.CreateTestTransaction(s.T(), s.db, s.user, s.account,
		models.TransactionTypeExpense, "food", 200, base.AddDate(0, 0, 5))
	// Before the start: excluded.
	database.CreateTestTransaction(s.T(), s.db, s.user, s.account,
		models.TransactionTypeExpense, "food", 300, base.AddDate(0, 0, -5))

	result, err := s.repo.GetByUserAndDateRange(s.user.ID, base, base.AddDate(0, 0, 5))

	s.NoError(err)
	s.Require().Len(result, 1)
	s.Equal(inside.ID, result[0].ID)
}

func (s *TransactionRepositoryTestSuite) TestGetByUserAndDateRange_OrderedByDateAscending() {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, day := range []int{20, 5, 12} {
		database.CreateTestTransaction(s.T(), s.db, s.user, s.account,
			models.TransactionTypeExpense, "food", 100, base.AddDate(0, 0, day))
	}

	result, err := s.repo.GetByUserAndDateRange(s.user.ID, base, base.AddDate(0, 1, 0))

	s.NoError(err)
	s.Require().Len(result, 3)
	s.True(result[0].Date.Before(result[1].Date))
	s.True(result[1].Date.Before(result[2].Date))
}

func (s *TransactionRepositoryTestSuite) TestGetByUserAndDateRange_ScopedToUser() {
	other := database.CreateTestUser(s.T(), s.db, gofakeit.Email())
	otherAccount := database.CreateTestAccount(s.T(), s.db, other, true)

	now := time.Now()
	database.CreateTestTransaction(s.T(), s.db, s.user, s.account,
		models.TransactionTypeExpense, "food", 100, now)
	database.CreateTestTransaction(s.T(), s.db, other, otherAccount,
		models.TransactionTypeExpense, "food", 100, now)

	result, err := s.repo.GetByUserAndDateRange(s.user.ID, now.AddDate(0, 0, -1), now.AddDate(0, 0, 1))

	s.NoError(err)
	s.Require().Len(result, 1)
	s.Equal(s.user.ID, result[0].UserID)
}

func (s *TransactionRepositoryTestSuite) TestGetRecentExpenses_NewestFirstAndLimited() {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for day := 1; day <= 5; day++ {
		database.CreateTestTransaction(s.T(), s.db, s.user, s.account,
			models.TransactionTypeExpense, "food", float64(day*100), base.AddDate(0, 0, day))
	}
	// Income is never an expense sample.
	database.CreateTestTransaction(s.T(), s.db, s.user, s.account,
		models.TransactionTypeIncome, "salary", 50000, base.AddDate(0, 0, 3))

	result, err := s.repo.GetRecentExpenses(s.user.ID, base, 3)

	s.NoError(err)
	s.Require().Len(result, 3)
	s.True(result[0].Date.After(result[1].Date))
	s.True(result[1].Date.After(result[2].Date))
	for _, txn := range result {
		s.Equal(models.TransactionTypeExpense, txn.Type)
	}
}

func (s *TransactionRepositoryTestSuite) TestFindDuplicate_WithinWindow() {
	date := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	existing := database.CreateTestTransaction(s.T(), s.db, s.user, s.account,
		models.TransactionTypeExpense, "food", 500, date)

	// 12 hours later, same amount and description.
	found, err := s.repo.FindDuplicate(s.user.ID, decimal.NewFromInt(500), "food purchase", date.Add(12*time.Hour))

	s.NoError(err)
	s.Require().NotNil(found)
	s.Equal(existing.ID, found.ID)
}

func (s *TransactionRepositoryTestSuite) TestFindDuplicate_OutsideWindow() {
	date := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	database.CreateTestTransaction(s.T(), s.db, s.user, s.account,
		models.TransactionTypeExpense, "food", 500, date)

	found, err := s.repo.FindDuplicate(s.user.ID, decimal.NewFromInt(500), "food purchase", date.Add(25*time.Hour))

	s.NoError(err)
	s.Nil(found)
}

func (s *TransactionRepositoryTestSuite) TestFindDuplicate_DifferentAmount() {
	date := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	database.CreateTestTransaction(s.T(), s.db, s.user, s.account,
		models.TransactionTypeExpense, "food", 500, date)

	found, err := s.repo.FindDuplicate(s.user.ID, decimal.NewFromInt(600), "food purchase", date)

	s.NoError(err)
	s.Nil(found)
}

func (s *TransactionRepositoryTestSuite) TestGetWithFilters() {
	now := time.Now()
	database.CreateTestTransaction(s.T(), s.db, s.user, s.account,
		models.TransactionTypeExpense, "food", 100, now)
	database.CreateTestTransaction(s.T(), s.db, s.user, s.account,
		models.TransactionTypeExpense, "transport", 200, now)
	database.CreateTestTransaction(s.T(), s.db, s.user, s.account,
		models.TransactionTypeIncome, "salary", 50000, now)

	result, total, err := s.repo.GetWithFilters(models.TransactionFilters{
		UserID: s.user.ID,
		Type:   models.TransactionTypeExpense,
		Limit:  10,
	})

	s.NoError(err)
	s.Equal(int64(2), total)
	s.Len(result, 2)

	result, total, err = s.repo.GetWithFilters(models.TransactionFilters{
		UserID:   s.user.ID,
		Category: "food",
		Limit:    10,
	})

	s.NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(result, 1)
	s.Equal("food", result[0].Category)
}
