package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/config"
	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestUser(t *testing.T, db *DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
		Role:      models.RoleCustomer,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestAccount(t *testing.T, db *DB, user *models.User, isDefault bool) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:    user.ID,
		Name:      "Test Account",
		Type:      models.AccountTypeCurrent,
		IsDefault: isDefault,
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

func CreateTestTransaction(t *testing.T, db *DB, user *models.User, account *models.Account, txnType, category string, amount float64, date time.Time) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		UserID:      user.ID,
		AccountID:   account.ID,
		Type:        txnType,
		Amount:      decimal.NewFromFloat(amount),
		Category:    category,
		Description: fmt.Sprintf("%s purchase", category),
		Date:        date,
		Source:      models.TransactionSourceManual,
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return txn
}

func CreateTestBudget(t *testing.T, db *DB, user *models.User, amount float64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID: user.ID,
		Amount: decimal.NewFromFloat(amount),
	}

	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}

	return budget
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"transactions",
		"budgets",
		"accounts",
		"users",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
