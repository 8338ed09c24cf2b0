package services

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type merchantInfo struct {
	Name     string
	Category string
}

type sampleDataGenerator struct {
	merchantPool []merchantInfo
	rng          *rand.Rand
}

const (
	salaryDay        = 1
	salaryHour       = 9
	spendHoursStart  = 7
	spendHoursEnd    = 23
	minMonthlySalary = 40000
	maxMonthlySalary = 90000
)

// NewSampleDataGenerator creates a generator for development seed data
func NewSampleDataGenerator() SampleDataGeneratorInterface {
	source := rand.NewSource(time.Now().UnixNano())
	return &sampleDataGenerator{
		merchantPool: initializeMerchantPool(),
		rng:          rand.New(source),
	}
}

// initializeMerchantPool creates a pool of realistic Indian merchants
func initializeMerchantPool() []merchantInfo {
	return []merchantInfo{
		// Food
		{"Swiggy", "food"},
		{"Zomato", "food"},
		{"Dominos Pizza", "food"},
		{"Cafe Coffee Day", "food"},
		{"Haldiram's", "food"},
		{"McDonald's", "food"},

		// Groceries
		{"BigBasket", "groceries"},
		{"DMart", "groceries"},
		{"Blinkit", "groceries"},
		{"Reliance Fresh", "groceries"},

		// Transport
		{"Uber", "transport"},
		{"Ola Cabs", "transport"},
		{"Rapido", "transport"},
		{"IRCTC", "transport"},
		{"Indian Oil Petrol Pump", "transport"},

		// Shopping
		{"Amazon", "shopping"},
		{"Flipkart", "shopping"},
		{"Myntra", "shopping"},
		{"Croma", "shopping"},

		// Entertainment
		{"Netflix", "entertainment"},
		{"BookMyShow", "entertainment"},
		{"Spotify", "entertainment"},
		{"Hotstar", "entertainment"},

		// Bills
		{"Airtel Postpaid", "bills"},
		{"Jio Recharge", "bills"},
		{"Tata Power", "bills"},
		{"ACT Broadband", "bills"},

		// Healthcare
		{"Apollo Pharmacy", "healthcare"},
		{"1mg", "healthcare"},
		{"Practo", "healthcare"},

		// Education
		{"Udemy", "education"},
		{"Coursera", "education"},
	}
}

// GenerateUser generates a user with realistic identity fields
func (g *sampleDataGenerator) GenerateUser() *models.User {
	firstName := gofakeit.FirstName()
	lastName := gofakeit.LastName()
	return &models.User{
		ID:        uuid.New(),
		Email:     gofakeit.Email(),
		FirstName: firstName,
		LastName:  lastName,
		Role:      models.RoleCustomer,
	}
}

// GenerateAccount generates an account for the user
func (g *sampleDataGenerator) GenerateAccount(userID uuid.UUID, isDefault bool) *models.Account {
	accountType := models.AccountTypeCurrent
	if !isDefault && g.rng.Float64() < 0.5 {
		accountType = models.AccountTypeSavings
	}

	return &models.Account{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      gofakeit.RandomString([]string{"Primary Account", "Salary Account", "Savings Pot", "Daily Spends"}),
		Type:      accountType,
		Balance:   decimal.NewFromInt(int64(10000 + g.rng.Intn(90000))),
		IsDefault: isDefault,
	}
}

// GenerateBudget generates a monthly budget proportionate to typical spend
func (g *sampleDataGenerator) GenerateBudget(userID uuid.UUID) *models.Budget {
	amount := 20000 + g.rng.Intn(40000)
	return &models.Budget{
		ID:     uuid.New(),
		UserID: userID,
		Amount: decimal.NewFromInt(int64(amount)),
	}
}

// GenerateMonthlyTransactions generates one salary credit plus count-1
// expense transactions spread across the given month
func (g *sampleDataGenerator) GenerateMonthlyTransactions(userID, accountID uuid.UUID, month time.Time, count int) []models.Transaction {
	if count <= 0 {
		return nil
	}

	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()

	transactions := make([]models.Transaction, 0, count)
	transactions = append(transactions, g.salaryTransaction(userID, accountID, monthStart))

	for i := 1; i < count; i++ {
		transactions = append(transactions, g.expenseTransaction(userID, accountID, monthStart, daysInMonth))
	}

	return transactions
}

func (g *sampleDataGenerator) salaryTransaction(userID, accountID uuid.UUID, monthStart time.Time) models.Transaction {
	salary := minMonthlySalary + g.rng.Intn(maxMonthlySalary-minMonthlySalary)
	date := time.Date(monthStart.Year(), monthStart.Month(), salaryDay, salaryHour, 0, 0, 0, time.UTC)

	return models.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		AccountID:   accountID,
		Type:        models.TransactionTypeIncome,
		Amount:      decimal.NewFromInt(int64(salary)),
		Category:    "salary",
		Description: fmt.Sprintf("Salary credit - %s", gofakeit.Company()),
		Date:        date,
		Source:      models.TransactionSourceManual,
	}
}

func (g *sampleDataGenerator) expenseTransaction(userID, accountID uuid.UUID, monthStart time.Time, daysInMonth int) models.Transaction {
	merchant := g.merchantPool[g.rng.Intn(len(g.merchantPool))]
	amount := g.amountForCategory(merchant.Category)

	day := 1 + g.rng.Intn(daysInMonth)
	hour := spendHoursStart + g.rng.Intn(spendHoursEnd-spendHoursStart)
	date := time.Date(monthStart.Year(), monthStart.Month(), day, hour, g.rng.Intn(60), 0, 0, time.UTC)

	source := models.TransactionSourceManual
	upiRef := ""
	if g.rng.Float64() < 0.6 {
		source = models.TransactionSourceUPIImport
		upiRef = fmt.Sprintf("%012d", g.rng.Int63n(1e12))
	}

	return models.Transaction{
		ID:           uuid.New(),
		UserID:       userID,
		AccountID:    accountID,
		Type:         models.TransactionTypeExpense,
		Amount:       amount,
		Category:     merchant.Category,
		Description:  merchant.Name,
		Date:         date,
		Source:       source,
		UpiReference: upiRef,
	}
}

func (g *sampleDataGenerator) amountForCategory(category string) decimal.Decimal {
	ranges := map[string][2]float64{
		"food":          {80, 900},
		"groceries":     {200, 3000},
		"transport":     {50, 800},
		"shopping":      {300, 8000},
		"entertainment": {100, 1200},
		"bills":         {200, 2500},
		"healthcare":    {100, 2000},
		"education":     {500, 4000},
	}

	r, exists := ranges[category]
	if !exists {
		r = [2]float64{50, 1000}
	}
	amount := r[0] + g.rng.Float64()*(r[1]-r[0])
	return decimal.NewFromFloat(amount).Round(2)
}
