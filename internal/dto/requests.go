package dto

import "time"

// ParseTransactionRequest carries the raw UPI/bank message text to parse
type ParseTransactionRequest struct {
	Text string `json:"text" validate:"required,min=10,max=2000"`
}

// ImportTransactionRequest carries a parsed transaction to persist
type ImportTransactionRequest struct {
	Amount       float64   `json:"amount" validate:"required,gt=0"`
	Type         string    `json:"type" validate:"required,transaction_type"`
	Description  string    `json:"description" validate:"required,max=500"`
	Category     string    `json:"category" validate:"max=50"`
	Date         time.Time `json:"date" validate:"required"`
	UpiReference string    `json:"upi_reference" validate:"max=100"`
	BankAccount  string    `json:"bank_account" validate:"max=10"`
}

// BatchImportRequest carries multiple raw messages for batch import
type BatchImportRequest struct {
	Texts []string `json:"texts" validate:"required,min=1,max=50,dive,min=10,max=2000"`
}

// CreateTransactionRequest carries a manually entered transaction
type CreateTransactionRequest struct {
	AccountID   string    `json:"account_id" validate:"required,uuid"`
	Type        string    `json:"type" validate:"required,transaction_type"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	Category    string    `json:"category" validate:"required,max=50"`
	Description string    `json:"description" validate:"required,max=500"`
	Date        time.Time `json:"date"`
}

// CreateBudgetRequest sets a new monthly budget ceiling
type CreateBudgetRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// ListTransactionsRequest captures the query parameters for transaction listing
type ListTransactionsRequest struct {
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Type      string `query:"type" validate:"omitempty,transaction_type"`
	Category  string `query:"category" validate:"omitempty,max=50"`
	Page      int    `query:"page" validate:"omitempty,min=1"`
	PerPage   int    `query:"per_page" validate:"omitempty,min=1,max=100"`
}
