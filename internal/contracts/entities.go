package contracts

import (
	"github.com/shopspring/decimal"
)

type IncomeCreateRequest struct {
	Name          string          `json:"name" binding:"required,max=100"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDay    int             `json:"payment_day" binding:"required,min=1,max=31"`
	StartDate     string          `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate       string          `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Frequency     string          `json:"frequency" binding:"omitempty,oneof=WEEKLY BIWEEKLY MONTHLY BIMONTHLY QUARTERLY SEMIANNUAL ANNUAL"`
	SpecificMonth *int            `json:"specific_month" binding:"omitempty,min=1,max=12"`
}

type IncomeUpdateRequest struct {
	Name     *string          `json:"name" binding:"omitempty,max=100"`
	Amount   *decimal.Decimal `json:"amount"`
	EndDate  string           `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	IsActive *bool            `json:"is_active"`
}

type LoanCreateRequest struct {
	Name       string          `json:"name" binding:"required,max=100"`
	Amount     decimal.Decimal `json:"amount"`
	PaymentDay int             `json:"payment_day" binding:"required,min=1,max=31"`
	StartDate  string          `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate    string          `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	AlertDays  *int            `json:"alert_days" binding:"omitempty,min=0,max=60"`
	Notes      string          `json:"notes" binding:"omitempty,max=500"`
}

type LoanUpdateRequest struct {
	Name      *string          `json:"name" binding:"omitempty,max=100"`
	Amount    *decimal.Decimal `json:"amount"`
	EndDate   string           `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	AlertDays *int             `json:"alert_days" binding:"omitempty,min=0,max=60"`
	Notes     *string          `json:"notes" binding:"omitempty,max=500"`
	IsActive  *bool            `json:"is_active"`
}

type CreditCardCreateRequest struct {
	Name        string          `json:"name" binding:"required,max=100"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	ClosingDay  int             `json:"cutoff_day" binding:"required,min=1,max=31"`
	DueDay      int             `json:"payment_day" binding:"required,min=1,max=31"`
}

type CreditCardUpdateRequest struct {
	Name        *string          `json:"name" binding:"omitempty,max=100"`
	CreditLimit *decimal.Decimal `json:"credit_limit"`
	ClosingDay  *int             `json:"cutoff_day" binding:"omitempty,min=1,max=31"`
	DueDay      *int             `json:"payment_day" binding:"omitempty,min=1,max=31"`
	IsActive    *bool            `json:"is_active"`
}

type ChargeCreateRequest struct {
	Date        string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Description string          `json:"description" binding:"omitempty,max=255"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        string          `json:"kind" binding:"required,oneof=CURRENT INSTALLMENT"`
	Term        int             `json:"term" binding:"omitempty,min=1,max=120"`
}

type PurchaseCreateRequest struct {
	Product          string          `json:"product" binding:"required,max=150"`
	Price            decimal.Decimal `json:"price"`
	Term             int             `json:"term" binding:"required,min=1,max=120"`
	FirstPaymentDate string          `json:"first_payment_date" binding:"required,datetime=2006-01-02"`
	PaymentDay       *int            `json:"payment_day" binding:"omitempty,min=1,max=31"`
	AlertDays        *int            `json:"alert_days" binding:"omitempty,min=0,max=60"`
}

type SettingsUpdateRequest struct {
	InitialBalance    *decimal.Decimal `json:"initial_balance"`
	Payday1           *int             `json:"payday_1" binding:"omitempty,min=1,max=31"`
	Payday2           *int             `json:"payday_2" binding:"omitempty,min=1,max=31"`
	NotificationEmail *string          `json:"notification_email" binding:"omitempty,max=255"`
	AlertsEnabled     *bool            `json:"alerts_enabled"`
}

type LedgerEntryCreateRequest struct {
	Kind        string          `json:"kind" binding:"required,oneof=INCOME EXPENSE"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Description string          `json:"description" binding:"omitempty,max=255"`
}
