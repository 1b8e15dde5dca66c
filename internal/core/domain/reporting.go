package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Label of the synthetic balance sheet line carrying the fiscal-year-to-date
// net profit.
const RetainedEarningsCurrentPeriod = "Retained Earnings (Current Period)"

// AccountTotals is one account's raw debit and credit sums over a period,
// the row shape reports are derived from.
type AccountTotals struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
}

// OpenDocument is an unpaid or partially paid invoice or bill, the input row
// for aging reports.
type OpenDocument struct {
	DocumentID     string          `json:"documentID"`
	DocumentNumber string          `json:"documentNumber"`
	PartyID        string          `json:"partyID"`
	PartyName      string          `json:"partyName"`
	DueDate        time.Time       `json:"dueDate"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	PaidAmount     decimal.Decimal `json:"paidAmount"`
}

// TrialBalanceRow is one account's sign-normalised balance: the net amount
// lands in the debit column for accounts with a debit normal balance and in
// the credit column otherwise.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceGroup gathers rows of one account type with subtotals.
type TrialBalanceGroup struct {
	AccountType AccountType       `json:"accountType"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}

// TrialBalance is the full report as of a date. A correct ledger always has
// GrandTotalDebit equal to GrandTotalCredit.
type TrialBalance struct {
	AsOf             time.Time           `json:"asOf"`
	Groups           []TrialBalanceGroup `json:"groups"`
	GrandTotalDebit  decimal.Decimal     `json:"grandTotalDebit"`
	GrandTotalCredit decimal.Decimal     `json:"grandTotalCredit"`
}

// ReportLine is one account's contribution to a P&L or balance sheet section.
type ReportLine struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	Amount      decimal.Decimal `json:"amount"`
}

// ProfitAndLoss is the income statement for a date range. Cost of goods sold
// is split out of expenses so gross profit can be shown.
type ProfitAndLoss struct {
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	Revenue       []ReportLine    `json:"revenue"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	COGS          []ReportLine    `json:"cogs"`
	TotalCOGS     decimal.Decimal `json:"totalCOGS"`
	GrossProfit   decimal.Decimal `json:"grossProfit"`
	Expenses      []ReportLine    `json:"expenses"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"`
}

// BalanceSheet is the statement of financial position as of a date. Equity
// includes the synthetic retained earnings line for the current fiscal year.
type BalanceSheet struct {
	AsOf             time.Time       `json:"asOf"`
	Assets           []ReportLine    `json:"assets"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	Liabilities      []ReportLine    `json:"liabilities"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	Equity           []ReportLine    `json:"equity"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
}

// AgingBucket names one column of an aging report.
type AgingBucket string

const (
	BucketCurrent AgingBucket = "current"
	Bucket1To30   AgingBucket = "1-30"
	Bucket31To60  AgingBucket = "31-60"
	Bucket61To90  AgingBucket = "61-90"
	BucketOver90  AgingBucket = "90+"
)

// AgingRow is one open document placed in its bucket.
type AgingRow struct {
	DocumentID     string          `json:"documentID"`
	DocumentNumber string          `json:"documentNumber"`
	PartyID        string          `json:"partyID"`
	PartyName      string          `json:"partyName"`
	DueDate        time.Time       `json:"dueDate"`
	BalanceDue     decimal.Decimal `json:"balanceDue"`
	Bucket         AgingBucket     `json:"bucket"`
}

// AgingReport buckets open receivables or payables by days overdue.
type AgingReport struct {
	AsOf         time.Time                       `json:"asOf"`
	Rows         []AgingRow                      `json:"rows"`
	BucketTotals map[AgingBucket]decimal.Decimal `json:"bucketTotals"`
	Total        decimal.Decimal                 `json:"total"`
}

// LedgerLine is one posting with a running balance, as shown on account,
// customer, vendor and cashbook statements.
type LedgerLine struct {
	PostingID       string          `json:"postingID"`
	TransactionDate time.Time       `json:"transactionDate"`
	Description     string          `json:"description"`
	Source          SourceRef       `json:"source"`
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"credit"`
	Balance         decimal.Decimal `json:"balance"`
}

// AccountStatement is an account's activity over a range with the balance
// carried in from before the range.
type AccountStatement struct {
	AccountID      string          `json:"accountID"`
	AccountName    string          `json:"accountName"`
	From           time.Time       `json:"from"`
	To             time.Time       `json:"to"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Lines          []LedgerLine    `json:"lines"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// CashbookAccount is one payment account's slice of the cashbook.
type CashbookAccount struct {
	AccountID      string          `json:"accountID"`
	AccountName    string          `json:"accountName"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Lines          []LedgerLine    `json:"lines"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// Cashbook is the combined statement of a branch's payment accounts.
type Cashbook struct {
	BranchID string            `json:"branchID"`
	From     time.Time         `json:"from"`
	To       time.Time         `json:"to"`
	Accounts []CashbookAccount `json:"accounts"`
}
