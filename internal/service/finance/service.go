// Package finance implements the personal income/expense tracker.
// Transactions live in one persisted collection; monthly and yearly
// rollups filter on the "YYYY/MM/DD" date-string prefix.
package finance

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"atelier/internal/domain"
	"atelier/internal/domain/models"
	"atelier/internal/kvstore"
)

const keyTransactions = "finance_transactions"

// Default categories applied when a transaction is saved without one.
const (
	defaultIncomeCategory  = "Project"
	defaultExpenseCategory = "Other"
)

type Service struct {
	mu     sync.Mutex
	kv     kvstore.Store
	logger *slog.Logger

	transactions []models.Transaction
}

func NewService(kv kvstore.Store, logger *slog.Logger) *Service {
	s := &Service{kv: kv, logger: logger}

	raw, err := kv.Get(keyTransactions)
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			logger.Warn("failed to read transactions, starting empty", "error", err)
		}
		return s
	}
	if err := json.Unmarshal([]byte(raw), &s.transactions); err != nil {
		logger.Warn("malformed transactions, starting empty", "error", err)
		s.transactions = nil
	}
	return s
}

// SaveTransactionRequest creates or (with a non-empty ID on update paths)
// replaces the editable fields of a transaction.
type SaveTransactionRequest struct {
	Title    string `json:"title"`
	Amount   int64  `json:"amount"`
	Type     string `json:"type"`
	Date     string `json:"date"`
	Category string `json:"category"`
}

func (r *SaveTransactionRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Amount, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Type, validation.Required, validation.In(models.TransactionIncome, models.TransactionExpense)),
		validation.Field(&r.Date, validation.Required, validation.Match(dateFormat).Error("date must be YYYY/MM/DD")),
	)
}

var dateFormat = regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`)

func (s *Service) Create(req *SaveTransactionRequest) (*models.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := models.Transaction{
		ID:       uuid.New().String(),
		Title:    req.Title,
		Amount:   req.Amount,
		Type:     req.Type,
		Date:     req.Date,
		Category: categoryOrDefault(req.Category, req.Type),
	}
	s.transactions = append(s.transactions, tx)
	s.persist()

	s.logger.Info("transaction created", "id", tx.ID, "type", tx.Type, "amount", tx.Amount)
	return &tx, nil
}

func (s *Service) Update(id string, req *SaveTransactionRequest) (*models.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.transactions {
		if s.transactions[i].ID != id {
			continue
		}
		s.transactions[i].Title = req.Title
		s.transactions[i].Amount = req.Amount
		s.transactions[i].Type = req.Type
		s.transactions[i].Date = req.Date
		s.transactions[i].Category = categoryOrDefault(req.Category, req.Type)
		s.persist()
		out := s.transactions[i]
		return &out, nil
	}
	return nil, &domain.NotFoundError{Message: fmt.Sprintf("transaction %q not found", id)}
}

func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			s.persist()
			return nil
		}
	}
	return &domain.NotFoundError{Message: fmt.Sprintf("transaction %q not found", id)}
}

// List returns the transactions for one month (newest last, insertion
// order), or every transaction when month is empty.
func (s *Service) List(year, month string) []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Transaction{}
	for _, tx := range s.transactions {
		if year != "" && !strings.HasPrefix(tx.Date, prefixFor(year, month)) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// MonthSummary totals income, expense, and balance for one month.
func (s *Service) MonthSummary(year, month string) models.MonthSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefix := prefixFor(year, month)
	var sum models.MonthSummary
	for _, tx := range s.transactions {
		if !strings.HasPrefix(tx.Date, prefix) {
			continue
		}
		if tx.Type == models.TransactionIncome {
			sum.Income += tx.Amount
		} else {
			sum.Expense += tx.Amount
		}
	}
	sum.Balance = sum.Income - sum.Expense
	return sum
}

// YearOverview returns per-month income/expense totals for a year,
// indexed 0-11. Transactions with out-of-range month parts are skipped.
func (s *Service) YearOverview(year string) [12]models.MonthSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var months [12]models.MonthSummary
	for _, tx := range s.transactions {
		if !strings.HasPrefix(tx.Date, year+"/") {
			continue
		}
		parts := strings.Split(tx.Date, "/")
		if len(parts) < 2 {
			continue
		}
		idx := monthIndex(parts[1])
		if idx < 0 {
			continue
		}
		if tx.Type == models.TransactionIncome {
			months[idx].Income += tx.Amount
		} else {
			months[idx].Expense += tx.Amount
		}
		months[idx].Balance = months[idx].Income - months[idx].Expense
	}
	return months
}

func (s *Service) persist() {
	payload, err := json.Marshal(s.transactions)
	if err != nil {
		s.logger.Error("failed to encode transactions", "error", err)
		return
	}
	if err := s.kv.Set(keyTransactions, string(payload)); err != nil {
		s.logger.Warn("persist failed, continuing with in-memory state", "key", keyTransactions, "error", err)
	}
}

func categoryOrDefault(category, txType string) string {
	if category != "" {
		return category
	}
	if txType == models.TransactionIncome {
		return defaultIncomeCategory
	}
	return defaultExpenseCategory
}

func prefixFor(year, month string) string {
	if month == "" {
		return year + "/"
	}
	return year + "/" + month
}

func monthIndex(part string) int {
	if len(part) != 2 {
		return -1
	}
	n := int(part[0]-'0')*10 + int(part[1]-'0')
	if part[0] < '0' || part[0] > '9' || part[1] < '0' || part[1] > '9' || n < 1 || n > 12 {
		return -1
	}
	return n - 1
}
