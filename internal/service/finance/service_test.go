package finance

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"atelier/internal/domain"
	"atelier/internal/domain/models"
	"atelier/internal/kvstore"
)

func newTestService(t *testing.T) (*Service, *kvstore.MemoryStore) {
	t.Helper()
	store := kvstore.NewMemory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(store, logger), store
}

func mustCreate(t *testing.T, s *Service, title, txType, date string, amount int64) *models.Transaction {
	t.Helper()
	tx, err := s.Create(&SaveTransactionRequest{Title: title, Amount: amount, Type: txType, Date: date})
	if err != nil {
		t.Fatalf("Create(%q): %v", title, err)
	}
	return tx
}

func TestCreateValidation(t *testing.T) {
	s, _ := newTestService(t)

	tests := []struct {
		name string
		req  SaveTransactionRequest
	}{
		{"missing title", SaveTransactionRequest{Amount: 10, Type: models.TransactionIncome, Date: "2025/01/02"}},
		{"zero amount", SaveTransactionRequest{Title: "x", Type: models.TransactionIncome, Date: "2025/01/02"}},
		{"bad type", SaveTransactionRequest{Title: "x", Amount: 10, Type: "transfer", Date: "2025/01/02"}},
		{"bad date", SaveTransactionRequest{Title: "x", Amount: 10, Type: models.TransactionIncome, Date: "01-02-2025"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Create(&tt.req); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("Create = %v, want validation error", err)
			}
		})
	}
}

func TestDefaultCategories(t *testing.T) {
	s, _ := newTestService(t)

	income := mustCreate(t, s, "logo fee", models.TransactionIncome, "2025/03/05", 1200)
	if income.Category != defaultIncomeCategory {
		t.Fatalf("income category = %q, want %q", income.Category, defaultIncomeCategory)
	}

	expense := mustCreate(t, s, "stock photos", models.TransactionExpense, "2025/03/07", 40)
	if expense.Category != defaultExpenseCategory {
		t.Fatalf("expense category = %q, want %q", expense.Category, defaultExpenseCategory)
	}

	custom, err := s.Create(&SaveTransactionRequest{
		Title: "fonts", Amount: 90, Type: models.TransactionExpense, Date: "2025/03/08", Category: "Software",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if custom.Category != "Software" {
		t.Fatalf("explicit category overridden: %q", custom.Category)
	}
}

func TestMonthSummary(t *testing.T) {
	s, _ := newTestService(t)

	mustCreate(t, s, "poster fee", models.TransactionIncome, "2025/04/01", 1000)
	mustCreate(t, s, "branding fee", models.TransactionIncome, "2025/04/20", 500)
	mustCreate(t, s, "paper", models.TransactionExpense, "2025/04/11", 200)
	mustCreate(t, s, "other month", models.TransactionIncome, "2025/05/01", 9999)

	sum := s.MonthSummary("2025", "04")
	if sum.Income != 1500 || sum.Expense != 200 || sum.Balance != 1300 {
		t.Fatalf("summary = %+v", sum)
	}

	empty := s.MonthSummary("2025", "12")
	if empty.Income != 0 || empty.Expense != 0 || empty.Balance != 0 {
		t.Fatalf("empty month summary = %+v", empty)
	}
}

func TestYearOverview(t *testing.T) {
	s, _ := newTestService(t)

	mustCreate(t, s, "jan fee", models.TransactionIncome, "2025/01/10", 100)
	mustCreate(t, s, "jan cost", models.TransactionExpense, "2025/01/12", 30)
	mustCreate(t, s, "dec fee", models.TransactionIncome, "2025/12/01", 700)
	mustCreate(t, s, "last year", models.TransactionIncome, "2024/06/01", 5000)

	months := s.YearOverview("2025")
	if months[0].Income != 100 || months[0].Expense != 30 || months[0].Balance != 70 {
		t.Fatalf("january = %+v", months[0])
	}
	if months[11].Income != 700 {
		t.Fatalf("december = %+v", months[11])
	}
	if months[5].Income != 0 {
		t.Fatalf("june should be empty: %+v", months[5])
	}
}

func TestListByMonth(t *testing.T) {
	s, _ := newTestService(t)

	mustCreate(t, s, "in scope", models.TransactionIncome, "2025/02/03", 10)
	mustCreate(t, s, "out of scope", models.TransactionIncome, "2025/03/03", 10)

	got := s.List("2025", "02")
	if len(got) != 1 || got[0].Title != "in scope" {
		t.Fatalf("List = %v", got)
	}
	if all := s.List("", ""); len(all) != 2 {
		t.Fatalf("unscoped List = %d entries, want 2", len(all))
	}
}

func TestUpdateAndDelete(t *testing.T) {
	s, _ := newTestService(t)
	tx := mustCreate(t, s, "draft", models.TransactionIncome, "2025/06/01", 50)

	updated, err := s.Update(tx.ID, &SaveTransactionRequest{
		Title: "final", Amount: 75, Type: models.TransactionIncome, Date: "2025/06/02",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "final" || updated.Amount != 75 {
		t.Fatalf("updated = %+v", updated)
	}

	if _, err := s.Update("ghost", &SaveTransactionRequest{
		Title: "x", Amount: 1, Type: models.TransactionIncome, Date: "2025/06/02",
	}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Update missing = %v, want not-found", err)
	}

	if err := s.Delete(tx.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(tx.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second Delete = %v, want not-found", err)
	}
}

func TestRehydrate(t *testing.T) {
	s, store := newTestService(t)
	mustCreate(t, s, "kept", models.TransactionIncome, "2025/07/01", 10)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fresh := NewService(store, logger)
	if got := fresh.List("", ""); len(got) != 1 || got[0].Title != "kept" {
		t.Fatalf("rehydrated list = %v", got)
	}
}
