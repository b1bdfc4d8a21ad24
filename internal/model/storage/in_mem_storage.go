package storage

import (
	"context"
	"sync"

	"max.ks1230/expense-ledger/internal/entity/expense"
)

type InMemStorage struct {
	mu   sync.Mutex
	exps []expense.Expense
}

func NewInMemStorage(seed ...expense.Expense) *InMemStorage {
	return &InMemStorage{exps: clone(seed)}
}

func (s *InMemStorage) Load(_ context.Context) ([]expense.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.exps), nil
}

func (s *InMemStorage) Save(_ context.Context, exps []expense.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exps = clone(exps)
	return nil
}

func clone(exps []expense.Expense) []expense.Expense {
	res := make([]expense.Expense, len(exps))
	copy(res, exps)
	return res
}
