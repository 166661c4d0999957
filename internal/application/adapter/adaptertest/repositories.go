// Package adaptertest provides in-memory adapter implementations for use case tests.
package adaptertest

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finanzas-pro/backend/internal/domain/entity"
	domainerror "github.com/finanzas-pro/backend/internal/domain/error"
)

// ErrForced is returned by repositories whose Err field is set to it.
var ErrForced = errors.New("forced repository failure")

// TransactionRepository is an in-memory adapter.TransactionRepository.
type TransactionRepository struct {
	mu    sync.Mutex
	items map[uuid.UUID]*entity.Transaction
	Err   error
}

// NewTransactionRepository returns a repository filled with the given transactions.
func NewTransactionRepository(transactions ...*entity.Transaction) *TransactionRepository {
	repo := &TransactionRepository{items: make(map[uuid.UUID]*entity.Transaction)}
	for _, t := range transactions {
		repo.items[t.ID] = clone(t)
	}
	return repo
}

func (r *TransactionRepository) Create(_ context.Context, transaction *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.items[transaction.ID] = clone(transaction)
	return nil
}

func (r *TransactionRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	t, ok := r.items[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	return clone(t), nil
}

func (r *TransactionRepository) FindAll(_ context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	result := make([]*entity.Transaction, 0, len(r.items))
	for _, t := range r.items {
		if filter.Matches(t) {
			result = append(result, clone(t))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date > result[j].Date
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *TransactionRepository) Replace(_ context.Context, transaction *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.items[transaction.ID]; !ok {
		return domainerror.ErrTransactionNotFound
	}
	r.items[transaction.ID] = clone(transaction)
	return nil
}

func (r *TransactionRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.items[id]; !ok {
		return domainerror.ErrTransactionNotFound
	}
	delete(r.items, id)
	return nil
}

// Len returns the number of stored transactions.
func (r *TransactionRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

func clone(t *entity.Transaction) *entity.Transaction {
	c := *t
	return &c
}

// FixedExpenseRepository is an in-memory adapter.FixedExpenseRepository.
type FixedExpenseRepository struct {
	mu    sync.Mutex
	items map[uuid.UUID]*entity.FixedExpense
	Err   error
}

// NewFixedExpenseRepository returns a repository filled with the given templates.
func NewFixedExpenseRepository(templates ...*entity.FixedExpense) *FixedExpenseRepository {
	repo := &FixedExpenseRepository{items: make(map[uuid.UUID]*entity.FixedExpense)}
	for _, f := range templates {
		c := *f
		repo.items[f.ID] = &c
	}
	return repo
}

func (r *FixedExpenseRepository) Create(_ context.Context, fixedExpense *entity.FixedExpense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	c := *fixedExpense
	r.items[fixedExpense.ID] = &c
	return nil
}

func (r *FixedExpenseRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.FixedExpense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	f, ok := r.items[id]
	if !ok {
		return nil, domainerror.ErrFixedExpenseNotFound
	}
	c := *f
	return &c, nil
}

func (r *FixedExpenseRepository) FindAll(_ context.Context) ([]*entity.FixedExpense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	result := make([]*entity.FixedExpense, 0, len(r.items))
	for _, f := range r.items {
		c := *f
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].DayOrDefault() != result[j].DayOrDefault() {
			return result[i].DayOrDefault() < result[j].DayOrDefault()
		}
		return result[i].Description < result[j].Description
	})
	return result, nil
}

func (r *FixedExpenseRepository) Update(_ context.Context, fixedExpense *entity.FixedExpense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.items[fixedExpense.ID]; !ok {
		return domainerror.ErrFixedExpenseNotFound
	}
	c := *fixedExpense
	r.items[fixedExpense.ID] = &c
	return nil
}

func (r *FixedExpenseRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.items[id]; !ok {
		return domainerror.ErrFixedExpenseNotFound
	}
	delete(r.items, id)
	return nil
}

// CategoryRepository is an in-memory adapter.CategoryRepository.
type CategoryRepository struct {
	mu  sync.Mutex
	set *entity.CategorySet
	Err error
}

// NewCategoryRepository returns a repository holding set. A nil set means nothing stored yet.
func NewCategoryRepository(set *entity.CategorySet) *CategoryRepository {
	return &CategoryRepository{set: set}
}

func (r *CategoryRepository) Load(_ context.Context) (*entity.CategorySet, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, false, r.Err
	}
	if r.set == nil {
		return nil, false, nil
	}
	return copySet(r.set), true, nil
}

func (r *CategoryRepository) Seed(_ context.Context, set *entity.CategorySet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if r.set == nil {
		r.set = copySet(set)
	}
	return nil
}

func (r *CategoryRepository) Append(_ context.Context, categoryType entity.TransactionType, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if r.set == nil {
		r.set = &entity.CategorySet{}
	}
	return r.set.Add(categoryType, name)
}

func (r *CategoryRepository) Remove(_ context.Context, categoryType entity.TransactionType, name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	if r.set == nil {
		return 0, nil
	}
	before := len(r.set.List(categoryType))
	r.set.Remove(categoryType, name)
	return int64(before - len(r.set.List(categoryType))), nil
}

func copySet(set *entity.CategorySet) *entity.CategorySet {
	return &entity.CategorySet{
		Income:  append([]string(nil), set.Income...),
		Expense: append([]string(nil), set.Expense...),
	}
}

// Clock is a settable adapter.Clock.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock returns a clock stopped at now.
func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

// Now returns the configured time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock.
func (c *Clock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}
