// service/main_test.go
package service

import (
	"context"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"
	"go-bank-ledger/repository"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// TestMain runs setup before any tests in this package are executed.
func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// fakeClock is a settable clock shared by the engine under test.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// failingStore runs scopes on an inner store but fails every transaction insert.
type failingStore struct {
	inner repository.Store
	err   error
}

func (f failingStore) WithinScope(ctx context.Context, fn func(repository.Scope) error) error {
	return f.inner.WithinScope(ctx, func(s repository.Scope) error {
		return fn(failingScope{Scope: s, err: f.err})
	})
}

type failingScope struct {
	repository.Scope
	err error
}

func (f failingScope) CreateTransaction(context.Context, *model.Transaction) error {
	return f.err
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func intPtr(v int) *int { return &v }
