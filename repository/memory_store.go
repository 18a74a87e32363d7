package repository

import (
	"context"
	"fmt"
	"go-bank-ledger/model"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// MemoryStore keeps accounts, ATMs and transactions in process memory.
//
// A scope holds the store mutex from start to finish, so scopes are fully
// serialized. Writes made inside a scope are staged and only applied when the
// scope body returns nil. Code running inside a scope must not call the
// non-scope methods of the same store.
type MemoryStore struct {
	mu sync.Mutex
	// now stamps created_at on accounts and ATMs.
	now func() time.Time

	accounts     map[int]*model.Account
	atms         map[int]*model.ATM
	transactions []*model.Transaction

	lastAccountID     int
	lastATMID         int
	lastTransactionID int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:      time.Now,
		accounts: make(map[int]*model.Account),
		atms:     make(map[int]*model.ATM),
	}
}

// Backend exposes the store behind every repository contract.
func (m *MemoryStore) Backend() Backend {
	return Backend{Store: m, Accounts: m, ATMs: m, Transactions: m}
}

func (m *MemoryStore) CreateAccount(_ context.Context, account *model.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.emailTaken(account.Email, 0) {
		return fmt.Errorf("email %q: %w", account.Email, ErrDuplicate)
	}
	m.lastAccountID++
	account.ID = m.lastAccountID
	account.Balance = decimal.Zero
	account.CreatedAt = m.now()

	stored := *account
	m.accounts[stored.ID] = &stored
	return nil
}

func (m *MemoryStore) GetAccountByID(_ context.Context, accountID int) (*model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	acc, ok := m.accounts[accountID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *acc
	return &cp, nil
}

func (m *MemoryStore) GetAccountByEmail(_ context.Context, email string) (*model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, acc := range m.accounts {
		if acc.Email == email {
			cp := *acc
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) GetAllAccounts(_ context.Context) ([]*model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*model.Account, 0, len(m.accounts))
	for _, acc := range m.accounts {
		cp := *acc
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryStore) UpdateAccountDetails(_ context.Context, account *model.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.accounts[account.ID]
	if !ok {
		return ErrNotFound
	}
	if m.emailTaken(account.Email, account.ID) {
		return fmt.Errorf("email %q: %w", account.Email, ErrDuplicate)
	}
	stored.Name = account.Name
	stored.Job = account.Job
	stored.Email = account.Email
	stored.Address = account.Address
	return nil
}

// emailTaken must be called with mu held.
func (m *MemoryStore) emailTaken(email string, exceptID int) bool {
	for id, acc := range m.accounts {
		if id != exceptID && acc.Email == email {
			return true
		}
	}
	return false
}

func (m *MemoryStore) CreateATM(_ context.Context, atm *model.ATM) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.atms {
		if existing.Location == atm.Location {
			return fmt.Errorf("location %q: %w", atm.Location, ErrDuplicate)
		}
	}
	m.lastATMID++
	atm.ID = m.lastATMID
	atm.Balance = decimal.Zero
	atm.CreatedAt = m.now()

	stored := *atm
	m.atms[stored.ID] = &stored
	return nil
}

func (m *MemoryStore) GetATMByID(_ context.Context, atmID int) (*model.ATM, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	atm, ok := m.atms[atmID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *atm
	return &cp, nil
}

func (m *MemoryStore) GetAllATMs(_ context.Context) ([]*model.ATM, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*model.ATM, 0, len(m.atms))
	for _, atm := range m.atms {
		cp := *atm
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryStore) GetTransactionsByAccountID(_ context.Context, accountID int) ([]*model.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*model.Transaction, 0)
	for i := len(m.transactions) - 1; i >= 0; i-- {
		t := m.transactions[i]
		if t.AccountID == accountID {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *MemoryStore) WithinScope(ctx context.Context, fn func(Scope) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	scope := &memoryScope{
		store:           m,
		accountBalances: make(map[int]decimal.Decimal),
		atmBalances:     make(map[int]decimal.Decimal),
	}
	if err := fn(scope); err != nil {
		return err
	}
	scope.apply()
	return nil
}

// memoryScope stages balance writes and appended records until apply.
type memoryScope struct {
	store           *MemoryStore
	accountBalances map[int]decimal.Decimal
	atmBalances     map[int]decimal.Decimal
	pending         []*model.Transaction
}

func (s *memoryScope) GetAccountForUpdate(_ context.Context, accountID int) (*model.Account, error) {
	acc, ok := s.store.accounts[accountID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *acc
	if bal, staged := s.accountBalances[accountID]; staged {
		cp.Balance = bal
	}
	return &cp, nil
}

func (s *memoryScope) GetATMForUpdate(_ context.Context, atmID int) (*model.ATM, error) {
	atm, ok := s.store.atms[atmID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *atm
	if bal, staged := s.atmBalances[atmID]; staged {
		cp.Balance = bal
	}
	return &cp, nil
}

func (s *memoryScope) UpdateAccountBalance(_ context.Context, accountID int, newBalance decimal.Decimal) error {
	if _, ok := s.store.accounts[accountID]; !ok {
		return ErrNotFound
	}
	if newBalance.IsNegative() {
		return fmt.Errorf("account %d balance %s: %w", accountID, newBalance, ErrConstraint)
	}
	s.accountBalances[accountID] = newBalance
	return nil
}

func (s *memoryScope) UpdateATMBalance(_ context.Context, atmID int, newBalance decimal.Decimal) error {
	if _, ok := s.store.atms[atmID]; !ok {
		return ErrNotFound
	}
	if newBalance.IsNegative() {
		return fmt.Errorf("atm %d balance %s: %w", atmID, newBalance, ErrConstraint)
	}
	s.atmBalances[atmID] = newBalance
	return nil
}

func (s *memoryScope) CreateTransaction(_ context.Context, transaction *model.Transaction) error {
	if _, ok := s.store.accounts[transaction.AccountID]; !ok {
		return fmt.Errorf("transaction owner %d: %w", transaction.AccountID, ErrNotFound)
	}
	if !transaction.Amount.IsPositive() || !transaction.Type.Valid() {
		return fmt.Errorf("transaction %s %s: %w", transaction.Type, transaction.Amount, ErrConstraint)
	}
	s.store.lastTransactionID++
	transaction.ID = s.store.lastTransactionID

	stored := *transaction
	s.pending = append(s.pending, &stored)
	return nil
}

func (s *memoryScope) SumWithdrawnSince(_ context.Context, accountID int, since time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	sum := func(records []*model.Transaction) {
		for _, t := range records {
			if t.AccountID == accountID && t.Type == model.TransactionWithdraw && !t.CreatedAt.Before(since) {
				total = total.Add(t.Amount)
			}
		}
	}
	sum(s.store.transactions)
	sum(s.pending)
	return total, nil
}

func (s *memoryScope) apply() {
	for id, bal := range s.accountBalances {
		s.store.accounts[id].Balance = bal
	}
	for id, bal := range s.atmBalances {
		s.store.atms[id].Balance = bal
	}
	s.store.transactions = append(s.store.transactions, s.pending...)
}

var (
	_ Store                  = (*MemoryStore)(nil)
	_ IAccountRepository     = (*MemoryStore)(nil)
	_ IATMRepository         = (*MemoryStore)(nil)
	_ ITransactionRepository = (*MemoryStore)(nil)
)
