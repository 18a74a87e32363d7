package handler_test

import (
	"fmt"
	"go-bank-ledger/common"
	"go-bank-ledger/model"
	"go-bank-ledger/service"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAccounts(t *testing.T, r http.Handler, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		body := fmt.Sprintf(`{"name":"Holder %d","job":"Tester","email":"holder%d@example.com","address":"%d Test Rd"}`, i, i, i)
		require.Equal(t, http.StatusCreated, doRequest(r, http.MethodPost, "/api/accounts", body).Code)
	}
}

func TestTransactionHandler_DepositAndWithdraw(t *testing.T) {
	r := newTestRouter()
	seedAccounts(t, r, 1)
	require.Equal(t, http.StatusCreated, doRequest(r, http.MethodPost, "/api/atms", `{"location":"Harbour"}`).Code)

	rr := doRequest(r, http.MethodPost, "/api/accounts/1/deposits", `{"amount":"1000","atm_id":1}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var deposit service.OperationResult
	decodeBody(t, rr, &deposit)
	assert.Equal(t, "1000", deposit.Balance.String())
	require.NotNil(t, deposit.ATMBalance)
	assert.Equal(t, "1000", deposit.ATMBalance.String())

	rr = doRequest(r, http.MethodPost, "/api/accounts/1/withdrawals", `{"amount":250.5}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var withdrawal service.OperationResult
	decodeBody(t, rr, &withdrawal)
	assert.Equal(t, "749.5", withdrawal.Balance.String())
	assert.Equal(t, model.TransactionWithdraw, withdrawal.Transaction.Type)

	rr = doRequest(r, http.MethodGet, "/api/accounts/1/transactions", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var history []model.Transaction
	decodeBody(t, rr, &history)
	require.Len(t, history, 2)
	assert.Equal(t, model.TransactionWithdraw, history[0].Type)
}

func TestTransactionHandler_Errors(t *testing.T) {
	r := newTestRouter()
	seedAccounts(t, r, 2)
	require.Equal(t, http.StatusCreated, doRequest(r, http.MethodPost, "/api/atms", `{"location":"Harbour"}`).Code)
	require.Equal(t, http.StatusCreated, doRequest(r, http.MethodPost, "/api/accounts/1/deposits", `{"amount":"100"}`).Code)

	tests := []struct {
		name     string
		path     string
		body     string
		wantCode int
		wantKind string
	}{
		{"zero deposit", "/api/accounts/1/deposits", `{"amount":"0"}`, http.StatusBadRequest, "invalid_amount"},
		{"negative withdrawal", "/api/accounts/1/withdrawals", `{"amount":"-5"}`, http.StatusBadRequest, "invalid_amount"},
		{"sub-cent deposit", "/api/accounts/1/deposits", `{"amount":"0.004"}`, http.StatusBadRequest, "invalid_amount"},
		{"sub-cent withdrawal", "/api/accounts/1/withdrawals", `{"amount":"0.005"}`, http.StatusBadRequest, "invalid_amount"},
		{"sub-cent transfer", "/api/transfers", `{"from_account_id":1,"to_account_id":2,"amount":"1.005"}`, http.StatusBadRequest, "invalid_transfer"},
		{"unknown account", "/api/accounts/9/deposits", `{"amount":"5"}`, http.StatusNotFound, "account_not_found"},
		{"unknown ATM", "/api/accounts/1/withdrawals", `{"amount":"5","atm_id":9}`, http.StatusNotFound, "atm_not_found"},
		{"invalid ATM id", "/api/accounts/1/withdrawals", `{"amount":"5","atm_id":-1}`, http.StatusBadRequest, "invalid_request"},
		{"overdraft", "/api/accounts/1/withdrawals", `{"amount":"100.01"}`, http.StatusUnprocessableEntity, "insufficient_funds"},
		{"empty ATM", "/api/accounts/1/withdrawals", `{"amount":"50","atm_id":1}`, http.StatusUnprocessableEntity, "atm_insufficient_cash"},
		{"self transfer", "/api/transfers", `{"from_account_id":1,"to_account_id":1,"amount":"5"}`, http.StatusBadRequest, "invalid_transfer"},
		{"transfer missing ids", "/api/transfers", `{"amount":"5"}`, http.StatusBadRequest, "invalid_request"},
		{"transfer overdraft", "/api/transfers", `{"from_account_id":2,"to_account_id":1,"amount":"5"}`, http.StatusUnprocessableEntity, "insufficient_funds"},
		{"bad JSON", "/api/transfers", `{"from_account_id":`, http.StatusBadRequest, "invalid_request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(r, http.MethodPost, tt.path, tt.body)

			assert.Equal(t, tt.wantCode, rr.Code, rr.Body.String())
			var appErr common.AppError
			decodeBody(t, rr, &appErr)
			assert.Equal(t, tt.wantKind, appErr.Kind)
		})
	}
}

func TestTransactionHandler_DailyLimit(t *testing.T) {
	r := newTestRouter()
	seedAccounts(t, r, 1)
	require.Equal(t, http.StatusCreated, doRequest(r, http.MethodPost, "/api/accounts/1/deposits", `{"amount":"10000"}`).Code)
	require.Equal(t, http.StatusCreated, doRequest(r, http.MethodPost, "/api/accounts/1/withdrawals", `{"amount":"4999"}`).Code)

	rr := doRequest(r, http.MethodPost, "/api/accounts/1/withdrawals", `{"amount":"2"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	var appErr common.AppError
	decodeBody(t, rr, &appErr)
	assert.Equal(t, "daily_limit_exceeded", appErr.Kind)
	assert.Contains(t, appErr.Message, "$5000.00")
}

func TestTransactionHandler_Transfer(t *testing.T) {
	r := newTestRouter()
	seedAccounts(t, r, 2)
	require.Equal(t, http.StatusCreated, doRequest(r, http.MethodPost, "/api/accounts/1/deposits", `{"amount":"1000"}`).Code)
	require.Equal(t, http.StatusCreated, doRequest(r, http.MethodPost, "/api/accounts/2/deposits", `{"amount":"200"}`).Code)

	rr := doRequest(r, http.MethodPost, "/api/transfers", `{"from_account_id":1,"to_account_id":2,"amount":"300"}`)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var result service.TransferResult
	decodeBody(t, rr, &result)
	assert.Equal(t, "700", result.FromBalance.String())
	assert.Equal(t, "500", result.ToBalance.String())
	assert.Equal(t, model.TransactionTransferOut, result.Outgoing.Type)
	assert.Equal(t, model.TransactionTransferIn, result.Incoming.Type)
}
