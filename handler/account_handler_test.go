package handler_test

import (
	"go-bank-ledger/common"
	"go-bank-ledger/model"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const annJSON = `{"name":"Ann Lee","job":"Pilot","email":"ann@example.com","address":"1 Main St"}`

func TestAccountHandler_CreateAndFetch(t *testing.T) {
	r := newTestRouter()

	rr := doRequest(r, http.MethodPost, "/api/accounts", annJSON)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var created model.Account
	decodeBody(t, rr, &created)
	assert.Equal(t, 1, created.ID)
	assert.True(t, created.Balance.IsZero())

	rr = doRequest(r, http.MethodGet, "/api/accounts/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var fetched model.Account
	decodeBody(t, rr, &fetched)
	assert.Equal(t, "ann@example.com", fetched.Email)

	rr = doRequest(r, http.MethodGet, "/api/accounts/lookup?email=ann@example.com", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(r, http.MethodGet, "/api/accounts", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var all []model.Account
	decodeBody(t, rr, &all)
	assert.Len(t, all, 1)
}

func TestAccountHandler_Errors(t *testing.T) {
	r := newTestRouter()
	require.Equal(t, http.StatusCreated, doRequest(r, http.MethodPost, "/api/accounts", annJSON).Code)

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		wantCode int
		wantKind string
	}{
		{"duplicate email", http.MethodPost, "/api/accounts", annJSON, http.StatusConflict, "duplicate_email"},
		{"invalid email", http.MethodPost, "/api/accounts", `{"name":"A","job":"B","email":"nope","address":"C"}`, http.StatusBadRequest, "invalid_request"},
		{"missing name", http.MethodPost, "/api/accounts", `{"job":"B","email":"b@example.com","address":"C"}`, http.StatusBadRequest, "invalid_request"},
		{"unknown field", http.MethodPost, "/api/accounts", `{"name":"A","job":"B","email":"b@example.com","address":"C","balance":100}`, http.StatusBadRequest, "invalid_request"},
		{"malformed id", http.MethodGet, "/api/accounts/abc", "", http.StatusBadRequest, "invalid_request"},
		{"missing account", http.MethodGet, "/api/accounts/99", "", http.StatusNotFound, "account_not_found"},
		{"lookup without email", http.MethodGet, "/api/accounts/lookup", "", http.StatusBadRequest, "invalid_request"},
		{"lookup unknown email", http.MethodGet, "/api/accounts/lookup?email=bob@example.com", "", http.StatusNotFound, "account_not_found"},
		{"update missing account", http.MethodPatch, "/api/accounts/99", `{"job":"Chef"}`, http.StatusNotFound, "account_not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(r, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.wantCode, rr.Code, rr.Body.String())
			var appErr common.AppError
			decodeBody(t, rr, &appErr)
			assert.Equal(t, tt.wantKind, appErr.Kind)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}

func TestAccountHandler_UpdateAccount(t *testing.T) {
	r := newTestRouter()
	require.Equal(t, http.StatusCreated, doRequest(r, http.MethodPost, "/api/accounts", annJSON).Code)

	rr := doRequest(r, http.MethodPatch, "/api/accounts/1", `{"job":"Captain"}`)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var updated model.Account
	decodeBody(t, rr, &updated)
	assert.Equal(t, "Captain", updated.Job)
	assert.Equal(t, "Ann Lee", updated.Name)
}
