package router

import (
	"go-bank-ledger/handler"
	"net/http"

	_ "go-bank-ledger/docs"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter(accountHandler *handler.AccountHandler, atmHandler *handler.ATMHandler, transactionHandler *handler.TransactionHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	if accountHandler != nil {
		mux.Handle("POST /api/accounts", handler.ErrorHandlingMiddleware(accountHandler.CreateAccount))
		mux.Handle("GET /api/accounts", handler.ErrorHandlingMiddleware(accountHandler.ListAccounts))
		mux.Handle("GET /api/accounts/lookup", handler.ErrorHandlingMiddleware(accountHandler.FindAccountByEmail))
		mux.Handle("GET /api/accounts/{accountId}", handler.ErrorHandlingMiddleware(accountHandler.GetAccount))
		mux.Handle("PATCH /api/accounts/{accountId}", handler.ErrorHandlingMiddleware(accountHandler.UpdateAccount))
	}

	if atmHandler != nil {
		mux.Handle("POST /api/atms", handler.ErrorHandlingMiddleware(atmHandler.CreateATM))
		mux.Handle("GET /api/atms", handler.ErrorHandlingMiddleware(atmHandler.ListATMs))
		mux.Handle("GET /api/atms/{atmId}", handler.ErrorHandlingMiddleware(atmHandler.GetATM))
	}

	if transactionHandler != nil {
		mux.Handle("POST /api/accounts/{accountId}/deposits", handler.ErrorHandlingMiddleware(transactionHandler.Deposit))
		mux.Handle("POST /api/accounts/{accountId}/withdrawals", handler.ErrorHandlingMiddleware(transactionHandler.Withdraw))
		mux.Handle("GET /api/accounts/{accountId}/transactions", handler.ErrorHandlingMiddleware(transactionHandler.ListTransactionsForAccount))
		mux.Handle("POST /api/transfers", handler.ErrorHandlingMiddleware(transactionHandler.CreateTransfer))
	}

	return handler.RequestLogger(mux)
}
