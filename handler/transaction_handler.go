package handler

import (
	"go-bank-ledger/common"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"
	"go-bank-ledger/service"
	"net/http"

	"github.com/sirupsen/logrus"
)

// TransactionHandler holds dependencies for balance-moving and history handlers.
type TransactionHandler struct {
	ledger  *service.LedgerService
	history *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with its dependencies.
func NewTransactionHandler(ledger *service.LedgerService, history *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{ledger: ledger, history: history}
}

// Deposit godoc
// @Summary      Deposit money into an account
// @Description  Credits the account. When atm_id is given the ATM's cash pool grows by the same amount.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        accountId path int true "Account ID"
// @Param        deposit body model.CashRequest true "Amount and optional ATM"
// @Success      201  {object}  service.OperationResult
// @Failure      400  {object}  common.AppError "Invalid amount"
// @Failure      404  {object}  common.AppError "Account or ATM not found"
// @Failure      503  {object}  common.AppError "Storage failure, safe to retry"
// @Router       /api/accounts/{accountId}/deposits [post]
func (h *TransactionHandler) Deposit(w http.ResponseWriter, r *http.Request) *common.AppError {
	accountID, appErr := pathID(r, "accountId")
	if appErr != nil {
		return appErr
	}

	var req model.CashRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	result, err := h.ledger.Deposit(r.Context(), accountID, req.ATMID, req.Amount)
	if err != nil {
		return serviceError(err)
	}

	common.WriteJSON(w, http.StatusCreated, result)
	return nil
}

// Withdraw godoc
// @Summary      Withdraw money from an account
// @Description  Subject to the account balance, the rolling 24h limit and, when atm_id is given, the ATM's cash.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        accountId path int true "Account ID"
// @Param        withdrawal body model.CashRequest true "Amount and optional ATM"
// @Success      201  {object}  service.OperationResult
// @Failure      400  {object}  common.AppError "Invalid amount"
// @Failure      404  {object}  common.AppError "Account or ATM not found"
// @Failure      422  {object}  common.AppError "Insufficient funds, daily limit exceeded or ATM out of cash"
// @Failure      503  {object}  common.AppError "Storage failure, safe to retry"
// @Router       /api/accounts/{accountId}/withdrawals [post]
func (h *TransactionHandler) Withdraw(w http.ResponseWriter, r *http.Request) *common.AppError {
	accountID, appErr := pathID(r, "accountId")
	if appErr != nil {
		return appErr
	}

	var req model.CashRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	result, err := h.ledger.Withdraw(r.Context(), accountID, req.ATMID, req.Amount)
	if err != nil {
		return serviceError(err)
	}

	common.WriteJSON(w, http.StatusCreated, result)
	return nil
}

// CreateTransfer godoc
// @Summary      Transfer money between accounts
// @Description  Moves value ledger-to-ledger. Not subject to the daily withdrawal limit.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        transfer body model.TransferRequest true "Details of the financial transfer"
// @Success      201  {object}  service.TransferResult
// @Failure      400  {object}  common.AppError "Same account or invalid amount"
// @Failure      404  {object}  common.AppError "Sender or receiver account not found"
// @Failure      422  {object}  common.AppError "Insufficient funds"
// @Failure      503  {object}  common.AppError "Storage failure, safe to retry"
// @Router       /api/transfers [post]
func (h *TransactionHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.TransferRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	logger.Log.WithFields(logrus.Fields{
		"from_account_id": req.FromAccountID,
		"to_account_id":   req.ToAccountID,
	}).Info("Transfer request received")

	result, err := h.ledger.Transfer(r.Context(), req.FromAccountID, req.ToAccountID, req.Amount)
	if err != nil {
		return serviceError(err)
	}

	common.WriteJSON(w, http.StatusCreated, result)
	return nil
}

// ListTransactionsForAccount godoc
// @Summary      List account transaction history
// @Tags         transactions
// @Produce      json
// @Param        accountId path int true "The ID of the account to retrieve transactions for"
// @Success      200  {array}   model.Transaction "Newest first"
// @Failure      400  {object}  common.AppError "Invalid account ID in URL path"
// @Failure      404  {object}  common.AppError "Account with the specified ID not found"
// @Router       /api/accounts/{accountId}/transactions [get]
func (h *TransactionHandler) ListTransactionsForAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	accountID, appErr := pathID(r, "accountId")
	if appErr != nil {
		return appErr
	}

	transactions, err := h.history.ListTransactionsForAccount(r.Context(), accountID)
	if err != nil {
		return serviceError(err)
	}

	common.WriteJSON(w, http.StatusOK, transactions)
	return nil
}
