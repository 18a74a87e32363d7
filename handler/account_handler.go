package handler

import (
	"go-bank-ledger/common"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"
	"go-bank-ledger/service"
	"net/http"

	"github.com/sirupsen/logrus"
)

type AccountHandler struct {
	service *service.AccountService
}

func NewAccountHandler(service *service.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// CreateAccount godoc
// @Summary      Open a bank account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        account body model.CreateAccountRequest true "Account holder details"
// @Success      201  {object}  model.Account
// @Failure      400  {object}  common.AppError
// @Failure      409  {object}  common.AppError "Email already registered"
// @Router       /api/accounts [post]
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateAccountRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	logger.Log.WithField("email", req.Email).Info("Create account request received")

	account, err := h.service.CreateAccount(r.Context(), req)
	if err != nil {
		return serviceError(err)
	}

	common.WriteJSON(w, http.StatusCreated, account)
	return nil
}

// ListAccounts godoc
// @Summary      List all accounts
// @Tags         accounts
// @Produce      json
// @Success      200  {array}   model.Account
// @Router       /api/accounts [get]
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) *common.AppError {
	accounts, err := h.service.ListAccounts(r.Context())
	if err != nil {
		return serviceError(err)
	}

	common.WriteJSON(w, http.StatusOK, accounts)
	return nil
}

// GetAccount godoc
// @Summary      Get an account
// @Tags         accounts
// @Produce      json
// @Param        accountId path int true "Account ID"
// @Success      200  {object}  model.Account
// @Failure      404  {object}  common.AppError
// @Router       /api/accounts/{accountId} [get]
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	accountID, appErr := pathID(r, "accountId")
	if appErr != nil {
		return appErr
	}

	account, err := h.service.GetAccount(r.Context(), accountID)
	if err != nil {
		return serviceError(err)
	}

	common.WriteJSON(w, http.StatusOK, account)
	return nil
}

// FindAccountByEmail godoc
// @Summary      Look an account up by email
// @Tags         accounts
// @Produce      json
// @Param        email query string true "Exact email address"
// @Success      200  {object}  model.Account
// @Failure      400  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /api/accounts/lookup [get]
func (h *AccountHandler) FindAccountByEmail(w http.ResponseWriter, r *http.Request) *common.AppError {
	email := r.URL.Query().Get("email")
	if err := common.ValidateVar(email, "required,email"); err != nil {
		return common.NewAppError(http.StatusBadRequest, "A valid email query parameter is required", nil).WithKind("invalid_request")
	}

	account, err := h.service.FindByEmail(r.Context(), email)
	if err != nil {
		return serviceError(err)
	}

	common.WriteJSON(w, http.StatusOK, account)
	return nil
}

// UpdateAccount godoc
// @Summary      Update account holder details
// @Description  Only the supplied fields change. Balance cannot be edited.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        accountId path int true "Account ID"
// @Param        account body model.UpdateAccountRequest true "Fields to change"
// @Success      200  {object}  model.Account
// @Failure      400  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Failure      409  {object}  common.AppError "Email already registered"
// @Router       /api/accounts/{accountId} [patch]
func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	accountID, appErr := pathID(r, "accountId")
	if appErr != nil {
		return appErr
	}

	var req model.UpdateAccountRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	logger.Log.WithFields(logrus.Fields{
		"account_id": accountID,
	}).Info("Update account request received")

	account, err := h.service.UpdateAccount(r.Context(), accountID, req)
	if err != nil {
		return serviceError(err)
	}

	common.WriteJSON(w, http.StatusOK, account)
	return nil
}
