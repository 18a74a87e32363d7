package handler

import (
	"go-bank-ledger/common"
	"go-bank-ledger/model"
	"go-bank-ledger/service"
	"net/http"
)

// ATMHandler holds dependencies for ATM administration handlers.
type ATMHandler struct {
	service *service.ATMService
}

func NewATMHandler(s *service.ATMService) *ATMHandler {
	return &ATMHandler{service: s}
}

// CreateATM godoc
// @Summary      Register an ATM
// @Tags         atms
// @Accept       json
// @Produce      json
// @Param        atm body model.CreateATMRequest true "ATM location"
// @Success      201  {object}  model.ATM
// @Failure      400  {object}  common.AppError
// @Failure      409  {object}  common.AppError "Location already registered"
// @Router       /api/atms [post]
func (h *ATMHandler) CreateATM(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateATMRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	atm, err := h.service.CreateATM(r.Context(), req.Location)
	if err != nil {
		return serviceError(err)
	}

	common.WriteJSON(w, http.StatusCreated, atm)
	return nil
}

// ListATMs godoc
// @Summary      List ATMs
// @Tags         atms
// @Produce      json
// @Success      200  {array}   model.ATM
// @Router       /api/atms [get]
func (h *ATMHandler) ListATMs(w http.ResponseWriter, r *http.Request) *common.AppError {
	atms, err := h.service.ListATMs(r.Context())
	if err != nil {
		return serviceError(err)
	}
	common.WriteJSON(w, http.StatusOK, atms)
	return nil
}

// GetATM godoc
// @Summary      Get an ATM
// @Tags         atms
// @Produce      json
// @Param        atmId path int true "ATM ID"
// @Success      200  {object}  model.ATM
// @Failure      404  {object}  common.AppError
// @Router       /api/atms/{atmId} [get]
func (h *ATMHandler) GetATM(w http.ResponseWriter, r *http.Request) *common.AppError {
	atmID, appErr := pathID(r, "atmId")
	if appErr != nil {
		return appErr
	}

	atm, err := h.service.GetATM(r.Context(), atmID)
	if err != nil {
		return serviceError(err)
	}
	common.WriteJSON(w, http.StatusOK, atm)
	return nil
}
