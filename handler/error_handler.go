package handler

import (
	"errors"
	"go-bank-ledger/common"
	"go-bank-ledger/service"
	"net/http"
	"strconv"
)

func ErrorHandlingMiddleware(next func(http.ResponseWriter, *http.Request) *common.AppError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := next(w, r); err != nil {
			err.Send(w)
		}
	}
}

// serviceError maps a typed service failure onto an HTTP status.
func serviceError(err error) *common.AppError {
	var le *service.LedgerError
	if !errors.As(err, &le) {
		return common.NewAppError(http.StatusInternalServerError, "Internal server error", err).WithKind("internal")
	}

	var status int
	switch le.Kind {
	case service.KindInvalidAmount, service.KindInvalidTransfer:
		status = http.StatusBadRequest
	case service.KindAccountNotFound, service.KindATMNotFound:
		status = http.StatusNotFound
	case service.KindDuplicateEmail, service.KindDuplicateLocation:
		status = http.StatusConflict
	case service.KindInsufficientFunds, service.KindDailyLimitExceeded, service.KindATMInsufficientCash:
		status = http.StatusUnprocessableEntity
	case service.KindStorage:
		return common.NewAppError(http.StatusServiceUnavailable, "Storage unavailable, please retry", err).WithKind(le.Kind.String())
	default:
		status = http.StatusInternalServerError
	}
	return common.NewAppError(status, le.Error(), nil).WithKind(le.Kind.String())
}

// pathID parses a positive integer path parameter.
func pathID(r *http.Request, name string) (int, *common.AppError) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil || id <= 0 {
		return 0, common.NewAppError(http.StatusBadRequest, "Invalid "+name+" in URL path", err).WithKind("invalid_request")
	}
	return id, nil
}
