package transport

import (
	"errors"
	"net/http"

	"shopstock/internal/middleware"
	"shopstock/internal/service"
	"shopstock/internal/store"

	"go.uber.org/zap"
)

// respondServiceError maps the shared error taxonomy onto HTTP statuses:
// not-found sentinels become 404, the stock floor 409, policy refusals
// 403, uniqueness conflicts 409 and everything else 500.
func respondServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, store.ErrProductNotFound),
		errors.Is(err, store.ErrProviderNotFound),
		errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrOrderNotFound),
		errors.Is(err, store.ErrSaleNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrProductCodeExists),
		errors.Is(err, store.ErrUserEmailExists),
		errors.Is(err, service.ErrInsufficientStock):
		middleware.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrForbidden):
		middleware.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNoLines),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidPayment),
		errors.Is(err, service.ErrProductInactive):
		middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("Unexpected error", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeAndRespond handles the shared decode/validate error path. It
// reports true when the request was rejected and a response already
// written.
func decodeAndRespond(w http.ResponseWriter, r *http.Request, logger *zap.Logger, v interface{}) bool {
	if err := middleware.DecodeAndValidate(r, v); err != nil {
		logger.Debug("Request validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return true
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return true
	}
	return false
}
