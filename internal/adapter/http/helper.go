package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"loandesk-backend/internal/domain/loan"
	"loandesk-backend/internal/domain/request"
	"loandesk-backend/internal/domain/user"
	loanuc "loandesk-backend/internal/usecase/loan"
	"loandesk-backend/internal/usecase/processing"
	requestuc "loandesk-backend/internal/usecase/request"
)

// writeError maps domain sentinels onto HTTP responses. Anything unmapped is
// a 500 with a generic body so storage details never leak to clients.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, requestuc.ErrInvalidInput),
		errors.Is(err, processing.ErrInterestRateRequired),
		errors.Is(err, loan.ErrInvalidTransition):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	case errors.Is(err, user.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})

	case errors.Is(err, user.ErrBankerNotApproved),
		errors.Is(err, loanuc.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})

	case errors.Is(err, user.ErrNotFound),
		errors.Is(err, request.ErrNotFound),
		errors.Is(err, loan.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	case errors.Is(err, user.ErrEmailTaken),
		errors.Is(err, request.ErrAlreadyProcessed):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, processing.ErrInsufficientFunds):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Code: "insufficient_funds"})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

func badBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
}

func validationFailed(c echo.Context, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation failed",
		Details: ToFieldErrors(err),
	})
}
