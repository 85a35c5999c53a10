package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loandesk-backend/internal/adapter/middleware"
	"loandesk-backend/internal/domain/loan"
	loanuc "loandesk-backend/internal/usecase/loan"
)

type LoanHandler struct{ uc *loanuc.Usecase }

func NewLoanHandler(uc *loanuc.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

func (h *LoanHandler) List(c echo.Context) error {
	out, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) ListByCustomer(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}
	customerID := c.Param("customerId")
	if !reHex32.MatchString(customerID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid customer id"})
	}

	out, err := h.uc.ListByCustomer(c.Request().Context(), p.UserID, p.Role, customerID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type updateLoanStatusReq struct {
	Status string `json:"status" validate:"required,oneof=active completed"`
}

func (h *LoanHandler) UpdateStatus(c echo.Context) error {
	loanID := c.Param("id")
	if !reHex32.MatchString(loanID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan id"})
	}

	var req updateLoanStatusReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	dto, err := h.uc.UpdateStatus(c.Request().Context(), loanID, loan.Status(req.Status))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) Schedule(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}
	loanID := c.Param("id")
	if !reHex32.MatchString(loanID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan id"})
	}

	out, err := h.uc.GetSchedule(c.Request().Context(), p.UserID, p.Role, loanID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
