package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	useruc "loandesk-backend/internal/usecase/user"
)

type UserHandler struct{ uc *useruc.Usecase }

func NewUserHandler(uc *useruc.Usecase) *UserHandler { return &UserHandler{uc: uc} }

func (h *UserHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Absent fields are left untouched. Balances travel as decimal strings.
type updateUserReq struct {
	IsApproved     *bool   `json:"is_approved"`
	AccountBalance *string `json:"account_balance" validate:"omitempty,dec2"`
	WalletBalance  *string `json:"wallet_balance"  validate:"omitempty,dec2"`
}

func (h *UserHandler) Update(c echo.Context) error {
	userID := c.Param("id")
	if !reHex32.MatchString(userID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
	}

	var req updateUserReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	in := useruc.UpdateInput{IsApproved: req.IsApproved}
	if req.AccountBalance != nil {
		d, err := decimal.NewFromString(*req.AccountBalance)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid account_balance"})
		}
		in.AccountBalance = &d
	}
	if req.WalletBalance != nil {
		d, err := decimal.NewFromString(*req.WalletBalance)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid wallet_balance"})
		}
		in.WalletBalance = &d
	}

	dto, err := h.uc.Update(c.Request().Context(), userID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *UserHandler) Delete(c echo.Context) error {
	userID := c.Param("id")
	if !reHex32.MatchString(userID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
	}
	if err := h.uc.Delete(c.Request().Context(), userID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
