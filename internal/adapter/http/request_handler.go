package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"loandesk-backend/internal/adapter/middleware"
	"loandesk-backend/internal/usecase/processing"
	requestuc "loandesk-backend/internal/usecase/request"
)

type RequestHandler struct {
	uc   *requestuc.Usecase
	proc *processing.Usecase
}

func NewRequestHandler(uc *requestuc.Usecase, proc *processing.Usecase) *RequestHandler {
	return &RequestHandler{uc: uc, proc: proc}
}

type submitReq struct {
	Amount     string `json:"amount"      validate:"required,dec2"`
	TermMonths int    `json:"term_months" validate:"required,gte=1,lte=480"`
}

// Submit files a request for the authenticated customer. The customer id is
// always taken from the token, never from the body.
func (h *RequestHandler) Submit(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	var req submitReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid amount"})
	}

	dto, err := h.uc.Submit(c.Request().Context(), requestuc.SubmitInput{
		CustomerID: p.UserID,
		Amount:     amount,
		TermMonths: req.TermMonths,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *RequestHandler) ListPending(c echo.Context) error {
	out, err := h.uc.ListPending(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RequestHandler) ListCustomerPending(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}
	out, err := h.uc.ListCustomerPending(c.Request().Context(), p.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RequestHandler) ListAll(c echo.Context) error {
	out, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type processReq struct {
	Approved     bool    `json:"approved"`
	InterestRate *string `json:"interest_rate" validate:"omitempty,dec2"`
}

// Process is the banker's approve/reject decision on a pending request.
func (h *RequestHandler) Process(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	requestID := c.Param("id")
	if !reHex32.MatchString(requestID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request id"})
	}

	var req processReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	in := processing.ProcessInput{
		RequestID: requestID,
		BankerID:  p.UserID,
		Approved:  req.Approved,
	}
	if req.InterestRate != nil {
		rate, err := decimal.NewFromString(*req.InterestRate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid interest_rate"})
		}
		in.InterestRate = &rate
	}

	res, err := h.proc.Process(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
