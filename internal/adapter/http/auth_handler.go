package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loandesk-backend/internal/domain/user"
	"loandesk-backend/internal/usecase/auth"
)

type AuthHandler struct{ uc *auth.Usecase }

func NewAuthHandler(uc *auth.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

type registerReq struct {
	Name     string `json:"name"      validate:"required,min=2"`
	Age      int    `json:"age"       validate:"required,gte=18,lte=120"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	Phone    string `json:"phone"     validate:"required,min=6"`
	Role     string `json:"role"      validate:"required,oneof=customer banker admin"`
	BankerID string `json:"banker_id" validate:"omitempty,min=2"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	res, err := h.uc.Register(c.Request().Context(), auth.RegisterInput{
		Name:     req.Name,
		Age:      req.Age,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     user.Role(req.Role),
		BankerID: req.BankerID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

type loginReq struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	res, err := h.uc.Login(c.Request().Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
