// Package handler contains the HTTP handlers for the API.
package handler

import (
	"net/http"
	"time"

	"accounts/internal/delivery/api/response"
	"accounts/internal/delivery/api/validator"
	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler exposes the account usecase over HTTP.
type AccountHandler struct {
	uc usecase.AccountUsecase
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// Blank fields are not rejected here; the usecase reports them in a fixed order.

// RegisterRequest is the body of POST /users/register.
type RegisterRequest struct {
	Name            string `json:"name" validate:"max=100"`
	Email           string `json:"email" validate:"omitempty,email,max=255"`
	Phone           string `json:"phone" validate:"max=32"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmpassword"`
}

// LoginRequest is the body of POST /users/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"max=255"`
	Password string `json:"password"`
}

// EditAccountRequest is the body of PATCH /users/edit/:id.
type EditAccountRequest struct {
	Name            string `json:"name" validate:"max=100"`
	Email           string `json:"email" validate:"omitempty,email,max=255"`
	Phone           string `json:"phone" validate:"max=32"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmpassword"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token     string          `json:"token"`
	ExpiresIn int64           `json:"expiresIn"` // Token lifetime in seconds.
	AccountID uuid.UUID       `json:"accountId"`
	Account   *entity.Account `json:"account"`
}

// AccountResponse wraps a single account.
type AccountResponse struct {
	Account *entity.Account `json:"account"`
}

// DeleteResponse reports what a deletion removed.
type DeleteResponse struct {
	DeletedPosts int64 `json:"deletedPosts"`
}

// Register handles account registration.
func (h *AccountHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(output))
}

// Login handles credential login.
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(output))
}

// GetSelf returns the caller's own account.
func (h *AccountHandler) GetSelf(c echo.Context) error {
	token, _ := deliverycontext.GetBearerToken(c)

	account, err := h.uc.GetSelf(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, AccountResponse{Account: account})
}

// GetByID is the public account lookup.
func (h *AccountHandler) GetByID(c echo.Context) error {
	account, err := h.uc.GetByID(c.Request().Context(), pathAccountID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, AccountResponse{Account: account})
}

// EditAccount updates the caller's own profile.
func (h *AccountHandler) EditAccount(c echo.Context) error {
	var req EditAccountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, _ := deliverycontext.GetBearerToken(c)

	account, err := h.uc.EditAccount(c.Request().Context(), pathAccountID(c), token, &usecase.EditAccountInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, AccountResponse{Account: account})
}

// DeleteAccount removes the caller's account and its posts.
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	token, _ := deliverycontext.GetBearerToken(c)

	output, err := h.uc.DeleteAccount(c.Request().Context(), pathAccountID(c), token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, DeleteResponse{DeletedPosts: output.DeletedPosts})
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Request body could not be decoded").SetInternal(err)
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(validator.Describe(err)))
	}

	return nil
}

// pathAccountID parses :id. A malformed id becomes uuid.Nil, which matches no
// account and no token.
func pathAccountID(c echo.Context) uuid.UUID {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil
	}

	return id
}

func toAuthResponse(output *usecase.AuthOutput) AuthResponse {
	return AuthResponse{
		Token:     output.Token,
		ExpiresIn: int64(output.ExpiresIn / time.Second),
		AccountID: output.AccountID,
		Account:   output.Account,
	}
}
