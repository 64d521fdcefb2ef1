// Package handler contains the HTTP handlers of the dev account service.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "cabinet/internal/delivery/context"
	"cabinet/internal/delivery/http/response"
	domainerrors "cabinet/internal/domain/errors"
	"cabinet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler serves the account endpoints.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Login handles POST /api/accounts/login.
func (h *AccountHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, output)
}

// GetMe handles GET /api/accounts/me.
func (h *AccountHandler) GetMe(c echo.Context) error {
	guid, err := accountGUID(c)
	if err != nil {
		return err
	}

	account, err := h.uc.GetAccount(c.Request().Context(), guid)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, account)
}

// UpdateUsername handles PUT /api/accounts/updateUsername.
func (h *AccountHandler) UpdateUsername(c echo.Context) error {
	guid, err := accountGUID(c)
	if err != nil {
		return err
	}

	var input usecase.ChangeUsernameInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid username input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	account, err := h.uc.ChangeUsername(c.Request().Context(), guid, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, account)
}

// UpdateLastActive handles PUT /api/accounts/updateLastActive.
func (h *AccountHandler) UpdateLastActive(c echo.Context) error {
	guid, err := accountGUID(c)
	if err != nil {
		return err
	}

	if err := h.uc.RecordActivity(c.Request().Context(), guid); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteMe handles DELETE /api/accounts/me.
func (h *AccountHandler) DeleteMe(c echo.Context) error {
	guid, err := accountGUID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), guid); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}

func accountGUID(c echo.Context) (string, error) {
	guid, ok := deliverycontext.GetAccountGUID(c)
	if !ok {
		return "", errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return guid, nil
}
