package handler

import (
	"log/slog"
	"net/http"
	"time"

	"localharvest/config"
	"localharvest/internal/delivery/api/response"
	deliverycontext "localharvest/internal/delivery/context"
	"localharvest/internal/domain/entity"
	"localharvest/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type AuthHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler serves registration, login, logout and the current profile.
type AuthHandler struct {
	userUC       usecase.UserUsecase
	cookieName   string
	cookieSecure bool
	logger       *slog.Logger
}

func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		userUC:       params.UserUC,
		cookieName:   params.Config.Auth.CookieName,
		cookieSecure: params.Config.Auth.CookieSecure,
		logger:       params.Logger,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=buyer seller"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
	FarmName string `json:"farm_name" validate:"omitempty,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        *userView `json:"user"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	user, err := h.userUC.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
		Phone:    req.Phone,
		FarmName: req.FarmName,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, "Account created", newUserView(user))
}

// Login returns the token in the body and also sets it as an HTTP-only session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	output, err := h.userUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.SetCookie(h.sessionCookie(output.AccessToken, output.ExpiresAt))

	return response.SuccessWithMessage(c, http.StatusOK, "Login successful", loginResponse{
		AccessToken: output.AccessToken,
		ExpiresAt:   output.ExpiresAt,
		User:        newUserView(output.User),
	})
}

// Logout expires the session cookie. Tokens are stateless, so there is nothing to revoke server-side.
func (h *AuthHandler) Logout(c echo.Context) error {
	cookie := h.sessionCookie("", time.Unix(0, 0))
	cookie.MaxAge = -1
	c.SetCookie(cookie)

	return response.SuccessWithMessage(c, http.StatusOK, "Logged out", nil)
}

func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserView(user))
}

func (h *AuthHandler) sessionCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
