package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adesai/billbridge/internal/pkg/apperrors"
	"github.com/adesai/billbridge/internal/pkg/models"
	"github.com/adesai/billbridge/internal/utils"
	"github.com/adesai/billbridge/services/auth"
)

// AuthHandler handles HTTP requests for OTP operations
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth HTTP handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// RegisterRoutes registers the auth handler routes
func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	otpGroup := e.Group("/api/otp")
	otpGroup.POST("/send", h.SendOTP)
	otpGroup.POST("/verify", h.VerifyOTP)
}

// SendOTP issues a single-use code to an identity
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	resp, err := h.authUC.SendOTP(c.Request().Context(), &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, resp.Message, resp)
}

// VerifyOTP checks a previously issued code
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	outcome, err := h.authUC.VerifyOTP(c.Request().Context(), &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	if outcome != models.OTPVerified {
		return utils.ErrorResponseHandler(c, http.StatusBadRequest, "OTP "+outcome.String())
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP verified", echo.Map{
		"identity": req.Identity,
		"outcome":  outcome.String(),
	})
}
