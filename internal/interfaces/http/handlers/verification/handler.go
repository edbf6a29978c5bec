package verification

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dbug/internal/application/verification/usecases"
	"dbug/internal/shared/errors"
	"dbug/internal/shared/logger"
	"dbug/internal/shared/utils"
)

type VerificationHandler struct {
	lookupEmployeeUC usecases.LookupEmployeeExecutor
	sendOTPUC        usecases.SendOTPExecutor
	verifyOTPUC      usecases.VerifyOTPExecutor
	logger           logger.Interface
}

func NewVerificationHandler(
	lookupEmployeeUC usecases.LookupEmployeeExecutor,
	sendOTPUC usecases.SendOTPExecutor,
	verifyOTPUC usecases.VerifyOTPExecutor,
) *VerificationHandler {
	return &VerificationHandler{
		lookupEmployeeUC: lookupEmployeeUC,
		sendOTPUC:        sendOTPUC,
		verifyOTPUC:      verifyOTPUC,
		logger:           logger.NewLogger(),
	}
}

// GetEmployee handles GET /api/tickets/employee/:email
func (h *VerificationHandler) GetEmployee(c *gin.Context) {
	email := c.Param("email")

	result, err := h.lookupEmployeeUC.Execute(c.Request.Context(), usecases.LookupEmployeeQuery{Email: email})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Employee found", result)
}

// SendOTP handles POST /api/tickets/send-otp
func (h *VerificationHandler) SendOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid send otp request", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Valid email required"))
		return
	}

	result, err := h.sendOTPUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully!", gin.H{"email": result.Email})
}

// VerifyOTP handles POST /api/tickets/verify-otp
func (h *VerificationHandler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid verify otp request", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Email and OTP required"))
		return
	}

	result, err := h.verifyOTPUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "OTP verified successfully!", VerifyOTPResponse{
		Verified: true,
		Token:    result.Token,
	})
}
