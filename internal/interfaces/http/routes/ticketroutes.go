package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "dbug/internal/interfaces/http/handlers/ticket"
	verificationhandlers "dbug/internal/interfaces/http/handlers/verification"
	"dbug/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	VerificationHandler    *verificationhandlers.VerificationHandler
	TicketHandler          *tickethandlers.TicketHandler
	VerificationMiddleware *middleware.VerificationMiddleware
}

// SetupTicketRoutes registers the intake endpoints. Only the final
// submit is gated on a verification token; the lookup and OTP steps
// are what produce it.
func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/api/tickets")
	{
		tickets.GET("/employee/:email", config.VerificationHandler.GetEmployee)
		tickets.POST("/send-otp", config.VerificationHandler.SendOTP)
		tickets.POST("/verify-otp", config.VerificationHandler.VerifyOTP)
		tickets.POST("/submit",
			config.VerificationMiddleware.RequireVerifiedEmail(),
			config.TicketHandler.SubmitTicket)
	}
}
