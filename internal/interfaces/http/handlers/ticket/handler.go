package ticket

import (
	stderrors "errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"dbug/internal/application/ticket/usecases"
	"dbug/internal/infrastructure/storage"
	"dbug/internal/interfaces/http/middleware"
	"dbug/internal/shared/errors"
	"dbug/internal/shared/logger"
	"dbug/internal/shared/utils"
)

// AttachmentStore persists uploaded files and returns their paths.
type AttachmentStore interface {
	SaveAll(fileHeaders []*multipart.FileHeader) ([]string, error)
}

type TicketHandler struct {
	submitTicketUC usecases.SubmitTicketExecutor
	attachments    AttachmentStore
	logger         logger.Interface
}

func NewTicketHandler(
	submitTicketUC usecases.SubmitTicketExecutor,
	attachments AttachmentStore,
) *TicketHandler {
	return &TicketHandler{
		submitTicketUC: submitTicketUC,
		attachments:    attachments,
		logger:         logger.NewLogger(),
	}
}

// SubmitTicket handles POST /api/tickets/submit
func (h *TicketHandler) SubmitTicket(c *gin.Context) {
	verifiedEmail := middleware.VerifiedEmail(c)
	if verifiedEmail == "" {
		utils.ErrorResponseWithError(c, errors.NewAccessDeniedError("Email verification required"))
		return
	}

	var req SubmitTicketRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid submit ticket form", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Missing or invalid form fields"))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		h.logger.Warnw("failed to parse multipart form", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Invalid multipart form"))
		return
	}

	paths, err := h.attachments.SaveAll(form.File["attachments"])
	if err != nil {
		if stderrors.Is(err, storage.ErrFileTooLarge) {
			utils.ErrorResponseWithError(c, errors.NewValidationError("Attachment exceeds the maximum allowed size"))
			return
		}
		h.logger.Errorw("failed to store attachments", "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("Failed to store attachments"))
		return
	}

	result, err := h.submitTicketUC.Execute(c.Request.Context(), req.ToCommand(verifiedEmail, paths))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Ticket submitted successfully!", result)
}
