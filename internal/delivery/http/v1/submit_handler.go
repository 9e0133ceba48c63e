package v1

import (
	"go-caduae-backend/internal/delivery/http/response"
	"go-caduae-backend/internal/domain"
	"go-caduae-backend/pkg/apperror"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SubmitHandler struct {
	submissionUC domain.SubmissionUsecase
}

// NewSubmitHandler registers the form submission route (public, no auth required)
func NewSubmitHandler(public *gin.RouterGroup, submissionUC domain.SubmissionUsecase) {
	handler := &SubmitHandler{
		submissionUC: submissionUC,
	}

	// Public Route - NO authentication required. Preflight OPTIONS requests
	// are answered by the CORS middleware before routing happens.
	public.POST("/submit-mail", handler.SubmitMail)
}

// SubmitMail godoc
// @Summary      Submit Website Form
// @Description  Validate a contact, support or quote form submission and relay it by email. This is a public endpoint.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        submission  body      domain.SubmissionRequest  true  "Form Submission"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /submit-mail [post]
func (h *SubmitHandler) SubmitMail(c *gin.Context) {
	var req domain.SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if err := h.submissionUC.Submit(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Thank you! Your message has been sent successfully.")
}
