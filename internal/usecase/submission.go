package usecase

import (
	"context"
	"fmt"
	"go-caduae-backend/internal/domain"
	"go-caduae-backend/pkg/apperror"
	"go-caduae-backend/pkg/email"
	"go-caduae-backend/pkg/logger"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// relayFallbackMessage is reported when the relay fails without a usable
// error message of its own.
const relayFallbackMessage = "Failed to send message. Please try again later."

type submissionUsecase struct {
	mailer   domain.MailSender
	validate *validator.Validate
	timeout  time.Duration
}

// NewSubmissionUsecase creates a new submission usecase. The validator must
// have the form rules registered (validation.RegisterValidators).
func NewSubmissionUsecase(mailer domain.MailSender, validate *validator.Validate, timeout time.Duration) domain.SubmissionUsecase {
	return &submissionUsecase{
		mailer:   mailer,
		validate: validate,
		timeout:  timeout,
	}
}

// Submit validates the submission, composes the notification email and relays
// it. Validation applies the rules in a fixed order and reports the first
// failure; nothing is composed or sent for an invalid submission.
func (uc *submissionUsecase) Submit(ctx context.Context, req *domain.SubmissionRequest) error {
	if err := uc.validateSubmission(req); err != nil {
		return err
	}

	msg, err := email.Compose(req)
	if err != nil {
		return apperror.Internal(err)
	}

	// One bounded attempt, awaited before the response goes out. No retries.
	sendCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if err := uc.mailer.Send(sendCtx, msg, req.Email); err != nil {
		requestID, _ := ctx.Value(domain.KeyRequestID).(string)
		logger.Log.Error("mail relay failed", "request_id", requestID, "formType", req.FormType, "error", err)
		message := err.Error()
		if message == "" {
			message = relayFallbackMessage
		}
		return apperror.New(http.StatusInternalServerError, message, err)
	}

	return nil
}

// validateSubmission applies the contract rules in order and returns the
// first failure as a 400-coded error. The messages are part of the public
// contract with the website forms.
func (uc *submissionUsecase) validateSubmission(req *domain.SubmissionRequest) error {
	if req.FormType == "" {
		return apperror.BadRequest("formType is required")
	}
	if !req.FormType.Valid() {
		return apperror.BadRequest(fmt.Sprintf("formType must be one of: %s", joinFormTypes()))
	}
	if strings.TrimSpace(req.Name) == "" {
		return apperror.BadRequest("name is required")
	}
	if uc.validate.Var(req.Email, "form_email") != nil {
		return apperror.BadRequest("Valid email is required")
	}

	switch req.FormType {
	case domain.FormTypeContact, domain.FormTypeSupport:
		if strings.TrimSpace(req.Phone) == "" {
			return apperror.BadRequest("phone is required")
		}
		if strings.TrimSpace(req.Message) == "" {
			return apperror.BadRequest("message is required")
		}
	case domain.FormTypeQuote:
		// Empty product fails membership too, so one message covers both.
		if uc.validate.Var(req.Product, "product_code") != nil {
			return apperror.BadRequest(fmt.Sprintf("product must be one of: %s", joinProducts()))
		}
		// mobile is optional and unconstrained
	}

	return nil
}

func joinFormTypes() string {
	parts := make([]string, len(domain.FormTypes))
	for i, t := range domain.FormTypes {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

func joinProducts() string {
	parts := make([]string, len(domain.Products))
	for i, p := range domain.Products {
		parts[i] = string(p)
	}
	return strings.Join(parts, ", ")
}
