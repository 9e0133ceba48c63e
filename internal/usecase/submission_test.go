package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"go-caduae-backend/internal/domain"
	"go-caduae-backend/internal/usecase"
	"go-caduae-backend/pkg/apperror"
	"go-caduae-backend/pkg/logger"
	"go-caduae-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock MailSender
type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) Send(ctx context.Context, msg *domain.EmailMessage, replyTo string) error {
	return m.Called(ctx, msg, replyTo).Error(0)
}

// blankError simulates a relay fault that carries no message of its own.
type blankError struct{}

func (blankError) Error() string { return "" }

// stalledMailSender blocks like a relay that never answers, returning the
// same wrapped error the real service produces when the context runs out.
type stalledMailSender struct{}

func (stalledMailSender) Send(ctx context.Context, _ *domain.EmailMessage, _ string) error {
	<-ctx.Done()
	return fmt.Errorf("mail relay aborted: %w", ctx.Err())
}

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newUsecase(sender domain.MailSender) domain.SubmissionUsecase {
	validate := validator.New()
	validation.RegisterValidators(validate)
	return usecase.NewSubmissionUsecase(sender, validate, time.Second)
}

func validContact() *domain.SubmissionRequest {
	return &domain.SubmissionRequest{
		FormType: domain.FormTypeContact,
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+971501234567",
		Message:  "Hello there",
	}
}

func validQuote() *domain.SubmissionRequest {
	return &domain.SubmissionRequest{
		FormType: domain.FormTypeQuote,
		Name:     "Fatima",
		Email:    "fatima@example.com",
		Product:  "LANDMARK",
	}
}

func assertBadRequest(t *testing.T, err error, message string) {
	t.Helper()
	var appErr *apperror.AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, 400, appErr.Code)
		assert.Equal(t, message, appErr.Message)
	}
}

func TestSubmitValidationOrder(t *testing.T) {
	sender := new(MockMailSender)
	uc := newUsecase(sender)
	ctx := context.Background()

	t.Run("Should require formType before anything else", func(t *testing.T) {
		err := uc.Submit(ctx, &domain.SubmissionRequest{})
		assertBadRequest(t, err, "formType is required")
	})

	t.Run("Should reject an unknown formType even when other fields are missing too", func(t *testing.T) {
		err := uc.Submit(ctx, &domain.SubmissionRequest{FormType: "newsletter"})
		assertBadRequest(t, err, "formType must be one of: contact, support, quote")
	})

	t.Run("Should require a non-blank name", func(t *testing.T) {
		req := validContact()
		req.Name = "   "
		err := uc.Submit(ctx, req)
		assertBadRequest(t, err, "name is required")
	})

	t.Run("Should require a valid email", func(t *testing.T) {
		req := validContact()
		req.Email = "jane@example"
		err := uc.Submit(ctx, req)
		assertBadRequest(t, err, "Valid email is required")
	})

	t.Run("Should require phone for contact", func(t *testing.T) {
		req := validContact()
		req.Phone = ""
		err := uc.Submit(ctx, req)
		assertBadRequest(t, err, "phone is required")
	})

	t.Run("Should require message for support", func(t *testing.T) {
		req := validContact()
		req.FormType = domain.FormTypeSupport
		req.Message = " \t "
		err := uc.Submit(ctx, req)
		assertBadRequest(t, err, "message is required")
	})

	t.Run("Should require a known product for quote", func(t *testing.T) {
		req := validQuote()
		req.Product = "TOASTER"
		err := uc.Submit(ctx, req)
		assertBadRequest(t, err, "product must be one of: ARCHITECT, LANDMARK, SPOTLIGHT, FUNDAMENTALS")
	})

	t.Run("Should treat a missing product like an unknown one", func(t *testing.T) {
		req := validQuote()
		req.Product = ""
		err := uc.Submit(ctx, req)
		assertBadRequest(t, err, "product must be one of: ARCHITECT, LANDMARK, SPOTLIGHT, FUNDAMENTALS")
	})

	t.Run("Should never touch the relay for invalid submissions", func(t *testing.T) {
		sender.AssertNumberOfCalls(t, "Send", 0)
	})
}

func TestSubmitRelay(t *testing.T) {
	t.Run("Should relay once with the submitter as reply-to", func(t *testing.T) {
		sender := new(MockMailSender)
		var sent *domain.EmailMessage
		sender.On("Send", mock.Anything, mock.AnythingOfType("*domain.EmailMessage"), "jane@example.com").
			Return(nil).
			Run(func(args mock.Arguments) {
				sent = args.Get(1).(*domain.EmailMessage)
			})

		uc := newUsecase(sender)
		err := uc.Submit(context.Background(), validContact())

		assert.NoError(t, err)
		sender.AssertNumberOfCalls(t, "Send", 1)
		if assert.NotNil(t, sent) {
			assert.Equal(t, "New Contact Form Submission - Jane Doe", sent.Subject)
		}
	})

	t.Run("Should accept a quote without a mobile number", func(t *testing.T) {
		sender := new(MockMailSender)
		sender.On("Send", mock.Anything, mock.Anything, "fatima@example.com").Return(nil)

		uc := newUsecase(sender)
		err := uc.Submit(context.Background(), validQuote())

		assert.NoError(t, err)
	})

	t.Run("Should surface the relay failure message as a 500", func(t *testing.T) {
		sender := new(MockMailSender)
		relayErr := errors.New("failed to send email: dial tcp: connection refused")
		sender.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(relayErr)

		uc := newUsecase(sender)
		err := uc.Submit(context.Background(), validContact())

		var appErr *apperror.AppError
		if assert.ErrorAs(t, err, &appErr) {
			assert.Equal(t, 500, appErr.Code)
			assert.Equal(t, relayErr.Error(), appErr.Message)
		}
	})

	t.Run("Should fall back to a generic message when the relay error is blank", func(t *testing.T) {
		sender := new(MockMailSender)
		sender.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(blankError{})

		uc := newUsecase(sender)
		err := uc.Submit(context.Background(), validContact())

		var appErr *apperror.AppError
		if assert.ErrorAs(t, err, &appErr) {
			assert.Equal(t, 500, appErr.Code)
			assert.Equal(t, "Failed to send message. Please try again later.", appErr.Message)
		}
	})

	t.Run("Should surface a relay timeout as a 500", func(t *testing.T) {
		validate := validator.New()
		validation.RegisterValidators(validate)
		uc := usecase.NewSubmissionUsecase(stalledMailSender{}, validate, 50*time.Millisecond)

		err := uc.Submit(context.Background(), validContact())

		var appErr *apperror.AppError
		if assert.ErrorAs(t, err, &appErr) {
			assert.Equal(t, 500, appErr.Code)
			assert.Equal(t, "mail relay aborted: context deadline exceeded", appErr.Message)
		}
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("Should treat a cancelled request as a relay failure", func(t *testing.T) {
		uc := newUsecase(stalledMailSender{})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := uc.Submit(ctx, validContact())

		var appErr *apperror.AppError
		if assert.ErrorAs(t, err, &appErr) {
			assert.Equal(t, 500, appErr.Code)
			assert.Equal(t, "mail relay aborted: context canceled", appErr.Message)
		}
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Should tag the relay failure log with the request ID", func(t *testing.T) {
		var buf bytes.Buffer
		prev := logger.Log
		logger.Log = slog.New(slog.NewJSONHandler(&buf, nil))
		defer func() { logger.Log = prev }()

		sender := new(MockMailSender)
		sender.On("Send", mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("failed to send email: relay down"))

		uc := newUsecase(sender)
		ctx := context.WithValue(context.Background(), domain.KeyRequestID, "req-42")
		err := uc.Submit(ctx, validContact())

		assert.Error(t, err)
		logs := buf.String()
		assert.Contains(t, logs, "mail relay failed")
		assert.Contains(t, logs, `"request_id":"req-42"`)
	})

	t.Run("Should attempt a fresh relay for every request", func(t *testing.T) {
		sender := new(MockMailSender)
		sender.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		uc := newUsecase(sender)
		assert.NoError(t, uc.Submit(context.Background(), validContact()))
		assert.NoError(t, uc.Submit(context.Background(), validContact()))

		sender.AssertNumberOfCalls(t, "Send", 2)
	})
}
