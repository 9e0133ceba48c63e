package domain

import "context"

// FormType discriminates the supported form submissions.
type FormType string

const (
	FormTypeContact FormType = "contact"
	FormTypeSupport FormType = "support"
	FormTypeQuote   FormType = "quote"
)

// FormTypes lists the accepted formType values in contract order.
var FormTypes = []FormType{FormTypeContact, FormTypeSupport, FormTypeQuote}

// Valid reports whether the form type is one of the supported variants.
func (t FormType) Valid() bool {
	switch t {
	case FormTypeContact, FormTypeSupport, FormTypeQuote:
		return true
	}
	return false
}

// Product identifies a product line that can be quoted.
type Product string

const (
	ProductArchitect    Product = "ARCHITECT"
	ProductLandmark     Product = "LANDMARK"
	ProductSpotlight    Product = "SPOTLIGHT"
	ProductFundamentals Product = "FUNDAMENTALS"
)

// Products lists the quotable product codes in contract order.
var Products = []Product{ProductArchitect, ProductLandmark, ProductSpotlight, ProductFundamentals}

// ValidProduct reports whether code is a member of the fixed product set.
func ValidProduct(code string) bool {
	for _, p := range Products {
		if string(p) == code {
			return true
		}
	}
	return false
}

// SubmissionRequest represents a single website form submission.
// Which fields are meaningful depends on FormType: contact and support carry
// Phone and Message, quote carries Product and an optional Mobile.
type SubmissionRequest struct {
	FormType FormType `json:"formType"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone,omitempty"`
	Message  string   `json:"message,omitempty"`
	Product  string   `json:"product,omitempty"`
	Mobile   string   `json:"mobile,omitempty"`
}

// EmailMessage is the notification composed from a validated submission.
type EmailMessage struct {
	Subject  string
	HTMLBody string
	TextBody string
}

// MailSender relays a composed message to the configured recipient, with
// Reply-To pointing back at the submitter.
type MailSender interface {
	Send(ctx context.Context, msg *EmailMessage, replyTo string) error
}

// SubmissionUsecase defines the interface for form submission operations.
type SubmissionUsecase interface {
	// Submit validates the request, composes the notification email and
	// relays it synchronously. A nil return means the email was accepted
	// by the SMTP server.
	Submit(ctx context.Context, req *SubmissionRequest) error
}
