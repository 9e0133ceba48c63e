package email

import (
	"bytes"
	"fmt"
	"go-caduae-backend/internal/domain"
	"html/template"
	"strings"
	texttemplate "text/template"
)

// inquiryEmailData holds the fields for contact and support form emails
type inquiryEmailData struct {
	Heading string
	Name    string
	Email   string
	Phone   string
	Message string
}

// quoteEmailData holds the fields for quote request emails
type quoteEmailData struct {
	Name    string
	Email   string
	Product string
	Mobile  string
}

// inquiryHTMLTemplate is the HTML template for contact and support form emails
const inquiryHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Heading}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #14397d; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #14397d; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.Heading}}</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Name:</div>
                <div class="value">{{.Name}}</div>
            </div>
            <div class="field">
                <div class="label">Email:</div>
                <div class="value">{{.Email}}</div>
            </div>
            <div class="field">
                <div class="label">Phone:</div>
                <div class="value">{{.Phone}}</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{nl2br .Message}}</div>
            </div>
        </div>
        <div class="footer">
            <p>This email was sent from the caduae.com website.</p>
            <p>To reply, send an email to: {{.Email}}</p>
        </div>
    </div>
</body>
</html>`

// quoteHTMLTemplate is the HTML template for quote request emails
const quoteHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Quote Request</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #14397d; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Quote Request</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Name:</div>
                <div class="value">{{.Name}}</div>
            </div>
            <div class="field">
                <div class="label">Email:</div>
                <div class="value">{{.Email}}</div>
            </div>
            <div class="field">
                <div class="label">Product:</div>
                <div class="value">{{.Product}}</div>
            </div>{{if .Mobile}}
            <div class="field">
                <div class="label">Mobile:</div>
                <div class="value">{{.Mobile}}</div>
            </div>{{end}}
        </div>
        <div class="footer">
            <p>This email was sent from the caduae.com website.</p>
            <p>To reply, send an email to: {{.Email}}</p>
        </div>
    </div>
</body>
</html>`

const inquiryTextTemplate = `{{.Heading}}

Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}
Message:
{{.Message}}
`

const quoteTextTemplate = `New Quote Request

Name: {{.Name}}
Email: {{.Email}}
Product: {{.Product}}
{{if .Mobile}}Mobile: {{.Mobile}}
{{end}}`

// Templates are parsed once; Compose only executes them.
var (
	inquiryHTML = template.Must(template.New("inquiry_html").
			Funcs(template.FuncMap{"nl2br": nl2br}).
			Parse(inquiryHTMLTemplate))
	quoteHTML   = template.Must(template.New("quote_html").Parse(quoteHTMLTemplate))
	inquiryText = texttemplate.Must(texttemplate.New("inquiry_text").Parse(inquiryTextTemplate))
	quoteText   = texttemplate.Must(texttemplate.New("quote_text").Parse(quoteTextTemplate))
)

// nl2br escapes the message for HTML and turns newlines into <br> tags. Only
// the free-text message gets this treatment; every other field is one line.
func nl2br(msg string) template.HTML {
	escaped := template.HTMLEscapeString(msg)
	escaped = strings.ReplaceAll(escaped, "\r\n", "<br>")
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	return template.HTML(escaped)
}

// Compose builds the notification email for a validated submission. Callers
// validate first; Compose trusts the discriminator and the per-variant fields.
func Compose(req *domain.SubmissionRequest) (*domain.EmailMessage, error) {
	switch req.FormType {
	case domain.FormTypeContact:
		return composeInquiry(req, "New Contact Form Submission")
	case domain.FormTypeSupport:
		return composeInquiry(req, "New Support Form Submission")
	case domain.FormTypeQuote:
		return composeQuote(req)
	default:
		return nil, fmt.Errorf("unknown form type %q", req.FormType)
	}
}

func composeInquiry(req *domain.SubmissionRequest, heading string) (*domain.EmailMessage, error) {
	data := inquiryEmailData{
		Heading: heading,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}

	var html bytes.Buffer
	if err := inquiryHTML.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("failed to execute email template: %w", err)
	}
	var text bytes.Buffer
	if err := inquiryText.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("failed to execute email template: %w", err)
	}

	return &domain.EmailMessage{
		Subject:  fmt.Sprintf("%s - %s", heading, req.Name),
		HTMLBody: html.String(),
		TextBody: text.String(),
	}, nil
}

func composeQuote(req *domain.SubmissionRequest) (*domain.EmailMessage, error) {
	data := quoteEmailData{
		Name:    req.Name,
		Email:   req.Email,
		Product: req.Product,
		Mobile:  req.Mobile,
	}

	var html bytes.Buffer
	if err := quoteHTML.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("failed to execute email template: %w", err)
	}
	var text bytes.Buffer
	if err := quoteText.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("failed to execute email template: %w", err)
	}

	return &domain.EmailMessage{
		Subject:  fmt.Sprintf("New Quote Request - %s", req.Name),
		HTMLBody: html.String(),
		TextBody: text.String(),
	}, nil
}
