// internal/services/notification_service.go
package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"net/url"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/rentall-backend/internal/config"
	"github.com/javajoker/rentall-backend/internal/models"
)

type NotificationService struct {
	config *config.Config
	send   func(to, subject, body string) error
	wg     sync.WaitGroup
}

type EmailTemplate struct {
	Subject string
	Body    string
}

func NewNotificationService(config *config.Config) *NotificationService {
	s := &NotificationService{config: config}
	s.send = s.sendEmail
	return s
}

// Contact notifications
func (s *NotificationService) SendContactNotification(submission *models.ContactSubmission) error {
	data := map[string]interface{}{
		"Name":    submission.FullName(),
		"Email":   submission.Email,
		"Company": submission.Company,
		"Subject": submission.Subject,
		"Message": submission.Message,
	}
	return s.deliver(s.config.Email.ContactInbox, "contact", data, submission.Subject)
}

func (s *NotificationService) SendVendorInterestNotification(submission *models.ContactSubmission) error {
	data := map[string]interface{}{
		"Name":          submission.FullName(),
		"Email":         submission.Email,
		"ContactNumber": submission.ContactNumber,
		"SoftwareName":  submission.SoftwareName,
	}
	return s.deliver(s.config.Email.ContactInbox, "vendor_interest", data, submission.SoftwareName)
}

// Listing notifications
func (s *NotificationService) SendListingCreatedNotification(to string, software *models.Software) error {
	if to == "" {
		return nil
	}
	data := map[string]interface{}{
		"SoftwareName": software.Name,
		"ListingURL":   fmt.Sprintf("%s/product/%s", s.config.Site.BaseURL, url.PathEscape(software.Name)),
	}
	return s.deliver(to, "listing_created", data, software.Name)
}

// Async runs fn in the background and logs its error. Wait blocks until
// every pending send has finished.
func (s *NotificationService) Async(kind string, fn func() error) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := fn(); err != nil {
			logrus.WithError(err).WithField("notification", kind).Error("Failed to send notification")
		}
	}()
}

func (s *NotificationService) Wait() {
	s.wg.Wait()
}

func (s *NotificationService) deliver(to, templateType string, data map[string]interface{}, subjectArg string) error {
	tmpl := s.getEmailTemplate(templateType)
	body, err := s.renderTemplate(tmpl.Body, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}
	return s.send(headerValue(to), headerValue(fmt.Sprintf(tmpl.Subject, subjectArg)), body)
}

// headerValue folds line breaks to spaces so a value cannot start a new
// mail header.
func headerValue(v string) string {
	return strings.Join(strings.FieldsFunc(v, func(r rune) bool { return r == '\r' || r == '\n' }), " ")
}

func (s *NotificationService) sendEmail(to, subject, body string) error {
	if s.config.Email.SMTPHost == "" {
		// Email not configured, just log
		logrus.WithField("to", to).WithField("subject", subject).Info("SMTP not configured, skipping email")
		return nil
	}

	// Setup authentication
	auth := smtp.PlainAuth("", s.config.Email.SMTPUsername, s.config.Email.SMTPPassword, s.config.Email.SMTPHost)

	// Compose message
	from := fmt.Sprintf("%s <%s>", s.config.Email.FromName, s.config.Email.FromEmail)
	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s", from, to, subject, body))

	// Send email
	addr := fmt.Sprintf("%s:%s", s.config.Email.SMTPHost, s.config.Email.SMTPPort)
	return smtp.SendMail(addr, auth, s.config.Email.FromEmail, []string{to}, msg)
}

func (s *NotificationService) renderTemplate(templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New("email").Parse(templateStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *NotificationService) getEmailTemplate(templateType string) EmailTemplate {
	templates := map[string]EmailTemplate{
		"contact": {
			Subject: "New contact message: %s",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>New contact message</h2>
	<p><strong>From:</strong> {{.Name}} &lt;{{.Email}}&gt;</p>
	{{if .Company}}<p><strong>Company:</strong> {{.Company}}</p>{{end}}
	<p><strong>Subject:</strong> {{.Subject}}</p>
	<p>{{.Message}}</p>
</body>
</html>`,
		},
		"vendor_interest": {
			Subject: "Vendor listing interest: %s",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>A vendor wants to be listed</h2>
	<p><strong>Name:</strong> {{.Name}}</p>
	<p><strong>Email:</strong> {{.Email}}</p>
	<p><strong>Contact number:</strong> {{.ContactNumber}}</p>
	<p><strong>Software:</strong> {{.SoftwareName}}</p>
</body>
</html>`,
		},
		"listing_created": {
			Subject: "Your listing for %s is live",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>Thanks for listing {{.SoftwareName}}!</h2>
	<p>Your software is now visible in the directory.</p>
	<a href="{{.ListingURL}}">View your listing</a>
	<p>Best regards,<br>Car Rentall Software Team</p>
</body>
</html>`,
		},
	}

	if template, exists := templates[templateType]; exists {
		return template
	}

	// Default template
	return EmailTemplate{
		Subject: "Notification: %s",
		Body:    "<p>{{.Message}}</p>",
	}
}
