// internal/services/contact_service.go
package services

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/rentall-backend/internal/models"
	"github.com/javajoker/rentall-backend/internal/repository"
)

type ContactService struct {
	contacts     *repository.ContactRepository
	notification *NotificationService
}

type ContactRequest struct {
	FirstName string `json:"first_name" validate:"notblank,singleline,max=100"`
	LastName  string `json:"last_name" validate:"notblank,singleline,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Company   string `json:"company,omitempty" validate:"singleline,max=255"`
	Subject   string `json:"subject" validate:"notblank,singleline,max=255"`
	Message   string `json:"message" validate:"notblank"`
}

type VendorInterestRequest struct {
	Name          string `json:"name" validate:"notblank,singleline,max=200"`
	Email         string `json:"email" validate:"required,email"`
	ContactNumber string `json:"contact_number" validate:"notblank,singleline,max=50"`
	SoftwareName  string `json:"software_name" validate:"notblank,singleline,max=255"`
}

func NewContactService(contacts *repository.ContactRepository, notification *NotificationService) *ContactService {
	return &ContactService{
		contacts:     contacts,
		notification: notification,
	}
}

func (s *ContactService) SubmitContact(ctx context.Context, req ContactRequest) (*models.ContactSubmission, error) {
	submission := &models.ContactSubmission{
		Kind:      models.ContactKindGeneral,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Company:   strings.TrimSpace(req.Company),
		Subject:   strings.TrimSpace(req.Subject),
		Message:   req.Message,
	}
	if err := s.contacts.Create(ctx, submission); err != nil {
		return nil, err
	}

	logrus.WithField("submission_id", submission.ID).Info("Contact message received")
	s.notification.Async("contact", func() error {
		return s.notification.SendContactNotification(submission)
	})
	return submission, nil
}

// SubmitVendorInterest records a vendor asking to be listed. The single
// name field is split into first and last name on the first space.
func (s *ContactService) SubmitVendorInterest(ctx context.Context, req VendorInterestRequest) (*models.ContactSubmission, error) {
	first, last := splitName(req.Name)
	submission := &models.ContactSubmission{
		Kind:          models.ContactKindVendorInterest,
		FirstName:     first,
		LastName:      last,
		Email:         strings.TrimSpace(req.Email),
		ContactNumber: strings.TrimSpace(req.ContactNumber),
		SoftwareName:  strings.TrimSpace(req.SoftwareName),
	}
	if err := s.contacts.Create(ctx, submission); err != nil {
		return nil, err
	}

	logrus.WithField("submission_id", submission.ID).
		WithField("software", submission.SoftwareName).
		Info("Vendor interest received")
	s.notification.Async("vendor_interest", func() error {
		return s.notification.SendVendorInterestNotification(submission)
	})
	return submission, nil
}

func splitName(name string) (string, string) {
	name = strings.TrimSpace(name)
	first, last, _ := strings.Cut(name, " ")
	return first, strings.TrimSpace(last)
}
