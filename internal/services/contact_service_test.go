package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/rentall-backend/internal/models"
	"github.com/javajoker/rentall-backend/internal/repository"
	"github.com/javajoker/rentall-backend/internal/utils"
)

func TestContactService(t *testing.T) {
	contacts := repository.NewContactRepository(newSeededDB(t))
	notify, sent := capturingNotifier(testConfig())
	s := NewContactService(contacts, notify)
	ctx := context.Background()

	submission, err := s.SubmitContact(ctx, ContactRequest{
		FirstName: "Sam",
		LastName:  "Lee",
		Email:     "sam@example.com",
		Subject:   "Listing question",
		Message:   "How do I update my plan?",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ContactKindGeneral, submission.Kind)

	vendor, err := s.SubmitVendorInterest(ctx, VendorInterestRequest{
		Name:          "Ana Maria Lopez",
		Email:         "ana@fleetdesk.io",
		ContactNumber: "+1 555 0100",
		SoftwareName:  "FleetDesk",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", vendor.FirstName)
	assert.Equal(t, "Maria Lopez", vendor.LastName)

	notify.Wait()
	require.Len(t, *sent, 2)
	subjects := []string{(*sent)[0].subject, (*sent)[1].subject}
	assert.ElementsMatch(t, []string{"New contact message: Listing question", "Vendor listing interest: FleetDesk"}, subjects)
	assert.Equal(t, "hello@example.com", (*sent)[0].to)

	stored, err := contacts.ListByKind(ctx, models.ContactKindVendorInterest)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "FleetDesk", stored[0].SoftwareName)
}

func TestContactRequestRejectsHeaderBreaks(t *testing.T) {
	req := ContactRequest{
		FirstName: "Sam",
		LastName:  "Lee",
		Email:     "sam@example.com",
		Subject:   "Hi\r\nBcc: victim@example.com",
		Message:   "hello",
	}
	assert.Error(t, utils.ValidateStruct(&req))

	vendor := VendorInterestRequest{
		Name:          "Ana",
		Email:         "ana@example.com",
		ContactNumber: "+1 555 0100",
		SoftwareName:  "FleetDesk\nBcc: victim@example.com",
	}
	assert.Error(t, utils.ValidateStruct(&vendor))
}

func TestNotificationSubjectStaysOnOneLine(t *testing.T) {
	notify, sent := capturingNotifier(testConfig())

	err := notify.SendContactNotification(&models.ContactSubmission{
		Kind:    models.ContactKindGeneral,
		Email:   "sam@example.com",
		Subject: "Hi\r\nBcc: victim@example.com",
	})
	require.NoError(t, err)

	err = notify.SendListingCreatedNotification("vendor@example.com\r\nBcc: victim@example.com", &models.Software{Name: "Fleet\nDesk"})
	require.NoError(t, err)

	require.Len(t, *sent, 2)
	for _, email := range *sent {
		assert.NotContains(t, email.subject, "\n")
		assert.NotContains(t, email.subject, "\r")
		assert.NotContains(t, email.to, "\n")
		assert.NotContains(t, email.to, "\r")
	}
	assert.Equal(t, "New contact message: Hi Bcc: victim@example.com", (*sent)[0].subject)
}
