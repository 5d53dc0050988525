package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVisitNotice(t *testing.T) {
	body := FormatVisitNotice(VisitNotice{
		ToEmail:     "jane.carter@example.com",
		HostName:    "Jane Carter",
		VisitorName: "John Doe",
		Company:     "Acme",
		ContactNo:   "9876543210",
		Purpose:     "Meeting",
	})

	assert.Contains(t, body, "Hi Jane Carter,")
	assert.Contains(t, body, "Name:    John Doe")
	assert.Contains(t, body, "Company: Acme")
	assert.Contains(t, body, "Contact: 9876543210")
	assert.Contains(t, body, "Purpose: Meeting")
	assert.Contains(t, body, "reception")
}

func TestFormatVisitNotice_OmitsEmptyFields(t *testing.T) {
	body := FormatVisitNotice(VisitNotice{VisitorName: "John Doe"})

	assert.Contains(t, body, "Hi,\n")
	assert.Contains(t, body, "Name:    John Doe")
	assert.NotContains(t, body, "Company:")
	assert.NotContains(t, body, "Contact:")
	assert.NotContains(t, body, "Purpose:")
}

func TestSMTPConfig_IsConfigured(t *testing.T) {
	assert.False(t, SMTPConfig{}.IsConfigured())
	assert.False(t, SMTPConfig{Host: "smtp.example.com"}.IsConfigured())
	assert.True(t, SMTPConfig{Host: "smtp.example.com", From: "gate@example.com"}.IsConfigured())
}

func TestSMTPMailer_Unconfigured(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{})
	err := m.SendVisitNotice(VisitNotice{ToEmail: "jane@example.com"})
	assert.Error(t, err)
}
