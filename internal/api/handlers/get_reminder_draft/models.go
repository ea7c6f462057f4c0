package get_reminder_draft

import (
	configureReminder "github.com/m04kA/SMC-FotoStudio/internal/usecase/configure_reminder"
)

// LeadTimeOptionResponse вариант срока напоминания
type LeadTimeOptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// DraftResponse HTTP response model
type DraftResponse struct {
	BookingID  string                   `json:"bookingId"`
	ClientName string                   `json:"clientName"`
	Date       string                   `json:"date"`
	DateLabel  string                   `json:"dateLabel"`
	Options    []LeadTimeOptionResponse `json:"options"`
	LeadTime   string                   `json:"leadTime"`
	Message    string                   `json:"message"`
	Configured bool                     `json:"configured"`
}

// FromUseCaseDraft конвертирует черновик use case в HTTP response
func FromUseCaseDraft(d *configureReminder.Draft) *DraftResponse {
	options := make([]LeadTimeOptionResponse, 0, len(d.Options))
	for _, opt := range d.Options {
		options = append(options, LeadTimeOptionResponse{Value: string(opt.Value), Label: opt.Label})
	}

	return &DraftResponse{
		BookingID:  d.BookingID,
		ClientName: d.ClientName,
		Date:       d.Date.String(),
		DateLabel:  d.Date.FormatShort(),
		Options:    options,
		LeadTime:   string(d.LeadTime),
		Message:    d.Message,
		Configured: d.Configured,
	}
}
