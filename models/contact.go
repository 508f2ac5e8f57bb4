package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a submission from the contact form
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactReceipt acknowledges a delivered ContactMessage
type ContactReceipt struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
	SentAt time.Time `json:"sentAt"`
}
