package services

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldErrors maps a contact form field to a message the visitor can act on
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = field + ": " + f[field]
	}
	return "invalid contact form: " + strings.Join(parts, "; ")
}

// ValidateContact checks a submission. Every field is required after
// trimming and the email must look like an address.
func ValidateContact(msg models.ContactMessage) FieldErrors {
	problems := FieldErrors{}
	if strings.TrimSpace(msg.Name) == "" {
		problems["name"] = "Name is required"
	}
	if email := strings.TrimSpace(msg.Email); email == "" {
		problems["email"] = "Email is required"
	} else if !emailPattern.MatchString(msg.Email) {
		problems["email"] = "Invalid email"
	}
	if strings.TrimSpace(msg.Subject) == "" {
		problems["subject"] = "Subject is required"
	}
	if strings.TrimSpace(msg.Message) == "" {
		problems["message"] = "Message is required"
	}
	if len(problems) == 0 {
		return nil
	}
	return problems
}

// ContactService accepts contact form submissions. Nothing is sent anywhere:
// delivery is a fixed delay followed by a log line.
type ContactService struct {
	delay  time.Duration
	logger zerolog.Logger
	now    func() time.Time
}

func NewContactService(delay time.Duration) *ContactService {
	return &ContactService{
		delay:  delay,
		logger: log.With().Str("service", "contactService").Logger(),
		now:    time.Now,
	}
}

// Send validates msg and simulates delivery. A FieldErrors is returned for
// invalid input; a cancelled ctx aborts the delay with a timeout error.
func (s *ContactService) Send(ctx context.Context, msg models.ContactMessage) (models.ContactReceipt, error) {
	if problems := ValidateContact(msg); problems != nil {
		return models.ContactReceipt{}, problems
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return models.ContactReceipt{}, errs.NewTimeoutError("contact delivery", ctx.Err())
		case <-timer.C:
		}
	}

	receipt := models.ContactReceipt{
		ID:     uuid.New(),
		Status: "sent",
		SentAt: s.now().UTC(),
	}

	s.logger.Info().
		Str("receiptId", receipt.ID.String()).
		Str("subject", strings.TrimSpace(msg.Subject)).
		Int("messageLength", len(msg.Message)).
		Msg("contact message accepted")

	return receipt, nil
}
