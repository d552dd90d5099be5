package entity

import (
	"FurnishDesk/internal/lib/validate"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// AckMessage is returned verbatim for every accepted enquiry, whatever
// happened to the downstream sinks.
const AckMessage = "Thank you! Your enquiry has been received. We'll reach out shortly."

// Enquiry represents a customer contact request submitted from the website.
type Enquiry struct {
	UUID       string    `json:"uuid,omitempty" bson:"uuid"`
	Name       string    `json:"name" bson:"name" validate:"required,min=2"`
	Phone      string    `json:"phone" bson:"phone" validate:"required,min=6,max=20"`
	Email      string    `json:"email,omitempty" bson:"email" validate:"omitempty,email"`
	Message    string    `json:"message" bson:"message" validate:"required,min=5,max=1000"`
	ReceivedAt time.Time `json:"received_at,omitempty" bson:"receivedAt"`
}

func (e *Enquiry) Bind(_ *http.Request) error {
	if err := validate.Struct(e); err != nil {
		return err
	}
	e.UUID = uuid.NewString()
	e.ReceivedAt = time.Now()
	return nil
}

// SubmissionOutcome reports what the intake pipeline managed to do with an
// accepted enquiry. Persisted is tracked for observability only and never
// serialized; callers learn about the email channel alone.
type SubmissionOutcome struct {
	OK        bool   `json:"ok"`
	Message   string `json:"message"`
	EmailSent bool   `json:"email_sent"`
	Persisted bool   `json:"-"`
}
