// Package contact implements the contact form and the capability used to
// deliver its messages.
package contact

import (
	"context"
	"log"
	"sync"
	"time"
)

// DefaultDelay is how long the simulated submitter takes to "send" a message.
const DefaultDelay = time.Second

// Message is a submitted contact form.
type Message struct {
	Name  string
	Email string
	Body  string
}

// Submitter delivers a contact message.
type Submitter interface {
	Submit(ctx context.Context, m Message) error
}

// SubmitterFunc adapts a function to the Submitter interface.
type SubmitterFunc func(ctx context.Context, m Message) error

func (f SubmitterFunc) Submit(ctx context.Context, m Message) error { return f(ctx, m) }

// SimulatedSubmitter pretends to deliver messages. It waits Delay and
// reports success without sending anything.
type SimulatedSubmitter struct {
	Delay time.Duration
}

// NewSimulatedSubmitter returns a submitter with the given delay.
func NewSimulatedSubmitter(delay time.Duration) *SimulatedSubmitter {
	return &SimulatedSubmitter{Delay: delay}
}

func (s *SimulatedSubmitter) Submit(ctx context.Context, m Message) error {
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	log.Printf("Contact message accepted from %s (%s)", m.Name, m.Email)
	return nil
}

// Notification variants.
const (
	VariantDefault     = "default"
	VariantDestructive = "destructive"
)

// Notification is the toast shown after a submission.
type Notification struct {
	Title       string
	Description string
	Variant     string
}

// IsError reports whether the notification reports a failure.
func (n Notification) IsError() bool {
	return n.Variant == VariantDestructive
}

var (
	SuccessNotification = Notification{
		Title:       "Message sent!",
		Description: "Thank you for reaching out. I'll get back to you soon.",
		Variant:     VariantDefault,
	}
	FailureNotification = Notification{
		Title:       "Something went wrong",
		Description: "Your message couldn't be sent. Please try again.",
		Variant:     VariantDestructive,
	}
)

// Fields are the three text inputs of the form.
type Fields struct {
	Name    string
	Email   string
	Message string
}

// Snapshot is a point-in-time copy of the form state.
type Snapshot struct {
	Fields
	Submitting bool
}

// Form is the contact form state owned by one view. Fields are free text
// and are never validated.
type Form struct {
	mu         sync.Mutex
	fields     Fields
	submitting bool
}

// NewForm returns a form with the given field values.
func NewForm(f Fields) *Form {
	return &Form{fields: f}
}

func (f *Form) SetName(v string)    { f.set(func(fl *Fields) { fl.Name = v }) }
func (f *Form) SetEmail(v string)   { f.set(func(fl *Fields) { fl.Email = v }) }
func (f *Form) SetMessage(v string) { f.set(func(fl *Fields) { fl.Message = v }) }

func (f *Form) set(fn func(*Fields)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(&f.fields)
}

// Snapshot returns the current state. It is safe to call while Submit runs.
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{Fields: f.fields, Submitting: f.submitting}
}

// Submit disables the form, hands the message to s and re-enables the form
// once s returns. Fields are cleared only when delivery succeeds.
func (f *Form) Submit(ctx context.Context, s Submitter) Notification {
	f.mu.Lock()
	f.submitting = true
	msg := Message{Name: f.fields.Name, Email: f.fields.Email, Body: f.fields.Message}
	f.mu.Unlock()

	err := s.Submit(ctx, msg)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err != nil {
		log.Printf("Error sending contact message: %v", err)
		return FailureNotification
	}
	f.fields = Fields{}
	return SuccessNotification
}
