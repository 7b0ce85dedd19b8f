// Package checkout holds the per-user checkout wizard state machine:
// Cart(1) → CustomerInfo(2) → Delivery(3) → Payment(4). Transitions are
// strictly forward/backward; every forward transition re-runs that step's
// validation, so step 4 cannot be reached without passing 2 and 3 in the
// same session.
package checkout

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/intronerd12/Nourishy-sub000/models"
)

type Step int

const (
	StepCart Step = iota + 1
	StepCustomerInfo
	StepDelivery
	StepPayment
)

var (
	ErrNoSession      = errors.New("no checkout session, start from the cart")
	ErrWrongStep      = errors.New("step not reachable from the current state")
	ErrNotConfirmable = errors.New("complete customer info and delivery before confirming")
)

// ValidationError carries per-field messages for a failed step submission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, msg := range e.Fields {
		parts = append(parts, f+": "+msg)
	}
	return strings.Join(parts, "; ")
}

type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (ci CustomerInfo) validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(ci.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(ci.Email) == "" {
		fields["email"] = "email is required"
	}
	if strings.TrimSpace(ci.Phone) == "" {
		fields["phone"] = "phone is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validateDelivery(a models.Address) error {
	fields := map[string]string{}
	if strings.TrimSpace(a.Street) == "" {
		fields["street"] = "address is required"
	}
	if strings.TrimSpace(a.City) == "" {
		fields["city"] = "city is required"
	}
	if strings.TrimSpace(a.PostalCode) == "" {
		fields["postal_code"] = "postal code is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Session is one user's progress through the wizard.
type Session struct {
	UserID        string         `json:"user_id"`
	Step          Step           `json:"step"`
	Customer      CustomerInfo   `json:"customer"`
	Delivery      models.Address `json:"delivery"`
	PaymentMethod string         `json:"payment_method"`
	StartedAt     time.Time      `json:"started_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// Store holds live sessions, constructed once at startup and injected into
// the checkout handlers.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Start begins (or restarts) a session at the cart step. Callers only ever
// see copies; the stored session is mutated through Store methods alone.
func (s *Store) Start(userID string) Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := &Session{
		UserID:    userID,
		Step:      StepCart,
		StartedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.sessions[userID] = sess
	return *sess
}

// Prefill seeds customer and delivery data on an existing session without
// advancing the step, so a returning buyer only reviews the fields.
func (s *Store) Prefill(userID string, info CustomerInfo, addr models.Address) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return Session{}, ErrNoSession
	}
	sess.Customer = info
	sess.Delivery = addr
	sess.UpdatedAt = time.Now()
	return *sess, nil
}

// Get returns a copy of the user's session.
func (s *Store) Get(userID string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return Session{}, ErrNoSession
	}
	return *sess, nil
}

// SubmitCustomerInfo records step 2 and advances to delivery. The step only
// moves forward when validation passes; resubmitting from a later step
// updates the data without regressing.
func (s *Store) SubmitCustomerInfo(userID string, info CustomerInfo) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return Session{}, ErrNoSession
	}
	if sess.Step < StepCart || sess.Step > StepDelivery {
		return *sess, ErrWrongStep
	}
	if err := info.validate(); err != nil {
		return *sess, err
	}
	sess.Customer = info
	if sess.Step < StepDelivery {
		sess.Step = StepDelivery
	}
	sess.UpdatedAt = time.Now()
	return *sess, nil
}

// SubmitDelivery advances 3→4.
func (s *Store) SubmitDelivery(userID string, addr models.Address) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return Session{}, ErrNoSession
	}
	if sess.Step < StepDelivery {
		return *sess, ErrWrongStep
	}
	if err := validateDelivery(addr); err != nil {
		return *sess, err
	}
	sess.Delivery = addr
	if sess.Step < StepPayment {
		sess.Step = StepPayment
	}
	sess.UpdatedAt = time.Now()
	return *sess, nil
}

// SelectPayment records the payment method at step 4.
func (s *Store) SelectPayment(userID, method string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return Session{}, ErrNoSession
	}
	if sess.Step < StepPayment {
		return *sess, ErrWrongStep
	}
	if strings.TrimSpace(method) == "" {
		return *sess, &ValidationError{Fields: map[string]string{"payment_method": "payment method is required"}}
	}
	sess.PaymentMethod = method
	sess.UpdatedAt = time.Now()
	return *sess, nil
}

// Back steps backward one step; a no-op at the cart step.
func (s *Store) Back(userID string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return Session{}, ErrNoSession
	}
	if sess.Step > StepCart {
		sess.Step--
		sess.UpdatedAt = time.Now()
	}
	return *sess, nil
}

// Confirmable returns the session if and only if it has reached the payment
// step with customer info, delivery, and payment method all validated.
// Wizard state is left untouched so a failed order submission can be retried
// without re-entering anything.
func (s *Store) Confirmable(userID string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return Session{}, ErrNoSession
	}
	if sess.Step < StepPayment || sess.PaymentMethod == "" {
		return *sess, ErrNotConfirmable
	}
	// Defends against direct state manipulation: validation re-runs here.
	if err := sess.Customer.validate(); err != nil {
		return *sess, err
	}
	if err := validateDelivery(sess.Delivery); err != nil {
		return *sess, err
	}
	return *sess, nil
}

// Finish drops the session after a successful order.
func (s *Store) Finish(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
