package domain

import (
	"errors"
	"regexp"
	"strings"

	orders "uniform-storefront/internal/features/orders/domain"
)

// State is the phase of one checkout attempt.
type State string

const (
	// StateCollecting is the initial phase: form fields being filled.
	StateCollecting State = "COLLECTING"
	// StateSubmitting means the order is being created on the backend.
	StateSubmitting State = "SUBMITTING"
	// StateAwaitingPayment means payment was initiated and the browser is
	// being handed to the external payer.
	StateAwaitingPayment State = "AWAITING_PAYMENT"
	// StateReturned means control came back via the callback URL.
	StateReturned State = "RETURNED"
	// StateConfirming means the returned token is being confirmed.
	StateConfirming State = "CONFIRMING"
	// StateSucceeded is the terminal success state.
	StateSucceeded State = "SUCCEEDED"
	// StateFailed is the terminal failure state.
	StateFailed State = "FAILED"
)

// IsTerminal reports whether the attempt can move no further.
func (s State) IsTerminal() bool {
	return s == StateSucceeded || s == StateFailed
}

func (s State) String() string {
	return string(s)
}

// transitions is the legal move table. A failed create reverts to
// Collecting so the user can resubmit; everything after the redirect can
// only resolve through the token callback.
var transitions = map[State][]State{
	StateCollecting:      {StateSubmitting},
	StateSubmitting:      {StateAwaitingPayment, StateCollecting},
	StateAwaitingPayment: {StateReturned, StateCollecting},
	StateReturned:        {StateConfirming, StateFailed},
	StateConfirming:      {StateSucceeded, StateFailed},
}

// CanTransition reports whether from → to is a legal move.
func CanTransition(from, to State) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ErrIllegalTransition is returned when an attempt is moved off the table.
var ErrIllegalTransition = errors.New("illegal checkout state transition")

// Attempt is one checkout attempt's state, advanced only through To so
// illegal moves (confirming twice, resubmitting a finished attempt) are
// impossible to reach.
type Attempt struct {
	state State
}

// NewAttempt starts an attempt in Collecting.
func NewAttempt() *Attempt {
	return &Attempt{state: StateCollecting}
}

// ResumeAttempt rebuilds an attempt at the callback boundary. No in-memory
// state survives the external redirect, so re-entry starts at Returned
// with only the token as continuity.
func ResumeAttempt() *Attempt {
	return &Attempt{state: StateReturned}
}

// State returns the current phase.
func (a *Attempt) State() State {
	return a.state
}

// To advances the attempt, rejecting moves not in the transition table.
func (a *Attempt) To(next State) error {
	if !CanTransition(a.state, next) {
		return ErrIllegalTransition
	}
	a.state = next
	return nil
}

// TokenRejected is the sentinel the external payer sends back for a
// rejected or cancelled payment.
const TokenRejected = "rejected"

// PaymentHandoff is the token plus redirect URL that hands the browser to
// the external payment provider.
type PaymentHandoff struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// Validation and handoff errors. Messages are shown to the user as-is.
var (
	ErrEmptyCart        = errors.New("El carrito está vacío")
	ErrMissingFields    = errors.New("Por favor, completa todos los campos requeridos")
	ErrInvalidEmail     = errors.New("Por favor, ingresa un email válido")
	ErrNoShippingOption = errors.New("Por favor, selecciona un tipo de envío")
	ErrShippingDisabled = errors.New("El tipo de envío seleccionado no está disponible")
	ErrNoRedirectURL    = errors.New("No se recibió URL de Webpay")
	ErrPaymentRejected  = errors.New("Pago rechazado o cancelado")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// DraftItem is one cart line mapped for order creation.
type DraftItem struct {
	ProductID      string `json:"productId"`
	Quantity       int    `json:"quantity"`
	IsEmbroidered  bool   `json:"isEmbroidered,omitempty"`
	EmbroideryName string `json:"embroideryName,omitempty"`
}

// DraftOrder is the transient checkout form state submitted to the
// backend to produce a persisted order.
type DraftOrder struct {
	CustomerName    string              `json:"customerName"`
	CustomerEmail   string              `json:"customerEmail"`
	CustomerPhone   string              `json:"customerPhone"`
	ShippingAddress string              `json:"shippingAddress"`
	ShippingType    orders.ShippingType `json:"shippingType"`
	Notes           string              `json:"notes,omitempty"`
	Items           []DraftItem         `json:"items"`
	PaymentMethod   string              `json:"paymentMethod"`
}

// Validate runs every pre-submit check. It must pass before any network
// call is made; the shipping option's existence against the offered list
// is the service's job.
func (d *DraftOrder) Validate() error {
	if len(d.Items) == 0 {
		return ErrEmptyCart
	}
	if strings.TrimSpace(d.CustomerName) == "" ||
		strings.TrimSpace(d.CustomerPhone) == "" ||
		strings.TrimSpace(d.ShippingAddress) == "" {
		return ErrMissingFields
	}
	if strings.TrimSpace(d.CustomerEmail) == "" {
		return ErrMissingFields
	}
	if !emailPattern.MatchString(d.CustomerEmail) {
		return ErrInvalidEmail
	}
	if d.ShippingType == "" {
		return ErrNoShippingOption
	}
	return nil
}
