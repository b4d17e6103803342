package rsvp

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"evervow/models"
	"evervow/services/guest"
)

// Step identifies where a conversation currently is.
type Step string

const (
	StepNameInput      Step = "name-input"
	StepAttendance     Step = "attendance-question"
	StepPlusOne        Step = "plus-one-question"
	StepKnownCompanion Step = "known-companion-question"
	StepSuccess        Step = "success"
	StepError          Step = "error"
)

// State is one snapshot of an RSVP conversation. It is a plain value owned
// by the caller; the machine never keeps state between calls, so concurrent
// conversations cannot interfere with each other.
type State struct {
	Step          Step             `json:"step"`
	Name          string           `json:"name,omitempty"`
	GuestType     models.GuestType `json:"guestType,omitempty"`
	CompanionName string           `json:"companionName,omitempty"`
	Message       string           `json:"message,omitempty"`
}

// NewState returns the initial conversation state.
func NewState() State {
	return State{Step: StepNameInput}
}

// Event is a closed set of conversation inputs.
type Event interface {
	isRsvpEvent()
}

// NameValidated carries the resolver's classification of the submitted name.
type NameValidated struct {
	Validation guest.Validation
}

// AttendanceAnswered answers "can you make it?".
type AttendanceAnswered struct {
	CanAttend bool
}

// PlusOneAnswered answers "are you bringing a plus one?".
type PlusOneAnswered struct {
	Bringing bool
}

// KnownCompanionAnswered answers "is <companion> coming too?".
type KnownCompanionAnswered struct {
	Coming bool
}

// Back returns to the previous question.
type Back struct{}

// Reset abandons the conversation and starts over.
type Reset struct{}

func (NameValidated) isRsvpEvent()          {}
func (AttendanceAnswered) isRsvpEvent()     {}
func (PlusOneAnswered) isRsvpEvent()        {}
func (KnownCompanionAnswered) isRsvpEvent() {}
func (Back) isRsvpEvent()                   {}
func (Reset) isRsvpEvent()                  {}

// ValidatorFunc resolves a submitted name against whatever roster source is
// live: the guest repository in production, a fixture in tests.
type ValidatorFunc func(ctx context.Context, name string) (guest.Validation, error)

// Transition folds one event into a state. It is total: every state/event
// pair yields a defined next state, and inapplicable events return the
// state unchanged. It never panics.
func Transition(state State, event Event) State {
	switch ev := event.(type) {
	case Reset:
		return NewState()

	case NameValidated:
		if state.Step != StepNameInput {
			return state
		}
		if ev.Validation.GuestType == models.GuestUnknown {
			return State{Step: StepError, Message: MsgNameNotFound}
		}
		// Title-casing is cosmetic only; matching already happened on the
		// raw trimmed, case-folded input.
		return State{
			Step:          StepAttendance,
			Name:          titleCase(ev.Validation.Name),
			GuestType:     ev.Validation.GuestType,
			CompanionName: titleCase(ev.Validation.CompanionName),
		}

	case AttendanceAnswered:
		if state.Step != StepAttendance {
			return state
		}
		if !ev.CanAttend {
			return State{Step: StepSuccess, Message: declinedMessage(state.Name)}
		}
		switch state.GuestType {
		case models.GuestPlusOneInvited:
			next := state
			next.Step = StepPlusOne
			return next
		case models.GuestAndKnownPlusOne:
			next := state
			next.Step = StepKnownCompanion
			return next
		default:
			return State{Step: StepSuccess, Message: acceptedMessage(state.Name)}
		}

	case PlusOneAnswered:
		if state.Step != StepPlusOne {
			return state
		}
		return State{Step: StepSuccess, Message: plusOneMessage(state.Name, ev.Bringing)}

	case KnownCompanionAnswered:
		if state.Step != StepKnownCompanion {
			return state
		}
		return State{Step: StepSuccess, Message: companionMessage(state.Name, state.CompanionName, ev.Coming)}

	case Back:
		switch state.Step {
		case StepAttendance:
			return NewState()
		case StepPlusOne, StepKnownCompanion:
			next := state
			next.Step = StepAttendance
			return next
		default:
			return state
		}
	}
	return state
}

// SubmitName runs the injected validator and folds the outcome through
// Transition. Validator failures never propagate: they become an error
// state carrying the failure's message.
func SubmitName(ctx context.Context, state State, name string, validate ValidatorFunc) State {
	if state.Step != StepNameInput {
		return state
	}
	validation, err := validate(ctx, name)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = MsgLookupFailed
		}
		return State{Step: StepError, Message: msg}
	}
	return Transition(state, NameValidated{Validation: validation})
}

func titleCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ToLower(s))
}
