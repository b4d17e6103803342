package rsvp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evervow/models"
	"evervow/services/guest"
)

func fixtureValidator(t *testing.T) ValidatorFunc {
	t.Helper()
	roster := []models.Guest{
		{ID: "g-1", FirstName: "Hunter"},
		{ID: "g-2", FirstName: "Tyler", PlusOneInvited: true},
		{ID: "g-3", FirstName: "Shayna", CompanionName: "Ray"},
	}
	return func(_ context.Context, name string) (guest.Validation, error) {
		return guest.Validate(name, roster), nil
	}
}

func TestSubmitName_UnknownName(t *testing.T) {
	state := SubmitName(context.Background(), NewState(), "Stranger", fixtureValidator(t))

	assert.Equal(t, StepError, state.Step)
	assert.Equal(t, MsgNameNotFound, state.Message)
}

func TestSubmitName_ValidatorFailure(t *testing.T) {
	failing := func(_ context.Context, _ string) (guest.Validation, error) {
		return guest.Validation{}, errors.New("roster lookup timed out")
	}

	state := SubmitName(context.Background(), NewState(), "Hunter", failing)

	assert.Equal(t, StepError, state.Step)
	assert.Equal(t, "roster lookup timed out", state.Message)
}

func TestSubmitName_TitleCasesDisplayName(t *testing.T) {
	state := SubmitName(context.Background(), NewState(), "  hUNTER ", fixtureValidator(t))

	require.Equal(t, StepAttendance, state.Step)
	assert.Equal(t, "Hunter", state.Name)
}

func TestSubmitName_OutsideNameInputIsNoop(t *testing.T) {
	state := State{Step: StepAttendance, Name: "Hunter", GuestType: models.GuestOnly}

	assert.Equal(t, state, SubmitName(context.Background(), state, "Tyler", fixtureValidator(t)))
}

func TestFlow_GuestOnly(t *testing.T) {
	state := SubmitName(context.Background(), NewState(), "Hunter", fixtureValidator(t))
	require.Equal(t, StepAttendance, state.Step)
	assert.Equal(t, models.GuestOnly, state.GuestType)

	state = Transition(state, AttendanceAnswered{CanAttend: true})
	require.Equal(t, StepSuccess, state.Step)
	assert.NotContains(t, state.Message, "plus one")
	assert.NotContains(t, state.Message, "both")
}

func TestFlow_PlusOneInvited(t *testing.T) {
	state := SubmitName(context.Background(), NewState(), "Tyler", fixtureValidator(t))
	require.Equal(t, StepAttendance, state.Step)

	state = Transition(state, AttendanceAnswered{CanAttend: true})
	require.Equal(t, StepPlusOne, state.Step)

	state = Transition(state, PlusOneAnswered{Bringing: true})
	require.Equal(t, StepSuccess, state.Step)
	assert.Contains(t, state.Message, "plus one")
}

func TestFlow_PlusOneDeclined(t *testing.T) {
	state := State{Step: StepPlusOne, Name: "Tyler", GuestType: models.GuestPlusOneInvited}

	state = Transition(state, PlusOneAnswered{Bringing: false})
	require.Equal(t, StepSuccess, state.Step)
	assert.NotContains(t, state.Message, "plus one")
}

func TestFlow_KnownCompanion(t *testing.T) {
	state := SubmitName(context.Background(), NewState(), "Shayna", fixtureValidator(t))
	require.Equal(t, StepAttendance, state.Step)
	assert.Equal(t, "Ray", state.CompanionName)

	state = Transition(state, AttendanceAnswered{CanAttend: true})
	require.Equal(t, StepKnownCompanion, state.Step)

	confirmed := Transition(state, KnownCompanionAnswered{Coming: true})
	require.Equal(t, StepSuccess, confirmed.Step)
	assert.Contains(t, confirmed.Message, "See you both")
	assert.Contains(t, confirmed.Message, "Ray")

	alone := Transition(state, KnownCompanionAnswered{Coming: false})
	require.Equal(t, StepSuccess, alone.Step)
	assert.NotContains(t, alone.Message, "both")
}

func TestFlow_CannotAttend(t *testing.T) {
	for _, guestType := range []models.GuestType{models.GuestOnly, models.GuestPlusOneInvited, models.GuestAndKnownPlusOne} {
		state := State{Step: StepAttendance, Name: "Hunter", GuestType: guestType}

		state = Transition(state, AttendanceAnswered{CanAttend: false})
		require.Equal(t, StepSuccess, state.Step, "guest type %s", guestType)
		assert.Contains(t, state.Message, "can't make it")
	}
}

func TestTransition_Back(t *testing.T) {
	testCases := []struct {
		name  string
		state State
		want  Step
	}{
		{"attendance returns to name input", State{Step: StepAttendance, Name: "Hunter", GuestType: models.GuestOnly}, StepNameInput},
		{"plus-one returns to attendance", State{Step: StepPlusOne, Name: "Tyler", GuestType: models.GuestPlusOneInvited}, StepAttendance},
		{"companion returns to attendance", State{Step: StepKnownCompanion, Name: "Shayna", GuestType: models.GuestAndKnownPlusOne, CompanionName: "Ray"}, StepAttendance},
		{"name input is unchanged", State{Step: StepNameInput}, StepNameInput},
		{"success is unchanged", State{Step: StepSuccess, Message: "done"}, StepSuccess},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Transition(tc.state, Back{})
			assert.Equal(t, tc.want, got.Step)
		})
	}
}

func TestTransition_BackReconstructsCarriedFields(t *testing.T) {
	state := State{Step: StepKnownCompanion, Name: "Shayna", GuestType: models.GuestAndKnownPlusOne, CompanionName: "Ray"}

	got := Transition(state, Back{})
	require.Equal(t, StepAttendance, got.Step)
	assert.Equal(t, "Shayna", got.Name)
	assert.Equal(t, models.GuestAndKnownPlusOne, got.GuestType)
	assert.Equal(t, "Ray", got.CompanionName)
}

func TestTransition_Totality(t *testing.T) {
	states := []State{
		NewState(),
		{Step: StepAttendance, Name: "Hunter", GuestType: models.GuestOnly},
		{Step: StepPlusOne, Name: "Tyler", GuestType: models.GuestPlusOneInvited},
		{Step: StepKnownCompanion, Name: "Shayna", GuestType: models.GuestAndKnownPlusOne, CompanionName: "Ray"},
		{Step: StepSuccess, Message: "done"},
		{Step: StepError, Message: MsgNameNotFound},
	}
	events := []Event{
		NameValidated{Validation: guest.Validation{GuestType: models.GuestOnly, Name: "Hunter"}},
		NameValidated{Validation: guest.Validation{GuestType: models.GuestUnknown}},
		AttendanceAnswered{CanAttend: true},
		AttendanceAnswered{CanAttend: false},
		PlusOneAnswered{Bringing: true},
		KnownCompanionAnswered{Coming: false},
		Back{},
		Reset{},
	}

	for _, state := range states {
		for _, event := range events {
			assert.NotPanics(t, func() {
				next := Transition(state, event)
				assert.NotEmpty(t, next.Step)
			}, "state %s, event %T", state.Step, event)
		}
	}
}

func TestTransition_ResetFromAnyState(t *testing.T) {
	states := []State{
		NewState(),
		{Step: StepAttendance, Name: "Hunter", GuestType: models.GuestOnly},
		{Step: StepPlusOne, Name: "Tyler", GuestType: models.GuestPlusOneInvited},
		{Step: StepSuccess, Message: "done"},
		{Step: StepError, Message: MsgNameNotFound},
	}

	for _, state := range states {
		got := Transition(state, Reset{})
		assert.Equal(t, NewState(), got, "reset from %s", state.Step)
	}
}

func TestTransition_MismatchedEventsAreNoops(t *testing.T) {
	initial := NewState()

	assert.Equal(t, initial, Transition(initial, AttendanceAnswered{CanAttend: true}))
	assert.Equal(t, initial, Transition(initial, PlusOneAnswered{Bringing: true}))
	assert.Equal(t, initial, Transition(initial, KnownCompanionAnswered{Coming: true}))
	assert.Equal(t, initial, Transition(initial, Back{}))

	terminal := State{Step: StepSuccess, Message: "done"}
	assert.Equal(t, terminal, Transition(terminal, AttendanceAnswered{CanAttend: false}))
}
