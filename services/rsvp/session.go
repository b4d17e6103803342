package rsvp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"evervow/config"
	"evervow/models"
	"evervow/services/guest"
	"evervow/utils"
)

const sessionKeyPrefix = "rsvp:session:"

// StartSession creates a fresh conversation for one wedding, assigns it a
// unique SessionID, and stores it in Redis.
func (s *DefaultSessionService) StartSession(ctx context.Context, weddingID string) (*Session, error) {
	session := &Session{
		SessionID: uuid.New().String(),
		WeddingID: weddingID,
		State:     NewState(),
	}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SubmitGuestName resolves the submitted name through the guest service and
// advances the conversation. Resolver failures surface as the conversation's
// error state, not as a request failure.
func (s *DefaultSessionService) SubmitGuestName(ctx context.Context, sessionID, name string) (*Session, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var matched guest.Validation
	validator := func(ctx context.Context, raw string) (guest.Validation, error) {
		v, err := s.Resolver.ValidateGuest(ctx, session.WeddingID, raw)
		if err != nil {
			return guest.Validation{}, err
		}
		matched = v
		return v, nil
	}

	session.State = SubmitName(ctx, session.State, name, validator)
	if session.State.Step == StepAttendance {
		session.GuestID = matched.GuestID
	}

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Answer folds one conversation event into the stored session. When the
// conversation reaches success the collected answers are recorded on the
// guest's roster entry.
func (s *DefaultSessionService) Answer(ctx context.Context, sessionID string, event Event) (*Session, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch ev := event.(type) {
	case AttendanceAnswered:
		if session.State.Step == StepAttendance {
			session.Attending = ev.CanAttend
		}
	case PlusOneAnswered:
		if session.State.Step == StepPlusOne {
			session.PlusOneComing = ev.Bringing
		}
	case KnownCompanionAnswered:
		if session.State.Step == StepKnownCompanion {
			session.CompanionComing = ev.Coming
		}
	case Reset:
		session.GuestID = ""
		session.Attending = false
		session.PlusOneComing = false
		session.CompanionComing = false
	}

	before := session.State.Step
	session.State = Transition(session.State, event)
	if _, ok := event.(Back); ok && session.State.Step == StepNameInput {
		session.GuestID = ""
	}

	if session.State.Step == StepSuccess && before != StepSuccess && session.GuestID != "" {
		if err := s.recordRSVP(session); err != nil {
			return nil, err
		}
	}

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultSessionService) recordRSVP(session *Session) error {
	status := models.RSVPDeclined
	if session.Attending {
		status = models.RSVPAccepted
	}
	record := models.RSVPRecord{
		Status:         status,
		PlusOneComing:  session.Attending && session.PlusOneComing,
		CompanionComes: session.Attending && session.CompanionComing,
	}
	if err := s.Guests.UpdateRSVP(session.GuestID, record); err != nil {
		return fmt.Errorf("failed to record RSVP for guest %s: %w", session.GuestID, err)
	}
	return nil
}

func (s *DefaultSessionService) save(ctx context.Context, session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal RSVP session: %w", err)
	}
	cacheClient := utils.GetSessionCacheClient()
	if err := cacheClient.Set(ctx, sessionKeyPrefix+session.SessionID, data, sessionTTL()).Err(); err != nil {
		return fmt.Errorf("failed to store RSVP session: %w", err)
	}
	return nil
}

func (s *DefaultSessionService) load(ctx context.Context, sessionID string) (*Session, error) {
	cacheClient := utils.GetSessionCacheClient()
	data, err := cacheClient.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("RSVP session not found or expired: %w", err)
	}
	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse RSVP session: %w", err)
	}
	return &session, nil
}

func sessionTTL() time.Duration {
	minutes := config.AppConfig.SessionTTLMinutes
	if minutes <= 0 {
		minutes = 30
	}
	return time.Duration(minutes) * time.Minute
}
