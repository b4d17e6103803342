package rsvp

import "fmt"

// Guest-facing copy for terminal conversation states. Kept in one place so
// the dashboard preview and the public site render identical text.
const (
	// MsgNameNotFound is shown when no roster entry matches the input.
	MsgNameNotFound = "We couldn't find that name on the guest list. Please double-check the spelling, or reach out to the couple."
	// MsgLookupFailed is the fallback when the roster lookup itself fails
	// without a usable message.
	MsgLookupFailed = "Something went wrong while checking the guest list. Please try again."
)

func declinedMessage(name string) string {
	return fmt.Sprintf("Thank you for letting us know, %s. We're sorry you can't make it. You'll be missed!", name)
}

func acceptedMessage(name string) string {
	return fmt.Sprintf("Thank you, %s! Your RSVP is confirmed. We can't wait to celebrate with you!", name)
}

func plusOneMessage(name string, bringing bool) string {
	if bringing {
		return fmt.Sprintf("Wonderful, %s! We've saved a seat for you and your plus one. See you there!", name)
	}
	return fmt.Sprintf("Wonderful, %s! Your RSVP is confirmed. See you there!", name)
}

func companionMessage(name, companion string, coming bool) string {
	if coming {
		return fmt.Sprintf("Amazing! We've confirmed seats for %s and %s. See you both there!", name, companion)
	}
	return fmt.Sprintf("Thank you, %s! Your RSVP is confirmed. See you there!", name)
}
