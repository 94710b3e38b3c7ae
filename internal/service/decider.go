package service

import (
	"time"

	"github.com/corpreg/furnishings-engine/internal/domain"
	"github.com/corpreg/furnishings-engine/internal/timeutil"
)

// DecisionKind is the escalation action due for a business.
type DecisionKind string

const (
	// DecisionFirstNotice means no prior furnishing exists: send the first
	// notice, by email when a contact email resolves, by mail otherwise.
	DecisionFirstNotice DecisionKind = "FIRST_NOTICE"

	// DecisionSecondNotice means the email notice went unanswered past the
	// delay window: send the follow-up letter.
	DecisionSecondNotice DecisionKind = "SECOND_NOTICE"

	// DecisionNoAction means nothing is due this run.
	DecisionNoAction DecisionKind = "NO_ACTION"
)

// NoActionReason explains a NO_ACTION decision.
type NoActionReason string

const (
	// ReasonMailExists: a MAIL furnishing already exists in any status.
	// Escalation is terminal; a failed letter is recovered out of band.
	ReasonMailExists NoActionReason = "MAIL_EXISTS"

	// ReasonEmailRecent: the email notice is still inside the delay window.
	ReasonEmailRecent NoActionReason = "EMAIL_RECENT"
)

// Decision is the outcome of the escalation state machine.
type Decision struct {
	Kind   DecisionKind
	Reason NoActionReason // set only when Kind is NO_ACTION
}

// DecideEscalation runs the per-business escalation state machine over the
// persisted furnishing history. It is a pure function: the decision depends
// only on prior records, the run time, and the configured delay window in
// business days, never on records created for other businesses this run.
func DecideEscalation(prior []domain.Furnishing, now time.Time, delayBusinessDays int) Decision {
	var email *domain.Furnishing
	for i := range prior {
		switch prior[i].FurnishingType {
		case domain.FurnishingTypeMail:
			return Decision{Kind: DecisionNoAction, Reason: ReasonMailExists}
		case domain.FurnishingTypeEmail:
			if email == nil {
				email = &prior[i]
			}
		}
	}

	if email == nil {
		return Decision{Kind: DecisionFirstNotice}
	}

	if timeutil.BusinessDaysBetween(email.CreatedDate, now) >= delayBusinessDays {
		return Decision{Kind: DecisionSecondNotice}
	}
	return Decision{Kind: DecisionNoAction, Reason: ReasonEmailRecent}
}
