package domain

import "time"

// Audit actions recorded by the authentication flows.
const (
	AuditActionRegister = "register"
	AuditActionLogin    = "login"
	AuditActionRefresh  = "refresh"
	AuditActionLogout   = "logout"
)

const (
	AuditOutcomeSuccess = "success"
	AuditOutcomeFailure = "failure"
)

// AuditEvent is an append-only record of an authentication attempt. Subject
// is the normalized email (or user id once known) the attempt targeted;
// events for the same subject are persisted in order.
type AuditEvent struct {
	Subject string    `bson:"subject"`
	Action  string    `bson:"action"`
	Outcome string    `bson:"outcome"`
	At      time.Time `bson:"at"`
}
