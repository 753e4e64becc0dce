package domain

import "time"

// Audit actions recorded by the auth core.
const (
	AuditLogin   = "login"
	AuditRefresh = "refresh"
	AuditLogout  = "logout"
)

// AuditEvent records one auth-related action. Events are persisted off the
// request path; responses never wait on them.
type AuditEvent struct {
	Email     string    `json:"email" bson:"email"`
	Action    string    `json:"action" bson:"action"`
	Success   bool      `json:"success" bson:"success"`
	ClientIP  string    `json:"client_ip,omitempty" bson:"client_ip,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
