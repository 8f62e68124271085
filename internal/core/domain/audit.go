package domain

import "time"

// AuditEntry is an append-only record of a privileged action: who did what,
// toward whom, from which IP, on which site variant. Entries are never
// updated or deleted.
type AuditEntry struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	UserID    string    `json:"userId,omitempty"`
	Towards   string    `json:"towards"`
	IP        string    `json:"ip"`
	SiteType  SiteType  `json:"siteType"`
	CreatedAt time.Time `json:"createdAt"`
}
