package domain

import "time"

// TicketStatus enumerates lifecycle states for maintenance tickets.
//
// Any status may overwrite any other; the workflow deliberately enforces
// no transition table, so a CLOSED ticket can be reopened by writing OPEN.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusResolved   TicketStatus = "RESOLVED"
	TicketStatusClosed     TicketStatus = "CLOSED"
)

// ValidTicketStatus reports whether the value is a known status.
func ValidTicketStatus(s TicketStatus) bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// TicketPriority enumerates urgency levels.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "LOW"
	TicketPriorityMedium TicketPriority = "MEDIUM"
	TicketPriorityHigh   TicketPriority = "HIGH"
	TicketPriorityUrgent TicketPriority = "URGENT"
)

// ValidTicketPriority reports whether the value is a known priority.
func ValidTicketPriority(p TicketPriority) bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityUrgent:
		return true
	}
	return false
}

// Ticket is a maintenance request tied to a unit and tenant.
type Ticket struct {
	ID           int64
	UnitID       int64
	TenantID     int64
	Title        string
	Description  string
	Status       TicketStatus
	Priority     TicketPriority
	AssignedToID *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Hydrated relations, populated by the service layer for responses.
	Unit       *Unit
	Tenant     *Tenant
	AssignedTo *Identity
	Comments   []Comment
}
