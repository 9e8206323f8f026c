package dto

import (
	"encoding/json"
	"time"

	"github.com/leaselink/leaselink/internal/domain"
)

// CreateTicketRequest payload. Status is not accepted at create time.
type CreateTicketRequest struct {
	UnitID       int64                 `json:"unitId"`
	TenantID     int64                 `json:"tenantId"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Priority     domain.TicketPriority `json:"priority"`
	AssignedToID *int64                `json:"assignedToId"`
}

// UpdateTicketRequest payload. An explicit `"assignedToId": null` clears the
// assignment, which is different from omitting the key; AssignedToSet records
// whether the key was present at all.
type UpdateTicketRequest struct {
	Status        *domain.TicketStatus
	AssignedToID  *int64
	AssignedToSet bool
}

// UnmarshalJSON keeps the present-vs-null distinction for assignedToId.
func (r *UpdateTicketRequest) UnmarshalJSON(data []byte) error {
	var fields struct {
		Status       *domain.TicketStatus `json:"status"`
		AssignedToID *int64               `json:"assignedToId"`
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	r.Status = fields.Status
	if _, present := keys["assignedToId"]; present {
		r.AssignedToSet = true
		r.AssignedToID = fields.AssignedToID
	}
	return nil
}

// CreateCommentRequest payload.
type CreateCommentRequest struct {
	AuthorID int64  `json:"authorId"`
	Body     string `json:"body"`
}

// CommentResponse represents one thread entry with its sanitized author.
type CommentResponse struct {
	ID        int64         `json:"id"`
	TicketID  int64         `json:"ticketId"`
	AuthorID  int64         `json:"authorId"`
	Body      string        `json:"body"`
	Author    *UserResponse `json:"author,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

// TicketResponse is the hydrated ticket shape the dashboard renders.
type TicketResponse struct {
	ID           int64                 `json:"id"`
	UnitID       int64                 `json:"unitId"`
	TenantID     int64                 `json:"tenantId"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Status       domain.TicketStatus   `json:"status"`
	Priority     domain.TicketPriority `json:"priority"`
	AssignedToID *int64                `json:"assignedToId"`
	AssignedTo   *UserResponse         `json:"assignedTo"`
	Unit         *UnitResponse         `json:"unit,omitempty"`
	Tenant       *TenantResponse       `json:"tenant,omitempty"`
	Comments     []CommentResponse     `json:"comments"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}
