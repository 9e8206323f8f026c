package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/leaselink/leaselink/internal/domain"
	"github.com/leaselink/leaselink/internal/events"
	"github.com/leaselink/leaselink/internal/repository"
	apperrors "github.com/leaselink/leaselink/pkg/util"
)

// TicketService owns the maintenance ticket workflow: creation, status and
// assignment updates, threaded comments, deletion and filtered listing.
type TicketService struct {
	tickets    repository.TicketRepository
	comments   repository.CommentRepository
	units      repository.UnitRepository
	properties repository.PropertyRepository
	tenants    repository.TenantRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// TicketDependencies bundles repositories for the ticket service.
type TicketDependencies struct {
	TicketRepo   repository.TicketRepository
	CommentRepo  repository.CommentRepository
	UnitRepo     repository.UnitRepository
	PropertyRepo repository.PropertyRepository
	TenantRepo   repository.TenantRepository
	UserRepo     repository.UserRepository
	Dispatcher   events.Dispatcher
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		comments:   deps.CommentRepo,
		units:      deps.UnitRepo,
		properties: deps.PropertyRepo,
		tenants:    deps.TenantRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
	}
}

// TicketCreateInput describes the ticket creation payload. Status is not a
// create-time field; new tickets always start OPEN.
type TicketCreateInput struct {
	UnitID       int64
	TenantID     int64
	Title        string
	Description  string
	Priority     domain.TicketPriority
	AssignedToID *int64
}

// TicketUpdateInput describes a status/assignment update. AssignedToSet
// distinguishes "leave the assignment alone" from "clear it": an explicit
// null in the request sets AssignedToSet with a nil AssignedToID.
type TicketUpdateInput struct {
	Status        *domain.TicketStatus
	AssignedToSet bool
	AssignedToID  *int64
}

// TicketListFilter mirrors the dashboard's conjunctive query filters.
type TicketListFilter struct {
	Status       *domain.TicketStatus
	PropertyID   *int64
	UnitID       *int64
	TenantID     *int64
	AssignedToID *int64
}

func notFoundAs(err error, resource string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound(resource)
	}
	return err
}

// CreateTicket validates references and persists a new OPEN ticket.
func (s *TicketService) CreateTicket(ctx context.Context, input TicketCreateInput) (*domain.Ticket, error) {
	if input.UnitID == 0 || input.TenantID == 0 || strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, apperrors.NewValidationError("unitId, tenantId, title, and description are required", nil)
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.TicketPriorityMedium
	}
	if !domain.ValidTicketPriority(priority) {
		return nil, apperrors.NewValidationError("invalid priority", map[string]any{"priority": priority})
	}

	if _, err := s.units.GetByID(ctx, input.UnitID); err != nil {
		return nil, notFoundAs(err, "unit")
	}
	if _, err := s.tenants.GetByID(ctx, input.TenantID); err != nil {
		return nil, notFoundAs(err, "tenant")
	}
	if input.AssignedToID != nil {
		if _, err := s.users.GetByID(ctx, *input.AssignedToID); err != nil {
			return nil, notFoundAs(err, "assigned user")
		}
	}

	ticket := &domain.Ticket{
		UnitID:       input.UnitID,
		TenantID:     input.TenantID,
		Title:        input.Title,
		Description:  input.Description,
		Status:       domain.TicketStatusOpen,
		Priority:     priority,
		AssignedToID: input.AssignedToID,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		Payload: events.TicketCreatedPayload{
			UnitID:   ticket.UnitID,
			TenantID: ticket.TenantID,
			Title:    ticket.Title,
			Priority: ticket.Priority,
		},
	})

	if err := s.hydrate(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// UpdateTicket applies a status and/or assignment change and returns the
// fully hydrated ticket. Status writes are unrestricted within the
// enumeration: there is no transition table, so CLOSED -> OPEN is legal.
func (s *TicketService) UpdateTicket(ctx context.Context, id int64, input TicketUpdateInput) (*domain.Ticket, error) {
	if input.Status == nil && !input.AssignedToSet {
		return nil, apperrors.NewValidationError("no valid fields provided for update (status, assignedToId)", nil)
	}
	if input.Status != nil && !domain.ValidTicketStatus(*input.Status) {
		return nil, apperrors.NewValidationError("invalid status", map[string]any{"status": *input.Status})
	}
	if input.AssignedToSet && input.AssignedToID != nil {
		if _, err := s.users.GetByID(ctx, *input.AssignedToID); err != nil {
			return nil, notFoundAs(err, "assigned user")
		}
	}

	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "ticket")
	}

	oldStatus := ticket.Status
	if input.Status != nil {
		ticket.Status = *input.Status
	}
	if input.AssignedToSet {
		ticket.AssignedToID = input.AssignedToID
	}

	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, notFoundAs(err, "ticket")
	}

	if input.Status != nil && *input.Status != oldStatus {
		s.publish(ctx, events.Event{
			Type:     events.EventTicketStatusChanged,
			TicketID: ticket.ID,
			Payload:  events.TicketStatusChangedPayload{OldStatus: oldStatus, NewStatus: ticket.Status},
		})
	}
	if input.AssignedToSet {
		s.publish(ctx, events.Event{
			Type:     events.EventTicketAssigned,
			TicketID: ticket.ID,
			Payload:  events.TicketAssignedPayload{AssignedToID: ticket.AssignedToID},
		})
	}

	if err := s.hydrate(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// AddComment appends a comment to a ticket thread. The stored body is the
// trimmed input.
func (s *TicketService) AddComment(ctx context.Context, ticketID, authorID int64, body string) (*domain.Comment, error) {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return nil, apperrors.NewValidationError("comment body cannot be empty", nil)
	}

	if _, err := s.tickets.GetByID(ctx, ticketID); err != nil {
		return nil, notFoundAs(err, "ticket")
	}
	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, notFoundAs(err, "author")
	}

	comment := &domain.Comment{
		TicketID: ticketID,
		AuthorID: authorID,
		Body:     trimmed,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	identity := author.Identity()
	comment.Author = &identity

	s.publish(ctx, events.Event{
		Type:     events.EventTicketCommentAdded,
		TicketID: ticketID,
		Payload:  events.TicketCommentAddedPayload{CommentID: comment.ID, AuthorID: authorID},
	})
	return comment, nil
}

// DeleteTicket removes a ticket and its comments. Comments go first so the
// delete stays consistent without relying on cascading foreign keys.
func (s *TicketService) DeleteTicket(ctx context.Context, id int64) error {
	if _, err := s.tickets.GetByID(ctx, id); err != nil {
		return notFoundAs(err, "ticket")
	}
	if err := s.comments.DeleteByTicket(ctx, id); err != nil {
		return err
	}
	if err := s.tickets.Delete(ctx, id); err != nil {
		return notFoundAs(err, "ticket")
	}

	s.publish(ctx, events.Event{Type: events.EventTicketDeleted, TicketID: id})
	return nil
}

// GetTicket returns a single hydrated ticket.
func (s *TicketService) GetTicket(ctx context.Context, id int64) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "ticket")
	}
	if err := s.hydrate(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// ListTickets returns hydrated tickets matching all present filters, most
// recent first.
func (s *TicketService) ListTickets(ctx context.Context, filter TicketListFilter) ([]domain.Ticket, error) {
	tickets, err := s.tickets.ListWithFilter(ctx, repository.TicketFilter{
		Status:       filter.Status,
		PropertyID:   filter.PropertyID,
		UnitID:       filter.UnitID,
		TenantID:     filter.TenantID,
		AssignedToID: filter.AssignedToID,
	})
	if err != nil {
		return nil, err
	}
	for i := range tickets {
		if err := s.hydrate(ctx, &tickets[i]); err != nil {
			return nil, err
		}
	}
	return tickets, nil
}

// hydrate resolves the ticket's unit (with property), tenant, assignee and
// ordered comment thread. Assignee and comment authors carry only the
// identity fields; credentials never leave the repository layer.
func (s *TicketService) hydrate(ctx context.Context, ticket *domain.Ticket) error {
	unit, err := s.units.GetByID(ctx, ticket.UnitID)
	if err != nil {
		return err
	}
	property, err := s.properties.GetByID(ctx, unit.PropertyID)
	if err != nil {
		return err
	}
	unit.Property = property
	ticket.Unit = unit

	tenant, err := s.tenants.GetByID(ctx, ticket.TenantID)
	if err != nil {
		return err
	}
	ticket.Tenant = tenant

	if ticket.AssignedToID != nil {
		assignee, err := s.users.GetByID(ctx, *ticket.AssignedToID)
		if err != nil {
			return err
		}
		identity := assignee.Identity()
		ticket.AssignedTo = &identity
	}

	comments, err := s.comments.ListByTicket(ctx, ticket.ID)
	if err != nil {
		return err
	}
	authors := make(map[int64]*domain.Identity)
	for i := range comments {
		author, ok := authors[comments[i].AuthorID]
		if !ok {
			user, err := s.users.GetByID(ctx, comments[i].AuthorID)
			if err != nil {
				return err
			}
			identity := user.Identity()
			author = &identity
			authors[comments[i].AuthorID] = author
		}
		comments[i].Author = author
	}
	ticket.Comments = comments
	return nil
}

func (s *TicketService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
