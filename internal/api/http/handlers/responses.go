package handlers

import (
	"github.com/leaselink/leaselink/internal/api/dto"
	"github.com/leaselink/leaselink/internal/domain"
)

func propertyResponse(property *domain.Property) dto.PropertyResponse {
	resp := dto.PropertyResponse{
		ID:        property.ID,
		Name:      property.Name,
		Address:   property.Address,
		City:      property.City,
		State:     property.State,
		Zip:       property.Zip,
		CreatedAt: property.CreatedAt,
		UpdatedAt: property.UpdatedAt,
	}
	for i := range property.Units {
		resp.Units = append(resp.Units, unitResponse(&property.Units[i]))
	}
	return resp
}

func unitResponse(unit *domain.Unit) dto.UnitResponse {
	resp := dto.UnitResponse{
		ID:         unit.ID,
		PropertyID: unit.PropertyID,
		UnitNumber: unit.UnitNumber,
		Beds:       unit.Beds,
		Baths:      unit.Baths,
		Sqft:       unit.Sqft,
		Status:     unit.Status,
		CreatedAt:  unit.CreatedAt,
		UpdatedAt:  unit.UpdatedAt,
	}
	if unit.Property != nil {
		property := propertyResponse(unit.Property)
		resp.Property = &property
	}
	return resp
}

func tenantResponse(tenant *domain.Tenant) dto.TenantResponse {
	return dto.TenantResponse{
		ID:        tenant.ID,
		Name:      tenant.Name,
		Email:     tenant.Email,
		Phone:     tenant.Phone,
		UnitID:    tenant.UnitID,
		CreatedAt: tenant.CreatedAt,
		UpdatedAt: tenant.UpdatedAt,
	}
}

func commentResponse(comment *domain.Comment) dto.CommentResponse {
	resp := dto.CommentResponse{
		ID:        comment.ID,
		TicketID:  comment.TicketID,
		AuthorID:  comment.AuthorID,
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt,
	}
	if comment.Author != nil {
		author := dto.NewUserResponse(*comment.Author)
		resp.Author = &author
	}
	return resp
}

func ticketResponse(ticket *domain.Ticket) dto.TicketResponse {
	resp := dto.TicketResponse{
		ID:           ticket.ID,
		UnitID:       ticket.UnitID,
		TenantID:     ticket.TenantID,
		Title:        ticket.Title,
		Description:  ticket.Description,
		Status:       ticket.Status,
		Priority:     ticket.Priority,
		AssignedToID: ticket.AssignedToID,
		Comments:     make([]dto.CommentResponse, 0, len(ticket.Comments)),
		CreatedAt:    ticket.CreatedAt,
		UpdatedAt:    ticket.UpdatedAt,
	}
	if ticket.AssignedTo != nil {
		assignee := dto.NewUserResponse(*ticket.AssignedTo)
		resp.AssignedTo = &assignee
	}
	if ticket.Unit != nil {
		unit := unitResponse(ticket.Unit)
		resp.Unit = &unit
	}
	if ticket.Tenant != nil {
		tenant := tenantResponse(ticket.Tenant)
		resp.Tenant = &tenant
	}
	for i := range ticket.Comments {
		resp.Comments = append(resp.Comments, commentResponse(&ticket.Comments[i]))
	}
	return resp
}
