package service

import (
	"context"
	"errors"

	"github.com/nmacchitella/fashion-inventory/internal/dto"
	"github.com/nmacchitella/fashion-inventory/internal/model"
	"github.com/nmacchitella/fashion-inventory/internal/repository"

	"github.com/google/uuid"
)

var ErrDuplicateContactEmail = errors.New("a contact with that email already exists")

type ContactService interface {
	Create(ctx context.Context, req dto.CreateContactRequest) (*dto.ContactResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ContactResponse, error)
	List(ctx context.Context, contactType string) ([]dto.ContactResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateContactRequest) (*dto.ContactResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type contactService struct {
	repo repository.ContactRepository
}

func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

func (s *contactService) Create(ctx context.Context, req dto.CreateContactRequest) (*dto.ContactResponse, error) {
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, ErrDuplicateContactEmail
	}
	c := &model.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Role:    req.Role,
		Type:    model.ContactType(req.Type),
		Notes:   req.Notes,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := contactToResponse(c)
	return &resp, nil
}

func (s *contactService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ContactResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("contact not found")
	}
	resp := contactToResponse(c)
	return &resp, nil
}

func (s *contactService) List(ctx context.Context, contactType string) ([]dto.ContactResponse, error) {
	contacts, err := s.repo.List(ctx, contactType)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ContactResponse, len(contacts))
	for i := range contacts {
		resp[i] = contactToResponse(&contacts[i])
	}
	return resp, nil
}

func (s *contactService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateContactRequest) (*dto.ContactResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("contact not found")
	}

	if req.Email != nil && *req.Email != c.Email {
		if _, err := s.repo.FindByEmail(ctx, *req.Email); err == nil {
			return nil, ErrDuplicateContactEmail
		}
		c.Email = *req.Email
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Phone != nil {
		c.Phone = req.Phone
	}
	if req.Company != nil {
		c.Company = req.Company
	}
	if req.Role != nil {
		c.Role = req.Role
	}
	if req.Type != nil {
		c.Type = model.ContactType(*req.Type)
	}
	if req.Notes != nil {
		c.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := contactToResponse(c)
	return &resp, nil
}

func (s *contactService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("contact not found")
	}
	return s.repo.Delete(ctx, id)
}

func contactToResponse(c *model.Contact) dto.ContactResponse {
	return dto.ContactResponse{
		ID:      c.ID.String(),
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Company: c.Company,
		Role:    c.Role,
		Type:    string(c.Type),
		Notes:   c.Notes,
	}
}
