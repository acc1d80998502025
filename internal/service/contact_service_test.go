package service_test

import (
	"context"
	"testing"

	"github.com/nmacchitella/fashion-inventory/internal/dto"
	"github.com/nmacchitella/fashion-inventory/internal/model"
	"github.com/nmacchitella/fashion-inventory/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}

func buildContactSvc() (service.ContactService, *stubContactRepo) {
	repo := newStubContactRepo()
	return service.NewContactService(repo), repo
}

func contactRequest(name, email string, contactType model.ContactType) dto.CreateContactRequest {
	return dto.CreateContactRequest{
		Name:  name,
		Email: email,
		Type:  string(contactType),
	}
}

func TestCreateContact_DuplicateEmail(t *testing.T) {
	svc, _ := buildContactSvc()

	_, err := svc.Create(context.Background(), contactRequest("Como Silk Mills", "sales@comosilk.example", model.ContactSupplier))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), contactRequest("Other Mill", "sales@comosilk.example", model.ContactSupplier))
	assert.ErrorIs(t, err, service.ErrDuplicateContactEmail)
}

func TestUpdateContact_EmailChangeChecksUniqueness(t *testing.T) {
	svc, _ := buildContactSvc()

	first, err := svc.Create(context.Background(), contactRequest("Mill A", "a@mills.example", model.ContactSupplier))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), contactRequest("Mill B", "b@mills.example", model.ContactSupplier))
	require.NoError(t, err)

	taken := "b@mills.example"
	_, err = svc.Update(context.Background(), mustID(t, first.ID), dto.UpdateContactRequest{Email: &taken})
	assert.ErrorIs(t, err, service.ErrDuplicateContactEmail)

	free := "a-new@mills.example"
	updated, err := svc.Update(context.Background(), mustID(t, first.ID), dto.UpdateContactRequest{Email: &free})
	require.NoError(t, err)
	assert.Equal(t, "a-new@mills.example", updated.Email)
}

func TestListContacts_FiltersByType(t *testing.T) {
	svc, _ := buildContactSvc()

	_, err := svc.Create(context.Background(), contactRequest("Mill", "mill@example.com", model.ContactSupplier))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), contactRequest("Factory", "factory@example.com", model.ContactManufacturer))
	require.NoError(t, err)

	suppliers, err := svc.List(context.Background(), string(model.ContactSupplier))
	require.NoError(t, err)
	require.Len(t, suppliers, 1)
	assert.Equal(t, "Mill", suppliers[0].Name)

	all, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
