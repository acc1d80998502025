package service_test

import (
	"context"
	"testing"

	"github.com/nmacchitella/fashion-inventory/internal/model"
	"github.com/nmacchitella/fashion-inventory/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummary_CountsOpenAndPendingOrders(t *testing.T) {
	materialRepo := newStubMaterialRepo()
	productRepo := newStubProductRepo(materialRepo)
	contactRepo := newStubContactRepo()
	orderRepo := newStubOrderRepo()

	seedMaterial(t, materialRepo)
	seedMaterial(t, materialRepo)
	require.NoError(t, contactRepo.Create(context.Background(), &model.Contact{
		Name:  "Mill",
		Email: "mill@example.com",
		Type:  model.ContactSupplier,
	}))
	for i, status := range []model.OrderStatus{
		model.OrderPending,
		model.OrderConfirmed,
		model.OrderShipped,
		model.OrderDelivered,
		model.OrderCancelled,
	} {
		require.NoError(t, orderRepo.Create(context.Background(), &model.MaterialOrder{
			OrderNumber: string(rune('A' + i)),
			Supplier:    "Mill",
			Status:      status,
		}))
	}

	svc := service.NewDashboardService(materialRepo, productRepo, contactRepo, orderRepo, nil)

	resp, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.Materials)
	assert.Equal(t, int64(0), resp.Products)
	assert.Equal(t, int64(1), resp.Contacts)
	assert.Equal(t, int64(3), resp.OpenOrders)
	assert.Equal(t, int64(2), resp.PendingArrival)
}
