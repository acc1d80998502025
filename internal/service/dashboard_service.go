package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nmacchitella/fashion-inventory/internal/dto"
	"github.com/nmacchitella/fashion-inventory/internal/model"
	"github.com/nmacchitella/fashion-inventory/internal/repository"

	"github.com/redis/go-redis/v9"
)

const (
	dashboardCacheKey = "dashboard:summary"
	dashboardCacheTTL = 60 * time.Second
)

// DashboardService aggregates the landing-page counters. Results are cached
// in Redis for a short window since the counts drive a frequently polled view.
type DashboardService interface {
	Summary(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	materialRepo repository.MaterialRepository
	productRepo  repository.ProductRepository
	contactRepo  repository.ContactRepository
	orderRepo    repository.OrderRepository
	rdb          *redis.Client
}

func NewDashboardService(
	materialRepo repository.MaterialRepository,
	productRepo repository.ProductRepository,
	contactRepo repository.ContactRepository,
	orderRepo repository.OrderRepository,
	rdb *redis.Client,
) DashboardService {
	return &dashboardService{
		materialRepo: materialRepo,
		productRepo:  productRepo,
		contactRepo:  contactRepo,
		orderRepo:    orderRepo,
		rdb:          rdb,
	}
}

func (s *dashboardService) Summary(ctx context.Context) (*dto.DashboardResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, dashboardCacheKey).Bytes(); err == nil {
			var resp dto.DashboardResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return &resp, nil
			}
		}
	}

	var resp dto.DashboardResponse
	var err error
	if resp.Materials, err = s.materialRepo.Count(ctx); err != nil {
		return nil, err
	}
	if resp.Products, err = s.productRepo.Count(ctx); err != nil {
		return nil, err
	}
	if resp.Contacts, err = s.contactRepo.Count(ctx); err != nil {
		return nil, err
	}
	if resp.OpenOrders, err = s.orderRepo.CountByStatus(ctx, model.OrderPending, model.OrderConfirmed, model.OrderShipped); err != nil {
		return nil, err
	}
	if resp.PendingArrival, err = s.orderRepo.CountByStatus(ctx, model.OrderConfirmed, model.OrderShipped); err != nil {
		return nil, err
	}

	// Populate cache, best effort
	if s.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = s.rdb.Set(context.Background(), dashboardCacheKey, b, dashboardCacheTTL).Err()
		}
	}
	return &resp, nil
}
