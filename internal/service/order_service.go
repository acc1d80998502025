package service

import (
	"context"
	"errors"
	"math"

	"github.com/nmacchitella/fashion-inventory/internal/dto"
	"github.com/nmacchitella/fashion-inventory/internal/model"
	"github.com/nmacchitella/fashion-inventory/internal/repository"
	"github.com/nmacchitella/fashion-inventory/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrDuplicateOrderNum   = errors.New("an order with that order number already exists")
	ErrOrderNotEditable    = errors.New("delivered or cancelled orders cannot be modified")
	ErrInvalidOrderPayload = errors.New("invalid order payload")
)

// OrderService defines the business logic contract for material purchase orders.
type OrderService interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error)
	List(ctx context.Context, filter dto.OrderFilter) (*dto.OrderListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateOrderRequest) (*dto.OrderResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type orderService struct {
	repo         repository.OrderRepository
	materialRepo repository.MaterialRepository
	contactRepo  repository.ContactRepository
	dispatcher   *worker.Dispatcher
}

func NewOrderService(
	repo repository.OrderRepository,
	materialRepo repository.MaterialRepository,
	contactRepo repository.ContactRepository,
	dispatcher *worker.Dispatcher,
) OrderService {
	return &orderService{
		repo:         repo,
		materialRepo: materialRepo,
		contactRepo:  contactRepo,
		dispatcher:   dispatcher,
	}
}

func (s *orderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if _, err := s.repo.FindByOrderNumber(ctx, req.OrderNumber); err == nil {
		return nil, ErrDuplicateOrderNum
	}

	o := &model.MaterialOrder{
		OrderNumber:      req.OrderNumber,
		Supplier:         req.Supplier,
		Currency:         req.Currency,
		OrderDate:        req.OrderDate,
		ExpectedDelivery: req.ExpectedDelivery,
		Status:           model.OrderStatus(req.Status),
		Notes:            req.Notes,
	}

	total := decimal.Zero
	for _, item := range req.Items {
		materialID, err := uuid.Parse(item.MaterialID)
		if err != nil {
			return nil, ErrInvalidOrderPayload
		}
		if _, err := s.materialRepo.FindByID(ctx, materialID); err != nil {
			return nil, errors.New("material not found: " + item.MaterialID)
		}
		lineTotal := item.Quantity.Mul(item.UnitPrice)
		total = total.Add(lineTotal)
		o.OrderItems = append(o.OrderItems, model.MaterialOrderItem{
			MaterialID: materialID,
			Quantity:   item.Quantity,
			Unit:       model.MeasurementUnit(item.Unit),
			UnitPrice:  item.UnitPrice,
			TotalPrice: lineTotal,
			Notes:      item.Notes,
		})
	}
	o.TotalPrice = total

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	if o.Status == model.OrderConfirmed {
		s.notifySupplier(ctx, o)
	}

	return s.GetByID(ctx, o.ID)
}

func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	resp := orderToResponse(o)
	return &resp, nil
}

func (s *orderService) List(ctx context.Context, filter dto.OrderFilter) (*dto.OrderListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	orders, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.OrderListResponse{
		Data:       make([]dto.OrderResponse, len(orders)),
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}
	for i := range orders {
		resp.Data[i] = orderToResponse(&orders[i])
	}
	return resp, nil
}

func (s *orderService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if o.Status == model.OrderDelivered || o.Status == model.OrderCancelled {
		return nil, ErrOrderNotEditable
	}

	previousStatus := o.Status

	if req.Supplier != nil {
		o.Supplier = *req.Supplier
	}
	if req.Currency != nil {
		o.Currency = *req.Currency
	}
	if req.OrderDate != nil {
		o.OrderDate = *req.OrderDate
	}
	if req.ExpectedDelivery != nil {
		o.ExpectedDelivery = *req.ExpectedDelivery
	}
	if req.ActualDelivery != nil {
		o.ActualDelivery = req.ActualDelivery
	}
	if req.Status != nil {
		o.Status = model.OrderStatus(*req.Status)
	}
	if req.Notes != nil {
		o.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if o.Status == model.OrderConfirmed && previousStatus != model.OrderConfirmed {
		s.notifySupplier(ctx, o)
	}

	resp := orderToResponse(o)
	return &resp, nil
}

func (s *orderService) Delete(ctx context.Context, id uuid.UUID) error {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrOrderNotFound
	}
	if o.Status != model.OrderPending && o.Status != model.OrderCancelled {
		return errors.New("only pending or cancelled orders can be deleted")
	}
	return s.repo.Delete(ctx, id)
}

// notifySupplier enqueues an async purchase-order email for the supplier
// contact, best-effort. Suppliers are matched by name among SUPPLIER contacts;
// without a match the email is skipped, never the order.
func (s *orderService) notifySupplier(ctx context.Context, o *model.MaterialOrder) {
	if s.dispatcher == nil {
		return
	}
	contacts, err := s.contactRepo.List(ctx, string(model.ContactSupplier))
	if err != nil {
		log.Warn().Err(err).Str("order", o.OrderNumber).Msg("supplier lookup failed, skipping notification")
		return
	}
	toEmail := supplierContactEmail(contacts, o.Supplier)
	if toEmail == "" {
		log.Warn().Str("supplier", o.Supplier).Str("order", o.OrderNumber).Msg("no supplier contact found, skipping notification")
		return
	}

	payload := worker.OrderEmailPayload{
		OrderID: o.ID.String(),
		ToEmail: toEmail,
	}
	if err := s.dispatcher.EnqueueOrderEmail(ctx, payload); err != nil {
		log.Error().Err(err).Str("order", o.OrderNumber).Msg("failed to enqueue order email")
	}
}

// supplierContactEmail resolves the notification address for a supplier name.
// A company-name match anywhere in the list wins over any contact-name match.
func supplierContactEmail(contacts []model.Contact, supplier string) string {
	for _, c := range contacts {
		if c.Company != nil && *c.Company == supplier {
			return c.Email
		}
	}
	for _, c := range contacts {
		if c.Name == supplier {
			return c.Email
		}
	}
	return ""
}

func orderToResponse(o *model.MaterialOrder) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.OrderItems))
	for i := range o.OrderItems {
		item := &o.OrderItems[i]
		ir := dto.OrderItemResponse{
			ID:         item.ID.String(),
			Quantity:   item.Quantity,
			Unit:       string(item.Unit),
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
			Notes:      item.Notes,
		}
		if item.Material != nil {
			ir.Material = materialToResponse(item.Material)
		}
		items = append(items, ir)
	}
	return dto.OrderResponse{
		ID:               o.ID.String(),
		OrderNumber:      o.OrderNumber,
		Supplier:         o.Supplier,
		Items:            items,
		TotalPrice:       o.TotalPrice,
		Currency:         o.Currency,
		OrderDate:        o.OrderDate,
		ExpectedDelivery: o.ExpectedDelivery,
		ActualDelivery:   o.ActualDelivery,
		Status:           string(o.Status),
		Notes:            o.Notes,
	}
}
