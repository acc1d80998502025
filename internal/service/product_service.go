package service

import (
	"context"
	"errors"
	"math"

	"github.com/nmacchitella/fashion-inventory/internal/dto"
	"github.com/nmacchitella/fashion-inventory/internal/model"
	"github.com/nmacchitella/fashion-inventory/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrDuplicateSKU    = errors.New("a product with that SKU already exists")
	ErrProductHasMoves = errors.New("cannot delete product with recorded inventory movements")
	ErrBOMLineNotFound = errors.New("bill of materials line not found")
	ErrBOMLineMismatch = errors.New("bill of materials line does not belong to product")
	ErrBOMQtyNotPos    = errors.New("bill of materials quantity must be positive")
)

// ProductService defines the business logic contract for products and their
// bill of materials.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductDetailResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductDetailResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AddBOMLine(ctx context.Context, productID uuid.UUID, req dto.BOMLineInput) (*dto.BOMLineResponse, error)
	UpdateBOMLine(ctx context.Context, productID, lineID uuid.UUID, req dto.UpdateBOMLineRequest) (*dto.BOMLineResponse, error)
	RemoveBOMLine(ctx context.Context, productID, lineID uuid.UUID) error
}

type productService struct {
	repo         repository.ProductRepository
	materialRepo repository.MaterialRepository
}

func NewProductService(repo repository.ProductRepository, materialRepo repository.MaterialRepository) ProductService {
	return &productService{repo: repo, materialRepo: materialRepo}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductDetailResponse, error) {
	if _, err := s.repo.FindBySKU(ctx, req.SKU); err == nil {
		return nil, ErrDuplicateSKU
	}

	p := &model.Product{
		SKU:    req.SKU,
		Piece:  req.Piece,
		Name:   req.Name,
		Season: req.Season,
		Phase:  model.Phase(req.Phase),
		Photos: req.Photos,
		Notes:  req.Notes,
	}

	for _, line := range req.Materials {
		materialID, err := uuid.Parse(line.MaterialID)
		if err != nil {
			return nil, errors.New("invalid material id in bill of materials")
		}
		if !line.Quantity.IsPositive() {
			return nil, ErrBOMQtyNotPos
		}
		if _, err := s.materialRepo.FindByID(ctx, materialID); err != nil {
			return nil, errors.New("material not found: " + line.MaterialID)
		}
		p.Materials = append(p.Materials, model.ProductMaterial{
			MaterialID: materialID,
			Quantity:   line.Quantity,
			Unit:       model.MeasurementUnit(line.Unit),
			Notes:      line.Notes,
		})
	}

	for _, inv := range req.Inventory {
		location := inv.Location
		if location == "" {
			location = "WAREHOUSE"
		}
		p.Inventory = append(p.Inventory, model.Inventory{
			Type:     model.InventoryProduct,
			Quantity: inv.Quantity,
			Unit:     model.MeasurementUnit(inv.Unit),
			Location: location,
		})
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, p.ID)
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductDetailResponse, error) {
	p, err := s.repo.FindDetailByID(ctx, id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	detail := &dto.ProductDetailResponse{
		ProductResponse: productToResponse(p),
		Materials:       make([]dto.BOMLineResponse, 0, len(p.Materials)),
		Inventory:       make([]dto.InventoryResponse, 0, len(p.Inventory)),
	}
	for i := range p.Materials {
		detail.Materials = append(detail.Materials, bomLineToResponse(&p.Materials[i]))
	}
	for i := range p.Inventory {
		detail.Inventory = append(detail.Inventory, inventoryToResponse(&p.Inventory[i]))
	}
	return detail, nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProductListResponse{
		Data:       make([]dto.ProductResponse, len(products)),
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}
	for i := range products {
		resp.Data[i] = productToResponse(&products[i])
	}
	return resp, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	if req.Piece != nil {
		p.Piece = *req.Piece
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Season != nil {
		p.Season = *req.Season
	}
	if req.Phase != nil {
		p.Phase = model.Phase(*req.Phase)
	}
	if req.Photos != nil {
		p.Photos = req.Photos
	}
	if req.Notes != nil {
		p.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := productToResponse(p)
	return &resp, nil
}

// Delete refuses to remove a product whose inventory has recorded movements;
// that history must stay auditable.
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrProductNotFound
	}
	moves, err := s.repo.CountInventoryMovements(ctx, id)
	if err != nil {
		return err
	}
	if moves > 0 {
		return ErrProductHasMoves
	}
	return s.repo.Delete(ctx, id)
}

func (s *productService) AddBOMLine(ctx context.Context, productID uuid.UUID, req dto.BOMLineInput) (*dto.BOMLineResponse, error) {
	if _, err := s.repo.FindByID(ctx, productID); err != nil {
		return nil, ErrProductNotFound
	}
	materialID, err := uuid.Parse(req.MaterialID)
	if err != nil {
		return nil, errors.New("invalid material id")
	}
	if !req.Quantity.IsPositive() {
		return nil, ErrBOMQtyNotPos
	}
	if _, err := s.materialRepo.FindByID(ctx, materialID); err != nil {
		return nil, errors.New("material not found")
	}

	line := &model.ProductMaterial{
		ProductID:  productID,
		MaterialID: materialID,
		Quantity:   req.Quantity,
		Unit:       model.MeasurementUnit(req.Unit),
		Notes:      req.Notes,
	}
	if err := s.repo.AddBOMLine(ctx, line); err != nil {
		return nil, err
	}

	saved, err := s.repo.FindBOMLine(ctx, line.ID)
	if err != nil {
		return nil, err
	}
	resp := bomLineToResponse(saved)
	return &resp, nil
}

func (s *productService) UpdateBOMLine(ctx context.Context, productID, lineID uuid.UUID, req dto.UpdateBOMLineRequest) (*dto.BOMLineResponse, error) {
	line, err := s.repo.FindBOMLine(ctx, lineID)
	if err != nil {
		return nil, ErrBOMLineNotFound
	}
	if line.ProductID != productID {
		return nil, ErrBOMLineMismatch
	}

	if req.Quantity != nil {
		if !req.Quantity.IsPositive() {
			return nil, ErrBOMQtyNotPos
		}
		line.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		line.Unit = model.MeasurementUnit(*req.Unit)
	}
	if req.Notes != nil {
		line.Notes = req.Notes
	}

	if err := s.repo.UpdateBOMLine(ctx, line); err != nil {
		return nil, err
	}
	resp := bomLineToResponse(line)
	return &resp, nil
}

func (s *productService) RemoveBOMLine(ctx context.Context, productID, lineID uuid.UUID) error {
	line, err := s.repo.FindBOMLine(ctx, lineID)
	if err != nil {
		return ErrBOMLineNotFound
	}
	if line.ProductID != productID {
		return ErrBOMLineMismatch
	}
	return s.repo.RemoveBOMLine(ctx, lineID)
}

func productToResponse(p *model.Product) dto.ProductResponse {
	photos := p.Photos
	if photos == nil {
		photos = []string{}
	}
	return dto.ProductResponse{
		ID:     p.ID.String(),
		SKU:    p.SKU,
		Piece:  p.Piece,
		Name:   p.Name,
		Season: p.Season,
		Phase:  string(p.Phase),
		Photos: photos,
		Notes:  p.Notes,
	}
}

func bomLineToResponse(line *model.ProductMaterial) dto.BOMLineResponse {
	resp := dto.BOMLineResponse{
		ID:       line.ID.String(),
		Quantity: line.Quantity,
		Unit:     string(line.Unit),
		Notes:    line.Notes,
	}
	if line.Material != nil {
		resp.Material = materialToResponse(line.Material)
	}
	return resp
}
