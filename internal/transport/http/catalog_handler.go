package http

import (
	"context"
	"iter"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/queries/list_items"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/usecases/sweep_stale_items"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/apperr"
)

// CatalogService is the part of catalog.Catalog the handler needs.
type CatalogService interface {
	AddItem(ctx context.Context, in catalog.NewItem) (domain.ItemSnapshot, error)
	UpdateStock(ctx context.Context, itemID, stock int64) (domain.ItemSnapshot, error)
	ApplyDiscount(ctx context.Context, category, brand string, percent decimal.Decimal) (int, error)
	Sweep(ctx context.Context, req *sweep_stale_items.Request) (*sweep_stale_items.Response, error)
	ListOutOfStock(ctx context.Context) iter.Seq2[domain.ItemSnapshot, error]
	FindByID(ctx context.Context, itemID int64) (domain.ItemSnapshot, error)
	ListItems(ctx context.Context, req *list_items.Request) (*contracts.ListResult, error)
}

// CatalogHandler serves the item endpoints.
type CatalogHandler struct {
	svc    CatalogService
	logger *zap.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(svc CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, logger: logger}
}

// AddItemRequest is the body of POST /api/v1/items.
type AddItemRequest struct {
	Category string           `json:"category"`
	Size     string           `json:"size"`
	Stock    int64            `json:"stock"`
	Price    *decimal.Decimal `json:"price"`
	Brand    string           `json:"brand"`
	Color    string           `json:"color"`
}

// UpdateStockRequest is the body of PUT /api/v1/items/{id}/stock.
type UpdateStockRequest struct {
	Stock *int64 `json:"stock"`
}

// ApplyDiscountRequest is the body of POST /api/v1/discounts.
type ApplyDiscountRequest struct {
	Category        string           `json:"category"`
	Brand           string           `json:"brand"`
	DiscountPercent *decimal.Decimal `json:"discount_percent"`
}

// ApplyDiscountResponse reports how many items a discount reached.
type ApplyDiscountResponse struct {
	Updated int `json:"updated"`
}

// SweepRequest is the optional body of POST /api/v1/sweeps.
type SweepRequest struct {
	Now        *time.Time `json:"now,omitempty"`
	StaleUnits *int64     `json:"stale_units,omitempty"`
}

// SweepResponse reports what a sweep removed.
type SweepResponse struct {
	Removed int     `json:"removed"`
	ItemIDs []int64 `json:"item_ids"`
}

// ListItemsResponse is a page of items.
type ListItemsResponse struct {
	Items      []Item `json:"items"`
	TotalCount int64  `json:"total_count"`
}

// AddItem handles POST /api/v1/items.
func (h *CatalogHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if req.Price == nil {
		writeError(w, r, h.logger, apperr.NewValidationError(domain.FieldPrice, "is required"))
		return
	}

	snap, err := h.svc.AddItem(r.Context(), catalog.NewItem{
		Category: req.Category,
		Size:     req.Size,
		Stock:    req.Stock,
		Price:    *req.Price,
		Brand:    req.Brand,
		Color:    req.Color,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, itemFromSnapshot(snap))
}

// GetItem handles GET /api/v1/items/{id}.
func (h *CatalogHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	snap, err := h.svc.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, itemFromSnapshot(snap))
}

// ListItems handles GET /api/v1/items?category=&brand=&page_size=&offset=.
// A present but empty brand parameter selects items without a brand.
func (h *CatalogHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := &list_items.Request{}

	if q.Has("category") {
		category := q.Get("category")
		req.Category = &category
	}
	if q.Has("brand") {
		brand := q.Get("brand")
		req.Brand = &brand
	}
	if v := q.Get("page_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, r, h.logger, apperr.NewValidationError("page_size", "must be an integer"))
			return
		}
		req.PageSize = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, r, h.logger, apperr.NewValidationError("offset", "must be an integer"))
			return
		}
		req.Offset = n
	}

	res, err := h.svc.ListItems(r.Context(), req)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, ListItemsResponse{
		Items:      itemsFromSnapshots(res.Items),
		TotalCount: res.TotalCount,
	})
}

// UpdateStock handles PUT /api/v1/items/{id}/stock.
func (h *CatalogHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var req UpdateStockRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if req.Stock == nil {
		writeError(w, r, h.logger, apperr.NewValidationError(domain.FieldStockQuantity, "is required"))
		return
	}

	snap, err := h.svc.UpdateStock(r.Context(), id, *req.Stock)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, itemFromSnapshot(snap))
}

// ApplyDiscount handles POST /api/v1/discounts.
func (h *CatalogHandler) ApplyDiscount(w http.ResponseWriter, r *http.Request) {
	var req ApplyDiscountRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if req.DiscountPercent == nil {
		writeError(w, r, h.logger, apperr.NewValidationError(domain.FieldDiscountPercent, "is required"))
		return
	}

	n, err := h.svc.ApplyDiscount(r.Context(), req.Category, req.Brand, *req.DiscountPercent)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, ApplyDiscountResponse{Updated: n})
}

// Sweep handles POST /api/v1/sweeps. An empty body sweeps at the current
// time with the configured policy.
func (h *CatalogHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	var req SweepRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	sweepReq := &sweep_stale_items.Request{StaleUnits: req.StaleUnits}
	if req.Now != nil {
		sweepReq.Now = *req.Now
	}

	resp, err := h.svc.Sweep(r.Context(), sweepReq)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	h.logger.Info("sweep completed", zap.Int("removed", resp.Removed), zap.Int64s("item_ids", resp.ItemIDs))
	writeJSON(w, http.StatusOK, SweepResponse{Removed: resp.Removed, ItemIDs: resp.ItemIDs})
}

// ListOutOfStock handles GET /api/v1/items/out-of-stock.
func (h *CatalogHandler) ListOutOfStock(w http.ResponseWriter, r *http.Request) {
	items := make([]Item, 0)
	for snap, err := range h.svc.ListOutOfStock(r.Context()) {
		if err != nil {
			writeError(w, r, h.logger, err)
			return
		}
		items = append(items, itemFromSnapshot(snap))
	}
	writeJSON(w, http.StatusOK, ListItemsResponse{Items: items, TotalCount: int64(len(items))})
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, apperr.Validationf("id", "%q is not an integer", r.PathValue("id"))
	}
	return id, nil
}
