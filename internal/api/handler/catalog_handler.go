package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	catalogService service.ICatalogService
}

func NewCatalogHandler(catalogService service.ICatalogService) *CatalogHandler {
	if catalogService == nil {
		panic("catalogService cannot be nil")
	}
	return &CatalogHandler{catalogService: catalogService}
}

// ListBrands GET /brands
func (h *CatalogHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.catalogService.GetBrands(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, brands, nil)
}

// GetBrand GET /brands/{slug}
func (h *CatalogHandler) GetBrand(w http.ResponseWriter, r *http.Request) {
	brand, err := h.catalogService.GetBrandBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, brand, nil)
}

// CreateBrand POST /brands (staff)
func (h *CatalogHandler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var brandDTO dto.BrandDTO
	if !decodeJSON(w, r, &brandDTO) {
		return
	}

	brand := &model.Brand{
		Name:        brandDTO.Name,
		Description: brandDTO.Description,
	}
	if err := h.catalogService.CreateBrand(r.Context(), brand); err != nil {
		respondError(w, err)
		return
	}
	api.CreatedJSON(w, brand)
}

// UpdateBrand PUT /brands/{id} (staff)
func (h *CatalogHandler) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var brandDTO dto.BrandDTO
	if !decodeJSON(w, r, &brandDTO) {
		return
	}

	brand := &model.Brand{
		BrandID:     id,
		Name:        brandDTO.Name,
		Description: brandDTO.Description,
	}
	if err := h.catalogService.UpdateBrand(r.Context(), brand); err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, brand, nil)
}

// DeleteBrand DELETE /brands/{id} (staff)
func (h *CatalogHandler) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.catalogService.DeleteBrand(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	api.NoContent(w)
}

// ListCategories GET /categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.GetCategories(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, categories, nil)
}

// CreateCategory POST /categories (staff)
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var categoryDTO dto.CategoryDTO
	if !decodeJSON(w, r, &categoryDTO) {
		return
	}

	category := &model.Category{
		Name:        categoryDTO.Name,
		Description: categoryDTO.Description,
		ParentID:    categoryDTO.ParentID,
	}
	if err := h.catalogService.CreateCategory(r.Context(), category); err != nil {
		respondError(w, err)
		return
	}
	api.CreatedJSON(w, category)
}

// UpdateCategory PUT /categories/{id} (staff)
func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var categoryDTO dto.CategoryDTO
	if !decodeJSON(w, r, &categoryDTO) {
		return
	}

	category := &model.Category{
		CategoryID:  id,
		Name:        categoryDTO.Name,
		Description: categoryDTO.Description,
		ParentID:    categoryDTO.ParentID,
	}
	if err := h.catalogService.UpdateCategory(r.Context(), category); err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, category, nil)
}

// DeleteCategory DELETE /categories/{id} (staff)
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.catalogService.DeleteCategory(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	api.NoContent(w)
}

// ListSeasons GET /seasons
func (h *CatalogHandler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := h.catalogService.GetSeasons(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, seasons, nil)
}

// CreateSeason POST /seasons (staff)
func (h *CatalogHandler) CreateSeason(w http.ResponseWriter, r *http.Request) {
	var seasonDTO dto.SeasonDTO
	if !decodeJSON(w, r, &seasonDTO) {
		return
	}

	season := &model.Season{
		Name:       seasonDTO.Name,
		SeasonType: model.SeasonType(seasonDTO.SeasonType),
		Year:       seasonDTO.Year,
	}
	if err := h.catalogService.CreateSeason(r.Context(), season); err != nil {
		respondError(w, err)
		return
	}
	api.CreatedJSON(w, season)
}

// DeleteSeason DELETE /seasons/{id} (staff)
func (h *CatalogHandler) DeleteSeason(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.catalogService.DeleteSeason(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	api.NoContent(w)
}

// ListSizes GET /sizes
func (h *CatalogHandler) ListSizes(w http.ResponseWriter, r *http.Request) {
	sizes, err := h.catalogService.GetSizes(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, sizes, nil)
}

// CreateSize POST /sizes (staff)
func (h *CatalogHandler) CreateSize(w http.ResponseWriter, r *http.Request) {
	var sizeDTO dto.SizeDTO
	if !decodeJSON(w, r, &sizeDTO) {
		return
	}

	size := &model.Size{
		Category: model.SizeCategory(sizeDTO.Category),
		Value:    sizeDTO.Value,
	}
	if err := h.catalogService.CreateSize(r.Context(), size); err != nil {
		respondError(w, err)
		return
	}
	api.CreatedJSON(w, size)
}

// DeleteSize DELETE /sizes/{id} (staff)
func (h *CatalogHandler) DeleteSize(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.catalogService.DeleteSize(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	api.NoContent(w)
}
