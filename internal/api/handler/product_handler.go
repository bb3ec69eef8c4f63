package handler

import (
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/er"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	productService service.IProductService
}

func NewProductHandler(productService service.IProductService) *ProductHandler {
	if productService == nil {
		panic("productService cannot be nil")
	}
	return &ProductHandler{productService: productService}
}

// productFilterFromQuery 解析商品列表的查詢條件
func productFilterFromQuery(r *http.Request) db.ProductFilter {
	var filter db.ProductFilter

	if v := r.URL.Query().Get("brand_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			brandID := uint(id)
			filter.BrandID = &brandID
		}
	}
	if v := r.URL.Query().Get("category_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			categoryID := uint(id)
			filter.CategoryID = &categoryID
		}
	}
	if v := r.URL.Query().Get("is_featured"); v != "" {
		if featured, err := strconv.ParseBool(v); err == nil {
			filter.IsFeatured = &featured
		}
	}
	return filter
}

// ListProducts GET /products
// 一般使用者只會看到上架中的商品，員工可用 is_available 查詢全部
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter := productFilterFromQuery(r)

	payload := currentPayload(r)
	isStaff := payload != nil && model.UserRole(payload.Role).IsStaff()
	if isStaff {
		if v := r.URL.Query().Get("is_available"); v != "" {
			if available, err := strconv.ParseBool(v); err == nil {
				filter.IsAvailable = &available
			}
		}
	} else {
		available := true
		filter.IsAvailable = &available
	}

	page, pageSize := queryPaging(r)
	products, total, err := h.productService.GetProducts(r.Context(), filter, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, products, api.NewPageMeta(page, pageSize, total))
}

// GetProduct GET /products/{slug}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.productService.GetProductBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, product, nil)
}

// CreateProduct POST /products (staff)
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var productDTO dto.ProductDTO
	if !decodeJSON(w, r, &productDTO) {
		return
	}

	product := productFromDTO(&productDTO)
	if err := h.productService.CreateProduct(r.Context(), product); err != nil {
		respondError(w, err)
		return
	}
	api.CreatedJSON(w, product)
}

// UpdateProduct PUT /products/{id} (staff)
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var productDTO dto.ProductDTO
	if !decodeJSON(w, r, &productDTO) {
		return
	}

	product := productFromDTO(&productDTO)
	product.ProductID = id
	if err := h.productService.UpdateProduct(r.Context(), product); err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, product, nil)
}

// DeleteProduct DELETE /products/{id} (staff)
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	api.NoContent(w)
}

// UploadImage POST /products/{id}/images (staff)
func (h *ProductHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, er.New(er.BadRequestCode, "image file is required"))
		return
	}
	defer file.Close()

	isPrimary, _ := strconv.ParseBool(r.FormValue("is_primary"))
	image, err := h.productService.UploadProductImage(r.Context(), id, header.Filename, file, isPrimary)
	if err != nil {
		respondError(w, err)
		return
	}
	api.CreatedJSON(w, image)
}

// DeleteImage DELETE /products/{id}/images/{imageID} (staff)
func (h *ProductHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	imageID, ok := pathID(w, r, "imageID")
	if !ok {
		return
	}
	if err := h.productService.DeleteProductImage(r.Context(), id, imageID); err != nil {
		respondError(w, err)
		return
	}
	api.NoContent(w)
}

// SetPrimaryImage PUT /products/{id}/images/{imageID}/primary (staff)
func (h *ProductHandler) SetPrimaryImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	imageID, ok := pathID(w, r, "imageID")
	if !ok {
		return
	}
	if err := h.productService.SetPrimaryImage(r.Context(), id, imageID); err != nil {
		respondError(w, err)
		return
	}
	api.NoContent(w)
}

func productFromDTO(d *dto.ProductDTO) *model.Product {
	return &model.Product{
		Name:        d.Name,
		Description: d.Description,
		BrandID:     d.BrandID,
		CategoryID:  d.CategoryID,
		SeasonID:    d.SeasonID,
		SizeID:      d.SizeID,
		Condition:   model.ProductCondition(d.Condition),
		Color:       d.Color,
		Material:    d.Material,
		Price:       d.Price,
		IsFeatured:  d.IsFeatured,
		IsAvailable: d.IsAvailable,
	}
}
