package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/go-chi/chi/v5"
)

type ContentHandler struct {
	contentService service.IContentService
}

func NewContentHandler(contentService service.IContentService) *ContentHandler {
	if contentService == nil {
		panic("contentService cannot be nil")
	}
	return &ContentHandler{contentService: contentService}
}

// 員工可見未發佈的內容
func staffView(r *http.Request) bool {
	payload := currentPayload(r)
	return payload != nil && model.UserRole(payload.Role).IsStaff()
}

// ListPages GET /pages
func (h *ContentHandler) ListPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.contentService.GetPages(r.Context(), staffView(r))
	if err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, pages, nil)
}

// GetPage GET /pages/{slug}
func (h *ContentHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.contentService.GetPageBySlug(r.Context(), chi.URLParam(r, "slug"), staffView(r))
	if err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, page, nil)
}

// CreatePage POST /pages (staff)
func (h *ContentHandler) CreatePage(w http.ResponseWriter, r *http.Request) {
	var req dto.PageDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	page := &model.Page{
		Title:           req.Title,
		Content:         req.Content,
		MetaDescription: req.MetaDescription,
		Published:       req.Published,
	}
	if err := h.contentService.CreatePage(r.Context(), page); err != nil {
		respondError(w, err)
		return
	}
	api.CreatedJSON(w, page)
}

// UpdatePage PUT /pages/{id} (staff)
func (h *ContentHandler) UpdatePage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.PageDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	page := &model.Page{
		PageID:          id,
		Title:           req.Title,
		Content:         req.Content,
		MetaDescription: req.MetaDescription,
		Published:       req.Published,
	}
	if err := h.contentService.UpdatePage(r.Context(), page); err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, page, nil)
}

// DeletePage DELETE /pages/{id} (staff)
func (h *ContentHandler) DeletePage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.contentService.DeletePage(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	api.NoContent(w)
}

// ListBlogPosts GET /blog
func (h *ContentHandler) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	page, pageSize := queryPaging(r)
	posts, total, err := h.contentService.GetBlogPosts(r.Context(), staffView(r), page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, posts, api.NewPageMeta(page, pageSize, total))
}

// GetBlogPost GET /blog/{slug}
func (h *ContentHandler) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.contentService.GetBlogPostBySlug(r.Context(), chi.URLParam(r, "slug"), staffView(r))
	if err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, post, nil)
}

// CreateBlogPost POST /blog (staff)
func (h *ContentHandler) CreateBlogPost(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)

	var req dto.BlogPostDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	post := &model.BlogPost{
		AuthorID:  payload.UserID,
		Title:     req.Title,
		Content:   req.Content,
		Tags:      req.Tags,
		Published: req.Published,
	}
	if err := h.contentService.CreateBlogPost(r.Context(), post); err != nil {
		respondError(w, err)
		return
	}
	api.CreatedJSON(w, post)
}

// UpdateBlogPost PUT /blog/{id} (staff)
func (h *ContentHandler) UpdateBlogPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.BlogPostDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	post := &model.BlogPost{
		PostID:    id,
		Title:     req.Title,
		Content:   req.Content,
		Tags:      req.Tags,
		Published: req.Published,
	}
	if err := h.contentService.UpdateBlogPost(r.Context(), post); err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, post, nil)
}

// DeleteBlogPost DELETE /blog/{id} (staff)
func (h *ContentHandler) DeleteBlogPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.contentService.DeleteBlogPost(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	api.NoContent(w)
}

// ListFAQs GET /faqs
func (h *ContentHandler) ListFAQs(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.contentService.GetFAQs(r.Context(), staffView(r))
	if err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, faqs, nil)
}

// CreateFAQ POST /faqs (staff)
func (h *ContentHandler) CreateFAQ(w http.ResponseWriter, r *http.Request) {
	var req dto.FAQDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	faq := &model.FAQ{
		Question: req.Question,
		Answer:   req.Answer,
		Order:    req.Order,
		Active:   req.Active,
	}
	if err := h.contentService.CreateFAQ(r.Context(), faq); err != nil {
		respondError(w, err)
		return
	}
	api.CreatedJSON(w, faq)
}

// UpdateFAQ PUT /faqs/{id} (staff)
func (h *ContentHandler) UpdateFAQ(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.FAQDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	faq := &model.FAQ{
		FAQID:    id,
		Question: req.Question,
		Answer:   req.Answer,
		Order:    req.Order,
		Active:   req.Active,
	}
	if err := h.contentService.UpdateFAQ(r.Context(), faq); err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, faq, nil)
}

// DeleteFAQ DELETE /faqs/{id} (staff)
func (h *ContentHandler) DeleteFAQ(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.contentService.DeleteFAQ(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	api.NoContent(w)
}
