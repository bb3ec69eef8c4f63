package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type UserHandler struct {
	userService service.IUserService
}

func NewUserHandler(userService service.IUserService) *UserHandler {
	if userService == nil {
		panic("userService cannot be nil")
	}
	return &UserHandler{userService: userService}
}

// Me GET /users/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)

	user, err := h.userService.GetUserByID(r.Context(), payload.UserID)
	if err != nil {
		respondError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertUserModelToDTO(user), nil)
}

// UpdateProfile PATCH /users/update_profile
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)

	var updateDTO dto.UpdateProfileDTO
	if !decodeJSON(w, r, &updateDTO) {
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), payload.UserID, service.UpdateProfileParams{
		UserName:   updateDTO.UserName,
		Phone:      updateDTO.Phone,
		Newsletter: updateDTO.Newsletter,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertUserModelToDTO(user), nil)
}

// UploadAvatar POST /users/avatar (multipart)
func (h *UserHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)

	file, header, err := r.FormFile("avatar")
	if err != nil {
		respondError(w, err)
		return
	}
	defer file.Close()

	user, err := h.userService.UploadAvatar(r.Context(), payload.UserID, header.Filename, file)
	if err != nil {
		respondError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertUserModelToDTO(user), nil)
}

// Wishlist GET /users/wishlist
func (h *UserHandler) Wishlist(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)

	products, err := h.userService.GetWishlist(r.Context(), payload.UserID)
	if err != nil {
		respondError(w, err)
		return
	}

	api.SuccessJSON(w, products, nil)
}

// AddToWishlist POST /users/wishlist
func (h *UserHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)

	var itemDTO dto.WishlistItemDTO
	if !decodeJSON(w, r, &itemDTO) {
		return
	}

	if err := h.userService.AddToWishlist(r.Context(), payload.UserID, itemDTO.ProductID); err != nil {
		respondError(w, err)
		return
	}

	api.SuccessJSON(w, nil, nil)
}

// RemoveFromWishlist DELETE /users/wishlist/{productID}
func (h *UserHandler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)

	productID, ok := pathID(w, r, "productID")
	if !ok {
		return
	}

	if err := h.userService.RemoveFromWishlist(r.Context(), payload.UserID, productID); err != nil {
		respondError(w, err)
		return
	}

	api.NoContent(w)
}
