package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type AddressHandler struct {
	addressService service.IAddressService
}

func NewAddressHandler(addressService service.IAddressService) *AddressHandler {
	if addressService == nil {
		panic("addressService cannot be nil")
	}
	return &AddressHandler{addressService: addressService}
}

// List GET /addresses
func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)

	addresses, err := h.addressService.ListAddresses(r.Context(), payload.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, addresses, nil)
}

// Get GET /addresses/{id}
func (h *AddressHandler) Get(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	address, err := h.addressService.GetAddress(r.Context(), payload.UserID, id)
	if err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, address, nil)
}

// Create POST /addresses
func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)

	var addressDTO dto.AddressDTO
	if !decodeJSON(w, r, &addressDTO) {
		return
	}

	address, err := h.addressService.CreateAddress(r.Context(), &model.Address{
		UserID:       payload.UserID,
		FullName:     addressDTO.FullName,
		Phone:        addressDTO.Phone,
		Country:      addressDTO.Country,
		City:         addressDTO.City,
		PostalCode:   addressDTO.PostalCode,
		AddressLine1: addressDTO.AddressLine1,
		AddressLine2: addressDTO.AddressLine2,
		IsDefault:    addressDTO.IsDefault,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	api.CreatedJSON(w, address)
}

// Update PUT /addresses/{id}
func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var addressDTO dto.AddressDTO
	if !decodeJSON(w, r, &addressDTO) {
		return
	}

	address, err := h.addressService.UpdateAddress(r.Context(), payload.UserID, &model.Address{
		AddressID:    id,
		UserID:       payload.UserID,
		FullName:     addressDTO.FullName,
		Phone:        addressDTO.Phone,
		Country:      addressDTO.Country,
		City:         addressDTO.City,
		PostalCode:   addressDTO.PostalCode,
		AddressLine1: addressDTO.AddressLine1,
		AddressLine2: addressDTO.AddressLine2,
		IsDefault:    addressDTO.IsDefault,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, address, nil)
}

// Delete DELETE /addresses/{id}
func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.addressService.DeleteAddress(r.Context(), payload.UserID, id); err != nil {
		respondError(w, err)
		return
	}
	api.NoContent(w)
}

// SetDefault POST /addresses/{id}/set_default
func (h *AddressHandler) SetDefault(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.addressService.SetDefault(r.Context(), payload.UserID, id); err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, nil, nil)
}
