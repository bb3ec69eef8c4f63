package api

import (
	"encoding/json"
	"net/http"
)

// Response 標準成功回應
type Response struct {
	Data any `json:"data"`
	Meta any `json:"meta,omitempty"`
}

// ResponseError 標準錯誤回應
type ResponseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// PageMeta 分頁資訊
type PageMeta struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"page_size"`
	Total     int64 `json:"total"`
	TotalPage int64 `json:"total_page"`
}

func NewPageMeta(page, pageSize int, total int64) *PageMeta {
	totalPage := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		totalPage++
	}
	return &PageMeta{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	}
}

// SuccessJSON 寫入成功回應
func SuccessJSON(w http.ResponseWriter, data any, meta any) {
	writeJSON(w, http.StatusOK, Response{Data: data, Meta: meta})
}

// CreatedJSON 寫入 201 回應
func CreatedJSON(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, Response{Data: data})
}

// NoContent 寫入 204 回應
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// ErrorJSON 寫入錯誤回應
// err 可為 nil，message 為對外顯示的錯誤訊息
func ErrorJSON(w http.ResponseWriter, code int, err error, message string) {
	resp := ResponseError{
		Code:    code,
		Message: message,
	}
	if err != nil {
		resp.Detail = err.Error()
	}
	writeJSON(w, code, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
