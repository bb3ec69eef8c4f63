package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/token"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/api"
	er "github.com/RoyceAzure/lab/shopcenter/internal/pkg/er"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
	"github.com/go-chi/chi/v5"
)

// respondError 依錯誤類型寫入對應的錯誤回應
// AppError帶狀態碼，其餘一律500
func respondError(w http.ResponseWriter, err error) {
	if appErr := er.AsAppError(err); appErr != nil {
		api.ErrorJSON(w, int(appErr.Code), appErr, er.ErrStrMap[appErr.Code])
		return
	}
	api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
}

// decodeJSON 解析request body，失敗時直接回400
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), err, er.ErrStrMap[er.BadRequestCode])
		return false
	}
	return true
}

// pathID 取出url path中的數字參數，失敗時直接回400
func pathID(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), err, er.ErrStrMap[er.BadRequestCode])
		return 0, false
	}
	return uint(id), true
}

// currentPayload 取出已通過AuthMiddleware的token payload
func currentPayload(r *http.Request) *token.Payload {
	return util.GetTokenPayloadFromContext(r.Context())
}

// queryPaging 解析分頁參數，缺省採預設值
func queryPaging(r *http.Request) (page, pageSize int) {
	page = constants.DefaultPaging
	pageSize = constants.DefaultPagingSize

	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil && v > 0 {
		pageSize = v
	}
	return page, pageSize
}
