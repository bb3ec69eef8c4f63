package er

import (
	"errors"
	"fmt"
)

// ErrCode http 狀態碼對應的錯誤碼
type ErrCode int

const (
	BadRequestCode      ErrCode = 400
	UnauthenticatedCode ErrCode = 401
	UnauthorizedCode    ErrCode = 403
	NotFoundCode        ErrCode = 404
	ConflictCode        ErrCode = 409
	UnprocessableCode   ErrCode = 422
	InternalErrorCode   ErrCode = 500
)

// ErrStrMap 錯誤碼對應的預設訊息
var ErrStrMap = map[ErrCode]string{
	BadRequestCode:      "bad request",
	UnauthenticatedCode: "unauthenticated",
	UnauthorizedCode:    "unauthorized",
	NotFoundCode:        "resource not found",
	ConflictCode:        "resource conflict",
	UnprocessableCode:   "unprocessable entity",
	InternalErrorCode:   "internal server error",
}

// AppError 帶有錯誤碼的應用層錯誤
type AppError struct {
	Code ErrCode
	Msg  string
	Err  error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New 建立新的 AppError
func New(code ErrCode, msg string) *AppError {
	return &AppError{Code: code, Msg: msg}
}

// Wrap 包裝底層錯誤並附上錯誤碼
func Wrap(code ErrCode, msg string, err error) *AppError {
	return &AppError{Code: code, Msg: msg, Err: err}
}

// AsAppError 解包取得 AppError，若不是則回傳 nil
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}
