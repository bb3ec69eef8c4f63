package db

import (
	"errors"

	"gorm.io/gorm"
)

type RepoError error

var (
	// 與gorm.ErrRecordNotFound同一條鏈，errors.Is兩者皆可判
	ErrRecordNotFound RepoError = gorm.ErrRecordNotFound

	// TranslateError開啟後gorm會把unique違反轉成這條
	ErrDuplicateEntry RepoError = gorm.ErrDuplicatedKey

	// MarkPaid在訂單存在但已非pending時回這條，呼叫端可據此識別重送的成功事件
	ErrOrderNotPending RepoError = errors.New("order is not pending")
)
