package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrInvalidFileName 表示檔名不合法或超出 media 根目錄
	ErrInvalidFileName = errors.New("invalid file name")
)

// 各種資源的上傳子目錄
const (
	DirProducts = "products"
	DirBrands   = "brands"
	DirAvatars  = "avatars"
	DirBlog     = "blog"
)

// IMediaStore 媒體檔案儲存介面
type IMediaStore interface {
	// Save 儲存檔案並回傳相對路徑，檔名會加上亂數避免衝突
	Save(dir string, fileName string, r io.Reader) (string, error)
	// Remove 刪除檔案，檔案不存在視為成功
	Remove(relPath string) error
	// AbsPath 取得相對路徑對應的絕對路徑
	AbsPath(relPath string) (string, error)
}

// LocalMediaStore 將媒體檔案存放在本機目錄
type LocalMediaStore struct {
	root string
}

func NewLocalMediaStore(root string) (*LocalMediaStore, error) {
	if root == "" {
		return nil, errors.New("media root is required")
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}

	return &LocalMediaStore{root: root}, nil
}

func (s *LocalMediaStore) Save(dir string, fileName string, r io.Reader) (string, error) {
	base := filepath.Base(fileName)
	if base == "." || base == string(filepath.Separator) {
		return "", ErrInvalidFileName
	}

	// 檔名加上亂數前綴避免同名覆蓋
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	relPath := filepath.Join(dir, fmt.Sprintf("%s_%s%s", name, uuid.NewString()[:8], ext))

	absPath, err := s.AbsPath(relPath)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write media file: %w", err)
	}

	return filepath.ToSlash(relPath), nil
}

func (s *LocalMediaStore) Remove(relPath string) error {
	absPath, err := s.AbsPath(relPath)
	if err != nil {
		return err
	}

	if err := os.Remove(absPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove media file: %w", err)
	}
	return nil
}

// AbsPath 解析相對路徑並防止路徑跳脫 media 根目錄
func (s *LocalMediaStore) AbsPath(relPath string) (string, error) {
	absPath := filepath.Join(s.root, filepath.FromSlash(relPath))

	absRoot, err := filepath.Abs(s.root)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(absPath)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(abs, absRoot+string(filepath.Separator)) {
		return "", ErrInvalidFileName
	}

	return abs, nil
}
