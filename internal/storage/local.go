package storage

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Local 本地磁盘实现；文件名加 uuid 前缀防覆盖，返回 baseURL 下的引用
type Local struct {
	Dir     string
	BaseURL string // 例如 "/uploads"
}

func NewLocal(dir, baseURL string) *Local {
	return &Local{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (s *Local) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}
	// 只取 base，丢弃客户端传来的路径部分
	name := uuid.NewString() + "_" + filepath.Base(filepath.Clean(filename))
	dst := filepath.Join(s.Dir, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(dst)
		return "", err
	}
	return path.Join(s.BaseURL, name), nil
}
