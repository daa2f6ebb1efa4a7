package storage

import (
	"context"
	"io"
)

// Uploader 附件外部存储；返回可长期引用的 URL 或路径
type Uploader interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}
