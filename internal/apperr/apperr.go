package apperr

import (
	"errors"
	"net/http"
)

// Kind 业务错误分类，handler 层统一映射为 HTTP 状态码
type Kind int

const (
	KindBadRequest Kind = iota + 1
	KindValidation      // 格式/类型错误（422）
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindUnsupportedMedia
	KindConflict // 唯一约束冲突，按存储层故障对外暴露（500）
	KindInternal
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "internal error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) error { return &Error{Kind: kind, Msg: msg} }

func Wrap(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func BadRequest(msg string) error       { return New(KindBadRequest, msg) }
func Validation(msg string) error       { return New(KindValidation, msg) }
func Unauthorized(msg string) error     { return New(KindUnauthorized, msg) }
func Forbidden(msg string) error        { return New(KindForbidden, msg) }
func NotFound(msg string) error         { return New(KindNotFound, msg) }
func UnsupportedMedia(msg string) error { return New(KindUnsupportedMedia, msg) }
func Conflict(msg string) error         { return New(KindConflict, msg) }

func Internal(msg string, err error) error { return Wrap(KindInternal, msg, err) }

func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Status 将错误映射为 HTTP 状态码；未识别的错误一律 500
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindUnsupportedMedia:
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}
