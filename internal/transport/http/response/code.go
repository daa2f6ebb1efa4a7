package response

// 业务码直接复用 HTTP 语义
const (
	CodeOK               = 0
	CodeBadRequest       = 400
	CodeUnauthorized     = 401
	CodeForbidden        = 403
	CodeNotFound         = 404
	CodeUnsupportedMedia = 415
	CodeInvalid          = 422
	CodeTooManyRequests  = 429
	CodeServerError      = 500
	CodeUnavailable      = 503
	CodeTimeout          = 504
)

// CodeMsgMap 集中管理 code - msg
var CodeMsgMap = map[int]string{
	CodeOK:               "OK",
	CodeBadRequest:       "Bad Request",
	CodeUnauthorized:     "Unauthorized",
	CodeForbidden:        "Forbidden",
	CodeNotFound:         "Not Found",
	CodeUnsupportedMedia: "Unsupported Media Type",
	CodeInvalid:          "Unprocessable Entity",
	CodeTooManyRequests:  "Too Many Requests",
	CodeServerError:      "Internal Server Error",
	CodeUnavailable:      "Service Unavailable",
	CodeTimeout:          "Gateway Timeout",
}
