package client

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/itm-clinic/clinic-client/internal/errors"
	"github.com/itm-clinic/clinic-client/internal/utils"
	"github.com/itm-clinic/clinic-client/users"
)

// Kind is the failure category shown to the user.
type Kind int

const (
	KindUnknown Kind = iota
	KindNetwork
	KindAuth
	KindValidation
	KindNotFound
	KindConflict
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindAuth:
		return "auth"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// Classify maps an HTTP status to a Kind. Status 0 means no response arrived.
func Classify(status int) Kind {
	switch {
	case status == 0:
		return KindNetwork
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return KindAuth
	case status == http.StatusUnprocessableEntity:
		return KindValidation
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusConflict:
		return KindConflict
	case status >= http.StatusInternalServerError:
		return KindServer
	default:
		return KindUnknown
	}
}

const (
	MsgNetwork        = "Không thể kết nối đến máy chủ. Vui lòng kiểm tra kết nối mạng."
	MsgSessionExpired = "Phiên đăng nhập đã hết hạn. Vui lòng đăng nhập lại."
	MsgInvalidToken   = "Mã xác thực không hợp lệ. Vui lòng đăng nhập lại."
	MsgDefault        = "Có lỗi xảy ra. Vui lòng thử lại sau."
)

var statusMessages = map[int]string{
	http.StatusBadRequest:          "Yêu cầu không hợp lệ. Vui lòng kiểm tra thông tin đầu vào.",
	http.StatusUnauthorized:        MsgSessionExpired,
	http.StatusForbidden:           "Bạn không có quyền thực hiện thao tác này.",
	http.StatusNotFound:            "Không tìm thấy thông tin yêu cầu.",
	http.StatusConflict:            "Dữ liệu đã tồn tại hoặc xung đột.",
	http.StatusUnprocessableEntity: "Dữ liệu không hợp lệ. Vui lòng kiểm tra lại.",
	http.StatusTooManyRequests:     "Quá nhiều yêu cầu. Vui lòng thử lại sau.",
	http.StatusInternalServerError: "Lỗi máy chủ nội bộ. Vui lòng thử lại sau.",
	http.StatusBadGateway:          "Máy chủ không phản hồi. Vui lòng thử lại sau.",
	http.StatusServiceUnavailable:  "Dịch vụ tạm thời không khả dụng. Vui lòng thử lại sau.",
	http.StatusGatewayTimeout:      "Máy chủ phản hồi chậm. Vui lòng thử lại sau.",
}

// DefaultMessage is the localized text for status when the server sent none.
func DefaultMessage(status int) string {
	if status == 0 {
		return MsgNetwork
	}
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return MsgDefault
}

// Title is the toast heading for a Kind.
func Title(k Kind) string {
	switch k {
	case KindNetwork:
		return "Lỗi kết nối"
	case KindValidation:
		return "Dữ liệu không hợp lệ"
	case KindAuth:
		return "Lỗi xác thực"
	case KindServer:
		return "Lỗi máy chủ"
	default:
		return "Lỗi"
	}
}

// Error is a classified API failure.
type Error struct {
	Kind       Kind
	StatusCode int                 // 0 when no response arrived
	Message    string              // Localized, safe to show
	Code       string              // Optional machine code from the server
	Fields     map[string][]string // Field errors of a validation failure
	Method     string
	Path       string
	Err        error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Method != "" {
		fmt.Fprintf(&b, "%s %s: ", e.Method, e.Path)
	}
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, "%d ", e.StatusCode)
	}
	b.WriteString(e.Kind.String())
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError reports form errors found before any request was sent.
func NewValidationError(fields users.FieldErrors) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: DefaultMessage(http.StatusUnprocessableEntity),
		Fields:  map[string][]string(fields),
		Err:     errors.ErrInvalidRequest,
	}
}

func AsError(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf classifies any error, including ones that never reached the pipeline.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	if e, ok := AsError(err); ok {
		return e.Kind
	}
	var netErr net.Error
	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.As(err, &netErr) {
		return KindNetwork
	}
	return KindUnknown
}

func StatusOf(err error) int {
	if e, ok := AsError(err); ok {
		return e.StatusCode
	}
	return 0
}

// FieldErrors returns the first message per field of a validation failure.
func FieldErrors(err error) map[string]string {
	e, ok := AsError(err)
	if !ok || e.Kind != KindValidation || len(e.Fields) == 0 {
		return nil
	}
	out := make(map[string]string, len(e.Fields))
	for field, msgs := range e.Fields {
		if len(msgs) > 0 {
			out[field] = msgs[0]
		}
	}
	return out
}

// Message is the text to show for err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := AsError(err); ok {
		return utils.FirstNonEmpty(e.Message, DefaultMessage(e.StatusCode))
	}
	if KindOf(err) == KindNetwork {
		return MsgNetwork
	}
	return utils.FirstNonEmpty(err.Error(), MsgDefault)
}

// Retryable is true for failures that may succeed on a later attempt.
func Retryable(err error) bool {
	switch KindOf(err) {
	case KindNetwork, KindServer:
		return true
	}
	return false
}

func newHTTPError(req *Request, resp *Response) *Error {
	var body struct {
		Message string              `json:"message"`
		Code    string              `json:"code"`
		Errors  map[string][]string `json:"errors"`
	}
	_ = resp.Decode(&body)

	return &Error{
		Kind:       Classify(resp.StatusCode),
		StatusCode: resp.StatusCode,
		Message:    utils.FirstNonEmpty(body.Message, DefaultMessage(resp.StatusCode)),
		Code:       body.Code,
		Fields:     body.Errors,
		Method:     req.Method,
		Path:       req.Path,
	}
}

func newNetworkError(req *Request, err error) *Error {
	return &Error{
		Kind:    KindNetwork,
		Message: MsgNetwork,
		Method:  req.Method,
		Path:    req.Path,
		Err:     err,
	}
}
