package response

// APIResponse is the envelope every HTTP endpoint returns. Callers always get
// a success flag and a human-readable message, never partial data.
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

// OK returns a successful response with data.
func OK[T any](data T) *APIResponse[T] {
	return &APIResponse[T]{Success: true, Data: data}
}

// OKList returns a successful response with data and an item count.
func OKList[T any](data []T) *APIResponse[[]T] {
	n := len(data)
	return &APIResponse[[]T]{Success: true, Data: data, Count: &n}
}

// OKMsg returns a successful response with a message and data.
func OKMsg[T any](msg string, data T) *APIResponse[T] {
	return &APIResponse[T]{Success: true, Message: msg, Data: data}
}

// Fail returns a failure response with a message.
func Fail(msg string) *APIResponse[any] {
	return &APIResponse[any]{Success: false, Message: msg}
}

// FailData returns a failure response carrying extra context, such as the
// current and required balance on a rejected purchase.
func FailData[T any](msg string, data T) *APIResponse[T] {
	return &APIResponse[T]{Success: false, Message: msg, Data: data}
}
