package auth

// Response is the uniform envelope returned by every orchestrator operation.
// Callers treat Success=false the same regardless of the underlying cause.
type Response[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *T       `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// Succeed builds a success envelope.
func Succeed[T any](data T, message string) Response[T] {
	return Response[T]{Success: true, Message: message, Data: &data}
}

// Fail builds a failure envelope with an optional itemized error list.
func Fail[T any](message string, errs ...string) Response[T] {
	return Response[T]{Success: false, Message: message, Errors: errs}
}
