package transport

import "encoding/json"

// Envelope is the standard API response wrapper used for both success and
// error payloads. Successful sequences additionally carry their length.
type Envelope struct {
	Status string     `json:"status"`
	Data   any        `json:"data,omitempty"`
	Count  *int       `json:"count,omitempty"`
	Error  *ErrorBody `json:"error,omitempty"`
}

// ErrorBody carries the machine-readable code and human-readable message of
// an error response.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewSuccess returns a success envelope for a single payload.
func NewSuccess(data any) Envelope {
	return Envelope{
		Status: "ok",
		Data:   data,
	}
}

// NewList returns a success envelope for a sequence, with its count.
func NewList(data any, count int) Envelope {
	return Envelope{
		Status: "ok",
		Data:   data,
		Count:  &count,
	}
}

// NewError returns an error envelope.
func NewError(code, message string) Envelope {
	return Envelope{
		Status: "error",
		Error:  &ErrorBody{Code: code, Message: message},
	}
}

// String returns the JSON representation (best-effort) for logging purposes.
func (e Envelope) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}
