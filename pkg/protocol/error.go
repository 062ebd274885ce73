package protocol

import "fmt"

// Error codes carried by Error frames.
const (
	ErrCodeVersionMismatch = "version_mismatch"
	ErrCodeBadFrame        = "bad_frame"
	ErrCodeInternal        = "internal"
)

// ErrorMsg is an Error frame payload. The connection closes after either
// side sends one.
type ErrorMsg struct {
	Code    string
	Message string
}

// EncodeErrorMsg encodes an Error frame payload.
func EncodeErrorMsg(m *ErrorMsg) []byte {
	e := NewEncoder()
	e.WriteString(m.Code)
	e.WriteString(m.Message)
	return e.Bytes()
}

// DecodeErrorMsg decodes an Error frame payload.
func DecodeErrorMsg(payload []byte) (*ErrorMsg, error) {
	d := NewDecoder(payload)
	code, err := d.ReadString()
	if err != nil {
		return nil, fmt.Errorf("error code: %w", err)
	}
	message, err := d.ReadString()
	if err != nil {
		return nil, fmt.Errorf("error message: %w", err)
	}
	return &ErrorMsg{Code: code, Message: message}, nil
}
