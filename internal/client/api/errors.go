package api

import "errors"

// The three failure classes a call can end in. Match with errors.Is.
var (
	// ErrNetwork: the request could not be sent or no response came back.
	ErrNetwork = errors.New("network error")
	// ErrApplication: the server responded with success=false.
	ErrApplication = errors.New("request rejected by server")
	// ErrParse: the response body was not well-formed.
	ErrParse = errors.New("malformed server response")
)

// FallbackMessage is shown to the user when a failure carries no
// server-supplied message.
const FallbackMessage = "ไม่สามารถเชื่อมต่อกับเซิร์ฟเวอร์ได้ กรุณาลองใหม่อีกครั้ง"

// appError carries the server-supplied message for success=false responses.
type appError struct {
	msg string
}

func (e *appError) Error() string {
	if e.msg == "" {
		return ErrApplication.Error()
	}
	return e.msg
}

// Is lets errors.Is(err, ErrApplication) match wrapped application errors.
func (e *appError) Is(target error) bool { return target == ErrApplication }

// UserMessage converts any call failure into the text for a notification:
// the server message when the server sent one, the generic fallback
// otherwise.
func UserMessage(err error) string {
	var ae *appError
	if errors.As(err, &ae) && ae.msg != "" {
		return ae.msg
	}
	return FallbackMessage
}
