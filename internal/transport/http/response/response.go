package response

import "go-course-platform/internal/domain"

// Envelope is the uniform response body: {success, data, error}. Exactly one
// of Data and Error is non-null.
type Envelope struct {
	Success bool    `json:"success"`
	Data    any     `json:"data"`
	Error   *string `json:"error"`
}

func OK(data any) Envelope {
	if data == nil {
		data = struct{}{}
	}
	return Envelope{Success: true, Data: data}
}

func Fail(code domain.Code) Envelope {
	s := string(code)
	return Envelope{Success: false, Error: &s}
}

// FromError maps err to (http status, envelope). Internal details never leak:
// the body carries only the stable code string.
func FromError(err error) (int, Envelope) {
	code := domain.CodeOf(err)
	switch code {
	case domain.CodeExpired, domain.CodeBadSignature, domain.CodeMalformedToken:
		// Token-layer failures are indistinguishable to the caller.
		code = domain.CodeUnauthenticated
	}
	return domain.HTTPStatus(code), Fail(code)
}
