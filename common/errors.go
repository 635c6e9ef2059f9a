package common

// APIError is a structured error returned by the remote service. The
// server reports business failures as a JSON body of the shape
// {"detail": "..."} alongside a non-2xx status code.
type APIError struct {
	StatusCode int    `json:"-"`
	Detail     string `json:"detail"`
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return "server returned an error without detail"
	}
	return e.Detail
}

// NewAPIError builds an APIError from a status code and the decoded
// detail string, which may be empty when the body was not usable.
func NewAPIError(statusCode int, detail string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Detail:     detail,
	}
}
