package response

// Response is the error envelope every failed request returns.
type Response struct {
	Status     string `json:"status"`      // always "error"
	StatusCode int    `json:"status_code"` // HTTP status code
	Error      string `json:"error"`
}

// Error wraps an error message for the client.
func Error(statusCode int, err string) Response {
	return Response{
		Status:     "error",
		StatusCode: statusCode,
		Error:      err,
	}
}

// Page is one page of a listing.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// NewPage never returns a nil Items slice, so an empty page encodes as [].
func NewPage[T any](items []T, total int64, page, limit int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Total: total, Page: page, Limit: limit}
}
