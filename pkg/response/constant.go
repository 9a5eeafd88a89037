package response

const (
	DateTimeFormat = "2006-01-02T15:04:05"

	DefaultErrorMessage = "Internal Server Error"
)
