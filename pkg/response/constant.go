package response

const (
	// MessageSuccess is the message attached to successful responses.
	MessageSuccess = "success"

	// DefaultErrorMessage hides internal error details from clients.
	DefaultErrorMessage = "internal server error"

	// InternalServerErrorCode is the error_code for unexpected failures.
	InternalServerErrorCode = 500
)
