package textfile

// ErrorCode classifies a load failure. Codes are string-based for
// debuggability and natural JSON serialization.
type ErrorCode string

const (
	// CodeNotFound indicates the file does not exist at the given path.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodePermission indicates the caller lacks permission to access the file.
	CodePermission ErrorCode = "PERMISSION_DENIED"

	// CodeIO indicates any other open, create, or read failure.
	CodeIO ErrorCode = "IO_ERROR"

	// CodeInvalidInput indicates the provided path is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeUnknown indicates an unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
