package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFilePath        = errors.New("file path is required")
	ErrFileNotFound         = errors.New("file does not exist")
	ErrFileIsDirectory      = errors.New("path points to a directory, not a file")
	ErrUnsupportedFileType  = errors.New("unsupported file type: only pdf, docx and txt are accepted")
	ErrEmptyFile            = errors.New("file is empty")
	ErrEmptyEmail           = errors.New("email is required")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrEmptyPassword        = errors.New("password is required")
	ErrPasswordTooShort     = errors.New("password must be at least 6 characters")
	ErrEmptyName            = errors.New("name is required")
	ErrEmptySearchQuery     = errors.New("search query is required")
	ErrEmptyUploadedPayload = errors.New("upload payload is empty")
)
