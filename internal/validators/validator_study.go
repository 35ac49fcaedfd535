package validators

import (
	"context"
	"net/mail"
	"os"
	"path/filepath"
	"strings"

	"github.com/studypartner/go-study-partner/models"
)

const (
	FieldFilePath = "file_path"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldName     = "name"
	FieldQuery    = "query"
)

// supportedFileExtensions lists the document types the backend can extract
// text from. Matching is case-insensitive on the file extension.
var supportedFileExtensions = []string{".pdf", ".docx", ".txt"}

// StudyValidator validates client-side inputs before they reach the backend:
// upload file paths, registration and login credentials, and search queries.
type StudyValidator struct {
}

func NewStudyValidator() Validator {
	return &StudyValidator{}
}

func (v *StudyValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		return v.validateFilePath(ctx, value)

	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.SearchRequest:
		return v.validateSearchRequest(ctx, value)
	case *models.SearchRequest:
		return v.validateSearchRequest(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

// validateFilePath checks that path points to an existing, non-empty regular
// file with a supported extension. The content itself is left to the backend:
// extraction failures surface as upload errors.
func (v *StudyValidator) validateFilePath(_ context.Context, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return ErrEmptyFilePath
	}

	if !isSupportedFileExtension(path) {
		return ErrUnsupportedFileType
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return ErrFileNotFound
	}
	if err != nil {
		return err
	}
	if info.IsDir() {
		return ErrFileIsDirectory
	}
	if info.Size() == 0 {
		return ErrEmptyFile
	}

	return nil
}

func (v *StudyValidator) validateRegisterRequest(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldName}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
			if len(req.Password) < 6 {
				return ErrPasswordTooShort
			}
		case FieldName:
			if strings.TrimSpace(req.Name) == "" {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *StudyValidator) validateLoginRequest(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *StudyValidator) validateSearchRequest(_ context.Context, req models.SearchRequest) error {
	if strings.TrimSpace(req.Query) == "" {
		return ErrEmptySearchQuery
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

func isSupportedFileExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range supportedFileExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}
