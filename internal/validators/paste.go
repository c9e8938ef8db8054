package validators

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/copypasta/copypasta-server/models"
)

// Field name constants for optional field-level scoping.
const (
	FieldContentType = "content_type"
	FieldContent     = "content"
)

// maxRichContentBytes is the 10 MiB ceiling on "rich" payloads.
const maxRichContentBytes = 10 * 1024 * 1024

// PasteValidator validates models.PasteRequest values before they reach
// the Store.
type PasteValidator struct{}

// NewPasteValidator constructs a PasteValidator.
func NewPasteValidator() Validator {
	return &PasteValidator{}
}

// Validate dispatches on the dynamic type of value. Only
// models.PasteRequest (and its pointer form) is currently supported.
func (v *PasteValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch req := value.(type) {
	case models.PasteRequest:
		return v.validatePasteRequest(ctx, req, fields...)
	case *models.PasteRequest:
		return v.validatePasteRequest(ctx, *req, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *PasteValidator) validatePasteRequest(ctx context.Context, req models.PasteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContentType, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldContentType:
			if !isValidContentType(req.Type) {
				return ErrInvalidContentType
			}
		case FieldContent:
			if err := v.validateContent(req.Type, req.Content); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isValidContentType(t models.ContentType) bool {
	switch t {
	case models.ContentTypeText, models.ContentTypeRich, models.ContentTypeImage:
		return true
	default:
		return false
	}
}

func (v *PasteValidator) validateContent(contentType models.ContentType, content string) error {
	switch contentType {
	case models.ContentTypeText:
		if strings.TrimSpace(content) == "" {
			return ErrEmptyText
		}
	case models.ContentTypeRich:
		if len(content) > maxRichContentBytes {
			return ErrRichContentTooLarge
		}
	case models.ContentTypeImage:
		if !isDecodableImage(content) {
			return ErrInvalidImage
		}
	}

	return nil
}

// isDecodableImage reports whether content is a (possibly data-URL
// prefixed) base64 string whose decoded bytes parse as a registered image
// format (PNG, JPEG, GIF). The decoded bytes are only used for this check
// and are not returned or stored; the caller keeps storing the original
// base64 string.
func isDecodableImage(content string) bool {
	encoded := content
	if idx := strings.Index(content, ","); idx != -1 && strings.HasPrefix(content, "data:") {
		encoded = content[idx+1:]
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return false
	}

	_, _, err = image.DecodeConfig(bytes.NewReader(decoded))
	return err == nil
}
