package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidContentType is returned when content_type is not one of
	// "text", "rich", "image".
	ErrInvalidContentType = errors.New("invalid content_type")

	// ErrEmptyText is returned when a "text" entry's content is empty
	// after trimming whitespace.
	ErrEmptyText = errors.New("text content is empty")

	// ErrRichContentTooLarge is returned when a "rich" entry's content
	// byte length exceeds the 10 MiB limit.
	ErrRichContentTooLarge = errors.New("rich content exceeds 10 MiB limit")

	// ErrInvalidImage is returned when an "image" entry's content does
	// not decode as base64, or the decoded bytes do not parse as a
	// recognized image format.
	ErrInvalidImage = errors.New("image content is not a valid PNG/JPEG/GIF")
)
