package models

import "time"

// ContentType enumerates the kinds of payload a ClipboardEntry may carry.
type ContentType string

const (
	ContentTypeText  ContentType = "text"
	ContentTypeRich  ContentType = "rich"
	ContentTypeImage ContentType = "image"
)

// ClipboardEntry is a single clipboard submission belonging to one user.
//
// Version is strictly increasing and unique within a user; it is the
// ordering key both for "what is current" (greatest Version) and for the
// long-poll protocol in the Clipboard API.
type ClipboardEntry struct {
	// EntryID is per-user monotonic and server-assigned.
	EntryID int64 `json:"-"`

	// UserID identifies the owning account. Never trusted from the wire;
	// always resolved from the authenticated session.
	UserID int64 `json:"-"`

	// ContentType is one of ContentTypeText, ContentTypeRich, ContentTypeImage.
	ContentType ContentType `json:"content_type"`

	// Content is the opaque body: raw text, HTML, or a data-URL-prefixed
	// base64 image, depending on ContentType.
	Content string `json:"content"`

	// Metadata is an opaque JSON-as-string blob. The core never parses it.
	Metadata string `json:"metadata"`

	// CreatedAt is the submission timestamp.
	CreatedAt time.Time `json:"created_at"`

	// Version is the per-user strictly increasing version this entry was
	// assigned at insert time.
	Version int64 `json:"version"`

	// ClientID is the opaque identifier the submitter supplied, used only
	// for loop-back suppression in the poll protocol. May be empty.
	ClientID string `json:"client_id"`
}

// TableName returns the name of the database table backing ClipboardEntry.
func (e ClipboardEntry) TableName() string {
	return "clipboard_entries"
}
