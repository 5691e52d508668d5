// Package store reads notebooks from a root directory. Each notebook lives
// in its own directory: {root}/{slug}/notebook.json plus an attachments/
// subdirectory holding the referenced files.
package store

// Notebook is one user notebook as persisted on disk.
type Notebook struct {
	Name string `json:"name"`
	Logs []Log  `json:"logs"`

	// Slug is the notebook's directory name, set on load.
	Slug string `json:"-"`
}

// Log is a single dated record in a notebook. IDs are unique within the
// notebook and define the export order.
type Log struct {
	ID          int          `json:"id"`
	Title       string       `json:"title,omitempty"`
	Date        string       `json:"date"`
	Text        string       `json:"text"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment references a file in the notebook's attachments directory.
type Attachment struct {
	Type     string `json:"type"` // currently only "image"
	Filename string `json:"filename"`
	MimeType string `json:"mime_type,omitempty"`
	Name     string `json:"name,omitempty"`
}

// IsImage reports whether the attachment is declared as an image. Branching
// is on the declared type, not the mime type.
func (a Attachment) IsImage() bool {
	return a.Type == "image"
}
