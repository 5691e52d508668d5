package export

import (
	"path/filepath"

	"github.com/kozaktomas/journal-press/internal/store"
)

// NotebookEntries converts a loaded notebook into engine input. Attachment
// paths are resolved against the notebook's attachments directory; files that
// fail to resolve keep their expected path so the engine records the warning
// instead of the caller failing early.
func NotebookEntries(st *store.Store, nb *store.Notebook) []Entry {
	entries := make([]Entry, 0, len(nb.Logs))
	for _, l := range nb.Logs {
		e := Entry{
			ID:    l.ID,
			Title: l.Title,
			Date:  l.Date,
			Text:  l.Text,
		}
		for _, a := range l.Attachments {
			path, err := st.AttachmentPath(nb.Slug, a.Filename)
			if err != nil {
				path = filepath.Join(st.Root(), nb.Slug, "attachments", a.Filename)
			}
			e.Attachments = append(e.Attachments, Attachment{
				Kind:     a.Type,
				Path:     path,
				MimeType: a.MimeType,
				Name:     a.Name,
			})
		}
		entries = append(entries, e)
	}
	return entries
}
