package lint

import (
	"bytes"
	"os"

	"git.home.luguber.info/inful/sitenav/internal/docs"
	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/frontmatter"
)

// Page is a document's markdown body. Offset is the number of lines the
// front matter occupies, added to body line numbers to get file lines.
type Page struct {
	Doc    docs.Document
	Body   []byte
	Offset int
}

// Pages reads every on-disk document once. In-memory documents are skipped.
func (t *Target) Pages() ([]Page, error) {
	if t.pages != nil {
		return t.pages, nil
	}
	pages := []Page{}
	for _, d := range t.Docs.Documents() {
		if d.Path == "" {
			continue
		}
		content, err := os.ReadFile(d.Path)
		if err != nil {
			return nil, ferrors.FileSystemError("failed to read document").
				WithContext("path", d.Path).
				WithCause(err).
				Build()
		}
		_, body, _, err := frontmatter.Split(content)
		if err != nil {
			body = content
		}
		head := content[:len(content)-len(body)]
		pages = append(pages, Page{Doc: d, Body: body, Offset: bytes.Count(head, []byte("\n"))})
	}
	t.pages = pages
	return pages, nil
}
