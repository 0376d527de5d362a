// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ContentType identifies which kind of post a CSV row was built from.
type ContentType string

const (
	ContentQuestion ContentType = "question"
	ContentAnswer   ContentType = "answer"
	ContentArticle  ContentType = "article"
)

// Row is one flattened, normalized CSV record. All fields are already
// rendered as text; a missing optional value is the empty string.
type Row struct {
	Type         ContentType `json:"type" yaml:"type"`
	Title        string      `json:"title" yaml:"title"`
	Body         string      `json:"body" yaml:"body"`
	Tags         string      `json:"tags" yaml:"tags"`
	CreationDate string      `json:"creation_date" yaml:"creation_date"`
	LastEditDate string      `json:"last_edit_date" yaml:"last_edit_date"`
	Author       string      `json:"author" yaml:"author"`
	ViewCount    string      `json:"view_count" yaml:"view_count"`
	Score        string      `json:"score" yaml:"score"`
	Link         string      `json:"link" yaml:"link"`
}

// Record returns the row's fields in CSV column order: type, title, body,
// tags, creation_date, last_edit_date, author, view_count, score, link.
func (r Row) Record() []string {
	return []string{
		string(r.Type),
		r.Title,
		r.Body,
		r.Tags,
		r.CreationDate,
		r.LastEditDate,
		r.Author,
		r.ViewCount,
		r.Score,
		r.Link,
	}
}
