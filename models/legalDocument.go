package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LegalDocument is a statutory snippet as persisted in Postgres. The
// retrieval engine never works on this type directly; documents are
// converted to CorpusDocument values when the corpus is loaded.
type LegalDocument struct {
	// ID is a unique identifier for the document, stored as a UUID in the database.
	// In Elasticsearch, it's indexed as a keyword for exact matching.
	ID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" elastic:"type:keyword"`

	// Title is a short human-readable label, indexed as text for full-text search.
	Title string `gorm:"not null" elastic:"type:text,analyzer:standard"`

	// Content is the full or excerpted text of the provision.
	Content string `gorm:"not null" elastic:"type:text,analyzer:standard"`

	// Source names the originating act or instrument (e.g. "Indian Penal Code, 1860").
	Source string `gorm:"not null" elastic:"type:keyword"`

	// Section is the specific section or article identifier within Source.
	Section string `gorm:"not null" elastic:"type:keyword"`

	// Category is the legal-domain tag (e.g. "Criminal Law"), indexed as a keyword.
	Category string `gorm:"not null" elastic:"type:keyword"`

	// Keywords is a JSONB array of lowercase tag strings used to boost matching.
	Keywords datatypes.JSON `elastic:"type:keyword"`

	// URL is an optional external reference link.
	URL string `elastic:"type:keyword"`

	// CreatedAt and UpdatedAt track when the document was stored and last synced.
	CreatedAt time.Time `elastic:"type:date"`
	UpdatedAt time.Time `elastic:"type:date"`

	// SearchContent is a computed field for full-text search, combining Title and Content.
	// It's not stored in the database (gorm:"-") but is indexed in Elasticsearch.
	SearchContent string `gorm:"-" elastic:"type:text,analyzer:standard"`
}

// BeforeSave is a GORM hook to populate SearchContent before saving to Elasticsearch.
func (d *LegalDocument) BeforeSave(tx *gorm.DB) error {
	d.SearchContent = d.Title + " " + d.Content
	return nil
}
