// Package document holds the knowledge-base document registry. The
// registry is regenerated wholesale by the ingestion tooling between
// deployments and never mutated at request time.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the metadata record for one uploaded knowledge-base file.
// Immutable once created.
type Document struct {
	ID             string `json:"id" yaml:"id"`
	Filename       string `json:"filename" yaml:"filename"`
	Title          string `json:"title" yaml:"title"`
	ContentType    string `json:"content_type" yaml:"content_type"`
	Size           int64  `json:"size" yaml:"size"`
	PlatformFileID string `json:"-" yaml:"platform_file_id"`
}

// Stem returns the filename without its extension.
func (d Document) Stem() string {
	return strings.TrimSuffix(d.Filename, filepath.Ext(d.Filename))
}

// Registry is a read-only index over the document manifest. Lookups are
// safe for concurrent use because the registry is never written after
// construction.
type Registry struct {
	docs       []Document
	byID       map[string]*Document
	byFilename map[string]*Document
	byStem     map[string]*Document
	bySlug     map[string]*Document
}

type manifest struct {
	Documents []Document `yaml:"documents"`
}

// LoadManifest reads the YAML document manifest generated by the ingestion
// script and builds the lookup indices.
func LoadManifest(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse document manifest: %w", err)
	}

	return NewRegistry(m.Documents), nil
}

// NewRegistry builds a registry from document records.
func NewRegistry(docs []Document) *Registry {
	r := &Registry{
		docs:       docs,
		byID:       make(map[string]*Document, len(docs)),
		byFilename: make(map[string]*Document, len(docs)),
		byStem:     make(map[string]*Document, len(docs)),
		bySlug:     make(map[string]*Document),
	}
	for i := range r.docs {
		doc := &r.docs[i]
		r.byID[doc.ID] = doc
		r.byFilename[normalize(doc.Filename)] = doc
		r.byStem[normalize(doc.Stem())] = doc
		for _, candidate := range []string{doc.ID, doc.Filename, doc.Stem(), doc.Title} {
			if slug := slugify(candidate); slug != "" {
				if _, exists := r.bySlug[slug]; !exists {
					r.bySlug[slug] = doc
				}
			}
		}
	}
	return r
}

// All returns the documents in manifest order.
func (r *Registry) All() []Document {
	out := make([]Document, len(r.docs))
	copy(out, r.docs)
	return out
}

// Len returns the number of registered documents.
func (r *Registry) Len() int {
	return len(r.docs)
}

// FindByID returns the document with the given identifier.
func (r *Registry) FindByID(id string) (Document, bool) {
	if doc, ok := r.byID[id]; ok {
		return *doc, true
	}
	return Document{}, false
}

// Resolve finds a document by ID, filename, stem, or fuzzy slug match.
// Used to map citation references coming back from the external platform
// onto registry entries; references that resolve to nothing are dropped by
// the caller.
func (r *Registry) Resolve(query string) (Document, bool) {
	if doc, ok := r.byID[query]; ok {
		return *doc, true
	}
	normalized := normalize(query)
	if doc, ok := r.byFilename[normalized]; ok {
		return *doc, true
	}
	if doc, ok := r.byStem[normalized]; ok {
		return *doc, true
	}
	if doc, ok := r.bySlug[slugify(query)]; ok {
		return *doc, true
	}
	return Document{}, false
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func slugify(value string) string {
	var b strings.Builder
	for _, ch := range strings.ToLower(value) {
		if (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		}
	}
	return b.String()
}
