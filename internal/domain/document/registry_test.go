package document_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kbchat/internal/domain/document"
)

func sampleDocs() []document.Document {
	return []document.Document{
		{ID: "doc_handbook", Filename: "Employee Handbook.pdf", Title: "Employee Handbook", ContentType: "application/pdf", Size: 1024, PlatformFileID: "file_abc"},
		{ID: "doc_faq", Filename: "faq.md", Title: "Frequently Asked Questions", ContentType: "text/markdown", Size: 256, PlatformFileID: "file_def"},
	}
}

func TestResolve(t *testing.T) {
	registry := document.NewRegistry(sampleDocs())

	tests := []struct {
		name   string
		query  string
		wantID string
		found  bool
	}{
		{name: "by id", query: "doc_handbook", wantID: "doc_handbook", found: true},
		{name: "by filename", query: "Employee Handbook.pdf", wantID: "doc_handbook", found: true},
		{name: "filename is case insensitive", query: "employee handbook.pdf", wantID: "doc_handbook", found: true},
		{name: "by stem", query: "Employee Handbook", wantID: "doc_handbook", found: true},
		{name: "by slug of title", query: "Frequently Asked Questions", wantID: "doc_faq", found: true},
		{name: "surrounding whitespace", query: "  faq.md  ", wantID: "doc_faq", found: true},
		{name: "unknown document", query: "missing.pdf", found: false},
		{name: "empty query", query: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, ok := registry.Resolve(tt.query)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.wantID, doc.ID)
			}
		})
	}
}

func TestFindByID(t *testing.T) {
	registry := document.NewRegistry(sampleDocs())

	doc, ok := registry.FindByID("doc_faq")
	require.True(t, ok)
	assert.Equal(t, "faq.md", doc.Filename)
	assert.Equal(t, "file_def", doc.PlatformFileID)

	_, ok = registry.FindByID("doc_unknown")
	assert.False(t, ok)
}

func TestAllPreservesManifestOrder(t *testing.T) {
	registry := document.NewRegistry(sampleDocs())

	all := registry.All()
	require.Len(t, all, 2)
	assert.Equal(t, "doc_handbook", all[0].ID)
	assert.Equal(t, "doc_faq", all[1].ID)

	// The returned slice is a copy.
	all[0].ID = "mutated"
	fresh := registry.All()
	assert.Equal(t, "doc_handbook", fresh[0].ID)
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "documents.yaml")
	content := `documents:
  - id: doc_guide
    filename: user-guide.pdf
    title: User Guide
    content_type: application/pdf
    size: 2048
    platform_file_id: file_xyz
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	registry, err := document.LoadManifest(path)
	require.NoError(t, err)
	require.Equal(t, 1, registry.Len())

	doc, ok := registry.FindByID("doc_guide")
	require.True(t, ok)
	assert.Equal(t, "user-guide.pdf", doc.Filename)
	assert.Equal(t, int64(2048), doc.Size)
	assert.Equal(t, "file_xyz", doc.PlatformFileID)
}

func TestLoadManifestMissingFile(t *testing.T) {
	_, err := document.LoadManifest(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
