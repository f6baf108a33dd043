package service_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warraq/internal/docstore"
	"warraq/internal/domain"
	"warraq/internal/fingerprint"
	"warraq/internal/nlp"
	"warraq/internal/service"
	"warraq/internal/tfidf"
)

func newEditor() *service.Editor {
	return service.NewEditor(docstore.New(), tfidf.NewScorer(), &nlp.Canned{}, nil)
}

func TestCreatePaginatesAndFingerprints(t *testing.T) {
	e := newEditor()
	content := strings.Repeat("x", 250)
	doc, err := e.Create("big.txt", content)
	require.NoError(t, err)
	assert.NotZero(t, doc.ID)
	require.Len(t, doc.Pages, 3)
	assert.Equal(t, fingerprint.SumText(content), doc.OriginalFingerprint)
	assert.Equal(t, content, doc.Content())
	assert.False(t, doc.CreatedAt.IsZero())
}

func TestCreateFeedsCorpus(t *testing.T) {
	e := newEditor()
	_, err := e.Create("quran.txt", "بسم الله الرحمن الرحيم")
	require.NoError(t, err)
	assert.Greater(t, e.Score("الله الرحمن"), 0.0)
}

func TestUpdateKeepsOriginalFingerprint(t *testing.T) {
	e := newEditor()
	doc, err := e.Create("a.txt", "بسم الله الرحمن الرحيم")
	require.NoError(t, err)
	original := doc.OriginalFingerprint

	drifted, err := e.Drifted(doc.ID)
	require.NoError(t, err)
	assert.False(t, drifted)

	updated, err := e.Update(doc.ID, "بسم الله الرحمن الرحيم edited content added")
	require.NoError(t, err)
	assert.Equal(t, original, updated.OriginalFingerprint)
	assert.Equal(t, "بسم الله الرحمن الرحيم edited content added", updated.Content())

	drifted, err = e.Drifted(doc.ID)
	require.NoError(t, err)
	assert.True(t, drifted)
}

func TestUpdateMissingDocument(t *testing.T) {
	e := newEditor()
	_, err := e.Update(42, "content")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete(t *testing.T) {
	e := newEditor()
	doc, err := e.Create("a.txt", "hello")
	require.NoError(t, err)
	require.NoError(t, e.Delete(doc.ID))
	_, err = e.Get(doc.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestImportTextFile(t *testing.T) {
	e := newEditor()
	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("test content for import"), 0o644))

	doc, err := e.Import(path)
	require.NoError(t, err)
	assert.Equal(t, "note.txt", doc.Name)
	assert.Equal(t, "test content for import", doc.Content())
}

func TestImportUnsupportedExtension(t *testing.T) {
	e := newEditor()
	path := filepath.Join(t.TempDir(), "photo.jpg")
	require.NoError(t, os.WriteFile(path, []byte("fake image content"), 0o644))

	_, err := e.Import(path)
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestImportMissingFile(t *testing.T) {
	e := newEditor()
	_, err := e.Import(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestSearchAcrossStore(t *testing.T) {
	e := newEditor()
	_, err := e.Create("DocA.txt", "unit test is good")
	require.NoError(t, err)
	_, err = e.Create("DocB.txt", "integration test is better")
	require.NoError(t, err)

	results, err := e.Search("test")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	_, err = e.Search("hi")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddToCorpusWithoutDocument(t *testing.T) {
	e := newEditor()
	e.AddToCorpus("بسم الله الرحمن الرحيم")
	assert.Greater(t, e.Score("الرحمن"), 0.0)
	docs, err := e.Documents()
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestExt(t *testing.T) {
	cases := map[string]string{
		"document.txt":   "txt",
		"readme.md":      "md",
		"noextension":    "",
		"archive.tar.gz": "gz",
		".gitignore":     "gitignore",
	}
	for name, want := range cases {
		assert.Equal(t, want, service.Ext(name), "name %q", name)
	}
}

func TestNLPDelegation(t *testing.T) {
	provider := &nlp.Canned{
		Transliterations: map[string]string{"كتاب": "kitab"},
		Lemmas:           map[string]string{"test": "test_lemma"},
		POSTags:          map[string][]string{"test": {"NOUN"}},
	}
	e := service.NewEditor(docstore.New(), tfidf.NewScorer(), provider, nil)

	out, err := e.Transliterate("كتاب")
	require.NoError(t, err)
	assert.Equal(t, "kitab", out)

	lemmas, err := e.Lemmatize("any")
	require.NoError(t, err)
	assert.Equal(t, "test_lemma", lemmas["test"])

	tags, err := e.POS("any")
	require.NoError(t, err)
	assert.Equal(t, []string{"NOUN"}, tags["test"])
}
