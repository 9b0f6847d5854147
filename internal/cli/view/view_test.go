package view

import (
	"bytes"
	"errors"
	"testing"

	"StudyArchive/internal/cli/model"
	"StudyArchive/internal/filetype"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newViewer(fetch func(string) ([]byte, error)) (*Viewer, *bytes.Buffer) {
	var buf bytes.Buffer
	return &Viewer{Out: &buf, Fetch: fetch}, &buf
}

func TestRender_TextInline(t *testing.T) {
	v, buf := newViewer(nil)
	it := model.Item{
		FeaturedFile: "notes.txt",
		Topic:        "Algebra",
		SubCategory:  "Math",
		FileType:     strPtr("text/plain"),
		FileContent:  strPtr("hello"),
	}
	require.NoError(t, v.Render(it, ""))
	out := buf.String()
	assert.Contains(t, out, "notes.txt")
	assert.Contains(t, out, "hello")
}

func TestRender_TextEmpty(t *testing.T) {
	v, buf := newViewer(nil)
	it := model.Item{FeaturedFile: "notes.txt", FileType: strPtr("text/plain")}
	require.NoError(t, v.Render(it, ""))
	assert.Contains(t, buf.String(), "(empty file)")
}

func TestRender_TextFromDataURL(t *testing.T) {
	v, buf := newViewer(nil)
	it := model.Item{FeaturedFile: "notes.txt", FileType: strPtr("text/plain")}
	u := filetype.BuildDataURL("text/plain", []byte("from data url"))
	require.NoError(t, v.Render(it, u))
	assert.Contains(t, buf.String(), "from data url")
}

func TestRender_FetchErrorIsRecoverable(t *testing.T) {
	v, buf := newViewer(func(string) ([]byte, error) {
		return nil, errors.New("connection refused")
	})
	it := model.Item{FeaturedFile: "notes.txt", FileType: strPtr("text/plain")}
	// ошибка сети не фатальна: печатается подсказка
	require.NoError(t, v.Render(it, "http://archive.local/f/1"))
	out := buf.String()
	assert.Contains(t, out, "content unavailable")
	assert.Contains(t, out, "downloading the file again")
}

func TestRender_Image(t *testing.T) {
	v, buf := newViewer(func(string) ([]byte, error) {
		return []byte{0x89, 'P', 'N', 'G'}, nil
	})
	it := model.Item{FeaturedFile: "diagram.png", FileType: strPtr("image/png")}
	require.NoError(t, v.Render(it, "http://archive.local/f/2"))
	out := buf.String()
	assert.Contains(t, out, "image")
	assert.Contains(t, out, "4 bytes")
}

func TestRender_OfficeExternalViewer(t *testing.T) {
	it := model.Item{FeaturedFile: "report.docx"}

	t.Run("remote url gets viewer link", func(t *testing.T) {
		v, buf := newViewer(nil)
		require.NoError(t, v.Render(it, "http://archive.local/f/3"))
		assert.Contains(t, buf.String(), "docs.google.com/viewer?url=")
	})

	t.Run("data url gets no viewer link", func(t *testing.T) {
		v, buf := newViewer(nil)
		u := filetype.BuildDataURL("application/vnd.openxmlformats-officedocument.wordprocessingml.document", []byte("x"))
		require.NoError(t, v.Render(it, u))
		assert.NotContains(t, buf.String(), "docs.google.com")
	})
}

func TestRender_PDFByExtension(t *testing.T) {
	// тип не объявлен: pdf определяется по расширению
	v, buf := newViewer(nil)
	it := model.Item{FeaturedFile: "lectures.pdf"}
	require.NoError(t, v.Render(it, ""))
	out := buf.String()
	assert.Contains(t, out, "pdf")
	assert.Contains(t, out, "PDF viewer")
}

func TestRender_GenericFallback(t *testing.T) {
	v, buf := newViewer(nil)
	it := model.Item{FeaturedFile: "archive.zip"}
	require.NoError(t, v.Render(it, ""))
	out := buf.String()
	assert.Contains(t, out, "no preview")
	assert.Contains(t, out, "application/octet-stream")
}
