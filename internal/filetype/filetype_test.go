package filetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExt(t *testing.T) {
	assert.Equal(t, "pdf", Ext("notes.pdf"))
	assert.Equal(t, "txt", Ext("archive.tar.TXT"))
	assert.Equal(t, "", Ext("README"))
	assert.Equal(t, "", Ext("trailing."))
	assert.Equal(t, "gitignore", Ext(".gitignore"))
}

func TestMimeByExt(t *testing.T) {
	assert.Equal(t, "application/pdf", MimeByExt("pdf"))
	assert.Equal(t, "image/jpeg", MimeByExt("jpg"))
	assert.Equal(t, "image/jpeg", MimeByExt("jpeg"))
	assert.Equal(t, "video/ogg", MimeByExt("ogv"))
	assert.Equal(t, "application/octet-stream", MimeByExt("xyz"))
	// регистр не важен
	assert.Equal(t, "text/plain", MimeByExt("TXT"))
}

func TestResolve(t *testing.T) {
	// объявленный MIME побеждает
	mime, ext := Resolve("photo.png", "image/webp")
	assert.Equal(t, "image/webp", mime)
	assert.Equal(t, "png", ext)

	// без объявленного — по таблице
	mime, ext = Resolve("film.mkv", "")
	assert.Equal(t, "video/x-matroska", mime)
	assert.Equal(t, "mkv", ext)

	// неизвестное расширение
	mime, _ = Resolve("data.bin", "")
	assert.Equal(t, OctetStream, mime)
}

// Идемпотентность: повторный вызов с теми же аргументами даёт тот же результат.
func TestResolveIdempotent(t *testing.T) {
	m1, e1 := Resolve("notes.pdf", "")
	m2, e2 := Resolve("notes.pdf", "")
	assert.Equal(t, m1, m2)
	assert.Equal(t, e1, e2)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		mime string
		ext  string
		want Kind
	}{
		{"image/png", "png", KindImage},
		{"image/svg+xml", "svg", KindImage},
		{"video/mp4", "mp4", KindVideo},
		{"text/plain", "txt", KindText},
		{"", "txt", KindText},
		{"application/pdf", "pdf", KindPDF},
		// pdf по расширению, даже если MIME не объявлен или неожиданный
		{"application/octet-stream", "pdf", KindPDF},
		{"application/msword", "doc", KindOffice},
		{"application/vnd.ms-excel", "xls", KindOffice},
		{"", "pptx", KindOffice},
		{"application/zip", "zip", KindGeneric},
		{"", "", KindGeneric},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.mime, tt.ext), "Classify(%q, %q)", tt.mime, tt.ext)
	}
}

func TestDetect(t *testing.T) {
	// PNG-сигнатура
	png := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	assert.Equal(t, "image/png", Detect(png))

	// сниффер отдаёт тип с параметрами ("; charset=utf-8"),
	// Detect должен вернуть голый MIME, как объявленный тип
	assert.Equal(t, "text/plain", Detect([]byte("hello")))
}

func TestDataURLRoundTrip(t *testing.T) {
	data := []byte("hello world")
	url := BuildDataURL("text/plain", data)
	assert.Equal(t, "data:text/plain;base64,aGVsbG8gd29ybGQ=", url)

	mime, got, err := ParseDataURL(url)
	require.NoError(t, err)
	assert.Equal(t, "text/plain", mime)
	assert.Equal(t, data, got)
}

func TestParseDataURLErrors(t *testing.T) {
	_, _, err := ParseDataURL("http://example.com/a.png")
	assert.ErrorIs(t, err, ErrBadDataURL)

	_, _, err = ParseDataURL("data:text/plain;base64")
	assert.ErrorIs(t, err, ErrBadDataURL)

	_, _, err = ParseDataURL("data:text/plain;base64,%%%")
	assert.ErrorIs(t, err, ErrBadDataURL)

	// не-base64 data URL допустим
	mime, data, err := ParseDataURL("data:,plain%20text")
	require.NoError(t, err)
	assert.Equal(t, "text/plain", mime)
	assert.NotEmpty(t, data)
}
