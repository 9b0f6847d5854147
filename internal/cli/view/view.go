package view

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"StudyArchive/internal/cli/model"
	"StudyArchive/internal/filetype"

	"github.com/gookit/color"
)

// Viewer подбирает ровно один способ показа записи по её типу
// и пишет человекочитаемый вывод в Out. Ошибки получения содержимого
// не фатальны: печатается подсказка повторить скачивание.
type Viewer struct {
	Out io.Writer
	// Fetch загружает содержимое по URL; nil → HTTP GET и разбор data URL.
	Fetch func(rawURL string) ([]byte, error)
}

func head(s string) string  { return color.New(color.FgCyan, color.OpBold).Render(s) }
func dim(s string) string   { return color.New(color.FgGray).Render(s) }
func warn(s string) string  { return color.New(color.FgYellow).Render(s) }
func value(s string) string { return color.New(color.FgGreen).Render(s) }

func defaultFetch(rawURL string) ([]byte, error) {
	if strings.HasPrefix(rawURL, "data:") {
		_, data, err := filetype.ParseDataURL(rawURL)
		return data, err
	}
	resp, err := http.Get(rawURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", rawURL, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (v *Viewer) fetch(rawURL string) ([]byte, error) {
	if v.Fetch != nil {
		return v.Fetch(rawURL)
	}
	return defaultFetch(rawURL)
}

// content возвращает содержимое записи: сначала удалённый URL,
// затем встроенное содержимое (сырой текст или data URL).
func (v *Viewer) content(it model.Item, fileURL string) ([]byte, bool, error) {
	if fileURL != "" {
		data, err := v.fetch(fileURL)
		if err != nil {
			return nil, false, err
		}
		return data, true, nil
	}
	inline := it.InlineContent()
	if inline == "" {
		return nil, false, nil
	}
	if strings.HasPrefix(inline, "data:") {
		_, data, err := filetype.ParseDataURL(inline)
		if err != nil {
			return nil, false, err
		}
		return data, true, nil
	}
	return []byte(inline), true, nil
}

func (v *Viewer) header(it model.Item, kind filetype.Kind, mime string) {
	fmt.Fprintf(v.Out, "%s %s\n", head("▸ "+it.FeaturedFile), dim("("+kind.String()+", "+mime+")"))
	fmt.Fprintf(v.Out, "  %s %s / %s\n", dim("topic:"), value(it.Topic), value(it.SubCategory))
}

func (v *Viewer) retryHint(err error) {
	fmt.Fprintf(v.Out, "  %s %v\n", warn("content unavailable:"), err)
	fmt.Fprintf(v.Out, "  %s\n", dim("try downloading the file again with `sacli get`"))
}

// Render показывает запись. fileURL — сохранённый URL файла (может быть пустым).
func (v *Viewer) Render(it model.Item, fileURL string) error {
	if fileURL == "" {
		fileURL = it.RemoteURL()
	}
	mime, ext := filetype.Resolve(it.FeaturedFile, it.DeclaredType())
	kind := filetype.Classify(mime, ext)
	v.header(it, kind, mime)

	switch kind {
	case filetype.KindText:
		return v.renderText(it, fileURL)
	case filetype.KindImage, filetype.KindVideo:
		return v.renderMedia(it, fileURL, kind)
	case filetype.KindPDF:
		return v.renderPDF(it, fileURL)
	case filetype.KindOffice:
		return v.renderOffice(it, fileURL)
	default:
		fmt.Fprintf(v.Out, "  %s %s (extension %q)\n", dim("no preview for"), mime, ext)
		fmt.Fprintf(v.Out, "  %s\n", dim("use `sacli get` to download the file"))
		return nil
	}
}

func (v *Viewer) renderText(it model.Item, fileURL string) error {
	data, ok, err := v.content(it, fileURL)
	if err != nil {
		v.retryHint(err)
		return nil
	}
	if !ok {
		fmt.Fprintln(v.Out, "  (empty file)")
		return nil
	}
	fmt.Fprintln(v.Out, strings.TrimRight(string(data), "\n"))
	return nil
}

func (v *Viewer) renderMedia(it model.Item, fileURL string, kind filetype.Kind) error {
	data, ok, err := v.content(it, fileURL)
	if err != nil {
		v.retryHint(err)
		return nil
	}
	if !ok {
		fmt.Fprintf(v.Out, "  %s\n", warn("no content stored for this "+kind.String()))
		return nil
	}
	fmt.Fprintf(v.Out, "  %s %d bytes\n", dim(kind.String()+" payload:"), len(data))
	fmt.Fprintf(v.Out, "  %s\n", dim("use `sacli get` to save it locally"))
	return nil
}

func (v *Viewer) renderPDF(it model.Item, fileURL string) error {
	data, ok, err := v.content(it, fileURL)
	if err != nil {
		v.retryHint(err)
		return nil
	}
	if ok {
		fmt.Fprintf(v.Out, "  %s %d bytes\n", dim("pdf payload:"), len(data))
	}
	fmt.Fprintf(v.Out, "  %s\n", dim("actions: open in a PDF viewer, or `sacli get` to download"))
	return nil
}

func (v *Viewer) renderOffice(it model.Item, fileURL string) error {
	fmt.Fprintf(v.Out, "  %s\n", dim("office document, no terminal preview"))
	// внешний просмотрщик доступен только для настоящих URL
	if fileURL != "" && !strings.HasPrefix(fileURL, "data:") {
		fmt.Fprintf(v.Out, "  %s https://docs.google.com/viewer?url=%s\n", dim("view online:"), url.QueryEscape(fileURL))
	}
	fmt.Fprintf(v.Out, "  %s\n", dim("use `sacli get` to download the file"))
	return nil
}
