// Package filetype классифицирует файлы архива по имени и MIME-типу
// и выбирает стратегию отображения. Классификация чистая и детерминированная:
// одинаковый вход всегда даёт одинаковый результат.
package filetype

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// OctetStream — MIME по умолчанию для неизвестных расширений.
const OctetStream = "application/octet-stream"

// mimeByExt — фиксированная таблица известных расширений.
var mimeByExt = map[string]string{
	"pdf":  "application/pdf",
	"txt":  "text/plain",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"svg":  "image/svg+xml",
	"webp": "image/webp",
	"bmp":  "image/bmp",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"xls":  "application/vnd.ms-excel",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"ppt":  "application/vnd.ms-powerpoint",
	"pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"mp4":  "video/mp4",
	"webm": "video/webm",
	"ogg":  "video/ogg",
	"ogv":  "video/ogg",
	"avi":  "video/x-msvideo",
	"mov":  "video/quicktime",
	"wmv":  "video/x-ms-wmv",
	"flv":  "video/x-flv",
	"mkv":  "video/x-matroska",
}

var officeExts = map[string]bool{
	"doc": true, "docx": true,
	"xls": true, "xlsx": true,
	"ppt": true, "pptx": true,
}

// Ext возвращает расширение имени файла в нижнем регистре без точки.
// Пустая строка, если точки в имени нет.
func Ext(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

// MimeByExt возвращает канонический MIME для известного расширения,
// иначе application/octet-stream.
func MimeByExt(ext string) string {
	if m, ok := mimeByExt[strings.ToLower(ext)]; ok {
		return m
	}
	return OctetStream
}

// Resolve определяет MIME и расширение файла.
// Явно объявленный MIME имеет приоритет; иначе — таблица по расширению.
func Resolve(name, declaredMime string) (mime, ext string) {
	ext = Ext(name)
	if declaredMime != "" {
		return declaredMime, ext
	}
	return MimeByExt(ext), ext
}

// Detect определяет MIME по содержимому файла (сигнатуры формата).
// Используется клиентом, когда объявленного типа нет. Параметры вроде
// "; charset=utf-8" отбрасываются: объявленные типы их не содержат.
func Detect(data []byte) string {
	base, _, _ := strings.Cut(mimetype.Detect(data).String(), ";")
	return strings.TrimSpace(base)
}

// Kind — закрытое перечисление стратегий отображения.
type Kind int

const (
	KindGeneric Kind = iota
	KindImage
	KindVideo
	KindText
	KindPDF
	KindOffice
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	case KindText:
		return "text"
	case KindPDF:
		return "pdf"
	case KindOffice:
		return "office"
	default:
		return "generic"
	}
}

// Classify выбирает ровно одну стратегию отображения по (MIME, расширение).
// Порядок правил фиксирован: image, video, text, pdf, office, generic.
func Classify(mime, ext string) Kind {
	switch {
	case strings.HasPrefix(mime, "image/"):
		return KindImage
	case strings.HasPrefix(mime, "video/"):
		return KindVideo
	case mime == "text/plain" || ext == "txt":
		return KindText
	case mime == "application/pdf" || ext == "pdf":
		return KindPDF
	case officeExts[ext]:
		return KindOffice
	default:
		return KindGeneric
	}
}
