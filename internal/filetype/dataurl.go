package filetype

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ErrBadDataURL возвращается при разборе строки, не являющейся data URL.
var ErrBadDataURL = errors.New("filetype: malformed data URL")

// BuildDataURL кодирует содержимое файла в data URL вида
// data:<mime>;base64,<payload> — так же, как FileReader.readAsDataURL в браузере.
func BuildDataURL(mime string, data []byte) string {
	if mime == "" {
		mime = OctetStream
	}
	var b strings.Builder
	b.Grow(len("data:;base64,") + len(mime) + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString("data:")
	b.WriteString(mime)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}

// ParseDataURL разбирает data URL обратно в MIME и содержимое.
func ParseDataURL(s string) (mime string, data []byte, err error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, ErrBadDataURL
	}
	head, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrBadDataURL
	}
	mime = head
	isBase64 := false
	if m, found := strings.CutSuffix(head, ";base64"); found {
		mime = m
		isBase64 = true
	}
	if mime == "" {
		mime = "text/plain"
	}
	if !isBase64 {
		return mime, []byte(payload), nil
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, ErrBadDataURL
	}
	return mime, data, nil
}
