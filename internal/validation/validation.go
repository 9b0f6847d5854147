package validation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Result — результат проверки одного поля.
type Result struct {
	IsValid bool
	Message string
}

// Messages позволяет переопределить тексты сообщений (например, для локализации).
// Пустое поле означает использование английского текста по умолчанию.
// Шаблоны FieldRequired и FileSizeExceeded поддерживают подстановки
// {field} и {maxSize} соответственно.
type Messages struct {
	EmailRequired      string
	EmailInvalid       string
	PasswordRequired   string
	PasswordMinLength  string
	UsernameRequired   string
	UsernameMinLength  string
	PasswordsNoMatch   string
	FieldRequired      string
	FileSizeExceeded   string
	FileTypeNotAllowed string
}

const (
	// MinPasswordLen минимальная длина пароля.
	MinPasswordLen = 6
	// MinUsernameLen минимальная длина имени пользователя.
	MinUsernameLen = 3
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ok() Result { return Result{IsValid: true} }

func fail(override, fallback string) Result {
	if override != "" {
		return Result{Message: override}
	}
	return Result{Message: fallback}
}

// ValidateEmail проверяет, что e-mail не пуст и похож на адрес вида local@domain.tld.
func ValidateEmail(email string, msgs *Messages) Result {
	if msgs == nil {
		msgs = &Messages{}
	}
	if email == "" {
		return fail(msgs.EmailRequired, "Email is required")
	}
	if !emailRe.MatchString(email) {
		return fail(msgs.EmailInvalid, "Please enter a valid email address")
	}
	return ok()
}

// ValidatePassword проверяет непустоту и минимальную длину пароля.
func ValidatePassword(password string, msgs *Messages) Result {
	if msgs == nil {
		msgs = &Messages{}
	}
	if password == "" {
		return fail(msgs.PasswordRequired, "Password is required")
	}
	if utf8.RuneCountInString(password) < MinPasswordLen {
		return fail(msgs.PasswordMinLength, "Password must be at least 6 characters long")
	}
	return ok()
}

// ValidateUsername проверяет непустоту и минимальную длину имени пользователя.
func ValidateUsername(username string, msgs *Messages) Result {
	if msgs == nil {
		msgs = &Messages{}
	}
	if username == "" {
		return fail(msgs.UsernameRequired, "Username is required")
	}
	if utf8.RuneCountInString(username) < MinUsernameLen {
		return fail(msgs.UsernameMinLength, "Username must be at least 3 characters long")
	}
	return ok()
}

// ValidatePasswordMatch проверяет точное (с учётом регистра) совпадение паролей.
func ValidatePasswordMatch(password, confirm string, msgs *Messages) Result {
	if msgs == nil {
		msgs = &Messages{}
	}
	if password != confirm {
		return fail(msgs.PasswordsNoMatch, "Passwords do not match")
	}
	return ok()
}

// ValidateRequired проверяет, что значение не пустое (пробелы не считаются).
func ValidateRequired(value, fieldName string, msgs *Messages) Result {
	if msgs == nil {
		msgs = &Messages{}
	}
	if fieldName == "" {
		fieldName = "Field"
	}
	if strings.TrimSpace(value) == "" {
		if msgs.FieldRequired != "" {
			return Result{Message: strings.ReplaceAll(msgs.FieldRequired, "{field}", fieldName)}
		}
		return Result{Message: fieldName + " is required"}
	}
	return ok()
}

// ValidateFileSize проверяет размер файла против лимита в мегабайтах.
func ValidateFileSize(sizeBytes int64, maxSizeMB int, msgs *Messages) Result {
	if msgs == nil {
		msgs = &Messages{}
	}
	maxBytes := int64(maxSizeMB) * 1024 * 1024
	if sizeBytes > maxBytes {
		max := strconv.Itoa(maxSizeMB)
		if msgs.FileSizeExceeded != "" {
			return Result{Message: strings.ReplaceAll(msgs.FileSizeExceeded, "{maxSize}", max)}
		}
		return Result{Message: "File size must be less than " + max + "MB"}
	}
	return ok()
}

// ValidateFileType проверяет MIME-тип против списка разрешённых.
// Элемент списка — либо точный MIME ("application/pdf"),
// либо шаблон с подстановкой "image/*" (совпадение по префиксу "image/").
func ValidateFileType(declaredMime string, allowed []string, msgs *Messages) Result {
	if msgs == nil {
		msgs = &Messages{}
	}
	for _, a := range allowed {
		if strings.HasSuffix(a, "/*") {
			if strings.HasPrefix(declaredMime, a[:len(a)-1]) {
				return ok()
			}
			continue
		}
		if a == declaredMime {
			return ok()
		}
	}
	return fail(msgs.FileTypeNotAllowed, "File type is not allowed")
}
