package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		valid   bool
		message string
	}{
		{"ok short", "a@b.co", true, ""},
		{"ok subdomain", "john.doe@mail.example.org", true, ""},
		{"empty", "", false, "Email is required"},
		{"no at", "not-an-email", false, "Please enter a valid email address"},
		{"no dot after at", "user@host", false, "Please enter a valid email address"},
		{"whitespace", "a b@c.de", false, "Please enter a valid email address"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateEmail(tt.email, nil)
			assert.Equal(t, tt.valid, res.IsValid)
			assert.Equal(t, tt.message, res.Message)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("secret1", nil).IsValid)
	assert.Equal(t, "Password is required", ValidatePassword("", nil).Message)
	assert.Equal(t, "Password must be at least 6 characters long", ValidatePassword("12345", nil).Message)
	// ровно 6 символов — валидно
	assert.True(t, ValidatePassword("123456", nil).IsValid)
	// длина считается в символах, не в байтах
	assert.True(t, ValidatePassword("пароль", nil).IsValid)
	assert.False(t, ValidatePassword("абвгд", nil).IsValid)
}

func TestValidateUsername(t *testing.T) {
	assert.True(t, ValidateUsername("bob", nil).IsValid)
	assert.Equal(t, "Username is required", ValidateUsername("", nil).Message)
	assert.Equal(t, "Username must be at least 3 characters long", ValidateUsername("ab", nil).Message)
	// трёхсимвольное кириллическое имя проходит, двухсимвольное нет
	assert.True(t, ValidateUsername("юля", nil).IsValid)
	assert.False(t, ValidateUsername("юл", nil).IsValid)
}

func TestValidatePasswordMatch(t *testing.T) {
	assert.True(t, ValidatePasswordMatch("abc123", "abc123", nil).IsValid)
	assert.False(t, ValidatePasswordMatch("abc123", "ABC123", nil).IsValid)
	assert.Equal(t, "Passwords do not match", ValidatePasswordMatch("a", "b", nil).Message)
}

func TestValidateRequired(t *testing.T) {
	assert.True(t, ValidateRequired("Math", "Topic", nil).IsValid)
	assert.Equal(t, "Topic is required", ValidateRequired("", "Topic", nil).Message)
	assert.Equal(t, "Field is required", ValidateRequired("   ", "", nil).Message)

	msgs := &Messages{FieldRequired: "Se requiere {field}"}
	assert.Equal(t, "Se requiere Topic", ValidateRequired("", "Topic", msgs).Message)
}

func TestValidateFileSize(t *testing.T) {
	assert.True(t, ValidateFileSize(5_000_000, 10, nil).IsValid)
	res := ValidateFileSize(11_000_000, 10, nil)
	assert.False(t, res.IsValid)
	assert.Equal(t, "File size must be less than 10MB", res.Message)

	// граница: ровно лимит — валидно, на байт больше — нет
	assert.True(t, ValidateFileSize(10*1024*1024, 10, nil).IsValid)
	assert.False(t, ValidateFileSize(10*1024*1024+1, 10, nil).IsValid)

	msgs := &Messages{FileSizeExceeded: "max {maxSize} MB"}
	assert.Equal(t, "max 10 MB", ValidateFileSize(11_000_000, 10, msgs).Message)
}

func TestValidateFileType(t *testing.T) {
	allowed := []string{"image/*", "application/pdf"}

	assert.True(t, ValidateFileType("image/png", allowed, nil).IsValid)
	assert.True(t, ValidateFileType("application/pdf", allowed, nil).IsValid)

	res := ValidateFileType("application/zip", allowed, nil)
	assert.False(t, res.IsValid)
	assert.Equal(t, "File type is not allowed", res.Message)

	// "image" без слеша не должен проходить по шаблону "image/*"
	assert.False(t, ValidateFileType("image", allowed, nil).IsValid)
}

func TestValidateMessagesOverride(t *testing.T) {
	msgs := &Messages{EmailRequired: "correo requerido"}
	assert.Equal(t, "correo requerido", ValidateEmail("", msgs).Message)
	// override не влияет на другие проверки
	assert.Equal(t, "Please enter a valid email address", ValidateEmail("bad", msgs).Message)
}
