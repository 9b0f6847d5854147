// Package passcrypt реализует обратимое симметричное преобразование пароля
// на фиксированном секрете сервиса.
//
// ВНИМАНИЕ: обратимое хранение паролей — дефект безопасности унаследованной
// схемы, сохранённый ради совместимости (закон round-trip входит в контракт).
// Для новых систем используйте односторонний солёный хеш (bcrypt).
package passcrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/pbkdf2"
)

// secretKey — встроенный общий секрет сервиса (один на всех пользователей).
const secretKey = "ucsm-archive-secret-key-2024"

// keySalt фиксирует деривацию ключа; менять нельзя — сломаются сохранённые шифртексты.
const keySalt = "studyarchive.passcrypt.v1"

const (
	keyLen   = 32 // AES-256
	nonceLen = 12 // стандартный nonce GCM
	iters    = 4096
)

// ErrMalformed возвращается, когда шифртекст повреждён или создан не этим секретом.
var ErrMalformed = errors.New("passcrypt: malformed ciphertext")

var key = pbkdf2.Key([]byte(secretKey), []byte(keySalt), iters, keyLen, sha256.New)

func newGCM() (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Encrypt шифрует пароль AES-256-GCM. Nonce детерминированно выводится из
// открытого текста (HMAC-SHA256), поэтому одинаковый вход даёт одинаковый выход.
// Результат — base64(nonce || ciphertext).
func Encrypt(plain string) (string, error) {
	gcm, err := newGCM()
	if err != nil {
		return "", err
	}
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(plain))
	nonce := mac.Sum(nil)[:nonceLen]

	sealed := gcm.Seal(nil, nonce, []byte(plain), nil)
	out := make([]byte, 0, nonceLen+len(sealed))
	out = append(out, nonce...)
	out = append(out, sealed...)
	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt восстанавливает пароль из шифртекста, созданного Encrypt.
// Любой повреждённый или чужой шифртекст даёт ErrMalformed.
func Decrypt(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrMalformed
	}
	gcm, err := newGCM()
	if err != nil {
		return "", err
	}
	if len(raw) < nonceLen+gcm.Overhead() {
		return "", ErrMalformed
	}
	nonce, sealed := raw[:nonceLen], raw[nonceLen:]
	plain, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrMalformed
	}
	return string(plain), nil
}
