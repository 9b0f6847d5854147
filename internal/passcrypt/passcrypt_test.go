package passcrypt

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"secret1",
		"p@ss w0rd с пробелами",
		"пароль-кириллица",
		"日本語パスワード",
		"emoji 🔐🔑",
		"very long password xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
	}
	for _, in := range inputs {
		ct, err := Encrypt(in)
		require.NoError(t, err)
		got, err := Decrypt(ct)
		require.NoError(t, err)
		assert.Equal(t, in, got, "round-trip failed for %q", in)
	}
}

func TestEncryptDeterministic(t *testing.T) {
	a, err := Encrypt("secret1")
	require.NoError(t, err)
	b, err := Encrypt("secret1")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := Encrypt("secret2")
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestDecryptMalformed(t *testing.T) {
	// не base64
	_, err := Decrypt("%%%not-base64%%%")
	assert.ErrorIs(t, err, ErrMalformed)

	// слишком коротко
	_, err = Decrypt(base64.StdEncoding.EncodeToString([]byte("short")))
	assert.ErrorIs(t, err, ErrMalformed)

	// подмена одного байта шифртекста — GCM должен отвергнуть
	ct, err := Encrypt("secret1")
	require.NoError(t, err)
	raw, err := base64.StdEncoding.DecodeString(ct)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0x01
	_, err = Decrypt(base64.StdEncoding.EncodeToString(raw))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestCiphertextNotPlaintext(t *testing.T) {
	ct, err := Encrypt("secret1")
	require.NoError(t, err)
	assert.NotContains(t, ct, "secret1")
}
