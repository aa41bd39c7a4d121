package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)

	plaintext := "Today I felt a bit lost at the grocery store."

	ciphertext, err := Encrypt(plaintext, key)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, ciphertext)

	decrypted, err := Decrypt(ciphertext, key)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestEncryptProducesUniqueCiphertexts(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)

	first, err := Encrypt("same text", key)
	require.NoError(t, err)
	second, err := Encrypt("same text", key)
	require.NoError(t, err)

	// Random nonce per call.
	assert.NotEqual(t, first, second)
}

func TestDecryptWrongKey(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)
	otherKey, err := GenerateKey()
	require.NoError(t, err)

	ciphertext, err := Encrypt("secret", key)
	require.NoError(t, err)

	_, err = Decrypt(ciphertext, otherKey)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestEncryptRejectsShortKey(t *testing.T) {
	_, err := Encrypt("secret", []byte("short"))
	assert.ErrorIs(t, err, ErrInvalidKeySize)

	_, err = Decrypt("whatever", []byte("short"))
	assert.ErrorIs(t, err, ErrInvalidKeySize)
}

func TestDecryptTooShortCiphertext(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)

	short := base64.StdEncoding.EncodeToString([]byte("abc"))
	_, err = Decrypt(short, key)
	assert.ErrorIs(t, err, ErrInvalidCiphertext)
}

func TestLoadMasterKey(t *testing.T) {
	t.Setenv("MASTER_KEY", "")
	_, err := LoadMasterKey()
	assert.ErrorIs(t, err, ErrMasterKeyNotSet)

	t.Setenv("MASTER_KEY", "not-base64!!")
	_, err = LoadMasterKey()
	assert.ErrorIs(t, err, ErrInvalidMasterKey)

	key, err := GenerateKey()
	require.NoError(t, err)
	t.Setenv("MASTER_KEY", base64.StdEncoding.EncodeToString(key))
	loaded, err := LoadMasterKey()
	require.NoError(t, err)
	assert.Equal(t, key, loaded)
}
