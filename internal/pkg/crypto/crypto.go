package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"
)

// Sentinel plaintexts returned by Decrypt instead of an error. Callers render
// them directly; the reviewer surface shows "Decryption Failed" for garbage
// ciphertext and "Tampered Data" when authentication fails.
const (
	SentinelDecryptionFailed = "Decryption Failed"
	SentinelTamperedData     = "Tampered Data"
)

var ErrEmptyKey = errors.New("encryption key must not be empty")

// Encryptor encrypts bank details at rest with AES-GCM. The key is injected
// from configuration and derived with SHA-256, so rotation only requires a
// config change and a re-encryption pass.
type Encryptor struct {
	aead cipher.AEAD
}

// New creates an Encryptor from a secret string
func New(secret string) (*Encryptor, error) {
	if secret == "" {
		return nil, ErrEmptyKey
	}

	key := sha256.Sum256([]byte(secret))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Encryptor{aead: aead}, nil
}

// Encrypt returns a base64 ciphertext with the nonce prepended.
// Empty plaintext encrypts to the empty string.
func (e *Encryptor) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	nonce := make([]byte, e.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := e.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. It never returns an error: malformed ciphertext
// yields SentinelDecryptionFailed and an authentication failure yields
// SentinelTamperedData, so display code can show the raw result as-is.
func (e *Encryptor) Decrypt(cipherText string) string {
	if cipherText == "" {
		return ""
	}

	raw, err := base64.StdEncoding.DecodeString(cipherText)
	if err != nil || len(raw) < e.aead.NonceSize() {
		return SentinelDecryptionFailed
	}

	nonce, sealed := raw[:e.aead.NonceSize()], raw[e.aead.NonceSize():]
	plaintext, err := e.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return SentinelTamperedData
	}
	return string(plaintext)
}
