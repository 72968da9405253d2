package crypto

import (
	"strings"
	"testing"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	enc, err := New("unit-test-secret")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, plaintext := range []string{"12345678901", "SBIN0001234", "हिंदी", ""} {
		cipherText, err := enc.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt(%q): %v", plaintext, err)
		}
		if got := enc.Decrypt(cipherText); got != plaintext {
			t.Errorf("Decrypt(Encrypt(%q)) = %q", plaintext, got)
		}
	}
}

func TestEncryptIsNonDeterministic(t *testing.T) {
	enc, _ := New("unit-test-secret")
	a, _ := enc.Encrypt("12345678901")
	b, _ := enc.Encrypt("12345678901")
	if a == b {
		t.Error("two encryptions of the same plaintext must differ (random nonce)")
	}
}

func TestDecryptSentinels(t *testing.T) {
	enc, _ := New("unit-test-secret")

	if got := enc.Decrypt("not-base64!!"); got != SentinelDecryptionFailed {
		t.Errorf("garbage ciphertext = %q, want %q", got, SentinelDecryptionFailed)
	}

	cipherText, _ := enc.Encrypt("12345678901")
	raw := []byte(cipherText)
	// flip a character inside the base64 body
	if raw[len(raw)-5] == 'A' {
		raw[len(raw)-5] = 'B'
	} else {
		raw[len(raw)-5] = 'A'
	}
	got := enc.Decrypt(string(raw))
	if got != SentinelTamperedData && got != SentinelDecryptionFailed {
		t.Errorf("tampered ciphertext = %q, want a sentinel", got)
	}

	other, _ := New("a-different-secret")
	if got := other.Decrypt(cipherText); got != SentinelTamperedData {
		t.Errorf("wrong-key decrypt = %q, want %q", got, SentinelTamperedData)
	}
}

func TestNewRejectsEmptyKey(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Error("expected error for empty key")
	}
	if _, err := New(strings.Repeat("k", 200)); err != nil {
		t.Errorf("long secrets must be accepted, got %v", err)
	}
}
