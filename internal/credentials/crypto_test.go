package credentials

import (
	"errors"
	"strings"
	"testing"

	"github.com/veridoc-ai/veridoc/internal/common"
)

// testMasterKeyHex is a fixed 32-byte key for testing (hex-encoded to 64 chars)
const testMasterKeyHex = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func mustKey(t *testing.T) []byte {
	t.Helper()
	key, err := ParseMasterKey(testMasterKeyHex)
	if err != nil {
		t.Fatalf("ParseMasterKey: %v", err)
	}
	return key
}

func TestParseMasterKey(t *testing.T) {
	if _, err := ParseMasterKey(""); err == nil {
		t.Error("empty key must be rejected")
	}
	if _, err := ParseMasterKey("zzzz"); err == nil {
		t.Error("non-hex key must be rejected")
	}
	if _, err := ParseMasterKey("abcd"); err == nil {
		t.Error("short key must be rejected")
	}
	key := mustKey(t)
	if len(key) != 32 {
		t.Errorf("key length = %d, want 32", len(key))
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := mustKey(t)

	ct, err := Encrypt(key, "sk-byo-key-12345")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if strings.Contains(ct, "sk-byo-key-12345") {
		t.Error("ciphertext leaks plaintext")
	}

	plain, err := Decrypt(key, ct)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if plain != "sk-byo-key-12345" {
		t.Errorf("round trip = %q", plain)
	}
}

func TestEncryptIsNonDeterministic(t *testing.T) {
	key := mustKey(t)
	a, _ := Encrypt(key, "same input")
	b, _ := Encrypt(key, "same input")
	if a == b {
		t.Error("two encryptions of the same plaintext must differ (random nonce)")
	}
}

func TestDecryptFailuresMapToCorruptCredential(t *testing.T) {
	key := mustKey(t)
	ct, _ := Encrypt(key, "secret")

	cases := map[string]string{
		"not base64":       "!!!not-base64!!!",
		"too short":        "YWJj", // "abc", shorter than the nonce
		"tampered payload": ct[:len(ct)-4] + "AAAA",
	}
	for name, bad := range cases {
		if _, err := Decrypt(key, bad); !errors.Is(err, common.ErrCorruptCredential) {
			t.Errorf("%s: expected ErrCorruptCredential, got %v", name, err)
		}
	}

	// Wrong key fails authentication.
	otherKey, _ := ParseMasterKey(strings.Repeat("ab", 32))
	if _, err := Decrypt(otherKey, ct); !errors.Is(err, common.ErrCorruptCredential) {
		t.Errorf("wrong key: expected ErrCorruptCredential, got %v", err)
	}
}
