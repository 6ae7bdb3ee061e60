package config_test

import (
	"os"
	"testing"

	"github.com/Kamaal2002/interviewai-prepbot/internal/config"
)

const testKey = "01234567890123456789012345678901"

func TestInitCrypto(t *testing.T) {
	t.Run("MissingKeyDisablesCrypto", func(t *testing.T) {
		os.Unsetenv("CRYPTO_KEY")
		config.InitCrypto()
		if config.CryptoEnabled() {
			t.Error("crypto should be disabled when CRYPTO_KEY is unset")
		}
	})

	t.Run("ShortKey", func(t *testing.T) {
		os.Setenv("CRYPTO_KEY", "too_short")

		defer func() {
			if r := recover(); r == nil {
				t.Errorf("InitCrypto should have panicked on a short key, but did not")
			}
		}()

		config.InitCrypto()
	})

	t.Run("ValidKey", func(t *testing.T) {
		os.Setenv("CRYPTO_KEY", testKey)
		config.InitCrypto()
		if !config.CryptoEnabled() {
			t.Error("crypto should be enabled with a 32 byte key")
		}
	})
}

func TestEncryptDecrypt(t *testing.T) {
	os.Setenv("CRYPTO_KEY", testKey)
	config.InitCrypto()

	t.Run("SimpleText", func(t *testing.T) {
		plaintext := "ten years of experience with distributed systems"

		ciphertext, err := config.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}

		decrypted, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}

		if decrypted != plaintext {
			t.Errorf("decrypted text (%q) does not match original (%q)", decrypted, plaintext)
		}

		ciphertext2, _ := config.Encrypt(plaintext)
		if ciphertext == ciphertext2 {
			t.Errorf("encryption is not randomized; two ciphertexts of the same input should differ")
		}
	})

	t.Run("EmptyText", func(t *testing.T) {
		ciphertext, err := config.Encrypt("")
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		decrypted, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if decrypted != "" {
			t.Errorf("decrypted empty text is incorrect: %q", decrypted)
		}
	})
}
