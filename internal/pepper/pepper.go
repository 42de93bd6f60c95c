// Package pepper loads the process-wide hashing secret (pepper).
//
// The pepper is mixed into every personal-data digest together with the
// per-organization salt. It exists only in process memory: it is never
// persisted alongside salts or digests, and losing it permanently invalidates
// all matching capability, since digests cannot be recomputed or reversed.
package pepper

import (
	"context"
	"encoding/base64"
	"fmt"

	"gocloud.dev/secrets"

	"github.com/rentguard/blacklist/internal/config"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// MinLength is the minimum accepted pepper length in bytes.
const MinLength = 32

// Load resolves the pepper from configuration.
//
// Two sources are supported: a plain PEPPER environment value, or a
// base64-encoded PEPPER_CIPHERTEXT unwrapped through the KMS keeper
// identified by KMS_KEY_URI (gcpkms://, awskms://, azurekeyvault://,
// hashivault://, base64key://).
func Load(ctx context.Context, cfg *config.Config) (string, error) {
	switch {
	case cfg.Pepper != "":
		if err := validate(cfg.Pepper); err != nil {
			return "", err
		}
		return cfg.Pepper, nil

	case cfg.PepperCiphertext != "":
		if cfg.KMSKeyURI == "" {
			return "", fmt.Errorf("PEPPER_CIPHERTEXT is set but KMS_KEY_URI is empty")
		}

		keeper, err := secrets.OpenKeeper(ctx, cfg.KMSKeyURI)
		if err != nil {
			return "", fmt.Errorf("failed to open KMS keeper: %w", err)
		}
		defer keeper.Close()

		ciphertext, err := base64.StdEncoding.DecodeString(cfg.PepperCiphertext)
		if err != nil {
			return "", fmt.Errorf("failed to decode pepper ciphertext: %w", err)
		}

		plaintext, err := keeper.Decrypt(ctx, ciphertext)
		if err != nil {
			return "", fmt.Errorf("failed to decrypt pepper: %w", err)
		}

		pepper := string(plaintext)
		if err := validate(pepper); err != nil {
			return "", err
		}
		return pepper, nil

	default:
		return "", fmt.Errorf("no pepper configured: set PEPPER or PEPPER_CIPHERTEXT with KMS_KEY_URI")
	}
}

func validate(pepper string) error {
	if len(pepper) < MinLength {
		return fmt.Errorf("pepper must be at least %d bytes, got %d", MinLength, len(pepper))
	}
	return nil
}
