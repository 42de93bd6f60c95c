package commands

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/rentguard/blacklist/internal/pepper"
)

// RunGeneratePepper generates a random pepper suitable for the PEPPER
// environment variable. The value must be stored securely: losing it makes
// every stored digest permanently unmatchable.
func RunGeneratePepper(io IOTuple) error {
	raw := make([]byte, pepper.MinLength)
	if _, err := rand.Read(raw); err != nil {
		return fmt.Errorf("failed to generate pepper: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(raw)

	_, _ = fmt.Fprintf(io.Writer, "Generated pepper (set as PEPPER):\n\n  %s\n\n", encoded)
	_, _ = fmt.Fprintln(io.Writer, "Store this value securely. If it is lost, existing blacklist")
	_, _ = fmt.Fprintln(io.Writer, "digests can never be matched again.")

	return nil
}
