package commands

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentguard/blacklist/internal/pepper"
)

func TestRunGeneratePepper(t *testing.T) {
	io, out := testIO()

	err := RunGeneratePepper(io)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "PEPPER")

	// The generated value is on its own indented line.
	var encoded string
	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.Contains(trimmed, " ") {
			encoded = trimmed
			break
		}
	}
	require.NotEmpty(t, encoded)

	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Len(t, raw, pepper.MinLength)
}

func TestRunGeneratePepper_Unique(t *testing.T) {
	firstIO, firstOut := testIO()
	require.NoError(t, RunGeneratePepper(firstIO))

	secondIO, secondOut := testIO()
	require.NoError(t, RunGeneratePepper(secondIO))

	assert.NotEqual(t, firstOut.String(), secondOut.String())
}
