package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword_KnownVectors(t *testing.T) {
	// 5381 in base36 is "45h"; empty input appends length "0".
	assert.Equal(t, "45h0", Password(""))

	// 5381*33 + 'a'(97) = 177670 = "3t3a" in base36, length suffix "1".
	assert.Equal(t, "3t3a1", Password("a"))
}

func TestPassword_Deterministic(t *testing.T) {
	inputs := []string{"Passw0rd", "correct horse", "pässwörd", "日本語パスワード", ""}
	for _, in := range inputs {
		require.Equal(t, Password(in), Password(in), "same input must yield same digest: %q", in)
	}
}

func TestPassword_LengthSuffixSeparatesLengths(t *testing.T) {
	// The appended length distinguishes strings whose folds could coincide.
	a := Password("ab")
	b := Password("abc")
	assert.NotEqual(t, a, b)
	assert.Equal(t, "2", a[len(a)-1:])
	assert.Equal(t, "3", b[len(b)-1:])
}

func TestPassword_NonASCIIIsStable(t *testing.T) {
	// Surrogate pairs count as two UTF-16 units; just pin determinism and
	// a sane, non-empty output.
	got := Password("🙂")
	require.NotEmpty(t, got)
	require.Equal(t, got, Password("🙂"))
	assert.Equal(t, "2", got[len(got)-1:])
}
