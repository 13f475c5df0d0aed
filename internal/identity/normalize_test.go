package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		want    string
		wantErr bool
	}{
		{"simple", "alice@example.com", "alice:example,com", false},
		{"multi dot replaces every dot", "a.b.c@mail.example.co.in", "a,b,c:mail,example,co,in", false},
		{"case preserved", "Bob@Example.com", "Bob:Example,com", false},
		{"surrounding whitespace trimmed", "  carol@example.com \n", "carol:example,com", false},
		{"plus tag kept", "dan+ref@example.com", "dan+ref:example,com", false},
		{"empty", "", "", true},
		{"no at sign", "example.com", "", true},
		{"two at signs", "a@b@example.com", "", true},
		{"display name form", "Alice <alice@example.com>", "", true},
		{"comma not allowed", "a,b@example.com", "", true},
		{"colon not allowed", "a:b@example.com", "", true},
		{"quoted local part", `"a b"@example.com`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.email)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidEmail)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	first, err := Normalize("a.b@example.com")
	require.NoError(t, err)
	second, err := Normalize("a.b@example.com")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestNormalize_DistinctEmailsDistinctKeys(t *testing.T) {
	a, err := Normalize("ab.c@example.com")
	require.NoError(t, err)
	b, err := Normalize("a.bc@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestEmailFromKey_RoundTrip(t *testing.T) {
	for _, email := range []string{"alice@example.com", "a.b.c@mail.example.co.in", "Mixed.Case+tag@Example.org"} {
		key, err := Normalize(email)
		require.NoError(t, err)
		assert.Equal(t, email, EmailFromKey(key))
	}
}

func TestLocalPart(t *testing.T) {
	assert.Equal(t, "alice.smith", LocalPart("alice.smith@example.com"))
	assert.Equal(t, "nodomain", LocalPart("nodomain"))
}
