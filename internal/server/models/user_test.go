package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	t.Parallel()

	t.Run("empty profile gets defaults", func(t *testing.T) {
		p := Profile{}.ApplyDefaults()
		assert.Equal(t, DefaultLanguage, p.Language)
		assert.Equal(t, DefaultCurrency, p.CurrencyType)
		assert.Equal(t, "", p.Phone)
		assert.Equal(t, "", p.Country)
	})

	t.Run("set values are kept", func(t *testing.T) {
		p := Profile{Phone: "123", Country: "France", Language: "fr", CurrencyType: "EUR"}.ApplyDefaults()
		assert.Equal(t, Profile{Phone: "123", Country: "France", Language: "fr", CurrencyType: "EUR"}, p)
	})
}

func TestDefaultsAreMembersOfClosedSets(t *testing.T) {
	t.Parallel()

	assert.Contains(t, Languages, DefaultLanguage)
	assert.Contains(t, CurrencyTypes, DefaultCurrency)
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"a@x.com", "a@x.com"},
		{"  A@X.COM  ", "a@x.com"},
		{"MiXeD@Case.Org", "mixed@case.org"},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, NormalizeEmail(tc.in))
	}
}

func TestUserRecord_JSONFieldNames(t *testing.T) {
	t.Parallel()

	u := UserRecord{
		ID:             "u1",
		Email:          "a@x.com",
		CredentialHash: "salt:key",
		Profile:        Profile{Language: "en", CurrencyType: "USD"},
		CreatedAt:      time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	b, err := json.Marshal(u)
	require.NoError(t, err)

	// The on-disk layout is a stability contract with existing data files.
	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	for _, key := range []string{"id", "email", "credentialHash", "profile", "createdAt"} {
		assert.Contains(t, raw, key)
	}

	profile, ok := raw["profile"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"phone", "country", "language", "currencyType"} {
		assert.Contains(t, profile, key)
	}
}
