// Package models defines the server-side data model persisted in the user
// store. Field names match the on-disk JSON layout and must stay stable.
package models

import (
	"strings"
	"time"
)

const (
	DefaultLanguage = "en"
	DefaultCurrency = "USD"
)

// Languages and CurrencyTypes are the closed sets of accepted profile codes.
var (
	Languages     = []string{"en", "es", "fr", "de", "hi"}
	CurrencyTypes = []string{"USD", "EUR", "GBP", "INR"}
)

// Profile is the mutable preference sub-object of a UserRecord. A zero value
// is valid for legacy records; ApplyDefaults fills the enumerated fields at
// read time.
type Profile struct {
	Phone        string `json:"phone"`
	Country      string `json:"country"`
	Language     string `json:"language"`
	CurrencyType string `json:"currencyType"`
}

// ApplyDefaults returns a copy of the profile with empty enumerated fields
// replaced by their defaults. Storage never migrates old records; defaulting
// happens uniformly here on every read.
func (p Profile) ApplyDefaults() Profile {
	if p.Language == "" {
		p.Language = DefaultLanguage
	}
	if p.CurrencyType == "" {
		p.CurrencyType = DefaultCurrency
	}
	return p
}

// UserRecord is the canonical stored representation of one account.
// ID and CreatedAt are assigned at creation and never change afterwards.
type UserRecord struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	CredentialHash string    `json:"credentialHash"`
	Profile        Profile   `json:"profile"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NormalizeEmail produces the unique key form of an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
