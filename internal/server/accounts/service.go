// Package accounts implements the account lifecycle use cases: signup,
// login, and profile reads/updates. It is the only surface the transport
// layer calls; every touch of the user collection goes through the store's
// serialized access so concurrent requests cannot lose updates.
package accounts

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/avinash6982/TripMakerWeb-BE/internal/common"
	"github.com/avinash6982/TripMakerWeb-BE/internal/server/auth"
	"github.com/avinash6982/TripMakerWeb-BE/internal/server/credential"
	"github.com/avinash6982/TripMakerWeb-BE/internal/server/models"
)

// Store is the serialized-access contract the service needs from the user
// store. Returning a nil collection from the callback skips the write.
type Store interface {
	WithSerializedAccess(ctx context.Context, fn func(users []models.UserRecord) ([]models.UserRecord, error)) error
}

// Account is the public view returned by Register.
type Account struct {
	ID        string
	Email     string
	Token     string
	CreatedAt time.Time
}

// Session is the public view returned by Login.
type Session struct {
	ID    string
	Email string
	Token string
}

// ProfileView is the public, defaults-applied view of a stored profile.
type ProfileView struct {
	ID           string
	Email        string
	Phone        string
	Country      string
	Language     string
	CurrencyType string
	CreatedAt    time.Time
}

// ProfileUpdate carries partial profile changes; nil fields retain their
// prior stored values.
type ProfileUpdate struct {
	Email        *string
	Phone        *string
	Country      *string
	Language     *string
	CurrencyType *string
}

type Service struct {
	store  Store
	issuer *auth.Issuer
}

func NewService(store Store, issuer *auth.Issuer) *Service {
	return &Service{store: store, issuer: issuer}
}

func profileView(u models.UserRecord) *ProfileView {
	p := u.Profile.ApplyDefaults()
	return &ProfileView{
		ID:           u.ID,
		Email:        u.Email,
		Phone:        p.Phone,
		Country:      p.Country,
		Language:     p.Language,
		CurrencyType: p.CurrencyType,
		CreatedAt:    u.CreatedAt,
	}
}

// Register creates a new account with a hashed credential and a default
// profile, and issues a bearer token for it. A normalized-email collision
// fails with common.ErrEmailTaken and writes nothing.
func (s *Service) Register(ctx context.Context, email, password string) (*Account, error) {
	normalized := models.NormalizeEmail(email)
	// Key derivation is memory-hard; doing it before entering the queue
	// keeps slow hashing out of the serialized section.
	hash := credential.Hash(password)

	var created models.UserRecord

	err := s.store.WithSerializedAccess(ctx, func(users []models.UserRecord) ([]models.UserRecord, error) {
		for _, u := range users {
			if models.NormalizeEmail(u.Email) == normalized {
				return nil, common.ErrEmailTaken
			}
		}
		created = models.UserRecord{
			ID:             uuid.NewString(),
			Email:          normalized,
			CredentialHash: hash,
			Profile: models.Profile{
				Language:     models.DefaultLanguage,
				CurrencyType: models.DefaultCurrency,
			},
			CreatedAt: time.Now().UTC(),
		}
		return append(users, created), nil
	})
	if err != nil {
		return nil, err
	}

	token, err := s.issuer.Issue(created.ID, created.Email)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &Account{
		ID:        created.ID,
		Email:     created.Email,
		Token:     token,
		CreatedAt: created.CreatedAt,
	}, nil
}

// Login verifies the credentials and issues a fresh token. The read still
// passes through serialized access so it cannot race an in-flight
// registration or update of the same record. A missing account and a wrong
// password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	normalized := models.NormalizeEmail(email)

	var found *models.UserRecord

	err := s.store.WithSerializedAccess(ctx, func(users []models.UserRecord) ([]models.UserRecord, error) {
		for i := range users {
			if models.NormalizeEmail(users[i].Email) == normalized {
				u := users[i]
				found = &u
				break
			}
		}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	if found == nil || !credential.Verify(password, found.CredentialHash) {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(found.ID, found.Email)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &Session{ID: found.ID, Email: found.Email, Token: token}, nil
}

// GetProfile returns the defaults-applied profile view for the given user id.
func (s *Service) GetProfile(ctx context.Context, userID string) (*ProfileView, error) {
	var view *ProfileView

	err := s.store.WithSerializedAccess(ctx, func(users []models.UserRecord) ([]models.UserRecord, error) {
		for i := range users {
			if users[i].ID == userID {
				view = profileView(users[i])
				return nil, nil
			}
		}
		return nil, common.ErrorNotFound
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

// UpdateProfile applies only the supplied fields to the stored record and
// writes the collection back. Email uniqueness is checked against the
// currently persisted collection inside the same serialized step, so two
// queued updates racing to the same new address cannot both commit.
func (s *Service) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*ProfileView, error) {
	var view *ProfileView

	err := s.store.WithSerializedAccess(ctx, func(users []models.UserRecord) ([]models.UserRecord, error) {
		idx := -1
		for i := range users {
			if users[i].ID == userID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, common.ErrorNotFound
		}

		if update.Email != nil {
			normalized := models.NormalizeEmail(*update.Email)
			for i := range users {
				if i != idx && models.NormalizeEmail(users[i].Email) == normalized {
					return nil, common.ErrEmailTaken
				}
			}
			users[idx].Email = normalized
		}
		if update.Phone != nil {
			users[idx].Profile.Phone = *update.Phone
		}
		if update.Country != nil {
			users[idx].Profile.Country = *update.Country
		}
		if update.Language != nil {
			users[idx].Profile.Language = *update.Language
		}
		if update.CurrencyType != nil {
			users[idx].Profile.CurrencyType = *update.CurrencyType
		}

		view = profileView(users[idx])
		return users, nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}
