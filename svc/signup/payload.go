package signup

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/signup/pkg/registration"
)

// StoredRecord is the flat form an accepted registration is persisted in.
// The password is kept only as a bcrypt hash of its SHA-256 digest, so
// passwords of any length can be stored.
type StoredRecord struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	City         string `json:"city"`
	PostalCode   string `json:"postalCode"`
	BirthDate    string `json:"birthDate"`
}

// CheckPassword reports whether password matches the stored hash.
func (s StoredRecord) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(s.PasswordHash), passwordDigest(password)) == nil
}

// passwordDigest keeps bcrypt input under its 72-byte limit.
func passwordDigest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

func checkHashCost(cost int) error {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidHashCost, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}

func encodeRecord(rec registration.Record, hashCost int) ([]byte, error) {
	if rec.BirthDate == nil {
		return nil, errors.New("birth date is required")
	}
	hash, err := bcrypt.GenerateFromPassword(passwordDigest(rec.Password), hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return json.Marshal(StoredRecord{
		FirstName:    rec.FirstName,
		LastName:     rec.LastName,
		Email:        rec.Email,
		PasswordHash: string(hash),
		City:         rec.City,
		PostalCode:   rec.PostalCode,
		BirthDate:    rec.BirthDate.Format(DateLayout),
	})
}

// DecodeStoredRecord parses a value written by Service.Submit.
func DecodeStoredRecord(data []byte) (StoredRecord, error) {
	var s StoredRecord
	if err := json.Unmarshal(data, &s); err != nil {
		return StoredRecord{}, fmt.Errorf("decode stored record: %w", err)
	}
	return s, nil
}
