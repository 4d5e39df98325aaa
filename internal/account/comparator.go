package account

import "golang.org/x/crypto/bcrypt"

// Comparator decides whether a submitted password matches a stored one.
// The service treats the stored value as opaque, so a hashing scheme can
// be swapped in without touching any flow logic.
type Comparator interface {
	Compare(stored, submitted string) bool
}

// PlaintextComparator matches passwords byte for byte. This is the
// documented behavior of the service: passwords are stored verbatim at
// registration and compared exactly at login.
type PlaintextComparator struct{}

func (PlaintextComparator) Compare(stored, submitted string) bool {
	return stored == submitted
}

// BcryptComparator verifies a submitted password against a stored bcrypt
// hash. Not wired into the default path; a drop-in replacement for
// deployments that hash at registration.
type BcryptComparator struct{}

func (BcryptComparator) Compare(stored, submitted string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(submitted)) == nil
}

// HashPassword produces a bcrypt hash suitable for BcryptComparator.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
