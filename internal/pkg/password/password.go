package password

import "golang.org/x/crypto/bcrypt"

// Free-standing hash helpers so registration can hash a password without
// depending on the auth service.

// Hash returns the bcrypt hash of a plaintext password.
func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare reports whether plain matches the stored bcrypt hash.
func Compare(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
