package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor the existing user rows were
// hashed with; changing it only affects newly created hashes.
const bcryptCost = 10

// HashPassword returns a salted bcrypt hash of the plaintext. The salt
// is random, so hashing the same password twice yields different
// strings that both verify.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored hash. A
// malformed hash counts as a mismatch rather than an error.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
