package auth

import "golang.org/x/crypto/bcrypt"

// DummyDigest is a syntactically valid bcrypt digest that matches no known
// password. Login flows compare against it when the account lookup comes
// back empty so that the work done for an unknown email is indistinguishable
// from the work done for a wrong password.
const DummyDigest = "$2a$12$AAAAAAAAAAAAAAAAAAAAAABBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB"

// HashPassword hashes a plaintext password with the given bcrypt cost.
// Each call salts independently, so two hashes of the same password differ.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword verifies a password against its stored digest. A malformed
// or foreign-format digest yields false, the same as a wrong password. The
// underlying comparison is constant-time over the digest bytes.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
