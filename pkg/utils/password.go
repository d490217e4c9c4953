package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword returns the bcrypt hash of pw; the raw value is never stored.
func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b)
}

// CheckPassword compares in constant time via bcrypt.
func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
