package utils

import "regexp"

// Pola format input yang sama dengan yang dipakai form frontend,
// divalidasi ulang di sini sebelum menyentuh database.
var (
	telephonePattern = regexp.MustCompile(`^(\(?\+?[0-9]*\)?)?[0-9_\- ()]*$`)
	emailPattern     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// IsValidTelephone menerima string kosong; nomor telepon opsional.
func IsValidTelephone(number string) bool {
	return telephonePattern.MatchString(number)
}

// IsValidFax memakai pola yang sama dengan telepon.
func IsValidFax(number string) bool {
	return telephonePattern.MatchString(number)
}

func IsValidEmail(email string) bool {
	if email == "" {
		return true
	}
	return emailPattern.MatchString(email)
}
