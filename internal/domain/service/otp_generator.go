package service

// OTPGenerator produces one-time email verification codes. Only the hash of a
// code is ever stored.
type OTPGenerator interface {
	// Generate returns a fresh numeric code.
	Generate() (string, error)

	// Hash returns the storable digest of a code.
	Hash(code string) string
}
