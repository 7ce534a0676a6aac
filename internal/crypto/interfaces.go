package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDeriver turns an arbitrary phrase into a fixed-size [DerivedKey].
//
// Implementations must be pure: the same input always yields the same key.
// Distinct inputs MAY map to the same key; for the weak deriver that is the
// whole point of the scheme.
type KeyDeriver interface {
	// Derive returns the key for input. It never fails, the empty string
	// included.
	Derive(input string) DerivedKey
}

// CipherEngine encrypts the shared message under a derived key and recovers
// it by trial decryption.
//
// Schema:
//
//	blob  = base64(IV(8) ‖ Rijndael-CBC(key, IV, PKCS7(plaintext)))
//	match = first candidate c in order with TryDecrypt(blob, Derive(c)) == ok
type CipherEngine interface {
	// Encrypt pads plaintext, encrypts it in CBC mode under key and a fresh
	// random 8-byte IV, and returns base64(IV ‖ ciphertext).
	Encrypt(plaintext []byte, key DerivedKey) (string, error)

	// TryDecrypt decrypts blob with a single key. It returns
	// [ErrMalformedBlob] when the blob cannot be parsed and
	// [ErrDecryptFailure] when the key does not produce valid text.
	TryDecrypt(blob string, key DerivedKey) ([]byte, error)

	// Decrypt tries candidates in order and returns the first one whose
	// derived key yields valid plaintext. No candidate after the winner is
	// derived or tried. Returns [ErrMalformedBlob] before trying anything if
	// the blob cannot be parsed, and [ErrAllCandidatesExhausted] when every
	// candidate is rejected.
	Decrypt(blob string, candidates []string) (Match, error)
}
