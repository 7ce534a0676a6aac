package crypto

// KnownBlob exposes knownBlob to the external crypto_test package.
const KnownBlob = knownBlob
