package models

// EncryptRequest asks for the fixed message to be sealed under the key
// derived from Input. Input is hashed verbatim, surrounding spaces included.
type EncryptRequest struct {
	Input string `json:"input"`
}

// EncryptResponse carries the shareable base64 blob.
type EncryptResponse struct {
	Blob string `json:"blob"`
}

// DecryptRequest asks for a blob to be opened. When Candidate is empty the
// configured candidate list is tried in order.
type DecryptRequest struct {
	Blob      string `json:"blob"`
	Candidate string `json:"candidate,omitempty"`
}

// DecryptResponse is the outcome of a successful trial decryption.
type DecryptResponse struct {
	// Message is the recovered plaintext.
	Message string `json:"message"`
	// Key is the candidate phrase that opened the blob.
	Key string `json:"key"`
}

// CandidatesResponse lists the phrases tried when no candidate is given.
type CandidatesResponse struct {
	Candidates []string `json:"candidates"`
}

// Collision is a pair of distinct phrases that derive the same key.
type Collision struct {
	First  string `json:"first"`
	Second string `json:"second"`
	Key    string `json:"key"`
}

// CheckResponse reports key collisions inside the candidate list.
// OK is true when there are none.
type CheckResponse struct {
	Collisions []Collision `json:"collisions"`
	OK         bool        `json:"ok"`
}
