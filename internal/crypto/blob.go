// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// IVSize is the length of the random IV carried at the head of every blob.
const IVSize = 8

// sealedBlob is a decoded blob: IV ‖ ciphertext.
type sealedBlob struct {
	iv         [IVSize]byte
	ciphertext []byte
}

// encodeBlob renders IV ‖ ciphertext as standard base64.
func encodeBlob(iv [IVSize]byte, ciphertext []byte) string {
	raw := make([]byte, 0, IVSize+len(ciphertext))
	raw = append(raw, iv[:]...)
	raw = append(raw, ciphertext...)
	return base64.StdEncoding.EncodeToString(raw)
}

// parseBlob decodes a base64 blob and splits it into IV and ciphertext.
// Surrounding whitespace and line breaks (pasted text) are ignored.
func parseBlob(blob string) (sealedBlob, error) {
	cleaned := strings.Join(strings.Fields(blob), "")

	raw, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return sealedBlob{}, fmt.Errorf("%w: decode base64: %v", ErrMalformedBlob, err)
	}

	if len(raw) < IVSize+BlockSize {
		return sealedBlob{}, fmt.Errorf("%w: %d bytes is too short", ErrMalformedBlob, len(raw))
	}

	var sb sealedBlob
	copy(sb.iv[:], raw[:IVSize])
	sb.ciphertext = raw[IVSize:]

	if len(sb.ciphertext)%BlockSize != 0 {
		return sealedBlob{}, fmt.Errorf("%w: ciphertext length %d is not a multiple of %d",
			ErrMalformedBlob, len(sb.ciphertext), BlockSize)
	}

	return sb, nil
}

// chainIV widens the 8-byte IV to a full CBC block. The upper half is zero,
// matching blobs produced by earlier versions of the tool.
func (sb sealedBlob) chainIV() []byte {
	iv := make([]byte, BlockSize)
	copy(iv, sb.iv[:])
	return iv
}
