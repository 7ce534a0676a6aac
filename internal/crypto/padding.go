package crypto

import (
	"bytes"
	"errors"
)

var errInvalidPadding = errors.New("invalid PKCS#7 padding")

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	out := make([]byte, len(data), len(data)+padding)
	copy(out, data)
	return append(out, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

// pkcs7Unpad strips and validates PKCS#7 padding: the pad length must be in
// 1..blockSize and every pad byte must equal it.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, errInvalidPadding
	}

	pad := int(data[len(data)-1])
	if pad == 0 || pad > blockSize {
		return nil, errInvalidPadding
	}
	for _, b := range data[len(data)-pad:] {
		if int(b) != pad {
			return nil, errInvalidPadding
		}
	}

	return data[:len(data)-pad], nil
}
