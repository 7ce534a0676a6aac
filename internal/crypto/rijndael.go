// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/cipher"
	"encoding/binary"
	"fmt"
	"math/bits"
)

// BlockSize is the Rijndael block size used by the engine, in bytes.
const BlockSize = 16

// rcon holds the round constants of the standard table. Lookups past its end
// yield zero, which is what the 64-bit key schedule needs (it runs up to
// index 17).
var rcon = [...]byte{0x00, 0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}

var sbox, invSbox = computeSBoxes()

// rijndael is a 128-bit block Rijndael with a key schedule generalised to
// Nk = len(key)/4 words and Nr = Nk+6 rounds. For 16, 24 and 32-byte keys
// it is AES. For 8-byte keys it runs 8 rounds, which is what the share
// format has always used.
type rijndael struct {
	w      []uint32
	rounds int
}

// NewRijndael returns a [cipher.Block] for key. Accepted key sizes are 8, 16,
// 24 and 32 bytes; anything else returns [ErrInvalidKeySize].
func NewRijndael(key []byte) (cipher.Block, error) {
	switch len(key) {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidKeySize, len(key))
	}

	nk := len(key) / 4
	rounds := nk + 6
	total := 4 * (rounds + 1)

	w := make([]uint32, total)
	for i := 0; i < nk; i++ {
		w[i] = binary.BigEndian.Uint32(key[4*i:])
	}

	for i := nk; i < total; i++ {
		t := w[i-1]
		switch {
		case i%nk == 0:
			t = subWord(bits.RotateLeft32(t, 8)) ^ uint32(roundConstant(i/nk))<<24
		case nk > 6 && i%nk == 4:
			t = subWord(t)
		}
		w[i] = w[i-nk] ^ t
	}

	return &rijndael{w: w, rounds: rounds}, nil
}

// BlockSize implements [cipher.Block].
func (r *rijndael) BlockSize() int {
	return BlockSize
}

// Encrypt implements [cipher.Block].
func (r *rijndael) Encrypt(dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("crypto/rijndael: input not full block")
	}

	var s [BlockSize]byte
	copy(s[:], src[:BlockSize])

	r.addRoundKey(&s, 0)
	for round := 1; round < r.rounds; round++ {
		substitute(&s, &sbox)
		shiftRows(&s)
		mixColumns(&s)
		r.addRoundKey(&s, round)
	}
	substitute(&s, &sbox)
	shiftRows(&s)
	r.addRoundKey(&s, r.rounds)

	copy(dst, s[:])
}

// Decrypt implements [cipher.Block].
func (r *rijndael) Decrypt(dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("crypto/rijndael: input not full block")
	}

	var s [BlockSize]byte
	copy(s[:], src[:BlockSize])

	r.addRoundKey(&s, r.rounds)
	for round := r.rounds - 1; round >= 1; round-- {
		invShiftRows(&s)
		substitute(&s, &invSbox)
		r.addRoundKey(&s, round)
		invMixColumns(&s)
	}
	invShiftRows(&s)
	substitute(&s, &invSbox)
	r.addRoundKey(&s, 0)

	copy(dst, s[:])
}

// addRoundKey XORs the four schedule words of round into the column-major
// state.
func (r *rijndael) addRoundKey(s *[BlockSize]byte, round int) {
	for c := 0; c < 4; c++ {
		k := r.w[4*round+c]
		s[4*c] ^= byte(k >> 24)
		s[4*c+1] ^= byte(k >> 16)
		s[4*c+2] ^= byte(k >> 8)
		s[4*c+3] ^= byte(k)
	}
}

func roundConstant(i int) byte {
	if i < len(rcon) {
		return rcon[i]
	}
	return 0
}

func subWord(w uint32) uint32 {
	return uint32(sbox[w>>24])<<24 |
		uint32(sbox[w>>16&0xff])<<16 |
		uint32(sbox[w>>8&0xff])<<8 |
		uint32(sbox[w&0xff])
}

func substitute(s *[BlockSize]byte, box *[256]byte) {
	for i := range s {
		s[i] = box[s[i]]
	}
}

// shiftRows rotates row r of the state left by r columns.
func shiftRows(s *[BlockSize]byte) {
	o := *s
	for row := 1; row < 4; row++ {
		for c := 0; c < 4; c++ {
			s[row+4*c] = o[row+4*((c+row)%4)]
		}
	}
}

func invShiftRows(s *[BlockSize]byte) {
	o := *s
	for row := 1; row < 4; row++ {
		for c := 0; c < 4; c++ {
			s[row+4*((c+row)%4)] = o[row+4*c]
		}
	}
}

func mixColumns(s *[BlockSize]byte) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[4*c], s[4*c+1], s[4*c+2], s[4*c+3]
		s[4*c] = gmul(a0, 2) ^ gmul(a1, 3) ^ a2 ^ a3
		s[4*c+1] = a0 ^ gmul(a1, 2) ^ gmul(a2, 3) ^ a3
		s[4*c+2] = a0 ^ a1 ^ gmul(a2, 2) ^ gmul(a3, 3)
		s[4*c+3] = gmul(a0, 3) ^ a1 ^ a2 ^ gmul(a3, 2)
	}
}

func invMixColumns(s *[BlockSize]byte) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[4*c], s[4*c+1], s[4*c+2], s[4*c+3]
		s[4*c] = gmul(a0, 14) ^ gmul(a1, 11) ^ gmul(a2, 13) ^ gmul(a3, 9)
		s[4*c+1] = gmul(a0, 9) ^ gmul(a1, 14) ^ gmul(a2, 11) ^ gmul(a3, 13)
		s[4*c+2] = gmul(a0, 13) ^ gmul(a1, 9) ^ gmul(a2, 14) ^ gmul(a3, 11)
		s[4*c+3] = gmul(a0, 11) ^ gmul(a1, 13) ^ gmul(a2, 9) ^ gmul(a3, 14)
	}
}

// gmul multiplies a and b in GF(2^8) modulo x^8 + x^4 + x^3 + x + 1.
func gmul(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= 0x1b
		}
		b >>= 1
	}
	return p
}

// computeSBoxes builds the forward and inverse S-boxes from the
// multiplicative inverse in GF(2^8) followed by the affine transform.
func computeSBoxes() (fwd, inv [256]byte) {
	for a := 0; a < 256; a++ {
		var b byte
		if a != 0 {
			for c := 1; c < 256; c++ {
				if gmul(byte(a), byte(c)) == 1 {
					b = byte(c)
					break
				}
			}
		}
		fwd[a] = b ^ bits.RotateLeft8(b, 1) ^ bits.RotateLeft8(b, 2) ^
			bits.RotateLeft8(b, 3) ^ bits.RotateLeft8(b, 4) ^ 0x63
	}
	for i := range fwd {
		inv[fwd[i]] = byte(i)
	}
	return fwd, inv
}
