// SPDX-FileCopyrightText: 2023-present Datadog, Inc.
// SPDX-License-Identifier: Apache-2.0

package nip44

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/chacha20"
)

// chachaXOR applies the ChaCha20 keystream (RFC 8439, initial counter 0) to
// src, returning a freshly allocated destination buffer. Encryption and
// decryption are the same XOR operation.
func chachaXOR(key [chachaKeyLen]byte, nonce [chachaNonceLen]byte, src []byte) ([]byte, error) {
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return nil, fmt.Errorf("nip44: unable to initialize stream cipher: %w", err)
	}

	dst := make([]byte, len(src))
	c.XORKeyStream(dst, src)

	return dst, nil
}

// computeMAC returns HMAC-SHA256(hmacKey, nonce || ciphertext). The MAC
// covers the 32-byte outer nonce, not the 12-byte ChaCha20 nonce derived
// from it.
func computeMAC(hmacKey [hmacKeyLen]byte, nonce, ciphertext []byte) []byte {
	h := hmac.New(sha256.New, hmacKey[:])
	h.Write(nonce)
	h.Write(ciphertext)
	return h.Sum(nil)
}

// verifyMAC compares the expected and received MAC in constant time.
func verifyMAC(expected, received []byte) bool {
	return subtle.ConstantTimeCompare(expected, received) == 1
}
