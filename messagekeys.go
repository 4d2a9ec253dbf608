// SPDX-FileCopyrightText: 2023-present Datadog, Inc.
// SPDX-License-Identifier: Apache-2.0

package nip44

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	nonceLen        = 32
	chachaKeyLen    = 32
	chachaNonceLen  = 12
	hmacKeyLen      = 32
	messageKeysLen  = chachaKeyLen + chachaNonceLen + hmacKeyLen // 76
)

// messageKeys is the transient triple derived from (ConversationKey, Nonce)
// for exactly one encrypt/decrypt call.
type messageKeys struct {
	chachaKey   [chachaKeyLen]byte
	chachaNonce [chachaNonceLen]byte
	hmacKey     [hmacKeyLen]byte
}

// destroy zeroes every field of the key triple in place.
func (mk *messageKeys) destroy() {
	wipe(mk.chachaKey[:])
	wipe(mk.chachaNonce[:])
	wipe(mk.hmacKey[:])
}

// deriveMessageKeys expands a conversation key into per-message keys via
// HKDF-Expand(SHA-256, PRK=conversationKey, info=nonce, L=76), partitioned
// into a ChaCha20 key (32B), a ChaCha20 nonce (12B), and an HMAC key (32B).
func deriveMessageKeys(conversationKey ConversationKey, nonce []byte) (messageKeys, error) {
	var mk messageKeys

	if len(nonce) != nonceLen {
		return mk, fmt.Errorf("%w: nonce must be %d bytes", ErrInvalidPadding, nonceLen)
	}

	expanded := make([]byte, messageKeysLen)
	defer wipe(expanded)

	r := hkdf.Expand(sha256.New, conversationKey[:], nonce)
	if _, err := io.ReadFull(r, expanded); err != nil {
		return mk, fmt.Errorf("nip44: unable to derive message keys: %w", err)
	}

	copy(mk.chachaKey[:], expanded[0:32])
	copy(mk.chachaNonce[:], expanded[32:44])
	copy(mk.hmacKey[:], expanded[44:76])

	return mk, nil
}
