// SPDX-FileCopyrightText: 2023-present Datadog, Inc.
// SPDX-License-Identifier: Apache-2.0

package nip44

import (
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/hkdf"
)

// conversationKeySalt is the fixed, human-readable HKDF-Extract salt that
// domain-separates this scheme from every other HKDF use of the same ECDH
// output.
var conversationKeySalt = []byte("nip44-v2")

const (
	privateKeyLen  = 32
	xOnlyPubKeyLen = 32
)

// GetConversationKey computes the long-lived symmetric secret shared by two
// secp256k1 participants: ECDH(ownSec, peerPubXOnly) followed by
// HKDF-Extract(SHA-256, salt="nip44-v2", ikm=shared_x).
//
// Both participants derive the same ConversationKey when each uses their
// own private key and the other's public key (ECDH symmetry).
//
// ownSec must be a 32-byte secp256k1 scalar; peerPubXOnly must be the
// 32-byte x-only (BIP-340, implicit even Y) encoding of the peer's public
// key. Malformed input is reported as an error wrapping ErrInvalidKey, with
// a short detail (wrong length, scalar out of range, or the key library's
// own parse error) appended to the message.
func GetConversationKey(ownSec, peerPubXOnly []byte) (ConversationKey, error) {
	var zero ConversationKey

	sk, err := parsePrivateKey(ownSec)
	if err != nil {
		return zero, err
	}
	pk, err := parseXOnlyPublicKey(peerPubXOnly)
	if err != nil {
		return zero, err
	}

	// ECDH: scalar-point product, 32-byte big-endian X coordinate.
	sharedX := btcec.GenerateSharedSecret(sk, pk)
	defer wipe(sharedX)

	prk := hkdf.Extract(sha256.New, sharedX, conversationKeySalt)

	var ck ConversationKey
	copy(ck[:], prk)
	debugf("nip44: derived conversation key (ecdh+hkdf-extract)")

	return ck, nil
}

// parsePrivateKey validates and parses a raw secp256k1 scalar. Validation
// (non-zero, in-range) is performed here via secp256k1.ModNScalar, since
// btcec.PrivKeyFromBytes itself does not reject an out-of-range or zero
// scalar.
func parsePrivateKey(raw []byte) (*btcec.PrivateKey, error) {
	if len(raw) != privateKeyLen {
		return nil, fmt.Errorf("%w: private key must be %d bytes", ErrInvalidKey, privateKeyLen)
	}

	var scalar secp256k1.ModNScalar
	overflow := scalar.SetByteSlice(raw)
	if overflow || scalar.IsZero() {
		return nil, fmt.Errorf("%w: private key scalar out of range", ErrInvalidKey)
	}

	sk, _ := btcec.PrivKeyFromBytes(raw)
	return sk, nil
}

// parseXOnlyPublicKey lifts a BIP-340 x-only public key (implicit even Y)
// to a full secp256k1 point.
func parseXOnlyPublicKey(raw []byte) (*btcec.PublicKey, error) {
	if len(raw) != xOnlyPubKeyLen {
		return nil, fmt.Errorf("%w: x-only public key must be %d bytes", ErrInvalidKey, xOnlyPubKeyLen)
	}

	serialized := make([]byte, 1+xOnlyPubKeyLen)
	serialized[0] = 0x02 // even-Y prefix, per BIP-340
	copy(serialized[1:], raw)

	pk, err := btcec.ParsePubKey(serialized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	return pk, nil
}
