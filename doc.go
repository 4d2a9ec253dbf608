// SPDX-FileCopyrightText: 2023-present Datadog, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package nip44 implements the NIP-44 version 2 encrypted payload scheme
// used between two participants identified by secp256k1 keypairs.
//
// Given a sender's private scalar and a recipient's x-only public key, the
// package derives a shared conversation key, then encrypts a UTF-8
// plaintext message into a self-authenticating, length-padded, base64
// encoded ciphertext (and symmetrically decrypts).
//
// The package is intentionally a pure, stateless library: every operation
// is a function of its inputs, there is no background work, no persisted
// state, and no network transport. Key management, forward secrecy, and
// multi-recipient fan-out are out of scope; see the package-level
// operations for the exact contract each one implements.
package nip44
