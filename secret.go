// SPDX-FileCopyrightText: 2023-present Datadog, Inc.
// SPDX-License-Identifier: Apache-2.0

package nip44

import "fmt"

const redactedToken = "[redacted nip44 secret]"

// ConversationKey is the long-lived 32-byte secret derived once per ordered
// keypair by GetConversationKey. It is a plain comparable array (not an
// opaque handle) because the public API and the interoperability test
// vectors both need to move it around as raw bytes, but it statically
// refuses to leak its content through the usual debug-printing paths.
//
// Treat it as secret: its lifetime should span a conversation, it must
// never be serialized, and callers that are done with it should call Wipe.
type ConversationKey [32]byte

var (
	_ fmt.Stringer   = ConversationKey{}
	_ fmt.GoStringer = ConversationKey{}
	_ fmt.Formatter  = ConversationKey{}
)

// String implements fmt.Stringer. It never prints the key material.
func (ConversationKey) String() string { return redactedToken }

// GoString implements fmt.GoStringer. It never prints the key material.
func (ConversationKey) GoString() string { return redactedToken }

// Format implements fmt.Formatter. It never prints the key material,
// regardless of verb (%v, %x, %q, ...).
func (ConversationKey) Format(f fmt.State, _ rune) {
	_, _ = f.Write([]byte(redactedToken))
}

// Wipe zeroes the conversation key in place. Safe to call more than once.
func (k *ConversationKey) Wipe() {
	for i := range k {
		k[i] = 0
	}
}

// wipe zeroes an arbitrary byte buffer in place. Used on the short-lived
// intermediate secrets produced during key derivation (the raw ECDH
// X-coordinate, the HKDF-Expand output) once they've been copied into their
// final destination.
func wipe(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
