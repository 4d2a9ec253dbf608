// SPDX-FileCopyrightText: 2023-present Datadog, Inc.
// SPDX-License-Identifier: Apache-2.0

package nip44

import "errors"

// Sentinel errors for the NIP-44 v2 taxonomy. Each one is returned verbatim
// (optionally wrapped with additional context via fmt.Errorf("...: %w", ...))
// so callers can classify failures with errors.Is without depending on
// message text.
var (
	// ErrUnsupportedFutureVersion is raised when the wire payload starts with
	// '#', reserved to signal a non-base64 future format.
	ErrUnsupportedFutureVersion = errors.New("nip44: unsupported future version")
	// ErrUnknownVersion is raised when the decoded version byte is not 0x02.
	ErrUnknownVersion = errors.New("nip44: unknown version")
	// ErrInvalidMAC is raised when the HMAC-SHA256 authentication tag does
	// not match the recomputed value.
	ErrInvalidMAC = errors.New("nip44: invalid mac")
	// ErrInvalidPadding is raised when the framed length is outside the
	// legal window, the length prefix is inconsistent with the remaining
	// buffer, or the padded length doesn't match the deterministic schedule.
	ErrInvalidPadding = errors.New("nip44: invalid padding")
	// ErrMessageEmpty is raised when the decoded plaintext length prefix is
	// zero, or when Encrypt is called with an empty plaintext.
	ErrMessageEmpty = errors.New("nip44: message is empty")
	// ErrInvalidKey is raised when a secp256k1 private or x-only public key
	// fails to parse.
	ErrInvalidKey = errors.New("nip44: invalid key")
	// ErrMessageTooLong is raised when the plaintext exceeds 65535 bytes.
	ErrMessageTooLong = errors.New("nip44: message is too long")
)

// Base64DecodeError wraps a base64 decoding failure so the detail from the
// standard library decoder is preserved without ever carrying plaintext or
// key material (the decoder only ever sees the already-public wire string).
type Base64DecodeError struct {
	Err error
}

// Error implements the error interface.
func (e *Base64DecodeError) Error() string {
	return "nip44: invalid base64 payload: " + e.Err.Error()
}

// Unwrap allows errors.Is/errors.As to reach the wrapped decoder error. The
// match against ErrBase64Decode is provided by the Is method below.
func (e *Base64DecodeError) Unwrap() error {
	return e.Err
}

// ErrBase64Decode is the sentinel identity for Base64DecodeError, usable with
// errors.Is(err, ErrBase64Decode) regardless of the underlying decoder detail.
var ErrBase64Decode = errors.New("nip44: base64 decode")

// Is reports whether target is the Base64DecodeError sentinel, so that
// errors.Is(err, ErrBase64Decode) succeeds for any wrapped detail.
func (e *Base64DecodeError) Is(target error) bool {
	return target == ErrBase64Decode
}
