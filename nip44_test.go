// SPDX-FileCopyrightText: 2023-present Datadog, Inc.
// SPDX-License-Identifier: Apache-2.0

package nip44

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func testConversationKey() ConversationKey {
	var ck ConversationKey
	for i := range ck {
		ck[i] = byte(i * 7)
	}
	return ck
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	t.Parallel()

	ck := testConversationKey()
	messages := []string{
		"a",
		"hello, world",
		strings.Repeat("x", 1000),
		"\xe2\x9c\x93 unicode check mark",
	}

	for _, msg := range messages {
		msg := msg
		t.Run(msg[:minInt(len(msg), 16)], func(t *testing.T) {
			t.Parallel()

			wire, err := Encrypt(ck, msg)
			require.NoError(t, err)

			got, err := Decrypt(ck, wire)
			require.NoError(t, err)
			require.Equal(t, msg, got)
		})
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func TestEncryptProducesDistinctCiphertextsPerCall(t *testing.T) {
	t.Parallel()

	ck := testConversationKey()

	wire1, err := Encrypt(ck, "same plaintext")
	require.NoError(t, err)
	wire2, err := Encrypt(ck, "same plaintext")
	require.NoError(t, err)

	require.NotEqual(t, wire1, wire2, "random per-call nonce must vary the ciphertext")
}

func TestEncryptWithNonceIsDeterministic(t *testing.T) {
	t.Parallel()

	ck := testConversationKey()
	var nonce [nonceLen]byte
	for i := range nonce {
		nonce[i] = byte(i)
	}

	wire1, err := encryptWithNonce(ck, "deterministic", nonce)
	require.NoError(t, err)
	wire2, err := encryptWithNonce(ck, "deterministic", nonce)
	require.NoError(t, err)

	require.Equal(t, wire1, wire2)
}

func TestDecryptRejectsTamperedCiphertext(t *testing.T) {
	t.Parallel()

	ck := testConversationKey()
	wire, err := Encrypt(ck, "authenticate me")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(wire)
	require.NoError(t, err)

	// Flip a bit in the ciphertext region (after version+nonce, before mac).
	raw[1+nonceLen] ^= 0x01
	tampered := base64.StdEncoding.EncodeToString(raw)

	_, err = Decrypt(ck, tampered)
	require.ErrorIs(t, err, ErrInvalidMAC)
}

func TestDecryptRejectsWrongConversationKey(t *testing.T) {
	t.Parallel()

	ck := testConversationKey()
	wire, err := Encrypt(ck, "for ck only")
	require.NoError(t, err)

	var other ConversationKey
	for i := range other {
		other[i] = byte(255 - i)
	}

	_, err = Decrypt(other, wire)
	require.ErrorIs(t, err, ErrInvalidMAC)
}

// TestDecryptErrorOrdering reproduces the exact classification sequence a
// single malformed wire value walks through: framing/version errors are
// surfaced before MAC verification ever runs, and MAC verification always
// runs before the padded plaintext is inspected.
func TestDecryptErrorOrdering(t *testing.T) {
	t.Parallel()

	ck := testConversationKey()

	t.Run("future version prefix short-circuits everything else", func(t *testing.T) {
		t.Parallel()
		_, err := Decrypt(ck, "#00")
		require.ErrorIs(t, err, ErrUnsupportedFutureVersion)
	})

	t.Run("invalid base64 precedes length and mac checks", func(t *testing.T) {
		t.Parallel()
		_, err := Decrypt(ck, "%%%not-base64%%%")
		require.ErrorIs(t, err, ErrBase64Decode)
	})

	t.Run("out-of-window length precedes version and mac checks", func(t *testing.T) {
		t.Parallel()
		wire := base64.StdEncoding.EncodeToString(make([]byte, 10))
		_, err := Decrypt(ck, wire)
		require.ErrorIs(t, err, ErrInvalidPadding)
	})

	t.Run("wrong version byte precedes mac check", func(t *testing.T) {
		t.Parallel()
		frame := make([]byte, minFrameLen)
		frame[0] = 0x09
		wire := base64.StdEncoding.EncodeToString(frame)
		_, err := Decrypt(ck, wire)
		require.ErrorIs(t, err, ErrUnknownVersion)
	})

	t.Run("mac failure precedes padding validation", func(t *testing.T) {
		t.Parallel()
		// Well-formed version/length/split, but garbage key stream and mac:
		// the MAC must be rejected before unpad ever runs on the garbage
		// "plaintext" it would otherwise decrypt to.
		frame := make([]byte, minFrameLen)
		frame[0] = Version2
		wire := base64.StdEncoding.EncodeToString(frame)
		_, err := Decrypt(ck, wire)
		require.ErrorIs(t, err, ErrInvalidMAC)
	})

	t.Run("padding error surfaces only after mac succeeds", func(t *testing.T) {
		t.Parallel()
		nonce := make([]byte, nonceLen)
		mk, err := deriveMessageKeys(ck, nonce)
		require.NoError(t, err)
		defer mk.destroy()

		// A genuine, authenticated padded buffer (2-byte length prefix plus
		// a minPaddedLen body, satisfying the frame-level size window) whose
		// length prefix claims a plaintext length inconsistent with the
		// body's own padding schedule.
		badPadded := make([]byte, 2+minPaddedLen)
		badPadded[0] = 0x00
		badPadded[1] = 0x21 // claims plaintext length 33, which needs CalcPaddedLen(33)=64, not 32

		ciphertext, err := chachaXOR(mk.chachaKey, mk.chachaNonce, badPadded)
		require.NoError(t, err)
		mac := computeMAC(mk.hmacKey, nonce, ciphertext)

		var nonceArr [nonceLen]byte
		copy(nonceArr[:], nonce)
		wire := encodeWire(encodeFrame(nonceArr, ciphertext, mac))

		_, err = Decrypt(ck, wire)
		require.ErrorIs(t, err, ErrInvalidPadding)
	})
}

func TestEncryptRejectsEmptyPlaintext(t *testing.T) {
	t.Parallel()

	ck := testConversationKey()
	_, err := Encrypt(ck, "")
	require.ErrorIs(t, err, ErrMessageEmpty)
}

func TestEncryptRejectsOversizedPlaintext(t *testing.T) {
	t.Parallel()

	ck := testConversationKey()
	_, err := Encrypt(ck, strings.Repeat("a", MaxPlaintextLen+1))
	require.ErrorIs(t, err, ErrMessageTooLong)
}
