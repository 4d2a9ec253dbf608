// SPDX-FileCopyrightText: 2023-present Datadog, Inc.
// SPDX-License-Identifier: Apache-2.0

package nip44

import (
	"sync/atomic"

	"github.com/nostrkit/nip44/log"
)

type atomicBool int32

func (b *atomicBool) isSet() bool { return atomic.LoadInt32((*int32)(b)) != 0 }
func (b *atomicBool) setTrue()    { atomic.StoreInt32((*int32)(b), 1) }
func (b *atomicBool) setFalse()   { atomic.StoreInt32((*int32)(b), 0) }

var verboseLogging atomicBool

// VerboseLogging returns whether the package emits DebugLevel events for
// the encrypt/decrypt pipeline (payload sizes, derived-key derivation
// events, rejected-frame reasons — never key material, nonces, plaintext,
// or ciphertext bytes).
func VerboseLogging() bool {
	return verboseLogging.isSet()
}

// SetVerboseLogging enables debug logging for this package and returns a
// function to revert the configuration.
//
// Calling this method multiple times while already enabled produces no effect.
func SetVerboseLogging() (revert func()) {
	if verboseLogging.isSet() {
		return func() {}
	}

	verboseLogging.setTrue()
	log.Level(log.DebugLevel).Message("nip44: verbose logging enabled")

	return func() {
		verboseLogging.setFalse()
		log.Level(log.DebugLevel).Message("nip44: verbose logging disabled")
	}
}

func debugf(format string, v ...any) {
	if !verboseLogging.isSet() {
		return
	}
	log.Level(log.DebugLevel).Messagef(format, v...)
}
