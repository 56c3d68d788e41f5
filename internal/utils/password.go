// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters used for newly hashed passwords. Existing hashes carry
// their own parameters in the encoded string and are verified with those.
const (
	argonTime    uint32 = 3
	argonMemory  uint32 = 64 * 1024 // 64 MiB
	argonThreads uint8  = 4
	argonKeyLen  uint32 = 32
	argonSaltLen        = 16
)

// ErrMalformedPasswordHash is returned when an encoded hash cannot be decoded.
var ErrMalformedPasswordHash = errors.New("malformed argon2id password hash")

// argonParams holds the decoded parameters of a PHC-formatted argon2id hash.
type argonParams struct {
	time    uint32
	memory  uint32
	threads uint8
	salt    []byte
	key     []byte
}

// HashPassword derives an argon2id hash from plain and returns it encoded in
// the PHC string format:
//
//	$argon2id$v=19$m=65536,t=3,p=4$<salt>$<hash>
//
// Salt and hash are unpadded standard base64, which is what the reference
// argon2 CLI and most language bindings emit.
func HashPassword(plain string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(plain), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory,
		argonTime,
		argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// VerifyPassword reports whether candidate matches the encoded argon2id hash.
// A malformed hash is reported as a mismatch. The final comparison runs in
// constant time.
func VerifyPassword(encodedHash, candidate string) bool {
	p, err := decodeArgonHash(encodedHash)
	if err != nil {
		return false
	}

	key := argon2.IDKey([]byte(candidate), p.salt, p.time, p.memory, p.threads, uint32(len(p.key)))

	return subtle.ConstantTimeCompare(key, p.key) == 1
}

func decodeArgonHash(encodedHash string) (argonParams, error) {
	// "", "argon2id", "v=19", "m=...,t=...,p=...", salt, hash
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return argonParams{}, ErrMalformedPasswordHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return argonParams{}, ErrMalformedPasswordHash
	}

	var p argonParams
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return argonParams{}, ErrMalformedPasswordHash
	}
	if p.memory == 0 || p.time == 0 || p.threads == 0 {
		return argonParams{}, ErrMalformedPasswordHash
	}

	var err error
	if p.salt, err = decodeArgonSegment(parts[4]); err != nil {
		return argonParams{}, ErrMalformedPasswordHash
	}
	if p.key, err = decodeArgonSegment(parts[5]); err != nil || len(p.key) == 0 {
		return argonParams{}, ErrMalformedPasswordHash
	}

	return p, nil
}

// decodeArgonSegment accepts both unpadded and padded base64.
func decodeArgonSegment(s string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
}
