// Package secrets provides high-level helpers for encrypting and decrypting
// sensitive tokens, most notably the registration keys embedded in student
// course-join links.
//
// The package derives a compound 32-byte key from an application key and a
// per-course key using HKDF-SHA-256. The derived key is then used with
// AES-256 in GCM mode to protect arbitrary byte slices or UTF-8 strings.
// Scoping the compound key to a course means a leaked ciphertext from one
// course cannot be replayed against another.
//
// On successful encryption the nonce is prepended to the ciphertext so that
// all necessary data is self-contained. All operations are constant-time with
// respect to secret material.
//
// # Architecture
//
//  1. Key validation – both `appKey` and `courseKey` must be exactly 32 bytes
//     (256 bits). Convenience helper `ValidateKeys` is provided.
//  2. Key derivation – HKDF(SHA-256) with `saltInfo = "coursekit-secrets-v1"`
//     yields the compound key. Errors are wrapped with `ErrKeyDerivationFailed`.
//  3. Encryption / Decryption – AES-GCM is used via the standard library. High
//     level helpers accept either raw byte slices (`EncryptBytes`, `DecryptBytes`)
//     or strings that are transparently base64-encoded/decoded
//     (`EncryptString`, `DecryptString`).
//
// # Usage
//
//	import "github.com/edulab/coursekit/pkg/secrets"
//
//	// Generate keys once and store securely
//	appKey, _ := secrets.GenerateKey()
//	courseKey, _ := secrets.GenerateKey()
//
//	// Encrypt
//	ct, err := secrets.EncryptString(appKey, courseKey, "super-secret")
//	if err != nil {
//	    // handle error
//	}
//
//	// Decrypt
//	plain, err := secrets.DecryptString(appKey, courseKey, ct)
//	if err != nil {
//	    // handle error
//	}
//
// # Error Handling
//
// All public functions return rich errors that wrap a sentinel package error
// such as `ErrEncryptionFailed` or `ErrInvalidCiphertext`. Use `errors.Is` to
// match against these sentinels.
//
// # Performance Considerations
//
// AES-GCM is hardware-accelerated on modern CPUs. Library allocations are
// limited to the minimum nonce and tag size plus the ciphertext payload.
package secrets
