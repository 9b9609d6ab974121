// Package cipher implements classical monoalphabetic substitution ciphers:
// the generic substitution primitive plus the shift, affine, and atbash
// families.
//
// # Overview
//
// A Mapping is a symbol-to-symbol replacement table. The family constructors
// build mappings from numeric keys over an alphabet:
//
//	m := cipher.ShiftMapping(3, alphabet.Upper)
//	ct := m.Encrypt("HELLO, WORLD!") // "KHOOR, ZRUOG!"
//	pt := m.Decrypt(ct)              // "HELLO, WORLD!"
//
// Affine keys are validated at construction time; an a-coefficient without a
// multiplicative inverse mod the alphabet length is rejected:
//
//	m, err := cipher.AffineMapping(5, 8, alphabet.Upper) // gcd(5,26)=1, ok
//	_, err = cipher.AffineMapping(13, 8, alphabet.Upper) // ErrInvalidKey
//
// # Key spaces
//
// ShiftKeySpace and AffineKeySpace materialize every valid key of a family as
// a Mapping, in deterministic order. The cracker package searches these
// spaces exhaustively.
//
// # Operations
//
// The families are also exposed through the operation registry, so they can
// be chained in pipelines and saved as recipes:
//
//	op, _ := cipher.GetOperation("shift_encrypt")
//	out, _ := op.Execute(ctx, []byte("HELLO"), map[string]interface{}{"shift": 3})
//
// # Thread safety
//
// Mappings and alphabets are immutable after construction and safe for
// concurrent use. The operation registry is guarded by a lock. RecipeManager
// uses internal locking for thread-safe recipe management.
//
// None of these ciphers is cryptographically secure. They exist as the
// search space for the cryptanalysis engine and for working with legacy or
// puzzle material.
package cipher
