// Package fake
// Author: momentics <momentics@gmail.com>
//
// Reference backends for testing the capability surface: an in-memory
// tape, a stable-storage manipulator offering the long lending
// variants, a bounded-queue manipulator, and a checksummed file tape.
// Each implements a different capability subset to exercise structural
// substitutability.
package fake
