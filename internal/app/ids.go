package app

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
)

func newID() string {
	return uuid.NewString()
}

// Alphabet for reservation codes: uppercase without the characters customers
// misread over the phone (0/O, 1/I/L).
const codeAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"
const codeLength = 6

// newReservationCode returns an opaque customer-facing code such as
// RES-7KQ2MF. Uniqueness is enforced by the ledger; callers retry on a
// collision.
func newReservationCode() string {
	buf := make([]byte, codeLength)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken;
			// fall back to a uuid-derived suffix rather than returning "".
			return "RES-" + uuid.NewString()[:codeLength]
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return "RES-" + string(buf)
}
