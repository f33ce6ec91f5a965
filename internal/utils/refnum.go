package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// BuildReferenceNumber derives a short, human-readable reference of the form
// <TAG>-<BASE36 TIME TOKEN><2 RANDOM CHARS>, uppercased. Uniqueness is
// probabilistic: the random suffix shrinks but does not close the collision
// window under concurrent submissions, which is an accepted trade-off.
func BuildReferenceNumber(programTag string) string {
	token := strconv.FormatInt(time.Now().UnixMilli(), 36)

	suffix := make([]byte, 2)
	max := big.NewInt(int64(len(base36Alphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failure here is not worth failing a submission over.
			suffix[i] = base36Alphabet[0]
			continue
		}
		suffix[i] = base36Alphabet[n.Int64()]
	}

	return strings.ToUpper(programTag + "-" + token + string(suffix))
}
