// Package security provides crypto/rand-backed token generation.
package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const voucherAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
const voucherSuffixLength = 6

var errEmptyAlphabet = errors.New("alphabet must not be empty")

// VoucherReference returns a redemption reference of the form SK-XXXXXX.
// The alphabet omits look-alike characters so the reference can be read out
// over the phone.
func VoucherReference() (string, error) {
	suffix, err := randomString(voucherSuffixLength, voucherAlphabet)
	if err != nil {
		return "", err
	}
	return "SK-" + suffix, nil
}

// randomString samples the alphabet without modulo bias.
func randomString(length int, alphabet string) (string, error) {
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}

	return string(value), nil
}
