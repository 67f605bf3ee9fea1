package authutils

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789@$!#%"

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "password hashing failed")
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GeneratePassword returns a random password of the given length.
func GeneratePassword(length int) (string, error) {
	return randomString(passwordAlphabet, length)
}

// GenerateUsername builds a login from the lowercase first name and three random digits.
func GenerateUsername(firstName string) (string, error) {
	base := strings.ToLower(strings.Join(strings.Fields(firstName), ""))
	suffix, err := randomString("0123456789", 3)
	if err != nil {
		return "", err
	}
	return base + suffix, nil
}

func randomString(alphabet string, length int) (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", errors.Wrap(err, "random source failed")
		}
		buf[i] = alphabet[n.Int64()]
	}
	return string(buf), nil
}
