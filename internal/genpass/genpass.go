// Package genpass generates random passwords from fixed character classes.
//
// Look-alike characters (I, O, i, 0) are left out of the classes so
// passwords survive being read aloud or copied by hand.
package genpass

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/mrz1836/textsign/internal/constants"
	"github.com/mrz1836/textsign/internal/errors"
)

// Character classes.
const (
	Upper  = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	Lower  = "abcdefghjklmnopqrstuvwxyz"
	Number = "123456789"
	Symbol = "!@#$%^&*_+-="
)

// Options selects the password length and which classes it draws from.
type Options struct {
	Length int
	Upper  bool
	Lower  bool
	Number bool
	Symbol bool
}

// DefaultOptions returns a 16-character password with every class enabled.
func DefaultOptions() Options {
	return Options{
		Length: constants.DefaultPasswordLength,
		Upper:  true,
		Lower:  true,
		Number: true,
		Symbol: true,
	}
}

// classes returns the enabled character classes in a fixed order.
func (o Options) classes() []string {
	var out []string
	if o.Upper {
		out = append(out, Upper)
	}
	if o.Lower {
		out = append(out, Lower)
	}
	if o.Number {
		out = append(out, Number)
	}
	if o.Symbol {
		out = append(out, Symbol)
	}
	return out
}

// Generate returns a password containing at least one character from every
// enabled class, with the remaining positions drawn from their union.
// A nil random uses crypto/rand.
func Generate(random io.Reader, opts Options) (string, error) {
	if random == nil {
		random = rand.Reader
	}

	classes := opts.classes()
	if len(classes) == 0 {
		return "", errors.ErrNoCharacterClasses
	}
	if opts.Length < len(classes) || opts.Length > constants.MaxPasswordLength {
		return "", errors.Wrapf(errors.ErrValueOutOfRange,
			"length must be between %d and %d, got %d", len(classes), constants.MaxPasswordLength, opts.Length)
	}

	password := make([]byte, 0, opts.Length)
	var pool string
	for _, class := range classes {
		c, err := pick(random, class)
		if err != nil {
			return "", err
		}
		password = append(password, c)
		pool += class
	}

	for len(password) < opts.Length {
		c, err := pick(random, pool)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	if err := shuffle(random, password); err != nil {
		return "", err
	}
	return string(password), nil
}

func pick(random io.Reader, set string) (byte, error) {
	i, err := randIndex(random, len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

// shuffle is a Fisher-Yates shuffle driven by random.
func shuffle(random io.Reader, b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := randIndex(random, i+1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

func randIndex(random io.Reader, n int) (int, error) {
	v, err := rand.Int(random, big.NewInt(int64(n)))
	if err != nil {
		return 0, errors.Wrap(err, "reading random source")
	}
	return int(v.Int64()), nil
}
