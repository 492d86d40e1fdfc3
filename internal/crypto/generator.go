package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/passcheck/passcheck-go/internal/validator"
)

const (
	upperChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars = "0123456789"

	// The symbol pool is the validator's symbol set, so a generated password
	// with symbols enabled always satisfies a symbol rule.
	symbolChars = validator.SymbolSet

	MinGenerateLength = 8
	MaxGenerateLength = 128
)

var (
	ErrLengthTooShort     = errors.New("password length must be at least 8")
	ErrLengthTooLong      = errors.New("password length must be at most 128")
	ErrNoCharacterTypes   = errors.New("at least one character type must be selected")
	ErrLengthInsufficient = errors.New("password length must be at least equal to the number of selected character types")
)

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Digits    bool
	Symbols   bool
}

// DefaultGeneratorOptions returns sensible defaults: 16 characters with all types enabled.
func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

// pools returns the character pools selected by the options.
func (o GeneratorOptions) pools() []string {
	var pools []string
	if o.Uppercase {
		pools = append(pools, upperChars)
	}
	if o.Lowercase {
		pools = append(pools, lowerChars)
	}
	if o.Digits {
		pools = append(pools, digitChars)
	}
	if o.Symbols {
		pools = append(pools, symbolChars)
	}
	return pools
}

// Generate creates a cryptographically secure random password. Every selected
// character type is guaranteed to appear at least once.
func Generate(opts GeneratorOptions) (string, error) {
	switch {
	case opts.Length < MinGenerateLength:
		return "", ErrLengthTooShort
	case opts.Length > MaxGenerateLength:
		return "", ErrLengthTooLong
	}

	pools := opts.pools()
	if len(pools) == 0 {
		return "", ErrNoCharacterTypes
	}
	if opts.Length < len(pools) {
		return "", ErrLengthInsufficient
	}

	var full string
	for _, pool := range pools {
		full += pool
	}

	password := make([]byte, 0, opts.Length)

	// One character from each selected pool, the rest from the combined pool.
	for _, pool := range pools {
		ch, err := randByte(pool)
		if err != nil {
			return "", err
		}
		password = append(password, ch)
	}
	for len(password) < opts.Length {
		ch, err := randByte(full)
		if err != nil {
			return "", err
		}
		password = append(password, ch)
	}

	// Fisher-Yates with crypto/rand so the guaranteed characters are not
	// predictably positioned at the front.
	for i := len(password) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", err
		}
		password[i], password[j.Int64()] = password[j.Int64()], password[i]
	}

	return string(password), nil
}

// randByte picks a uniformly random byte from pool using crypto/rand.
func randByte(pool string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(pool))))
	if err != nil {
		return 0, err
	}
	return pool[n.Int64()], nil
}
