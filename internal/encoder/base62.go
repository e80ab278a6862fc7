package encoder

import (
	"crypto/rand"
	"fmt"
)

const (
	// Base62Alphabet is the character set of short codes
	Base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	// MinLength is the minimum short code length
	MinLength = 4
	// MaxLength is the maximum short code length
	MaxLength = 10
	// DefaultLength is the length of generated short codes
	DefaultLength = 7
)

// largest multiple of 62 that fits in a byte, used for unbiased sampling
const randomCeiling = 248

// Base62Encoder generates and validates Base62 short codes
type Base62Encoder struct{}

// NewBase62Encoder creates a new Base62Encoder
func NewBase62Encoder() *Base62Encoder {
	return &Base62Encoder{}
}

// Random returns a uniformly random Base62 string of specified length
func (e *Base62Encoder) Random(length int) (string, error) {
	length = clampLength(length)

	result := make([]byte, 0, length)
	buf := make([]byte, length*2)
	for len(result) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			if b >= randomCeiling {
				continue
			}
			result = append(result, Base62Alphabet[int(b)%len(Base62Alphabet)])
			if len(result) == length {
				break
			}
		}
	}

	return string(result), nil
}

// IsValid checks if a string is a valid short code
func (e *Base62Encoder) IsValid(s string) bool {
	if len(s) < MinLength || len(s) > MaxLength {
		return false
	}

	for _, c := range s {
		if indexOf(c) < 0 {
			return false
		}
	}

	return true
}

func clampLength(length int) int {
	if length < MinLength || length > MaxLength {
		return DefaultLength
	}
	return length
}

func indexOf(c rune) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 36
	default:
		return -1
	}
}
