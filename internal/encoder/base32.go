package encoder

const (
	// Base32Alphabet is the character set of generated short codes
	Base32Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	// MinLength is the minimum generated code length
	MinLength = 4
	// MaxLength is the maximum generated code length
	MaxLength = 6

	// MinCodeLength and MaxCodeLength bound every short code, custom ones included
	MinCodeLength = 4
	MaxCodeLength = 32
)

// Base32Encoder turns numbers into fixed-length Base32 short codes
type Base32Encoder struct{}

// NewBase32Encoder creates a new Base32Encoder
func NewBase32Encoder() *Base32Encoder {
	return &Base32Encoder{}
}

// Encode encodes n as a Base32 string of the given length, keeping the low
// digits when n does not fit. Lengths outside [MinLength, MaxLength] fall back to MinLength.
func (e *Base32Encoder) Encode(n uint64, length int) string {
	if length < MinLength || length > MaxLength {
		length = MinLength
	}

	result := make([]byte, length)
	alphabetLen := uint64(len(Base32Alphabet))

	for i := length - 1; i >= 0; i-- {
		result[i] = Base32Alphabet[n%alphabetLen]
		n = n / alphabetLen
	}

	return string(result)
}

// Capacity returns how many distinct codes exist for a length
func (e *Base32Encoder) Capacity(length int) uint64 {
	alphabetLen := uint64(len(Base32Alphabet))
	capacity := uint64(1)
	for i := 0; i < length; i++ {
		capacity *= alphabetLen
	}
	return capacity
}

// ValidCode reports whether s is an acceptable short code: 4 to 32 characters
// of letters, digits, '-' and '_'.
func ValidCode(s string) bool {
	if len(s) < MinCodeLength || len(s) > MaxCodeLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}
