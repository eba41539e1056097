package encoder

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBase32Encoder_Encode(t *testing.T) {
	encoder := NewBase32Encoder()

	tests := []struct {
		name     string
		input    uint64
		length   int
		expected string
	}{
		{name: "encode zero", input: 0, length: 4, expected: "AAAA"},
		{name: "encode 1", input: 1, length: 4, expected: "AAAB"},
		{name: "encode 32", input: 32, length: 4, expected: "AABA"},
		{name: "encode alphabet boundary", input: 31, length: 4, expected: "AAA7"},
		{name: "encode large number", input: 1000000, length: 4, expected: "6QSA"},
		{name: "encode with max length", input: 123456789, length: 6, expected: "DVXTIV"},
		{name: "length below minimum defaults to 4", input: 1, length: 3, expected: "AAAB"},
		{name: "length above maximum defaults to 4", input: 1, length: 10, expected: "AAAB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, encoder.Encode(tt.input, tt.length))
		})
	}
}

func TestBase32Encoder_EncodeAlphabet(t *testing.T) {
	encoder := NewBase32Encoder()

	for _, length := range []int{4, 5, 6} {
		code := encoder.Encode(0xDEADBEEFCAFE, length)
		assert.Len(t, code, length)
		assert.True(t, ValidCode(code))
		for _, c := range code {
			assert.True(t, strings.ContainsRune(Base32Alphabet, c))
		}
	}
}

func TestBase32Encoder_Capacity(t *testing.T) {
	encoder := NewBase32Encoder()

	tests := []struct {
		length   int
		expected uint64
	}{
		{length: 1, expected: 32},
		{length: 4, expected: 1048576},
		{length: 6, expected: 1073741824},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, encoder.Capacity(tt.length))
	}
}

func TestValidCode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "generated code", input: "AZZ7", expected: true},
		{name: "mixed case with separators", input: "Spring_Sale-2026", expected: true},
		{name: "exactly 32 chars", input: strings.Repeat("a", 32), expected: true},
		{name: "too short", input: "abc", expected: false},
		{name: "too long", input: strings.Repeat("a", 33), expected: false},
		{name: "empty", input: "", expected: false},
		{name: "slash", input: "abc/def", expected: false},
		{name: "dot", input: "abc.def", expected: false},
		{name: "space", input: "abc def", expected: false},
		{name: "non ascii", input: "abcé", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidCode(tt.input))
		})
	}
}

func TestBase32Encoder_Concurrent(t *testing.T) {
	encoder := NewBase32Encoder()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n uint64) {
			defer wg.Done()
			assert.Len(t, encoder.Encode(n, 5), 5)
		}(uint64(i))
	}
	wg.Wait()
}
