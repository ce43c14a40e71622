package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_normalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"PlainWord", "good", "good"},
		{"Uppercase", "GOOD", "good"},
		{"Elongated", "goooood", "good"},
		{"DoubledLettersKept", "better", "better"},
		{"AtToA", "f@ck", "fack"},
		{"StarElided", "f*ck", "fck"},
		{"DollarToS", "a$$", "ass"},
		{"ZeroToO", "g00d", "good"},
		{"MixedSymbols", "ch##tiya", "chtiya"},
		{"OnlySymbols", "***", ""},
		{"TrailingPunct", "amazing!!!", "amazing"},
		{"Empty", "", ""},
		{"ElongatedWithSymbols", "f***ckkkk", "fckk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalize(tt.input))
		})
	}
}

func Test_normalizeIdempotent(t *testing.T) {
	inputs := []string{"goooood", "f@ck", "f***", "ch##tiya", "hello", "", "a$$hole", "g00d"}
	for _, inp := range inputs {
		once := normalize(inp)
		assert.Equal(t, once, normalize(once), "normalize(normalize(%q)) differs", inp)
	}
}

func Test_collapseRepeats(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"NoRepeats", "abc", "abc"},
		{"Double", "good", "good"},
		{"Triple", "goood", "good"},
		{"Long", "goooooood", "good"},
		{"MultipleRuns", "aaabbbccc", "aabbcc"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, collapseRepeats(tt.input))
		})
	}
}

func Test_tokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Simple", "hello world", []string{"hello", "world"}},
		{"Lowercased", "Hello World", []string{"hello", "world"}},
		{"CensorSymbolsKept", "f*ck this", []string{"f*ck", "this"}},
		{"AtSignKept", "what the f@ck", []string{"what", "the", "f@ck"}},
		{"PunctuationSplits", "good, very good!", []string{"good", "very", "good"}},
		{"Empty", "", nil},
		{"WhitespaceOnly", "   \t\n", nil},
		{"BareEmoji", "🖕", []string{"🖕"}},
		{"EmojiWithText", "nice 🖕", []string{"nice", "🖕"}},
		{"Digits", "24x7 support", []string{"24x7", "support"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tokenize(tt.input))
		})
	}
}
