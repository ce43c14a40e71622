package classifier

import "github.com/forPelevin/gomoji"

// cleanEmoji removes all emojis from a string
func cleanEmoji(s string) string {
	return gomoji.RemoveEmojis(s)
}

// isEmojiToken reports whether a token consists of emoji only
func isEmojiToken(s string) bool {
	return s != "" && cleanEmoji(s) == ""
}
