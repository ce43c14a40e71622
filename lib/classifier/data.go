package classifier

// curated defaults used when the corresponding Config fields are empty.
// the prefix list covers Hindi/Hinglish transliterations, English terms and
// common short forms; matching is prefix-of-token, so entries are roots.
var defaultAbusivePrefixes = []string{
	// Hindi/Hinglish
	"chut", "chu", "chodu", "madar", "behenchod", "bhenchod",
	"bhosdike", "randi", "harami", "gand", "lodu", "laude", "lavde", "lauda", "loda", "lund",
	"tatti", "gaand", "bhadwe", "bhadwa", "chinal", "kutta", "kuttiya",
	"kamina", "haram", "chud", "lendi", "saala", "saale",

	// English
	"fuck", "motherfucker", "bullshit", "bastard",
	"slut", "whore", "asshole", "dick", "pussy", "bitch", "cock", "cunt",
	"dildo", "jerk", "wanker", "retard",

	// short forms / obfuscations
	"fck", "fuk", "fk", "phuck", "fuq",
	"mc", "bc", "bsdk", "chod", "ch0d",
	"kutti", "kutte", "rndi",
}

// legitimate words sharing a prefix with an abusive root, skipped by all checks
var defaultSafeWords = []string{"gandhiji", "gandagi", "gandhak"}

// abusive emoji characters, including skin tone variants
var defaultAbusiveEmojis = []string{"🖕", "🖕🏻", "🖕🏼", "🖕🏽", "🖕🏾", "🖕🏿"}
