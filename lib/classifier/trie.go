package classifier

// prefixTrie is a character-level trie over abusive term roots. It is built
// once at construction and never mutated after, so concurrent reads from
// simultaneous classification calls need no synchronization.
type prefixTrie struct {
	root *trieNode
	size int
}

type trieNode struct {
	children map[rune]*trieNode
	terminal bool // path from root to this node spells a complete prefix
}

// newPrefixTrie builds a trie from the given prefixes
func newPrefixTrie(prefixes ...string) *prefixTrie {
	res := &prefixTrie{root: &trieNode{}}
	for _, p := range prefixes {
		res.insert(p)
	}
	return res
}

// insert walks or creates nodes character by character, marking the final
// node terminal. Idempotent, empty strings are ignored.
func (t *prefixTrie) insert(prefix string) {
	if prefix == "" {
		return
	}
	node := t.root
	for _, r := range prefix {
		if node.children == nil {
			node.children = map[rune]*trieNode{}
		}
		child, ok := node.children[r]
		if !ok {
			child = &trieNode{}
			node.children[r] = child
		}
		node = child
	}
	if !node.terminal {
		node.terminal = true
		t.size++
	}
}

// hasPrefixMatch reports whether any inserted prefix is a prefix of the
// given token. Returns true as soon as a terminal node is visited, i.e.
// "chutiya" matches the inserted "chut".
func (t *prefixTrie) hasPrefixMatch(token string) bool {
	node := t.root
	for _, r := range token {
		next, ok := node.children[r]
		if !ok {
			return false
		}
		node = next
		if node.terminal {
			return true
		}
	}
	return false
}

// len returns the number of distinct inserted prefixes
func (t *prefixTrie) len() int { return t.size }
