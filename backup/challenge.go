package backup

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/spacemeshos/smwallet/common/types"
)

// GroupSize is the number of consecutive words that share one missing position.
const GroupSize = 6

var (
	ErrPhraseLength = errors.New("phrase length is not a multiple of the group size")
	ErrGroupIndex   = errors.New("group index out of range")
	ErrGroupFilled  = errors.New("group already filled")
	ErrNotInBank    = errors.New("word is not in the word bank")
)

// Random is the randomness used to build challenges. *rand.Rand implements it.
type Random interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int                     { return rand.IntN(n) }
func (globalRandom) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

type group struct {
	words   []string
	missing int
	filled  string
}

// Group is the public view of a challenge group. The missing word is blank.
type Group struct {
	Words   []string
	Missing int
	Filled  string
}

// Challenge asks the user to re-supply one word from every group of the phrase.
// Challenge is a value: Apply returns a new challenge and leaves the receiver untouched.
type Challenge struct {
	groups []group
	bank   []string
}

// NewChallenge splits phrase into groups of GroupSize words and hides one
// uniformly chosen word per group. The hidden words are shuffled into the word bank.
func NewChallenge(phrase types.RecoveryPhrase, rng Random) (Challenge, error) {
	if phrase.Len() == 0 || phrase.Len()%GroupSize != 0 {
		return Challenge{}, fmt.Errorf("%w: %d words", ErrPhraseLength, phrase.Len())
	}
	if rng == nil {
		rng = globalRandom{}
	}
	chunks := phrase.Chunks(GroupSize)
	c := Challenge{
		groups: make([]group, len(chunks)),
		bank:   make([]string, len(chunks)),
	}
	for i, words := range chunks {
		missing := rng.IntN(GroupSize)
		c.groups[i] = group{words: words, missing: missing}
		c.bank[i] = words[missing]
	}
	rng.Shuffle(len(c.bank), func(i, j int) {
		c.bank[i], c.bank[j] = c.bank[j], c.bank[i]
	})
	return c, nil
}

// Len returns the number of groups.
func (c Challenge) Len() int { return len(c.groups) }

// Groups returns a copy of every group with the missing word blanked.
func (c Challenge) Groups() []Group {
	out := make([]Group, len(c.groups))
	for i, g := range c.groups {
		words := slices.Clone(g.words)
		words[g.missing] = ""
		out[i] = Group{Words: words, Missing: g.missing, Filled: g.filled}
	}
	return out
}

// MissingPositions returns the positions of the hidden words within the whole phrase.
func (c Challenge) MissingPositions() []int {
	positions := make([]int, len(c.groups))
	for i, g := range c.groups {
		positions[i] = i*GroupSize + g.missing
	}
	return positions
}

// WordBank returns the words that were not placed yet.
func (c Challenge) WordBank() []string {
	return slices.Clone(c.bank)
}

// Apply places a word from the bank into the given group.
func (c Challenge) Apply(index int, word string) (Challenge, error) {
	if index < 0 || index >= len(c.groups) {
		return c, fmt.Errorf("%w: %d", ErrGroupIndex, index)
	}
	if c.groups[index].filled != "" {
		return c, fmt.Errorf("%w: %d", ErrGroupFilled, index)
	}
	at := slices.Index(c.bank, word)
	if at < 0 {
		return c, fmt.Errorf("%w: %q", ErrNotInBank, word)
	}
	next := Challenge{
		groups: slices.Clone(c.groups),
		bank:   slices.Delete(slices.Clone(c.bank), at, at+1),
	}
	next.groups[index].filled = word
	return next, nil
}

// Completed reports whether every group was filled.
func (c Challenge) Completed() bool {
	if len(c.groups) == 0 {
		return false
	}
	for _, g := range c.groups {
		if g.filled == "" {
			return false
		}
	}
	return true
}

// Valid reports whether every group was filled with its own missing word.
func (c Challenge) Valid() bool {
	if !c.Completed() {
		return false
	}
	for _, g := range c.groups {
		if g.filled != g.words[g.missing] {
			return false
		}
	}
	return true
}

// Reset clears every placed word and returns them to the bank.
func (c Challenge) Reset() Challenge {
	next := Challenge{
		groups: slices.Clone(c.groups),
		bank:   slices.Clone(c.bank),
	}
	for i := range next.groups {
		if next.groups[i].filled != "" {
			next.bank = append(next.bank, next.groups[i].filled)
			next.groups[i].filled = ""
		}
	}
	return next
}
