package backup

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/smwallet/common/types"
)

func testPhrase(n int) types.RecoveryPhrase {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("w%02d", i)
	}
	return types.NewRecoveryPhrase(words)
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestNewChallenge(t *testing.T) {
	phrase := testPhrase(24)
	c, err := NewChallenge(phrase, seeded(1))
	require.NoError(t, err)
	require.Equal(t, 4, c.Len())

	positions := c.MissingPositions()
	require.Len(t, positions, 4)
	expected := make([]string, 0, len(positions))
	for i, pos := range positions {
		require.GreaterOrEqual(t, pos, i*GroupSize)
		require.Less(t, pos, (i+1)*GroupSize)
		expected = append(expected, phrase.Word(pos))
	}
	require.ElementsMatch(t, expected, c.WordBank())

	for i, g := range c.Groups() {
		require.Len(t, g.Words, GroupSize)
		require.Empty(t, g.Words[g.Missing])
		require.Equal(t, positions[i], i*GroupSize+g.Missing)
	}
}

func TestNewChallengeLength(t *testing.T) {
	_, err := NewChallenge(testPhrase(0), seeded(1))
	require.ErrorIs(t, err, ErrPhraseLength)
	_, err = NewChallenge(testPhrase(13), seeded(1))
	require.ErrorIs(t, err, ErrPhraseLength)
}

func TestChallengeCoversEveryPosition(t *testing.T) {
	phrase := testPhrase(GroupSize)
	seen := map[int]int{}
	rng := seeded(42)
	for range 600 {
		c, err := NewChallenge(phrase, rng)
		require.NoError(t, err)
		seen[c.MissingPositions()[0]]++
	}
	require.Len(t, seen, GroupSize)
	for pos, n := range seen {
		require.Greater(t, n, 50, "position %d is underrepresented", pos)
	}
}

func solve(t *testing.T, c Challenge) Challenge {
	t.Helper()
	for i, pos := range c.MissingPositions() {
		var err error
		c, err = c.Apply(i, fmt.Sprintf("w%02d", pos))
		require.NoError(t, err)
	}
	return c
}

func TestApplyValid(t *testing.T) {
	c, err := NewChallenge(testPhrase(24), seeded(3))
	require.NoError(t, err)
	require.False(t, c.Completed())
	require.False(t, c.Valid())

	solved := solve(t, c)
	require.True(t, solved.Completed())
	require.True(t, solved.Valid())
	require.Empty(t, solved.WordBank())

	require.False(t, c.Completed(), "apply doesn't mutate the receiver")
	require.Len(t, c.WordBank(), 4)
}

func TestApplyWrongOrder(t *testing.T) {
	c, err := NewChallenge(testPhrase(12), seeded(5))
	require.NoError(t, err)
	positions := c.MissingPositions()

	c, err = c.Apply(0, fmt.Sprintf("w%02d", positions[1]))
	require.NoError(t, err)
	c, err = c.Apply(1, fmt.Sprintf("w%02d", positions[0]))
	require.NoError(t, err)
	require.True(t, c.Completed())
	require.False(t, c.Valid())

	reset := c.Reset()
	require.False(t, reset.Completed())
	require.ElementsMatch(t, []string{
		fmt.Sprintf("w%02d", positions[0]),
		fmt.Sprintf("w%02d", positions[1]),
	}, reset.WordBank())
	require.True(t, solve(t, reset).Valid())
}

func TestApplyErrors(t *testing.T) {
	c, err := NewChallenge(testPhrase(12), seeded(9))
	require.NoError(t, err)
	word := c.WordBank()[0]

	_, err = c.Apply(-1, word)
	require.ErrorIs(t, err, ErrGroupIndex)
	_, err = c.Apply(2, word)
	require.ErrorIs(t, err, ErrGroupIndex)
	_, err = c.Apply(0, "nope")
	require.ErrorIs(t, err, ErrNotInBank)

	next, err := c.Apply(0, word)
	require.NoError(t, err)
	_, err = next.Apply(0, next.WordBank()[0])
	require.ErrorIs(t, err, ErrGroupFilled)
	require.Len(t, next.WordBank(), 1)
	require.False(t, slices.Contains(next.WordBank(), word))
}
