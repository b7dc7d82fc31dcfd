package types_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/smwallet/common/types"
)

func TestRecoveryPhraseChunks(t *testing.T) {
	words := make([]string, 24)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}
	phrase := types.NewRecoveryPhrase(words)
	words[0] = "mutated"
	require.Equal(t, "w0", phrase.Word(0))

	chunks := phrase.Chunks(6)
	require.Len(t, chunks, 4)
	for _, chunk := range chunks {
		require.Len(t, chunk, 6)
	}
	require.Equal(t, "w23", chunks[3][5])
	require.Len(t, types.NewRecoveryPhrase(words[:7]).Chunks(6), 2)
	require.Nil(t, phrase.Chunks(0))
}

func TestRecoveryPhraseRedacted(t *testing.T) {
	phrase := types.NewRecoveryPhrase([]string{"secret", "words"})
	require.Equal(t, "secret words", phrase.Phrase())
	require.False(t, strings.Contains(fmt.Sprint(phrase), "secret"))
	require.False(t, strings.Contains(fmt.Sprintf("%v", phrase), "secret"))
}
