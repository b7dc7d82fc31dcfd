package backup

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/spacemeshos/smwallet/common/types"
	"github.com/spacemeshos/smwallet/log/logtest"
)

func TestShouldGate(t *testing.T) {
	require.True(t, ShouldGate(types.StoredWallet{}))
	require.False(t, ShouldGate(types.StoredWallet{HasPassedBackupTest: true}))
}

func TestPrime(t *testing.T) {
	ctrl := gomock.NewController(t)
	words := NewMockwordSplitter(ctrl)
	gate := New(words, NewMockbackupMarker(ctrl), WithRandom(seeded(1)), WithLogger(logtest.New(t)))

	phrase := strings.Join(testPhrase(24).Words(), " ")
	words.EXPECT().ToWords(phrase).Return(testPhrase(24).Words(), nil)

	flow, err := gate.Prime(&types.StoredWallet{SeedPhrase: phrase})
	require.NoError(t, err)
	require.Equal(t, phrase, flow.Phrase.Phrase())
	require.Equal(t, 4, flow.Challenge.Len())
}

func TestPrimeFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	words := NewMockwordSplitter(ctrl)
	gate := New(words, NewMockbackupMarker(ctrl))

	var gerr *types.GateError
	_, err := gate.Prime(nil)
	require.ErrorAs(t, err, &gerr)
	require.ErrorIs(t, err, ErrNoWallet)

	words.EXPECT().ToWords("bad").Return(nil, errors.New("invalid"))
	_, err = gate.Prime(&types.StoredWallet{SeedPhrase: "bad"})
	require.ErrorAs(t, err, &gerr)

	words.EXPECT().ToWords("short").Return([]string{"a", "b"}, nil)
	_, err = gate.Prime(&types.StoredWallet{SeedPhrase: "short"})
	require.ErrorAs(t, err, &gerr)
	require.ErrorIs(t, err, ErrPhraseLength)
}

func TestMarkPassed(t *testing.T) {
	ctrl := gomock.NewController(t)
	marker := NewMockbackupMarker(ctrl)
	gate := New(NewMockwordSplitter(ctrl), marker)

	marker.EXPECT().MarkBackupPassed().Return(nil).Times(2)
	require.NoError(t, gate.MarkPassed())
	require.NoError(t, gate.MarkPassed())

	testErr := errors.New("io")
	marker.EXPECT().MarkBackupPassed().Return(testErr)
	require.ErrorIs(t, gate.MarkPassed(), testErr)
}
