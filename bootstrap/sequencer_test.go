package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/spacemeshos/smwallet/common/types"
	"github.com/spacemeshos/smwallet/log/logtest"
)

func newTestSequencer(t *testing.T) (*Sequencer, *MockEngine) {
	engine := NewMockEngine(gomock.NewController(t))
	return NewSequencer(realEnv(afero.NewMemMapFs()), engine, WithLogger(logtest.New(t))), engine
}

func TestSequencerStartsOnce(t *testing.T) {
	seq, engine := newTestSequencer(t)
	wallet := &types.StoredWallet{SeedPhrase: testPhrase, Birthday: 500_000}

	gomock.InOrder(
		engine.EXPECT().Prepare(gomock.Any()).DoAndReturn(func(cfg *EngineConfig) error {
			require.Equal(t, types.Height(500_000), cfg.Birthday())
			return nil
		}),
		engine.EXPECT().Start().Return(nil),
	)
	cfg, err := seq.Run(context.Background(), seq.Generation(), wallet)
	require.NoError(t, err)
	require.True(t, seq.Running())

	again, err := seq.Run(context.Background(), seq.Generation(), wallet)
	require.NoError(t, err)
	require.Same(t, cfg, again)
}

func TestSequencerDefaultBirthday(t *testing.T) {
	seq, engine := newTestSequencer(t)
	engine.EXPECT().Prepare(gomock.Any()).DoAndReturn(func(cfg *EngineConfig) error {
		require.Equal(t, types.Testnet().DefaultBirthday, cfg.Birthday())
		return nil
	})
	engine.EXPECT().Start()
	_, err := seq.Run(context.Background(), seq.Generation(), &types.StoredWallet{SeedPhrase: testPhrase})
	require.NoError(t, err)
}

func TestSequencerFailures(t *testing.T) {
	testErr := errors.New("test")
	for _, tc := range []struct {
		desc   string
		wallet *types.StoredWallet
		expect func(*MockEngine)
		step   string
	}{
		{
			desc: "no wallet",
			step: StepWallet,
		},
		{
			desc:   "invalid seed",
			wallet: &types.StoredWallet{SeedPhrase: "not a phrase"},
			step:   StepSeed,
		},
		{
			desc:   "prepare",
			wallet: &types.StoredWallet{SeedPhrase: testPhrase},
			expect: func(e *MockEngine) {
				e.EXPECT().Prepare(gomock.Any()).Return(testErr)
			},
			step: StepPrepare,
		},
		{
			desc:   "start is undone",
			wallet: &types.StoredWallet{SeedPhrase: testPhrase},
			expect: func(e *MockEngine) {
				gomock.InOrder(
					e.EXPECT().Prepare(gomock.Any()),
					e.EXPECT().Start().Return(testErr),
					e.EXPECT().Stop(),
				)
			},
			step: StepStart,
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			seq, engine := newTestSequencer(t)
			if tc.expect != nil {
				tc.expect(engine)
			}
			_, err := seq.Run(context.Background(), seq.Generation(), tc.wallet)
			var berr *types.BootstrapError
			require.ErrorAs(t, err, &berr)
			require.Equal(t, tc.step, berr.Step)
			require.False(t, seq.Running())
		})
	}
}

func TestSequencerRetryAfterFailure(t *testing.T) {
	seq, engine := newTestSequencer(t)
	wallet := &types.StoredWallet{SeedPhrase: testPhrase}
	gomock.InOrder(
		engine.EXPECT().Prepare(gomock.Any()),
		engine.EXPECT().Start().Return(errors.New("offline")),
		engine.EXPECT().Stop(),
		engine.EXPECT().Prepare(gomock.Any()),
		engine.EXPECT().Start(),
	)
	_, err := seq.Run(context.Background(), seq.Generation(), wallet)
	require.Error(t, err)
	_, err = seq.Run(context.Background(), seq.Generation(), wallet)
	require.NoError(t, err)
	require.True(t, seq.Running())
}

func TestSequencerReset(t *testing.T) {
	seq, engine := newTestSequencer(t)
	wallet := &types.StoredWallet{SeedPhrase: testPhrase}
	seq.Reset()

	gomock.InOrder(
		engine.EXPECT().Prepare(gomock.Any()),
		engine.EXPECT().Start(),
		engine.EXPECT().Stop(),
		engine.EXPECT().Prepare(gomock.Any()),
		engine.EXPECT().Start(),
	)
	_, err := seq.Run(context.Background(), seq.Generation(), wallet)
	require.NoError(t, err)
	seq.Reset()
	require.False(t, seq.Running())
	_, err = seq.Run(context.Background(), seq.Generation(), wallet)
	require.NoError(t, err)
}

func TestSequencerRefusesAfterReset(t *testing.T) {
	seq, _ := newTestSequencer(t)
	generation := seq.Generation()
	seq.Reset()
	require.NotEqual(t, generation, seq.Generation())

	_, err := seq.Run(context.Background(), generation, &types.StoredWallet{SeedPhrase: testPhrase})
	require.ErrorIs(t, err, ErrReset)
	var berr *types.BootstrapError
	require.ErrorAs(t, err, &berr)
	require.Equal(t, StepWallet, berr.Step)
	require.False(t, seq.Running())
}

func TestSequencerRestartsForAnotherWallet(t *testing.T) {
	seq, engine := newTestSequencer(t)
	first := &types.StoredWallet{SeedPhrase: testPhrase, Birthday: 100}
	second := &types.StoredWallet{SeedPhrase: testPhrase, Birthday: 200}
	gomock.InOrder(
		engine.EXPECT().Prepare(gomock.Any()),
		engine.EXPECT().Start(),
		engine.EXPECT().Stop(),
		engine.EXPECT().Prepare(gomock.Any()),
		engine.EXPECT().Start(),
	)
	cfg, err := seq.Run(context.Background(), seq.Generation(), first)
	require.NoError(t, err)
	restarted, err := seq.Run(context.Background(), seq.Generation(), second)
	require.NoError(t, err)
	require.NotSame(t, cfg, restarted)
	require.Equal(t, types.Height(200), restarted.Birthday())
	require.True(t, seq.Running())
}

func TestSequencerCancelledContext(t *testing.T) {
	seq, _ := newTestSequencer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := seq.Run(ctx, seq.Generation(), &types.StoredWallet{SeedPhrase: testPhrase})
	require.ErrorIs(t, err, context.Canceled)
}
