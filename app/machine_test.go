package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/spacemeshos/smwallet/backup"
	"github.com/spacemeshos/smwallet/bootstrap"
	"github.com/spacemeshos/smwallet/common/types"
	"github.com/spacemeshos/smwallet/filesystem"
	"github.com/spacemeshos/smwallet/log/logtest"
	"github.com/spacemeshos/smwallet/mnemonic"
	"github.com/spacemeshos/smwallet/signing"
)

const (
	waitFor = time.Second
	tick    = time.Millisecond
)

type testMachine struct {
	*Machine

	cfg    Config
	clock  clockwork.FakeClock
	store  *MockcredentialStore
	files  *MockdatabaseFiles
	seeds  *MockseedService
	engine *MockengineStarter
	chain  *MockchainHeight
	gate   *MockbackupGate
}

func newTestMachine(tb testing.TB) *testMachine {
	tb.Helper()
	return newTestMachineWith(tb, nil)
}

// newTestMachineWith uses engine instead of the mocked engine starter when it is not nil.
func newTestMachineWith(tb testing.TB, engine engineStarter) *testMachine {
	tb.Helper()
	ctrl := gomock.NewController(tb)
	tm := &testMachine{
		cfg:    DefaultConfig(),
		clock:  clockwork.NewFakeClock(),
		store:  NewMockcredentialStore(ctrl),
		files:  NewMockdatabaseFiles(ctrl),
		seeds:  NewMockseedService(ctrl),
		engine: NewMockengineStarter(ctrl),
		chain:  NewMockchainHeight(ctrl),
		gate:   NewMockbackupGate(ctrl),
	}
	tm.engine.EXPECT().Generation().Return(uint64(0)).AnyTimes()
	if engine == nil {
		engine = tm.engine
	}
	tm.Machine = New(
		types.Testnet(),
		tm.store,
		tm.files,
		tm.seeds,
		engine,
		tm.chain,
		tm.gate,
		WithLogger(logtest.New(tb)),
		WithClock(tm.clock),
		WithConfig(tm.cfg),
	)
	require.NoError(tb, tm.Start(context.Background()))
	tb.Cleanup(tm.Close)
	return tm
}

func (tm *testMachine) send(tb testing.TB, a Action) {
	tb.Helper()
	require.NoError(tb, tm.Send(context.Background(), a))
}

func (tm *testMachine) waitState(tb testing.TB, cond func(State) bool) State {
	tb.Helper()
	var last State
	require.Eventually(tb, func() bool {
		last = tm.State()
		return cond(last)
	}, waitFor, tick)
	return last
}

func (tm *testMachine) waitTimers(tb testing.TB, n int) {
	tb.Helper()
	tm.clock.BlockUntil(n)
}

func (tm *testMachine) expectInitialized(wallet *types.StoredWallet) {
	tm.store.EXPECT().ExportWallet().Return(wallet, nil)
	tm.engine.EXPECT().Run(gomock.Any(), gomock.Any(), wallet).Return(&bootstrap.EngineConfig{}, nil)
}

func routeIs(route types.Route) func(State) bool {
	return func(s State) bool { return s.Route.Current() == route }
}

func testWords() []string {
	words := make([]string, 24)
	for i := range words {
		words[i] = fmt.Sprintf("word%02d", i)
	}
	return words
}

func testFlow(tb testing.TB) *backup.Flow {
	tb.Helper()
	phrase := types.NewRecoveryPhrase(testWords())
	challenge, err := backup.NewChallenge(phrase, nil)
	require.NoError(tb, err)
	return &backup.Flow{Phrase: phrase, Challenge: challenge}
}

// missingWord returns the word hidden in group i.
func missingWord(c backup.Challenge, i int) string {
	return testWords()[i*backup.GroupSize+c.Groups()[i].Missing]
}

func TestLaunchToOnboarding(t *testing.T) {
	tm := newTestMachine(t)
	tm.store.EXPECT().KeysPresent().Return(false, &types.ProbeError{Kind: types.ProbeUninitialized})
	tm.files.EXPECT().FilesPresent(types.Testnet()).Return(false, nil)

	tm.send(t, DidFinishLaunching{})
	tm.send(t, DidFinishLaunching{})
	tm.waitTimers(t, 1)
	tm.clock.Advance(tm.cfg.LaunchDelay)

	tm.waitTimers(t, 1)
	state := tm.State()
	require.Equal(t, types.Uninitialized, state.Initialization)
	require.Equal(t, types.RouteWelcome, state.Route.Current())

	tm.clock.Advance(tm.cfg.RouteDelay - time.Millisecond)
	require.Never(t, func() bool { return tm.State().Route.Current() != types.RouteWelcome }, 50*time.Millisecond, tick)

	tm.clock.Advance(time.Millisecond)
	state = tm.waitState(t, routeIs(types.RouteOnboarding))
	require.Equal(t, types.RouteWelcome, state.Route.Previous())
	require.Nil(t, state.Wallet)
}

func TestInitializedBackedUpWalletGoesHome(t *testing.T) {
	tm := newTestMachine(t)
	wallet := &types.StoredWallet{SeedPhrase: "seed", Birthday: 10, HasPassedBackupTest: true}
	tm.store.EXPECT().KeysPresent().Return(true, nil)
	tm.files.EXPECT().FilesPresent(types.Testnet()).Return(true, nil)
	tm.expectInitialized(wallet)

	tm.send(t, CheckWalletInitialization{})
	tm.waitTimers(t, 1)
	state := tm.waitState(t, func(s State) bool { return s.Initialization == types.Initialized })
	require.Equal(t, wallet, state.Wallet)
	require.Equal(t, types.RouteWelcome, state.Route.Current())

	tm.clock.Advance(tm.cfg.RouteDelay)
	state = tm.waitState(t, routeIs(types.RouteHome))
	require.Equal(t, types.RouteWelcome, state.Route.Previous())
	require.Equal(t, types.Initialized, state.Initialization)
}

func TestFilesMissingStillBootstraps(t *testing.T) {
	tm := newTestMachine(t)
	wallet := &types.StoredWallet{SeedPhrase: "seed", HasPassedBackupTest: true}
	tm.store.EXPECT().KeysPresent().Return(true, nil)
	tm.files.EXPECT().FilesPresent(types.Testnet()).Return(false, nil)
	tm.expectInitialized(wallet)

	tm.send(t, CheckWalletInitialization{})
	tm.waitTimers(t, 1)
	tm.clock.Advance(tm.cfg.RouteDelay)
	state := tm.waitState(t, routeIs(types.RouteHome))
	require.Equal(t, types.Initialized, state.Initialization)
}

func TestKeysMissingIsTerminal(t *testing.T) {
	tm := newTestMachine(t)
	tm.store.EXPECT().KeysPresent().Return(false, nil)
	tm.files.EXPECT().FilesPresent(types.Testnet()).Return(true, nil)

	tm.send(t, CheckWalletInitialization{})
	tm.waitState(t, func(s State) bool { return s.Initialization == types.KeysMissing })
	require.False(t, tm.sched.Pending(routeSlot))
	require.Equal(t, types.RouteWelcome, tm.State().Route.Current())
}

func TestNotBackedUpWalletShowsPhrase(t *testing.T) {
	tm := newTestMachine(t)
	wallet := &types.StoredWallet{SeedPhrase: "seed"}
	flow := testFlow(t)
	tm.store.EXPECT().KeysPresent().Return(true, nil)
	tm.files.EXPECT().FilesPresent(types.Testnet()).Return(true, nil)
	tm.expectInitialized(wallet)
	tm.gate.EXPECT().Prime(wallet).Return(flow, nil)

	tm.send(t, CheckWalletInitialization{})
	state := tm.waitState(t, routeIs(types.RoutePhraseDisplay))
	require.Equal(t, types.RouteWelcome, state.Route.Previous())
	require.Equal(t, types.Initialized, state.Initialization)
	require.Equal(t, flow.Phrase, state.PhraseDisplay.Phrase)
	require.Equal(t, 4, state.PhraseValidation.Challenge.Len())
	require.False(t, tm.sched.Pending(routeSlot))

	tm.send(t, PhraseDisplayCopy{})
	tm.send(t, PhraseDisplayFinished{})
	state = tm.waitState(t, routeIs(types.RoutePhraseValidation))
	require.True(t, state.PhraseDisplay.Copied)

	tm.gate.EXPECT().MarkPassed().Return(nil)
	challenge := state.PhraseValidation.Challenge
	for i := 0; i < challenge.Len(); i++ {
		tm.send(t, ApplyValidationWord{Group: i, Word: missingWord(challenge, i)})
	}
	state = tm.waitState(t, func(s State) bool {
		return s.Route.Current() == types.RouteHome && s.Wallet.HasPassedBackupTest
	})
	require.Equal(t, types.RoutePhraseValidation, state.Route.Previous())
	require.Empty(t, state.LastError)
	require.False(t, wallet.HasPassedBackupTest, "stored wallet must not be mutated in place")
}

func TestValidationMismatchResetsChallenge(t *testing.T) {
	tm := newTestMachine(t)
	wallet := &types.StoredWallet{SeedPhrase: "seed"}
	flow := testFlow(t)
	tm.store.EXPECT().KeysPresent().Return(true, nil)
	tm.files.EXPECT().FilesPresent(types.Testnet()).Return(true, nil)
	tm.expectInitialized(wallet)
	tm.gate.EXPECT().Prime(wallet).Return(flow, nil)

	tm.send(t, CheckWalletInitialization{})
	tm.waitState(t, routeIs(types.RoutePhraseDisplay))
	tm.send(t, PhraseDisplayFinished{})
	state := tm.waitState(t, routeIs(types.RoutePhraseValidation))

	challenge := state.PhraseValidation.Challenge
	tm.send(t, ApplyValidationWord{Group: 0, Word: missingWord(challenge, 1)})
	tm.send(t, ApplyValidationWord{Group: 1, Word: missingWord(challenge, 0)})
	for i := 2; i < challenge.Len(); i++ {
		tm.send(t, ApplyValidationWord{Group: i, Word: missingWord(challenge, i)})
	}
	state = tm.waitState(t, func(s State) bool { return s.PhraseValidation.Failed })
	require.Equal(t, types.RoutePhraseValidation, state.Route.Current())
	require.NotEmpty(t, state.LastError)
	require.False(t, state.PhraseValidation.Challenge.Completed())
	require.Len(t, state.PhraseValidation.Challenge.WordBank(), challenge.Len())
}

func TestApplyWordOutsideValidation(t *testing.T) {
	tm := newTestMachine(t)
	tm.send(t, ApplyValidationWord{Group: 0, Word: "word00"})
	state := tm.waitState(t, func(s State) bool { return s.LastError != "" })
	require.Equal(t, errNoChallenge.Error(), state.LastError)
	require.Equal(t, types.RouteWelcome, state.Route.Current())
}

func TestSecondDelayedRouteReplacesFirst(t *testing.T) {
	tm := newTestMachine(t)
	wallet := &types.StoredWallet{SeedPhrase: "seed", HasPassedBackupTest: true}
	tm.expectInitialized(wallet)

	// schedules home
	tm.send(t, RespondToWalletInitializationState{State: types.Initialized})
	tm.waitState(t, func(s State) bool { return s.Initialization == types.Initialized })
	// schedules onboarding in the same slot
	tm.send(t, RespondToWalletInitializationState{State: types.Uninitialized})
	tm.waitState(t, func(s State) bool { return s.Initialization == types.Uninitialized })
	tm.waitTimers(t, 1)

	tm.clock.Advance(tm.cfg.RouteDelay)
	state := tm.waitState(t, routeIs(types.RouteOnboarding))
	require.Equal(t, types.RouteWelcome, state.Route.Previous())

	tm.clock.Advance(tm.cfg.RouteDelay)
	require.Never(t, func() bool {
		s := tm.State()
		return s.Route.Current() != types.RouteOnboarding || s.Route.Previous() != types.RouteWelcome
	}, 50*time.Millisecond, tick)
}

func TestCancelWinsOverSameInstantDeadline(t *testing.T) {
	tm := newTestMachine(t)
	tm.send(t, RespondToWalletInitializationState{State: types.Uninitialized})
	tm.waitTimers(t, 1)

	tm.send(t, CancelDelayedRoute{})
	tm.clock.Advance(tm.cfg.RouteDelay)
	require.Never(t, func() bool { return tm.State().Route.Current() != types.RouteWelcome }, 50*time.Millisecond, tick)
	require.False(t, tm.sched.Pending(routeSlot))
}

func TestDebugStartupCancelsPendingRoute(t *testing.T) {
	tm := newTestMachine(t)
	tm.send(t, RespondToWalletInitializationState{State: types.Uninitialized})
	tm.waitTimers(t, 1)

	tm.send(t, DebugMenuStartup{})
	tm.clock.Advance(tm.cfg.RouteDelay)
	state := tm.waitState(t, routeIs(types.RouteStartup))
	require.Equal(t, types.RouteWelcome, state.Route.Previous())
	require.Never(t, func() bool { return tm.State().Route.Current() != types.RouteStartup }, 50*time.Millisecond, tick)
}

func TestPhraseDisplayFinished(t *testing.T) {
	for _, tc := range []struct {
		desc     string
		previous types.Route
		expect   types.Route
	}{
		{desc: "first time from welcome", previous: types.RouteWelcome, expect: types.RoutePhraseValidation},
		{desc: "first time from onboarding", previous: types.RouteOnboarding, expect: types.RoutePhraseValidation},
		{desc: "review from validation", previous: types.RoutePhraseValidation, expect: types.RouteHome},
		{desc: "other routes stay", previous: types.RouteHome, expect: types.RoutePhraseDisplay},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			tm := newTestMachine(t)
			tm.send(t, UpdateRoute{Route: tc.previous})
			tm.send(t, DisplayBackedUpPhrase{})
			state := tm.waitState(t, routeIs(types.RoutePhraseDisplay))
			require.Equal(t, tc.previous, state.Route.Previous())

			tm.send(t, PhraseDisplayFinished{})
			tm.send(t, PhraseDisplayCopy{})
			state = tm.waitState(t, func(s State) bool { return s.PhraseDisplay.Copied })
			require.Equal(t, tc.expect, state.Route.Current())
		})
	}
}

func TestDisplayPhraseAbsorbsGateFailure(t *testing.T) {
	tm := newTestMachine(t)
	wallet := &types.StoredWallet{SeedPhrase: "seed", HasPassedBackupTest: true}
	tm.expectInitialized(wallet)
	tm.send(t, RespondToWalletInitializationState{State: types.Initialized})
	tm.waitTimers(t, 1)
	tm.waitState(t, func(s State) bool { return s.Initialization == types.Initialized })

	tm.gate.EXPECT().Prime(gomock.Any()).Return(nil, &types.GateError{Err: errors.New("corrupt")})
	tm.send(t, DisplayBackedUpPhrase{})
	state := tm.waitState(t, routeIs(types.RoutePhraseDisplay))
	require.Equal(t, types.Initialized, state.Initialization)
	require.Empty(t, state.LastError)
	require.False(t, tm.sched.Pending(routeSlot))
}

func TestBootstrapFailureCollapses(t *testing.T) {
	for _, tc := range []struct {
		desc   string
		expect func(tm *testMachine)
	}{
		{
			desc: "export",
			expect: func(tm *testMachine) {
				tm.store.EXPECT().ExportWallet().Return(nil, errors.New("keychain locked"))
			},
		},
		{
			desc: "engine",
			expect: func(tm *testMachine) {
				wallet := &types.StoredWallet{SeedPhrase: "seed"}
				tm.store.EXPECT().ExportWallet().Return(wallet, nil)
				tm.engine.EXPECT().Run(gomock.Any(), gomock.Any(), wallet).
					Return(nil, &types.BootstrapError{Step: bootstrap.StepStart, Err: errors.New("refused")})
			},
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			tm := newTestMachine(t)
			tc.expect(tm)
			tm.send(t, RespondToWalletInitializationState{State: types.Initialized})
			state := tm.waitState(t, func(s State) bool { return s.Initialization == types.Failed })
			require.NotEmpty(t, state.LastError)
			require.Never(t, func() bool {
				s := tm.State()
				return s.Initialization != types.Failed || s.Route.Current() != types.RouteWelcome
			}, 50*time.Millisecond, tick)
			require.False(t, tm.sched.Pending(routeSlot))
		})
	}
}

func TestGateFailureCollapses(t *testing.T) {
	tm := newTestMachine(t)
	wallet := &types.StoredWallet{SeedPhrase: "seed"}
	tm.expectInitialized(wallet)
	tm.gate.EXPECT().Prime(wallet).Return(nil, &types.GateError{Err: errors.New("corrupt")})

	tm.send(t, RespondToWalletInitializationState{State: types.Initialized})
	state := tm.waitState(t, func(s State) bool { return s.Initialization == types.Failed })
	require.Contains(t, state.LastError, "corrupt")
	require.Equal(t, types.RouteWelcome, state.Route.Current())
}

func TestCreateNewWallet(t *testing.T) {
	tm := newTestMachine(t)
	flow := testFlow(t)
	phrase := flow.Phrase.Phrase()
	stored := &types.StoredWallet{SeedPhrase: phrase, Birthday: 1234, Language: types.English}

	tm.send(t, UpdateRoute{Route: types.RouteOnboarding})
	tm.seeds.EXPECT().RandomPhrase().Return(phrase, nil)
	tm.chain.EXPECT().LatestHeight(gomock.Any()).Return(types.Height(1234), nil)
	tm.gate.EXPECT().Prime(stored).Return(flow, nil)
	tm.store.EXPECT().ImportWallet(phrase, types.Height(1234), types.English, false).Return(nil)
	tm.expectInitialized(stored)

	tm.send(t, CreateNewWallet{})
	state := tm.waitState(t, routeIs(types.RoutePhraseDisplay))
	require.Equal(t, types.RouteOnboarding, state.Route.Previous())
	require.Equal(t, types.Initialized, state.Initialization)
	require.Equal(t, stored, state.Wallet)
	require.Equal(t, flow.Phrase, state.PhraseDisplay.Phrase)

	tm.send(t, PhraseDisplayFinished{})
	tm.waitState(t, routeIs(types.RoutePhraseValidation))
}

func TestCreateNewWalletFailsWithoutPersisting(t *testing.T) {
	tm := newTestMachine(t)
	tm.seeds.EXPECT().RandomPhrase().Return("phrase", nil)
	tm.chain.EXPECT().LatestHeight(gomock.Any()).Return(types.Height(0), errors.New("offline"))

	tm.send(t, CreateNewWallet{})
	state := tm.waitState(t, func(s State) bool { return s.Initialization == types.Failed })
	require.Contains(t, state.LastError, "offline")
	require.Nil(t, state.Wallet)
}

func TestImportWallet(t *testing.T) {
	t.Run("default birthday", func(t *testing.T) {
		tm := newTestMachine(t)
		wallet := &types.StoredWallet{SeedPhrase: "restored", Birthday: types.Testnet().DefaultBirthday, HasPassedBackupTest: true}
		tm.seeds.EXPECT().Validate("restored").Return(nil)
		tm.store.EXPECT().ImportWallet("restored", types.Testnet().DefaultBirthday, types.English, true).Return(nil)
		tm.expectInitialized(wallet)

		tm.send(t, ImportWallet{Phrase: "restored"})
		tm.waitTimers(t, 1)
		tm.waitState(t, func(s State) bool { return s.Initialization == types.Initialized })
		tm.clock.Advance(tm.cfg.RouteDelay)
		tm.waitState(t, routeIs(types.RouteHome))
	})
	t.Run("invalid phrase", func(t *testing.T) {
		tm := newTestMachine(t)
		tm.seeds.EXPECT().Validate("bad").Return(&types.ValidationError{Err: errors.New("checksum")})

		tm.send(t, ImportWallet{Phrase: "bad", Birthday: 100})
		state := tm.waitState(t, func(s State) bool { return s.Initialization == types.Failed })
		require.Contains(t, state.LastError, "checksum")
	})
	t.Run("retry clears failure", func(t *testing.T) {
		tm := newTestMachine(t)
		tm.seeds.EXPECT().Validate("bad").Return(&types.ValidationError{Err: errors.New("checksum")})
		tm.send(t, ImportWallet{Phrase: "bad"})
		tm.waitState(t, func(s State) bool { return s.Initialization == types.Failed })

		wallet := &types.StoredWallet{SeedPhrase: "good", Birthday: 5, HasPassedBackupTest: true}
		tm.seeds.EXPECT().Validate("good").Return(nil)
		tm.store.EXPECT().ImportWallet("good", types.Height(5), types.English, true).Return(nil)
		tm.expectInitialized(wallet)
		tm.send(t, ImportWallet{Phrase: "good", Birthday: 5})
		state := tm.waitState(t, func(s State) bool { return s.Initialization == types.Initialized })
		require.Empty(t, state.LastError)
	})
}

func TestMarkBackupFailureKeepsRoute(t *testing.T) {
	tm := newTestMachine(t)
	tm.gate.EXPECT().MarkPassed().Return(errors.New("disk full"))

	tm.send(t, PhraseValidationSucceeded{})
	state := tm.waitState(t, func(s State) bool { return s.LastError != "" })
	require.Equal(t, types.RouteHome, state.Route.Current())
	require.NotEqual(t, types.Failed, state.Initialization)
}

func TestNukeWallet(t *testing.T) {
	tm := newTestMachine(t)
	wallet := &types.StoredWallet{SeedPhrase: "seed", HasPassedBackupTest: true}
	tm.expectInitialized(wallet)
	tm.send(t, RespondToWalletInitializationState{State: types.Initialized})
	tm.waitTimers(t, 1)
	tm.waitState(t, func(s State) bool { return s.Initialization == types.Initialized })

	tm.store.EXPECT().Wipe().Return(nil)
	tm.files.EXPECT().WipeFiles(types.Testnet()).Return(nil)
	tm.engine.EXPECT().Reset()
	tm.send(t, NukeWallet{})
	state := tm.waitState(t, routeIs(types.RouteOnboarding))
	require.Equal(t, types.Uninitialized, state.Initialization)
	require.Nil(t, state.Wallet)
	require.False(t, tm.sched.Pending(routeSlot))

	// the home transition scheduled before the wipe must not fire
	tm.clock.Advance(tm.cfg.RouteDelay)
	require.Never(t, func() bool { return tm.State().Route.Current() != types.RouteOnboarding }, 50*time.Millisecond, tick)
}

func TestNukeWalletFailure(t *testing.T) {
	tm := newTestMachine(t)
	tm.store.EXPECT().Wipe().Return(nil)
	tm.files.EXPECT().WipeFiles(types.Testnet()).Return(errors.New("busy"))
	tm.engine.EXPECT().Reset()

	tm.send(t, NukeWallet{})
	state := tm.waitState(t, func(s State) bool { return s.Initialization == types.Failed })
	require.Contains(t, state.LastError, "busy")
}

func TestCompletionAfterNukeIsDropped(t *testing.T) {
	tm := newTestMachine(t)
	wallet := &types.StoredWallet{SeedPhrase: "seed", HasPassedBackupTest: true}
	started := make(chan struct{})
	release := make(chan struct{})
	tm.store.EXPECT().ExportWallet().Return(wallet, nil)
	tm.engine.EXPECT().Run(gomock.Any(), gomock.Any(), wallet).DoAndReturn(
		func(ctx context.Context, _ uint64, _ *types.StoredWallet) (*bootstrap.EngineConfig, error) {
			close(started)
			select {
			case <-release:
			case <-ctx.Done():
			}
			return &bootstrap.EngineConfig{}, nil
		})
	tm.store.EXPECT().Wipe().Return(nil)
	tm.files.EXPECT().WipeFiles(types.Testnet()).Return(nil)
	tm.engine.EXPECT().Reset()

	tm.send(t, RespondToWalletInitializationState{State: types.Initialized})
	<-started
	tm.send(t, NukeWallet{})
	tm.waitState(t, routeIs(types.RouteOnboarding))
	close(release)

	require.Never(t, func() bool {
		s := tm.State()
		return s.Wallet != nil || s.Initialization != types.Uninitialized
	}, 100*time.Millisecond, tick)
	require.False(t, tm.sched.Pending(routeSlot))
}

// walletPhrase is a valid english recovery phrase.
const walletPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon " +
	"abandon abandon abandon abandon abandon abandon abandon abandon " +
	"abandon abandon abandon abandon abandon abandon abandon art"

type recordingEngine struct {
	mu       sync.Mutex
	prepared []*bootstrap.EngineConfig
	running  bool
}

func (e *recordingEngine) Prepare(cfg *bootstrap.EngineConfig) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.prepared = append(e.prepared, cfg)
	return nil
}

func (e *recordingEngine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.running = true
	return nil
}

func (e *recordingEngine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.running = false
}

func (e *recordingEngine) status() (prepared int, running bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.prepared), e.running
}

func TestNukeDuringBootstrapLeavesEngineStopped(t *testing.T) {
	network := types.Testnet()
	engine := &recordingEngine{}
	seq := bootstrap.NewSequencer(bootstrap.Environment{
		Seeds:   mnemonic.New(),
		Keys:    signing.NewDeriver(network),
		Paths:   filesystem.NewDatabaseFiles("/data", filesystem.WithFilesystem(afero.NewMemMapFs())),
		Network: network,
		Config:  bootstrap.DefaultConfig(),
	}, engine, bootstrap.WithLogger(logtest.New(t)))
	tm := newTestMachineWith(t, seq)

	wiped := &types.StoredWallet{SeedPhrase: walletPhrase, Birthday: 10, HasPassedBackupTest: true}
	exporting := make(chan struct{})
	done := make(chan struct{})
	tm.store.EXPECT().ExportWallet().DoAndReturn(func() (*types.StoredWallet, error) {
		close(exporting)
		<-done
		return wiped, nil
	})
	tm.store.EXPECT().Wipe().Return(nil)
	tm.files.EXPECT().WipeFiles(network).DoAndReturn(func(types.Network) error {
		close(done)
		return nil
	})

	tm.send(t, RespondToWalletInitializationState{State: types.Initialized})
	<-exporting
	tm.send(t, NukeWallet{})
	tm.waitState(t, routeIs(types.RouteOnboarding))

	require.Never(t, func() bool {
		prepared, running := engine.status()
		return prepared > 0 || running
	}, 100*time.Millisecond, tick)
	require.False(t, seq.Running())

	// the next wallet gets an engine of its own
	next := &types.StoredWallet{SeedPhrase: walletPhrase, Birthday: 20, HasPassedBackupTest: true}
	tm.store.EXPECT().ExportWallet().Return(next, nil)
	tm.send(t, RespondToWalletInitializationState{State: types.Initialized})
	tm.waitState(t, func(s State) bool { return s.Wallet != nil && s.Initialization == types.Initialized })

	prepared, running := engine.status()
	require.Equal(t, 1, prepared)
	require.True(t, running)
	require.Equal(t, types.Height(20), engine.prepared[0].Birthday())
}

func TestSnapshotIsolation(t *testing.T) {
	tm := newTestMachine(t)
	wallet := &types.StoredWallet{SeedPhrase: "seed", HasPassedBackupTest: true}
	tm.expectInitialized(wallet)
	tm.send(t, RespondToWalletInitializationState{State: types.Initialized})
	state := tm.waitState(t, func(s State) bool { return s.Wallet != nil })

	state.Wallet.SeedPhrase = "changed"
	require.Equal(t, "seed", tm.State().Wallet.SeedPhrase)
}

func TestSendAfterClose(t *testing.T) {
	tm := newTestMachine(t)
	tm.Close()
	require.ErrorIs(t, tm.Send(context.Background(), CancelDelayedRoute{}), ErrClosed)
	require.ErrorIs(t, tm.Start(context.Background()), ErrClosed)
}
