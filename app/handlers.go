package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/spacemeshos/smwallet/backup"
	"github.com/spacemeshos/smwallet/common/types"
	"github.com/spacemeshos/smwallet/log"
	"github.com/spacemeshos/smwallet/resolver"
)

var (
	errNoWallet         = errors.New("no stored wallet")
	errValidationFailed = errors.New("recovery phrase doesn't match")
	errNoChallenge      = errors.New("no phrase validation in progress")
)

func (m *Machine) handle(a Action) []effect {
	switch a := a.(type) {
	case DidFinishLaunching:
		if m.launched {
			return nil
		}
		m.launched = true
		return []effect{after(launchSlot, m.cfg.LaunchDelay, CheckWalletInitialization{})}

	case CheckWalletInitialization:
		m.retry()
		return []effect{task("resolve", m.resolve)}

	case RespondToWalletInitializationState:
		return m.respond(a.State)

	case InitializeSDK:
		// captured here so that a nuke handled later always invalidates it
		generation := m.engine.Generation()
		return []effect{task("initialize sdk", func(ctx context.Context) Action {
			return m.initializeSDK(ctx, generation)
		})}

	case SDKInitialized:
		if a.Err != nil {
			m.fail(a, a.Err)
			return nil
		}
		m.state.Wallet = a.Wallet
		m.state.Initialization = types.Initialized
		return nil

	case CheckBackupPhraseValidation:
		return m.checkBackup()

	case CreateNewWallet:
		m.retry()
		return []effect{task("create wallet", m.createWallet)}

	case NewWalletCreated:
		if a.Err != nil {
			m.fail(a, a.Err)
			return nil
		}
		m.state.Wallet = a.Wallet
		if a.Flow != nil {
			m.state.PhraseDisplay = PhraseDisplay{Phrase: a.Flow.Phrase}
			m.state.PhraseValidation = PhraseValidation{Challenge: a.Flow.Challenge}
		}
		return []effect{sequence(InitializeSDK{}, DisplayBackedUpPhrase{})}

	case ImportWallet:
		m.retry()
		return []effect{task("import wallet", func(ctx context.Context) Action {
			return m.importWallet(ctx, a)
		})}

	case WalletImported:
		if a.Err != nil {
			m.fail(a, a.Err)
			return nil
		}
		return []effect{sequence(InitializeSDK{}, CheckBackupPhraseValidation{})}

	case UpdateRoute:
		m.setRoute(a.Route)
		return nil

	case PhraseDisplayFinished:
		switch m.state.Route.Previous() {
		case types.RouteWelcome, types.RouteOnboarding:
			m.setRoute(types.RoutePhraseValidation)
		case types.RoutePhraseValidation:
			m.setRoute(types.RouteHome)
		default:
			m.logger.Debug("phrase display finished from unexpected route",
				zap.Stringer("previous", m.state.Route.Previous()),
			)
		}
		return nil

	case PhraseDisplayCopy:
		m.state.PhraseDisplay.Copied = true
		return nil

	case DisplayBackedUpPhrase:
		return m.displayPhrase()

	case ApplyValidationWord:
		return m.applyWord(a)

	case PhraseValidationSucceeded:
		m.setRoute(types.RouteHome)
		return []effect{task("mark backup passed", func(context.Context) Action {
			return BackupMarked{Err: m.gate.MarkPassed()}
		})}

	case BackupMarked:
		if a.Err != nil {
			m.state.LastError = a.Err.Error()
			handlerFailures.WithLabelValues(actionName(a)).Inc()
			m.logger.Warn("failed to mark backup as passed", zap.Error(a.Err))
			return nil
		}
		if m.state.Wallet != nil {
			w := *m.state.Wallet
			w.HasPassedBackupTest = true
			m.state.Wallet = &w
		}
		m.state.PhraseValidation = PhraseValidation{}
		return nil

	case NukeWallet:
		// completions of anything started before the wipe are dropped
		m.epoch++
		return []effect{
			cancel(routeSlot),
			task("nuke wallet", m.nuke),
		}

	case WalletNuked:
		if a.Err != nil {
			m.fail(a, a.Err)
			return nil
		}
		m.state.Initialization = types.Uninitialized
		m.state.Wallet = nil
		m.state.PhraseDisplay = PhraseDisplay{}
		m.state.PhraseValidation = PhraseValidation{}
		m.state.LastError = ""
		m.setRoute(types.RouteOnboarding)
		return nil

	case DebugMenuStartup:
		m.setRoute(types.RouteStartup)
		return []effect{cancel(routeSlot)}

	case CancelDelayedRoute:
		return []effect{cancel(routeSlot)}

	default:
		m.logger.Error("unknown action", log.ZType("action", a))
		return nil
	}
}

func (m *Machine) respond(state types.InitializationState) []effect {
	m.logger.Info("wallet initialization state resolved", zap.Stringer("state", state))
	switch state {
	case types.Initialized, types.FilesMissing:
		// Initialized is recorded once the wallet is loaded.
		if state == types.FilesMissing {
			m.state.Initialization = types.FilesMissing
		}
		return []effect{sequence(InitializeSDK{}, CheckBackupPhraseValidation{})}
	case types.Uninitialized:
		m.state.Initialization = types.Uninitialized
		return []effect{after(routeSlot, m.cfg.RouteDelay, UpdateRoute{Route: types.RouteOnboarding})}
	default:
		m.state.Initialization = state
		return nil
	}
}

func (m *Machine) checkBackup() []effect {
	if m.state.Initialization == types.Failed {
		return nil
	}
	if m.state.Wallet == nil {
		m.fail(CheckBackupPhraseValidation{}, errNoWallet)
		return nil
	}
	if !backup.ShouldGate(*m.state.Wallet) {
		m.state.Initialization = types.Initialized
		return []effect{after(routeSlot, m.cfg.RouteDelay, UpdateRoute{Route: types.RouteHome})}
	}
	flow, err := m.gate.Prime(m.state.Wallet)
	if err != nil {
		m.fail(CheckBackupPhraseValidation{}, err)
		return nil
	}
	m.state.Initialization = types.Initialized
	m.state.PhraseDisplay = PhraseDisplay{Phrase: flow.Phrase}
	m.state.PhraseValidation = PhraseValidation{Challenge: flow.Challenge}
	m.setRoute(types.RoutePhraseDisplay)
	return []effect{cancel(routeSlot)}
}

func (m *Machine) displayPhrase() []effect {
	if m.state.Initialization == types.Failed {
		return nil
	}
	if m.state.PhraseDisplay.Phrase.Len() == 0 && m.state.Wallet != nil {
		flow, err := m.gate.Prime(m.state.Wallet)
		if err != nil {
			m.logger.Warn("phrase display without primed phrase", zap.Error(err))
		} else {
			m.state.PhraseDisplay = PhraseDisplay{Phrase: flow.Phrase}
			if m.state.PhraseValidation.Challenge.Len() == 0 {
				m.state.PhraseValidation = PhraseValidation{Challenge: flow.Challenge}
			}
		}
	}
	m.setRoute(types.RoutePhraseDisplay)
	return []effect{cancel(routeSlot)}
}

func (m *Machine) applyWord(a ApplyValidationWord) []effect {
	challenge := m.state.PhraseValidation.Challenge
	if challenge.Len() == 0 {
		m.state.LastError = errNoChallenge.Error()
		return nil
	}
	next, err := challenge.Apply(a.Group, a.Word)
	if err != nil {
		m.state.LastError = err.Error()
		return nil
	}
	m.state.LastError = ""
	m.state.PhraseValidation = PhraseValidation{Challenge: next}
	if !next.Completed() {
		return nil
	}
	if next.Valid() {
		return []effect{send(PhraseValidationSucceeded{})}
	}
	m.state.PhraseValidation = PhraseValidation{Challenge: next.Reset(), Failed: true}
	m.state.LastError = errValidationFailed.Error()
	return nil
}

func (m *Machine) setRoute(route types.Route) {
	m.state.Route = m.state.Route.Set(route)
	routeTransitions.WithLabelValues(route.String()).Inc()
	m.logger.Debug("route changed",
		zap.Stringer("route", route),
		zap.Stringer("previous", m.state.Route.Previous()),
	)
}

// retry clears a previous failure. Failures are never retried automatically,
// only by a new user action.
func (m *Machine) retry() {
	m.state.LastError = ""
	if m.state.Initialization == types.Failed {
		m.state.Initialization = types.Uninitialized
	}
}

// fail collapses the machine into Failed. Errors never leave the machine.
func (m *Machine) fail(a Action, err error) {
	m.state.Initialization = types.Failed
	m.state.LastError = err.Error()
	handlerFailures.WithLabelValues(actionName(a)).Inc()
	m.logger.Error("action failed", zap.String("action", actionName(a)), zap.Error(err))
}

// tasks below run outside the machine goroutine and must not touch m.state.

func (m *Machine) resolve(context.Context) Action {
	state := resolver.Resolve(
		m.store.KeysPresent,
		func() (bool, error) { return m.files.FilesPresent(m.network) },
	)
	return RespondToWalletInitializationState{State: state}
}

func (m *Machine) initializeSDK(ctx context.Context, generation uint64) Action {
	start := m.clock.Now()
	wallet, err := m.store.ExportWallet()
	if err != nil {
		bootstrapDuration.WithLabelValues("failure").Observe(m.clock.Since(start).Seconds())
		return SDKInitialized{Err: fmt.Errorf("export wallet: %w", err)}
	}
	if _, err := m.engine.Run(ctx, generation, wallet); err != nil {
		bootstrapDuration.WithLabelValues("failure").Observe(m.clock.Since(start).Seconds())
		return SDKInitialized{Err: err}
	}
	bootstrapDuration.WithLabelValues("success").Observe(m.clock.Since(start).Seconds())
	return SDKInitialized{Wallet: wallet}
}

func (m *Machine) createWallet(ctx context.Context) Action {
	phrase, err := m.seeds.RandomPhrase()
	if err != nil {
		return NewWalletCreated{Err: fmt.Errorf("generate phrase: %w", err)}
	}
	height, err := m.chain.LatestHeight(ctx)
	if err != nil {
		return NewWalletCreated{Err: fmt.Errorf("latest height: %w", err)}
	}
	wallet := &types.StoredWallet{
		SeedPhrase: phrase,
		Birthday:   height,
		Language:   types.English,
	}
	// primed before persisting so that a broken phrase is never stored
	flow, err := m.gate.Prime(wallet)
	if err != nil {
		return NewWalletCreated{Err: err}
	}
	if err := m.store.ImportWallet(phrase, height, types.English, false); err != nil {
		return NewWalletCreated{Err: fmt.Errorf("store wallet: %w", err)}
	}
	return NewWalletCreated{Wallet: wallet, Flow: flow}
}

func (m *Machine) importWallet(_ context.Context, a ImportWallet) Action {
	if err := m.seeds.Validate(a.Phrase); err != nil {
		return WalletImported{Err: err}
	}
	birthday := a.Birthday
	if birthday == 0 {
		birthday = m.network.DefaultBirthday
	}
	if err := m.store.ImportWallet(a.Phrase, birthday, types.English, true); err != nil {
		return WalletImported{Err: fmt.Errorf("store wallet: %w", err)}
	}
	return WalletImported{}
}

func (m *Machine) nuke(context.Context) Action {
	// the engine holds the databases open
	m.engine.Reset()
	var errs []error
	if err := m.store.Wipe(); err != nil {
		errs = append(errs, fmt.Errorf("wipe credentials: %w", err))
	}
	if err := m.files.WipeFiles(m.network); err != nil {
		errs = append(errs, fmt.Errorf("wipe files: %w", err))
	}
	return WalletNuked{Err: errors.Join(errs...)}
}
