package app

import (
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/smwallet/backup"
	"github.com/spacemeshos/smwallet/common/types"
)

// PhraseDisplay is the recovery phrase shown to the user.
type PhraseDisplay struct {
	Phrase types.RecoveryPhrase
	Copied bool
}

// PhraseValidation is the challenge the user solves to prove the backup.
type PhraseValidation struct {
	Challenge backup.Challenge
	// Failed is set when a completed challenge didn't match and was reset.
	Failed bool
}

// State is the application state. Values returned by the machine are
// snapshots: they share nothing mutable with the machine.
type State struct {
	Initialization   types.InitializationState
	Route            types.RouteState
	Wallet           *types.StoredWallet
	PhraseDisplay    PhraseDisplay
	PhraseValidation PhraseValidation
	LastError        string
}

func initialState() State {
	return State{
		Initialization: types.Uninitialized,
		Route:          types.NewRouteState(types.RouteWelcome),
	}
}

// clone returns a copy that doesn't alias the wallet pointer.
func (s State) clone() State {
	if s.Wallet != nil {
		w := *s.Wallet
		s.Wallet = &w
	}
	return s
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (s State) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("initialization", s.Initialization.String())
	enc.AddString("route", s.Route.Current().String())
	enc.AddString("previous_route", s.Route.Previous().String())
	enc.AddBool("wallet", s.Wallet != nil)
	if s.LastError != "" {
		enc.AddString("last_error", s.LastError)
	}
	return nil
}
