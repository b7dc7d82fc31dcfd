package app

import (
	"github.com/spacemeshos/smwallet/backup"
	"github.com/spacemeshos/smwallet/common/types"
	"github.com/spacemeshos/smwallet/scheduler"
)

// Action is an input of the state machine.
type Action interface {
	action()
}

type (
	// DidFinishLaunching is sent once by the process after start.
	DidFinishLaunching struct{}
	// CheckWalletInitialization probes credentials and database files.
	CheckWalletInitialization struct{}
	// RespondToWalletInitializationState reacts to the resolved readiness.
	RespondToWalletInitializationState struct {
		State types.InitializationState
	}
	// InitializeSDK loads the stored wallet and starts the engine.
	InitializeSDK struct{}
	// SDKInitialized completes InitializeSDK.
	SDKInitialized struct {
		Wallet *types.StoredWallet
		Err    error
	}
	// CheckBackupPhraseValidation routes to the backup flow or home.
	CheckBackupPhraseValidation struct{}
	// CreateNewWallet generates and stores a new wallet.
	CreateNewWallet struct{}
	// NewWalletCreated completes CreateNewWallet.
	NewWalletCreated struct {
		Wallet *types.StoredWallet
		Flow   *backup.Flow
		Err    error
	}
	// ImportWallet restores a wallet from its recovery phrase.
	// A zero Birthday selects the network default.
	ImportWallet struct {
		Phrase   string
		Birthday types.Height
	}
	// WalletImported completes ImportWallet.
	WalletImported struct {
		Err error
	}
	// UpdateRoute moves to Route.
	UpdateRoute struct {
		Route types.Route
	}
	// PhraseDisplayFinished is sent when the user leaves the phrase display.
	PhraseDisplayFinished struct{}
	// PhraseDisplayCopy is sent when the phrase was copied to the clipboard.
	PhraseDisplayCopy struct{}
	// DisplayBackedUpPhrase opens the phrase display.
	DisplayBackedUpPhrase struct{}
	// ApplyValidationWord places a word from the bank into a challenge group.
	ApplyValidationWord struct {
		Group int
		Word  string
	}
	// PhraseValidationSucceeded is sent when the challenge was solved.
	PhraseValidationSucceeded struct{}
	// BackupMarked completes PhraseValidationSucceeded.
	BackupMarked struct {
		Err error
	}
	// NukeWallet wipes credentials and databases.
	NukeWallet struct{}
	// WalletNuked completes NukeWallet.
	WalletNuked struct {
		Err error
	}
	// DebugMenuStartup cancels pending transitions and opens the startup screen.
	DebugMenuStartup struct{}
	// CancelDelayedRoute cancels the pending delayed route transition.
	CancelDelayedRoute struct{}

	// delayed wraps a scheduler delivery.
	delayed struct {
		fired scheduler.Fired
	}
)

func (DidFinishLaunching) action()                 {}
func (CheckWalletInitialization) action()          {}
func (RespondToWalletInitializationState) action() {}
func (InitializeSDK) action()                      {}
func (SDKInitialized) action()                     {}
func (CheckBackupPhraseValidation) action()        {}
func (CreateNewWallet) action()                    {}
func (NewWalletCreated) action()                   {}
func (ImportWallet) action()                       {}
func (WalletImported) action()                     {}
func (UpdateRoute) action()                        {}
func (PhraseDisplayFinished) action()              {}
func (PhraseDisplayCopy) action()                  {}
func (DisplayBackedUpPhrase) action()              {}
func (ApplyValidationWord) action()                {}
func (PhraseValidationSucceeded) action()          {}
func (BackupMarked) action()                       {}
func (NukeWallet) action()                         {}
func (WalletNuked) action()                        {}
func (DebugMenuStartup) action()                   {}
func (CancelDelayedRoute) action()                 {}
func (delayed) action()                            {}

// actionName is used for logs and metric labels.
func actionName(a Action) string {
	switch a.(type) {
	case DidFinishLaunching:
		return "did_finish_launching"
	case CheckWalletInitialization:
		return "check_wallet_initialization"
	case RespondToWalletInitializationState:
		return "respond_to_wallet_initialization_state"
	case InitializeSDK:
		return "initialize_sdk"
	case SDKInitialized:
		return "sdk_initialized"
	case CheckBackupPhraseValidation:
		return "check_backup_phrase_validation"
	case CreateNewWallet:
		return "create_new_wallet"
	case NewWalletCreated:
		return "new_wallet_created"
	case ImportWallet:
		return "import_wallet"
	case WalletImported:
		return "wallet_imported"
	case UpdateRoute:
		return "update_route"
	case PhraseDisplayFinished:
		return "phrase_display_finished"
	case PhraseDisplayCopy:
		return "phrase_display_copy"
	case DisplayBackedUpPhrase:
		return "display_backed_up_phrase"
	case ApplyValidationWord:
		return "apply_validation_word"
	case PhraseValidationSucceeded:
		return "phrase_validation_succeeded"
	case BackupMarked:
		return "backup_marked"
	case NukeWallet:
		return "nuke_wallet"
	case WalletNuked:
		return "wallet_nuked"
	case DebugMenuStartup:
		return "debug_menu_startup"
	case CancelDelayedRoute:
		return "cancel_delayed_route"
	case delayed:
		return "delayed"
	default:
		return "unknown"
	}
}
