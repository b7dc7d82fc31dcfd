package types

import (
	"sort"
	"time"
)

// WalletEvent is a projection of a ledger event shown in the wallet history.
type WalletEvent struct {
	ID        string
	Timestamp time.Time
	State     EventState
}

// EventState is one of SentEvent, PendingEvent, ReceivedEvent, FailedEvent,
// ShieldedEvent or WalletImportEvent.
type EventState interface {
	eventState()
}

// TransactionDetails is the part of a transaction that is displayed for transfer events.
type TransactionDetails struct {
	Amount  Amount
	Fee     Amount
	Address string
	Memo    string
	Height  Height
}

// SentEvent is a confirmed outgoing transfer.
type SentEvent struct{ TransactionDetails }

// PendingEvent is a transfer that is not yet mined.
type PendingEvent struct{ TransactionDetails }

// ReceivedEvent is a confirmed incoming transfer.
type ReceivedEvent struct{ TransactionDetails }

// FailedEvent is a transfer that was rejected.
type FailedEvent struct{ TransactionDetails }

// ShieldedEvent is a transfer between the wallet's own pools.
type ShieldedEvent struct{ Amount Amount }

// WalletImportEvent marks the height the wallet was created or restored at.
type WalletImportEvent struct{ Height Height }

func (SentEvent) eventState()         {}
func (PendingEvent) eventState()      {}
func (ReceivedEvent) eventState()     {}
func (FailedEvent) eventState()       {}
func (ShieldedEvent) eventState()     {}
func (WalletImportEvent) eventState() {}

// EventKind returns a short name of the event variant.
func EventKind(state EventState) string {
	switch state.(type) {
	case SentEvent:
		return "sent"
	case PendingEvent:
		return "pending"
	case ReceivedEvent:
		return "received"
	case FailedEvent:
		return "failed"
	case ShieldedEvent:
		return "shielded"
	case WalletImportEvent:
		return "import"
	default:
		return "unknown"
	}
}

// SortEvents orders events newest first. Events with equal timestamps are ordered by id
// so that repeated projections of the same transactions are identical.
func SortEvents(events []WalletEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].Timestamp.Equal(events[j].Timestamp) {
			return events[i].Timestamp.After(events[j].Timestamp)
		}
		return events[i].ID < events[j].ID
	})
}
