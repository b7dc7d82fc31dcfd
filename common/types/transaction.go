package types

import "time"

// TransactionID identifies a ledger transaction. It is stable across queries.
type TransactionID string

// Direction of a transaction relative to the wallet.
type Direction uint8

const (
	Incoming Direction = iota
	Outgoing
	// Shielding moves funds between the wallet's own pools.
	Shielding
)

// TxStatus is the confirmation status of a transaction.
type TxStatus uint8

const (
	TxUnconfirmed TxStatus = iota
	TxConfirmed
	TxFailed
)

func (s TxStatus) String() string {
	switch s {
	case TxUnconfirmed:
		return "unconfirmed"
	case TxConfirmed:
		return "confirmed"
	case TxFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Transaction is a wallet relevant transaction as reported by the synchronization engine.
type Transaction struct {
	ID          TransactionID
	Timestamp   time.Time
	Amount      Amount
	Fee         Amount
	Direction   Direction
	Status      TxStatus
	MinedHeight Height
	Address     string
	Memo        string
}
