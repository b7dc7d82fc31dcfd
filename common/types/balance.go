package types

import (
	"strconv"

	"go.uber.org/zap/zapcore"
)

// Amount is a quantity of coins in the smallest unit.
type Amount uint64

func (a Amount) String() string {
	return strconv.FormatUint(uint64(a), 10)
}

// WalletBalance is the spendable and the total balance of the wallet.
type WalletBalance struct {
	Verified Amount
	Total    Amount
}

// Clamped returns the balance with Verified not exceeding Total.
func (b WalletBalance) Clamped() WalletBalance {
	if b.Verified > b.Total {
		b.Verified = b.Total
	}
	return b
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (b WalletBalance) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint64("verified", uint64(b.Verified))
	enc.AddUint64("total", uint64(b.Total))
	return nil
}
