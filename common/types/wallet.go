package types

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// Language of the mnemonic word list.
type Language uint8

const (
	English Language = iota
)

func (l Language) String() string {
	switch l {
	case English:
		return "english"
	default:
		return "unknown"
	}
}

// StoredWallet is the wallet as persisted in the credential store.
type StoredWallet struct {
	SeedPhrase          string
	Birthday            Height
	Language            Language
	HasPassedBackupTest bool
}

// MarshalLogObject implements zapcore.ObjectMarshaler. The seed phrase is never logged.
func (w *StoredWallet) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint64("birthday", w.Birthday.Uint64())
	enc.AddString("language", w.Language.String())
	enc.AddBool("backed_up", w.HasPassedBackupTest)
	return nil
}

// RecoveryPhrase is an ordered sequence of mnemonic words.
type RecoveryPhrase struct {
	words []string
}

// NewRecoveryPhrase copies words into an immutable phrase.
func NewRecoveryPhrase(words []string) RecoveryPhrase {
	return RecoveryPhrase{words: append([]string(nil), words...)}
}

// Len returns the number of words.
func (p RecoveryPhrase) Len() int { return len(p.words) }

// Word returns the word at position i.
func (p RecoveryPhrase) Word(i int) string { return p.words[i] }

// Words returns a copy of the words.
func (p RecoveryPhrase) Words() []string {
	return append([]string(nil), p.words...)
}

// Phrase joins the words with single spaces.
func (p RecoveryPhrase) Phrase() string {
	return strings.Join(p.words, " ")
}

// Chunks splits the phrase into consecutive groups of size words. The last group may be shorter.
func (p RecoveryPhrase) Chunks(size int) [][]string {
	if size <= 0 {
		return nil
	}
	var chunks [][]string
	for start := 0; start < len(p.words); start += size {
		end := min(start+size, len(p.words))
		chunks = append(chunks, append([]string(nil), p.words[start:end]...))
	}
	return chunks
}

// String is redacted so that the phrase can't leak through formatting.
func (p RecoveryPhrase) String() string {
	return "RecoveryPhrase(redacted)"
}
