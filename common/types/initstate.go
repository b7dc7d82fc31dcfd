package types

// InitializationState describes wallet readiness as derived from the credential store and
// the local databases.
type InitializationState uint8

const (
	// Uninitialized means neither credentials nor database files exist.
	Uninitialized InitializationState = iota
	// KeysMissing means database files exist but credentials are gone.
	KeysMissing
	// FilesMissing means credentials exist but database files are gone.
	FilesMissing
	// Initialized means both credentials and database files exist.
	Initialized
	// Failed means readiness couldn't be established.
	Failed
)

func (s InitializationState) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case KeysMissing:
		return "keys missing"
	case FilesMissing:
		return "files missing"
	case Initialized:
		return "initialized"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}
