// Package resolver classifies wallet readiness from the credential and database probes.
package resolver

import (
	"github.com/spacemeshos/smwallet/common/types"
)

// Probe reports whether a resource is present.
type Probe func() (bool, error)

// Resolve evaluates keys first and files second and returns the initialization state.
//
// Failures are refined by their types.ProbeFailure:
//   - keys probe reports ProbeUninitialized: files are checked on their own, present files
//     mean KeysMissing, absent files or a failing files probe mean Uninitialized.
//   - files probe reports ProbePresenceCheck: FilesMissing if keys are present,
//     Uninitialized otherwise.
//   - any other failure of either probe is Failed.
func Resolve(keys, files Probe) types.InitializationState {
	keysPresent, err := keys()
	if err != nil {
		if types.ProbeKind(err) != types.ProbeUninitialized {
			return types.Failed
		}
		filesPresent, err := files()
		if err != nil || !filesPresent {
			return types.Uninitialized
		}
		return types.KeysMissing
	}

	filesPresent, err := files()
	if err != nil {
		if types.ProbeKind(err) != types.ProbePresenceCheck {
			return types.Failed
		}
		if keysPresent {
			return types.FilesMissing
		}
		return types.Uninitialized
	}

	switch {
	case !keysPresent && !filesPresent:
		return types.Uninitialized
	case !keysPresent && filesPresent:
		return types.KeysMissing
	case keysPresent && !filesPresent:
		return types.FilesMissing
	default:
		return types.Initialized
	}
}
