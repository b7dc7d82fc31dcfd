package types

import "go.uber.org/zap/zapcore"

// SyncStatus is the kind of status reported by the synchronization engine.
type SyncStatus uint8

const (
	StatusUnknown SyncStatus = iota
	StatusDownloading
	StatusScanning
	StatusSynced
	StatusError
)

func (s SyncStatus) String() string {
	switch s {
	case StatusDownloading:
		return "downloading"
	case StatusScanning:
		return "scanning"
	case StatusSynced:
		return "synced"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Progress of a download or scan between two heights.
type Progress struct {
	Start   Height
	Target  Height
	Current Height
}

// Fraction returns (current - start) / (target - start) clamped to [0, 1].
// A range with target == start has no meaningful progress and yields 0.
func (p Progress) Fraction() float64 {
	if p.Target <= p.Start {
		return 0
	}
	if p.Current <= p.Start {
		return 0
	}
	if p.Current >= p.Target {
		return 1
	}
	return float64(p.Current-p.Start) / float64(p.Target-p.Start)
}

// SyncStatusSnapshot is a single element of the engine status stream.
// Progress is only meaningful for downloading and scanning.
type SyncStatusSnapshot struct {
	Status   SyncStatus
	Progress Progress
	Err      error
}

// Downloading returns a downloading snapshot.
func Downloading(start, target, current Height) SyncStatusSnapshot {
	return SyncStatusSnapshot{Status: StatusDownloading, Progress: Progress{Start: start, Target: target, Current: current}}
}

// Scanning returns a scanning snapshot.
func Scanning(start, target, current Height) SyncStatusSnapshot {
	return SyncStatusSnapshot{Status: StatusScanning, Progress: Progress{Start: start, Target: target, Current: current}}
}

// Synced returns a synced snapshot.
func Synced() SyncStatusSnapshot {
	return SyncStatusSnapshot{Status: StatusSynced}
}

// Percentage of work done in the current phase.
func (s SyncStatusSnapshot) Percentage() float64 {
	switch s.Status {
	case StatusDownloading, StatusScanning:
		return s.Progress.Fraction()
	case StatusSynced:
		return 1
	default:
		return 0
	}
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (s SyncStatusSnapshot) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("status", s.Status.String())
	if s.Status == StatusDownloading || s.Status == StatusScanning {
		enc.AddUint64("start", s.Progress.Start.Uint64())
		enc.AddUint64("target", s.Progress.Target.Uint64())
		enc.AddUint64("current", s.Progress.Current.Uint64())
	}
	if s.Err != nil {
		enc.AddString("error", s.Err.Error())
	}
	return nil
}
