package aesgo

// Stage identifies which step produced a traced state.
type Stage int

const (
	// StageRoundKey is emitted once per round key after key expansion.
	StageRoundKey Stage = iota
	// StageInitial is the state after the round 0 AddRoundKey.
	StageInitial
	StageSubBytes
	StageShiftRows
	StageMixColumns
	StageAddRoundKey
	// StageFinal is the state after the round 10 AddRoundKey.
	StageFinal
)

func (s Stage) String() string {
	switch s {
	case StageRoundKey:
		return "RoundKey"
	case StageInitial:
		return "Initial"
	case StageSubBytes:
		return "SubBytes"
	case StageShiftRows:
		return "ShiftRows"
	case StageMixColumns:
		return "MixColumns"
	case StageAddRoundKey:
		return "AddRoundKey"
	case StageFinal:
		return "Final"
	}
	return "Unknown"
}

// Event is a labeled snapshot of a state or round key.
type Event struct {
	Stage Stage
	Round int
	State State
}

// A Tracer observes intermediate states. Tracing is diagnostic only and
// has no effect on the output of the cipher.
type Tracer interface {
	Trace(e Event)
}

// TracerFunc adapts a function to the Tracer interface.
type TracerFunc func(e Event)

func (f TracerFunc) Trace(e Event) { f(e) }

// Recorder keeps every event it sees. It is not safe for concurrent use.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Trace(e Event) {
	r.Events = append(r.Events, e)
}

// Count returns how many recorded events have stage s.
func (r *Recorder) Count(s Stage) int {
	n := 0
	for _, e := range r.Events {
		if e.Stage == s {
			n++
		}
	}
	return n
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}
