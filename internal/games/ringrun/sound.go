package ringrun

// SoundKind names a logical audio cue. The emitter owns the synthesis.
type SoundKind int

const (
	SoundJump SoundKind = iota
	SoundCollect
)

// String returns the cue name.
func (k SoundKind) String() string {
	switch k {
	case SoundJump:
		return "jump"
	case SoundCollect:
		return "collect"
	default:
		return "unknown"
	}
}

// SoundEmitter plays a cue. Emit is fire-and-forget: it must not block the
// tick and reports nothing back.
type SoundEmitter interface {
	Emit(kind SoundKind)
}

// SoundFunc adapts a function to SoundEmitter.
type SoundFunc func(kind SoundKind)

// Emit calls f(kind).
func (f SoundFunc) Emit(kind SoundKind) {
	f(kind)
}

type silent struct{}

func (silent) Emit(SoundKind) {}

// Silent is a SoundEmitter that discards every cue.
var Silent SoundEmitter = silent{}

func orSilent(s SoundEmitter) SoundEmitter {
	if s == nil {
		return Silent
	}
	return s
}
