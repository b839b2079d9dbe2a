package audio

import (
	"sync"
	"time"

	"github.com/vovakirdan/ring-runner/internal/games/ringrun"
)

// bellGap is the shortest interval between two rings of the bell.
const bellGap = 100 * time.Millisecond

// Bell is the sound of remote sessions, where the server's speaker is the
// wrong place for sound. It only records that the terminal bell is due; the
// session's renderer writes the BEL with the next frame so it never splits
// an escape sequence. Cues arriving faster than the terminal can make them
// distinct are merged.
type Bell struct {
	mu      sync.Mutex
	pending bool
	last    time.Time
	now     func() time.Time
}

// NewBell creates a quiet bell.
func NewBell() *Bell {
	return &Bell{now: time.Now}
}

// Emit marks the bell due for a collected ring. Jumps are too frequent to beep on.
func (b *Bell) Emit(kind ringrun.SoundKind) {
	if kind != ringrun.SoundCollect {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	if !b.last.IsZero() && now.Sub(b.last) < bellGap {
		return
	}
	b.last = now
	b.pending = true
}

// Take reports whether the bell is due and resets it.
func (b *Bell) Take() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	due := b.pending
	b.pending = false
	return due
}
