package presetpack

import (
	"sync"
	"time"

	"github.com/vango-dev/motion/pkg/motion"
)

// Library is the merged view of the built-in presets plus any applied
// packs. Pack entries never shadow the built-ins (validation rejects the
// reserved names); a later pack shadows an earlier one. Safe for
// concurrent use: the preview server reads while the watcher reloads.
type Library struct {
	mu      sync.RWMutex
	springs map[string]motion.SpringPreset
	timings map[string]motion.TimingPreset
}

// NewLibrary creates a library holding just the built-in presets.
func NewLibrary() *Library {
	l := &Library{}
	l.reset()
	return l
}

// reset reloads the built-ins. Caller holds the write lock (or has
// exclusive access during construction).
func (l *Library) reset() {
	l.springs = motion.Springs()
	l.timings = motion.Timings()
}

// Apply overlays a pack's presets onto the library.
func (l *Library) Apply(pack *Pack) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.applyLocked(pack)
}

func (l *Library) applyLocked(pack *Pack) {
	for name, def := range pack.Springs {
		l.springs[name] = motion.SpringPreset{Damping: def.Damping, Stiffness: def.Stiffness}
	}
	for name, def := range pack.Timings {
		l.timings[name] = motion.TimingPreset{Duration: time.Duration(def.DurationMs) * time.Millisecond}
	}
}

// Reload replaces all pack overlays with the packs at the given paths.
// If any pack fails to load the library is left unchanged.
func (l *Library) Reload(paths []string) error {
	packs := make([]*Pack, 0, len(paths))
	for _, path := range paths {
		pack, err := Load(path)
		if err != nil {
			return err
		}
		packs = append(packs, pack)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.reset()
	for _, pack := range packs {
		l.applyLocked(pack)
	}
	return nil
}

// Spring looks up a spring preset by name, built-in or pack-provided.
func (l *Library) Spring(name string) (motion.SpringPreset, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, ok := l.springs[name]
	return p, ok
}

// Timing looks up a timing preset by name, built-in or pack-provided.
func (l *Library) Timing(name string) (motion.TimingPreset, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, ok := l.timings[name]
	return p, ok
}

// SpringSnapshot returns a copy of the merged spring table.
func (l *Library) SpringSnapshot() map[string]motion.SpringPreset {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make(map[string]motion.SpringPreset, len(l.springs))
	for k, v := range l.springs {
		out[k] = v
	}
	return out
}

// TimingSnapshot returns a copy of the merged timing table.
func (l *Library) TimingSnapshot() map[string]motion.TimingPreset {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make(map[string]motion.TimingPreset, len(l.timings))
	for k, v := range l.timings {
		out[k] = v
	}
	return out
}
