package config

import (
	"sync"

	"github.com/BlurringShadow/stdsharp/shared/log"
	"go.uber.org/zap"
)

// DefaultMemoSize is the number of entries a memo table holds before it rotates.
const DefaultMemoSize uint32 = 256

// Config holds the process-wide settings of the library.
type Config struct {
	MemoSize uint32      // default: DefaultMemoSize
	Logger   *zap.Logger // default: no-op
}

// New returns a Config with defaults applied to zero values.
func New(memoSize uint32, logger *zap.Logger) Config {
	if memoSize == 0 {
		memoSize = DefaultMemoSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return Config{
		MemoSize: memoSize,
		Logger:   logger,
	}
}

var (
	mu        sync.RWMutex
	current   = New(0, nil)
	listeners []func(Config)
)

// Get returns the active configuration.
func Get() Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set installs cfg, swaps the shared logger and notifies every OnChange listener.
// It returns a function restoring the previous configuration.
func Set(cfg Config) func() {
	cfg = New(cfg.MemoSize, cfg.Logger)

	mu.Lock()
	prev := current
	current = cfg
	notify := append([]func(Config){}, listeners...)
	mu.Unlock()

	log.Set(cfg.Logger)
	log.L().Debug("configuration applied",
		zap.String(KeyMemoSize, formatSize(cfg.MemoSize)),
		zap.Stringer(KeyLogLevel, cfg.Logger.Level()),
		zap.Int("listeners", len(notify)),
	)
	for _, fn := range notify {
		fn(cfg)
	}

	return func() {
		Set(prev)
	}
}

// OnChange registers fn to be called with every configuration passed to Set.
// Packages owning memo tables use it to rebuild them with the new size.
func OnChange(fn func(Config)) {
	mu.Lock()
	defer mu.Unlock()
	listeners = append(listeners, fn)
}
