package catalog

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/robfig/cron/v3"
)

// Manager owns a catalog and keeps it fresh. It loads the initial snapshot
// from a FileSource and can reload it on filesystem changes (fsnotify) or
// on a cron schedule. A failed reload keeps the previous snapshot.
type Manager struct {
	source  *FileSource
	catalog *Catalog
	logger  *slog.Logger

	// OnReload, if set, is invoked after every successful reload with the
	// new policy count. Used to update the catalog size gauge.
	OnReload func(count int)

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	cron    *cron.Cron
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// ManagerConfig controls reload behavior.
type ManagerConfig struct {
	// Watch enables filesystem-change reloads
	Watch bool

	// RefreshSchedule is an optional cron spec for periodic reloads
	// (e.g. "@every 15m"). Empty disables scheduled refresh.
	RefreshSchedule string

	// DebounceInterval is the quiet period after a filesystem event before
	// reloading, to coalesce editor write bursts. Default 100ms.
	DebounceInterval time.Duration
}

// NewManager loads the initial catalog from path and returns a manager
// around it. The load must succeed: a service without a policy catalog
// cannot evaluate coverage.
func NewManager(path string, logger *slog.Logger) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}

	source := NewFileSource(path, logger)
	policies, err := source.LoadPolicies()
	if err != nil {
		return nil, err
	}

	return &Manager{
		source:  source,
		catalog: New(policies),
		logger:  logger,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

// Catalog returns the managed catalog. The pointer is stable across
// reloads; only its contents are swapped.
func (m *Manager) Catalog() *Catalog {
	return m.catalog
}

// Start begins watching and/or scheduled refreshing per the config.
// It returns immediately; reloads happen on a background goroutine.
func (m *Manager) Start(cfg ManagerConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return fmt.Errorf("catalog manager is already running")
	}

	debounce := cfg.DebounceInterval
	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}

	if cfg.Watch {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create fsnotify watcher: %w", err)
		}
		// Watch the parent directory as well: editors replace files by
		// rename, which drops the watch on the file itself.
		if err := watcher.Add(m.source.Path()); err != nil {
			watcher.Close()
			return fmt.Errorf("failed to watch %q: %w", m.source.Path(), err)
		}
		if dir := filepath.Dir(m.source.Path()); dir != m.source.Path() {
			// Best effort: the path itself is already watched.
			_ = watcher.Add(dir)
		}
		m.watcher = watcher
		go m.watchLoop(debounce)
	}

	if cfg.RefreshSchedule != "" {
		c := cron.New()
		if _, err := c.AddFunc(cfg.RefreshSchedule, func() { m.Reload() }); err != nil {
			if m.watcher != nil {
				m.watcher.Close()
				m.watcher = nil
			}
			return fmt.Errorf("invalid catalog refresh schedule %q: %w", cfg.RefreshSchedule, err)
		}
		c.Start()
		m.cron = c
	}

	m.running = true
	m.logger.Info("catalog manager started",
		"path", m.source.Path(),
		"watch", cfg.Watch,
		"refresh_schedule", cfg.RefreshSchedule,
	)
	return nil
}

// watchLoop consumes filesystem events and triggers debounced reloads.
func (m *Manager) watchLoop(debounce time.Duration) {
	defer close(m.doneCh)

	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-m.stopCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-m.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			ext := filepath.Ext(event.Name)
			if ext != ".yaml" && ext != ".yml" && event.Name != m.source.Path() {
				continue
			}
			// Reset the debounce window on every relevant event.
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			timerCh = timer.C

		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			m.logger.Warn("catalog watcher error", "error", err)

		case <-timerCh:
			timerCh = nil
			m.Reload()
		}
	}
}

// Reload loads a fresh snapshot and swaps it in. On failure the previous
// snapshot stays in place and the error is logged and returned.
func (m *Manager) Reload() error {
	policies, err := m.source.LoadPolicies()
	if err != nil {
		m.logger.Error("catalog reload failed, keeping previous snapshot", "error", err)
		return err
	}

	m.catalog.Replace(policies)
	m.logger.Info("catalog reloaded", "policy_count", len(policies))

	if m.OnReload != nil {
		m.OnReload(len(policies))
	}
	return nil
}

// Stop shuts down the watcher and scheduler.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}
	m.running = false

	if m.watcher != nil {
		close(m.stopCh)
		m.watcher.Close()
		<-m.doneCh
		m.watcher = nil
	}
	if m.cron != nil {
		m.cron.Stop()
		m.cron = nil
	}

	m.logger.Info("catalog manager stopped")
}
