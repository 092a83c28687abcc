package document

import (
	"os"
	"sync"
	"time"
)

// FileWatcher polls the store's root for matching files and keeps the store
// in sync with them. Documents open in the editor are never touched.
type FileWatcher struct {
	store    *Store
	stopCh   chan struct{}
	stopOnce sync.Once
	interval time.Duration
	modTimes map[string]time.Time
}

func NewFileWatcher(s *Store, interval time.Duration) *FileWatcher {
	if interval <= 0 {
		interval = s.Config().Watch.Interval
	}
	return &FileWatcher{
		store:    s,
		stopCh:   make(chan struct{}),
		interval: interval,
		modTimes: make(map[string]time.Time),
	}
}

func (w *FileWatcher) Start() {
	go w.run()
}

func (w *FileWatcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}

func (w *FileWatcher) run() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.scan()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.scan()
		}
	}
}

func (w *FileWatcher) scan() {
	current := make(map[string]bool)

	w.store.walk(func(path string, info os.FileInfo) {
		current[path] = true

		lastMod, known := w.modTimes[path]
		if known && !info.ModTime().After(lastMod) {
			return
		}
		w.modTimes[path] = info.ModTime()
		if err := w.store.ScanFile(path); err != nil {
			log.Warningf("reload %s: %s", path, err)
			return
		}
		if known {
			log.Debugf("reloaded %s", path)
		}
	})

	for path := range w.modTimes {
		if current[path] {
			continue
		}
		delete(w.modTimes, path)
		if w.store.IsOpen(path) {
			continue
		}
		log.Debugf("removed %s", path)
		w.store.RemoveFile(path)
	}
}
