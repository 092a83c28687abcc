package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/rsend/config"
	"github.com/dhamidi/rsend/statement"
)

var log = commonlog.GetLogger("rsend.document")

var ErrNotFound = errors.New("document not found")

// Store holds the documents of one workspace: files read from disk and
// buffers pushed by the editor.
type Store struct {
	mu       sync.RWMutex
	rootDir  string
	cfg      *config.Config
	resolver *statement.Resolver
	files    map[string]*Document
	open     map[string]bool
}

func New(rootDir string, cfg *config.Config) *Store {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if abs, err := filepath.Abs(rootDir); err == nil {
		rootDir = abs
	}
	return &Store{
		rootDir:  rootDir,
		cfg:      cfg,
		resolver: statement.New(statement.WithScanLimitFactor(cfg.Resolver.ScanLimitFactor)),
		files:    make(map[string]*Document),
		open:     make(map[string]bool),
	}
}

func (s *Store) RootDir() string {
	return s.rootDir
}

func (s *Store) Config() *config.Config {
	return s.cfg
}

// Matches reports whether path, relative to the root, is selected by the
// include patterns and not dropped by the exclude patterns.
func (s *Store) Matches(rel string) bool {
	rel = filepath.ToSlash(rel)
	if matchAny(s.cfg.Files.Excludes, rel) {
		return false
	}
	return matchAny(s.cfg.Files.Includes, rel)
}

func (s *Store) excludesDir(rel string) bool {
	rel = filepath.ToSlash(rel)
	return matchAny(s.cfg.Files.Excludes, rel) || matchAny(s.cfg.Files.Excludes, rel+"/")
}

func matchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// walk calls fn for every file under the root that Matches.
func (s *Store) walk(fn func(path string, info os.FileInfo)) error {
	return filepath.Walk(s.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(s.rootDir, path)
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if rel != "." && s.excludesDir(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if s.Matches(rel) {
			fn(path, info)
		}
		return nil
	})
}

// ScanAll loads every matching file under the root.
func (s *Store) ScanAll() error {
	return s.walk(func(path string, info os.FileInfo) {
		if err := s.ScanFile(path); err != nil {
			log.Warningf("scan %s: %s", path, err)
		}
	})
}

// ScanFile (re)loads path from disk. Documents open in the editor are left
// alone since the editor's buffer is newer.
func (s *Store) ScanFile(path string) error {
	if s.IsOpen(path) {
		return nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	s.UpdateFile(path, content)
	return nil
}

func (s *Store) UpdateFile(path string, content []byte) {
	doc := NewDocument(path, content)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = doc
}

func (s *Store) RemoveFile(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, path)
	delete(s.open, path)
}

func (s *Store) GetFile(path string) *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.files[path]
}

// Paths returns the paths of all known documents in sorted order.
func (s *Store) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	paths := make([]string, 0, len(s.files))
	for path := range s.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

func (s *Store) MarkOpen(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open[path] = true
}

func (s *Store) MarkClosed(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.open, path)
}

func (s *Store) IsOpen(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.open[path]
}

// StatementAt resolves the statement around the 0-based line of path.
func (s *Store) StatementAt(path string, line int) (Statement, error) {
	doc := s.GetFile(path)
	if doc == nil {
		return Statement{}, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	return s.statementIn(doc, line)
}

func (s *Store) statementIn(doc *Document, line int) (Statement, error) {
	rng, err := s.resolver.Extend(line, doc)
	if errors.Is(err, statement.ErrLineOutOfRange) {
		return Statement{}, fmt.Errorf("%s: %w", doc.Path, err)
	}
	if err != nil {
		log.Debugf("%s:%d: %s, using the line alone", doc.Path, line+1, err)
	}
	return doc.statement(rng, err != nil, s.cfg.Send.DropCommentLines), nil
}

// StatementsIn splits the document at path into its statements.
func (s *Store) StatementsIn(path string) ([]Statement, error) {
	doc := s.GetFile(path)
	if doc == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	var out []Statement
	for _, span := range s.resolver.Spans(doc) {
		if span.Err != nil {
			log.Debugf("%s:%d: %s, using the line alone", doc.Path, span.StartLine+1, span.Err)
		}
		out = append(out, doc.statement(span.Range, span.Err != nil, s.cfg.Send.DropCommentLines))
	}
	return out, nil
}
