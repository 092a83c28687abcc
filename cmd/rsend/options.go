package main

import (
	"fmt"
	"path/filepath"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/rsend/config"
	"github.com/dhamidi/rsend/document"
)

type globalOptions struct {
	dir        string
	configPath string
	verbose    int
	logPath    string

	cfg *config.Config
}

// load reads the configuration and sets up logging. Flags win over the file.
func (o *globalOptions) load() error {
	path := o.configPath
	if path == "" {
		path = filepath.Join(o.dir, config.FileName)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	o.cfg = cfg

	verbosity := cfg.Logging.Verbosity
	if o.verbose > verbosity {
		verbosity = o.verbose
	}
	logPath := cfg.Logging.Path
	if o.logPath != "" {
		logPath = o.logPath
	}
	if logPath != "" {
		commonlog.Configure(verbosity, &logPath)
	} else {
		commonlog.Configure(verbosity, nil)
	}
	return nil
}

// openDocument loads a single file into a fresh store, regardless of the
// include patterns.
func (o *globalOptions) openDocument(path string) (*document.Store, error) {
	store := document.New(o.dir, o.cfg)
	if err := store.ScanFile(path); err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return store, nil
}
