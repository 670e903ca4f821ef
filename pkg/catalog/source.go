package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileSource loads policy records from YAML files on disk.
// The path can be either a single file or a directory; for a directory,
// all .yaml and .yml files are loaded.
type FileSource struct {
	path   string
	logger *slog.Logger
}

// NewFileSource creates a file-based policy source.
func NewFileSource(path string, logger *slog.Logger) *FileSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileSource{
		path:   path,
		logger: logger,
	}
}

// Path returns the configured file or directory path.
func (s *FileSource) Path() string {
	return s.path
}

// LoadPolicies loads and validates all policy records from the configured
// path. Any malformed record fails the whole load: a catalog is either
// complete and valid or not swapped in at all.
func (s *FileSource) LoadPolicies() ([]*Policy, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return nil, &LoadError{Path: s.path, Cause: err}
	}

	var policies []*Policy
	if info.IsDir() {
		policies, err = s.loadDirectory()
	} else {
		policies, err = s.loadFile(s.path)
	}
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if err := p.Validate(); err != nil {
			return nil, &LoadError{Path: s.path, Cause: err}
		}
	}

	s.logger.Info("loaded policies from source",
		"path", s.path,
		"policy_count", len(policies),
	)

	return policies, nil
}

// loadDirectory loads policy records from every YAML file in a directory.
func (s *FileSource) loadDirectory() ([]*Policy, error) {
	var policies []*Policy

	err := filepath.Walk(s.path, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		loaded, err := s.loadFile(path)
		if err != nil {
			return err
		}
		policies = append(policies, loaded...)
		return nil
	})
	if err != nil {
		return nil, &LoadError{Path: s.path, Cause: err}
	}

	return policies, nil
}

// loadFile loads the policy records from a single YAML file.
// The file holds a top-level `policies` list.
func (s *FileSource) loadFile(path string) ([]*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}

	var doc struct {
		Policies []*Policy `yaml:"policies"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Path: path, Cause: fmt.Errorf("failed to parse YAML: %w", err)}
	}

	return doc.Policies, nil
}
