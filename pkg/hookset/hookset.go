// Package hookset provides the declarative hook configuration model.
//
// A hook set is the parsed form of a .pre-commit-config.yaml file: an
// ordered sequence of repos, each carrying an ordered sequence of hooks.
// Order is significant because execution is fail-fast.
package hookset

import (
	"regexp"

	"github.com/lerenn/hook-manager/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=hookset.go -destination=mockhookset.gen.go -package=hookset

// LocalRepo is the repo value marking hooks defined in the repository itself.
const LocalRepo = "local"

// Hook languages selecting the invocation strategy.
const (
	LanguageSystem = "system"
	LanguageScript = "script"
	LanguagePython = "python"
	LanguageFail   = "fail"
)

// Git hook stages a hook set can be attached to.
const (
	StagePreCommit = "pre-commit"
	StagePrePush   = "pre-push"
	StageCommitMsg = "commit-msg"
)

// DefaultConfigFileName is the conventional hook set file name.
const DefaultConfigFileName = ".pre-commit-config.yaml"

// Config is a full hook set.
type Config struct {
	FailFast      bool     `yaml:"fail_fast,omitempty"`
	DefaultStages []string `yaml:"default_stages,omitempty"`
	Repos         []Repo   `yaml:"repos"`
}

// Repo is one repo entry: either an external hook repository pinned to a
// revision, or "local".
type Repo struct {
	Repo  string `yaml:"repo"`
	Rev   string `yaml:"rev,omitempty"`
	Hooks []Hook `yaml:"hooks"`
}

// IsLocal reports whether the repo entry is local.
func (r *Repo) IsLocal() bool {
	return r.Repo == LocalRepo
}

// Hook is a single check or fix command bound to a file filter.
type Hook struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name,omitempty"`
	Entry         string   `yaml:"entry,omitempty"`
	Args          []string `yaml:"args,omitempty"`
	Language      string   `yaml:"language,omitempty"`
	Types         []string `yaml:"types,omitempty"`
	TypesOr       []string `yaml:"types_or,omitempty"`
	Files         string   `yaml:"files,omitempty"`
	Exclude       string   `yaml:"exclude,omitempty"`
	PassFilenames *bool    `yaml:"pass_filenames,omitempty"`
	AlwaysRun     bool     `yaml:"always_run,omitempty"`
	Stages        []string `yaml:"stages,omitempty"`
	Verbose       bool     `yaml:"verbose,omitempty"`

	// Compiled by Validate; nil until then.
	filesRe   *regexp.Regexp
	excludeRe *regexp.Regexp
}

// DisplayName returns the hook name, falling back to its id.
func (h *Hook) DisplayName() string {
	if h.Name != "" {
		return h.Name
	}
	return h.ID
}

// LanguageOrDefault returns the hook language, defaulting to system.
func (h *Hook) LanguageOrDefault() string {
	if h.Language == "" {
		return LanguageSystem
	}
	return h.Language
}

// PassesFilenames reports whether matched filenames are appended to the
// hook command. Defaults to true when unset.
func (h *Hook) PassesFilenames() bool {
	if h.PassFilenames == nil {
		return true
	}
	return *h.PassFilenames
}

// RunsForStage reports whether the hook applies to the given stage,
// considering per-hook stages then the config default stages.
func (h *Hook) RunsForStage(stage string, defaultStages []string) bool {
	stages := h.Stages
	if len(stages) == 0 {
		stages = defaultStages
	}
	if len(stages) == 0 {
		return true
	}
	for _, s := range stages {
		if s == stage {
			return true
		}
	}
	return false
}

// FindHook returns the hook with the given id and its enclosing repo.
func (c *Config) FindHook(id string) (*Repo, *Hook, error) {
	for i := range c.Repos {
		for j := range c.Repos[i].Hooks {
			if c.Repos[i].Hooks[j].ID == id {
				return &c.Repos[i], &c.Repos[i].Hooks[j], nil
			}
		}
	}
	return nil, nil, ErrHookNotFound
}

// Manager interface provides hook set loading and persistence.
type Manager interface {
	// Load reads, parses and validates a hook set file.
	Load(path string) (*Config, error)

	// Save serializes the hook set back to the file, preserving order.
	Save(path string, cfg *Config) error
}

type realManager struct {
	fs fs.FS
}

// NewManager creates a new Manager instance.
func NewManager(fs fs.FS) Manager {
	return &realManager{fs: fs}
}
