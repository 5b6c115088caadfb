// Package repofile manages the repository definition file owned by this tool.
// Repositories live as sections of a single INI file under /etc/yum.repos.d;
// the file is never edited in place but rewritten through a temp file and a
// privileged copy, matching how the package tool expects drop-in repo files
// to appear.
package repofile

import (
	"context"
	"math/rand/v2"
	"os"
	"sort"

	"github.com/glorpus-work/yumctl/internal/logger"
	"github.com/glorpus-work/yumctl/pkg/errors"
	"github.com/glorpus-work/yumctl/pkg/fsutil"
	"github.com/glorpus-work/yumctl/pkg/runner"
	"gopkg.in/ini.v1"
)

// DefaultPath is where the managed repository file lives unless configured
// otherwise.
const DefaultPath = "/etc/yum.repos.d/yumctl-managed.repo"

// DefaultRepoName is the display name given to repositories added without an
// explicit name option.
const DefaultRepoName = "yumctl managed repository"

const (
	sectionPrefix     = "yumctl_"
	sectionSuffixSize = 4
)

func init() {
	// yum reads repo files with no spaces around the delimiter; ini.v1
	// pretty-prints "key = value" unless told otherwise.
	ini.PrettyFormat = false
}

// Repo is one section of the managed repository file.
type Repo struct {
	Section string
	Name    string
	BaseURL string
	Options map[string]string
}

// Manager owns the managed repository file. The INI model is parsed lazily on
// first use and held for the manager's lifetime.
type Manager struct {
	path       string
	run        runner.Runner
	randString func(length int) string
	file       *ini.File
}

// NewManager creates a repository file manager for the given path. An empty
// path selects DefaultPath.
func NewManager(path string, run runner.Runner) *Manager {
	if path == "" {
		path = DefaultPath
	}
	return &Manager{
		path:       path,
		run:        run,
		randString: randomSuffix,
	}
}

// Path returns the location of the managed repository file.
func (m *Manager) Path() string {
	return m.path
}

// Add registers a repository for baseURL. It reports true when a new section
// was written and false when the URL was already configured; in the latter
// case the file is left untouched. Caller options are merged over the
// defaults (enabled=1, gpgcheck=0) and may override them, including the
// display name.
func (m *Manager) Add(ctx context.Context, baseURL string, options map[string]string) (bool, error) {
	if baseURL == "" {
		return false, errors.ErrRepoEmptyURL
	}

	file, err := m.load()
	if err != nil {
		return false, err
	}

	if existing := findByBaseURL(file, baseURL); existing != nil {
		logger.Debugf("repository %s already configured as [%s]", baseURL, existing.Name())
		return false, nil
	}

	sectionName := m.uniqueSectionName(file)
	section, err := file.NewSection(sectionName)
	if err != nil {
		return false, errors.Wrapf(err, "failed to create repository section %s", sectionName)
	}

	section.Key("name").SetValue(DefaultRepoName)
	section.Key("baseurl").SetValue(baseURL)
	section.Key("enabled").SetValue("1")
	section.Key("gpgcheck").SetValue("0")
	for _, key := range sortedKeys(options) {
		if key == "baseurl" {
			continue
		}
		section.Key(key).SetValue(options[key])
	}

	if err := m.write(ctx, file); err != nil {
		file.DeleteSection(sectionName)
		return false, err
	}

	logger.Debugf("repository %s written as [%s]", baseURL, sectionName)
	return true, nil
}

// Remove deletes every section whose baseurl matches and rewrites the file.
// It reports whether any section was removed; removing an unknown URL is not
// an error.
func (m *Manager) Remove(ctx context.Context, baseURL string) (bool, error) {
	file, err := m.load()
	if err != nil {
		return false, err
	}

	removed := false
	for _, section := range file.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		if section.HasKey("baseurl") && section.Key("baseurl").String() == baseURL {
			file.DeleteSection(section.Name())
			removed = true
		}
	}

	if err := m.write(ctx, file); err != nil {
		return false, err
	}
	return removed, nil
}

// List returns the repositories currently defined in the managed file.
func (m *Manager) List() ([]Repo, error) {
	file, err := m.load()
	if err != nil {
		return nil, err
	}

	var repos []Repo
	for _, section := range file.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		repo := Repo{
			Section: section.Name(),
			Options: map[string]string{},
		}
		for _, key := range section.Keys() {
			switch key.Name() {
			case "name":
				repo.Name = key.String()
			case "baseurl":
				repo.BaseURL = key.String()
			default:
				repo.Options[key.Name()] = key.String()
			}
		}
		repos = append(repos, repo)
	}
	return repos, nil
}

func (m *Manager) load() (*ini.File, error) {
	if m.file != nil {
		return m.file, nil
	}
	// A missing file means no repositories are managed yet.
	file, err := ini.LooseLoad(m.path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrRepoFileParse, err.Error())
	}
	m.file = file
	return file, nil
}

// write serializes the model to a temp file and copies it into place with
// elevated privilege. The temp file is always removed.
func (m *Manager) write(ctx context.Context, file *ini.File) error {
	tmp, err := os.CreateTemp("", "yumctl-repo-*")
	if err != nil {
		return errors.Wrap(errors.ErrRepoFileWrite, err.Error())
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := file.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		return errors.Wrap(errors.ErrRepoFileWrite, err.Error())
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(errors.ErrRepoFileWrite, err.Error())
	}
	if err := os.Chmod(tmpPath, fsutil.FileModeDefault); err != nil {
		return errors.Wrap(errors.ErrRepoFileWrite, err.Error())
	}

	_, err = m.run.Run(ctx, runner.Command{
		Path: "cp",
		Args: []string{tmpPath, m.path},
		Sudo: true,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to install repository file %s", m.path)
	}
	return nil
}

func (m *Manager) uniqueSectionName(file *ini.File) string {
	for {
		name := sectionPrefix + m.randString(sectionSuffixSize)
		if _, err := file.GetSection(name); err != nil {
			return name
		}
	}
}

func findByBaseURL(file *ini.File, baseURL string) *ini.Section {
	for _, section := range file.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		if section.HasKey("baseurl") && section.Key("baseurl").String() == baseURL {
			return section
		}
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func randomSuffix(length int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	b := make([]byte, length)
	for i := range b {
		b[i] = letters[rand.IntN(len(letters))]
	}
	return string(b)
}
