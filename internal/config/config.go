// Package config loads the per-workspace settings from .ngfc/config.yaml, the process
// environment and the workspace .env file.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/example/ngfc/internal/core/classify"
	"github.com/example/ngfc/internal/core/modulefile"
	"github.com/example/ngfc/internal/core/naming"
	"github.com/example/ngfc/internal/core/scaffold"
	"github.com/example/ngfc/internal/core/testgen"
)

const (
	// Dir is the per-workspace state directory.
	Dir = ".ngfc"
	// FileName is the config file inside Dir.
	FileName = "config.yaml"
	// EnvFile is read from the workspace root for NGFC_* overrides.
	EnvFile = ".env"

	DefaultModulePattern     = "*.module.ts"
	DefaultTemplateCacheSize = 32
)

// Environment variables overriding config file values.
const (
	EnvPrefix          = "NGFC_PREFIX"
	EnvStyleExtension  = "NGFC_STYLE_EXTENSION"
	EnvStandalone      = "NGFC_STANDALONE"
	EnvClassifier      = "NGFC_CLASSIFIER"
	EnvSectionStrategy = "NGFC_SECTION_STRATEGY"
)

// HarnessTemplates holds the harness template locations.
type HarnessTemplates struct {
	Static  string `yaml:"static"`
	Dynamic string `yaml:"dynamic"`
}

// Config represents the workspace configuration.
type Config struct {
	Prefix            string                 `yaml:"prefix"`         // camelCase word sequence, e.g. "app"
	StyleExtension    string                 `yaml:"styleExtension"` // without the dot
	Standalone        bool                   `yaml:"standalone"`
	ModulePattern     string                 `yaml:"modulePattern"`
	SectionStrategy   string                 `yaml:"sectionStrategy"` // bracket | regex
	Classifier        string                 `yaml:"classifier"`      // tree | text
	HarnessTemplates  HarnessTemplates       `yaml:"harnessTemplates"`
	UnitTestTemplates []testgen.TemplateRule `yaml:"unitTestTemplates,omitempty"`
	TemplateCacheSize int                    `yaml:"templateCacheSize"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		StyleExtension:  scaffold.DefaultStyleExtension,
		ModulePattern:   DefaultModulePattern,
		SectionStrategy: modulefile.StrategyBracket,
		Classifier:      classify.StrategyTree,
		HarnessTemplates: HarnessTemplates{
			Static:  testgen.HarnessStatic,
			Dynamic: testgen.HarnessDynamic,
		},
		TemplateCacheSize: DefaultTemplateCacheSize,
	}
}

// Path returns the config file path for a workspace root.
func Path(root string) string {
	return filepath.Join(root, Dir, FileName)
}

// Load reads the config for a workspace root. Missing files yield the defaults; values
// from <root>/.env and then the process environment override the file.
func Load(root string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path(root))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.WithHint(
				errors.Wrapf(err, "failed to parse %s", Path(root)),
				"fix the YAML or recreate it with 'ngfc init --force'")
		}
	case !errors.Is(err, os.ErrNotExist):
		return nil, errors.Wrap(err, "failed to read config")
	}

	env, err := readEnvFile(filepath.Join(root, EnvFile))
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := env[key]
		return v, ok
	}); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to <root>/.ngfc/config.yaml.
func Save(root string, cfg *Config) error {
	dir := filepath.Join(root, Dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "failed to create %s dir", Dir)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(Path(root), data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config")
	}
	return nil
}

// Validate checks enumerated values and normalizes the style extension.
func (c *Config) Validate() error {
	c.StyleExtension = strings.TrimPrefix(strings.TrimSpace(c.StyleExtension), ".")
	if c.StyleExtension == "" {
		c.StyleExtension = scaffold.DefaultStyleExtension
	}
	if c.ModulePattern == "" {
		c.ModulePattern = DefaultModulePattern
	}
	if c.TemplateCacheSize <= 0 {
		c.TemplateCacheSize = DefaultTemplateCacheSize
	}

	if _, err := modulefile.NewSectionLocator(c.SectionStrategy); err != nil {
		return errors.Wrap(err, "invalid sectionStrategy")
	}
	if _, err := classify.New(c.Classifier); err != nil {
		return errors.Wrap(err, "invalid classifier")
	}
	for i, rule := range c.UnitTestTemplates {
		if rule.Decorator == "" || rule.Template == "" {
			return errors.Newf("unitTestTemplates[%d] needs both decorator and template", i)
		}
	}
	return nil
}

// PrefixParts returns the selector prefix as word parts.
func (c *Config) PrefixParts() naming.Parts {
	return naming.SplitIntoParts(c.Prefix)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPrefix); ok {
		c.Prefix = v
	}
	if v, ok := lookup(EnvStyleExtension); ok {
		c.StyleExtension = v
	}
	if v, ok := lookup(EnvStandalone); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvStandalone)
		}
		c.Standalone = b
	}
	if v, ok := lookup(EnvClassifier); ok {
		c.Classifier = v
	}
	if v, ok := lookup(EnvSectionStrategy); ok {
		c.SectionStrategy = v
	}
	return nil
}

func readEnvFile(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return env, nil
}

// FindRoot returns the nearest ancestor of start (inclusive) containing .ngfc/ or
// angular.json, or start itself when there is none.
func FindRoot(start string) string {
	dir := filepath.Clean(start)
	for {
		for _, marker := range []string{Dir, "angular.json"} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return filepath.Clean(start)
		}
		dir = parent
	}
}
