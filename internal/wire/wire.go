// Package wire provides dependency injection for the ngfc application.
// It creates singleton services with lazy initialization.
package wire

import (
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/term"

	cliadapter "github.com/example/ngfc/internal/adapters/cli"
	"github.com/example/ngfc/internal/adapters/filesystem"
	"github.com/example/ngfc/internal/adapters/sqlite"
	"github.com/example/ngfc/internal/app"
	"github.com/example/ngfc/internal/config"
	"github.com/example/ngfc/internal/core/classify"
	"github.com/example/ngfc/internal/core/modulefile"
	"github.com/example/ngfc/internal/db"
	"github.com/example/ngfc/internal/logging"
	"github.com/example/ngfc/internal/ports/primary"
	"github.com/example/ngfc/internal/ports/secondary"
	"github.com/example/ngfc/internal/tmux"
)

// Options are the global command line settings the services are built from.
type Options struct {
	Workspaces []string // workspace roots; discovered from the working directory when empty
	Verbosity  int
	JSONLogs   bool
	Out        io.Writer
	Err        io.Writer
}

var (
	opts Options

	once    sync.Once
	initErr error

	logger          *zap.SugaredLogger
	cfg             *config.Config
	root            string
	database        *sql.DB
	dbErr           error
	scaffoldService primary.ScaffoldService
	testService     primary.TestService
	historyService  primary.HistoryService
)

// Configure sets the options used by the first service lookup.
func Configure(o Options) {
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	opts = o
}

// Logger returns the shared logger, or a no-op logger before initialization.
func Logger() *zap.SugaredLogger {
	if logger == nil {
		return logging.Nop()
	}
	return logger
}

// PrimaryRoot resolves the primary workspace root from the options alone, without
// loading the configuration.
func PrimaryRoot() (string, error) {
	roots, err := resolveRoots(opts.Workspaces)
	if err != nil {
		return "", err
	}
	return roots[0], nil
}

// ScaffoldService returns the singleton ScaffoldService instance.
func ScaffoldService() (primary.ScaffoldService, error) {
	once.Do(initServices)
	return scaffoldService, initErr
}

// TestService returns the singleton TestService instance.
func TestService() (primary.TestService, error) {
	once.Do(initServices)
	return testService, initErr
}

// HistoryService returns the singleton HistoryService instance. It fails when the
// history database could not be opened.
func HistoryService() (primary.HistoryService, error) {
	once.Do(initServices)
	if initErr != nil {
		return nil, initErr
	}
	if dbErr != nil {
		return nil, dbErr
	}
	return historyService, nil
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	if opts.Out == nil {
		Configure(opts)
	}
	logger = logging.New(opts.Err, opts.Verbosity, opts.JSONLogs)

	roots, err := resolveRoots(opts.Workspaces)
	if err != nil {
		initErr = err
		return
	}
	root = roots[0]

	cfg, err = config.Load(root)
	if err != nil {
		initErr = err
		return
	}
	// Create secondary adapters
	workspace, err := filesystem.NewWorkspaceAdapter(roots...)
	if err != nil {
		initErr = err
		return
	}
	logger.Debugw("workspace loaded", "roots", workspace.Roots(), "config", config.Path(root))
	templates, err := filesystem.NewTemplateStore(workspace, cfg.TemplateCacheSize)
	if err != nil {
		initErr = err
		return
	}
	classifier, err := classify.New(cfg.Classifier)
	if err != nil {
		initErr = err
		return
	}
	sectionLocator, err := modulefile.NewSectionLocator(cfg.SectionStrategy)
	if err != nil {
		initErr = err
		return
	}

	var generations secondary.GenerationRepository
	database, dbErr = db.Open(db.PathFor(root))
	if dbErr != nil {
		dbErr = errors.WithHint(errors.Wrap(dbErr, "failed to open history database"),
			"check that "+filepath.Join(root, config.Dir)+" is writable")
		logger.Warnw("history disabled", "error", dbErr)
	} else {
		generations = sqlite.NewGenerationRepository(database)
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	prompter := cliadapter.NewPrompter(os.Stdin, opts.Out, interactive)
	progress := cliadapter.NewProgressReporter(opts.Out, interactive && term.IsTerminal(int(os.Stdout.Fd())))
	opener := tmux.NewGotmuxOpener(tmux.Editor(), opts.Out)

	// Create effect executor and the services (primary ports implementation)
	executor := app.NewEffectExecutor(workspace, generations, opener, logger)
	moduleLocator := app.NewModuleLocator(workspace, cfg.ModulePattern, logger)
	modifier := app.NewModuleModifier(workspace, sectionLocator, logger)

	scaffoldService = app.NewScaffoldService(workspace, moduleLocator, modifier, prompter, progress, executor, logger,
		app.ScaffoldOptions{
			Prefix:     cfg.PrefixParts(),
			StyleExt:   cfg.StyleExtension,
			Standalone: cfg.Standalone,
		})
	testService = app.NewTestService(workspace, classifier, templates, moduleLocator, executor, logger,
		app.TestOptions{
			Rules:          cfg.UnitTestTemplates,
			HarnessStatic:  cfg.HarnessTemplates.Static,
			HarnessDynamic: cfg.HarnessTemplates.Dynamic,
		})
	if generations != nil {
		historyService = app.NewHistoryService(generations)
	}
}

// resolveRoots returns absolute workspace roots, the first one being the primary root.
func resolveRoots(workspaces []string) ([]string, error) {
	if len(workspaces) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get working directory")
		}
		return []string{config.FindRoot(cwd)}, nil
	}

	roots := make([]string, 0, len(workspaces))
	for _, w := range workspaces {
		abs, err := filepath.Abs(w)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid workspace %s", w)
		}
		roots = append(roots, abs)
	}
	return roots, nil
}

// ScaffoldAdapter returns a new ScaffoldAdapter writing to the configured output.
// Each call creates a new adapter (adapters are stateless translators).
func ScaffoldAdapter() (*cliadapter.ScaffoldAdapter, error) {
	service, err := ScaffoldService()
	if err != nil {
		return nil, err
	}
	return cliadapter.NewScaffoldAdapter(service, opts.Out), nil
}

// TestAdapter returns a new TestAdapter writing to the configured output.
func TestAdapter() (*cliadapter.TestAdapter, error) {
	service, err := TestService()
	if err != nil {
		return nil, err
	}
	return cliadapter.NewTestAdapter(service, opts.Out), nil
}

// HistoryAdapter returns a new HistoryAdapter writing to the configured output.
func HistoryAdapter() (*cliadapter.HistoryAdapter, error) {
	service, err := HistoryService()
	if err != nil {
		return nil, err
	}
	return cliadapter.NewHistoryAdapter(service, opts.Out), nil
}

// Close releases the history database and flushes the logger.
func Close() error {
	if logger != nil {
		_ = logger.Sync()
	}
	if database != nil {
		return database.Close()
	}
	return nil
}
