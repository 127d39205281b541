package cmd

import (
	"context"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/gitmcp/gitmcp/internal/config"
	"github.com/gitmcp/gitmcp/internal/domain"
	"github.com/gitmcp/gitmcp/internal/logger"
	"github.com/gitmcp/gitmcp/internal/orchestrator"
	"github.com/gitmcp/gitmcp/internal/repository"
	"github.com/gitmcp/gitmcp/internal/service"
	"github.com/gitmcp/gitmcp/internal/usecase"
)

// container holds all the dependencies for the application.
type container struct {
	cfg    *config.Config
	log    *zap.Logger
	git    service.GitExecutor
	runner *orchestrator.Runner
}

// newContainer creates a new container with all the dependencies.
func newContainer() (*container, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	log := logger.New(cfg)

	gitExec := service.NewGitExecutor(cfg, log)
	inspector := repository.NewGitInspector()
	fsRepo := repository.FileSystemRepository(afero.NewOsFs())
	ghRepo := repository.NewGithubRepository(cfg.GithubToken)

	dispatcher := usecase.NewDispatcher(gitExec, inspector, fsRepo, ghRepo, log)
	runner := orchestrator.NewRunner(dispatcher, log)

	c := &container{
		cfg:    cfg,
		log:    log,
		git:    gitExec,
		runner: runner,
	}
	c.checkGitVersion()
	return c, nil
}

// checkGitVersion warns when the installed git is missing or older than the
// minimum validated release. It never fails startup.
func (c *container) checkGitVersion() {
	v, err := c.git.Version(context.Background())
	if err != nil {
		c.log.Warn("could not determine git version", zap.Error(err))
		return
	}
	if !domain.IsSupportedGitVersion(v) {
		c.log.Warn("installed git is older than the minimum validated release",
			zap.String("installed", v.String()),
			zap.String("minimum", domain.MinimumGitVersion.String()),
		)
	}
}

// InitCommands initializes all commands with their dependencies
func InitCommands() error {
	c, err := newContainer()
	if err != nil {
		return err
	}
	rootCmd.AddCommand(NewServeCmd(c))
	rootCmd.AddCommand(NewVersionCmd(c))
	addGitCommands(c)
	return nil
}
