package app

import (
	"context"
	"fmt"
	"sync"

	blacklistHTTP "github.com/rentguard/blacklist/internal/blacklist/http"
	blacklistRepository "github.com/rentguard/blacklist/internal/blacklist/repository"
	"github.com/rentguard/blacklist/internal/blacklist/service"
	blacklistUsecase "github.com/rentguard/blacklist/internal/blacklist/usecase"
)

type blacklistComponents struct {
	identityRepo blacklistUsecase.IdentityRepository
	entryRepo    blacklistUsecase.EntryRepository
	historyRepo  blacklistUsecase.HistoryRepository
	hasher       *service.Hasher
	signer       *service.HistorySigner
	useCase      blacklistUsecase.UseCase
	handler      *blacklistHTTP.BlacklistHandler

	reposInit   sync.Once
	hasherInit  sync.Once
	useCaseInit sync.Once
	handlerInit sync.Once
}

func (c *Container) initBlacklistRepositories() error {
	c.blacklist.reposInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["blacklistRepos"] = fmt.Errorf("failed to get database for blacklist repositories: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.blacklist.identityRepo = blacklistRepository.NewMySQLIdentityRepository(db)
			c.blacklist.entryRepo = blacklistRepository.NewMySQLEntryRepository(db)
			c.blacklist.historyRepo = blacklistRepository.NewMySQLHistoryRepository(db)
		case "postgres":
			c.blacklist.identityRepo = blacklistRepository.NewPostgreSQLIdentityRepository(db)
			c.blacklist.entryRepo = blacklistRepository.NewPostgreSQLEntryRepository(db)
			c.blacklist.historyRepo = blacklistRepository.NewPostgreSQLHistoryRepository(db)
		default:
			c.initErrors["blacklistRepos"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if err, exists := c.initErrors["blacklistRepos"]; exists {
		return err
	}
	return nil
}

// IdentityRepository returns the identity repository instance.
func (c *Container) IdentityRepository() (blacklistUsecase.IdentityRepository, error) {
	if err := c.initBlacklistRepositories(); err != nil {
		return nil, err
	}
	return c.blacklist.identityRepo, nil
}

// EntryRepository returns the entry repository instance.
func (c *Container) EntryRepository() (blacklistUsecase.EntryRepository, error) {
	if err := c.initBlacklistRepositories(); err != nil {
		return nil, err
	}
	return c.blacklist.entryRepo, nil
}

// HistoryRepository returns the history repository instance.
func (c *Container) HistoryRepository() (blacklistUsecase.HistoryRepository, error) {
	if err := c.initBlacklistRepositories(); err != nil {
		return nil, err
	}
	return c.blacklist.historyRepo, nil
}

func (c *Container) initHashingServices(ctx context.Context) error {
	c.blacklist.hasherInit.Do(func() {
		pepperValue, err := c.Pepper(ctx)
		if err != nil {
			c.initErrors["blacklistHashing"] = err
			return
		}

		c.blacklist.hasher = service.NewHasher(pepperValue)

		signer, err := service.NewHistorySigner(pepperValue)
		if err != nil {
			c.initErrors["blacklistHashing"] = fmt.Errorf("failed to create history signer: %w", err)
			return
		}
		c.blacklist.signer = signer
	})
	if err, exists := c.initErrors["blacklistHashing"]; exists {
		return err
	}
	return nil
}

// Hasher returns the personal-data hasher instance.
func (c *Container) Hasher(ctx context.Context) (*service.Hasher, error) {
	if err := c.initHashingServices(ctx); err != nil {
		return nil, err
	}
	return c.blacklist.hasher, nil
}

// HistorySigner returns the history event signer instance.
func (c *Container) HistorySigner(ctx context.Context) (*service.HistorySigner, error) {
	if err := c.initHashingServices(ctx); err != nil {
		return nil, err
	}
	return c.blacklist.signer, nil
}

// BlacklistUseCase returns the blacklist use case, wrapped with the metrics
// decorator when metrics are enabled.
func (c *Container) BlacklistUseCase(ctx context.Context) (blacklistUsecase.UseCase, error) {
	c.blacklist.useCaseInit.Do(func() {
		useCase, err := c.initBlacklistUseCase(ctx)
		if err != nil {
			c.initErrors["blacklistUseCase"] = err
			return
		}
		c.blacklist.useCase = useCase
	})
	if err, exists := c.initErrors["blacklistUseCase"]; exists {
		return nil, err
	}
	return c.blacklist.useCase, nil
}

func (c *Container) initBlacklistUseCase(ctx context.Context) (blacklistUsecase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, err
	}
	hasher, err := c.Hasher(ctx)
	if err != nil {
		return nil, err
	}
	signer, err := c.HistorySigner(ctx)
	if err != nil {
		return nil, err
	}
	identityRepo, err := c.IdentityRepository()
	if err != nil {
		return nil, err
	}
	entryRepo, err := c.EntryRepository()
	if err != nil {
		return nil, err
	}
	historyRepo, err := c.HistoryRepository()
	if err != nil {
		return nil, err
	}
	orgRepo, err := c.OrganizationRepository()
	if err != nil {
		return nil, err
	}
	adminRepo, err := c.AdminRepository()
	if err != nil {
		return nil, err
	}

	logger := c.Logger()
	matcher := blacklistUsecase.NewMatcher(hasher, identityRepo, orgRepo, logger)

	useCase := blacklistUsecase.NewBlacklistUseCase(
		txManager,
		matcher,
		hasher,
		signer,
		identityRepo,
		entryRepo,
		historyRepo,
		orgRepo,
		adminRepo,
		logger,
	)

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, err
	}
	if businessMetrics != nil {
		useCase = blacklistUsecase.NewMetricsDecorator(useCase, businessMetrics)
	}

	return useCase, nil
}

// BlacklistHandler returns the blacklist HTTP handler instance.
func (c *Container) BlacklistHandler(ctx context.Context) (*blacklistHTTP.BlacklistHandler, error) {
	c.blacklist.handlerInit.Do(func() {
		useCase, err := c.BlacklistUseCase(ctx)
		if err != nil {
			c.initErrors["blacklistHandler"] = err
			return
		}
		c.blacklist.handler = blacklistHTTP.NewBlacklistHandler(useCase, c.Logger())
	})
	if err, exists := c.initErrors["blacklistHandler"]; exists {
		return nil, err
	}
	return c.blacklist.handler, nil
}
