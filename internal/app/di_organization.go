package app

import (
	"fmt"
	"sync"

	orgHTTP "github.com/rentguard/blacklist/internal/organization/http"
	orgRepository "github.com/rentguard/blacklist/internal/organization/repository"
	orgUsecase "github.com/rentguard/blacklist/internal/organization/usecase"
)

type organizationComponents struct {
	repo    orgUsecase.OrganizationRepository
	useCase orgUsecase.UseCase
	handler *orgHTTP.OrganizationHandler

	repoInit    sync.Once
	useCaseInit sync.Once
	handlerInit sync.Once
}

// OrganizationRepository returns the organization repository instance.
func (c *Container) OrganizationRepository() (orgUsecase.OrganizationRepository, error) {
	c.organization.repoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["organizationRepo"] = fmt.Errorf("failed to get database for organization repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.organization.repo = orgRepository.NewMySQLOrganizationRepository(db)
		case "postgres":
			c.organization.repo = orgRepository.NewPostgreSQLOrganizationRepository(db)
		default:
			c.initErrors["organizationRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if err, exists := c.initErrors["organizationRepo"]; exists {
		return nil, err
	}
	return c.organization.repo, nil
}

// OrganizationUseCase returns the organization use case instance.
func (c *Container) OrganizationUseCase() (orgUsecase.UseCase, error) {
	c.organization.useCaseInit.Do(func() {
		repo, err := c.OrganizationRepository()
		if err != nil {
			c.initErrors["organizationUseCase"] = err
			return
		}
		c.organization.useCase = orgUsecase.NewOrganizationUseCase(repo)
	})
	if err, exists := c.initErrors["organizationUseCase"]; exists {
		return nil, err
	}
	return c.organization.useCase, nil
}

// OrganizationHandler returns the organization HTTP handler instance.
func (c *Container) OrganizationHandler() (*orgHTTP.OrganizationHandler, error) {
	c.organization.handlerInit.Do(func() {
		useCase, err := c.OrganizationUseCase()
		if err != nil {
			c.initErrors["organizationHandler"] = err
			return
		}
		c.organization.handler = orgHTTP.NewOrganizationHandler(useCase, c.Logger())
	})
	if err, exists := c.initErrors["organizationHandler"]; exists {
		return nil, err
	}
	return c.organization.handler, nil
}
