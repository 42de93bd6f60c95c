package app

import (
	"fmt"
	"sync"

	adminHTTP "github.com/rentguard/blacklist/internal/admin/http"
	adminRepository "github.com/rentguard/blacklist/internal/admin/repository"
	adminUsecase "github.com/rentguard/blacklist/internal/admin/usecase"
)

type adminComponents struct {
	repo    adminUsecase.AdminRepository
	useCase adminUsecase.UseCase
	handler *adminHTTP.AdminHandler

	repoInit    sync.Once
	useCaseInit sync.Once
	handlerInit sync.Once
}

// AdminRepository returns the admin repository instance.
func (c *Container) AdminRepository() (adminUsecase.AdminRepository, error) {
	c.admin.repoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["adminRepo"] = fmt.Errorf("failed to get database for admin repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.admin.repo = adminRepository.NewMySQLAdminRepository(db)
		case "postgres":
			c.admin.repo = adminRepository.NewPostgreSQLAdminRepository(db)
		default:
			c.initErrors["adminRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if err, exists := c.initErrors["adminRepo"]; exists {
		return nil, err
	}
	return c.admin.repo, nil
}

// AdminUseCase returns the admin use case instance.
func (c *Container) AdminUseCase() (adminUsecase.UseCase, error) {
	c.admin.useCaseInit.Do(func() {
		adminRepo, err := c.AdminRepository()
		if err != nil {
			c.initErrors["adminUseCase"] = err
			return
		}
		orgRepo, err := c.OrganizationRepository()
		if err != nil {
			c.initErrors["adminUseCase"] = err
			return
		}
		c.admin.useCase = adminUsecase.NewAdminUseCase(adminRepo, orgRepo)
	})
	if err, exists := c.initErrors["adminUseCase"]; exists {
		return nil, err
	}
	return c.admin.useCase, nil
}

// AdminHandler returns the admin HTTP handler instance.
func (c *Container) AdminHandler() (*adminHTTP.AdminHandler, error) {
	c.admin.handlerInit.Do(func() {
		useCase, err := c.AdminUseCase()
		if err != nil {
			c.initErrors["adminHandler"] = err
			return
		}
		c.admin.handler = adminHTTP.NewAdminHandler(useCase, c.Logger())
	})
	if err, exists := c.initErrors["adminHandler"]; exists {
		return nil, err
	}
	return c.admin.handler, nil
}
