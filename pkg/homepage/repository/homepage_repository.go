package repository

import "agrisense/entities"

type HomepageRepository interface {
	Latest() (*entities.HomepageConfig, error)
	Create(cfg *entities.HomepageConfig) error
}
