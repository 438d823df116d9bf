package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"agrisense/entities"
	"agrisense/pkg/homepage/repository"
)

type homepageRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.HomepageRepository { return &homepageRepo{db} }

func (r *homepageRepo) Latest() (*entities.HomepageConfig, error) {
	var cfg entities.HomepageConfig
	err := r.db.Order("version DESC").First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *homepageRepo) Create(cfg *entities.HomepageConfig) error { return r.db.Create(cfg).Error }
