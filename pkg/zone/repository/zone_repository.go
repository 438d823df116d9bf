package repository

import "agrisense/entities"

type ZoneRepository interface {
	Create(z *entities.Zone) error
	FindByID(id uint) (*entities.Zone, error)
	ListByFarm(farmID string) ([]entities.Zone, error)
	Update(z *entities.Zone) error
	Delete(id uint) error
	AddActivity(a *entities.ZoneActivity) error
	ListActivities(zoneID uint) ([]entities.ZoneActivity, error)
}
