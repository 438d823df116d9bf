package repositoryImp

import (
	"gorm.io/gorm"

	"agrisense/entities"
	"agrisense/pkg/zone/repository"
)

type zoneRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ZoneRepository { return &zoneRepo{db} }

func (r *zoneRepo) Create(z *entities.Zone) error { return r.db.Create(z).Error }

func (r *zoneRepo) FindByID(id uint) (*entities.Zone, error) {
	var z entities.Zone
	if err := r.db.First(&z, "zone_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &z, nil
}

func (r *zoneRepo) ListByFarm(farmID string) ([]entities.Zone, error) {
	var out []entities.Zone
	if err := r.db.Where("farm_id = ?", farmID).Order("zone_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *zoneRepo) Update(z *entities.Zone) error { return r.db.Save(z).Error }

func (r *zoneRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Zone{}, "zone_id = ?", id).Error
}

func (r *zoneRepo) AddActivity(a *entities.ZoneActivity) error { return r.db.Create(a).Error }

func (r *zoneRepo) ListActivities(zoneID uint) ([]entities.ZoneActivity, error) {
	var out []entities.ZoneActivity
	if err := r.db.Where("zone_id = ?", zoneID).Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
