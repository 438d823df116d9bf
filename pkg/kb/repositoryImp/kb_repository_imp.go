package repositoryImp

import (
	"gorm.io/gorm"

	"agrisense/entities"
	"agrisense/pkg/kb/repository"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.KBRepository { return &repo{db} }

func (r *repo) Create(a *entities.KBArticle) error { return r.db.Create(a).Error }

func (r *repo) All() ([]entities.KBArticle, error) {
	var as []entities.KBArticle
	return as, r.db.Find(&as).Error
}

func (r *repo) List() ([]entities.KBArticle, error) {
	var as []entities.KBArticle
	return as, r.db.Order("article_id DESC").Find(&as).Error
}
