package repository

import "agrisense/entities"

type KBRepository interface {
	Create(*entities.KBArticle) error
	All() ([]entities.KBArticle, error)
	List() ([]entities.KBArticle, error)
}
