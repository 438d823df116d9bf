package service

import "agrisense/entities"

type KBService interface {
	IngestText(title, tags, text, sourceURL string) (*entities.KBArticle, error)
	IngestURL(url, tags string) (*entities.KBArticle, error)
	Search(query string, k int) ([]entities.KBArticle, error)
	Suggest(query string, k int) ([]entities.ArticleRef, error)
	List() ([]entities.KBArticle, error)
}
