package repository

import "agrisense/entities"

type FeedbackRepository interface {
	Create(f *entities.Feedback) error
	List() ([]entities.Feedback, error)
	ListByUser(uid string) ([]entities.Feedback, error)
}
