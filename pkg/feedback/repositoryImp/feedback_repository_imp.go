package repositoryImp

import (
	"gorm.io/gorm"

	"agrisense/entities"
	"agrisense/pkg/feedback/repository"
)

type feedbackRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FeedbackRepository { return &feedbackRepo{db} }

func (r *feedbackRepo) Create(f *entities.Feedback) error { return r.db.Create(f).Error }

func (r *feedbackRepo) List() ([]entities.Feedback, error) {
	var out []entities.Feedback
	return out, r.db.Order("feedback_id DESC").Find(&out).Error
}

func (r *feedbackRepo) ListByUser(uid string) ([]entities.Feedback, error) {
	var out []entities.Feedback
	return out, r.db.Where("user_id = ?", uid).Order("feedback_id DESC").Find(&out).Error
}
