package postgres

import (
	"github.com/jinzhu/gorm"

	"giving-tree-admin/internal/models"
)

type SubmissionPostgresRepo struct {
	db *gorm.DB
}

func NewSubmissionPostgres(db *gorm.DB) *SubmissionPostgresRepo {
	return &SubmissionPostgresRepo{db: db}
}

func (r *SubmissionPostgresRepo) Create(s models.Submission) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&s).Error
	})
}

// CreateOrUpdate makes redelivered events idempotent: the row is keyed by event id.
func (r *SubmissionPostgresRepo) CreateOrUpdate(s models.Submission) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int
		if err := tx.Model(&models.Submission{}).
			Where("event_id = ?", s.EventID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return tx.Create(&s).Error
		}
		return tx.Model(&models.Submission{}).
			Where("event_id = ?", s.EventID).
			Updates(map[string]interface{}{
				"action":       s.Action,
				"charity_id":   s.CharityID,
				"charity_name": s.CharityName,
				"wish_count":   s.WishCount,
				"total_amount": s.TotalAmount,
				"payload":      s.Payload,
				"submitted_at": s.SubmittedAt,
			}).Error
	})
}

func (r *SubmissionPostgresRepo) Get(eventID string) (models.Submission, error) {
	var s models.Submission
	err := r.db.Where("event_id = ?", eventID).First(&s).Error
	return s, err
}

func (r *SubmissionPostgresRepo) GetAll() ([]models.Submission, error) {
	var out []models.Submission
	err := r.db.Order("submitted_at desc").Find(&out).Error
	return out, err
}
