package repository

import (
	"context"

	"gorm.io/gorm"
)

type HealthGormRepository struct {
	db *gorm.DB
}

func NewHealthGormRepository(db *gorm.DB) *HealthGormRepository {
	return &HealthGormRepository{db: db}
}

// DBまで往復できるか
func (r *HealthGormRepository) Check(ctx context.Context) (string, error) {
	var message string
	err := r.db.WithContext(ctx).
		Raw(`SELECT 'successfully connected' AS message`).
		Scan(&message).Error
	if err != nil {
		return "", err
	}
	return message, nil
}
