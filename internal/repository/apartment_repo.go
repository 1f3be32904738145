package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"morent/internal/domain"
)

var ErrNotFound = errors.New("record not found")

type ApartmentRepository struct {
	db *gorm.DB
}

func NewApartmentRepository(db *gorm.DB) *ApartmentRepository {
	return &ApartmentRepository{db: db}
}

func (r *ApartmentRepository) GetAll(ctx context.Context) ([]domain.Apartment, error) {
	var out []domain.Apartment
	err := r.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

func (r *ApartmentRepository) GetByID(ctx context.Context, id int64) (*domain.Apartment, error) {
	var a domain.Apartment
	err := r.db.WithContext(ctx).First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ApartmentRepository) Create(ctx context.Context, a *domain.Apartment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// Update writes all columns, so clearing an optional field (wifi password,
// door code, FAQ) actually persists the empty value.
func (r *ApartmentRepository) Update(ctx context.Context, a *domain.Apartment) error {
	res := r.db.WithContext(ctx).Save(a)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ApartmentRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Apartment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
