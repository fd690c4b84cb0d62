package repository

import (
	"lingua_plan_backend/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

func (r *ProfileRepository) Create(profile *model.StudentProfile) error {
	return r.DB.Create(profile).Error
}

func (r *ProfileRepository) FindByID(id uint) (*model.StudentProfile, error) {
	var p model.StudentProfile
	err := r.DB.First(&p, id).Error
	return &p, err
}

func (r *ProfileRepository) List(consultantID uint, page, limit int) ([]model.StudentProfile, int64, error) {
	var ps []model.StudentProfile
	var total int64
	query := r.DB.Model(&model.StudentProfile{})
	if consultantID > 0 {
		query = query.Where("consultant_id = ?", consultantID)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&ps).Error
	return ps, total, err
}

func (r *ProfileRepository) Update(profile *model.StudentProfile) error {
	return r.DB.Save(profile).Error
}

func (r *ProfileRepository) Delete(id uint) error {
	return r.DB.Delete(&model.StudentProfile{}, id).Error
}
