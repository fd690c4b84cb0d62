package repository

import (
	"lingua_plan_backend/internal/model"

	"gorm.io/gorm"
)

type PlanRepository struct {
	DB *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{DB: db}
}

func (r *PlanRepository) Create(plan *model.CoursePlan) error {
	return r.DB.Create(plan).Error
}

func (r *PlanRepository) FindByID(id uint) (*model.CoursePlan, error) {
	var p model.CoursePlan
	err := r.DB.Preload("Profile").First(&p, id).Error
	return &p, err
}

func (r *PlanRepository) FindByProfileID(profileID uint) (*model.CoursePlan, error) {
	var p model.CoursePlan
	err := r.DB.Preload("Profile").Where("profile_id = ?", profileID).First(&p).Error
	return &p, err
}

func (r *PlanRepository) Update(plan *model.CoursePlan) error {
	return r.DB.Save(plan).Error
}

func (r *PlanRepository) Delete(id uint) error {
	return r.DB.Delete(&model.CoursePlan{}, id).Error
}
