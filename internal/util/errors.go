package util

import "errors"

var (
	ErrEmailRegistered     = errors.New("该邮箱已被注册")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrPlanNotFound        = errors.New("plan not found")
	ErrInvalidLevelRange   = errors.New("目标等级必须高于当前等级")
	ErrPackNotFound        = errors.New("pack not found")
	ErrCourseNotFound      = errors.New("supplementary course not found")
	ErrCourseNotEligible   = errors.New("该补充课程在此规划中不可重复添加")
	ErrTopicNotFound       = errors.New("topic not found")
	ErrSyllabusNotEligible = errors.New("固定时长或补充课程话题不支持生成教案")
	ErrGenerationFailed    = errors.New("AI内容生成失败，规划未变更")
	ErrGenerationMalformed = errors.New("AI返回内容格式不正确")
)
