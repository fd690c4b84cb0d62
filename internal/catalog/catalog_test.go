package catalog

import (
	"testing"

	"lingua_plan_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate())
}

func TestCurriculumCoversAllLevels(t *testing.T) {
	for _, level := range model.LevelLadder {
		cur, ok := CurriculumFor(level)
		require.True(t, ok, "level %s missing from curriculum", level)
		assert.Equal(t, level, cur.Level)
		assert.NotEmpty(t, cur.Official, "level %s has no official topics", level)
	}
}

func TestCurriculumForUnknownLevel(t *testing.T) {
	_, ok := CurriculumFor(model.CEFRLevel("Z9"))
	assert.False(t, ok)
}

func TestPackByName(t *testing.T) {
	pack, ok := PackByName("金融与投资 Finance & Investment")
	require.True(t, ok)
	assert.Equal(t, model.CategoryIndustry, pack.Category)
	assert.NotEmpty(t, pack.Topics)

	_, ok = PackByName("不存在的包")
	assert.False(t, ok)
}

func TestPacksHaveValidLevels(t *testing.T) {
	for _, pack := range Packs {
		assert.True(t, pack.MinLevel.Valid(), "pack %s has invalid min level", pack.Name)
		assert.NotEmpty(t, pack.Directions, "pack %s has no directions", pack.Name)
	}
}

func TestSupplementaryByID(t *testing.T) {
	course, ok := SupplementaryByID("pronunciation")
	require.True(t, ok)
	assert.Equal(t, UniqueGlobal, course.Uniqueness)
	assert.Equal(t, 12.0, course.Hours)

	_, ok = SupplementaryByID("nonexistent")
	assert.False(t, ok)
}

func TestWeeklySupplementaryByTitle(t *testing.T) {
	rs, ok := SupplementaryByID("rs_hybrid")
	require.True(t, ok)
	require.True(t, rs.IsWeekly)

	course, ok := WeeklySupplementaryByTitle(rs.Title)
	require.True(t, ok)
	assert.Equal(t, 2.0, course.HoursPerWeek)

	// 非周费率课程按标题查不到
	pron, _ := SupplementaryByID("pronunciation")
	_, ok = WeeklySupplementaryByTitle(pron.Title)
	assert.False(t, ok)
}

func TestWeeklyCoursesHaveRate(t *testing.T) {
	for _, c := range SupplementaryCourses {
		if c.IsWeekly {
			assert.Greater(t, c.HoursPerWeek, 0.0, "weekly course %s has no rate", c.ID)
		} else {
			assert.Greater(t, c.Hours, 0.0, "course %s has no hours", c.ID)
		}
	}
}
