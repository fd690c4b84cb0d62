package planner

import (
	"testing"

	"lingua_plan_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recommendProfile() *model.StudentProfile {
	return &model.StudentProfile{
		Name:            "推荐测试",
		CurrentLevel:    model.LevelB1,
		TargetLevel:     model.LevelC1,
		TeachingMode:    model.TeachingPrivate,
		WeeklyFrequency: 2,
		SessionMinutes:  90,
	}
}

func suggestionNames(suggestions []PackSuggestion) []string {
	names := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		names = append(names, s.Pack.Name)
	}
	return names
}

func TestRecommendByIndustryKeyword(t *testing.T) {
	profile := recommendProfile()
	profile.Industry = "金融"

	suggestions := RecommendPacks(profile, model.LevelB1)
	require.NotEmpty(t, suggestions)
	assert.Contains(t, suggestionNames(suggestions), "金融与投资 Finance & Investment")

	for _, s := range suggestions {
		if s.Pack.Name == "金融与投资 Finance & Investment" {
			assert.Equal(t, "金融", s.Reason)
		}
	}
}

func TestRecommendCaseInsensitive(t *testing.T) {
	profile := recommendProfile()
	profile.Industry = "FINANCE"

	suggestions := RecommendPacks(profile, model.LevelB1)
	assert.Contains(t, suggestionNames(suggestions), "金融与投资 Finance & Investment")
}

func TestRecommendByInterest(t *testing.T) {
	profile := recommendProfile()
	profile.Interests = []string{"旅行"}

	// 旅行包最低A1，生活类窗口±1级
	suggestions := RecommendPacks(profile, model.LevelA2)
	assert.Contains(t, suggestionNames(suggestions), "出国旅行生存包 Travel Survival")
}

func TestRecommendLevelWindow(t *testing.T) {
	profile := recommendProfile()
	profile.Interests = []string{"旅行"}

	// B1与A1相差3级，超出生活类窗口
	suggestions := RecommendPacks(profile, model.LevelB1)
	assert.NotContains(t, suggestionNames(suggestions), "出国旅行生存包 Travel Survival")
}

func TestRecommendTopicTitleFallback(t *testing.T) {
	profile := recommendProfile()
	profile.JobDescription = "产品迭代评审 跨团队沟通"

	suggestions := RecommendPacks(profile, model.LevelB1)
	require.Contains(t, suggestionNames(suggestions), "互联网与软件 Tech & Software")
	for _, s := range suggestions {
		if s.Pack.Name == "互联网与软件 Tech & Software" {
			assert.Equal(t, "产品迭代评审", s.Reason)
		}
	}
}

func TestRecommendFiltersNoiseWords(t *testing.T) {
	profile := recommendProfile()
	profile.Interests = []string{"的", "a", "the", "我"}

	suggestions := RecommendPacks(profile, model.LevelB1)
	assert.Empty(t, suggestions)
}

func TestRecommendInvalidLevel(t *testing.T) {
	profile := recommendProfile()
	profile.Industry = "金融"
	assert.Nil(t, RecommendPacks(profile, model.CEFRLevel("bogus")))
}

func TestRecommendFollowsCatalogOrder(t *testing.T) {
	profile := recommendProfile()
	profile.Industry = "软件 金融"

	suggestions := RecommendPacks(profile, model.LevelB1)
	names := suggestionNames(suggestions)
	require.Contains(t, names, "互联网与软件 Tech & Software")
	require.Contains(t, names, "金融与投资 Finance & Investment")

	var techIdx, finIdx int
	for i, n := range names {
		switch n {
		case "互联网与软件 Tech & Software":
			techIdx = i
		case "金融与投资 Finance & Investment":
			finIdx = i
		}
	}
	// 目录顺序：互联网在金融之前
	assert.Less(t, techIdx, finIdx)
}

func TestRecommendNoDuplicates(t *testing.T) {
	profile := recommendProfile()
	profile.Industry = "金融 投资"
	profile.JobDescription = "金融 路演"

	suggestions := RecommendPacks(profile, model.LevelB1)
	seen := make(map[string]bool)
	for _, s := range suggestions {
		assert.False(t, seen[s.Pack.Name], "duplicate pack %s", s.Pack.Name)
		seen[s.Pack.Name] = true
	}
}
