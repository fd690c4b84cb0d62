package planner

import (
	"strings"
	"unicode"

	"lingua_plan_backend/internal/catalog"
	"lingua_plan_backend/internal/model"
)

// PackSuggestion 推荐结果：话题包 + 命中原因（首个命中的关键词来源）
type PackSuggestion struct {
	Pack   catalog.TopicPack `json:"pack"`
	Reason string            `json:"reason"`
}

// 等级兼容窗口：专项类（行业/岗位/商务技能）允许更大的等级跨度
const (
	lifeLevelWindow        = 1
	specializedLevelWindow = 2
)

var stopWords = map[string]bool{
	"and": true, "the": true, "for": true, "of": true, "in": true,
	"to": true, "with": true, "my": true,
	"的": true, "和": true, "与": true, "了": true, "我": true,
}

// RecommendPacks 按学员画像给话题包打推荐标记。匹配即入选，
// 首个命中即为reason；按包名去重保留首次出现；输出顺序跟随
// 目录遍历顺序，不按相关度排序
func RecommendPacks(profile *model.StudentProfile, activeLevel model.CEFRLevel) []PackSuggestion {
	if !activeLevel.Valid() {
		return nil
	}

	businessKeywords := keywords(profile.Industry, profile.Role, profile.JobDescription)
	lifeKeywords := keywords(append(append([]string{}, profile.Goals...), profile.Interests...)...)

	var out []PackSuggestion
	seen := make(map[string]bool)
	for _, pack := range catalog.Packs {
		if seen[pack.Name] || !levelCompatible(pack, activeLevel) {
			continue
		}

		var pool []string
		switch pack.Category {
		case model.CategoryBusinessSkills, model.CategoryIndustry, model.CategoryJobRole:
			pool = businessKeywords
		default:
			pool = lifeKeywords
		}

		if reason := firstMatch(pack, pool); reason != "" {
			out = append(out, PackSuggestion{Pack: pack, Reason: reason})
			seen[pack.Name] = true
		}
	}
	return out
}

func levelCompatible(pack catalog.TopicPack, active model.CEFRLevel) bool {
	window := lifeLevelWindow
	switch pack.Category {
	case model.CategoryBusinessSkills, model.CategoryIndustry, model.CategoryJobRole:
		window = specializedLevelWindow
	}
	d := pack.MinLevel.Rank() - active.Rank()
	if d < 0 {
		d = -d
	}
	return d <= window
}

// firstMatch 关键词大小写不敏感地做包名子串匹配，命中即返回
func firstMatch(pack catalog.TopicPack, words []string) string {
	name := strings.ToLower(pack.Name)
	for _, w := range words {
		if strings.Contains(name, w) {
			return w
		}
	}
	// 包名未命中时退而匹配包内话题标题
	for _, pt := range pack.Topics {
		title := strings.ToLower(pt.Title)
		for _, w := range words {
			if strings.Contains(title, w) {
				return w
			}
		}
	}
	return ""
}

// keywords 把自由文本切成有效关键词：按空白和标点切分、
// 过滤单字和停用词、转小写
func keywords(texts ...string) []string {
	var words []string
	for _, text := range texts {
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return unicode.IsSpace(r) || unicode.IsPunct(r)
		})
		for _, f := range fields {
			w := strings.ToLower(f)
			if len([]rune(w)) <= 1 || stopWords[w] {
				continue
			}
			words = append(words, w)
		}
	}
	return words
}
