package model

// TrackMode 标准轨模式，决定模块内official类话题取哪套教材轨
type TrackMode string

const (
	TrackOfficial  TrackMode = "official"  // 商务轨
	TrackAlternate TrackMode = "alternate" // 生活轨
	TrackCombined  TrackMode = "combined"  // 双轨并集
)

// CourseModule 一个等级对应一个模块，话题列表可变，
// 插入顺序仅用于展示
type CourseModule struct {
	ID                string    `json:"id"`
	Level             CEFRLevel `json:"level"`
	Topics            []Topic   `json:"topics"`
	StandardTrackMode TrackMode `json:"standardTrackMode"`
}

// FindTopic 按ID查找话题，返回下标，未找到返回 -1
func (m *CourseModule) FindTopic(topicID string) int {
	for i := range m.Topics {
		if m.Topics[i].ID == topicID {
			return i
		}
	}
	return -1
}

// HasTopicTitled 按标题判断话题是否已存在（补充课程按标题判重）
func (m *CourseModule) HasTopicTitled(title string) bool {
	for i := range m.Topics {
		if m.Topics[i].Title == title {
			return true
		}
	}
	return false
}
