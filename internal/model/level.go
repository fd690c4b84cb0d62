package model

// CEFRLevel 课程等级标签（CEFR扩展11级，Pre-A1到C2）
type CEFRLevel string

const (
	LevelPreA1  CEFRLevel = "Pre-A1"
	LevelA1     CEFRLevel = "A1"
	LevelA2     CEFRLevel = "A2"
	LevelA2Plus CEFRLevel = "A2+"
	LevelB1     CEFRLevel = "B1"
	LevelB1Plus CEFRLevel = "B1+"
	LevelB2     CEFRLevel = "B2"
	LevelB2Plus CEFRLevel = "B2+"
	LevelC1     CEFRLevel = "C1"
	LevelC1Plus CEFRLevel = "C1+"
	LevelC2     CEFRLevel = "C2"
)

// LevelLadder 全量等级阶梯，按rank升序排列，程序启动后不再变化
var LevelLadder = []CEFRLevel{
	LevelPreA1,
	LevelA1,
	LevelA2,
	LevelA2Plus,
	LevelB1,
	LevelB1Plus,
	LevelB2,
	LevelB2Plus,
	LevelC1,
	LevelC1Plus,
	LevelC2,
}

var levelRanks = func() map[CEFRLevel]int {
	m := make(map[CEFRLevel]int, len(LevelLadder))
	for i, l := range LevelLadder {
		m[l] = i
	}
	return m
}()

// Rank 返回等级在阶梯中的序号，未知等级返回 -1
func (l CEFRLevel) Rank() int {
	if r, ok := levelRanks[l]; ok {
		return r
	}
	return -1
}

func (l CEFRLevel) Valid() bool {
	return l.Rank() >= 0
}

// LevelsBetween 返回 [current, target) 区间内的等级，按rank升序。
// 等级非法或 rank(current) >= rank(target) 时返回空
func LevelsBetween(current, target CEFRLevel) []CEFRLevel {
	lo, hi := current.Rank(), target.Rank()
	if lo < 0 || hi < 0 || lo >= hi {
		return nil
	}
	return LevelLadder[lo:hi]
}
