package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelRank(t *testing.T) {
	assert.Equal(t, 0, LevelPreA1.Rank())
	assert.Equal(t, 10, LevelC2.Rank())
	assert.Equal(t, -1, CEFRLevel("D1").Rank())

	// 阶梯严格递增
	for i := 1; i < len(LevelLadder); i++ {
		assert.Greater(t, LevelLadder[i].Rank(), LevelLadder[i-1].Rank())
	}
}

func TestLevelsBetween(t *testing.T) {
	tests := []struct {
		name    string
		current CEFRLevel
		target  CEFRLevel
		want    []CEFRLevel
	}{
		{
			name:    "单级跨度",
			current: LevelA1,
			target:  LevelA2,
			want:    []CEFRLevel{LevelA1},
		},
		{
			name:    "A1到A2+包含A1和A2",
			current: LevelA1,
			target:  LevelA2Plus,
			want:    []CEFRLevel{LevelA1, LevelA2},
		},
		{
			name:    "全跨度不含目标级",
			current: LevelPreA1,
			target:  LevelC2,
			want:    LevelLadder[:10],
		},
		{
			name:    "相同等级为空",
			current: LevelB1,
			target:  LevelB1,
			want:    nil,
		},
		{
			name:    "目标低于当前为空",
			current: LevelB2,
			target:  LevelA1,
			want:    nil,
		},
		{
			name:    "未知等级为空",
			current: CEFRLevel("X1"),
			target:  LevelB1,
			want:    nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LevelsBetween(tt.current, tt.target)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevelsBetweenContiguous(t *testing.T) {
	levels := LevelsBetween(LevelA2, LevelC1)
	assert.NotEmpty(t, levels)
	for i := 1; i < len(levels); i++ {
		assert.Equal(t, levels[i-1].Rank()+1, levels[i].Rank())
	}
	assert.Equal(t, LevelA2, levels[0])
	assert.Equal(t, LevelB2Plus, levels[len(levels)-1])
}
