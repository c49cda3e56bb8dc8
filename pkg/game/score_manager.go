package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"
)

const (
	scoreObject   = "score"
	scoreProperty = "high"
)

// HighScore 持久化的最高分记录
type HighScore struct {
	Score int `yaml:"score"`
	Hits  int `yaml:"hits"` // 创造最高分的那一局被击中的次数
}

// ScoreManager 最高分管理器
//
// gdataManager 为 nil 时只在内存中记录（降级模式）。
type ScoreManager struct {
	gdataManager *gdata.Manager
	best         HighScore
}

// NewScoreManager 创建最高分管理器并加载已保存的记录
func NewScoreManager(gdataManager *gdata.Manager) *ScoreManager {
	sm := &ScoreManager{gdataManager: gdataManager}
	if gdataManager == nil {
		return sm
	}

	if _, err := loadYAML(gdataManager, scoreObject, scoreProperty, &sm.best); err != nil {
		log.Printf("[ScoreManager] Warning: Failed to load high score: %v", err)
		sm.best = HighScore{}
	}
	return sm
}

// Best 返回当前最高分
func (sm *ScoreManager) Best() HighScore {
	return sm.best
}

// Submit 提交一局的成绩，刷新最高分时持久化
//
// 返回是否刷新了最高分。持久化失败只记录日志，内存中的记录仍会更新。
func (sm *ScoreManager) Submit(score, hits int) bool {
	if score <= sm.best.Score {
		return false
	}

	sm.best = HighScore{Score: score, Hits: hits}
	log.Printf("[ScoreManager] New high score: %d", score)

	if sm.gdataManager != nil {
		if err := saveYAML(sm.gdataManager, scoreObject, scoreProperty, sm.best); err != nil {
			log.Printf("[ScoreManager] Warning: %v", err)
		}
	}
	return true
}
