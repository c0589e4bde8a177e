package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ScoreRecord is the persisted best result.
type ScoreRecord struct {
	// HighScore is the best score across all runs.
	HighScore int `yaml:"highScore"`
	// BestLevel is the highest level reached across all runs.
	BestLevel int `yaml:"bestLevel"`
	// LevelScores is the best run score per level reached, keyed by the
	// 1-based level number.
	LevelScores map[int]int `yaml:"levelScores"`
}

// ScoreManager persists the high score through gdata, mirroring the
// settings storage. A nil gdata manager keeps scores in memory only.
type ScoreManager struct {
	gdataManager *gdata.Manager
	record       ScoreRecord
}

const (
	scoresObject   = "scores"
	scoresProperty = "best"
)

// NewScoreManager creates a score manager and loads the saved record.
func NewScoreManager(gdataManager *gdata.Manager) (*ScoreManager, error) {
	sm := &ScoreManager{gdataManager: gdataManager}
	if err := sm.Load(); err != nil {
		log.Printf("[ScoreManager] Warning: failed to load scores: %v (starting fresh)", err)
	}
	return sm, nil
}

// Load reads the persisted record, leaving zeroes when there is none.
func (sm *ScoreManager) Load() error {
	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(scoresObject, scoresProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(scoresObject, scoresProperty)
	if err != nil {
		return fmt.Errorf("failed to load scores: %w", err)
	}
	var rec ScoreRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("failed to unmarshal scores: %w", err)
	}
	sm.record = rec
	return nil
}

// Save writes the record to storage. With no storage it is a no-op.
func (sm *ScoreManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(sm.record)
	if err != nil {
		return fmt.Errorf("failed to marshal scores: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(scoresObject, scoresProperty, data); err != nil {
		return fmt.Errorf("failed to save scores: %w", err)
	}
	return nil
}

// HighScore returns the best recorded score.
func (sm *ScoreManager) HighScore() int {
	return sm.record.HighScore
}

// BestLevel returns the highest recorded level.
func (sm *ScoreManager) BestLevel() int {
	return sm.record.BestLevel
}

// LevelBest returns the best score recorded for runs that reached the
// given level, zero if none.
func (sm *ScoreManager) LevelBest(level int) int {
	return sm.record.LevelScores[level]
}

// Submit records a finished run and reports whether it set a new high
// score. The record is persisted immediately when it improves.
func (sm *ScoreManager) Submit(score, level int) bool {
	improved := false
	newBest := false
	if score > sm.record.HighScore {
		sm.record.HighScore = score
		improved = true
		newBest = true
	}
	if level > sm.record.BestLevel {
		sm.record.BestLevel = level
		improved = true
	}
	if score > sm.record.LevelScores[level] {
		if sm.record.LevelScores == nil {
			sm.record.LevelScores = make(map[int]int)
		}
		sm.record.LevelScores[level] = score
		improved = true
	}
	if improved {
		if err := sm.Save(); err != nil {
			log.Printf("[ScoreManager] Warning: failed to save scores: %v", err)
		}
	}
	return newBest
}
