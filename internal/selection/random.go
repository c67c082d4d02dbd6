// Package selection holds the random-quiz pick and question subsampling used
// by the random-quiz endpoint.
package selection

import (
	"math/rand"
	"sync"
	"time"

	"quiz-platform/internal/models"
)

// Picker performs uniform random selection. One Picker is shared by every
// request handler, so the underlying source is guarded by a mutex.
type Picker struct {
	mu   sync.Mutex
	rand *rand.Rand
}

func NewPicker() *Picker {
	return &Picker{rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededPicker fixes the source, for deterministic tests.
func NewSeededPicker(seed int64) *Picker {
	return &Picker{rand: rand.New(rand.NewSource(seed))}
}

// PickIndex returns a uniform index in [0, n). n must be positive.
func (p *Picker) PickIndex(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rand.Intn(n)
}

// SampleQuestions returns the question list unchanged when it fits the
// limit, otherwise a uniform random subset of exactly limit questions in
// shuffled order.
func (p *Picker) SampleQuestions(questions []models.Question, limit int) []models.Question {
	if limit <= 0 {
		limit = models.DefaultRandomLimit
	}
	if len(questions) <= limit {
		return questions
	}
	shuffled := make([]models.Question, len(questions))
	copy(shuffled, questions)
	p.mu.Lock()
	p.rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	p.mu.Unlock()
	return shuffled[:limit]
}
