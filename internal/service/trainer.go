package service

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"wordtrainer/internal/domain"
)

// TrainerService picks prompts and scores answers.
// It has three states: no prompt, prompt not yet answered, prompt answered.
type TrainerService struct {
	words    *WordService
	rng      *rand.Rand
	logger   *zap.Logger
	session  domain.Session
	prompt   *domain.Prompt
	answered bool
}

// NewTrainerService creates a new trainer drawing prompts from rng
func NewTrainerService(words *WordService, rng *rand.Rand, logger *zap.Logger) *TrainerService {
	return &TrainerService{
		words:  words,
		rng:    rng,
		logger: logger,
	}
}

// SelectPrompt draws a uniformly random word (with replacement).
// Returns nil when the store is empty.
func (s *TrainerService) SelectPrompt(d domain.Direction) *domain.Prompt {
	s.answered = false

	n := s.words.Count()
	if n == 0 {
		s.prompt = nil
		return nil
	}

	index := s.rng.Intn(n)
	word, _ := s.words.Get(index)
	s.prompt = &domain.Prompt{
		Index:     index,
		Text:      word.PromptText(d),
		Direction: d,
	}

	p := *s.prompt
	return &p
}

// CheckAnswer scores raw against the active prompt.
// It returns a nil outcome without touching counters when there is no
// prompt or the input is blank. Repeated checks of one prompt all count.
func (s *TrainerService) CheckAnswer(raw string, d domain.Direction) (*domain.Outcome, error) {
	if s.prompt == nil {
		return nil, nil
	}
	input := domain.Normalize(raw)
	if input == "" {
		return nil, nil
	}

	word, err := s.words.Get(s.prompt.Index)
	if err != nil {
		return nil, err
	}

	field := word.AnswerField(d)
	correct := domain.MatchesAnswer(input, field)

	if _, err := s.words.RecordAnswer(s.prompt.Index, correct); err != nil {
		return nil, fmt.Errorf("failed to record answer: %w", err)
	}

	s.session.Record(correct)
	s.answered = true

	s.logger.Debug("Answer checked",
		zap.Int("index", s.prompt.Index),
		zap.String("direction", string(d)),
		zap.Bool("correct", correct),
		zap.Int("asked", s.session.AskedCount),
	)

	return &domain.Outcome{
		Correct:  correct,
		Expected: domain.CanonicalAnswer(field),
		Accepted: field,
	}, nil
}

// Prompt returns a copy of the active prompt, or nil
func (s *TrainerService) Prompt() *domain.Prompt {
	if s.prompt == nil {
		return nil
	}
	p := *s.prompt
	return &p
}

// Answered reports whether the active prompt has been checked at least once
func (s *TrainerService) Answered() bool {
	return s.answered
}

// Session returns the current session counters
func (s *TrainerService) Session() domain.Session {
	return s.session
}

// ClearPrompt drops the active prompt, e.g. after the store was replaced
func (s *TrainerService) ClearPrompt() {
	s.prompt = nil
	s.answered = false
}

// ResetSession zeroes the session counters
func (s *TrainerService) ResetSession() {
	s.session.Reset()
}
