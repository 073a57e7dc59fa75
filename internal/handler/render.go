package handler

import (
	"fmt"
	"strings"

	"wordtrainer/internal/domain"
)

const (
	mainMenuText = "🏠 Main menu\n\nChoose an action:"
	errorText    = "Something went wrong. Try again later."
)

// promptText renders the active prompt of the view
func promptText(view domain.ViewModel) string {
	if view.Prompt == nil {
		return "Add some words first"
	}
	return fmt.Sprintf("🎯 %s\n\n%s\n\nSend the translation.", view.Direction.Label(), view.Prompt.Text)
}

// sessionText renders the session pill: asked / total words plus ok and fail counts
func sessionText(session domain.Session, totalWords int) string {
	return fmt.Sprintf("%d / %d · ✅ %d · ❌ %d",
		session.AskedCount, totalWords, session.CorrectCount, session.IncorrectCount)
}

// outcomeText renders the result of a checked answer
func outcomeText(outcome *domain.Outcome) string {
	if outcome.Correct {
		return "✅ Correct!"
	}
	return "❌ No. Correct: " + outcome.Expected
}

// statsText renders the most failed words
func statsText(ranked []domain.WordPair, total int) string {
	var s strings.Builder

	s.WriteString(fmt.Sprintf("📊 Words: %d\n\n", total))
	if total == 0 {
		s.WriteString("—")
		return s.String()
	}

	s.WriteString("Hardest words:\n")
	for _, w := range ranked {
		s.WriteString(fmt.Sprintf("• %s → %s (fail: %d)\n", w.Native, w.Foreign, w.IncorrectCount))
	}
	return strings.TrimRight(s.String(), "\n")
}
