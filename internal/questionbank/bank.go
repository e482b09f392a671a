// Package questionbank holds the fixed relationship question bank the
// safe-love flow samples from. The bank is static; sampling is the
// only operation.
package questionbank

import (
	"fmt"
	"math/rand"
)

// Question matches the session question wire shape. Sampled entries
// get positional ids (q0, q1, ...) the way the creation UI assigns
// them.
type Question struct {
	ID       string `json:"id"`
	Question string `json:"question"`
}

// DefaultSampleSize is used when the caller does not ask for a count.
const DefaultSampleSize = 10

// Sample returns n distinct random questions from the bank, capped at
// the bank size. n <= 0 falls back to DefaultSampleSize.
func Sample(n int) []Question {
	if n <= 0 {
		n = DefaultSampleSize
	}
	if n > len(bank) {
		n = len(bank)
	}

	picks := rand.Perm(len(bank))[:n]
	out := make([]Question, n)
	for i, idx := range picks {
		out[i] = Question{
			ID:       fmt.Sprintf("q%d", i),
			Question: bank[idx],
		}
	}
	return out
}

// Size returns the number of questions in the bank.
func Size() int { return len(bank) }

// Contains reports whether text is a bank entry.
func Contains(text string) bool {
	for _, q := range bank {
		if q == text {
			return true
		}
	}
	return false
}

var bank = []string{
	"Do you feel safe expressing disagreement with me?",
	"Do you feel heard when we argue?",
	"Can you tell me when something I do hurts you?",
	"Do you trust me with your biggest insecurity?",
	"Do you feel like you can be fully yourself around me?",
	"Do you ever feel judged when you share your feelings with me?",
	"Do you feel comfortable crying in front of me?",
	"Do you believe I respect your boundaries?",
	"Do you feel pressure to change who you are for me?",
	"Do you trust me when we are apart?",
	"Do you feel emotionally supported after a bad day?",
	"Do you think we handle money disagreements fairly?",
	"Do you feel like your opinions carry equal weight in our decisions?",
	"Do you feel safe bringing up things from my past?",
	"Do you ever hide parts of your day from me to avoid conflict?",
	"Do you feel appreciated for the small things you do?",
	"Do you think I apologize sincerely when I am wrong?",
	"Do you feel comfortable saying no to me?",
	"Do you believe we fight fair?",
	"Do you feel like I keep your secrets?",
	"Do you trust me around your friends?",
	"Do you feel free to spend time alone without guilt?",
	"Do you think I listen more than I defend myself?",
	"Do you feel safe telling me about your fears for our future?",
	"Do you believe I would support your biggest dream?",
	"Do you ever feel smaller after a conversation with me?",
	"Do you feel like we recover well after arguments?",
	"Do you trust my intentions even when I make mistakes?",
	"Do you feel comfortable being silent together?",
	"Do you think we give each other enough space?",
	"Do you feel safe sharing your phone with me, and I with you?",
	"Do you believe jealousy ever controls my behavior?",
	"Do you feel like you can bring up our relationship problems first?",
	"Do you think I notice when you are not okay?",
	"Do you feel respected when we disagree in front of others?",
	"Do you trust me to speak kindly about you when you are not around?",
	"Do you feel like your family is welcome in my life?",
	"Do you believe we share responsibilities fairly?",
	"Do you feel safe being vulnerable right after a fight?",
	"Do you think I remember the things that matter to you?",
	"Do you feel like I choose you in difficult moments?",
	"Do you trust me with your passwords, even if we never share them?",
	"Do you feel comfortable telling me when you need help?",
	"Do you believe I take your health concerns seriously?",
	"Do you feel like we laugh enough together?",
	"Do you think I would tell you an uncomfortable truth gently?",
	"Do you feel safe growing and changing within this relationship?",
	"Do you believe your independence is safe with me?",
	"Do you feel like our affection is consistent, not conditional?",
	"Do you trust me to stay calm when you are angry?",
	"Do you feel comfortable discussing what intimacy means to you?",
	"Do you think we are honest about what we need from each other?",
	"Do you feel safe imagining a future with me?",
	"Do you believe I would respect your decision if you needed time apart?",
	"Do you feel like gratitude flows both ways between us?",
	"Do you trust that my love does not keep score?",
	"Do you feel safe telling me this relationship needs work?",
	"Do you believe we protect each other's dignity during conflict?",
	"Do you feel like home when you are with me?",
	"Do you trust us?",
}
