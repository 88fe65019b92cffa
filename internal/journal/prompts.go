package journal

import "math/rand"

// prompts nudge users who do not know what to write about.
var prompts = []string{
	"What made you smile today?",
	"What's one thing you learned?",
	"Describe today in one sentence.",
	"What are you grateful for right now?",
	"What was the best part of your day?",
	"What challenged you today?",
	"Who made a difference in your day?",
	"What's something you're looking forward to?",
	"How did you take care of yourself today?",
	"What would you tell your future self about today?",
}

// RandomPrompt returns a writing prompt.
func RandomPrompt() string {
	return prompts[rand.Intn(len(prompts))]
}
