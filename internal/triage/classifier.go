// Package triage decides whether a chat message is a greeting, a medical
// question, or neither, and suggests over-the-counter remedies for common
// symptoms.
//
// Matching is plain case-insensitive substring search with no word
// boundaries, so "coldplay" counts as "cold" and "this" counts as "hi".
package triage

import "strings"

var greetings = []string{"hello", "hi", "hey", "greetings", "what's up", "howdy"}

var medicalKeywords = []string{
	"headache", "fever", "cough", "cold", "pain", "sore", "symptom",
	"diagnose", "medical", "doctor", "illness", "health", "infection",
	"nausea", "vomiting", "fatigue", "dizziness", "chills", "allergy",
	"rash", "stomach", "throat", "muscle", "joint", "treatment", "remedy",
}

func IsGreeting(text string) bool {
	return containsAny(text, greetings)
}

func IsMedicalQuery(text string) bool {
	return containsAny(text, medicalKeywords)
}

func containsAny(text string, words []string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
