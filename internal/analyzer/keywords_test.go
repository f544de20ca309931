package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindKeywords(t *testing.T) {
	text := "Go and Python. I love go! Golang, c++ and C#; asp.net, node.js"
	terms := []string{"go", "python", "golang", "c++", "c#", ".net", "node", "node.js", "java"}

	hits := FindKeywords(text, terms)

	assert.Equal(t, []Hit{
		{Term: "go", Count: 2},
		{Term: "python", Count: 1},
		{Term: "golang", Count: 1},
		{Term: "c++", Count: 1},
		{Term: "c#", Count: 1},
		{Term: "node", Count: 1},
		{Term: "node.js", Count: 1},
	}, hits)
}

func TestFindKeywords_NoHits(t *testing.T) {
	assert.Empty(t, FindKeywords("nothing relevant here", []string{"rust", "kotlin"}))
	assert.Empty(t, FindKeywords("", []string{"rust"}))
}

func TestCountTerm(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		term  string
		count int
	}{
		{name: "repeated", text: "go go go", term: "go", count: 3},
		{name: "inside word", text: "google golang ago", term: "go", count: 0},
		{name: "punctuation around", text: "(go), go. go!", term: "go", count: 3},
		{name: "phrase", text: "machine learning and machine-learning", term: "machine learning", count: 1},
		{name: "symbol suffix", text: "c++ and c++17", term: "c++", count: 1},
		{name: "dotted prefix", text: ".net and asp.net", term: ".net", count: 1},
		{name: "unicode neighbours", text: "égo go", term: "go", count: 1},
		{name: "empty term", text: "anything", term: "", count: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.count, countTerm(tt.text, tt.term))
		})
	}
}
