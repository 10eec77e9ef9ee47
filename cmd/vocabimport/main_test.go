package main

import "testing"

func TestBuildWords(t *testing.T) {
	rows := [][]string{
		{"word", "meaning", "pronunciation", "examples"},
		{"apple", "苹果", "/ˈæp.əl/", "I eat an apple.; An apple a day."},
		{"book", "书"},
		{"", "missing word"},
		{"missing meaning", ""},
	}

	words, errs := buildWords(rows, true)
	if len(words) != 2 {
		t.Fatalf("Got %d words, want 2", len(words))
	}
	if len(errs) != 2 {
		t.Errorf("Got %d row errors, want 2", len(errs))
	}

	apple := words[0]
	if apple.ID != 1 || apple.Text != "apple" || apple.Meaning != "苹果" {
		t.Errorf("First word = %+v", apple)
	}
	if len(apple.Examples) != 2 {
		t.Errorf("Examples = %v, want 2 split on semicolon", apple.Examples)
	}

	if words[1].ID != 2 || words[1].Pronunciation != "" {
		t.Errorf("Second word = %+v", words[1])
	}
}

func TestBuildWordsKeepsHeaderWhenAsked(t *testing.T) {
	rows := [][]string{{"cat", "猫"}}
	words, errs := buildWords(rows, false)
	if len(words) != 1 || len(errs) != 0 {
		t.Errorf("Got %d words and %d errors, want 1 and 0", len(words), len(errs))
	}
}
