package chatbot

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

//go:embed corpus.yaml
var defaultCorpusYAML []byte

var (
	ErrEmptyDefault  = errors.New("corpus default reply is empty")
	ErrEmptyQuestion = errors.New("corpus entry has an empty question")
)

// Entry pairs a trigger question with its canned answer.
type Entry struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// Corpus is the ordered question table plus the fallback reply.
type Corpus struct {
	Default string  `yaml:"default" json:"default"`
	Entries []Entry `yaml:"entries" json:"entries"`
}

// DefaultCorpus returns the built-in question table.
func DefaultCorpus() Corpus {
	c, err := ParseCorpus(defaultCorpusYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded chatbot corpus: %v", err))
	}
	return c
}

// LoadCorpus reads a YAML corpus from disk.
func LoadCorpus(path string) (Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Corpus{}, fmt.Errorf("read corpus %s: %w", path, err)
	}
	c, err := ParseCorpus(data)
	if err != nil {
		return Corpus{}, fmt.Errorf("corpus %s: %w", path, err)
	}
	return c, nil
}

// ParseCorpus decodes and validates a YAML corpus.
func ParseCorpus(data []byte) (Corpus, error) {
	var c Corpus
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return Corpus{}, fmt.Errorf("decode corpus: %w", err)
	}
	if strings.TrimSpace(c.Default) == "" {
		return Corpus{}, ErrEmptyDefault
	}
	for i, e := range c.Entries {
		if strings.TrimSpace(e.Question) == "" {
			return Corpus{}, fmt.Errorf("entry %d: %w", i, ErrEmptyQuestion)
		}
	}
	return c, nil
}
