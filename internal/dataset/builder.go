package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMinWords drops near-empty reviews ("ok", "bad") that carry no
// signal for training.
const DefaultMinWords = 2

var labeledFiles = []struct {
	name  string
	label string
}{
	{"negative.review", LabelNegative},
	{"positive.review", LabelPositive},
}

// Both spellings occur in the raw corpus.
var unlabeledFiles = []string{"unlabaled.review", "unlabeled.review"}

// Builder walks a directory of per-category review dumps:
//
//	data/
//	  books/
//	    positive.review
//	    negative.review
//	    unlabeled.review
//	  electronics/
//	    ...
//
// and collects deduplicated (category, text, label) records.
type Builder struct {
	baseDir  string
	minWords int
}

// NewBuilder creates a builder rooted at baseDir. minWords <= 0 selects
// DefaultMinWords.
func NewBuilder(baseDir string, minWords int) *Builder {
	if minWords <= 0 {
		minWords = DefaultMinWords
	}
	return &Builder{baseDir: baseDir, minWords: minWords}
}

// Build reads every category directory and returns labeled and unlabeled
// records, each deduplicated by exact text. The result is deterministic for
// identical directory contents.
func (b *Builder) Build() (labeled, unlabeled []Record, err error) {
	entries, err := os.ReadDir(b.baseDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read base dir: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		category := entry.Name()
		catDir := filepath.Join(b.baseDir, category)

		for _, lf := range labeledFiles {
			reviews, err := b.extractFile(filepath.Join(catDir, lf.name))
			if err != nil {
				return nil, nil, err
			}
			for _, text := range reviews {
				labeled = append(labeled, Record{Category: category, Text: text, Label: lf.label})
			}
		}

		for _, name := range unlabeledFiles {
			reviews, err := b.extractFile(filepath.Join(catDir, name))
			if err != nil {
				return nil, nil, err
			}
			for _, text := range reviews {
				unlabeled = append(unlabeled, Record{Category: category, Text: text})
			}
		}
	}

	return Dedupe(labeled), Dedupe(unlabeled), nil
}

// extractFile returns the reviews of one dump file that meet the minimum
// word count. A missing file is not an error; categories rarely have all
// three dumps.
func (b *Builder) extractFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reviews, err := ExtractReviews(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	kept := reviews[:0]
	for _, r := range reviews {
		if len(strings.Fields(r)) >= b.minWords {
			kept = append(kept, r)
		}
	}
	return kept, nil
}
