// Package dataset builds labeled review tables from raw .review dumps and
// converts them into fine-tuning examples for the sentiment provider.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Review labels as stored in the dataset and the fine-tune examples.
// The dataset keeps the provider's lowercase training labels; the API
// surface capitalizes them.
const (
	LabelPositive = "positive"
	LabelNegative = "negative"
)

// Record is one labeled review. Label is empty for unlabeled reviews.
type Record struct {
	Category string
	Text     string
	Label    string
}

// Dedupe drops records whose exact text was already seen, keeping the first
// occurrence. Duplicate reviews would otherwise leak between train and test
// splits.
func Dedupe(records []Record) []Record {
	seen := make(map[string]struct{}, len(records))
	out := records[:0:0]
	for _, r := range records {
		if _, ok := seen[r.Text]; ok {
			continue
		}
		seen[r.Text] = struct{}{}
		out = append(out, r)
	}
	return out
}

// WriteCSV writes records to path with a category,text,label header.
// Unlabeled records get an empty label column.
func WriteCSV(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"category", "text", "label"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range records {
		if err := w.Write([]string{r.Category, r.Text, r.Label}); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// ReadCSV reads a labeled review table written by WriteCSV. The header must
// name a text column and a label column; category is optional.
func ReadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}

	cols := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		cols[name] = i
	}
	textIdx, ok := cols["text"]
	if !ok {
		return nil, fmt.Errorf("%s has no text column", path)
	}
	labelIdx, ok := cols["label"]
	if !ok {
		return nil, fmt.Errorf("%s has no label column", path)
	}
	categoryIdx, hasCategory := cols["category"]

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := Record{
			Text:  row[textIdx],
			Label: row[labelIdx],
		}
		if hasCategory {
			rec.Category = row[categoryIdx]
		}
		records = append(records, rec)
	}
	return records, nil
}
