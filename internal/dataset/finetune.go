package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/Ipso-ferro/backEnd-nlpSentimentApp/internal/domain/normalize"
)

// FineTuneSystemPrompt is the system message baked into every training
// example. Serving with a fine-tuned model must reuse the exact string.
const FineTuneSystemPrompt = "You are a sentiment classifier. Reply with exactly 'positive' or 'negative'."

// MinTokens rejects cleaned reviews too short to classify.
const MinTokens = 5

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatExample struct {
	Messages []chatMessage `json:"messages"`
}

// CleanRecords normalizes record texts and keeps only rows usable for
// fine-tuning: a binary label, at least MinTokens cleaned tokens, and a
// cleaned text not seen before.
func CleanRecords(records []Record) []Record {
	seen := make(map[string]struct{}, len(records))
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Label != LabelPositive && r.Label != LabelNegative {
			continue
		}
		tokens := normalize.Tokens(r.Text)
		if len(tokens) < MinTokens {
			continue
		}
		cleaned := normalize.Clean(r.Text)
		if _, ok := seen[cleaned]; ok {
			continue
		}
		seen[cleaned] = struct{}{}
		out = append(out, Record{Category: r.Category, Text: cleaned, Label: r.Label})
	}
	return out
}

// Split shuffles records with the given seed and cuts them 80/10/10 into
// train, validation, and test sets. The same seed over the same records
// yields the same splits.
func Split(records []Record, seed int64) (train, val, test []Record) {
	shuffled := make([]Record, len(records))
	copy(shuffled, records)

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	n := len(shuffled)
	trainEnd := int(0.8 * float64(n))
	valEnd := int(0.9 * float64(n))
	return shuffled[:trainEnd], shuffled[trainEnd:valEnd], shuffled[valEnd:]
}

// WriteJSONL writes one chat-format training example per line.
func WriteJSONL(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	for _, r := range records {
		example := chatExample{
			Messages: []chatMessage{
				{Role: "system", Content: FineTuneSystemPrompt},
				{Role: "user", Content: "Classify the sentiment: " + r.Text},
				{Role: "assistant", Content: r.Label},
			},
		}
		if err := enc.Encode(example); err != nil {
			return fmt.Errorf("failed to encode example: %w", err)
		}
	}
	return nil
}

// WriteSplits writes train.jsonl, val.jsonl, and test.jsonl under outDir,
// creating it if needed.
func WriteSplits(outDir string, train, val, test []Record) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", outDir, err)
	}

	splits := map[string][]Record{
		"train.jsonl": train,
		"val.jsonl":   val,
		"test.jsonl":  test,
	}
	for name, part := range splits {
		f, err := os.Create(filepath.Join(outDir, name))
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", name, err)
		}
		if err := WriteJSONL(f, part); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to close %s: %w", name, err)
		}
	}
	return nil
}
