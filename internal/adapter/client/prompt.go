package client

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"

	"github.com/Ipso-ferro/backEnd-nlpSentimentApp/internal/dataset"
	"github.com/Ipso-ferro/backEnd-nlpSentimentApp/internal/domain/service"
)

const systemPrompt = "You are a sentiment classifier for short English product reviews. " +
	`Return ONLY valid JSON: {"sentiment":"positive|negative","confidence":<number between 0 and 1>}.`

// DefaultShotsPerClass is how many labeled examples of each polarity a
// few-shot request carries.
const DefaultShotsPerClass = 3

// userPrompt builds the request text. In few-shot mode a freshly sampled
// block of labeled examples precedes the review; in fine-tuned mode the
// model already knows the task and gets the training-time instruction.
func userPrompt(fewShot bool, shots []dataset.Record, text string) string {
	if !fewShot || len(shots) == 0 {
		return "Classify the sentiment: " + text
	}

	var sb strings.Builder
	sb.WriteString("Here are labeled examples:\n")
	for _, shot := range sampleShots(shots, DefaultShotsPerClass) {
		fmt.Fprintf(&sb, "text: %s\nlabel: %s\n\n", shot.Text, shot.Label)
	}
	sb.WriteString("Now classify this text with the same labels.\n")
	fmt.Fprintf(&sb, "text: %q", text)
	return sb.String()
}

// sampleShots picks up to perClass positive and perClass negative examples
// and shuffles the combined block so label order carries no signal.
func sampleShots(rows []dataset.Record, perClass int) []dataset.Record {
	var positives, negatives []dataset.Record
	for _, r := range rows {
		switch r.Label {
		case dataset.LabelPositive:
			positives = append(positives, r)
		case dataset.LabelNegative:
			negatives = append(negatives, r)
		}
	}

	rand.Shuffle(len(positives), func(i, j int) { positives[i], positives[j] = positives[j], positives[i] })
	rand.Shuffle(len(negatives), func(i, j int) { negatives[i], negatives[j] = negatives[j], negatives[i] })

	if len(positives) > perClass {
		positives = positives[:perClass]
	}
	if len(negatives) > perClass {
		negatives = negatives[:perClass]
	}

	shots := append(positives, negatives...)
	rand.Shuffle(len(shots), func(i, j int) { shots[i], shots[j] = shots[j], shots[i] })
	return shots
}

// cleanJSONResponse strips markdown fences and surrounding prose that
// models occasionally wrap around the JSON payload.
func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}

// parseResult converts the model's JSON payload into a ClassificationResult
// with a canonical capitalized label and a confidence clamped to [0,1].
func parseResult(content, model string) (*service.ClassificationResult, error) {
	var payload struct {
		Sentiment  string  `json:"sentiment"`
		Confidence float64 `json:"confidence"`
	}
	cleaned := cleanJSONResponse(content)
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w, content: %s", err, content)
	}

	var sentiment string
	switch strings.ToLower(strings.TrimSpace(payload.Sentiment)) {
	case "positive":
		sentiment = service.SentimentPositive
	case "negative":
		sentiment = service.SentimentNegative
	default:
		return nil, fmt.Errorf("unexpected sentiment label %q", payload.Sentiment)
	}

	confidence := payload.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	return &service.ClassificationResult{
		Sentiment:  sentiment,
		Confidence: confidence,
		Model:      model,
	}, nil
}
