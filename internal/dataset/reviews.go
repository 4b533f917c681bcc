package dataset

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ExtractReviews pulls review texts out of one .review file. The raw dumps
// are HTML-ish: usually a sequence of <review> elements, each holding a
// <unique_id> shaped like "0312355645:horrible_book,_horrible.:mark_gospri"
// where the middle segment is the actual comment. Files without <review>
// tags contribute their whole visible text. Duplicates within the file are
// dropped.
func ExtractReviews(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	tags := findElements(doc, "review")

	var reviews []string
	for _, tag := range tags {
		var text string
		if uid := firstElement(tag, "unique_id"); uid != nil && strings.TrimSpace(nodeText(uid)) != "" {
			text = commentFromUniqueID(normalizeSpaces(nodeText(uid)))
		} else {
			text = normalizeSpaces(nodeText(tag))
		}
		if len(text) >= 2 {
			reviews = append(reviews, text)
		}
	}

	if len(tags) == 0 {
		if text := normalizeSpaces(nodeText(doc)); text != "" {
			reviews = append(reviews, commentFromUniqueID(text))
		}
	}

	seen := make(map[string]struct{}, len(reviews))
	uniq := reviews[:0:0]
	for _, rv := range reviews {
		if _, ok := seen[rv]; ok {
			continue
		}
		seen[rv] = struct{}{}
		uniq = append(uniq, rv)
	}
	return uniq, nil
}

// commentFromUniqueID keeps the middle piece of an id:comment:author line
// and maps the underscores and commas the dumps use as separators to spaces.
func commentFromUniqueID(text string) string {
	parts := strings.Split(text, ":")
	comment := text
	if len(parts) >= 3 {
		comment = parts[1]
	}
	comment = strings.ReplaceAll(comment, "_", " ")
	comment = strings.ReplaceAll(comment, ",", " ")
	return normalizeSpaces(comment)
}

func normalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func findElements(n *html.Node, name string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == name {
			out = append(out, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func firstElement(n *html.Node, name string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == name {
			return c
		}
		if found := firstElement(c, name); found != nil {
			return found
		}
	}
	return nil
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
