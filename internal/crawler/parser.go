package crawler

import (
	"strings"

	"golang.org/x/net/html"
)

// flagMarker is the substring that identifies flag-bearing text, and
// flagPrefixLen is the length of the "FLAG: " prefix stripped from it.
const (
	flagMarker    = "FLAG"
	flagPrefixLen = 6
)

// ExtractFlag scans an HTML body for an <h3 class="secret_flag"> element
// whose text contains the flag marker. The returned flag is the element's
// trimmed text with the literal "FLAG: " prefix stripped.
//
// ok is false when no such element exists, when the marker is absent, or
// when the text is nothing but the prefix. A page without a flag is an
// ordinary outcome, not an error.
func ExtractFlag(body string) (flag string, ok bool) {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		// html.Parse recovers from almost anything; a hard failure
		// just means no flag here.
		return "", false
	}

	var walk func(*html.Node) string
	walk = func(n *html.Node) string {
		if n.Type == html.ElementNode && n.Data == "h3" && getAttr(n, "class") == "secret_flag" {
			text := strings.TrimSpace(nodeText(n))
			if strings.Contains(text, flagMarker) && len(text) > flagPrefixLen {
				return text[flagPrefixLen:]
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if found := walk(c); found != "" {
				return found
			}
		}
		return ""
	}

	flag = walk(doc)
	return flag, flag != ""
}

// ExtractLinks returns the href attribute of every anchor element in the
// body, in document order, exactly as written in the markup.
func ExtractLinks(body string) []string {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return nil
	}

	links := make([]string, 0)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if href := getAttr(n, "href"); href != "" {
				links = append(links, href)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return links
}

// nodeText concatenates all text nodes under n.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
