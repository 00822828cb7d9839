package contest

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Sample is one sample test from a problem statement.
type Sample struct {
	Input  string
	Output string
}

// ExtractSamples pulls the sample tests out of a Codeforces problem page.
// The statement markup wraps each sample in <div class="input"><pre> and
// <div class="output"><pre>; inside the pre, <br> and nested divs separate
// lines.
func ExtractSamples(r io.Reader) ([]Sample, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var inputs, outputs []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "div" {
			switch {
			case hasClass(n, "input"):
				if pre := findPre(n); pre != nil {
					inputs = append(inputs, preText(pre))
				}
			case hasClass(n, "output"):
				if pre := findPre(n); pre != nil {
					outputs = append(outputs, preText(pre))
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	n := len(inputs)
	if len(outputs) < n {
		n = len(outputs)
	}
	samples := make([]Sample, 0, n)
	for i := 0; i < n; i++ {
		samples = append(samples, Sample{Input: inputs[i], Output: outputs[i]})
	}
	return samples, nil
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func findPre(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "pre" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if pre := findPre(c); pre != nil {
			return pre
		}
	}
	return nil
}

// preText flattens a <pre> node to plain text. <br> and block-level children
// become newlines; lines are right-trimmed and surrounding blank lines are
// dropped.
func preText(n *html.Node) string {
	var b strings.Builder
	var emit func(n *html.Node)
	emit = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			b.WriteString(n.Data)
		case n.Type == html.ElementNode && n.Data == "br":
			b.WriteByte('\n')
		case n.Type == html.ElementNode && n.Data == "div":
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				emit(c)
			}
			b.WriteByte('\n')
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			emit(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		emit(c)
	}

	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	text := strings.Join(lines, "\n")
	return strings.Trim(text, "\n")
}
