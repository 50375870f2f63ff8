// Package ingest turns report HTML files into indexed text chunks for the
// retrieval service.
package ingest

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var spaceRe = regexp.MustCompile(`[\s\x{a0}]+`)

// ParseHTML flattens a report HTML document into plain text: title first,
// then prose blocks, then tables with one row per line so that a figure
// stays on or near the line of its label.
func ParseHTML(raw []byte) (string, error) {
	node, err := html.Parse(bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	doc := goquery.NewDocumentFromNode(node)

	var b strings.Builder

	if title := collapseSpace(doc.Find("title").First().Text()); title != "" {
		b.WriteString(title)
		b.WriteString("\n\n")
	}

	doc.Find("h1, h2, h3, p, li").Each(func(i int, s *goquery.Selection) {
		if text := collapseSpace(s.Text()); text != "" {
			b.WriteString(text)
			b.WriteString("\n")
		}
	})

	doc.Find("table").Each(func(i int, table *goquery.Selection) {
		b.WriteString("\n")
		table.Find("tr").Each(func(i int, row *goquery.Selection) {
			var cells []string
			row.Children().Each(func(i int, cell *goquery.Selection) {
				tag := goquery.NodeName(cell)
				if strings.EqualFold(tag, "td") || strings.EqualFold(tag, "th") {
					cells = append(cells, collapseSpace(cell.Text()))
				}
			})
			if len(cells) > 0 {
				b.WriteString(strings.Join(cells, " "))
				b.WriteString("\n")
			}
		})
	})

	return b.String(), nil
}

func collapseSpace(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}
