package services

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// strippedText は要素配下のテキストノードをそれぞれトリムし、空のものを除いて連結します。
// セル内の要素間の空白や改行はこれで取り除かれます。
func strippedText(sel *goquery.Selection) string {
	var sb strings.Builder
	for _, node := range sel.Nodes {
		appendStrippedText(&sb, node)
	}
	return sb.String()
}

func appendStrippedText(sb *strings.Builder, node *html.Node) {
	switch node.Type {
	case html.TextNode:
		if text := strings.TrimSpace(node.Data); text != "" {
			sb.WriteString(text)
		}
		return
	case html.CommentNode:
		return
	case html.ElementNode:
		if node.Data == "script" || node.Data == "style" {
			return
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		appendStrippedText(sb, child)
	}
}
