// Package msgtemplate renders shop-authored order messages.
//
// Two constructs are recognised:
//
//	%%foreach products: <segment>%%   repeated once per product, joined with "\n";
//	                                  $product and $quantity are replaced inside the segment
//	{{name}}                          replaced by data.Vars[name], empty when unknown
//
// The template is tokenized once. Substituted values are written as plain
// text and never scanned again, so product titles cannot inject markers.
package msgtemplate

import (
	"strconv"
	"strings"

	"bazaar/internal/errors"
)

// ErrMalformedTemplate is returned for an unterminated or unknown foreach block.
var ErrMalformedTemplate = errors.New("malformed message template")

// DefaultTemplate is assigned to shops that do not provide their own.
const DefaultTemplate = "Hello / السلام عليكم\n%%foreach products: $product: $quantity%%\nTotal / الاجمالي: {{total}} {{currency}}"

const (
	foreachOpen   = "%%foreach"
	blockClose    = "%%"
	varOpen       = "{{"
	varClose      = "}}"
	productToken  = "$product"
	quantityToken = "$quantity"

	collectionProducts = "products"
)

// Item is one repeated entry.
type Item struct {
	Title    string
	Quantity int
}

// Data is the render input.
type Data struct {
	Products []Item
	Vars     map[string]string
}

type nodeKind int

const (
	nodeText nodeKind = iota
	nodeVar
	nodeProduct
	nodeQuantity
	nodeForeach
)

type node struct {
	kind     nodeKind
	text     string // literal text or variable name
	children []node // foreach segment
}

// Render expands template against data.
func Render(template string, data Data) (string, error) {
	nodes, err := parse(template)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	out.Grow(len(template))
	writeNodes(&out, nodes, data, nil)

	return out.String(), nil
}

// Validate reports whether template can be rendered.
func Validate(template string) error {
	_, err := parse(template)

	return err
}

func writeNodes(out *strings.Builder, nodes []node, data Data, item *Item) {
	for _, n := range nodes {
		switch n.kind {
		case nodeText:
			out.WriteString(n.text)
		case nodeVar:
			out.WriteString(data.Vars[n.text])
		case nodeProduct:
			if item != nil {
				out.WriteString(item.Title)
			} else {
				out.WriteString(productToken)
			}
		case nodeQuantity:
			if item != nil {
				out.WriteString(strconv.Itoa(item.Quantity))
			} else {
				out.WriteString(quantityToken)
			}
		case nodeForeach:
			for i := range data.Products {
				if i > 0 {
					out.WriteByte('\n')
				}
				writeNodes(out, n.children, data, &data.Products[i])
			}
		}
	}
}

func parse(template string) ([]node, error) {
	var nodes []node
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			nodes = append(nodes, node{kind: nodeText, text: text.String()})
			text.Reset()
		}
	}

	for i := 0; i < len(template); {
		rest := template[i:]

		switch {
		case strings.HasPrefix(rest, foreachOpen):
			block, consumed, err := parseForeach(rest)
			if err != nil {
				return nil, err
			}
			flush()
			nodes = append(nodes, block)
			i += consumed

		case strings.HasPrefix(rest, varOpen):
			name, consumed, ok := parseVar(rest)
			if !ok {
				text.WriteString(varOpen)
				i += len(varOpen)

				continue
			}
			flush()
			nodes = append(nodes, node{kind: nodeVar, text: name})
			i += consumed

		default:
			text.WriteByte(template[i])
			i++
		}
	}
	flush()

	return nodes, nil
}

// parseForeach parses "%%foreach <collection>:<segment>%%" at the start of s.
func parseForeach(s string) (node, int, error) {
	header := s[len(foreachOpen):]

	colon := strings.IndexByte(header, ':')
	if colon < 0 {
		return node{}, 0, errors.Wrap(ErrMalformedTemplate, "foreach without collection")
	}
	collection := strings.TrimSpace(header[:colon])
	if collection != collectionProducts {
		return node{}, 0, errors.Wrapf(ErrMalformedTemplate, "unknown collection %q", collection)
	}

	body := header[colon+1:]
	end := strings.Index(body, blockClose)
	if end < 0 {
		return node{}, 0, errors.Wrap(ErrMalformedTemplate, "unterminated foreach block")
	}

	segment := strings.TrimPrefix(body[:end], " ")
	consumed := len(foreachOpen) + colon + 1 + end + len(blockClose)

	return node{kind: nodeForeach, children: parseSegment(segment)}, consumed, nil
}

// parseSegment splits a foreach segment into text, item placeholders and variables.
func parseSegment(segment string) []node {
	var nodes []node
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			nodes = append(nodes, node{kind: nodeText, text: text.String()})
			text.Reset()
		}
	}

	for i := 0; i < len(segment); {
		rest := segment[i:]

		switch {
		case strings.HasPrefix(rest, quantityToken):
			flush()
			nodes = append(nodes, node{kind: nodeQuantity})
			i += len(quantityToken)

		case strings.HasPrefix(rest, productToken):
			flush()
			nodes = append(nodes, node{kind: nodeProduct})
			i += len(productToken)

		case strings.HasPrefix(rest, varOpen):
			name, consumed, ok := parseVar(rest)
			if !ok {
				text.WriteString(varOpen)
				i += len(varOpen)

				continue
			}
			flush()
			nodes = append(nodes, node{kind: nodeVar, text: name})
			i += consumed

		default:
			text.WriteByte(segment[i])
			i++
		}
	}
	flush()

	return nodes
}

// parseVar parses "{{ name }}" at the start of s. ok is false when the
// braces are not closed, in which case the text is kept literally.
func parseVar(s string) (name string, consumed int, ok bool) {
	end := strings.Index(s[len(varOpen):], varClose)
	if end < 0 {
		return "", 0, false
	}

	name = strings.TrimSpace(s[len(varOpen) : len(varOpen)+end])

	return name, len(varOpen) + end + len(varClose), true
}
