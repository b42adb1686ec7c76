package render

import (
	"fmt"
	"io"
	"strings"
)

// WriteText prints the tree as an indented outline. Used by the CLI and
// handy when diagnosing agent payloads; not a rendering contract.
func WriteText(w io.Writer, node *Node) error {
	return writeText(w, node, 0)
}

func writeText(w io.Writer, node *Node, depth int) error {
	if node == nil {
		return nil
	}

	indent := strings.Repeat("  ", depth)
	label := string(node.Primitive)
	if node.ComponentID != "" {
		label += "#" + node.ComponentID
	}

	var props []string
	for _, name := range []string{"status", "message", "kind", "level", "text", "label", "value", "checked", "placeholder"} {
		if v, ok := node.Props[name]; ok {
			props = append(props, fmt.Sprintf("%s=%v", name, v))
		}
	}

	line := indent + label
	if len(props) > 0 {
		line += " [" + strings.Join(props, " ") + "]"
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}

	for _, child := range node.Children {
		if err := writeText(w, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Text renders the tree outline to a string.
func Text(node *Node) string {
	var sb strings.Builder
	_ = WriteText(&sb, node)
	return sb.String()
}
