package lib

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FormatInfix renders expr with every binary node in parentheses. The output
// parses back to an equivalent tree.
func FormatInfix(expr Expression) string {
	var sb strings.Builder
	writeInfix(&sb, expr)
	return sb.String()
}

func writeInfix(sb *strings.Builder, expr Expression) {
	switch e := expr.(type) {
	case NumberLiteral:
		sb.WriteString(formatNumber(e.Value))
	case BinaryExpression:
		sb.WriteString("(")
		writeInfix(sb, e.Left)
		sb.WriteString(" ")
		sb.WriteString(e.Op.Symbol())
		sb.WriteString(" ")
		writeInfix(sb, e.Right)
		sb.WriteString(")")
	}
}

// formatNumber never uses exponent notation since the lexer has none.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteTree prints one node per line, children indented under their parent.
func WriteTree(w io.Writer, expr Expression) error {
	return writeTree(w, expr, 0)
}

func writeTree(w io.Writer, expr Expression, depth int) error {
	indent := strings.Repeat("  ", depth)
	switch e := expr.(type) {
	case NumberLiteral:
		_, err := fmt.Fprintf(w, "%sNUMBER %s\n", indent, formatNumber(e.Value))
		return err
	case BinaryExpression:
		if _, err := fmt.Fprintf(w, "%sBINARY %s\n", indent, e.Op.Symbol()); err != nil {
			return err
		}
		if err := writeTree(w, e.Left, depth+1); err != nil {
			return err
		}
		return writeTree(w, e.Right, depth+1)
	}
	return nil
}

type yamlNode struct {
	Kind  string    `yaml:"kind"`
	Value *float64  `yaml:"value,omitempty"`
	Op    string    `yaml:"op,omitempty"`
	Left  *yamlNode `yaml:"left,omitempty"`
	Right *yamlNode `yaml:"right,omitempty"`
}

func toYAMLNode(expr Expression) *yamlNode {
	switch e := expr.(type) {
	case NumberLiteral:
		value := e.Value
		return &yamlNode{Kind: "number", Value: &value}
	case BinaryExpression:
		return &yamlNode{
			Kind:  "binary",
			Op:    e.Op.String(),
			Left:  toYAMLNode(e.Left),
			Right: toYAMLNode(e.Right),
		}
	}
	return nil
}

func MarshalYAML(expr Expression) ([]byte, error) {
	return yaml.Marshal(toYAMLNode(expr))
}
