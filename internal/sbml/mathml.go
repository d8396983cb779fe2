package sbml

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/biomodel/reactor/internal/modelerr"
)

// mathNode is a generic content-MathML element: a tag name, accumulated
// character data (used by <cn>/<ci> leaves), and child elements (used by
// <apply>). encoding/xml has no direct support for "one of several
// possible child elements", so math trees are decoded through this
// catch-all node and walked by toInfix instead of a fixed struct schema.
type mathNode struct {
	Tag      string
	Text     string
	Children []mathNode
}

func (n *mathNode) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	n.Tag = start.Name.Local
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var child mathNode
			if err := child.UnmarshalXML(d, t); err != nil {
				return err
			}
			n.Children = append(n.Children, child)
		case xml.CharData:
			n.Text += string(t)
		case xml.EndElement:
			return nil
		}
	}
}

// toInfix stringifies a content-MathML subtree into the infix rate
// grammar exprparser accepts, covering the operator and function subset
// spec.md §4.8 expects a kinetic law to use.
func toInfix(n mathNode) (string, error) {
	switch n.Tag {
	case "math":
		if len(n.Children) != 1 {
			return "", modelerr.New(modelerr.MalformedReaction, "<math> must have exactly one child")
		}
		return toInfix(n.Children[0])
	case "cn":
		return strings.TrimSpace(n.Text), nil
	case "ci":
		return strings.TrimSpace(n.Text), nil
	case "apply":
		return applyToInfix(n)
	default:
		return "", modelerr.Newf(modelerr.MalformedReaction, "unsupported MathML element <%s>", n.Tag)
	}
}

func applyToInfix(n mathNode) (string, error) {
	if len(n.Children) == 0 {
		return "", modelerr.New(modelerr.MalformedReaction, "<apply> has no operator")
	}
	op := n.Children[0].Tag
	operands := n.Children[1:]

	operandStrs := make([]string, len(operands))
	for i, o := range operands {
		s, err := toInfix(o)
		if err != nil {
			return "", err
		}
		operandStrs[i] = s
	}

	switch op {
	case "plus":
		return "(" + strings.Join(operandStrs, " + ") + ")", nil
	case "times":
		return "(" + strings.Join(operandStrs, " * ") + ")", nil
	case "minus":
		switch len(operandStrs) {
		case 1:
			return "(-" + operandStrs[0] + ")", nil
		case 2:
			return "(" + operandStrs[0] + " - " + operandStrs[1] + ")", nil
		default:
			return "", modelerr.New(modelerr.MalformedReaction, "<minus> takes one or two operands")
		}
	case "divide":
		if len(operandStrs) != 2 {
			return "", modelerr.New(modelerr.MalformedReaction, "<divide> takes exactly two operands")
		}
		return "(" + operandStrs[0] + " / " + operandStrs[1] + ")", nil
	case "power":
		if len(operandStrs) != 2 {
			return "", modelerr.New(modelerr.MalformedReaction, "<power> takes exactly two operands")
		}
		return "(" + operandStrs[0] + " ^ " + operandStrs[1] + ")", nil
	case "exp":
		return oneArgFunc("exp", operandStrs)
	case "ln":
		return oneArgFunc("log", operandStrs)
	case "abs":
		return oneArgFunc("abs", operandStrs)
	case "max":
		return "Max(" + strings.Join(operandStrs, ", ") + ")", nil
	case "min":
		return "Min(" + strings.Join(operandStrs, ", ") + ")", nil
	default:
		return "", modelerr.Newf(modelerr.MalformedReaction, "unsupported MathML operator <%s>", op)
	}
}

func oneArgFunc(name string, args []string) (string, error) {
	if len(args) != 1 {
		return "", modelerr.Newf(modelerr.MalformedReaction, "<%s> takes exactly one operand", name)
	}
	return fmt.Sprintf("%s(%s)", name, args[0]), nil
}
