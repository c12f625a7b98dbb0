// Package policy renders policy-language templates into canonical text.
//
// A template is an ordered list of literal fragments with one argument slot
// between every pair of neighbouring fragments. Fragments are stripped of
// whitespace so that templates can be written in an indented, readable form
// while the output stays byte-exact:
//
//	var timelock = []string{`
//		and_v(
//			v:pk(`, `),
//			older(`, `)
//		)`}
//
//	expr, err := policy.Render(timelock, policy.Bytes(pk), policy.Int(144))
//
// The renderer knows nothing about Bitcoin staking; it only builds text.
package policy

import (
	"encoding/hex"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// Render interleaves the whitespace-stripped fragments with the formatted
// args. It expects exactly one argument fewer than fragments.
func Render(fragments []string, args ...Arg) (Expression, error) {
	if len(fragments) == 0 {
		return "", errorsmod.Wrap(ErrArgumentCountMismatch, "template has no fragments")
	}
	if len(args) != len(fragments)-1 {
		return "", errorsmod.Wrapf(ErrArgumentCountMismatch,
			"template has %d slots, got %d arguments", len(fragments)-1, len(args))
	}

	var sb strings.Builder
	sb.WriteString(stripWhitespace(fragments[0]))
	for i, arg := range args {
		s, err := format(arg)
		if err != nil {
			return "", errorsmod.Wrapf(err, "argument %d", i)
		}
		sb.WriteString(s)
		sb.WriteString(stripWhitespace(fragments[i+1]))
	}

	return Expression(sb.String()), nil
}

// MustRender is like Render but panics on error. Use it only for templates
// whose argument kinds are fixed in code.
func MustRender(fragments []string, args ...Arg) Expression {
	expr, err := Render(fragments, args...)
	if err != nil {
		panic(err)
	}
	return expr
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
}

func format(arg Arg) (string, error) {
	switch v := arg.(type) {
	case Absent:
		return "", nil
	case Bytes:
		return hex.EncodeToString(v), nil
	case Expression:
		return string(v), nil
	case Handle:
		if isNilStringer(v.Stringer) {
			return "", errorsmod.Wrap(ErrUnsupportedArgumentType, "nil policy handle")
		}
		return v.String(), nil
	case Text:
		return string(v), nil
	case Int:
		return strconv.FormatInt(int64(v), 10), nil
	case List:
		return formatList(v)
	default:
		return "", errorsmod.Wrapf(ErrUnsupportedArgumentType, "%T", arg)
	}
}

func formatList(l List) (string, error) {
	if err := l.checkHomogeneous(); err != nil {
		return "", err
	}

	parts := make([]string, len(l))
	for i, elem := range l {
		s, err := format(elem)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}

	return strings.Join(parts, ","), nil
}
