package testutil

import (
	"crypto/sha256"
	"strings"

	"github.com/babylonchain/btc-staking-scripts/btcstaking"
	"github.com/babylonchain/btc-staking-scripts/policy"
)

// StubCompiler accepts any policy with balanced parentheses and returns the
// sha256 of the context tag and policy text as a placeholder script.
type StubCompiler struct{}

var _ btcstaking.PolicyCompiler = StubCompiler{}

func (StubCompiler) Compile(expr policy.Expression, ctx btcstaking.ScriptContext) ([]byte, error) {
	if err := checkBalanced(expr.String()); err != "" {
		return nil, &btcstaking.PolicyCompilationError{Policy: expr.String(), Msg: err}
	}

	h := sha256.Sum256([]byte(string(ctx) + ":" + expr.String()))
	return h[:], nil
}

func checkBalanced(s string) string {
	if s == "" {
		return "empty policy"
	}
	if strings.ContainsAny(s, " \t\r\n") {
		return "policy contains whitespace"
	}

	depth := 0
	for _, c := range s {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return "unbalanced parentheses"
			}
		}
	}
	if depth != 0 {
		return "unbalanced parentheses"
	}

	return ""
}
