//go:generate mockgen -source=interface.go -package mocks -destination ../testutil/mocks/btcstaking.go

package btcstaking

import (
	"github.com/babylonchain/btc-staking-scripts/policy"
)

// ScriptContext selects the script semantics a policy is compiled under.
type ScriptContext string

// ScriptContextTapscript is the taproot leaf context (BIP-342). It is the
// only context the staking scripts are compiled under.
const ScriptContextTapscript ScriptContext = "tapscript"

// PolicyCompiler compiles a canonical policy expression into executable
// script bytes. Implementations must be deterministic and should report
// failures with *PolicyCompilationError.
type PolicyCompiler interface {
	Compile(expr policy.Expression, ctx ScriptContext) ([]byte, error)
}

// OpcodeAssembler turns an explicit opcode/data sequence into script bytes.
type OpcodeAssembler interface {
	Assemble(ops ...ScriptOp) ([]byte, error)
}
