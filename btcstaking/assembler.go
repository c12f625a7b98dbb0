package btcstaking

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/btcsuite/btcd/txscript"
)

// ScriptOp is a single element of an assembled script: either an Opcode or
// a PushData.
type ScriptOp interface {
	isScriptOp()
}

// Opcode is a bare opcode such as txscript.OP_RETURN.
type Opcode byte

// PushData is pushed with the smallest canonical push opcode.
type PushData []byte

func (Opcode) isScriptOp()   {}
func (PushData) isScriptOp() {}

// TxScriptAssembler assembles scripts with btcd's txscript.ScriptBuilder.
type TxScriptAssembler struct{}

var _ OpcodeAssembler = TxScriptAssembler{}

func NewTxScriptAssembler() TxScriptAssembler {
	return TxScriptAssembler{}
}

func (TxScriptAssembler) Assemble(ops ...ScriptOp) ([]byte, error) {
	builder := txscript.NewScriptBuilder()
	for i, op := range ops {
		switch v := op.(type) {
		case Opcode:
			builder.AddOp(byte(v))
		case PushData:
			builder.AddData(v)
		default:
			return nil, errorsmod.Wrapf(ErrScriptAssembly, "unsupported script op %T at index %d", op, i)
		}
	}

	script, err := builder.Script()
	if err != nil {
		return nil, errorsmod.Wrap(ErrScriptAssembly, err.Error())
	}

	return script, nil
}
