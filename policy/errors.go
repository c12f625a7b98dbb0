package policy

import (
	errorsmod "cosmossdk.io/errors"
)

// ModuleName is the codespace of the errors registered by this package.
const ModuleName = "stkscript-policy"

var (
	// ErrUnsupportedArgumentType means a template was given a value outside
	// the closed set of argument kinds. It points at a broken template
	// definition rather than bad user input.
	ErrUnsupportedArgumentType = errorsmod.Register(ModuleName, 1100, "unsupported policy argument type")
	ErrArgumentCountMismatch   = errorsmod.Register(ModuleName, 1101, "number of arguments does not match the template")
)
