package btcstaking

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
)

// ModuleName is the codespace of the errors registered by this package.
const ModuleName = "stkscript"

var (
	ErrInvalidScriptParameters = errorsmod.Register(ModuleName, 1100, "invalid script parameters")
	ErrPolicyCompilation       = errorsmod.Register(ModuleName, 1101, "policy compilation failed")
	ErrScriptAssembly          = errorsmod.Register(ModuleName, 1102, "script assembly failed")
)

// InvalidScriptParametersError names the staking parameter that failed
// validation.
type InvalidScriptParametersError struct {
	Field  string
	Reason string
}

func (e *InvalidScriptParametersError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidScriptParameters.Error(), e.Field, e.Reason)
}

func (e *InvalidScriptParametersError) Unwrap() error {
	return ErrInvalidScriptParameters
}

func invalidParam(field, format string, args ...any) error {
	return &InvalidScriptParametersError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	}
}

// PolicyCompilationError is returned by PolicyCompiler implementations when a
// policy is malformed or cannot be satisfied under the requested context.
// The script builder passes it through untouched.
type PolicyCompilationError struct {
	Policy string
	Msg    string
}

func (e *PolicyCompilationError) Error() string {
	return fmt.Sprintf("%s: %s (policy %q)", ErrPolicyCompilation.Error(), e.Msg, e.Policy)
}

func (e *PolicyCompilationError) Unwrap() error {
	return ErrPolicyCompilation
}
