package btcstaking

import (
	"github.com/btcsuite/btcd/txscript"
	"go.uber.org/zap"

	"github.com/babylonchain/btc-staking-scripts/metrics"
	"github.com/babylonchain/btc-staking-scripts/policy"
)

// StakingScripts holds the five compiled scripts of a staking output and
// its unbonding output.
type StakingScripts struct {
	TimelockScript          []byte
	UnbondingScript         []byte
	SlashingScript          []byte
	UnbondingTimelockScript []byte
	DataEmbedScript         []byte
}

// StakingPolicies holds the rendered policy text of the four policy based
// scripts, before compilation.
type StakingPolicies struct {
	TimelockPolicy          policy.Expression `json:"timelock_policy"`
	UnbondingPolicy         policy.Expression `json:"unbonding_policy"`
	SlashingPolicy          policy.Expression `json:"slashing_policy"`
	UnbondingTimelockPolicy policy.Expression `json:"unbonding_timelock_policy"`
}

// StakingScriptBuilder renders and compiles the staking scripts for one set
// of staking parameters. It keeps no mutable state; every call renders and
// compiles from scratch.
type StakingScriptBuilder struct {
	params    *StakingParameters
	compiler  PolicyCompiler
	assembler OpcodeAssembler
	logger    *zap.Logger
	metrics   *metrics.ScriptMetrics
}

func NewStakingScriptBuilder(
	params *StakingParameters,
	compiler PolicyCompiler,
	assembler OpcodeAssembler,
	logger *zap.Logger,
) *StakingScriptBuilder {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &StakingScriptBuilder{
		params:    params,
		compiler:  compiler,
		assembler: assembler,
		logger:    logger,
	}
}

// WithMetrics returns a copy of the builder that records every build in m.
func (b *StakingScriptBuilder) WithMetrics(m *metrics.ScriptMetrics) *StakingScriptBuilder {
	c := *b
	c.metrics = m
	return &c
}

func (b *StakingScriptBuilder) Params() *StakingParameters {
	return b.params
}

// TimelockPolicy renders and_v(v:pk(staker),older(lockBlocks)). lockBlocks
// must be at least 1.
func (b *StakingScriptBuilder) TimelockPolicy(lockBlocks uint16) (policy.Expression, error) {
	if err := validateTimelock(FieldLockBlocks, uint32(lockBlocks)); err != nil {
		return "", err
	}
	return policy.Render(timelockTemplate,
		policy.Bytes(b.params.stakerKey),
		policy.Int(lockBlocks),
	)
}

// UnbondingPolicy renders and_v(v:pk(staker),multi_a(threshold,covenants...)).
// Covenant keys keep the order they were supplied in.
func (b *StakingScriptBuilder) UnbondingPolicy() (policy.Expression, error) {
	return policy.Render(unbondingTemplate,
		policy.Bytes(b.params.stakerKey),
		policy.Int(b.params.covenantThreshold),
		policy.ByteSlices(b.params.covenantKeys...),
	)
}

// SlashingPolicy renders
// and_v(and_v(v:pk(staker),v:pk(fp)...),multi_a(threshold,covenants...)).
func (b *StakingScriptBuilder) SlashingPolicy() (policy.Expression, error) {
	stakerTerm, err := policy.Render(verifiedKeyTemplate, policy.Bytes(b.params.stakerKey))
	if err != nil {
		return "", err
	}

	fpTerms := make([]policy.Expression, len(b.params.finalityProviderKeys))
	for i, fpKey := range b.params.finalityProviderKeys {
		fpTerms[i], err = policy.Render(verifiedKeyTemplate, policy.Bytes(fpKey))
		if err != nil {
			return "", err
		}
	}

	return policy.Render(slashingTemplate,
		stakerTerm,
		policy.Expressions(fpTerms...),
		policy.Int(b.params.covenantThreshold),
		policy.ByteSlices(b.params.covenantKeys...),
	)
}

// Policies renders the four policy based scripts without compiling them.
func (b *StakingScriptBuilder) Policies() (*StakingPolicies, error) {
	timelock, err := b.TimelockPolicy(b.params.stakingTimelock)
	if err != nil {
		return nil, err
	}
	unbonding, err := b.UnbondingPolicy()
	if err != nil {
		return nil, err
	}
	slashing, err := b.SlashingPolicy()
	if err != nil {
		return nil, err
	}
	unbondingTimelock, err := b.TimelockPolicy(b.params.unbondingTimelock)
	if err != nil {
		return nil, err
	}

	return &StakingPolicies{
		TimelockPolicy:          timelock,
		UnbondingPolicy:         unbonding,
		SlashingPolicy:          slashing,
		UnbondingTimelockPolicy: unbondingTimelock,
	}, nil
}

func (b *StakingScriptBuilder) compile(name string, expr policy.Expression) ([]byte, error) {
	script, err := b.compiler.Compile(expr, ScriptContextTapscript)
	if err != nil {
		b.logger.Debug("failed to compile policy",
			zap.String("script", name),
			zap.String("policy", expr.String()),
			zap.Error(err),
		)
		b.metrics.RecordScriptFailed(name)
		return nil, err
	}

	b.logger.Debug("compiled staking script",
		zap.String("script", name),
		zap.String("policy", expr.String()),
		zap.Int("len", len(script)),
	)
	b.metrics.RecordScriptBuilt(name, len(script))

	return script, nil
}

// BuildTimelockScript compiles the staker timelock template for lockBlocks.
func (b *StakingScriptBuilder) BuildTimelockScript(lockBlocks uint16) ([]byte, error) {
	return b.buildTimelockScript("timelock", lockBlocks)
}

func (b *StakingScriptBuilder) BuildStakingTimelockScript() ([]byte, error) {
	return b.buildTimelockScript("staking_timelock", b.params.stakingTimelock)
}

func (b *StakingScriptBuilder) BuildUnbondingTimelockScript() ([]byte, error) {
	return b.buildTimelockScript("unbonding_timelock", b.params.unbondingTimelock)
}

func (b *StakingScriptBuilder) buildTimelockScript(name string, lockBlocks uint16) ([]byte, error) {
	expr, err := b.TimelockPolicy(lockBlocks)
	if err != nil {
		return nil, err
	}
	return b.compile(name, expr)
}

func (b *StakingScriptBuilder) BuildUnbondingScript() ([]byte, error) {
	expr, err := b.UnbondingPolicy()
	if err != nil {
		return nil, err
	}
	return b.compile("unbonding", expr)
}

func (b *StakingScriptBuilder) BuildSlashingScript() ([]byte, error) {
	expr, err := b.SlashingPolicy()
	if err != nil {
		return nil, err
	}
	return b.compile("slashing", expr)
}

// BuildDataEmbedScript returns OP_RETURN <payload>, see
// SerializeDataEmbedPayload for the payload layout.
func (b *StakingScriptBuilder) BuildDataEmbedScript() ([]byte, error) {
	payload := SerializeDataEmbedPayload(b.params)

	script, err := b.assembler.Assemble(Opcode(txscript.OP_RETURN), PushData(payload))
	if err != nil {
		b.metrics.RecordScriptFailed("data_embed")
		return nil, err
	}
	b.metrics.RecordScriptBuilt("data_embed", len(script))

	b.logger.Debug("assembled data embed script",
		zap.Int("payload_len", len(payload)),
		zap.Int("len", len(script)),
	)

	return script, nil
}

// BuildScripts builds all five scripts. It returns either the complete set
// or the first error encountered.
func (b *StakingScriptBuilder) BuildScripts() (*StakingScripts, error) {
	timelockScript, err := b.BuildStakingTimelockScript()
	if err != nil {
		return nil, err
	}

	unbondingScript, err := b.BuildUnbondingScript()
	if err != nil {
		return nil, err
	}

	slashingScript, err := b.BuildSlashingScript()
	if err != nil {
		return nil, err
	}

	unbondingTimelockScript, err := b.BuildUnbondingTimelockScript()
	if err != nil {
		return nil, err
	}

	dataEmbedScript, err := b.BuildDataEmbedScript()
	if err != nil {
		return nil, err
	}

	return &StakingScripts{
		TimelockScript:          timelockScript,
		UnbondingScript:         unbondingScript,
		SlashingScript:          slashingScript,
		UnbondingTimelockScript: unbondingTimelockScript,
		DataEmbedScript:         dataEmbedScript,
	}, nil
}
