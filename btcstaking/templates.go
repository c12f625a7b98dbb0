package btcstaking

// Policy templates of the staking scripts. Each is a list of literal
// fragments with one argument slot between neighbours; whitespace is
// stripped by the renderer.
var (
	// staker key, lock blocks
	timelockTemplate = []string{`
		and_v(
			v:pk(`, `),
			older(`, `)
		)`,
	}

	// staker key, covenant threshold, covenant keys
	unbondingTemplate = []string{`
		and_v(
			v:pk(`, `),
			multi_a(`, `,`, `)
		)`,
	}

	// key
	verifiedKeyTemplate = []string{`v:pk(`, `)`}

	// staker term, finality provider terms, covenant threshold, covenant keys
	slashingTemplate = []string{`
		and_v(
			and_v(`, `,`, `),
			multi_a(`, `,`, `)
		)`,
	}
)
