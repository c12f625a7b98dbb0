package btcstaking

import (
	"encoding/binary"
)

// DataEmbedVersion is the layout version written after the magic bytes.
const DataEmbedVersion byte = 0

// DataEmbedPayloadLen returns the payload length for a magic tag of the
// given size: magic | version | staker key | finality provider key | timelock.
func DataEmbedPayloadLen(magicLen int) int {
	return magicLen + 1 + XOnlyPubKeyLen + XOnlyPubKeyLen + 2
}

// SerializeDataEmbedPayload builds the data pushed by the data-commitment
// script. Only the first finality provider key is committed to.
func SerializeDataEmbedPayload(params *StakingParameters) []byte {
	payload := make([]byte, 0, DataEmbedPayloadLen(len(params.magicBytes)))
	payload = append(payload, params.magicBytes...)
	payload = append(payload, DataEmbedVersion)
	payload = append(payload, params.stakerKey...)
	payload = append(payload, params.finalityProviderKeys[0]...)
	payload = binary.BigEndian.AppendUint16(payload, params.stakingTimelock)

	return payload
}
