package bastion

import (
	"fmt"
	"sort"

	"github.com/fxamacker/cbor/v2"
	"github.com/onflow/flow-go/crypto"
	"github.com/vmihailenco/msgpack/v4"
)

// SigningAlgorithm is the signature scheme used by all consensus participants.
const SigningAlgorithm = crypto.ECDSAP256

// Validator represents a consensus participant: its node identifier, the
// public key its votes and timeouts are verified against, and its voting
// weight.
type Validator struct {
	NodeID Identifier
	PubKey crypto.PublicKey
	Weight uint64
}

// encodableValidator is a serializable intermediary for Validator. PublicKey
// is an interface, so the key is encoded to its raw byte representation.
type encodableValidator struct {
	NodeID Identifier
	PubKey []byte
	Weight uint64
}

func (v Validator) toEncodable() encodableValidator {
	ev := encodableValidator{NodeID: v.NodeID, Weight: v.Weight}
	if v.PubKey != nil {
		ev.PubKey = v.PubKey.Encode()
	}
	return ev
}

func (v *Validator) fromEncodable(ev encodableValidator) error {
	v.NodeID = ev.NodeID
	v.Weight = ev.Weight
	if len(ev.PubKey) > 0 {
		key, err := crypto.DecodePublicKey(SigningAlgorithm, ev.PubKey)
		if err != nil {
			return fmt.Errorf("could not decode public key: %w", err)
		}
		v.PubKey = key
	}
	return nil
}

func (v Validator) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(v.toEncodable())
}

func (v *Validator) UnmarshalCBOR(b []byte) error {
	var ev encodableValidator
	err := cbor.Unmarshal(b, &ev)
	if err != nil {
		return fmt.Errorf("could not decode validator: %w", err)
	}
	return v.fromEncodable(ev)
}

func (v Validator) EncodeMsgpack(e *msgpack.Encoder) error {
	return e.Encode(v.toEncodable())
}

func (v *Validator) DecodeMsgpack(d *msgpack.Decoder) error {
	var ev encodableValidator
	err := d.Decode(&ev)
	if err != nil {
		return fmt.Errorf("could not decode validator: %w", err)
	}
	return v.fromEncodable(ev)
}

// ValidatorList is a list of consensus participants. The list is kept in
// canonical order (ascending by node ID), which makes proposer selection
// deterministic across all participants.
type ValidatorList []*Validator

// Sort returns a copy of the list sorted in canonical order.
func (vl ValidatorList) Sort() ValidatorList {
	dup := make(ValidatorList, len(vl))
	copy(dup, vl)
	sort.Slice(dup, func(i, j int) bool {
		return identifierLess(dup[i].NodeID, dup[j].NodeID)
	})
	return dup
}

// Sorted returns true if and only if the list is in canonical order with no
// duplicate node IDs.
func (vl ValidatorList) Sorted() bool {
	for i := 1; i < len(vl); i++ {
		if !identifierLess(vl[i-1].NodeID, vl[i].NodeID) {
			return false
		}
	}
	return true
}

// ByNodeID returns the validator with the given node ID.
func (vl ValidatorList) ByNodeID(nodeID Identifier) (*Validator, bool) {
	for _, v := range vl {
		if v.NodeID == nodeID {
			return v, true
		}
	}
	return nil, false
}

// Exists returns true if and only if a validator with the given node ID is in
// the list.
func (vl ValidatorList) Exists(nodeID Identifier) bool {
	_, ok := vl.ByNodeID(nodeID)
	return ok
}

// NodeIDs returns the node IDs of all validators in the list.
func (vl ValidatorList) NodeIDs() IdentifierList {
	ids := make(IdentifierList, 0, len(vl))
	for _, v := range vl {
		ids = append(ids, v.NodeID)
	}
	return ids
}

// TotalWeight returns the total voting weight of all validators in the list.
func (vl ValidatorList) TotalWeight() uint64 {
	var total uint64
	for _, v := range vl {
		total += v.Weight
	}
	return total
}

// QuorumThreshold returns the minimum aggregate weight required for a quorum.
// With total weight n and at most f byzantine weight where n = 3f+1, any set
// with weight strictly greater than 2/3 of n contains a correct majority.
func (vl ValidatorList) QuorumThreshold() uint64 {
	return vl.TotalWeight()*2/3 + 1
}

func identifierLess(a, b Identifier) bool {
	for i := 0; i < IdentifierLen; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
