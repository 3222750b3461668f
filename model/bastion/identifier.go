package bastion

import (
	"encoding/hex"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/onflow/flow-go/crypto/hash"
)

// IdentifierLen is the byte length of an Identifier.
const IdentifierLen = 32

// Identifier represents a 32-byte unique identifier for an entity.
// Identifiers are derived by hashing the canonical encoding of the entity.
type Identifier [IdentifierLen]byte

// ZeroID is the lowest value in the 32-byte ID space.
var ZeroID = Identifier{}

var (
	canonicalEncMode cbor.EncMode
	canonicalDecMode cbor.DecMode
)

func init() {
	var err error
	canonicalEncMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("could not create canonical cbor encoder: %s", err))
	}
	canonicalDecMode, err = cbor.DecOptions{
		DupMapKey:        cbor.DupMapKeyEnforcedAPF,
		IndefLength:      cbor.IndefLengthForbidden,
		MaxArrayElements: 100_000,
		MaxMapPairs:      100_000,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("could not create canonical cbor decoder: %s", err))
	}
}

// EncodeCanonical encodes an entity into its canonical byte representation.
// The encoding is deterministic: encoding the same value always yields the
// same bytes, which makes it safe to hash and sign.
func EncodeCanonical(v interface{}) ([]byte, error) {
	return canonicalEncMode.Marshal(v)
}

// DecodeCanonical decodes the canonical byte representation of an entity.
// Malformed inputs (duplicate map keys, indefinite-length items) are rejected.
func DecodeCanonical(data []byte, v interface{}) error {
	return canonicalDecMode.Unmarshal(data, v)
}

// Fingerprint returns the canonical byte representation of an entity for the
// purpose of hashing and signing. Since all entities are encodable by
// construction, a failure here indicates an implementation bug.
func Fingerprint(v interface{}) []byte {
	data, err := EncodeCanonical(v)
	if err != nil {
		panic(fmt.Sprintf("could not fingerprint entity (%T): %s", v, err))
	}
	return data
}

// MakeID creates an identifier by hashing the canonical encoding of the
// given entity with SHA3-256.
func MakeID(v interface{}) Identifier {
	hasher := hash.NewSHA3_256()
	return HashToID(hasher.ComputeHash(Fingerprint(v)))
}

// HashToID converts a raw hash to an Identifier.
func HashToID(h []byte) Identifier {
	var id Identifier
	copy(id[:], h)
	return id
}

// ByteSliceToID converts a byte slice to an Identifier, requiring an exact
// length match.
func ByteSliceToID(b []byte) (Identifier, error) {
	var id Identifier
	if len(b) != IdentifierLen {
		return id, fmt.Errorf("expected %d bytes, got %d", IdentifierLen, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// HexStringToID converts a hex string to an Identifier.
func HexStringToID(s string) (Identifier, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return ZeroID, fmt.Errorf("could not decode hex string: %w", err)
	}
	return ByteSliceToID(b)
}

// String returns the hex string representation of the identifier.
func (id Identifier) String() string {
	return hex.EncodeToString(id[:])
}

// Format handles formatting of the identifier for different verbs.
func (id Identifier) Format(state fmt.State, verb rune) {
	switch verb {
	case 'x', 's', 'v':
		_, _ = state.Write([]byte(id.String()))
	default:
		_, _ = state.Write([]byte(fmt.Sprintf("%%!%c(%s=%s)", verb, "bastion.Identifier", id.String())))
	}
}

// IdentifierList defines a sortable list of identifiers.
type IdentifierList []Identifier

// Lookup converts the identifier list to a set, dropping duplicates.
func (il IdentifierList) Lookup() map[Identifier]struct{} {
	lookup := make(map[Identifier]struct{}, len(il))
	for _, id := range il {
		lookup[id] = struct{}{}
	}
	return lookup
}

// Contains returns true if and only if the given identifier is in the list.
func (il IdentifierList) Contains(target Identifier) bool {
	for _, id := range il {
		if id == target {
			return true
		}
	}
	return false
}
