package logging

import (
	"encoding/hex"

	"github.com/bastionlabs/bastion-go/model/bastion"
)

func ID(id bastion.Identifier) []byte {
	return id[:]
}

func IDs(ids []bastion.Identifier) []string {
	ss := make([]string, 0, len(ids))
	for _, id := range ids {
		ss = append(ss, hex.EncodeToString(id[:]))
	}
	return ss
}
