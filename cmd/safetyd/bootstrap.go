package main

import (
	"errors"
	"os"

	"github.com/bastionlabs/bastion-go/model/bootstrap"
	"github.com/bastionlabs/bastion-go/storage"
)

// bootstrapStore provisions the safety store from the root file when the
// --bootstrap flag is set. The store refuses to be bootstrapped twice, so a
// daemon restarted with the flag still set fails loudly instead of silently
// overwriting the state it has been signing against.
func (node *SafetyNode) bootstrapStore() {
	if node.conf.BootstrapPath == "" {
		return
	}

	raw, err := os.ReadFile(node.conf.BootstrapPath)
	node.MustNot(err).Str("path", node.conf.BootstrapPath).Msg("could not read root file")

	var root bootstrap.Root
	err = bootstrap.DecodeRoot(raw, &root)
	node.MustNot(err).Str("path", node.conf.BootstrapPath).Msg("could not decode root file")

	err = root.Validate()
	node.MustNot(err).Msg("invalid root file")

	err = node.store.Bootstrap(root.SafetyData(), root.Trusted)
	if errors.Is(err, storage.ErrAlreadyExists) {
		node.log.Fatal().Msg("store is already bootstrapped")
	}
	node.MustNot(err).Msg("could not bootstrap store")

	for _, sk := range root.SignerKeys {
		key, err := sk.PrivateKey()
		node.MustNot(err).Uint64("epoch", sk.Epoch).Msg("could not decode signer key")
		err = node.store.SetSignerForEpoch(sk.Epoch, key)
		node.MustNot(err).Uint64("epoch", sk.Epoch).Msg("could not store signer key")
	}

	node.log.Info().
		Uint64("epoch", root.Trusted.Epoch).
		Int("validators", len(root.Trusted.Validators)).
		Int("signer_keys", len(root.SignerKeys)).
		Msg("bootstrapped safety store from root file")
}
