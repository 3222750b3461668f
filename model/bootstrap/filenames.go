package bootstrap

// Canonical filenames for bootstrapping files.
var (
	// FilenameRoot is the private provisioning file of one signer. It carries
	// consensus private keys, so it must never be shared between nodes.
	FilenameRoot = "root-safety-state.priv.cbor"
)
