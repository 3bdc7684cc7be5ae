// Package epochlog anchors a sequence of AKD epoch roots in an append-only
// Merkle Mountain Range, and lets a relying party attest to and later verify
// the log's state with a signed checkpoint.
//
// This is a separate trust layer from the root akd package: akd answers "did
// this label hold this value at this epoch, given a root I already trust";
// epochlog answers "is the root I'm about to trust really part of the
// authentic, append-only sequence of roots this directory has published".
//
// Grounded on github.com/datatrails/go-datatrails-merklelog/massifs'
// checkpoint/root-signing machinery (checkpoint.go, rootsigner.go,
// rootsigverify.go), simplified to a single signer/single log trust model.
package epochlog
