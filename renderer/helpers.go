// Package renderer formats projections as markdown documents.
//
// Functions only format series already computed by the lifeplan package,
// they never compute anything themselves.
package renderer

import (
	"bytes"
	"io"

	"github.com/etnz/lifeplan"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// accountName returns the display name of an account.
func accountName(a lifeplan.Account) string {
	if a.Name != "" {
		return a.Name
	}
	return a.ID
}

// assetName returns the display name of an asset.
func assetName(a lifeplan.AssetInfo) string {
	name := a.Name
	if name == "" {
		name = a.ID
	}
	if a.Symbol != "" && a.Symbol != name {
		name += " (" + a.Symbol + ")"
	}
	return name
}
