package sitedata

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
)

// Preview renders the document as an aligned plain-text summary.
//
// Rank labels within a category are padded to a common display width
// so values line up, accounting for wide Unicode characters.
func Preview(w io.Writer, doc Document) {
	for _, entry := range doc {
		if !entry.IsCategory() {
			fmt.Fprintf(w, "%s: %s\n", entry.Key, entry.Value)
			continue
		}

		fmt.Fprintf(w, "%s\n", entry.Key)

		width := 0
		for _, item := range entry.Items {
			if kw := runewidth.StringWidth(item.Key); kw > width {
				width = kw
			}
		}

		for _, item := range entry.Items {
			fmt.Fprintf(w, "  %s  %s\n", runewidth.FillRight(item.Key, width), item.Value)
		}
	}
}
