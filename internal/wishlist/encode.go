package wishlist

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// scheme is the directive prefix DIM-compatible consumers dispatch on.
const scheme = "dimwishlist"

// EncodeLine renders one wishlist directive. Hashes render as decimal
// integers and perk order is kept exactly as matched; the consumer treats
// it as significant.
func EncodeLine(m Match, comment string) string {
	return fmt.Sprintf("%s:item=%d&perks=%d,%d#notes: %s", scheme, m.Weapon, m.Perk1, m.Perk2, sanitizeComment(comment))
}

// Comment is the default annotation for a match, built from the row's
// original unnormalized fields.
func Comment(m Match) string {
	return m.Row.Perk1 + " + " + m.Row.Perk2
}

// sanitizeComment keeps the notes on one line: any run of CR/LF collapses
// to a single space.
func sanitizeComment(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == '\r' || r == '\n' })
	return strings.Join(fields, " ")
}

// Write emits the two header lines and one directive per match, in match
// order.
func Write(w io.Writer, title, description string, matches []Match) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "title:%s\n", title)
	fmt.Fprintf(bw, "description:%s\n", description)
	for _, m := range matches {
		fmt.Fprintln(bw, EncodeLine(m, Comment(m)))
	}
	return bw.Flush()
}
