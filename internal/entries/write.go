package entries

import (
	"bufio"
	"io"
)

// Write prints each entry on its own line and flushes before returning.
func Write(w io.Writer, list []string) error {
	bw := bufio.NewWriter(w)
	for _, e := range list {
		if _, err := bw.WriteString(e); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
