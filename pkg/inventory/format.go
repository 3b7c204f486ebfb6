package inventory

import (
	"bytes"
	"fmt"
	"io"
)

// FoundMark prefixes tags matching the searched EPC.
const FoundMark = "[*FOUND*]"

// Matches reports whether the tag's EPC starts with searched. An empty
// search matches nothing.
func (t Tag) Matches(searched []byte) bool {
	return len(searched) > 0 && bytes.HasPrefix(t.EPC, searched)
}

// Found returns the indexes of tags matching searched.
func (r *Report) Found(searched []byte) []int {
	var idx []int
	for i, tag := range r.Tags {
		if tag.Matches(searched) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Format writes a human-readable listing of the report:
//
//	<Inventory Data: Antenna=4, #Tags=1>
//	[1] [*FOUND*] <Tag: rssi=80, epc_len=2, epc=AA BB>
//
// Tags whose EPC starts with searched carry the found mark.
func Format(w io.Writer, r *Report, searched []byte) error {
	if _, err := fmt.Fprintf(w, "<Inventory Data: Antenna=%d, #Tags=%d>\n", r.Antenna, len(r.Tags)); err != nil {
		return err
	}
	for i, tag := range r.Tags {
		mark := ""
		if tag.Matches(searched) {
			mark = FoundMark + " "
		}
		if _, err := fmt.Fprintf(w, "[%d] %s<Tag: rssi=%d, epc_len=%d, epc=% X>\n",
			i+1, mark, tag.RSSI, len(tag.EPC), tag.EPC); err != nil {
			return err
		}
	}
	return nil
}
