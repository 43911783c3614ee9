package renderer

import (
	"bytes"
	"io"
)

// ConditionalBlock lets a section be fully written before deciding whether to
// keep it. If block returns true the buffered content is copied to w,
// otherwise it is discarded. Market reports use it to drop empty sections.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}
