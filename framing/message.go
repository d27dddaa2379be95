// SPDX-License-Identifier: EPL-2.0

package framing

import "strings"

// MessageBuilder accumulates decoded characters in decode order. It is
// append-only: nothing reads or mutates content already appended until the
// final String call.
//
// The zero value is ready to use.
type MessageBuilder struct {
	b strings.Builder
}

// AppendRune adds one decoded character to the message.
func (m *MessageBuilder) AppendRune(r rune) {
	m.b.WriteRune(r)
}

// Len returns the number of bytes accumulated so far.
func (m *MessageBuilder) Len() int { return m.b.Len() }

// String returns the assembled message.
func (m *MessageBuilder) String() string { return m.b.String() }

// DecodeBits runs the full framing pipeline over a bitstream: group into
// 10-bit frames, skip frames with bad start/stop bits or an undecodable
// character code, and concatenate the rest. Per-frame failures never abort
// the decode.
func DecodeBits(bits []byte) string {
	var msg MessageBuilder

	for _, frame := range Frames(bits) {
		r, err := frame.Decode()
		if err != nil {
			continue
		}
		msg.AppendRune(r)
	}

	return msg.String()
}
