// Package binarycodec implements XRPL's canonical binary serialization:
// the field-tagged, length-prefixed wire format transactions and ledger
// objects are encoded in. Grounded on the teacher's BTC/ETH raw-transaction
// builders (internal/wallet/{btc,eth}.go's buildRawBTCTx/encodeTxForSigning),
// which assemble a transaction's signable bytes by hand; this package
// generalizes that pattern into a declarative field table instead of ad hoc
// byte appends.
package binarycodec

import (
	"fmt"

	"github.com/xpring-eng/xrpl-go-core/internal/xrplerr"
)

// Scanner is a single-pass, forward-only cursor over a byte buffer. It never
// copies except when asked to take bytes out, and it raises
// xrplerr.ErrUnexpectedEndOfStream rather than panicking when asked to read
// past the end.
type Scanner struct {
	buf []byte
	pos int
}

// NewScanner wraps buf in a Scanner starting at offset 0.
func NewScanner(buf []byte) *Scanner {
	return &Scanner{buf: buf}
}

// Len returns the number of unread bytes remaining.
func (s *Scanner) Len() int {
	return len(s.buf) - s.pos
}

// Peek1 returns the next byte without consuming it.
func (s *Scanner) Peek1() (byte, error) {
	if s.pos >= len(s.buf) {
		return 0, fmt.Errorf("%w: peek past end of buffer", xrplerr.ErrUnexpectedEndOfStream)
	}
	return s.buf[s.pos], nil
}

// Take1 consumes and returns the next byte.
func (s *Scanner) Take1() (byte, error) {
	if s.pos >= len(s.buf) {
		return 0, fmt.Errorf("%w: take1 past end of buffer", xrplerr.ErrUnexpectedEndOfStream)
	}
	b := s.buf[s.pos]
	s.pos++
	return b, nil
}

// Take consumes and returns the next n bytes.
func (s *Scanner) Take(n int) ([]byte, error) {
	if n < 0 || s.pos+n > len(s.buf) {
		return nil, fmt.Errorf("%w: want %d bytes, have %d", xrplerr.ErrUnexpectedEndOfStream, n, s.Len())
	}
	out := make([]byte, n)
	copy(out, s.buf[s.pos:s.pos+n])
	s.pos += n
	return out, nil
}

// Skip advances the cursor by n bytes without returning them.
func (s *Scanner) Skip(n int) error {
	if n < 0 || s.pos+n > len(s.buf) {
		return fmt.Errorf("%w: want to skip %d bytes, have %d", xrplerr.ErrUnexpectedEndOfStream, n, s.Len())
	}
	s.pos += n
	return nil
}

// Rest returns all remaining unread bytes without consuming them.
func (s *Scanner) Rest() []byte {
	return s.buf[s.pos:]
}
