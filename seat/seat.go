// Package seat decodes boarding pass seat codes into seat ids.
package seat

import (
	"fmt"
)

const (
	// CodeLen is the number of characters in a seat code.
	CodeLen = 10

	// MaxId is the highest valid seat id.
	MaxId = 1<<CodeLen - 1

	kColumnBits = 3
)

// Seat is a decoded seat. Seats are ordered by Id alone; Code is kept so
// that a seat can be traced back to the line it came from.
type Seat struct {

	// The seat id, 0 to MaxId inclusive.
	Id int

	// The code the seat was decoded from.
	Code string
}

// NewSeat returns a seat with given id and code. NewSeat returns a
// DecodeError if id is outside 0 to MaxId.
func NewSeat(id int, code string) (Seat, error) {
	if id > MaxId {
		return Seat{}, NewError(DecodeError, fmt.Sprintf("id %d is too high", id))
	}
	if id < 0 {
		return Seat{}, NewError(DecodeError, fmt.Sprintf("id %d is negative", id))
	}
	return Seat{Id: id, Code: code}, nil
}

// Row returns the row of this seat, 0 to 127.
func (s Seat) Row() int {
	return s.Id >> kColumnBits
}

// Column returns the column of this seat, 0 to 7.
func (s Seat) Column() int {
	return s.Id & (1<<kColumnBits - 1)
}

// Decode converts a seat code such as "FBFBBFFRLR" into a Seat.
// F and L are 0 bits; B and R are 1 bits; the first character is the
// most significant bit. Decode stops at the first illegal character and
// returns a DecodeError naming it. Codes with more than CodeLen characters
// are rejected.
func Decode(code string) (Seat, error) {
	id := 0
	for i, c := range []rune(code) {
		if i >= CodeLen {
			return Seat{}, NewError(
				DecodeError,
				fmt.Sprintf("seat code %q is longer than %d positions", code, CodeLen))
		}
		switch c {
		case 'F', 'L':
		case 'B', 'R':
			id |= 1 << uint(CodeLen-1-i)
		default:
			return Seat{}, NewError(
				DecodeError, fmt.Sprintf("%c is an illegal character", c))
		}
	}
	return NewSeat(id, code)
}
