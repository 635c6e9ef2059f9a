package service

import (
	"errors"
	"strconv"
)

// ErrNoAmount marks an empty amount buffer. It is distinct from an
// entered zero: the confirmation control stays disabled on it.
var ErrNoAmount = errors.New("no amount entered")

// AmountEntry is the numeric keypad buffer of the transfer screen. Keys
// are single digits plus the convenience "00" token; every key press is
// accepted as-is, matching the keypad's behavior of appending without
// canonicalizing leading zeros or capping length.
type AmountEntry struct {
	buffer string
}

// Append adds one keypad token to the buffer.
func (a *AmountEntry) Append(token string) {
	a.buffer += token
}

// Backspace removes the last character. No-op on an empty buffer.
func (a *AmountEntry) Backspace() {
	if a.buffer == "" {
		return
	}
	a.buffer = a.buffer[:len(a.buffer)-1]
}

// Reset clears the buffer.
func (a *AmountEntry) Reset() {
	a.buffer = ""
}

// Buffer returns the raw digit string.
func (a *AmountEntry) Buffer() string {
	return a.buffer
}

// Display returns the buffer as shown to the user: "0" when empty.
func (a *AmountEntry) Display() string {
	if a.buffer == "" {
		return "0"
	}
	return a.buffer
}

// Value parses the buffer as a base-10 integer. An empty buffer returns
// ErrNoAmount rather than zero.
func (a *AmountEntry) Value() (int64, error) {
	if a.buffer == "" {
		return 0, ErrNoAmount
	}
	value, err := strconv.ParseInt(a.buffer, 10, 64)
	if err != nil {
		return 0, err
	}
	return value, nil
}
