// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package diag

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unsafe"
)

var (
	// ErrInvalidAddress reports a value that cannot be parsed as an Address.
	ErrInvalidAddress = errors.New("invalid address")
)

// Address is an opaque handle for a memory location. It is only ever printed,
// never dereferenced.
type Address uintptr

// AddressOf returns the Address of p without reading the value it points to.
func AddressOf[T any](p *T) Address {
	return Address(uintptr(unsafe.Pointer(p)))
}

// ParseAddress parses s as an Address. The base is inferred from the prefix
// as in strconv.ParseUint, so "0x" hex, "0o" or "0" octal, "0b" binary and
// plain decimal are accepted.
func ParseAddress(s string) (Address, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(s), 0, strconv.IntSize)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidAddress, s)
	}

	return Address(value), nil
}

// String returns the hexadecimal token of the address, e.g. 0x7ffd5e8c.
func (a Address) String() string {
	return "0x" + strconv.FormatUint(uint64(a), 16)
}
