package id

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewAccountNumber returns a customer account number in the form
// ACC-<last 8 digits of unix ms>-<4 random digits>.
func NewAccountNumber() string {
	ms := fmt.Sprintf("%d", time.Now().UnixMilli())
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	var b [2]byte
	_, _ = rand.Read(b[:])
	n := 1000 + int(binary.BigEndian.Uint16(b[:]))%9000
	return fmt.Sprintf("ACC-%s-%04d", ms, n)
}
