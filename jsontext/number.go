package jsontext

import (
	"strconv"

	"github.com/ylongjson/json/internal/jsonwire"
)

// parseNumberToken converts a validated JSON number literal into a
// Token, preferring the narrowest lossless representation: a signed
// 64-bit integer, then an unsigned 64-bit integer, then a float64
// (spec §4.2.1). lit must already have been measured by
// jsonwire.ConsumeNumber.
func parseNumberToken(lit []byte) (Token, error) {
	s := string(lit)
	if jsonwire.IsSimpleInteger(lit) {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(i), nil
		}
		if s[0] != '-' {
			if u, err := strconv.ParseUint(s, 10, 64); err == nil {
				return Uint(u), nil
			}
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Token{}, err
	}
	return Float(f), nil
}
