package eth

import (
	"fmt"
	"math/big"
	"strings"
)

// The ledger records monetary values in wei. Conversion to and from the
// display-decimal representation happens here and nowhere else, so
// rounding cannot drift between call sites.

const displayDecimals = 18

var weiPerUnit = new(big.Int).Exp(big.NewInt(10), big.NewInt(displayDecimals), nil)

// FormatAmount renders a wei value as a display-decimal string with
// trailing zeros trimmed.
func FormatAmount(wei *big.Int) string {
	if wei == nil || wei.Sign() == 0 {
		return "0"
	}

	quo, rem := new(big.Int).QuoRem(wei, weiPerUnit, new(big.Int))
	if rem.Sign() == 0 {
		return quo.String()
	}

	rems := rem.String()
	frac := strings.TrimRight(strings.Repeat("0", displayDecimals-len(rems))+rems, "0")
	return quo.String() + "." + frac
}

// ParseAmount converts a display-decimal string into wei. It rejects
// negative values and fractions finer than the ledger unit rather than
// rounding them.
func ParseAmount(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty amount")
	}
	if strings.HasPrefix(s, "-") {
		return nil, fmt.Errorf("negative amount %q", s)
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}

	wei, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	wei.Mul(wei, weiPerUnit)

	if frac != "" {
		if len(frac) > displayDecimals {
			return nil, fmt.Errorf("amount %q has more than %d decimal places", s, displayDecimals)
		}
		fracPart, ok := new(big.Int).SetString(frac+strings.Repeat("0", displayDecimals-len(frac)), 10)
		if !ok {
			return nil, fmt.Errorf("invalid amount %q", s)
		}
		wei.Add(wei, fracPart)
	}

	return wei, nil
}
