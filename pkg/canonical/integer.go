package canonical

import "math/big"

// encodeTwosComplement renders n as the minimal-length big-endian two's
// complement octet string spec §4.4's Integer encoding calls for; zero
// encodes to the empty slice.
func encodeTwosComplement(n *big.Int) []byte {
	if n.Sign() == 0 {
		return nil
	}

	one := big.NewInt(1)
	length := 1
	for {
		limit := new(big.Int).Lsh(one, uint(8*length-1))
		negLimit := new(big.Int).Neg(limit)
		upper := new(big.Int).Sub(limit, one)
		if n.Cmp(negLimit) >= 0 && n.Cmp(upper) <= 0 {
			break
		}
		length++
	}

	mod := new(big.Int).Lsh(one, uint(8*length))
	unsigned := new(big.Int).Mod(n, mod)
	raw := unsigned.Bytes()
	if len(raw) == length {
		return raw
	}
	out := make([]byte, length)
	copy(out[length-len(raw):], raw)
	return out
}

// decodeTwosComplement is encodeTwosComplement's inverse.
func decodeTwosComplement(b []byte) *big.Int {
	if len(b) == 0 {
		return big.NewInt(0)
	}
	n := new(big.Int).SetBytes(b)
	if b[0]&0x80 != 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(8*len(b)))
		n.Sub(n, mod)
	}
	return n
}
