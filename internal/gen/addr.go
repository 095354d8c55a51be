// internal/gen/addr.go
package gen

import (
	"fmt"
	"math/rand"
	"net/netip"
)

// reservedBlock is one RFC 1918 range, kept as a base address plus total size
// so host offsets can be drawn directly.
type reservedBlock struct {
	base uint32
	size uint32
}

var reservedBlocks = []reservedBlock{
	{0x0A000000, 1 << 24}, // 10.0.0.0/8
	{0xC0A80000, 1 << 16}, // 192.168.0.0/16
	{0xAC100000, 1 << 20}, // 172.16.0.0/12
}

// inReservedRange reports whether an address starting with octets a.b falls
// inside one of the reserved blocks.
func inReservedRange(a, b int) bool {
	return a == 10 || (a == 192 && b == 168) || (a == 172 && b >= 16 && b <= 31)
}

// randomIPv4 synthesizes a dotted-quad address. With probability privateBias
// it picks one of the reserved blocks uniformly and draws a host offset
// strictly between the network and broadcast addresses. Otherwise it draws
// octets and rejects until the candidate is outside every reserved block;
// with three blocks covering under 2% of the space the loop is effectively
// O(1).
func randomIPv4(rng *rand.Rand, privateBias float64) string {
	if rng.Float64() < privateBias {
		blk := reservedBlocks[rng.Intn(len(reservedBlocks))]
		v := blk.base + uint32(1+rng.Intn(int(blk.size)-2))
		return netip.AddrFrom4([4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}).String()
	}
	for {
		a := 1 + rng.Intn(254)
		b := rng.Intn(255)
		c := rng.Intn(255)
		d := 1 + rng.Intn(254)
		if inReservedRange(a, b) {
			continue
		}
		return fmt.Sprintf("%d.%d.%d.%d", a, b, c, d)
	}
}
