package igs036

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotationRange(t *testing.T) {
	for address := 0; address < 1<<24; address += 911 {
		shift := rotation(address)
		assert.True(t, shift >= 0 && shift <= 15)
	}
}

func TestRotation(t *testing.T) {
	for _, table := range []struct {
		address int
		shift   int
	}{
		{0x000000, 0},
		{0x000001, 14},
		{0x000080, 0},
		{0x0001ff, 9},
		{0x012345, 0},
		{0x7fffff, 9},
	} {
		assert.Equal(t, table.shift, rotation(table.address))
	}
}

func TestDeobfuscate(t *testing.T) {
	assert.Equal(t, uint16(0x42bd), deobfuscate(0x5a5a, 0x012345))
	assert.Equal(t, uint16(0x79be), deobfuscate(0xdead, 0x7fffff))
}

// For a fixed address the transform is a rotation followed by a fixed
// bitswap, both invertible, so it must permute the 16-bit space
func TestDeobfuscateBijective(t *testing.T) {
	for _, address := range []int{0, 1, 0xff, 0x1ff, 0x012345, 0x7fffff} {
		var seen [1 << 16]bool

		for cipher := 0; cipher < 1<<16; cipher++ {
			plain := deobfuscate(uint16(cipher), address)
			assert.False(t, seen[plain])
			seen[plain] = true
		}
	}
}

func TestDispatchTables(t *testing.T) {
	assert.Len(t, rotEnabling, 16)
	for _, row := range rotEnabling {
		assert.Len(t, row, 4)
		for _, f := range row {
			assert.NotNil(t, f)
		}
	}

	assert.Len(t, rotDirection, 4)
	for _, row := range rotDirection {
		assert.Len(t, row, 8)
		for _, f := range row {
			assert.NotNil(t, f)
		}
	}
}

func TestBitswapUint16(t *testing.T) {
	assert.Equal(t, uint16(0x1234), bitswapUint16(0x1234, 15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0))
	assert.Equal(t, uint16(0x2468), bitswapUint16(0x1234, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 15))
}
