package igs036

import "math/bits"

// The highest 16 bits of the word address are split into 4 groups,
// each controlling a rotation by plus or minus 9, 1, 2 and 4
// respectively. The highest set bit of a group selects, via
// rotEnabling, a boolean function of the lowest address bits that
// decides whether the group's rotation is active, and rotDirection
// selects another one deciding its sign. The weight-9 group, when
// active, inverts the activation of the other three. The leading 15
// and 14 positions are guesses.
var (
	group15 = [4]int{15, 11, 7, 5}
	group14 = [4]int{14, 9, 3, 2}
	group13 = [4]int{13, 10, 6, 1}
	group12 = [4]int{12, 8, 4, 0}
)

func deobfuscate(cipher uint16, address int) uint16 {
	aux := bits.RotateLeft16(cipher, rotation(address))
	return bitswapUint16(aux, 10, 9, 8, 7, 0, 15, 6, 5, 14, 13, 4, 3, 12, 11, 2, 1)
}

func rotation(address int) int {
	// rotation depending on all the address bits
	enabled0 := rotEnabled(address, group15)
	rot := enabled0 * rotGroup(address, group15) * 9

	enabled1 := enabled0 ^ rotEnabled(address, group14)
	rot += enabled1 * rotGroup(address, group14) * 1

	enabled2 := enabled0 ^ rotEnabled(address, group13)
	rot += enabled2 * rotGroup(address, group13) * 2

	enabled3 := enabled0 ^ rotEnabled(address, group12)
	rot += enabled3 * rotGroup(address, group12) * 4

	// block-independent rotation, just depending on the lowest 8 bits
	rot2 := 4 * bit(address, 0)
	rot2 += 1 * bit(address, 4) * (bit(address, 0)*2 - 1)
	rot2 += 4 * bit(address, 3) * (bit(address, 0)*2 - 1)
	rot2 *= (bit(address, 7)|(bit(address, 0)^bit(address, 1)^1))*2 - 1
	rot2 += 2 * ((bit(address, 0) ^ bit(address, 1)) & (bit(address, 7) ^ 1))

	return (rot + rot2) & 0xf
}

func rotEnabled(address int, group [4]int) int {
	for _, g := range group {
		if bit(address, 8+g) != 0 {
			aux := address ^ (0x1b * bit(address, 2))
			return rotEnabling[g][aux&3](aux)
		}
	}

	return 0
}

func rotGroup(address int, group [4]int) int {
	return rotDirection[group[0]&3][address&7](address)*2 - 1
}

// The boolean functions below depend on the 8 lowest word-address bits
// (bits #5 and #6 are unused, so really only 6 of them). There are
// many functionally equivalent ways to express them; multiplexing over
// simple functions is just one, and needn't match what the hardware
// actually computes. The rows bound to unknown have never been
// observed to trigger in any game, so they are unverified constant
// zero stubs rather than recovered functions.

type boolFunc func(address int) int

func unknown(address int) int { return 0 }
func cZero(address int) int   { return 0 }
func cOne(address int) int    { return 1 }
func bit3(address int) int    { return bit(address, 3) }
func bit4(address int) int    { return bit(address, 4) }
func bit7(address int) int    { return bit(address, 7) }
func not3(address int) int    { return bit(address, 3) ^ 1 }
func not4(address int) int    { return bit(address, 4) ^ 1 }
func not7(address int) int    { return bit(address, 7) ^ 1 }
func xor37(address int) int   { return bit(address, 3) ^ bit(address, 7) }
func xnor37(address int) int  { return bit(address, 3) ^ bit(address, 7) ^ 1 }
func xor47(address int) int   { return bit(address, 4) ^ bit(address, 7) }
func xnor47(address int) int  { return bit(address, 4) ^ bit(address, 7) ^ 1 }
func nor34(address int) int   { return (bit(address, 3) | bit(address, 4)) ^ 1 }
func impl43(address int) int  { return bit(address, 3) | (bit(address, 4) ^ 1) }

var rotEnabling = [16][4]boolFunc{
	{bit3, not3, bit3, not3},
	{bit3, not3, bit3, not3},
	{bit4, bit4, bit4, bit4},
	{bit4, not4, bit4, not4},
	{bit3, bit3, bit3, bit3},
	{nor34, bit7, bit7, cZero},
	{cZero, cOne, cZero, cOne},
	{impl43, xor37, xnor37, not3},
	{bit3, bit3, not3, not3},
	{bit4, bit4, not4, not4},
	{cZero, cZero, cZero, cZero},
	{nor34, bit7, not7, cOne},
	{bit3, not3, bit3, not3},
	{cZero, cOne, cOne, cZero},
	{unknown, unknown, unknown, unknown},
	{unknown, unknown, unknown, unknown},
}

var rotDirection = [4][8]boolFunc{
	{bit3, xor37, xnor37, not3, bit3, xor37, xnor37, not3},
	{cZero, not7, not7, cZero, cZero, not7, not7, cZero},
	{bit4, xor47, xnor47, not4, bit4, xor47, xnor47, not4},
	{bit3, not7, bit7, cZero, cOne, not7, bit7, cZero},
}
