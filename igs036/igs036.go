/*
Package igs036 implements the program ROM encryption used by the IGS036
system-on-chip found in PGM2-era arcade hardware.

The scheme works on 16-bit words and depends on up to 24 bits of word
address. It is a rotation-based obfuscation layered upon a simple
address-based XOR encryption: every word is first rotated by an amount
derived from its address, run through a fixed bitswap, then up to 16
one-bit XORs fire depending on the per-game key table and a fixed set
of address triggers, and finally the whole word is XORed with a
constant. Only the XOR stage is keyed; the obfuscation is identical
across all games.
*/
package igs036

import (
	"encoding/binary"
	"errors"
)

// KeyLength is the number of entries in a per-game key table, one for
// every combination of the lowest 8 word-address bits
const KeyLength = 0x100

// Key is a per-game key table. Entry n is a mask of which of the 16
// one-bit XORs are eligible to fire for word addresses whose lowest
// byte is n
type Key [KeyLength]uint16

var errOddLength = errors.New("igs036: ROM image must be an even number of bytes")

// xorConstant is folded into every decrypted word, regardless of game
const xorConstant = 0x1a3a

// triggers describe under what conditions each of the 16 XORs is
// activated: bit i fires when the high 16 address bits masked with
// triggers[i][0] equal triggers[i][1]. The entry at index #10 is a
// guess; its effect is not observed in any game.
var triggers = [16][2]uint16{
	{0x0001, 0x0000}, {0x0008, 0x0008}, {0x0002, 0x0000}, {0x0004, 0x0004},
	{0x0100, 0x0000}, {0x0200, 0x0000}, {0x0400, 0x0000}, {0x0800, 0x0800},
	{0x1001, 0x0001}, {0x2002, 0x2000}, {0x4004, 0x4000}, {0x8008, 0x0000},
	{0x0010, 0x0010}, {0x0020, 0x0020}, {0x0040, 0x0000}, {0x0081, 0x0081},
}

// Decryptor decrypts IGS036 program ROM words using one game key. It
// holds no other state; the zero-value Decryptor is a valid decryptor
// for a hypothetical all-zero key
type Decryptor struct {
	key Key
}

// NewDecryptor returns a Decryptor bound to the passed key table
func NewDecryptor(key Key) *Decryptor {
	return &Decryptor{key: key}
}

// Decrypt returns the plaintext for one ROM word. The address is the
// word address, i.e. the byte offset divided by two
func (d *Decryptor) Decrypt(cipher uint16, address int) uint16 {
	// key-independent manipulation
	aux := deobfuscate(cipher, address)

	// key-dependent manipulation
	for i := 0; i < 16; i++ {
		if bit(int(d.key[address&0xff]), i) != 0 &&
			uint16(address>>8)&triggers[i][0] == triggers[i][1] {
			aux ^= 1 << i
		}
	}

	return aux ^ xorConstant
}

// DecryptROM decrypts an entire program ROM in place. The word at
// index i is decrypted at word address i, so the slice must start at
// the beginning of the ROM
func (d *Decryptor) DecryptROM(rom []uint16) {
	for i := range rom {
		rom[i] = d.Decrypt(rom[i], i)
	}
}

// DecryptROMBytes decrypts a raw little-endian ROM image in place. An
// image with an odd number of bytes is rejected before any word is
// touched
func (d *Decryptor) DecryptROMBytes(b []byte) error {
	if len(b)%2 != 0 {
		return errOddLength
	}

	for i := 0; i < len(b); i += 2 {
		binary.LittleEndian.PutUint16(b[i:], d.Decrypt(binary.LittleEndian.Uint16(b[i:]), i/2))
	}

	return nil
}
