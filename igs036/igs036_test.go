package igs036

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecryptZeroKey(t *testing.T) {
	d := new(Decryptor)

	// with no XORs keyed in, decryption is the deobfuscation plus the
	// final constant
	assert.Equal(t, uint16(0x1a3a), d.Decrypt(0x0000, 0))
	assert.Equal(t, uint16(0xe5c5), d.Decrypt(0xffff, 0))

	for _, address := range []int{0, 0x80, 0x1ff, 0x12345, 0x7fffff} {
		for _, cipher := range []uint16{0x0000, 0x1234, 0xa5a5, 0xffff} {
			assert.Equal(t, deobfuscate(cipher, address)^xorConstant, d.Decrypt(cipher, address))
		}
	}
}

func TestDecryptOrleg2(t *testing.T) {
	d := NewDecryptor(orleg2Key)

	for _, table := range []struct {
		address int
		cipher  uint16
		want    uint16
	}{
		{0x000000, 0x1234, 0x5b10},
		{0x000001, 0xffff, 0xe5c5},
		{0x000080, 0x0000, 0x1a3a},
		{0x0001ff, 0xa5a5, 0x30cb},
		{0x012345, 0x5a5a, 0x7887},
		{0x0fffff, 0x8001, 0x7a3a},
		{0x400183, 0x7e57, 0xf981},
		{0x7fffff, 0xdead, 0x6384},
		{0x000100, 0xbeef, 0xc465},
		{0x200447, 0x0d15, 0x073e},
	} {
		assert.Equal(t, table.want, d.Decrypt(table.cipher, table.address))
	}
}

func TestDecryptDeterministic(t *testing.T) {
	d := NewDecryptor(kov3Key)

	for address := 0; address < 1<<24; address += 104729 {
		cipher := uint16(address * 31)
		first := d.Decrypt(cipher, address)
		assert.Equal(t, first, d.Decrypt(cipher, address))
	}
}

func TestDecryptROM(t *testing.T) {
	d := NewDecryptor(kov2Key)

	r := rand.New(rand.NewSource(1))

	rom := make([]uint16, 0x400)
	want := make([]uint16, len(rom))
	for i := range rom {
		rom[i] = uint16(r.Uint32())
		want[i] = d.Decrypt(rom[i], i)
	}

	d.DecryptROM(rom)

	assert.Equal(t, want, rom)
}

func TestDecryptROMBytes(t *testing.T) {
	d := NewDecryptor(orleg2Key)

	b := []byte{0x34, 0x12, 0x00, 0x00, 0xff, 0xff}

	rom := []uint16{0x1234, 0x0000, 0xffff}
	d.DecryptROM(rom)

	assert.Nil(t, d.DecryptROMBytes(b))
	for i, w := range rom {
		assert.Equal(t, w, uint16(b[i*2])|uint16(b[i*2+1])<<8)
	}

	assert.Equal(t, errOddLength, d.DecryptROMBytes(make([]byte, 3)))
}

func TestTriggers(t *testing.T) {
	assert.Len(t, triggers, 16)

	for _, trigger := range triggers {
		// a match outside its mask could never fire
		assert.Equal(t, trigger[1], trigger[0]&trigger[1])
	}
}

func TestGames(t *testing.T) {
	assert.Len(t, Games, 8)

	assert.Equal(t, KeySuspect, Games["ddpdoj"].KeyStatus)
	assert.Equal(t, KeyBad, Games["kof98umh"].KeyStatus)

	assert.Equal(t, "good", Games["orleg2"].KeyStatus.String())
	assert.Equal(t, "bad", KeyBad.String())
}
