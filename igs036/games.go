package igs036

// KeyStatus records the provenance of a recovered key table
type KeyStatus int

// A key is either believed good, recovered under difficulty and so
// more likely to contain residual errors, or known to be wrong
const (
	KeyGood KeyStatus = iota
	KeySuspect
	KeyBad
)

func (s KeyStatus) String() string {
	strings := map[KeyStatus]string{
		KeyGood:    "good",
		KeySuspect: "suspect",
		KeyBad:     "bad",
	}

	return strings[s]
}

// Game describes one supported game set
type Game struct {
	Description string
	Key         Key
	KeyStatus   KeyStatus
}

// Games maps MAME-style set names to their descriptions and key
// tables. A bad or suspect key is still applied faithfully; the
// resulting plaintext is simply not to be trusted.
//
// The unused tail of each ROM is pattern-filled and appears to hide a
// 20-byte value (a SHA-1 hash?) at a position which varies per set,
// e.g. $76c77c in orleg2 and $718040 in kov3. Nothing here looks at
// that region.
var Games = map[string]Game{
	"orleg2":   {"Oriental Legend 2", orleg2Key, KeyGood},
	"m312cn":   {"Majiang Wangchao (M312CN)", m312cnKey, KeyGood},
	"cjddzsp":  {"Chaoji Dou Dizhu Special", cjddzspKey, KeyGood},
	"cjdh2":    {"Chao Ji Da Heng 2", cjdh2Key, KeyGood},
	"kov3":     {"Knights of Valour 3", kov3Key, KeyGood},
	"kov2":     {"Knights of Valour 2 New Legend", kov2Key, KeyGood},
	"ddpdoj":   {"DoDonPachi Dai-Ou-Jou Tamashii", ddpdojKey, KeySuspect},
	"kof98umh": {"The King of Fighters '98 Ultimate Match Hero", kof98umhKey, KeyBad},
}
