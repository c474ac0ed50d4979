package igs036

func bit(n, b int) int {
	return n >> b & 1
}

func bitswapUint16(n uint16, bits ...int) (result uint16) {
	for _, b := range bits {
		result <<= 1
		if n&(1<<b) > 0 {
			result |= 1
		}
	}
	return
}
