package tiger

import "encoding/binary"

// sboxSeed is the key the S-boxes are generated from, read as one little-endian block
const sboxSeed = "Tiger - A Fast New Hash Function, by Ross Anderson and Eli Biham"

const sboxPasses = 5

var sboxes [4][256]uint64

// The tables start as identity columns and are shuffled with bytes taken from repeatedly
// compressing the seed, each compression using the tables as shuffled so far.
//
//nolint:gochecknoinits
func init() {
	var seed [8]uint64
	for i := range seed {
		seed[i] = binary.LittleEndian.Uint64([]byte(sboxSeed)[i*8:])
	}

	var tab [4 * 256][8]byte
	for i := range tab {
		for col := range tab[i] {
			tab[i][col] = byte(i)
		}
	}

	load := func() {
		for sb := range sboxes {
			for i := range sboxes[sb] {
				sboxes[sb][i] = binary.LittleEndian.Uint64(tab[sb*256+i][:])
			}
		}
	}

	state := iv
	abc := 2
	for range sboxPasses {
		for i := range 256 {
			for sb := 0; sb < len(tab); sb += 256 {
				abc++
				if abc == 3 {
					abc = 0
					load()
					compress(&state, &seed)
				}
				for col := range 8 {
					j := sb + int(byte(state[abc]>>(8*col)))
					tab[sb+i][col], tab[j][col] = tab[j][col], tab[sb+i][col]
				}
			}
		}
	}
	load()
}
