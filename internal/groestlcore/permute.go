package groestlcore

// kind distinguishes the P and Q permutations, which differ in where the
// round index is XORed (AddRoundConstant) and in their ShiftBytes table.
type kind int

const (
	kindP kind = iota
	kindQ
)

// permute runs the R-round P or Q transform over an ℓ-byte block and
// returns the result. Each round applies AddRoundConstant, SubBytes,
// ShiftBytes and MixBytes in that order; there is no data-dependent
// control flow beyond table lookups on block-derived (not secret-derived
// beyond the hash state itself) indices.
func permute(variant Variant, k kind, block []byte) []byte {
	m := blockToMatrix(block, variant.Cols)

	var shifts [8]byte
	var rc [8][16]byte
	if k == kindP {
		shifts = variant.ShiftsP
		rc = cP
	} else {
		shifts = variant.ShiftsQ
		rc = cQ
	}

	for round := 0; round < variant.Rounds; round++ {
		addRoundConstant(&m, rc, k, byte(round))
		subBytes(&m)
		shiftBytes(&m, shifts)
		m = m.mixBytes()
	}

	out := make([]byte, variant.BlockLen)
	m.matrixToBlock(out)
	return out
}

// addRoundConstant XORs the round's slice of the constant table into m,
// then XORs the round index across row 0 (P) or row 7 (Q).
func addRoundConstant(m *matrix, c [8][16]byte, k kind, round byte) {
	for i := 0; i < 8; i++ {
		for j := 0; j < m.cols; j++ {
			m.row[i][j] ^= c[i][j]
		}
	}
	idxRow := 0
	if k == kindQ {
		idxRow = 7
	}
	for j := 0; j < m.cols; j++ {
		m.row[idxRow][j] ^= round
	}
}

func subBytes(m *matrix) {
	for i := 0; i < 8; i++ {
		for j := 0; j < m.cols; j++ {
			m.row[i][j] = sbox[m.row[i][j]]
		}
	}
}

func shiftBytes(m *matrix, shifts [8]byte) {
	for i := 0; i < 8; i++ {
		m.shiftRow(i, int(shifts[i]))
	}
}
