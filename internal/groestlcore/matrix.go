package groestlcore

// matrix is an 8-row byte matrix with up to 16 active columns. Only the
// first cols columns of each row are meaningful; the rest is unused
// backing storage so a matrix value never needs a heap allocation
// regardless of variant.
type matrix struct {
	cols int
	row  [8][16]byte
}

// blockToMatrix maps an ℓ-byte block onto an 8xc matrix column-major:
// block[i*8+j] becomes row j, column i.
func blockToMatrix(block []byte, cols int) matrix {
	var m matrix
	m.cols = cols
	for i := 0; i < cols; i++ {
		for j := 0; j < 8; j++ {
			m.row[j][i] = block[i*8+j]
		}
	}
	return m
}

// matrixToBlock is the inverse of blockToMatrix, writing into dst which
// must have length m.cols*8.
func (m *matrix) matrixToBlock(dst []byte) {
	for i := 0; i < m.cols; i++ {
		for j := 0; j < 8; j++ {
			dst[i*8+j] = m.row[j][i]
		}
	}
}

// shiftRow cyclically left-shifts row j by shift positions in place,
// using the gcd-cycle algorithm: gcd(shift, cols) independent cycles each
// of length cols/gcd(shift, cols), so no temporary row is needed.
func (m *matrix) shiftRow(j int, shift int) {
	cols := m.cols
	shift %= cols
	if shift == 0 {
		return
	}
	g := gcd(shift, cols)
	for start := 0; start < g; start++ {
		k := start
		tmp := m.row[j][k]
		for {
			pos := (k + shift) % cols
			if pos == start {
				break
			}
			m.row[j][k] = m.row[j][pos]
			k = pos
		}
		m.row[j][k] = tmp
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// mixBytes returns B*m, the matrix multiplication of the constant 8x8 MDS
// matrix against m over GF(2^8), column by column.
func (m *matrix) mixBytes() matrix {
	var out matrix
	out.cols = m.cols
	for col := 0; col < m.cols; col++ {
		for row := 0; row < 8; row++ {
			var acc byte
			for k := 0; k < 8; k++ {
				acc ^= gfMul(mdsB[row][k], m.row[k][col])
			}
			out.row[row][col] = acc
		}
	}
	return out
}
