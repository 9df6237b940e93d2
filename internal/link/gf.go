package link

/*------------------------------------------------------------------
 *
 * Purpose:	Galois field exponent/log tables backing the two Reed-Solomon
 *		codes used on the wire: GF(16) for RS(15,11) and GF(32) for
 *		RS(31,15).
 *
 * Description:	exp[i] = alpha^i for the field's primitive element alpha.
 *		log[x] is the inverse: exp[log[x]] == x for x != 0.
 *		Each exp table is written out three field-periods long so
 *		that gf*Mul can index exp[log(a)+log(b)] without a modulo
 *		on every multiply.
 *
 *------------------------------------------------------------------*/

// gf16Exp is alpha^i for GF(16), field polynomial x^4+x+1, tripled to
// cover the sum of two in-range logs without wrapping.
var gf16Exp = [45]byte{
	1, 2, 4, 8, 3, 6, 12, 11, 5, 10, 7, 14, 15, 13, 9,
	1, 2, 4, 8, 3, 6, 12, 11, 5, 10, 7, 14, 15, 13, 9,
	1, 2, 4, 8, 3, 6, 12, 11, 5, 10, 7, 14, 15, 13, 9,
}

var gf16Log = buildLog(gf16Exp[:15])

// gf32Exp is alpha^i for GF(32), field polynomial x^5+x^2+1.
var gf32Exp = [93]byte{
	1, 2, 4, 8, 16, 5, 10, 20, 13, 26, 17, 7, 14, 28, 29, 31, 27, 19, 3, 6, 12, 24, 21, 15, 30, 25, 23, 11, 22, 9, 18,
	1, 2, 4, 8, 16, 5, 10, 20, 13, 26, 17, 7, 14, 28, 29, 31, 27, 19, 3, 6, 12, 24, 21, 15, 30, 25, 23, 11, 22, 9, 18,
	1, 2, 4, 8, 16, 5, 10, 20, 13, 26, 17, 7, 14, 28, 29, 31, 27, 19, 3, 6, 12, 24, 21, 15, 30, 25, 23, 11, 22, 9, 18,
}

var gf32Log = buildLog(gf32Exp[:31])

func buildLog(period []byte) []byte {
	var tbl = make([]byte, len(period)+1)
	for i, v := range period {
		tbl[v] = byte(i)
	}
	return tbl
}

// gfMul multiplies two field elements given the field's exp/log tables.
// Either operand zero yields zero; otherwise exp[log(a)+log(b)].
func gfMul(exp, log []byte, a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return exp[int(log[a])+int(log[b])]
}
