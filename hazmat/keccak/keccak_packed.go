package keccak

import (
	"math/bits"

	"github.com/codahale/keccak1600/internal/mem"
)

// v128 is two 64-bit lanes handled as one 128-bit word. Every operation on it is lane-wise, matching what a 128-bit
// SIMD register does with 64-bit elements.
type v128 struct {
	lo, hi uint64
}

func pack(lo, hi uint64) v128 {
	return v128{lo, hi}
}

func xor128(a, b v128) v128 {
	return v128{a.lo ^ b.lo, a.hi ^ b.hi}
}

// andnu128 returns ^a & b.
func andnu128(a, b v128) v128 {
	return v128{b.lo &^ a.lo, b.hi &^ a.hi}
}

func rol128(a v128, n int) v128 {
	return v128{bits.RotateLeft64(a.lo, n), bits.RotateLeft64(a.hi, n)}
}

// packedState is the lane-pair layout of a single state. Rows are named by y (b, g, k, m, s) and columns by x (a, e,
// i, o, u). Rows b and g share five double-lanes, each holding b[x] and g[x+1]; rows k and m are paired the same way.
// Row s is kept as scalar lanes.
//
// With this pairing, χ for rows b and g (and for k and m) is five 128-bit operations: the hi half of each double-lane
// sees its row neighbours in the hi halves of the next two double-lanes, just as the lo half does.
type packedState struct {
	bage, begi, bigo, bogu, buga v128
	kame, kemi, kimo, komu, kuma v128
	sa, se, si, so, su           uint64
}

func (p *packedState) load(a *[25]uint64) {
	p.bage, p.begi, p.bigo, p.bogu, p.buga = pack(a[0], a[6]), pack(a[1], a[7]), pack(a[2], a[8]), pack(a[3], a[9]),
		pack(a[4], a[5])
	p.kame, p.kemi, p.kimo, p.komu, p.kuma = pack(a[10], a[16]), pack(a[11], a[17]), pack(a[12], a[18]),
		pack(a[13], a[19]), pack(a[14], a[15])
	p.sa, p.se, p.si, p.so, p.su = a[20], a[21], a[22], a[23], a[24]
}

func (p *packedState) store(a *[25]uint64) {
	a[0], a[6], a[1], a[7], a[2], a[8], a[3], a[9], a[4], a[5] = p.bage.lo, p.bage.hi, p.begi.lo, p.begi.hi,
		p.bigo.lo, p.bigo.hi, p.bogu.lo, p.bogu.hi, p.buga.lo, p.buga.hi
	a[10], a[16], a[11], a[17], a[12], a[18], a[13], a[19], a[14], a[15] = p.kame.lo, p.kame.hi, p.kemi.lo, p.kemi.hi,
		p.kimo.lo, p.kimo.hi, p.komu.lo, p.komu.hi, p.kuma.lo, p.kuma.hi
	a[20], a[21], a[22], a[23], a[24] = p.sa, p.se, p.si, p.so, p.su
}

func (p *packedState) round(rc uint64) {
	// θ: column parities, with columns (a, e) and (i, o) computed as double-lanes.
	bk0, bk1, bk2, bk3, bk4 := xor128(p.bage, p.kame), xor128(p.begi, p.kemi), xor128(p.bigo, p.kimo),
		xor128(p.bogu, p.komu), xor128(p.buga, p.kuma)
	cae := xor128(xor128(pack(bk0.lo, bk1.lo), pack(bk4.hi, bk0.hi)), pack(p.sa, p.se))
	cio := xor128(xor128(pack(bk2.lo, bk3.lo), pack(bk1.hi, bk2.hi)), pack(p.si, p.so))
	cu := bk4.lo ^ bk3.hi ^ p.su

	// D for columns (e, i) and (o, u) two at a time; column a alone.
	dei := xor128(cae, rol128(cio, 1))
	dou := xor128(cio, rol128(pack(cu, cae.lo), 1))
	da := cu ^ bits.RotateLeft64(cae.hi, 1)
	de, di, do, du := dei.lo, dei.hi, dou.lo, dou.hi

	// ρ and π into rows b and g.
	bbage := pack(p.bage.lo^da, bits.RotateLeft64(p.bogu.hi^du, 20))
	bbegi := pack(bits.RotateLeft64(p.bage.hi^de, 44), bits.RotateLeft64(p.kame.lo^da, 3))
	bbigo := pack(bits.RotateLeft64(p.kimo.lo^di, 43), bits.RotateLeft64(p.kame.hi^de, 45))
	bbogu := pack(bits.RotateLeft64(p.kimo.hi^do, 21), bits.RotateLeft64(p.si^di, 61))
	bbuga := pack(bits.RotateLeft64(p.su^du, 14), bits.RotateLeft64(p.bogu.lo^do, 28))

	// ρ and π into rows k and m.
	bkame := pack(bits.RotateLeft64(p.begi.lo^de, 1), bits.RotateLeft64(p.buga.hi^da, 36))
	bkemi := pack(bits.RotateLeft64(p.begi.hi^di, 6), bits.RotateLeft64(p.kemi.lo^de, 10))
	bkimo := pack(bits.RotateLeft64(p.komu.lo^do, 25), bits.RotateLeft64(p.kemi.hi^di, 15))
	bkomu := pack(bits.RotateLeft64(p.komu.hi^du, 8), bits.RotateLeft64(p.so^do, 56))
	bkuma := pack(bits.RotateLeft64(p.sa^da, 18), bits.RotateLeft64(p.buga.lo^du, 27))

	// ρ and π into row s.
	bsa := bits.RotateLeft64(p.bigo.lo^di, 62)
	bse := bits.RotateLeft64(p.bigo.hi^do, 55)
	bsi := bits.RotateLeft64(p.kuma.lo^du, 39)
	bso := bits.RotateLeft64(p.kuma.hi^da, 41)
	bsu := bits.RotateLeft64(p.se^de, 2)

	// χ and ι. The round constant only touches the lo half of bage, which is lane (0, 0).
	p.bage = xor128(xor128(bbage, andnu128(bbegi, bbigo)), pack(rc, 0))
	p.begi = xor128(bbegi, andnu128(bbigo, bbogu))
	p.bigo = xor128(bbigo, andnu128(bbogu, bbuga))
	p.bogu = xor128(bbogu, andnu128(bbuga, bbage))
	p.buga = xor128(bbuga, andnu128(bbage, bbegi))

	p.kame = xor128(bkame, andnu128(bkemi, bkimo))
	p.kemi = xor128(bkemi, andnu128(bkimo, bkomu))
	p.kimo = xor128(bkimo, andnu128(bkomu, bkuma))
	p.komu = xor128(bkomu, andnu128(bkuma, bkame))
	p.kuma = xor128(bkuma, andnu128(bkame, bkemi))

	p.sa, p.se, p.si, p.so, p.su = chi(bsa, bse, bsi, bso, bsu)
}

// f1600Packed runs the lane-pair layout on one state. F1600 does not select it: without 128-bit instructions it is no
// faster than f1600Generic.
func f1600Packed(state *[StateSize]byte, rounds int) {
	var (
		a [25]uint64
		p packedState
	)
	mem.Load(&a, state)
	p.load(&a)
	for _, rc := range roundConstants[Rounds-rounds:] {
		p.round(rc)
	}
	p.store(&a)
	mem.Store(state, &a)
}

// f1600x2Packed permutes two states together, holding lane i of state1 and lane i of state2 in one double-lane.
func f1600x2Packed(state1, state2 *[StateSize]byte, rounds int) {
	var (
		a1, a2 [25]uint64
		a      [25]v128
	)
	mem.Load(&a1, state1)
	mem.Load(&a2, state2)
	for i := range a {
		a[i] = pack(a1[i], a2[i])
	}

	for _, rc := range roundConstants[Rounds-rounds:] {
		roundX2(&a, pack(rc, rc))
	}

	for i, v := range a {
		a1[i], a2[i] = v.lo, v.hi
	}
	mem.Store(state1, &a1)
	mem.Store(state2, &a2)
}

// roundX2 is roundsGeneric's round body over double-lanes.
func roundX2(a *[25]v128, rc v128) {
	c0 := xor128(xor128(xor128(xor128(a[0], a[5]), a[10]), a[15]), a[20])
	c1 := xor128(xor128(xor128(xor128(a[1], a[6]), a[11]), a[16]), a[21])
	c2 := xor128(xor128(xor128(xor128(a[2], a[7]), a[12]), a[17]), a[22])
	c3 := xor128(xor128(xor128(xor128(a[3], a[8]), a[13]), a[18]), a[23])
	c4 := xor128(xor128(xor128(xor128(a[4], a[9]), a[14]), a[19]), a[24])
	d0 := xor128(c4, rol128(c1, 1))
	d1 := xor128(c0, rol128(c2, 1))
	d2 := xor128(c1, rol128(c3, 1))
	d3 := xor128(c2, rol128(c4, 1))
	d4 := xor128(c3, rol128(c0, 1))

	var e [25]v128
	e[0], e[1], e[2], e[3], e[4] = chi128(
		xor128(a[0], d0),
		rol128(xor128(a[6], d1), 44),
		rol128(xor128(a[12], d2), 43),
		rol128(xor128(a[18], d3), 21),
		rol128(xor128(a[24], d4), 14),
	)
	e[0] = xor128(e[0], rc)
	e[5], e[6], e[7], e[8], e[9] = chi128(
		rol128(xor128(a[3], d3), 28),
		rol128(xor128(a[9], d4), 20),
		rol128(xor128(a[10], d0), 3),
		rol128(xor128(a[16], d1), 45),
		rol128(xor128(a[22], d2), 61),
	)
	e[10], e[11], e[12], e[13], e[14] = chi128(
		rol128(xor128(a[1], d1), 1),
		rol128(xor128(a[7], d2), 6),
		rol128(xor128(a[13], d3), 25),
		rol128(xor128(a[19], d4), 8),
		rol128(xor128(a[20], d0), 18),
	)
	e[15], e[16], e[17], e[18], e[19] = chi128(
		rol128(xor128(a[4], d4), 27),
		rol128(xor128(a[5], d0), 36),
		rol128(xor128(a[11], d1), 10),
		rol128(xor128(a[17], d2), 15),
		rol128(xor128(a[23], d3), 56),
	)
	e[20], e[21], e[22], e[23], e[24] = chi128(
		rol128(xor128(a[2], d2), 62),
		rol128(xor128(a[8], d3), 55),
		rol128(xor128(a[14], d4), 39),
		rol128(xor128(a[15], d0), 41),
		rol128(xor128(a[21], d1), 2),
	)
	*a = e
}

func chi128(b0, b1, b2, b3, b4 v128) (e0, e1, e2, e3, e4 v128) {
	return xor128(b0, andnu128(b1, b2)), xor128(b1, andnu128(b2, b3)), xor128(b2, andnu128(b3, b4)),
		xor128(b3, andnu128(b4, b0)), xor128(b4, andnu128(b0, b1))
}
