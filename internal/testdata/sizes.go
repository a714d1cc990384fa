package testdata

type Size struct {
	Name string
	N    int
}

// Rates are common sponge rates, in bytes, named by their width in bits. 576 through 1344 cover SHA3-512, SHA3-384,
// Keccak[c=576], SHA3-256/SHAKE256, SHA3-224, and SHAKE128/TurboSHAKE128.
var Rates []Size = []Size{
	{"576", 72},
	{"832", 104},
	{"1024", 128},
	{"1088", 136},
	{"1152", 144},
	{"1344", 168},
	{"1600", 200},
}
