package fuzztests

import "testing"

const maxSeedBytes = 64 << 10 // 64 KiB

const maxFuzzInput = 1 << 16 // 64 KiB

// seeds covers every token kind, the statement forms and the recovery paths.
var seeds = []string{
	"",
	"let x = 4; let y = 9; let foobar = 838383;",
	"return 5; return 53; return x;",
	"let 3242;\nlet x = 1;",
	"let = 5;",
	"let x 5;",
	"let x = ",
	"return",
	";;;",
	"( ) { } [ ] = + - ; < > # ! : \" , * /",
	":: << == != <= := ==!",
	"if else show fn true false let return",
	"fn add(a, b) { return a + b; }",
	"let λ = 1;",
	"let x = 1;\r\nreturn x;\r\n",
	"\ufefflet bom = 1;",
	"\xff\xfe let x = 1;",
	"_private = 1; x1 = 2;",
	"let a = 1 let b = 2; return",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range seeds {
		f.Add(clampSeed([]byte(s)))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
