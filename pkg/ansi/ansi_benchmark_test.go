package ansi

import "testing"

func BenchmarkSeq(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Seq(FgRed, Bold, Underline)
	}
}

func BenchmarkCodes(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Codes(38, 2, 180, 15, 70)
	}
}
