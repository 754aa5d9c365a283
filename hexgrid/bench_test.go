// File: hexgrid/bench_test.go
package hexgrid_test

import (
	"testing"

	"github.com/katalvlaran/tessella/hexgrid"
)

func BenchmarkBuild_AllHexagons(b *testing.B) {
	for n := 0; n < b.N; n++ {
		if _, err := hexgrid.Build(32, 32, allHex); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuild_AllRosettes(b *testing.B) {
	for n := 0; n < b.N; n++ {
		if _, err := hexgrid.Build(32, 32, allRosette); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuild_Checkerboard(b *testing.B) {
	for n := 0; n < b.N; n++ {
		if _, err := hexgrid.Build(32, 32, func(i, j int) bool { return (i+j)%2 == 0 }); err != nil {
			b.Fatal(err)
		}
	}
}
