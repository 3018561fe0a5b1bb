// SPDX-License-Identifier: MIT

package relax_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/sandpile/relax"
)

// BenchmarkVariants relaxes a 65×65 pile of fours on every variant.
func BenchmarkVariants(b *testing.B) {
	for _, v := range variants {
		for _, workers := range []int{1, 4} {
			b.Run(fmt.Sprintf("%s/w%d", v, workers), func(b *testing.B) {
				cfg := relax.Config{Height: 65, Width: 65, Workers: workers}
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := relax.Run(context.Background(), cfg, v); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
