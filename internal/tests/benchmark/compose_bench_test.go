package benchmark

import (
	"fmt"
	"testing"

	"github.com/sshblend/sshblend/internal/core/domain"
	"github.com/sshblend/sshblend/internal/core/service"
)

// BenchmarkCompose benchmarks rendering the final document from
// already-evaluated fragments.
func BenchmarkCompose(b *testing.B) {
	for _, count := range FragmentCounts {
		items := make([]service.Item, count)
		for i := range items {
			items[i] = service.Item{
				Fragment: domain.ParseFragment(fmt.Sprintf("%02d-bench.sshconf", i), fragmentText(i)),
				// Alternate selections so both branches render.
				Evaluation: domain.Evaluation{UseLocal: i%2 == 0},
			}
		}

		b.Run(fmt.Sprintf("fragments_%d", count), func(b *testing.B) {
			b.ReportAllocs()
			var size int
			for i := 0; i < b.N; i++ {
				size = len(service.Compose(items))
			}
			b.SetBytes(int64(size))
		})
	}
}
