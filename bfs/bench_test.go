package bfs_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
)

// openBoard returns an n×n interior with Start and End in opposite corners.
func openBoard(n int) *grid.Grid {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = strings.Repeat(".", n)
	}
	rows[0] = "O" + rows[0][1:]
	rows[n-1] = rows[n-1][:n-1] + "X"
	return grid.MustParse(strings.Join(rows, "\n"))
}

// BenchmarkBFS_Open measures BFS across a 50×50 open board.
func BenchmarkBFS_Open(b *testing.B) {
	g := openBoard(50)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search(g)
	}
}
