package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/theirongolddev/cashburn/internal/source"
)

func BenchmarkBuild(b *testing.B) {
	expenses := randomLedger(gofakeit.New(1), 10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r := Build(expenses, Options{}, nil)
		if r.ProjectionErr != nil {
			b.Fatal(r.ProjectionErr)
		}
	}
}

func BenchmarkLoad(b *testing.B) {
	dir := b.TempDir()
	f := gofakeit.New(2)
	for i := 0; i < 8; i++ {
		path := filepath.Join(dir, "seed-"+f.LetterN(6)+".csv")
		if err := source.WriteFile(path, randomLedger(f, 2000)); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, err := Load([]string{dir}, nil)
		if err != nil {
			b.Fatal(err)
		}
		if result.FileErrors > 0 {
			b.Fatal(result.Errors)
		}
	}
}

func BenchmarkScanPaths(b *testing.B) {
	dir := b.TempDir()
	for i := 0; i < 50; i++ {
		if err := os.WriteFile(filepath.Join(dir, gofakeit.New(uint64(i)).LetterN(8)+".csv"), nil, 0o600); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := source.ScanPaths([]string{dir}); err != nil {
			b.Fatal(err)
		}
	}
}
