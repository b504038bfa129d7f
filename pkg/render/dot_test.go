package render

import (
	"strings"
	"testing"

	"github.com/mwarzecha/weft/pkg/dbg"
)

func testGraph(t *testing.T) *dbg.Graph {
	t.Helper()
	g, err := dbg.New(4)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.AddSequence("AACCGGTT"); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testGraph(t), Options{})

	if !strings.HasPrefix(dot, "digraph dbg {") {
		t.Errorf("missing digraph header: %q", dot[:min(40, len(dot))])
	}
	for _, kmer := range []string{"AACC", "ACCG", "CCGG", "CGGT", "GGTT"} {
		if !strings.Contains(dot, kmer) {
			t.Errorf("missing node label %q", kmer)
		}
	}
	if !strings.Contains(dot, "n0 -> n1;") {
		t.Error("missing chain edge n0 -> n1")
	}
	if strings.Contains(dot, "×") {
		t.Error("counts must be omitted by default")
	}
}

func TestToDOTCounts(t *testing.T) {
	dot := ToDOT(testGraph(t), Options{Counts: true})
	// Every k-mer of the palindromic read is seen twice, once per strand.
	if !strings.Contains(dot, "×2") {
		t.Error("count labels missing with Counts enabled")
	}
}

func TestToDOTDeterministic(t *testing.T) {
	g := testGraph(t)
	if ToDOT(g, Options{}) != ToDOT(g, Options{}) {
		t.Error("DOT output must be deterministic")
	}
}

func TestToDOTEmpty(t *testing.T) {
	g, err := dbg.New(4)
	if err != nil {
		t.Fatal(err)
	}
	dot := ToDOT(g, Options{})
	if !strings.Contains(dot, "digraph dbg {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("empty graph must still be valid DOT: %q", dot)
	}
}
