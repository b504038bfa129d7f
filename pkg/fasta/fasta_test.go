package fasta

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	in := `>read1 sample description
ACGT
acgt

>read2
GATTACA
`
	records, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].ID != "read1" {
		t.Errorf("ID = %q, want read1 (description dropped)", records[0].ID)
	}
	if records[0].Seq != "ACGTACGT" {
		t.Errorf("Seq = %q, want ACGTACGT (lines joined and uppercased)", records[0].Seq)
	}
	if records[1].ID != "read2" || records[1].Seq != "GATTACA" {
		t.Errorf("record 2 = %+v", records[1])
	}
}

func TestReadEmptyInput(t *testing.T) {
	records, err := Read(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestReadHeaderOnly(t *testing.T) {
	records, err := Read(strings.NewReader(">empty\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Seq != "" {
		t.Errorf("records = %+v, want one empty-sequence record", records)
	}
}

func TestReadDataBeforeHeader(t *testing.T) {
	if _, err := Read(strings.NewReader("ACGT\n>late\nACGT\n")); err == nil {
		t.Error("expected an error for sequence data before the first header")
	}
}

func TestSequences(t *testing.T) {
	records := []Record{{ID: "a", Seq: "ACGT"}, {ID: "b", Seq: "GG"}}
	seqs := Sequences(records)
	if len(seqs) != 2 || seqs[0] != "ACGT" || seqs[1] != "GG" {
		t.Errorf("Sequences = %v", seqs)
	}
}

func TestWriteContigs(t *testing.T) {
	var b strings.Builder
	if err := WriteContigs(&b, []string{"AACCGGTT", "ACG"}); err != nil {
		t.Fatal(err)
	}
	want := ">contig_0\nAACCGGTT\n>contig_1\nACG\n"
	if b.String() != want {
		t.Errorf("output = %q, want %q", b.String(), want)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contigs.fasta")
	contigs := []string{"AACCGGTT", "GATTACA"}
	if err := WriteContigsFile(path, contigs); err != nil {
		t.Fatal(err)
	}

	records, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != len(contigs) {
		t.Fatalf("got %d records, want %d", len(records), len(contigs))
	}
	for i, rec := range records {
		if rec.Seq != contigs[i] {
			t.Errorf("record %d = %q, want %q", i, rec.Seq, contigs[i])
		}
	}
}
