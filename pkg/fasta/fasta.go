// Package fasta reads and writes FASTA sequence files.
//
// The reader accepts the subset of FASTA the assembler consumes: '>' header
// lines followed by one or more sequence lines, which are concatenated and
// uppercased. Validation of the nucleotide alphabet is left to the graph
// builder, which rejects bad characters with a precise error.
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is a single FASTA entry.
type Record struct {
	ID  string
	Seq string
}

// maxLine allows very long single-line sequences (64 MiB).
const maxLine = 64 * 1024 * 1024

// Read parses all records from r.
// Sequence lines are concatenated and uppercased; blank lines are ignored.
// Header text after the first whitespace is dropped from the ID.
func Read(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		records []Record
		id      string
		started bool
		seq     bytes.Buffer
	)

	flush := func() {
		if !started {
			return
		}
		records = append(records, Record{ID: id, Seq: strings.ToUpper(seq.String())})
		seq.Reset()
	}

	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			flush()
			started = true
			id = headerID(line[1:])
			continue
		}
		if !started {
			return nil, fmt.Errorf("sequence data before first header: %q", line)
		}
		seq.Write(line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()

	return records, nil
}

// ReadFile parses all records from the file at path.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Sequences extracts just the sequence strings, preserving record order.
func Sequences(records []Record) []string {
	seqs := make([]string, len(records))
	for i, rec := range records {
		seqs[i] = rec.Seq
	}
	return seqs
}

// WriteContigs writes contigs to w as FASTA records labeled contig_0,
// contig_1, ... in the given order. The labels are stable: they reflect
// extraction order, which downstream evaluation relies on.
func WriteContigs(w io.Writer, contigs []string) error {
	bw := bufio.NewWriter(w)
	for i, c := range contigs {
		if _, err := fmt.Fprintf(bw, ">contig_%d\n%s\n", i, c); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteContigsFile writes contigs to a FASTA file at path.
func WriteContigsFile(path string, contigs []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteContigs(f, contigs)
}

// headerID returns the first whitespace-delimited token of a header line.
func headerID(header []byte) string {
	fields := bytes.Fields(header)
	if len(fields) == 0 {
		return ""
	}
	return string(fields[0])
}
