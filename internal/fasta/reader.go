// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"io"

	"github.com/pkg/errors"
)

// Record is one parsed FASTA sequence.
type Record struct {
	Name string
	Seq  []byte
}

const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)

// StreamRecordsCtx opens path ("-" for stdin, gzip auto-detected) and emits
// whole records in file order. Records are never chunked: downstream
// run-length tracking needs each record's base stream intact.
//
// emit returning a non-nil error (including ctx.Err()) stops the scan.
func StreamRecordsCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	if err := ScanRecords(ctx, rc, emit); err != nil {
		return errors.Wrapf(err, "%s", path)
	}
	return nil
}

// ScanRecords parses FASTA from r and emits one Record per '>' header.
// Empty lines are skipped; sequence lines are whitespace-trimmed. The
// emitted Seq is an independent copy.
func ScanRecords(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		name    string
		seq     = make([]byte, 0, 1<<20)
		started bool
	)

	flush := func() error {
		if !started {
			return nil
		}
		return emit(Record{Name: name, Seq: append([]byte(nil), seq...)})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			name = parseHeaderName(line[1:])
			seq = seq[:0]
			started = true
			continue
		}
		if !started {
			return errors.New("malformed FASTA: sequence data before any header")
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "fasta scan")
	}
	return flush()
}

// parseHeaderName returns the token up to the first whitespace after '>'.
func parseHeaderName(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
