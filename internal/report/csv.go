package report

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// utf8BOM is the byte-order mark Excel prepends to UTF-8 CSV exports.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadRecords parses a schedule export into keyed records. The header row is
// required; every following row becomes one Record in file order. A UTF-8 BOM
// is tolerated and stripped. Structural failures (missing header, ragged or
// unparseable rows) yield a MalformedCSVError.
func ReadRecords(r io.Reader) ([]Record, error) {
	br := bufio.NewReader(r)
	if b, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(b, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &MalformedCSVError{Err: fmt.Errorf("missing header row")}
	}
	if err != nil {
		return nil, &MalformedCSVError{Err: err}
	}

	var records []Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &MalformedCSVError{Err: err}
		}
		rec := make(Record, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
