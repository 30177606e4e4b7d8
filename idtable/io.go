// SPDX-License-Identifier: MIT

package idtable

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgleje/CRF/feature"
)

// maxSizeHint bounds the map preallocation taken from a header.
const maxSizeHint = 1 << 16

// WriteTo writes the table as a count header followed by one
// "<descriptor-text> <id>" line per entry in ascending id order.
// Both phases may be written; the output of an open table reads back frozen.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	names, err := t.ordered()
	if err != nil {
		return 0, err
	}

	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	if _, err = fmt.Fprintf(bw, "%d\n", len(names)); err != nil {
		return cw.n, err
	}
	for id, d := range names {
		if _, err = fmt.Fprintf(bw, "%s %d\n", d.String(), id); err != nil {
			return cw.n, err
		}
	}
	err = bw.Flush()

	return cw.n, err
}

// ordered returns the descriptors indexed by id.
func (t *Table) ordered() ([]feature.Descriptor, error) {
	switch s := t.state.(type) {
	case *frozenState:
		return s.names, nil
	case *openState:
		names := make([]feature.Descriptor, len(s.ids))
		for d, id := range s.ids {
			names[id] = d
		}
		return names, nil
	default:
		return nil, ErrInconsistentState
	}
}

// Read parses a table written by WriteTo and returns it frozen.
//
// br is shared with any section written before the table (the dictionary),
// so Read consumes exactly the header and the declared number of lines.
//
// Errors (all wrap ErrFormat):
//   - missing, non-numeric or negative count header;
//   - fewer entry lines than declared;
//   - an entry not of the form "<token> <integer>";
//   - an id outside [0, count), a repeated id or a repeated descriptor.
func Read(br *bufio.Reader) (*Table, error) {
	header, err := readLine(br)
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrFormat, err)
	}
	count, err := strconv.Atoi(header)
	if err != nil || count < 0 {
		return nil, fmt.Errorf("%w: bad count header %q", ErrFormat, header)
	}

	// count is untrusted until every declared line has been read.
	hint := min(count, maxSizeHint)
	ids := make(map[feature.Descriptor]int, hint)
	byID := make(map[int]feature.Descriptor, hint)
	for n := 0; n < count; n++ {
		line, err := readLine(br)
		if err != nil {
			return nil, fmt.Errorf("%w: declared %d entries, found %d: %v", ErrFormat, count, n, err)
		}
		d, id, err := parseEntry(line)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrFormat, n+1, err)
		}
		if id >= count {
			return nil, fmt.Errorf("%w: entry %d: id %d outside [0,%d)", ErrFormat, n+1, id, count)
		}
		if _, dup := byID[id]; dup {
			return nil, fmt.Errorf("%w: entry %d: duplicate id %d", ErrFormat, n+1, id)
		}
		if _, dup := ids[d]; dup {
			return nil, fmt.Errorf("%w: entry %d: duplicate descriptor %s", ErrFormat, n+1, d)
		}
		ids[d] = id
		byID[id] = d
	}

	// count distinct ids below count: the range is dense.
	names := make([]feature.Descriptor, count)
	for id, d := range byID {
		names[id] = d
	}

	return &Table{state: &frozenState{ids: ids, names: names}}, nil
}

// parseEntry splits "<token> <integer>".
func parseEntry(line string) (feature.Descriptor, int, error) {
	token, num, ok := strings.Cut(line, " ")
	if !ok || token == "" || strings.Contains(num, " ") {
		return feature.Descriptor{}, 0, fmt.Errorf("want \"<token> <id>\", got %q", line)
	}
	id, err := strconv.Atoi(num)
	if err != nil || id < 0 {
		return feature.Descriptor{}, 0, fmt.Errorf("bad id %q", num)
	}
	d, err := feature.ParseDescriptor(token)
	if err != nil {
		return feature.Descriptor{}, 0, err
	}

	return d, id, nil
}

// readLine returns the next line without its terminator. A final line
// without a newline is accepted; an exhausted reader yields io.EOF.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
