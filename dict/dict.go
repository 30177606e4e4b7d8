// SPDX-License-Identifier: MIT

package dict

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/lgleje/CRF/feature"
)

// ErrFormat indicates malformed persisted dictionary data.
var ErrFormat = errors.New("dict: malformed dictionary data")

// entry holds the counts of one token.
type entry struct {
	total  int
	states map[int]int
}

// Dictionary maps tokens to occurrence counts. It is mutated only by Train
// and Add; afterwards it is read-only and safe for concurrent readers.
type Dictionary struct {
	words map[string]*entry
}

// New returns an empty dictionary.
func New() *Dictionary {
	return &Dictionary{words: make(map[string]*entry)}
}

// Add records one occurrence of tok under state.
func (d *Dictionary) Add(tok string, state int) {
	e, ok := d.words[tok]
	if !ok {
		e = &entry{states: make(map[int]int)}
		d.words[tok] = e
	}
	e.total++
	e.states[state]++
}

// Train replaces the counts with those of every position of every sequence
// in iter. Labels are read as states, so the state mapping pass must run
// first.
func (d *Dictionary) Train(iter feature.DataIter) error {
	clear(d.words)
	for iter.Reset(); iter.Next(); {
		seq := iter.Sequence()
		for pos := 0; pos < seq.Len(); pos++ {
			d.Add(seq.Token(pos), seq.Label(pos))
		}
	}

	return iter.Err()
}

// Count returns how often tok occurred.
func (d *Dictionary) Count(tok string) int {
	if e, ok := d.words[tok]; ok {
		return e.total
	}

	return 0
}

// StateCount returns how often tok occurred under state.
func (d *Dictionary) StateCount(tok string, state int) int {
	if e, ok := d.words[tok]; ok {
		return e.states[state]
	}

	return 0
}

// States returns the states tok occurred under, ascending.
func (d *Dictionary) States(tok string) []int {
	e, ok := d.words[tok]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(e.states))
	for s := range e.states {
		out = append(out, s)
	}
	sort.Ints(out)

	return out
}

// Len returns the number of distinct tokens.
func (d *Dictionary) Len() int { return len(d.words) }

// Tokens returns the distinct tokens, ascending.
func (d *Dictionary) Tokens() []string {
	out := make([]string, 0, len(d.words))
	for tok := range d.words {
		out = append(out, tok)
	}
	sort.Strings(out)

	return out
}

// WriteTo writes the dictionary section.
func (d *Dictionary) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", len(d.words))
	for _, tok := range d.Tokens() {
		b.WriteString(url.QueryEscape(tok))
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(d.words[tok].total))
		for _, s := range d.States(tok) {
			fmt.Fprintf(&b, " %d:%d", s, d.words[tok].states[s])
		}
		b.WriteByte('\n')
	}
	n, err := io.WriteString(w, b.String())

	return int64(n), err
}

// Read parses a dictionary section from br, consuming exactly its lines.
// States must lie in [0, numStates); a non-positive numStates disables the
// check.
func Read(br *bufio.Reader, numStates int) (*Dictionary, error) {
	header, err := readLine(br)
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrFormat, err)
	}
	count, err := strconv.Atoi(header)
	if err != nil || count < 0 {
		return nil, fmt.Errorf("%w: bad count header %q", ErrFormat, header)
	}

	d := New()
	for n := 0; n < count; n++ {
		line, err := readLine(br)
		if err != nil {
			return nil, fmt.Errorf("%w: declared %d tokens, found %d: %v", ErrFormat, count, n, err)
		}
		if err := d.parseEntry(line, numStates); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrFormat, n+1, err)
		}
	}

	return d, nil
}

func (d *Dictionary) parseEntry(line string, numStates int) error {
	fields := strings.Split(line, " ")
	if len(fields) < 2 {
		return fmt.Errorf("want \"<token> <total> ...\", got %q", line)
	}
	tok, err := url.QueryUnescape(fields[0])
	if err != nil {
		return fmt.Errorf("token %q: %v", fields[0], err)
	}
	if _, dup := d.words[tok]; dup {
		return fmt.Errorf("duplicate token %q", tok)
	}
	total, err := strconv.Atoi(fields[1])
	if err != nil || total < 0 {
		return fmt.Errorf("bad total %q", fields[1])
	}

	e := &entry{total: total, states: make(map[int]int, len(fields)-2)}
	for _, f := range fields[2:] {
		st, num, ok := strings.Cut(f, ":")
		if !ok {
			return fmt.Errorf("bad state count %q", f)
		}
		s, err1 := strconv.Atoi(st)
		c, err2 := strconv.Atoi(num)
		if err1 != nil || err2 != nil || s < 0 || c < 0 || (numStates > 0 && s >= numStates) {
			return fmt.Errorf("bad state count %q", f)
		}
		e.states[s] = c
	}
	d.words[tok] = e

	return nil
}

func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
