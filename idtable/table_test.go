// SPDX-License-Identifier: MIT

package idtable_test

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/lgleje/CRF/feature"
	"github.com/lgleje/CRF/idtable"
)

var (
	descA = feature.Descriptor{Kind: "W", Payload: "a", Label: 0, PrevLabel: feature.NoLabel}
	descB = feature.Descriptor{Kind: "W", Payload: "b", Label: 0, PrevLabel: feature.NoLabel}
	descC = feature.Descriptor{Kind: "E", Label: 1, PrevLabel: 0}
	descD = feature.Descriptor{Kind: "W", Payload: "New York", Label: 2, PrevLabel: feature.NoLabel}
)

// TableSuite exercises the open/frozen lifecycle.
type TableSuite struct {
	suite.Suite
}

// TestFirstSeenOrder verifies ids start at 0 and follow first-seen order,
// and that repeated calls with equal descriptors are stable.
func (s *TableSuite) TestFirstSeenOrder() {
	tbl := idtable.New()
	want := map[feature.Descriptor]int{descA: 0, descB: 1, descC: 2}
	for _, d := range []feature.Descriptor{descA, descB, descA, descC, descB, descA} {
		id, err := tbl.LookupOrAssign(d)
		require.NoError(s.T(), err)
		require.Equal(s.T(), want[d], id)
	}
	require.Equal(s.T(), 3, tbl.Size())
	require.False(s.T(), tbl.Frozen())
}

// TestCopiedKeyIsIndependent verifies that mutating the caller's value after
// interning does not affect the stored key.
func (s *TableSuite) TestCopiedKeyIsIndependent() {
	tbl := idtable.New()
	scratch := descA
	id, err := tbl.LookupOrAssign(scratch)
	require.NoError(s.T(), err)

	scratch.Payload = "changed"
	got, ok := tbl.Lookup(descA)
	require.True(s.T(), ok)
	require.Equal(s.T(), id, got)
	_, ok = tbl.Lookup(scratch)
	require.False(s.T(), ok)
}

// TestFreeze verifies frozen lookups never assign and size is stable.
func (s *TableSuite) TestFreeze() {
	tbl := idtable.New()
	for _, d := range []feature.Descriptor{descA, descB} {
		_, err := tbl.LookupOrAssign(d)
		require.NoError(s.T(), err)
	}
	require.NoError(s.T(), tbl.Freeze())
	require.True(s.T(), tbl.Frozen())

	for i := 0; i < 3; i++ {
		id, err := tbl.LookupOrAssign(descC)
		require.NoError(s.T(), err)
		require.Equal(s.T(), idtable.NotFound, id)

		id, err = tbl.LookupOrAssign(descB)
		require.NoError(s.T(), err)
		require.Equal(s.T(), 1, id)
		require.Equal(s.T(), 2, tbl.Size())
	}

	// second freeze keeps the reverse mapping intact
	require.NoError(s.T(), tbl.Freeze())
	d, err := tbl.Descriptor(1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), descB, d)
	name, err := tbl.Name(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), descA.String(), name)
}

// TestReverseLookupErrors verifies the reverse mapping guards.
func (s *TableSuite) TestReverseLookupErrors() {
	tbl := idtable.New()
	_, err := tbl.LookupOrAssign(descA)
	require.NoError(s.T(), err)

	_, err = tbl.Descriptor(0)
	require.ErrorIs(s.T(), err, idtable.ErrNotFrozen)

	require.NoError(s.T(), tbl.Freeze())
	_, err = tbl.Descriptor(1)
	require.ErrorIs(s.T(), err, idtable.ErrUnknownID)
	_, err = tbl.Descriptor(-1)
	require.ErrorIs(s.T(), err, idtable.ErrUnknownID)
}

// TestZeroValue verifies a table outside both phases rejects every call.
func (s *TableSuite) TestZeroValue() {
	var tbl idtable.Table
	_, err := tbl.LookupOrAssign(descA)
	require.ErrorIs(s.T(), err, idtable.ErrInconsistentState)
	require.ErrorIs(s.T(), tbl.Freeze(), idtable.ErrInconsistentState)
	_, err = tbl.Descriptor(0)
	require.ErrorIs(s.T(), err, idtable.ErrInconsistentState)
	_, err = tbl.WriteTo(&bytes.Buffer{})
	require.ErrorIs(s.T(), err, idtable.ErrInconsistentState)
	_, ok := tbl.Lookup(descA)
	require.False(s.T(), ok)
	require.Equal(s.T(), 0, tbl.Size())
}

// TestRoundTrip verifies Read(WriteTo(t)) preserves size and mapping.
func (s *TableSuite) TestRoundTrip() {
	tbl := idtable.New()
	for _, d := range []feature.Descriptor{descD, descA, descC, descB} {
		_, err := tbl.LookupOrAssign(d)
		require.NoError(s.T(), err)
	}
	require.NoError(s.T(), tbl.Freeze())

	var buf bytes.Buffer
	n, err := tbl.WriteTo(&buf)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(buf.Len()), n)
	require.True(s.T(), strings.HasPrefix(buf.String(), "4\n"))

	got, err := idtable.Read(bufio.NewReader(&buf))
	require.NoError(s.T(), err)
	require.True(s.T(), got.Frozen())
	require.Equal(s.T(), tbl.Size(), got.Size())
	for _, d := range []feature.Descriptor{descA, descB, descC, descD} {
		want, _ := tbl.Lookup(d)
		id, ok := got.Lookup(d)
		require.True(s.T(), ok)
		require.Equal(s.T(), want, id)
	}
}

// TestWriteOpenTable verifies an open table can be persisted and reads frozen.
func (s *TableSuite) TestWriteOpenTable() {
	tbl := idtable.New()
	_, err := tbl.LookupOrAssign(descC)
	require.NoError(s.T(), err)

	var buf bytes.Buffer
	_, err = tbl.WriteTo(&buf)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "1\nE::1:0 0\n", buf.String())

	got, err := idtable.Read(bufio.NewReader(&buf))
	require.NoError(s.T(), err)
	d, err := got.Descriptor(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), descC, d)
}

// TestRoundTripEmptyKind verifies a descriptor whose kind was never set
// survives persistence like any other key.
func (s *TableSuite) TestRoundTripEmptyKind() {
	var blank feature.Descriptor
	blank.Reset()

	tbl := idtable.New()
	for _, d := range []feature.Descriptor{blank, descA} {
		_, err := tbl.LookupOrAssign(d)
		require.NoError(s.T(), err)
	}

	var buf bytes.Buffer
	_, err := tbl.WriteTo(&buf)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "2\n::0:-1 0\nW:a:0:-1 1\n", buf.String())

	got, err := idtable.Read(bufio.NewReader(&buf))
	require.NoError(s.T(), err)
	id, ok := got.Lookup(blank)
	require.True(s.T(), ok)
	require.Equal(s.T(), 0, id)
}

// TestReadMalformed verifies every malformed input fails with ErrFormat.
func (s *TableSuite) TestReadMalformed() {
	cases := map[string]string{
		"empty":           "",
		"bad header":      "three\n",
		"negative header": "-1\n",
		"truncated":       "3\nW:a:0:-1 0\nW:b:0:-1 1\n",
		"no separator":    "1\nW:a:0:-1\n",
		"bad id":          "1\nW:a:0:-1 x\n",
		"negative id":     "1\nW:a:0:-1 -1\n",
		"extra field":     "1\nW:a:0:-1 0 0\n",
		"bad descriptor":  "1\nW:a:0 0\n",
		"id out of range": "2\nW:a:0:-1 0\nW:b:0:-1 2\n",
		"duplicate id":    "2\nW:a:0:-1 0\nW:b:0:-1 0\n",
		"duplicate desc":  "2\nW:a:0:-1 0\nW:a:0:-1 1\n",
		"max int header":  "9223372036854775807\nW:a:0:-1 0\n",
		"huge header":     "100000000000\nW:a:0:-1 0\n",
		"large truncated": "50000000\nW:a:0:-1 0\n",
	}
	for name, in := range cases {
		tbl, err := idtable.Read(bufio.NewReader(strings.NewReader(in)))
		require.ErrorIs(s.T(), err, idtable.ErrFormat, name)
		require.Nil(s.T(), tbl, name)
	}
}

// TestReadStopsAtDeclaredCount verifies trailing data is left unread.
func (s *TableSuite) TestReadStopsAtDeclaredCount() {
	br := bufio.NewReader(strings.NewReader("1\nW:a:0:-1 0\ntrailer\n"))
	tbl, err := idtable.Read(br)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, tbl.Size())

	rest, err := br.ReadString('\n')
	require.NoError(s.T(), err)
	require.Equal(s.T(), "trailer\n", rest)
}

// TestReadWithoutTrailingNewline accepts a final line lacking "\n".
func (s *TableSuite) TestReadWithoutTrailingNewline() {
	tbl, err := idtable.Read(bufio.NewReader(strings.NewReader("1\r\nW:a:0:-1 0")))
	require.NoError(s.T(), err)
	id, ok := tbl.Lookup(descA)
	require.True(s.T(), ok)
	require.Equal(s.T(), 0, id)
}

func TestTableSuite(t *testing.T) {
	suite.Run(t, new(TableSuite))
}
