package hufftree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/icza/bitio"
)

const testEOF = Symbol(256)

func TestEncodeDecode(t *testing.T) {
	tree := makeTestTree()

	var coded bytes.Buffer
	w := bitio.NewWriter(&coded)
	if err := tree.Encode(strings.NewReader("abc"), w, testEOF); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var out bytes.Buffer
	if err := tree.Decode(bitio.NewReader(&coded), &out, testEOF); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	expectOut := "abc"
	actualOut := out.String()
	if expectOut != actualOut {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", expectOut, actualOut)
	}
}

func TestDecode_StopsAtEOFSymbol(t *testing.T) {
	tree := makeTestTree()

	var coded bytes.Buffer
	w := bitio.NewWriter(&coded)
	if err := tree.Encode(strings.NewReader("abc"), w, testEOF); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	// A trailing marker bit after the end-of-file code.  Decode must leave
	// it unconsumed.
	if err := w.WriteBool(true); err != nil {
		t.Fatalf("WriteBool failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	r := bitio.NewReader(&coded)
	var out bytes.Buffer
	if err := tree.Decode(r, &out, testEOF); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if actualOut := out.String(); actualOut != "abc" {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", "abc", actualOut)
	}

	bit, err := r.ReadBool()
	if err != nil {
		t.Fatalf("ReadBool failed: %v", err)
	}
	if !bit {
		t.Error("expected the marker bit to be the next unconsumed bit")
	}
}

func TestEncodeDecode_EmptyMessage(t *testing.T) {
	// Zero occurring symbols: the tree is the lone end-of-file leaf, its
	// code is empty, and a coded empty message occupies zero bits.
	tree := NewFromFrequencies(make([]uint32, 5))

	var coded bytes.Buffer
	w := bitio.NewWriter(&coded)
	if err := tree.Encode(strings.NewReader(""), w, Symbol(5)); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if coded.Len() != 0 {
		t.Errorf("expected an empty coded stream, got %d bytes", coded.Len())
	}

	var out bytes.Buffer
	if err := tree.Decode(bitio.NewReader(&coded), &out, Symbol(5)); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}

func TestDecode_TruncatedStream(t *testing.T) {
	tree := makeTestTree()

	// "ab" without the end-of-file code: the decoder consumes the padding as
	// further symbols and then hits end of stream.
	var coded bytes.Buffer
	w := bitio.NewWriter(&coded)
	for _, bit := range []bool{false, true, false} {
		if err := w.WriteBool(bit); err != nil {
			t.Fatalf("WriteBool failed: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var out bytes.Buffer
	if err := tree.Decode(bitio.NewReader(&coded), &out, testEOF); err == nil {
		t.Error("expected an error on a truncated stream, got none")
	}
}

func TestEncode_UnknownSymbol(t *testing.T) {
	tree := makeTestTree()

	var coded bytes.Buffer
	w := bitio.NewWriter(&coded)
	if err := tree.Encode(strings.NewReader("d"), w, testEOF); err == nil {
		t.Error("expected an error for a symbol with no leaf, got none")
	}
}

func TestCountFrequencies(t *testing.T) {
	counts, err := CountFrequencies(strings.NewReader("aabbbc"), 256)
	if err != nil {
		t.Fatalf("CountFrequencies failed: %v", err)
	}
	if counts['a'] != 2 || counts['b'] != 3 || counts['c'] != 1 {
		t.Errorf("wrong counts: a=%d b=%d c=%d", counts['a'], counts['b'], counts['c'])
	}
}

func TestCountFrequencies_OutsideAlphabet(t *testing.T) {
	if _, err := CountFrequencies(strings.NewReader("z"), 4); err == nil {
		t.Error("expected an error for a byte outside the alphabet, got none")
	}
}

func TestHeaderRoundTrip_DecodeEquivalence(t *testing.T) {
	tree := makeTestTree()

	var coded bytes.Buffer
	w := bitio.NewWriter(&coded)
	if err := tree.Encode(strings.NewReader("cabbage"[:4]), w, testEOF); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var headerBuf bytes.Buffer
	hw := bitio.NewWriter(&headerBuf)
	if err := tree.WriteHeader(hw); err != nil {
		t.Fatalf("WriteHeader failed: %v", err)
	}
	if err := hw.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	rebuilt, err := ReadHeader(bitio.NewReader(&headerBuf))
	if err != nil {
		t.Fatalf("ReadHeader failed: %v", err)
	}

	var out bytes.Buffer
	if err := rebuilt.Decode(bitio.NewReader(&coded), &out, testEOF); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	expectOut := "cabb"
	if actualOut := out.String(); expectOut != actualOut {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", expectOut, actualOut)
	}
}
