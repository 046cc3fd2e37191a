package mcgraph

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// ReadGraph parses the following wire format from r:
//
//	n m
//	label_0 label_1 ... label_{n-1}
//	v w        (m such lines; v==w sets v's self-loop bit)
//
// Integers are whitespace-separated; newlines are not significant except as
// separators. ReadGraph calls Freeze on the result before returning it.
func ReadGraph(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	nextInt := func(what string) (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, fmt.Errorf("%w: reading %s: %v", ErrMalformedInput, what, err)
			}
			return 0, fmt.Errorf("%w: unexpected end of input reading %s", ErrMalformedInput, what)
		}
		var v int
		if _, err := fmt.Sscanf(sc.Text(), "%d", &v); err != nil {
			return 0, fmt.Errorf("%w: %s %q: %v", ErrMalformedInput, what, sc.Text(), err)
		}
		return v, nil
	}

	n, err := nextInt("vertex count")
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative vertex count %d", ErrMalformedInput, n)
	}
	m, err := nextInt("edge count")
	if err != nil {
		return nil, err
	}
	if m < 0 {
		return nil, fmt.Errorf("%w: negative edge count %d", ErrMalformedInput, m)
	}

	g := NewGraph(n)
	for i := 0; i < n; i++ {
		lbl, err := nextInt("label")
		if err != nil {
			return nil, err
		}
		if lbl < 0 || uint64(lbl) > uint64(MaxLabel) {
			return nil, fmt.Errorf("%w: vertex %d: %v", ErrMalformedInput, i, errLabelTooLarge)
		}
		g.SetLabel(i, uint32(lbl))
	}
	for i := 0; i < m; i++ {
		v, err := nextInt("edge endpoint")
		if err != nil {
			return nil, err
		}
		w, err := nextInt("edge endpoint")
		if err != nil {
			return nil, err
		}
		if v < 0 || v >= n || w < 0 || w >= n {
			return nil, fmt.Errorf("%w: edge (%d,%d) out of range [0,%d)", ErrMalformedInput, v, w, n)
		}
		g.AddEdge(v, w)
	}

	g.Freeze()
	return g, nil
}

// ReadGraphFile opens path and parses it with ReadGraph, translating an
// open failure into ErrCannotOpenFile as spec's error-handling design
// requires ("Cannot open file" is fatal at the I/O boundary, not a parse
// error).
func ReadGraphFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCannotOpenFile, path, err)
	}
	defer f.Close()

	g, err := ReadGraph(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
