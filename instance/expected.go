package instance

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// Expected holds the reference answer from a .out file. Fields are nil when
// the file does not provide a parseable value.
type Expected struct {
	K       *int
	Seconds *float64
}

// ExpectedPath returns the .out path paired with an .in path.
func ExpectedPath(inPath string) string {
	return strings.TrimSuffix(inPath, ".in") + ".out"
}

// ReadExpected reads the .out file at path. A missing file returns an error
// satisfying errors.Is(err, fs.ErrNotExist).
func ReadExpected(path string) (Expected, error) {
	f, err := os.Open(path)
	if err != nil {
		return Expected{}, err
	}
	defer f.Close()

	return ParseExpected(f)
}

// ParseExpected extracts k from the first line and the reference time from
// the last non-empty line. Unparseable values are left nil.
func ParseExpected(r io.Reader) (Expected, error) {
	var (
		first, last string
		lineNo      int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if lineNo == 0 {
			first = line
		}
		lineNo++
		if line != "" {
			last = line
		}
	}
	if err := sc.Err(); err != nil {
		return Expected{}, err
	}

	var out Expected
	if f := strings.Fields(first); len(f) > 0 {
		if v, err := strconv.ParseFloat(f[0], 64); err == nil {
			k := int(v)
			out.K = &k
		}
	}
	if f := strings.Fields(last); len(f) > 0 {
		if v, err := strconv.ParseFloat(strings.ReplaceAll(f[0], ",", "."), 64); err == nil {
			out.Seconds = &v
		}
	}

	return out, nil
}
