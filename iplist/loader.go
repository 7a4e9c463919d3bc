package iplist

import (
	"bufio"
	"bytes"
	"strings"
	"unicode"

	"github.com/juju/errors"
	"github.com/spf13/afero"
)

// maxLineSize limits a single line of IP list file.
const maxLineSize = 1 << 30

// Load reads IP list from the file. Each line is stripped, blank lines
// are skipped. Lines which are made of digits only are skipped too:
// these are indexes left by previous exports.
//
// Any of \r\n, \r and \n ends a line.
func Load(fs afero.Fs, path string) ([]string, error) {
	fp, err := fs.Open(path)
	if err != nil {
		return nil, errors.Annotatef(err, "cannot open IP list %s", path)
	}

	defer fp.Close()

	rv := []string{}
	scanner := bufio.NewScanner(fp)

	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	scanner.Split(scanLines)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || isIndex(line) {
			continue
		}

		rv = append(rv, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Annotatef(err, "cannot read IP list %s", path)
	}

	if len(rv) == 0 {
		return nil, errors.Annotatef(ErrEmptyList, "cannot load IP list %s", path)
	}

	return rv, nil
}

func isIndex(line string) bool {
	for _, r := range line {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}

func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		switch {
		case data[i] == '\n':
			return i + 1, data[:i], nil
		case i+1 < len(data) && data[i+1] == '\n':
			return i + 2, data[:i], nil
		case i+1 < len(data) || atEOF:
			return i + 1, data[:i], nil
		}

		// \r is the last byte: wait for the next chunk to know if \n follows
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}

	return 0, nil, nil
}
