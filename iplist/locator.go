package iplist

import (
	"path/filepath"
	"regexp"
	"sort"

	"github.com/juju/errors"
	"github.com/spf13/afero"
)

// FileNamePattern is a case-insensitive pattern for names of IP list
// files: IPList.txt, iplist-2021.txt and so on.
const FileNamePattern = `(?i)^iplist.*\.txt$`

var fileNameRegexp = regexp.MustCompile(FileNamePattern)

// Locate searches a directory for an IP list file and returns its path.
//
// If there are many candidates, the lexicographically smallest name
// wins. If there are none, returned error satisfies errors.IsNotFound.
func Locate(fs afero.Fs, dir string) (string, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return "", errors.Annotatef(err, "cannot read directory %s", dir)
	}

	names := []string{}

	for _, v := range infos {
		if !v.IsDir() && fileNameRegexp.MatchString(v.Name()) {
			names = append(names, v.Name())
		}
	}

	if len(names) == 0 {
		return "", errors.NotFoundf("IP list file like 'IPList.txt' or 'iplist.txt' in %s", dir)
	}

	sort.Strings(names)

	return filepath.Join(dir, names[0]), nil
}
