package corpus

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/schollz/progressbar/v3"

	apperrors "github.com/annekeller/mediasearch/pkg/errors"
)

// FileLoader expands a set of glob patterns (e.g. "corpus/**/*.json") into a
// sorted file list and decodes each as a JSON array of RawRecord. Grounded
// on hypnagonia-rag's fs.Walker, which uses the same
// doublestar-based expansion.
type FileLoader struct {
	globs   []string
	showBar bool
}

// NewFileLoader creates a FileLoader over the given glob patterns.
func NewFileLoader(globs []string, showBar bool) *FileLoader {
	return &FileLoader{globs: globs, showBar: showBar}
}

// Load resolves every glob pattern against the filesystem, decodes each
// matched file as a JSON array of RawRecord, and returns the concatenated,
// deterministically ordered (by file path, then position within file)
// result.
func (l *FileLoader) Load() ([]RawRecord, error) {
	var paths []string
	for _, g := range l.globs {
		matches, err := doublestar.FilepathGlob(g)
		if err != nil {
			return nil, apperrors.Newf(apperrors.ErrCorpusSourceUnavailable, 3, "expanding glob %q: %v", g, err)
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)

	var bar *progressbar.ProgressBar
	if l.showBar && len(paths) > 0 {
		bar = progressbar.NewOptions(len(paths),
			progressbar.OptionSetDescription("[cyan]Loading corpus files[reset]"),
			progressbar.OptionShowCount(),
		)
	}

	var records []RawRecord
	for _, p := range paths {
		recs, err := loadFile(p)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
		if bar != nil {
			bar.Add(1)
		}
	}
	return records, nil
}

func loadFile(path string) ([]RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Newf(apperrors.ErrCorpusSourceUnavailable, 3, "reading %s: %v", path, err)
	}
	var recs []RawRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, apperrors.Newf(apperrors.ErrCorpusRecordInvalid, 2, "decoding %s: %v", path, err)
	}
	return recs, nil
}
