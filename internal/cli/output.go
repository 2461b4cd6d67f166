package cli

import (
	"encoding/json"
	"io"

	"github.com/jmgilman/go/pathfs/core"
	"github.com/jmgilman/go/pathfs/dir"
)

// entryRecord is the JSON form of a listed entry.
type entryRecord struct {
	Path  string `json:"path"`
	Type  string `json:"type"`
	Depth *int   `json:"depth,omitempty"`
	Size  *int64 `json:"size,omitempty"`
}

func newRecord(e dir.Entry, st core.FileStatus) entryRecord {
	return entryRecord{Path: e.Path().GenericString(), Type: st.Type.String()}
}

func writeJSONLine(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// displayName is the entry's filename, with a trailing "/" for directories.
func displayName(e dir.Entry, st core.FileStatus) string {
	name := e.Path().Filename().String()
	if st.IsDirectory() {
		name += "/"
	}
	return name
}
