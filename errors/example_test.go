package errors_test

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/jmgilman/go/pathfs/errors"
)

func ExamplePathError() {
	err := errors.PathError("open directory", fs.ErrNotExist, "/srv/data")

	fmt.Println(err.Code())
	fmt.Println(err)
	// Output:
	// NOT_FOUND
	// [NOT_FOUND] open directory "/srv/data": file does not exist
}

func ExampleClassify() {
	fmt.Println(errors.Classify(fs.ErrPermission))
	// Output: PERMISSION_DENIED
}

func ExampleToJSON() {
	err := errors.WithContext(errors.PathError("stat", fs.ErrNotExist, "//<scratch>/a"), "mount", "//<scratch>")

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(errors.ToJSON(err))
	// Output: {"code":"NOT_FOUND","message":"stat","classification":"PERMANENT","paths":["//<scratch>/a"],"context":{"mount":"//<scratch>"}}
}
