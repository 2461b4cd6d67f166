package dir_test

import (
	"fmt"

	"github.com/jmgilman/go/pathfs/billy"
	"github.com/jmgilman/go/pathfs/dir"
	"github.com/jmgilman/go/pathfs/fspath"
	"github.com/jmgilman/go/pathfs/fstest"
	"github.com/jmgilman/go/pathfs/router"
)

func ExampleRecursiveIterator() {
	r := router.New()
	mfs := billy.NewMemory()
	_ = fstest.BuildTree(mfs, "/", "docs/guide.md", "README.md")
	_ = r.Register("//<site>", mfs)

	root := fspath.POSIX.New("//<site>/")
	it, err := dir.NewRecursiveIterator(root, dir.WithRouter(r))
	if err != nil {
		fmt.Println(err)
		return
	}
	for e, err := range it.All() {
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(it.Depth(), e.Path().LexicallyRelative(root))
	}
	// Output:
	// 0 README.md
	// 0 docs
	// 1 docs/guide.md
}
