// Package pathutil maps backend paths to MinIO/S3 object keys.
package pathutil

import (
	"path"
	"strings"
)

// Normalize cleans a backend path into a key fragment with no leading or
// trailing slash. The root ("/", "" or ".") maps to "".
func Normalize(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = strings.Trim(path.Clean("/"+name), "/")
	return name
}

// NormalizePrefix normalizes a configured key prefix the same way.
func NormalizePrefix(prefix string) string {
	return Normalize(prefix)
}

// JoinPath joins a prefix with a backend path to form an object key.
// The result is "" only for the root of an unprefixed backend.
func JoinPath(prefix, name string) string {
	name = Normalize(name)
	switch {
	case name == "":
		return prefix
	case prefix == "":
		return name
	default:
		return prefix + "/" + name
	}
}

// DirPrefix returns the listing prefix for the directory stored at key.
func DirPrefix(key string) string {
	if key == "" || strings.HasSuffix(key, "/") {
		return key
	}
	return key + "/"
}

// ChildName returns the entry name of an object listed under dirPrefix.
// ok is false for the directory's own marker object.
func ChildName(dirPrefix, key string) (name string, ok bool) {
	name = strings.TrimSuffix(strings.TrimPrefix(key, dirPrefix), "/")
	return name, name != ""
}
