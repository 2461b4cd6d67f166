package core

import "io/fs"

// FileType is the kind of object a path refers to.
type FileType int

const (
	// FileTypeNone indicates the status has not been evaluated.
	FileTypeNone FileType = iota
	// FileTypeNotFound indicates the path does not exist.
	FileTypeNotFound
	// FileTypeRegular indicates a regular file.
	FileTypeRegular
	// FileTypeDirectory indicates a directory.
	FileTypeDirectory
	// FileTypeSymlink indicates a symbolic link.
	FileTypeSymlink
	// FileTypeBlock indicates a block device.
	FileTypeBlock
	// FileTypeCharacter indicates a character device.
	FileTypeCharacter
	// FileTypeFIFO indicates a named pipe.
	FileTypeFIFO
	// FileTypeSocket indicates a socket.
	FileTypeSocket
	// FileTypeUnknown indicates the path exists but its type is unknown.
	FileTypeUnknown
)

// String returns a string representation of the FileType.
func (t FileType) String() string {
	switch t {
	case FileTypeNone:
		return "none"
	case FileTypeNotFound:
		return "not-found"
	case FileTypeRegular:
		return "regular"
	case FileTypeDirectory:
		return "directory"
	case FileTypeSymlink:
		return "symlink"
	case FileTypeBlock:
		return "block"
	case FileTypeCharacter:
		return "character"
	case FileTypeFIFO:
		return "fifo"
	case FileTypeSocket:
		return "socket"
	default:
		return "unknown"
	}
}

// PermsUnknown marks permissions a backend cannot report.
const PermsUnknown fs.FileMode = 0xFFFF

// FileStatus is the type and permission bits of a path.
type FileStatus struct {
	Type FileType
	Perm fs.FileMode
}

// StatusFromMode builds a FileStatus from an fs.FileMode.
func StatusFromMode(mode fs.FileMode) FileStatus {
	st := FileStatus{Perm: mode.Perm()}
	switch {
	case mode.IsRegular():
		st.Type = FileTypeRegular
	case mode&fs.ModeDir != 0:
		st.Type = FileTypeDirectory
	case mode&fs.ModeSymlink != 0:
		st.Type = FileTypeSymlink
	case mode&fs.ModeNamedPipe != 0:
		st.Type = FileTypeFIFO
	case mode&fs.ModeSocket != 0:
		st.Type = FileTypeSocket
	case mode&fs.ModeCharDevice != 0:
		st.Type = FileTypeCharacter
	case mode&fs.ModeDevice != 0:
		st.Type = FileTypeBlock
	default:
		st.Type = FileTypeUnknown
	}
	return st
}

// NotFoundStatus is the status reported for a missing path.
func NotFoundStatus() FileStatus {
	return FileStatus{Type: FileTypeNotFound, Perm: PermsUnknown}
}

// Exists reports whether the status describes an existing path.
func (s FileStatus) Exists() bool {
	return s.Type != FileTypeNone && s.Type != FileTypeNotFound
}

// IsDirectory reports whether the status describes a directory.
func (s FileStatus) IsDirectory() bool {
	return s.Type == FileTypeDirectory
}

// IsRegular reports whether the status describes a regular file.
func (s FileStatus) IsRegular() bool {
	return s.Type == FileTypeRegular
}

// IsSymlink reports whether the status describes a symbolic link.
func (s FileStatus) IsSymlink() bool {
	return s.Type == FileTypeSymlink
}

// DirectoryOptions controls recursive directory iteration.
type DirectoryOptions uint8

const (
	// DirOptionsNone is the default: symlinked directories are not followed
	// and permission errors are reported.
	DirOptionsNone DirectoryOptions = 0

	// FollowDirectorySymlink descends into symbolic links to directories.
	FollowDirectorySymlink DirectoryOptions = 1

	// SkipPermissionDenied skips directories that cannot be opened because
	// access was denied, instead of reporting an error.
	SkipPermissionDenied DirectoryOptions = 2
)

// Has reports whether all bits of flag are set.
func (o DirectoryOptions) Has(flag DirectoryOptions) bool {
	return o&flag == flag
}
