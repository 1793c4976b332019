package envfile

import (
	"bytes"
	"errors"
	"io"

	kerrors "github.com/PolarWolf314/saas-template-companion/internal/errors"
	"github.com/PolarWolf314/saas-template-companion/internal/filemode"
)

// DefaultPermissions is used when the target file has to be created.
const DefaultPermissions = 0600

// File is the handle Sync rewrites. *os.File satisfies it.
type File interface {
	io.ReadWriteSeeker
	Truncate(size int64) error
}

// Result summarizes a merge pass.
type Result struct {
	// Patched lists names that were rewritten in place, in file order.
	Patched []string

	// Appended lists names that were missing and added at the end, in set order.
	Appended []string

	// Duplicates lists 1-based line numbers that assigned an already written
	// name and were left unchanged.
	Duplicates []int

	// Bytes is the final length of the file.
	Bytes int64
}

// Sync merges set into f. f must be positioned at offset 0. On success every
// record of set is written exactly once and f holds exactly the merged bytes.
func Sync(f File, set *Set) (*Result, error) {
	return syncNamed(f, set, "")
}

func syncNamed(f File, set *Set, path string) (*Result, error) {
	result := &Result{}
	merged, err := merge(NewLineReader(f), set, result)
	if err != nil {
		return nil, newSyncError("read", path, kerrors.ErrRead, err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, newSyncError("seek", path, kerrors.ErrWrite, err)
	}
	if _, err := f.Write(merged); err != nil {
		return nil, newSyncError("write", path, kerrors.ErrWrite, err)
	}
	// The merged content can be shorter than the original; drop the tail.
	if err := f.Truncate(int64(len(merged))); err != nil {
		return nil, newSyncError("truncate", path, kerrors.ErrWrite, err)
	}

	result.Bytes = int64(len(merged))
	return result, nil
}

func merge(lines *LineReader, set *Set, result *Result) ([]byte, error) {
	var buf bytes.Buffer

	for lineNo := 1; ; lineNo++ {
		line, _, err := lines.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		record, ok := set.Lookup(line)
		switch {
		case ok && !record.Written():
			buf.WriteString(record.Line())
			record.MarkWritten()
			result.Patched = append(result.Patched, record.Name())
		case ok:
			result.Duplicates = append(result.Duplicates, lineNo)
			buf.WriteString(line)
		default:
			buf.WriteString(line)
		}
	}

	pending := set.Pending()
	if len(pending) > 0 && buf.Len() > 0 && buf.Bytes()[buf.Len()-1] != '\n' {
		buf.WriteByte('\n')
	}
	for _, record := range pending {
		buf.WriteString(record.Line())
		record.MarkWritten()
		result.Appended = append(result.Appended, record.Name())
	}

	return buf.Bytes(), nil
}

// SyncFile opens path for reading and writing, creating it when absent but
// never truncating on open, and merges set into it.
func SyncFile(path string, set *Set) (result *Result, err error) {
	mode := filemode.New().Read().Write().Create().Build()
	if err := mode.Require(filemode.Read | filemode.Write); err != nil {
		return nil, newSyncError("open", path, kerrors.ErrAccess, err)
	}

	f, err := filemode.Open(path, mode, DefaultPermissions)
	if err != nil {
		return nil, newSyncError("open", path, kerrors.ErrAccess, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			result = nil
			err = newSyncError("close", path, kerrors.ErrWrite, closeErr)
		}
	}()

	return syncNamed(f, set, path)
}
