package iofs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gnsys"
)

// BackupTimeFormat is the timestamp layout of backup file names.
const BackupTimeFormat = "20060102T150405"

// now is replaced in tests.
var now = time.Now

// ReplaceResult describes a replaced file.
type ReplaceResult struct {
	// Path of the live file.
	Path string
	// BackupPath is the copy of the previous live file, empty if there
	// was no previous file.
	BackupPath string
	// SizeBefore is the size of the previous live file.
	SizeBefore int64
	// SizeAfter is the size of the new live file.
	SizeAfter int64
}

// Replace swaps the live file for new content in three steps:
//
//  1. stage writes the new content to a temporary file next to live;
//  2. the current live file, if any, is copied to backupDir;
//  3. the temporary file is renamed over live.
//
// The rename is the only change to live. If any step fails, the
// temporary file is removed and live stays as it was.
func Replace(
	live, backupDir string,
	stage func(path string) error,
) (ReplaceResult, error) {
	res := ReplaceResult{Path: live}

	dir := filepath.Dir(live)
	if err := touchDir(dir); err != nil {
		return res, err
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(live)+".*.tmp")
	if err != nil {
		return res, StageFileError(live, err)
	}
	tmp := f.Name()
	f.Close()
	defer func() {
		if tmp != "" {
			os.Remove(tmp)
		}
	}()

	if err = stage(tmp); err != nil {
		var gnErr *gn.Error
		if errors.As(err, &gnErr) {
			return res, err
		}
		return res, StageFileError(live, err)
	}

	info, err := os.Stat(tmp)
	if err != nil {
		return res, StageFileError(live, err)
	}
	res.SizeAfter = info.Size()

	liveInfo, err := os.Stat(live)
	switch {
	case err == nil && liveInfo.IsDir():
		return res, ReplaceFileError(live, fmt.Errorf("%s is a directory", live))
	case err == nil:
		res.SizeBefore = liveInfo.Size()
		res.BackupPath, err = backup(live, backupDir, liveInfo)
		if err != nil {
			return res, err
		}
	case !errors.Is(err, fs.ErrNotExist):
		return res, ReplaceFileError(live, err)
	}

	if err = os.Chmod(tmp, 0644); err != nil {
		return res, ReplaceFileError(live, err)
	}
	if err = os.Rename(tmp, live); err != nil {
		return res, ReplaceFileError(live, err)
	}
	tmp = ""

	slog.Info("File replaced",
		"path", live,
		"backup", res.BackupPath,
		"size_before", res.SizeBefore,
		"size_after", res.SizeAfter,
	)
	return res, nil
}

// WriteFile replaces live with data.
func WriteFile(live, backupDir string, data []byte) (ReplaceResult, error) {
	return Replace(live, backupDir, func(path string) error {
		return os.WriteFile(path, data, 0644)
	})
}

// BackupName returns the backup file name for a live file created at
// the given time.
func BackupName(live string, t time.Time) string {
	base := filepath.Base(live)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return stem + "_backup_" + t.Format(BackupTimeFormat) + ext
}

// backup copies live into backupDir and returns the path of the copy.
// An existing backup is never overwritten.
func backup(live, backupDir string, info fs.FileInfo) (string, error) {
	if err := gnsys.MakeDir(backupDir); err != nil {
		return "", BackupFileError(live, backupDir, err)
	}

	name := BackupName(live, now())
	path := filepath.Join(backupDir, name)
	out, err := createExclusive(path)
	for i := 2; errors.Is(err, fs.ErrExist) && i < 100; i++ {
		ext := filepath.Ext(name)
		path = filepath.Join(
			backupDir,
			fmt.Sprintf("%s_%d%s", strings.TrimSuffix(name, ext), i, ext),
		)
		out, err = createExclusive(path)
	}
	if err != nil {
		return "", BackupFileError(live, backupDir, err)
	}

	if err = copyInto(out, live); err != nil {
		os.Remove(path)
		return "", BackupFileError(live, backupDir, err)
	}
	if err = os.Chtimes(path, info.ModTime(), info.ModTime()); err != nil {
		slog.Warn("Cannot keep modification time of backup",
			"path", path, "error", err)
	}

	return path, nil
}

func createExclusive(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
}

// copyInto copies src into out, flushes and closes out.
func copyInto(out *os.File, src string) error {
	in, err := os.Open(src)
	if err != nil {
		out.Close()
		return err
	}
	defer in.Close()

	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err = out.Sync(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
