// FILE: truncate.go
package plog

import (
	"bufio"
	"io"
	"os"
)

// Truncate shrinks the log file in place once it has grown past triggerSize,
// keeping roughly retainedSize bytes from the tail aligned forward to the
// next record boundary. The file is rewritten through the same inode so
// concurrent O_APPEND writers in this or other processes stay valid. The
// whole pass runs under the inter-process lock.
func (l *Logger) Truncate(triggerSize, retainedSize int64) error {
	root := l.root
	if !root.state.IsInitialized.Load() {
		return fmtErrorf("logger not initialized")
	}

	cfg := l.getConfig()

	if retainedSize > triggerSize {
		err := fmtErrorf("retained size (%d) cannot be greater than trigger size (%d)", retainedSize, triggerSize)
		return l.truncateFailed(err, cfg.Strict)
	}

	lk := l.getLock()
	if lk != nil {
		if !lk.Acquire() {
			l.internalLog("failed to acquire lock for truncation\n")
			if cfg.Strict {
				return fmtErrorf("failed to acquire lock for truncation")
			}
			return nil
		}
	}

	discarded, err := truncateFile(cfg.FilePath, triggerSize, retainedSize)

	// Release before reporting: the fault event below goes through the
	// regular emit path, which takes the same lock
	if lk != nil {
		lk.Release()
	}

	if err != nil {
		return l.truncateFailed(err, cfg.Strict)
	}

	if discarded > 0 {
		root.state.Truncations.Add(1)
		root.state.TruncatedBytes.Add(uint64(discarded))
		if cfg.EnableMetrics {
			metricTruncations.Inc()
			metricTruncatedBytes.Add(float64(discarded))
		}
	}

	return nil
}

// truncateFailed records a truncation fault as an error-level event through
// the logger's own emit path, then swallows or returns it per the policy
func (l *Logger) truncateFailed(err error, strict bool) error {
	l.root.state.InternalErrors.Add(1)
	l.ErrorErr(err, "log truncation failed")
	if strict {
		return err
	}
	return nil
}

// truncateFile performs the in-place shrink. The caller holds the lock. The
// returned count is the number of bytes discarded; 0 means the file was
// missing, below the trigger, or already within the retained window.
func truncateFile(path string, trigger, retain int64) (discarded int64, err error) {
	fi, statErr := os.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			return 0, nil
		}
		return 0, fmtErrorf("failed to stat log file %s: %w", path, statErr)
	}

	size := fi.Size()
	if size < trigger {
		return 0, nil
	}
	if retain >= size {
		// The retained window already covers the whole file
		return 0, nil
	}

	tmpPath := path + tmpSuffix
	if copyErr := copyFile(path, tmpPath); copyErr != nil {
		return 0, fmtErrorf("failed to snapshot log file: %w", copyErr)
	}
	defer func() {
		if rmErr := os.Remove(tmpPath); rmErr != nil && !os.IsNotExist(rmErr) && err == nil {
			err = fmtErrorf("failed to remove snapshot %s: %w", tmpPath, rmErr)
		}
	}()

	// Reopen the original with O_TRUNC; the inode is preserved so writers
	// holding O_APPEND descriptors keep landing at the new end
	out, openErr := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0644)
	if openErr != nil {
		return 0, fmtErrorf("failed to reopen log file for truncation: %w", openErr)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmtErrorf("failed to close log file: %w", closeErr)
		}
	}()

	in, openErr := os.Open(tmpPath)
	if openErr != nil {
		return 0, fmtErrorf("failed to open snapshot for reading: %w", openErr)
	}
	defer in.Close()

	if _, seekErr := in.Seek(size-retain, io.SeekStart); seekErr != nil {
		return 0, fmtErrorf("failed to seek snapshot: %w", seekErr)
	}

	// Advance to the next record boundary, dropping the partial record the
	// seek may have landed inside
	r := bufio.NewReader(in)
	for {
		peeked, peekErr := r.Peek(1)
		if peekErr == io.EOF {
			break
		}
		if peekErr != nil {
			return 0, fmtErrorf("failed to scan for record boundary: %w", peekErr)
		}
		if peeked[0] == RecordMarker {
			break
		}
		_, readErr := r.ReadBytes('\n')
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return 0, fmtErrorf("failed to scan for record boundary: %w", readErr)
		}
	}

	written, copyErr := io.Copy(out, r)
	if copyErr != nil {
		return 0, fmtErrorf("failed to copy retained records: %w", copyErr)
	}

	if syncErr := out.Sync(); syncErr != nil {
		return 0, fmtErrorf("failed to sync truncated log file: %w", syncErr)
	}

	return size - written, nil
}

// copyFile copies src to dst, replacing dst if it exists
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}
