package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// replayLog records the replay session. Writing to stderr would corrupt
// the alternate screen, so records go to a per-session file under the
// user's home directory, and are discarded entirely unless --debug is
// set.
var replayLog = slog.New(slog.NewTextHandler(io.Discard, nil))

// initReplayLog opens a session log named after the trace and binds the
// session metadata to every record.
func initReplayLog(tracePath, variantName string, segSize int) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".heapexplorer")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(tracePath), filepath.Ext(tracePath))
	name := fmt.Sprintf("%s-%s.log", base, time.Now().Format("20060102-150405"))
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	replayLog = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With("trace", tracePath, "variant", variantName, "segment", segSize)
	return nil
}
