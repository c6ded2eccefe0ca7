// Package bytereverse reverses the byte contents of files.
//
// The package is three whole-file operations: Load reads a file completely
// into memory, Reverse produces a mirrored copy of a buffer, and Write stores a
// buffer to a file. The reverse command in cmd/reverse strings them together.
//
// # Quick Start
//
//	data, err := bytereverse.Load("in.bin")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if _, err := bytereverse.Write("out.bin", bytereverse.Reverse(data)); err != nil {
//		log.Fatal(err)
//	}
//
// The reversal is purely byte-level. Multi-byte text encodings are not kept
// intact.
//
// # Error Handling
//
// Every failure is an *Error carrying a Kind that names the step that failed
// (open, seek, allocation, read, create, write). Use errors.Is with the
// sentinel values:
//
//	_, err := bytereverse.Load(path)
//	switch {
//	case errors.Is(err, bytereverse.ErrEmptyFile):
//		// zero-length input
//	case errors.Is(err, fs.ErrNotExist):
//		// the underlying OS error is wrapped too
//	}
//
// # Tracing
//
// Load, Write and ReverseContext accept WithLogger to emit a debug record for
// every step. Tracing is observational only:
//
//	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	data, err := bytereverse.Load("in.bin", bytereverse.WithLogger(log))
//
// # Memory
//
// Files are buffered whole. Peak memory is roughly twice the file size, since
// Reverse allocates a second buffer. Use WithMaxSize to refuse inputs above a
// limit.
package bytereverse
