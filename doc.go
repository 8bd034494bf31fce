// Package filemark annotates files by content digest rather than path.
//
// A note attached to a file survives renames and moves because the key is
// the SHA-256 digest of the file's bytes. Records live in a single JSON
// store file discovered by walking up from the working directory, so any
// subdirectory of an annotated tree finds the same store.
//
// Philosophy:
//
// Filemark is deliberately small: one store file, one format, no daemon.
// The core domain (records, policies, reconciliation) is isolated from
// the infrastructure adapters (filesystem store, directory ascension)
// in the Hexagonal Architecture pattern, and interactive prompts are an
// injected capability, so the whole decision machinery is testable
// without a terminal.
//
// Features:
//
//   - **Content addressing**: SHA-256 keys, streamed in fixed blocks.
//   - **Store ascension**: bounded upward search for the store file.
//   - **Atomic saves**: write-to-temp-then-rename, never a partial store.
//   - **Legacy migration**: the old binary store format is converted to
//     JSON once, transparently, on first load.
//   - **Add-policies**: look up and ask, add unconditionally, or never add.
//
// Usage:
//
//	svc, err := filemark.Open(cwd,
//		filemark.WithPrompter(prompter),
//		filemark.WithLogger(logger),
//	)
//
//	report, err := svc.Process(filemark.Request{Path: "notes.txt", Note: "v1"}, filemark.PolicyAdd)
//	...
//	err = svc.Flush()
package filemark
