// Package filemark is the Composition Root for the filemark application.
//
// It connects the core business logic (records, policies, reconciliation)
// with the infrastructure adapters (filesystem store, directory
// ascension) using the Hexagonal Architecture pattern.
//
// A run is load-once, mutate-many, save-once: Open locates and loads the
// store, Process reconciles each requested file or digest against it,
// and Flush writes the store back only if something changed.
//
// Usage:
//
//	svc, err := filemark.Open(cwd,
//		filemark.WithPrompter(prompter),
//		filemark.WithLogger(logger),
//	)
//
//	report, err := svc.Process(core.Request{Path: "notes.txt", Note: "v1"}, core.PolicyAdd)
//	...
//	err = svc.Flush()
package filemark
