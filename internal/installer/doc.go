// Package installer copies resolved components into a consumer project.
//
// For each component the installer selects the file-set variant for the
// configured platform mode, creates destination directories under the
// resolved components path, applies the overwrite policy, and writes
// each payload through the import rewriter. Declining an overwrite
// prompt skips that single file; there is no rollback of files already
// written earlier in the batch.
package installer
