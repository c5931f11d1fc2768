package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Input errors
	InputMissingError
	InputDecodeError
	InputEmptyError

	// Persistence errors
	StageFileError
	BackupFileError
	ReplaceFileError
	EncodeOutputError

	// Pipeline errors
	PipelineCancelledError

	// Coverage errors
	CoverageFormatError
	CoverageRenderError

	// Bundle errors
	BundleCreateError
	BundleWriteError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableExistsCheckError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaMigrateError

	// Publish errors
	PublishTruncateError
	PublishCopyError
	PublishCommitError
)
