package consts

import "os"

const (
	// ModeFile is the file mode used when writing formatted files back
	ModeFile = os.FileMode(0o644)

	// SQLFileExt is the extension (compared case-insensitively) of the files
	// picked up when a directory is formatted
	SQLFileExt = ".sql"
)
