package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// StoreBackend represents the database backend for the run archive.
	StoreBackend string
)

// All output modes supported. The empty mode resolves to the default of
// the command family: CSV for table commands, text for stat commands.
const (
	TextOut  OutputMode = "text"
	CSVOut   OutputMode = "csv"
	JSONOut  OutputMode = "json"
	TableOut OutputMode = "table"
)

// All archive backends supported.
const (
	NoneBackend       StoreBackend = "none" // default
	SQLiteBackend     StoreBackend = "sqlite"
	MySQLBackend      StoreBackend = "mysql"
	PostgreSQLBackend StoreBackend = "postgresql"
)

// File format constants shared by the readers and writers.
const (
	DefaultDelimiter = ";"      // cell separator for CSV tables
	RecordFileExt    = ".dat"   // extension of bug record files
	RegionColumn     = "Region" // first header cell of a rendered table
	MissingCell      = "-"      // placeholder for an absent (bug, region) pair
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:  {},
	CSVOut:   {},
	JSONOut:  {},
	TableOut: {},
}

// ValidStoreBackends lists all valid archive backends.
var ValidStoreBackends = map[StoreBackend]struct{}{
	NoneBackend:       {},
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
}
