// Package sqlite implements the SQLite storage backend for the datastore.
// Datasets are decomposed into normalized (file, row, column, value) records
// and reconstructed into typed tables on demand.
package sqlite

// Schema DDL. Every statement is IF NOT EXISTS so ensureSchema is idempotent
// and never touches existing data. The layout is fixed: databases written by
// earlier revisions of the dashboard must keep loading.
const (
	createUsers = `CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password TEXT NOT NULL
);`

	createFiles = `CREATE TABLE IF NOT EXISTS files (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    filename TEXT NOT NULL,
    file_size INTEGER NOT NULL,
    file_format TEXT NOT NULL,
    user_id INTEGER NOT NULL,
    uploaded_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);`

	createCSVData = `CREATE TABLE IF NOT EXISTS csv_data (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    file_id INTEGER NOT NULL,
    row_number INTEGER NOT NULL,
    column_name TEXT NOT NULL,
    value TEXT NOT NULL,
    FOREIGN KEY (file_id) REFERENCES files(id) ON DELETE CASCADE
);`

	createCSVColumns = `CREATE TABLE IF NOT EXISTS csv_columns (
    file_id INTEGER,
    column_index INTEGER,
    column_name TEXT
);`
)

// Index DDL for the queries the store actually runs: cell fetch by file,
// column order by file, substring search over values.
const (
	idxCSVDataFile    = `CREATE INDEX IF NOT EXISTS idx_csv_data_file ON csv_data(file_id, row_number);`
	idxCSVColumnsFile = `CREATE INDEX IF NOT EXISTS idx_csv_columns_file ON csv_columns(file_id, column_index);`
	idxUsersUsername  = `CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username ON users(username);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createUsers,
	createFiles,
	createCSVData,
	createCSVColumns,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxCSVDataFile,
	idxCSVColumnsFile,
	idxUsersUsername,
}
