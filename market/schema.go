package market

// Schema is the SQLite layout of the price-bar store.
const Schema = `
CREATE TABLE IF NOT EXISTS bars (
	symbol TEXT NOT NULL,
	epoch INTEGER NOT NULL,
	date TEXT NOT NULL,
	open REAL NOT NULL,
	high REAL NOT NULL,
	low REAL NOT NULL,
	close REAL NOT NULL,
	vwap REAL NOT NULL,
	PRIMARY KEY (symbol, epoch)
);
`
