package models

type (
	// CipheredData is a string alias representing encrypted content.
	// The actual structure and meaning of the data are unknown to the database.
	CipheredData         string
	CipheredMetadata     string
	CipheredNotes        string
	CipheredCustomFields string
)
