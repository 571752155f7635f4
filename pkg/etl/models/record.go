package models

// Record is a single labeled text excerpt extracted from a source
// workbook. Records are never mutated after creation.
type Record struct {
	// Texto is the excerpt text. Never empty.
	Texto string `bson:"texto" json:"texto"`
	// Categoria is the canonical category key the excerpt was filed
	// under. Always one of the catalog's category keys.
	Categoria string `bson:"categoria" json:"categoria"`
	// Fuente is the source workbook file name.
	Fuente string `bson:"fuente" json:"fuente"`
	// HojaOriginal is the sheet the record came from.
	HojaOriginal string `bson:"hoja_original" json:"hoja_original"`
	// Campos holds the optional field values keyed by canonical field
	// key. Every optional catalog key is present; unmatched or empty
	// cells are nil, never omitted.
	Campos map[string]*string `bson:",inline" json:"campos"`
}
