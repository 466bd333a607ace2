package logging

// Standard field names so that log lines from every component filter the same way.
const (
	FieldFile          = "file_path"
	FieldParser        = "parser"
	FieldLine          = "line"
	FieldTransactionID = "transaction_id"
	FieldCurrency      = "currency"
	FieldCharset       = "charset"
	FieldAccount       = "account"
	FieldBank          = "bank"
	FieldCount         = "count"
	FieldDelimiter     = "delimiter"
)
