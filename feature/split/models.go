package split

// TablePayload is the wire form of a table: plain text cells.
type TablePayload struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Options mirrors the composite key normalization switches. When omitted,
// the default split policy applies: trim=true, case_insensitive=false.
type Options struct {
	Trim            bool `json:"trim"`
	CaseInsensitive bool `json:"case_insensitive"`
}

// SortColumn is one entry of the per-partition sort chain.
type SortColumn struct {
	Column    string `json:"column"`
	Direction string `json:"direction"`
}

// Request carries one inline table to partition by composite key.
type Request struct {
	Headers []string     `json:"headers"`
	Rows    [][]string   `json:"rows"`
	Key     string       `json:"key"`
	Options *Options     `json:"options,omitempty"`
	Sort    []SortColumn `json:"sort,omitempty"`
}

// Part is one partition: the literal key value and its rows.
type Part struct {
	KeyValue string       `json:"key_value"`
	Table    TablePayload `json:"table"`
}

// Response lists partitions in first-seen key order.
type Response struct {
	Parts []Part `json:"parts"`
}

// ObjectsRequest partitions a stored workbook and writes a zip archive of
// one workbook per partition back to the bucket.
type ObjectsRequest struct {
	Object       string       `json:"object"`
	Sheet        string       `json:"sheet,omitempty"`
	Key          string       `json:"key"`
	Options      *Options     `json:"options,omitempty"`
	Sort         []SortColumn `json:"sort,omitempty"`
	OutputObject string       `json:"output_object"`
}

// ObjectsResponse summarizes a stored split.
type ObjectsResponse struct {
	Parts        []PartSummary `json:"parts"`
	OutputObject string        `json:"output_object"`
}

// PartSummary is one partition's key and row count.
type PartSummary struct {
	KeyValue string `json:"key_value"`
	Rows     int    `json:"rows"`
}
