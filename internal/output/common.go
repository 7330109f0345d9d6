package output

// TableHeaderLabel heads the row-label column of text and CSV tables.
const TableHeaderLabel = "variable"

// MotifTSVHeader is the canonical header row for motif text output.
const MotifTSVHeader = "protein\tloop\tpeptide\tmotifs"

// MotifSep joins several motifs in one text cell.
const MotifSep = "; "
