package classifier

import (
	"fmt"
	"strconv"
	"strings"
)

// GenericType enumerates the supported generic tabular subtypes.
type GenericType uint8

const (
	GenericCSV GenericType = iota
	GenericTSV
)

func (t GenericType) String() string {
	switch t {
	case GenericCSV:
		return "CSV"
	case GenericTSV:
		return "TSV"
	}
	return "UNKNOWN"
}

// separator returns the column separator of the subtype.
func (t GenericType) separator() string {
	if t == GenericCSV {
		return ","
	}
	return "\t"
}

// GenericFormat describes which columns of a non-native tabular layout
// carry which semantic field. Immutable once built: ParseGenericFormat
// either returns a fully populated descriptor or an error naming the
// offending field, never a partially filled one.
type GenericFormat struct {
	Typ GenericType
	TID int   // 1-based taxid column
	Len int   // 1-based read-length column
	Sco int   // 1-based score column
	Unc TaxID // taxid column value marking an unclassified read
}

// ParseGenericFormat builds a descriptor from a specifier string of
// comma-separated KEY:VALUE pairs, e.g.
// "TYP:csv,TID:1,LEN:3,SCO:6,UNC:0". All five keys are mandatory.
func ParseGenericFormat(spec string) (GenericFormat, error) {
	pairs := make(map[string]string)
	for _, block := range strings.Split(spec, ",") {
		couple := strings.SplitN(block, ":", 2)
		if len(couple) != 2 {
			return GenericFormat{}, fmt.Errorf("%w: element %q is not a KEY:VALUE pair", ErrFormatSpec, strings.TrimSpace(block))
		}
		pairs[strings.ToUpper(strings.TrimSpace(couple[0]))] = strings.TrimSpace(couple[1])
	}

	var gf GenericFormat
	typ, ok := pairs["TYP"]
	if !ok {
		return GenericFormat{}, fmt.Errorf("%w: TYPe field is mandatory", ErrFormatSpec)
	}
	switch strings.ToUpper(typ) {
	case "CSV":
		gf.Typ = GenericCSV
	case "TSV":
		gf.Typ = GenericTSV
	default:
		return GenericFormat{}, fmt.Errorf("%w: unknown file TYPe %q, valid options are CSV or TSV", ErrFormatSpec, typ)
	}
	var err error
	if gf.TID, err = columnIndex(pairs, "TID", "TaxID"); err != nil {
		return GenericFormat{}, err
	}
	if gf.Len, err = columnIndex(pairs, "LEN", "LENgth"); err != nil {
		return GenericFormat{}, err
	}
	if gf.Sco, err = columnIndex(pairs, "SCO", "SCOre"); err != nil {
		return GenericFormat{}, err
	}
	unc, ok := pairs["UNC"]
	if !ok {
		return GenericFormat{}, fmt.Errorf("%w: UNClassified field is mandatory", ErrFormatSpec)
	}
	gf.Unc = TaxID(unc)
	return gf, nil
}

func columnIndex(pairs map[string]string, key, label string) (int, error) {
	raw, ok := pairs[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s field is mandatory", ErrFormatSpec, label)
	}
	col, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s field must be an integer column number, got %q", ErrFormatSpec, label, raw)
	}
	if col < 1 {
		return 0, fmt.Errorf("%w: %s column number must be positive, got %d", ErrFormatSpec, label, col)
	}
	return col, nil
}

// minColumns returns the smallest column count a row must have.
func (gf GenericFormat) minColumns() int {
	cols := gf.TID
	if gf.Len > cols {
		cols = gf.Len
	}
	if gf.Sco > cols {
		cols = gf.Sco
	}
	return cols
}

func (gf GenericFormat) String() string {
	return fmt.Sprintf("Generic format = TYP:%s, TID:%d, LEN:%d, SCO:%d, UNC:%s",
		gf.Typ, gf.TID, gf.Len, gf.Sco, gf.Unc)
}
