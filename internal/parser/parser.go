package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/rishavdey17/Streamlit-Indian-Super-League/internal/model"
)

// Sentinel errors. Callers match them with errors.Is.
var (
	ErrMatchNotFound  = errors.New("match not found")
	ErrSchemaMismatch = errors.New("schema mismatch")
	ErrMalformedRow   = errors.New("malformed row")
)

// Encoding names accepted by Options.
const (
	EncodingLatin1 = "latin-1"
	EncodingUTF8   = "utf-8"
)

// Column names of the event log.
const (
	ColEventID    = "eventId"
	ColTypeID     = "typeId"
	ColOutcome    = "outcome"
	ColX          = "x"
	ColY          = "y"
	ColPlayerName = "playerName"
	ColTeamName   = "teamName"
	ColAssist     = "assist"
	ColKeyPass    = "keyPass"
	ColPosition   = "position"

	suffixQualifierID    = "/qualifierId"
	suffixQualifierValue = "/value"
)

var requiredColumns = []string{ColEventID, ColTypeID, ColX, ColY, ColPlayerName, ColTeamName}

// Options controls how a match file is decoded.
type Options struct {
	Encoding string // EncodingLatin1 (default) or EncodingUTF8
}

// Header is the discovered column layout of one file.
type Header struct {
	index    map[string]int
	schema   model.Schema
	pairs    []pairIndex
	Warnings []string
}

type pairIndex struct {
	prefix   string
	idCol    int
	valueCol int
}

// Schema returns the discovered schema.
func (h *Header) Schema() model.Schema { return h.schema }

// DiscoverSchema inspects the header row once: it checks the required columns,
// records which optional columns exist, and pairs every "<prefix>/qualifierId"
// column with its "<prefix>/value" sibling in column order.
func DiscoverSchema(columns []string) (*Header, error) {
	h := &Header{index: make(map[string]int, len(columns))}
	for i, c := range columns {
		c = cleanColumn(c)
		if _, dup := h.index[c]; !dup {
			h.index[c] = i
		}
	}

	var missing []string
	for _, c := range requiredColumns {
		if _, ok := h.index[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required columns %s", ErrSchemaMismatch, strings.Join(missing, ", "))
	}

	_, h.schema.HasOutcome = h.index[ColOutcome]
	_, h.schema.HasAssist = h.index[ColAssist]
	_, h.schema.HasKeyPass = h.index[ColKeyPass]
	_, h.schema.HasPosition = h.index[ColPosition]

	for i, c := range columns {
		c = cleanColumn(c)
		if !strings.HasSuffix(c, suffixQualifierID) {
			continue
		}
		prefix := strings.TrimSuffix(c, suffixQualifierID)
		valueName := prefix + suffixQualifierValue
		vi, ok := h.index[valueName]
		if !ok {
			h.Warnings = append(h.Warnings, fmt.Sprintf("column %q has no %q sibling; ignored", c, valueName))
			continue
		}
		h.pairs = append(h.pairs, pairIndex{prefix: prefix, idCol: i, valueCol: vi})
		h.schema.QualifierPairs = append(h.schema.QualifierPairs, model.QualifierPair{
			Prefix:      prefix,
			IDColumn:    c,
			ValueColumn: valueName,
		})
	}
	if !h.schema.HasQualifiers() {
		h.Warnings = append(h.Warnings, "no qualifier columns; end coordinates unavailable")
	}
	return h, nil
}

// ParseRecord converts one CSV record into a RawEvent.
func (h *Header) ParseRecord(rowIndex int, rec []string) (model.RawEvent, error) {
	e := model.RawEvent{RowIndex: rowIndex}
	var err error

	if e.EventID, err = parseInt64(h.cell(rec, ColEventID)); err != nil {
		return e, fmt.Errorf("%w: %s: %v", ErrMalformedRow, ColEventID, err)
	}
	typeID, ok, err := parseOptionalInt(h.cell(rec, ColTypeID))
	if err != nil || !ok {
		return e, fmt.Errorf("%w: %s: %q", ErrMalformedRow, ColTypeID, h.cell(rec, ColTypeID))
	}
	e.TypeID = typeID
	if e.X, err = parseFloat(h.cell(rec, ColX)); err != nil {
		return e, fmt.Errorf("%w: %s: %v", ErrMalformedRow, ColX, err)
	}
	if e.Y, err = parseFloat(h.cell(rec, ColY)); err != nil {
		return e, fmt.Errorf("%w: %s: %v", ErrMalformedRow, ColY, err)
	}
	e.PlayerName = strings.TrimSpace(h.cell(rec, ColPlayerName))
	e.TeamName = strings.TrimSpace(h.cell(rec, ColTeamName))
	e.Position = strings.TrimSpace(h.cell(rec, ColPosition))

	if e.Outcome, err = h.optionalFlag(rec, ColOutcome); err != nil {
		return e, err
	}
	if e.Assist, err = h.optionalFlag(rec, ColAssist); err != nil {
		return e, err
	}
	if e.KeyPass, err = h.optionalFlag(rec, ColKeyPass); err != nil {
		return e, err
	}

	for _, p := range h.pairs {
		if p.idCol >= len(rec) {
			continue
		}
		id, ok, err := parseOptionalInt(rec[p.idCol])
		if err != nil || !ok {
			// Non-integral or empty ids are treated as an absent slot.
			continue
		}
		var value string
		if p.valueCol < len(rec) {
			value = rec[p.valueCol]
		}
		e.Qualifiers = append(e.Qualifiers, model.QualifierSlot{Prefix: p.prefix, ID: id, Value: value})
	}
	return e, nil
}

func (h *Header) cell(rec []string, col string) string {
	i, ok := h.index[col]
	if !ok || i >= len(rec) {
		return ""
	}
	return rec[i]
}

func (h *Header) optionalFlag(rec []string, col string) (*int, error) {
	v, ok, err := parseOptionalInt(h.cell(rec, col))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedRow, col, err)
	}
	if !ok {
		return nil, nil
	}
	return &v, nil
}

// ReadEvents decodes a full event log from r.
func ReadEvents(r io.Reader, match string, opts Options) (*model.EventTable, []string, error) {
	switch strings.ToLower(opts.Encoding) {
	case "", EncodingLatin1, "latin1", "iso-8859-1":
		r = charmap.ISO8859_1.NewDecoder().Reader(r)
	case EncodingUTF8, "utf8":
	default:
		return nil, nil, fmt.Errorf("unsupported encoding %q", opts.Encoding)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	columns, err := cr.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("%w: empty file", ErrSchemaMismatch)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	header, err := DiscoverSchema(columns)
	if err != nil {
		return nil, nil, err
	}

	table := &model.EventTable{Match: match, Schema: header.Schema()}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read row %d: %w", len(table.Events)+1, err)
		}
		e, err := header.ParseRecord(len(table.Events), rec)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, nil, fmt.Errorf("line %d: %w", line, err)
		}
		table.Events = append(table.Events, e)
	}
	return table, header.Warnings, nil
}

// ParseFile loads the event log at path. The match name is the file base name.
func ParseFile(path string, opts Options) (*model.EventTable, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", ErrMatchNotFound, path)
		}
		return nil, nil, fmt.Errorf("open match file: %w", err)
	}
	defer f.Close()
	return ReadEvents(f, MatchName(path), opts)
}

// MatchName derives the match identifier from a file path.
func MatchName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// ListMatches returns the match names of the CSV files in dir, sorted.
func ListMatches(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, MatchName(f))
	}
	sort.Strings(names)
	return names, nil
}

// MatchPath returns the file backing match in dir.
func MatchPath(dir, match string) string {
	return filepath.Join(dir, match+".csv")
}

// cleanColumn strips whitespace and a byte-order mark, which shows up as
// "\u00ef\u00bb\u00bf" when a UTF-8 file is decoded as latin-1.
func cleanColumn(c string) string {
	c = strings.TrimPrefix(c, "\ufeff")
	c = strings.TrimPrefix(c, "\u00ef\u00bb\u00bf")
	return strings.TrimSpace(c)
}

func parseInt64(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return int64(f), nil
}

// parseOptionalInt accepts "", "3" and "3.0"; ok is false for an empty or NaN cell.
func parseOptionalInt(s string) (v int, ok bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return 0, false, nil
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i, true, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false, fmt.Errorf("not an integer: %q", s)
	}
	return int(f), true, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number: %q", s)
	}
	return v, nil
}
