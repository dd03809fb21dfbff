package keyword

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/robert-malhotra/go-bladed/internal/dtype"
)

// ErrUnknownKind is returned when a schema maps a keyword to a kind this
// package does not implement. With the shipped schema this cannot happen; it
// indicates a broken custom schema.
var ErrUnknownKind = errors.New("unimplemented keyword decode kind")

// quotedName matches variable names enclosed in single quotes. Names may
// contain word characters, whitespace and the set -()/.
var quotedName = regexp.MustCompile(`'([\w\s\-()/.]+)'`)

// Decoded is one successfully decoded keyword/value pair.
type Decoded struct {
	Keyword string
	Value   Value
}

// Decode parses one header line against the schema. The boolean reports
// whether the line decoded: lines that do not split into keyword and value,
// or whose keyword is not in the schema, return (zero, false, nil) and are
// skipped by callers. A recognized keyword with an undecodable value is a
// fatal error.
func Decode(line string, schema Schema) (Decoded, bool, error) {
	kw, rest, ok := splitLine(line)
	if !ok {
		return Decoded{}, false, nil
	}
	kind, known := schema[kw]
	if !known {
		return Decoded{}, false, nil
	}
	value, err := decodeValue(kind, rest)
	if err != nil {
		return Decoded{}, false, fmt.Errorf("keyword %s: %w", kw, err)
	}
	return Decoded{Keyword: kw, Value: value}, true, nil
}

// splitLine splits a line on its first run of whitespace. Leading whitespace
// is ignored; a line with a single token reports ok=false.
func splitLine(line string) (kw, rest string, ok bool) {
	line = strings.TrimRight(line, "\r\n")
	line = strings.TrimLeft(line, " \t")
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return "", "", false
	}
	kw = line[:i]
	rest = strings.TrimLeft(line[i:], " \t")
	if rest == "" {
		return "", "", false
	}
	return kw, rest, true
}

func decodeValue(kind Kind, rest string) (Value, error) {
	v := Value{Kind: kind}
	switch kind {
	case String:
		v.Str = rest
	case StringStripQuotes:
		v.Str = strings.ReplaceAll(rest, "'", "")
	case StringList:
		// Single-space tokenization, as written by Bladed.
		v.Strs = strings.Split(rest, " ")
	case StringListStripQuotes:
		for _, m := range quotedName.FindAllStringSubmatch(rest, -1) {
			v.Strs = append(v.Strs, m[1])
		}
	case Int:
		n, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			return Value{}, fmt.Errorf("parsing int: %w", err)
		}
		v.Int = n
	case IntList:
		for _, tok := range strings.Fields(rest) {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return Value{}, fmt.Errorf("parsing int list: %w", err)
			}
			v.Ints = append(v.Ints, n)
		}
	case Float:
		f, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
		if err != nil {
			return Value{}, fmt.Errorf("parsing float: %w", err)
		}
		v.Float = f
	case FloatList:
		for _, tok := range strings.Fields(rest) {
			f, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return Value{}, fmt.Errorf("parsing float list: %w", err)
			}
			v.Floats = append(v.Floats, f)
		}
	case DTypeCode:
		code, err := dtype.Parse(strings.TrimSpace(rest))
		if err != nil {
			return Value{}, err
		}
		v.DType = code
	default:
		return Value{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	return v, nil
}
