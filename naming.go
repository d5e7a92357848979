package glyphpng

import "fmt"
import "strings"
import "strconv"
import "unicode/utf8"
import "unicode/utf16"
import "path/filepath"
import "encoding/hex"
import "encoding/binary"

// Output file naming schemes.
type Naming uint8
const (
	// Names derived from the UTF-16 hex identifier (see [FileName]()).
	NamingCompat Naming = iota

	// Plain hex code point names, like "0041_image.png".
	NamingCodePoint
)

// Returns the naming scheme name ("compat" or "codepoint").
func (self Naming) String() string {
	switch self {
	case NamingCompat:    return "compat"
	case NamingCodePoint: return "codepoint"
	default:
		return "UnknownNaming"
	}
}

// Parses a naming scheme name as returned by [Naming.String]().
func ParseNaming(name string) (Naming, error) {
	switch strings.ToLower(name) {
	case "compat", "": return NamingCompat, nil
	case "codepoint":  return NamingCodePoint, nil
	default:
		return NamingCompat, fmt.Errorf("%w: unknown naming '%s'", ErrInvalidConfig, name)
	}
}

const imageSuffix = "_image.png"

// Returns the 8 lowercase hex characters of the code point's UTF-16
// encoding, as two big endian code units with the first one set to
// zero for code points in the Basic Multilingual Plane. For example,
// 'A' is "00000041" and U+1F600 is "d83dde00".
//
// Values that aren't scalar values are encoded as U+FFFD, following
// [utf16.Encode]().
func HexIdentifier(codePoint rune) string {
	var buffer [4]byte
	units := utf16.Encode([]rune{codePoint})
	if len(units) == 1 {
		binary.BigEndian.PutUint16(buffer[2:], units[0])
	} else {
		binary.BigEndian.PutUint16(buffer[0:], units[0])
		binary.BigEndian.PutUint16(buffer[2:], units[1])
	}
	return hex.EncodeToString(buffer[:])
}

// The inverse of [HexIdentifier]().
func DecodeHexIdentifier(identifier string) (rune, error) {
	if len(identifier) != 8 {
		return 0, fmt.Errorf("%w: hex identifier '%s' must be 8 characters long", ErrPath, identifier)
	}
	raw, err := hex.DecodeString(identifier)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid hex identifier '%s'", ErrPath, identifier)
	}

	high := binary.BigEndian.Uint16(raw[0:])
	low  := binary.BigEndian.Uint16(raw[2:])
	var codePoint rune
	if high == 0 {
		codePoint = rune(low)
	} else {
		codePoint = utf16.DecodeRune(rune(high), rune(low))
	}
	if !utf8.ValidRune(codePoint) || (high != 0 && codePoint == utf8.RuneError) {
		return 0, fmt.Errorf("%w: hex identifier '%s' is not a valid code point", ErrPath, identifier)
	}
	return codePoint, nil
}

// Returns the output file name for the given code point.
//
// With [NamingCompat], the file stem is the [HexIdentifier]() with its
// first byte dropped when it's zero padding, which is always the case
// for BMP code points: 'A' becomes "000041_image.png". Supplementary
// plane code points keep all the 8 characters so names never collide.
//
// With [NamingCodePoint], the stem is the code point in hex, zero
// padded to at least 4 characters: 'A' becomes "0041_image.png".
func FileName(codePoint rune, naming Naming) string {
	if naming == NamingCodePoint {
		stem := strconv.FormatInt(int64(codePoint), 16)
		if len(stem) < 4 { stem = strings.Repeat("0", 4 - len(stem)) + stem }
		return stem + imageSuffix
	}

	identifier := HexIdentifier(codePoint)
	if strings.HasPrefix(identifier, "00") {
		identifier = identifier[2:]
	}
	return identifier + imageSuffix
}

// Returns the final segment of the font path, to be used as the font
// output directory name. Fails with [ErrPath] for paths without a final
// segment (empty, root, "." or "..") or with a non UTF-8 final segment.
func BaseName(fontPath string) (string, error) {
	if fontPath == "" {
		return "", fmt.Errorf("%w: empty font path", ErrPath)
	}
	base := filepath.Base(fontPath)
	if base == "." || base == ".." || base == string(filepath.Separator) || base == "/" {
		return "", fmt.Errorf("%w: font path '%s' has no final segment", ErrPath, fontPath)
	}
	if !utf8.ValidString(base) {
		return "", fmt.Errorf("%w: font file name %q is not valid UTF-8", ErrPath, base)
	}
	return base, nil
}

// Returns "{outputDir}/{fontBaseName}/{FileName(codePoint, naming)}".
func OutputPath(outputDir, fontBaseName string, codePoint rune, naming Naming) string {
	return filepath.Join(outputDir, fontBaseName, FileName(codePoint, naming))
}
