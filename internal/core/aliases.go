package core

// Canonical keys for the columns the pipeline understands.
const (
	KeyProgram          = "program"
	KeyCategory         = "kategori"
	KeyStronglyDisagree = "kesinlikle_katilmiyorum"
	KeyDisagree         = "katilmiyorum"
	KeyNeutral          = "kararsizim"
	KeyAgree            = "katiliyorum"
	KeyStronglyAgree    = "kesinlikle_katiliyorum"
	KeyTotal            = "toplam"
)

// aliasTable maps every known raw header spelling to its canonical key.
// Matching is exact and case-sensitive; a spelling that is not listed here is
// not a known column. Keys are stored in NFC form (see CleanCell).
var aliasTable = map[string]string{
	"Program": KeyProgram,

	"Kategori": KeyCategory,

	"Kesinlikle Katilmiyorum": KeyStronglyDisagree,
	"Kesinlikle katilmiyorum": KeyStronglyDisagree,
	"Kesinlikle Katılmıyorum": KeyStronglyDisagree,
	"Kesinlikle katılmıyorum": KeyStronglyDisagree,

	"Katilmiyorum": KeyDisagree,
	"Katılmıyorum": KeyDisagree,

	"Kararsizim": KeyNeutral,
	"Kararsızım": KeyNeutral,

	"Katiliyorum": KeyAgree,
	"Katılıyorum": KeyAgree,

	"Kesinlikle Katiliyorum": KeyStronglyAgree,
	"Kesinlikle katiliyorum": KeyStronglyAgree,
	"Kesinlikle Katılıyorum": KeyStronglyAgree,
	"Kesinlikle katılıyorum": KeyStronglyAgree,

	"Toplam": KeyTotal,
}

// Canonical resolves a raw header to its canonical key. ok is false for a
// header with no alias; such a header is an opaque column even when its text
// happens to equal a canonical key.
func Canonical(raw string) (key string, ok bool) {
	key, ok = aliasTable[CleanCell(raw)]
	return key, ok
}

// opaquePrefix marks unmapped columns in a NormalizedRow. Canonical keys
// never contain ':'.
const opaquePrefix = "raw:"

// OpaqueKey is the NormalizedRow key an unmapped header is stored under.
func OpaqueKey(raw string) string {
	return opaquePrefix + raw
}

// Aliases returns every raw spelling that resolves to key.
// Order is unspecified.
func Aliases(key string) []string {
	var out []string
	for raw, k := range aliasTable {
		if k == key {
			out = append(out, raw)
		}
	}
	return out
}

// NormalizeRow re-keys a parsed row by canonical key.
//
// When several raw headers collapse onto one key, the first present value
// wins; an empty or zero value is replaced by a later present one. headers
// fixes the precedence, so pass the file's header row. Headers without an
// alias are kept under [OpaqueKey] and never fill a canonical slot.
func NormalizeRow(row ParsedRow, headers []string) NormalizedRow {
	out := make(NormalizedRow, len(row))
	for _, h := range headers {
		v, ok := row[h]
		if !ok {
			continue
		}
		key, mapped := Canonical(h)
		if !mapped {
			out[OpaqueKey(h)] = v
			continue
		}
		if prev, seen := out[key]; seen && prev.Truthy() {
			continue
		}
		out[key] = v
	}
	return out
}
