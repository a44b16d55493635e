// Package i18n resolves the caller's language signal into one of the two
// content locales and projects bilingual field pairs onto it.
package i18n

// Locale represents a supported content language
type Locale string

const (
	LocaleZh Locale = "zh"
	LocaleEn Locale = "en"
)

// chineseTags are matched literally and case-sensitively.
var chineseTags = map[string]struct{}{
	"zh":    {},
	"zh-TW": {},
	"zh-CN": {},
}

// Resolve maps a raw language tag to a Locale.
// Only "zh", "zh-TW" and "zh-CN" select Chinese; anything else,
// including an empty tag, selects English.
func Resolve(tag string) Locale {
	if _, ok := chineseTags[tag]; ok {
		return LocaleZh
	}
	return LocaleEn
}

// ResolveOptional is Resolve for filters that may be omitted:
// an empty tag yields the empty Locale (no language filter).
func ResolveOptional(tag string) Locale {
	if tag == "" {
		return ""
	}
	return Resolve(tag)
}

// IsZh reports whether the locale selects the Chinese fields
func (l Locale) IsZh() bool {
	return l == LocaleZh
}

// String implements fmt.Stringer
func (l Locale) String() string {
	return string(l)
}

// Pick returns zh for the Chinese locale and en otherwise.
func Pick[T any](l Locale, zh, en T) T {
	if l.IsZh() {
		return zh
	}
	return en
}
