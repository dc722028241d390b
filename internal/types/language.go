// README: Site language value shared by content, SEO and trip planning.
package types

type Language string

const (
	LangEN Language = "en"
	LangFR Language = "fr"
)

// ParseLanguage normalizes a query/form value; anything other than "fr" is English.
func ParseLanguage(v string) Language {
	if v == string(LangFR) {
		return LangFR
	}
	return LangEN
}
