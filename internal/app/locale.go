package app

import "strings"

// SupportedLocales is the closed set of content locales. DefaultLocale is the
// final fallback; resolution never fails.
var SupportedLocales = []string{"en", "no", "hr"}

const DefaultLocale = "en"

func SupportedLocale(l string) bool {
	for _, s := range SupportedLocales {
		if s == l {
			return true
		}
	}
	return false
}

// ResolveLocale picks the locale governing a reconciliation pass. An explicit
// path segment wins when it names a supported locale; otherwise the
// Accept-Language preference list is scanned in order, matching only the
// primary subtag ("en" from "en-US"); otherwise DefaultLocale.
func ResolveLocale(pathSegment, acceptLanguage string) string {
	if l := strings.ToLower(strings.TrimSpace(pathSegment)); SupportedLocale(l) {
		return l
	}
	for _, part := range strings.Split(acceptLanguage, ",") {
		lang := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		lang = strings.ToLower(strings.SplitN(lang, "-", 2)[0])
		if SupportedLocale(lang) {
			return lang
		}
	}
	return DefaultLocale
}
