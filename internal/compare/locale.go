package compare

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// localeEnv lists the POSIX variables consulted for the current locale,
// highest precedence first.
var localeEnv = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// CurrentLocale returns the locale used by culture-aware policies.
// A non-empty override wins over the environment. Unset, "C", "POSIX"
// or unparseable values yield language.Und.
func CurrentLocale(override string) language.Tag {
	if override != "" {
		return parseLocale(override)
	}
	for _, name := range localeEnv {
		if v := os.Getenv(name); v != "" {
			return parseLocale(v)
		}
	}
	return language.Und
}

// parseLocale accepts POSIX ("tr_TR.UTF-8@euro") and BCP 47 ("tr-TR") forms.
func parseLocale(s string) language.Tag {
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	switch s {
	case "", "C", "POSIX":
		return language.Und
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}
