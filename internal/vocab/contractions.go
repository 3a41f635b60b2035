package vocab

// Table maps a contraction surface form to its ordered lemma components.
// Keys are lowercase; apostrophes are the plain ASCII form (lookups
// normalize typographic apostrophes first).
type Table map[string][]string

// Contractions returns the contraction table for a language and whether the
// language declares contraction support at all. Languages without a table
// skip contraction expansion entirely; new languages plug in here without
// touching the classifier.
func Contractions(lang string) (Table, bool) {
	table, ok := contractionTables[lang]
	return table, ok
}

var contractionTables = map[string]Table{
	"en": englishContractions,
	"fr": frenchContractions,
}

var englishContractions = Table{
	"i'm":       {"i", "be"},
	"you're":    {"you", "be"},
	"he's":      {"he", "be"},
	"she's":     {"she", "be"},
	"it's":      {"it", "be"},
	"we're":     {"we", "be"},
	"they're":   {"they", "be"},
	"that's":    {"that", "be"},
	"there's":   {"there", "be"},
	"what's":    {"what", "be"},
	"who's":     {"who", "be"},
	"where's":   {"where", "be"},
	"how's":     {"how", "be"},
	"isn't":     {"be", "not"},
	"aren't":    {"be", "not"},
	"wasn't":    {"be", "not"},
	"weren't":   {"be", "not"},
	"don't":     {"do", "not"},
	"doesn't":   {"do", "not"},
	"didn't":    {"do", "not"},
	"can't":     {"can", "not"},
	"cannot":    {"can", "not"},
	"couldn't":  {"could", "not"},
	"won't":     {"will", "not"},
	"wouldn't":  {"would", "not"},
	"shouldn't": {"should", "not"},
	"mustn't":   {"must", "not"},
	"haven't":   {"have", "not"},
	"hasn't":    {"have", "not"},
	"hadn't":    {"have", "not"},
	"i'll":      {"i", "will"},
	"you'll":    {"you", "will"},
	"he'll":     {"he", "will"},
	"she'll":    {"she", "will"},
	"we'll":     {"we", "will"},
	"they'll":   {"they", "will"},
	"it'll":     {"it", "will"},
	"i've":      {"i", "have"},
	"you've":    {"you", "have"},
	"we've":     {"we", "have"},
	"they've":   {"they", "have"},
	"i'd":       {"i", "would"},
	"you'd":     {"you", "would"},
	"he'd":      {"he", "would"},
	"she'd":     {"she", "would"},
	"we'd":      {"we", "would"},
	"they'd":    {"they", "would"},
	"let's":     {"let", "us"},
}

// French elisions. Only the high-frequency closed-class combinations are
// listed; open-class elisions (j'adore, l'ordinateur, ...) fall through to
// the plain membership test and count as unknown, which is the safe side.
var frenchContractions = Table{
	"c'est":   {"ce", "être"},
	"s'est":   {"se", "être"},
	"n'est":   {"ne", "être"},
	"j'ai":    {"je", "avoir"},
	"j'avais": {"je", "avoir"},
	"t'as":    {"tu", "avoir"},
	"n'a":     {"ne", "avoir"},
	"qu'il":   {"que", "il"},
	"qu'elle": {"que", "elle"},
	"qu'on":   {"que", "on"},
	"d'un":    {"de", "un"},
	"d'une":   {"de", "un"},
	"d'accord": {"de", "accord"},
	"j'y":     {"je", "y"},
	"n'y":     {"ne", "y"},
	"m'a":     {"me", "avoir"},
	"m'en":    {"me", "en"},
	"t'es":    {"tu", "être"},
	"l'on":    {"le", "on"},
}
