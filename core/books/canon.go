package books

// canon is the fixed 66-book King James table. Chapter counts follow the
// KJV versification. The lowercase canonical name is always an implicit
// alias; the lists below add the accepted abbreviations and ordinal
// spellings ("1 tim", "i timothy", "first timothy").
//
// Longest-prefix-wins is the documented disambiguation policy, so aliases
// that share a prefix (e.g. "1 tim" and "1 timothy") are safe to list
// together.
var canon = []Book{
	{ID: 1, Name: "Genesis", Chapters: 50, Testament: Old, Aliases: []string{"gen", "ge", "gn"}},
	{ID: 2, Name: "Exodus", Chapters: 40, Testament: Old, Aliases: []string{"exod", "exo", "ex"}},
	{ID: 3, Name: "Leviticus", Chapters: 27, Testament: Old, Aliases: []string{"lev", "le", "lv"}},
	{ID: 4, Name: "Numbers", Chapters: 36, Testament: Old, Aliases: []string{"num", "nu", "nm"}},
	{ID: 5, Name: "Deuteronomy", Chapters: 34, Testament: Old, Aliases: []string{"deut", "deu", "dt"}},
	{ID: 6, Name: "Joshua", Chapters: 24, Testament: Old, Aliases: []string{"josh", "jos", "jsh"}},
	{ID: 7, Name: "Judges", Chapters: 21, Testament: Old, Aliases: []string{"judg", "jdg", "jdgs"}},
	{ID: 8, Name: "Ruth", Chapters: 4, Testament: Old, Aliases: []string{"rth", "ru"}},
	{ID: 9, Name: "1 Samuel", Chapters: 31, Testament: Old, Aliases: []string{"1samuel", "1 sam", "1sam", "1sa", "i samuel", "i sam", "first samuel"}},
	{ID: 10, Name: "2 Samuel", Chapters: 24, Testament: Old, Aliases: []string{"2samuel", "2 sam", "2sam", "2sa", "ii samuel", "ii sam", "second samuel"}},
	{ID: 11, Name: "1 Kings", Chapters: 22, Testament: Old, Aliases: []string{"1kings", "1 kgs", "1kgs", "1ki", "i kings", "i kgs", "first kings"}},
	{ID: 12, Name: "2 Kings", Chapters: 25, Testament: Old, Aliases: []string{"2kings", "2 kgs", "2kgs", "2ki", "ii kings", "ii kgs", "second kings"}},
	{ID: 13, Name: "1 Chronicles", Chapters: 29, Testament: Old, Aliases: []string{"1chronicles", "1 chr", "1chr", "1ch", "i chronicles", "i chr", "first chronicles"}},
	{ID: 14, Name: "2 Chronicles", Chapters: 36, Testament: Old, Aliases: []string{"2chronicles", "2 chr", "2chr", "2ch", "ii chronicles", "ii chr", "second chronicles"}},
	{ID: 15, Name: "Ezra", Chapters: 10, Testament: Old, Aliases: []string{"ezr"}},
	{ID: 16, Name: "Nehemiah", Chapters: 13, Testament: Old, Aliases: []string{"neh", "ne"}},
	{ID: 17, Name: "Esther", Chapters: 10, Testament: Old, Aliases: []string{"esth", "est", "es"}},
	{ID: 18, Name: "Job", Chapters: 42, Testament: Old, Aliases: []string{"jb"}},
	{ID: 19, Name: "Psalms", Chapters: 150, Testament: Old, Aliases: []string{"psalm", "psa", "ps", "pss"}},
	{ID: 20, Name: "Proverbs", Chapters: 31, Testament: Old, Aliases: []string{"prov", "pro", "prv"}},
	{ID: 21, Name: "Ecclesiastes", Chapters: 12, Testament: Old, Aliases: []string{"eccl", "ecc", "qoheleth"}},
	{ID: 22, Name: "Song of Solomon", Chapters: 8, Testament: Old, Aliases: []string{"song", "song of songs", "sos", "canticles", "cant"}},
	{ID: 23, Name: "Isaiah", Chapters: 66, Testament: Old, Aliases: []string{"isa", "is"}},
	{ID: 24, Name: "Jeremiah", Chapters: 52, Testament: Old, Aliases: []string{"jer", "je"}},
	{ID: 25, Name: "Lamentations", Chapters: 5, Testament: Old, Aliases: []string{"lam", "la"}},
	{ID: 26, Name: "Ezekiel", Chapters: 48, Testament: Old, Aliases: []string{"ezek", "eze", "ezk"}},
	{ID: 27, Name: "Daniel", Chapters: 12, Testament: Old, Aliases: []string{"dan", "da", "dn"}},
	{ID: 28, Name: "Hosea", Chapters: 14, Testament: Old, Aliases: []string{"hos", "ho"}},
	{ID: 29, Name: "Joel", Chapters: 3, Testament: Old, Aliases: []string{"jl"}},
	{ID: 30, Name: "Amos", Chapters: 9, Testament: Old, Aliases: []string{"am"}},
	{ID: 31, Name: "Obadiah", Chapters: 1, Testament: Old, Aliases: []string{"obad", "oba", "ob"}},
	{ID: 32, Name: "Jonah", Chapters: 4, Testament: Old, Aliases: []string{"jon", "jnh"}},
	{ID: 33, Name: "Micah", Chapters: 7, Testament: Old, Aliases: []string{"mic", "mc"}},
	{ID: 34, Name: "Nahum", Chapters: 3, Testament: Old, Aliases: []string{"nah", "na"}},
	{ID: 35, Name: "Habakkuk", Chapters: 3, Testament: Old, Aliases: []string{"hab", "hb"}},
	{ID: 36, Name: "Zephaniah", Chapters: 3, Testament: Old, Aliases: []string{"zeph", "zep", "zp"}},
	{ID: 37, Name: "Haggai", Chapters: 2, Testament: Old, Aliases: []string{"hag", "hg"}},
	{ID: 38, Name: "Zechariah", Chapters: 14, Testament: Old, Aliases: []string{"zech", "zec", "zc"}},
	{ID: 39, Name: "Malachi", Chapters: 4, Testament: Old, Aliases: []string{"mal", "ml"}},
	{ID: 40, Name: "Matthew", Chapters: 28, Testament: New, Aliases: []string{"matt", "mat", "mt"}},
	{ID: 41, Name: "Mark", Chapters: 16, Testament: New, Aliases: []string{"mrk", "mk", "mr"}},
	{ID: 42, Name: "Luke", Chapters: 24, Testament: New, Aliases: []string{"luk", "lk", "lu"}},
	{ID: 43, Name: "John", Chapters: 21, Testament: New, Aliases: []string{"joh", "jhn", "jn"}},
	{ID: 44, Name: "Acts", Chapters: 28, Testament: New, Aliases: []string{"act", "ac"}},
	{ID: 45, Name: "Romans", Chapters: 16, Testament: New, Aliases: []string{"rom", "ro", "rm"}},
	{ID: 46, Name: "1 Corinthians", Chapters: 16, Testament: New, Aliases: []string{"1corinthians", "1 cor", "1cor", "1co", "i corinthians", "i cor", "first corinthians"}},
	{ID: 47, Name: "2 Corinthians", Chapters: 13, Testament: New, Aliases: []string{"2corinthians", "2 cor", "2cor", "2co", "ii corinthians", "ii cor", "second corinthians"}},
	{ID: 48, Name: "Galatians", Chapters: 6, Testament: New, Aliases: []string{"gal", "ga"}},
	{ID: 49, Name: "Ephesians", Chapters: 6, Testament: New, Aliases: []string{"eph", "ep"}},
	{ID: 50, Name: "Philippians", Chapters: 4, Testament: New, Aliases: []string{"phil", "php", "pp"}},
	{ID: 51, Name: "Colossians", Chapters: 4, Testament: New, Aliases: []string{"col", "co"}},
	{ID: 52, Name: "1 Thessalonians", Chapters: 5, Testament: New, Aliases: []string{"1thessalonians", "1 thess", "1thess", "1th", "i thessalonians", "i thess", "first thessalonians"}},
	{ID: 53, Name: "2 Thessalonians", Chapters: 3, Testament: New, Aliases: []string{"2thessalonians", "2 thess", "2thess", "2th", "ii thessalonians", "ii thess", "second thessalonians"}},
	{ID: 54, Name: "1 Timothy", Chapters: 6, Testament: New, Aliases: []string{"1timothy", "1 tim", "1tim", "1ti", "i timothy", "i tim", "first timothy"}},
	{ID: 55, Name: "2 Timothy", Chapters: 4, Testament: New, Aliases: []string{"2timothy", "2 tim", "2tim", "2ti", "ii timothy", "ii tim", "second timothy"}},
	{ID: 56, Name: "Titus", Chapters: 3, Testament: New, Aliases: []string{"tit", "ti"}},
	{ID: 57, Name: "Philemon", Chapters: 1, Testament: New, Aliases: []string{"phlm", "phm", "philem"}},
	{ID: 58, Name: "Hebrews", Chapters: 13, Testament: New, Aliases: []string{"heb", "he"}},
	{ID: 59, Name: "James", Chapters: 5, Testament: New, Aliases: []string{"jas", "jam", "jms"}},
	{ID: 60, Name: "1 Peter", Chapters: 5, Testament: New, Aliases: []string{"1peter", "1 pet", "1pet", "1pe", "i peter", "i pet", "first peter"}},
	{ID: 61, Name: "2 Peter", Chapters: 3, Testament: New, Aliases: []string{"2peter", "2 pet", "2pet", "2pe", "ii peter", "ii pet", "second peter"}},
	{ID: 62, Name: "1 John", Chapters: 5, Testament: New, Aliases: []string{"1john", "1 jn", "1jn", "1jo", "i john", "i jn", "first john"}},
	{ID: 63, Name: "2 John", Chapters: 1, Testament: New, Aliases: []string{"2john", "2 jn", "2jn", "2jo", "ii john", "ii jn", "second john"}},
	{ID: 64, Name: "3 John", Chapters: 1, Testament: New, Aliases: []string{"3john", "3 jn", "3jn", "3jo", "iii john", "iii jn", "third john"}},
	{ID: 65, Name: "Jude", Chapters: 1, Testament: New, Aliases: []string{"jud", "jde"}},
	{ID: 66, Name: "Revelation", Chapters: 22, Testament: New, Aliases: []string{"rev", "revelation of john", "apocalypse"}},
}

var canonical = MustNewSet(canon)

// Canonical returns the fixed King James book table.
func Canonical() *Set {
	return canonical
}
