package domain

// Option is one entry of a form drop-down: the stored code and the label
// shown to applicants and on exported documents.
type Option struct {
	Code  string
	Label string
}

// Countries lists every country the form accepts, keyed by the lowercase
// ISO 3166-1 alpha-2 code that gets stored on the submission.
var Countries = []Option{
	{"af", "Afghanistan"},
	{"al", "Albania"},
	{"dz", "Algeria"},
	{"ad", "Andorra"},
	{"ao", "Angola"},
	{"ag", "Antigua and Barbuda"},
	{"ar", "Argentina"},
	{"am", "Armenia"},
	{"au", "Australia"},
	{"at", "Austria"},
	{"az", "Azerbaijan"},
	{"bs", "Bahamas"},
	{"bh", "Bahrain"},
	{"bd", "Bangladesh"},
	{"bb", "Barbados"},
	{"by", "Belarus"},
	{"be", "Belgium"},
	{"bz", "Belize"},
	{"bj", "Benin"},
	{"bt", "Bhutan"},
	{"bo", "Bolivia"},
	{"ba", "Bosnia and Herzegovina"},
	{"bw", "Botswana"},
	{"br", "Brazil"},
	{"bn", "Brunei"},
	{"bg", "Bulgaria"},
	{"bf", "Burkina Faso"},
	{"bi", "Burundi"},
	{"cv", "Cabo Verde"},
	{"kh", "Cambodia"},
	{"cm", "Cameroon"},
	{"ca", "Canada"},
	{"cf", "Central African Republic"},
	{"td", "Chad"},
	{"cl", "Chile"},
	{"cn", "China"},
	{"co", "Colombia"},
	{"km", "Comoros"},
	{"cg", "Congo"},
	{"cd", "Congo (DRC)"},
	{"cr", "Costa Rica"},
	{"ci", "Côte d'Ivoire"},
	{"hr", "Croatia"},
	{"cu", "Cuba"},
	{"cy", "Cyprus"},
	{"cz", "Czechia"},
	{"dk", "Denmark"},
	{"dj", "Djibouti"},
	{"dm", "Dominica"},
	{"do", "Dominican Republic"},
	{"ec", "Ecuador"},
	{"eg", "Egypt"},
	{"sv", "El Salvador"},
	{"gq", "Equatorial Guinea"},
	{"er", "Eritrea"},
	{"ee", "Estonia"},
	{"sz", "Eswatini"},
	{"et", "Ethiopia"},
	{"fj", "Fiji"},
	{"fi", "Finland"},
	{"fr", "France"},
	{"ga", "Gabon"},
	{"gm", "Gambia"},
	{"ge", "Georgia"},
	{"de", "Germany"},
	{"gh", "Ghana"},
	{"gr", "Greece"},
	{"gd", "Grenada"},
	{"gt", "Guatemala"},
	{"gn", "Guinea"},
	{"gw", "Guinea-Bissau"},
	{"gy", "Guyana"},
	{"ht", "Haiti"},
	{"hn", "Honduras"},
	{"hu", "Hungary"},
	{"is", "Iceland"},
	{"in", "India"},
	{"id", "Indonesia"},
	{"ir", "Iran"},
	{"iq", "Iraq"},
	{"ie", "Ireland"},
	{"il", "Israel"},
	{"it", "Italy"},
	{"jm", "Jamaica"},
	{"jp", "Japan"},
	{"jo", "Jordan"},
	{"kz", "Kazakhstan"},
	{"ke", "Kenya"},
	{"ki", "Kiribati"},
	{"kp", "North Korea"},
	{"kr", "South Korea"},
	{"kw", "Kuwait"},
	{"kg", "Kyrgyzstan"},
	{"la", "Laos"},
	{"lv", "Latvia"},
	{"lb", "Lebanon"},
	{"ls", "Lesotho"},
	{"lr", "Liberia"},
	{"ly", "Libya"},
	{"li", "Liechtenstein"},
	{"lt", "Lithuania"},
	{"lu", "Luxembourg"},
	{"mg", "Madagascar"},
	{"mw", "Malawi"},
	{"my", "Malaysia"},
	{"mv", "Maldives"},
	{"ml", "Mali"},
	{"mt", "Malta"},
	{"mh", "Marshall Islands"},
	{"mr", "Mauritania"},
	{"mu", "Mauritius"},
	{"mx", "Mexico"},
	{"fm", "Micronesia"},
	{"md", "Moldova"},
	{"mc", "Monaco"},
	{"mn", "Mongolia"},
	{"me", "Montenegro"},
	{"ma", "Morocco"},
	{"mz", "Mozambique"},
	{"mm", "Myanmar"},
	{"na", "Namibia"},
	{"nr", "Nauru"},
	{"np", "Nepal"},
	{"nl", "Netherlands"},
	{"nz", "New Zealand"},
	{"ni", "Nicaragua"},
	{"ne", "Niger"},
	{"ng", "Nigeria"},
	{"mk", "North Macedonia"},
	{"no", "Norway"},
	{"om", "Oman"},
	{"pk", "Pakistan"},
	{"pw", "Palau"},
	{"ps", "Palestine"},
	{"pa", "Panama"},
	{"pg", "Papua New Guinea"},
	{"py", "Paraguay"},
	{"pe", "Peru"},
	{"ph", "Philippines"},
	{"pl", "Poland"},
	{"pt", "Portugal"},
	{"qa", "Qatar"},
	{"ro", "Romania"},
	{"ru", "Russia"},
	{"rw", "Rwanda"},
	{"kn", "Saint Kitts and Nevis"},
	{"lc", "Saint Lucia"},
	{"vc", "Saint Vincent and the Grenadines"},
	{"ws", "Samoa"},
	{"sm", "San Marino"},
	{"st", "Sao Tome and Principe"},
	{"sa", "Saudi Arabia"},
	{"sn", "Senegal"},
	{"rs", "Serbia"},
	{"sc", "Seychelles"},
	{"sl", "Sierra Leone"},
	{"sg", "Singapore"},
	{"sk", "Slovakia"},
	{"si", "Slovenia"},
	{"sb", "Solomon Islands"},
	{"so", "Somalia"},
	{"za", "South Africa"},
	{"ss", "South Sudan"},
	{"es", "Spain"},
	{"lk", "Sri Lanka"},
	{"sd", "Sudan"},
	{"sr", "Suriname"},
	{"se", "Sweden"},
	{"ch", "Switzerland"},
	{"sy", "Syria"},
	{"tw", "Taiwan"},
	{"tj", "Tajikistan"},
	{"tz", "Tanzania"},
	{"th", "Thailand"},
	{"tl", "Timor-Leste"},
	{"tg", "Togo"},
	{"to", "Tonga"},
	{"tt", "Trinidad and Tobago"},
	{"tn", "Tunisia"},
	{"tr", "Turkey"},
	{"tm", "Turkmenistan"},
	{"tv", "Tuvalu"},
	{"ug", "Uganda"},
	{"ua", "Ukraine"},
	{"ae", "United Arab Emirates"},
	{"gb", "United Kingdom"},
	{"us", "United States"},
	{"uy", "Uruguay"},
	{"uz", "Uzbekistan"},
	{"vu", "Vanuatu"},
	{"va", "Vatican City"},
	{"ve", "Venezuela"},
	{"vn", "Vietnam"},
	{"ye", "Yemen"},
	{"zm", "Zambia"},
	{"zw", "Zimbabwe"},
}

// Timezones lists the UTC offsets offered on the form. The value is a
// free-form code, not an IANA zone name.
var Timezones = []Option{
	{"utc-12", "UTC-12:00 (Baker Island)"},
	{"utc-11", "UTC-11:00 (American Samoa)"},
	{"utc-10", "UTC-10:00 (Hawaii)"},
	{"utc-9", "UTC-09:00 (Alaska)"},
	{"utc-8", "UTC-08:00 (Pacific Time)"},
	{"utc-7", "UTC-07:00 (Mountain Time)"},
	{"utc-6", "UTC-06:00 (Central Time)"},
	{"utc-5", "UTC-05:00 (Eastern Time)"},
	{"utc-4", "UTC-04:00 (Atlantic Time)"},
	{"utc-3", "UTC-03:00 (Brazil)"},
	{"utc-2", "UTC-02:00 (Mid-Atlantic)"},
	{"utc-1", "UTC-01:00 (Azores)"},
	{"utc+0", "UTC+00:00 (London, GMT)"},
	{"utc+1", "UTC+01:00 (Central Europe)"},
	{"utc+2", "UTC+02:00 (Eastern Europe)"},
	{"utc+3", "UTC+03:00 (Moscow, Arabia)"},
	{"utc+4", "UTC+04:00 (Gulf, UAE)"},
	{"utc+5", "UTC+05:00 (Pakistan)"},
	{"utc+5:30", "UTC+05:30 (India)"},
	{"utc+6", "UTC+06:00 (Bangladesh)"},
	{"utc+7", "UTC+07:00 (Thailand, Vietnam)"},
	{"utc+8", "UTC+08:00 (China, Singapore)"},
	{"utc+9", "UTC+09:00 (Japan, Korea)"},
	{"utc+10", "UTC+10:00 (Sydney)"},
	{"utc+11", "UTC+11:00 (Solomon Islands)"},
	{"utc+12", "UTC+12:00 (New Zealand)"},
}

// Languages lists the native-language choices, "other" included.
var Languages = []Option{
	{"afrikaans", "Afrikaans"},
	{"albanian", "Albanian"},
	{"amharic", "Amharic"},
	{"arabic", "Arabic"},
	{"armenian", "Armenian"},
	{"azerbaijani", "Azerbaijani"},
	{"basque", "Basque"},
	{"belarusian", "Belarusian"},
	{"bengali", "Bengali"},
	{"bosnian", "Bosnian"},
	{"bulgarian", "Bulgarian"},
	{"burmese", "Burmese"},
	{"catalan", "Catalan"},
	{"chinese_mandarin", "Chinese (Mandarin)"},
	{"chinese_cantonese", "Chinese (Cantonese)"},
	{"croatian", "Croatian"},
	{"czech", "Czech"},
	{"danish", "Danish"},
	{"dutch", "Dutch"},
	{"english", "English"},
	{"estonian", "Estonian"},
	{"farsi", "Farsi (Persian)"},
	{"filipino", "Filipino (Tagalog)"},
	{"finnish", "Finnish"},
	{"french", "French"},
	{"galician", "Galician"},
	{"georgian", "Georgian"},
	{"german", "German"},
	{"greek", "Greek"},
	{"gujarati", "Gujarati"},
	{"haitian_creole", "Haitian Creole"},
	{"hausa", "Hausa"},
	{"hebrew", "Hebrew"},
	{"hindi", "Hindi"},
	{"hungarian", "Hungarian"},
	{"icelandic", "Icelandic"},
	{"igbo", "Igbo"},
	{"indonesian", "Indonesian"},
	{"irish", "Irish"},
	{"italian", "Italian"},
	{"japanese", "Japanese"},
	{"javanese", "Javanese"},
	{"kannada", "Kannada"},
	{"kazakh", "Kazakh"},
	{"khmer", "Khmer"},
	{"korean", "Korean"},
	{"kurdish", "Kurdish"},
	{"kyrgyz", "Kyrgyz"},
	{"lao", "Lao"},
	{"latvian", "Latvian"},
	{"lithuanian", "Lithuanian"},
	{"macedonian", "Macedonian"},
	{"malay", "Malay"},
	{"malayalam", "Malayalam"},
	{"maltese", "Maltese"},
	{"maori", "Maori"},
	{"marathi", "Marathi"},
	{"mongolian", "Mongolian"},
	{"nepali", "Nepali"},
	{"norwegian", "Norwegian"},
	{"odia", "Odia"},
	{"pashto", "Pashto"},
	{"polish", "Polish"},
	{"portuguese", "Portuguese"},
	{"punjabi", "Punjabi"},
	{"romanian", "Romanian"},
	{"russian", "Russian"},
	{"samoan", "Samoan"},
	{"serbian", "Serbian"},
	{"sindhi", "Sindhi"},
	{"sinhala", "Sinhala"},
	{"slovak", "Slovak"},
	{"slovenian", "Slovenian"},
	{"somali", "Somali"},
	{"spanish", "Spanish"},
	{"swahili", "Swahili"},
	{"swedish", "Swedish"},
	{"tamil", "Tamil"},
	{"telugu", "Telugu"},
	{"thai", "Thai"},
	{"turkish", "Turkish"},
	{"ukrainian", "Ukrainian"},
	{"urdu", "Urdu"},
	{"uzbek", "Uzbek"},
	{"vietnamese", "Vietnamese"},
	{"welsh", "Welsh"},
	{"xhosa", "Xhosa"},
	{"yiddish", "Yiddish"},
	{"yoruba", "Yoruba"},
	{"zulu", "Zulu"},
	{"other", "Other"},
}

var (
	countryLabels  = indexOptions(Countries)
	timezoneLabels = indexOptions(Timezones)
	languageLabels = indexOptions(Languages)
)

func indexOptions(opts []Option) map[string]string {
	m := make(map[string]string, len(opts))
	for _, o := range opts {
		m[o.Code] = o.Label
	}
	return m
}

// IsCountry reports whether code is one of the accepted country codes.
func IsCountry(code string) bool {
	_, ok := countryLabels[code]
	return ok
}

// IsLanguage reports whether code is one of the accepted language codes.
func IsLanguage(code string) bool {
	_, ok := languageLabels[code]
	return ok
}

// IsTimezone reports whether code is one of the offered timezone codes.
func IsTimezone(code string) bool {
	_, ok := timezoneLabels[code]
	return ok
}

// CountryLabel resolves a stored country code to its display label.
// Unknown codes come back unchanged so old data still renders.
func CountryLabel(code string) string {
	if l, ok := countryLabels[code]; ok {
		return l
	}
	return code
}

// TimezoneLabel resolves a stored timezone code to its display label.
func TimezoneLabel(code string) string {
	if l, ok := timezoneLabels[code]; ok {
		return l
	}
	return code
}

// LanguageLabel resolves a stored language code to its display label.
func LanguageLabel(code string) string {
	if l, ok := languageLabels[code]; ok {
		return l
	}
	return code
}
