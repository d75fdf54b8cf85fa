package normalize

// Fixed lookup tables used by the normalization pipeline. All of them are
// read-only after init, so concurrent callers need no synchronization.

// abbreviations maps token-level shorthand to its expanded form. Covers
// thoroughfares, buildings/units, administrative terms, and transliterated
// Devanagari equivalents of the same concepts so mixed-script addresses
// converge on one vocabulary.
var abbreviations = map[string]string{
	// thoroughfares
	"st":   "street",
	"rd":   "road",
	"ave":  "avenue",
	"av":   "avenue",
	"ln":   "lane",
	"ct":   "court",
	"cir":  "circle",
	"dr":   "drive",
	"pl":   "place",
	"pkwy": "parkway",
	"hwy":  "highway",

	// buildings / units
	"bldg": "building",
	"blk":  "block",
	"apt":  "apartment",
	"ste":  "suite",
	"fl":   "floor",
	"flr":  "floor",
	"twr":  "tower",
	"ph":   "phase",
	"sec":  "sector",

	// numbers / house
	"no":  "number",
	"hno": "house number",

	// administrative (common in IN addresses)
	"po":   "post office",
	"ps":   "police station",
	"stn":  "station",
	"dist": "district",
	"tal":  "taluk",
	"teh":  "tehsil",
	"nr":   "near",

	// transliterated Devanagari address terms
	"makan":  "house",
	"makaan": "house",
	"makana": "house",
	"ghar":   "house",
	"roda":   "road",
	"rod":    "road",
	"marg":   "road",
	"sadak":  "street",
	"gali":   "lane",
	"jila":   "district",
	"nikat":  "near",
	"pasa":   "near",
	"samne":  "opposite",
}

// stopwords are address glue words that dilute substantive-token overlap.
// Kept conservative to avoid harming names.
var stopwords = map[string]struct{}{
	"near":     {},
	"nearby":   {},
	"opposite": {},
	"opp":      {},
	"behind":   {},
	"beside":   {},
	"by":       {},
	"at":       {},
	"the":      {},
	"in":       {},
	"next":     {},
	"to":       {},
	"of":       {},
	"and":      {},
	"india":    {},
	"bharat":   {},
	"ke":       {},
	"ki":       {},
	"ka":       {},
}

// devanagariDigits maps native-script decimal digits to ASCII.
var devanagariDigits = map[rune]rune{
	'०': '0', '१': '1', '२': '2', '३': '3', '४': '4',
	'५': '5', '६': '6', '७': '7', '८': '8', '९': '9',
}

// devanagariConsonants maps Devanagari consonants to Latin approximations.
// The inherent vowel is handled by the transliteration loop, not the table.
var devanagariConsonants = map[rune]string{
	'क': "k", 'ख': "kh", 'ग': "g", 'घ': "gh", 'ङ': "n",
	'च': "ch", 'छ': "chh", 'ज': "j", 'झ': "jh", 'ञ': "n",
	'ट': "t", 'ठ': "th", 'ड': "d", 'ढ': "dh", 'ण': "n",
	'त': "t", 'थ': "th", 'द': "d", 'ध': "dh", 'न': "n",
	'प': "p", 'फ': "ph", 'ब': "b", 'भ': "bh", 'म': "m",
	'य': "y", 'र': "r", 'ल': "l", 'व': "v",
	'श': "sh", 'ष': "sh", 'स': "s", 'ह': "h", 'ळ': "l",
	// Precomposed nukta forms U+0958..U+095F (qa, khha, ghha, za, rra,
	// rrha, fa, yya). Decomposed input reaches the base consonant instead.
	'क़': "q", 'ख़': "kh", 'ग़': "g", 'ज़': "z",
	'ड़': "r", 'ढ़': "rh", 'फ़': "f", 'य़': "y",
}

// devanagariVowels maps independent vowels; long vowels collapse to their
// short Latin form so transliterations line up with common romanizations
// (gandhi, not gaandhii).
var devanagariVowels = map[rune]string{
	'अ': "a", 'आ': "a", 'इ': "i", 'ई': "i", 'उ': "u", 'ऊ': "u",
	'ऋ': "ri", 'ए': "e", 'ऐ': "ai", 'ओ': "o", 'औ': "au", 'ऑ': "o",
}

// devanagariMatras maps dependent vowel signs, which replace a consonant's
// inherent vowel.
var devanagariMatras = map[rune]string{
	'ा': "a", 'ि': "i", 'ी': "i", 'ु': "u", 'ू': "u",
	'ृ': "ri", 'े': "e", 'ै': "ai", 'ो': "o", 'ौ': "au", 'ॉ': "o",
}

const (
	devanagariVirama   = '्' // suppresses the inherent vowel
	devanagariAnusvara = 'ं'
	devanagariChandra  = 'ँ'
	devanagariVisarga  = 'ः'
	devanagariNukta    = '़'
)
