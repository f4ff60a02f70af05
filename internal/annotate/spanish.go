package annotate

import "strings"

// functionPOS maps folded surface forms of Spanish function words to tags.
// Folded means lowercase with diacritics removed, so "más" and "mas" collapse.
var functionPOS = map[string]string{}

func init() {
	fill := func(pos string, words ...string) {
		for _, w := range words {
			functionPOS[w] = pos
		}
	}

	fill(POSDet,
		"el", "la", "los", "las", "un", "una", "unos", "unas",
		"este", "esta", "estos", "estas", "ese", "esa", "esos", "esas",
		"aquel", "aquella", "mi", "mis", "tu", "tus", "su", "sus",
		"nuestro", "nuestra", "nuestros", "nuestras", "cada", "todo",
		"toda", "todos", "todas", "otro", "otra", "otros", "otras",
		"mismo", "misma", "mucho", "mucha", "muchos", "muchas",
		"poco", "poca", "pocos", "pocas", "varios", "varias",
		"algun", "alguna", "algunos", "algunas", "ningun", "ninguna",
	)
	fill(POSPron,
		"yo", "me", "nos", "te", "se", "le", "les", "lo",
		"usted", "ustedes", "nosotros", "ellos", "ellas", "quien",
		"quienes", "cual", "cuales", "algo", "nada", "alguien", "nadie",
	)
	fill(POSAdp,
		"a", "ante", "bajo", "con", "contra", "de", "desde", "durante",
		"en", "entre", "hacia", "hasta", "mediante", "para", "por",
		"segun", "sin", "sobre", "tras", "del", "al",
	)
	fill(POSConj, "y", "e", "o", "u", "ni", "pero", "sino")
	fill(POSSconj, "que", "si", "como", "cuando", "porque", "aunque", "mientras")
	fill(POSAux,
		"es", "son", "era", "eran", "fue", "fueron", "sea", "sean",
		"ser", "siendo", "sido",
		"esta", "estan", "estaba", "estaban", "estar", "estamos",
		"ha", "han", "haber", "habia", "habian", "hay", "he", "hemos",
	)
	fill(POSAdv,
		"no", "si", "muy", "mas", "menos", "bien", "mal", "tambien",
		"ademas", "solo", "ya", "aun", "siempre", "nunca", "ahora",
		"luego", "aqui", "alli", "asi", "donde", "dentro", "fuera",
	)
}

// irregularVerbForms maps folded conjugated forms to their infinitive.
var irregularVerbForms = map[string]string{
	"tengo": "tener", "tiene": "tener", "tienen": "tener",
	"tenia": "tener", "tuvo": "tener", "tuve": "tener",
	"hago": "hacer", "hace": "hacer", "hacen": "hacer",
	"hizo": "hacer", "hice": "hacer", "hecho": "hacer",
	"digo": "decir", "dice": "decir", "dicen": "decir", "dijo": "decir",
	"voy": "ir", "va": "ir", "van": "ir", "iba": "ir",
	"puedo": "poder", "puede": "poder", "pueden": "poder", "pudo": "poder",
	"quiero": "querer", "quiere": "querer", "quieren": "querer",
	"se": "saber", "sabe": "saber", "saben": "saber", "supo": "saber",
	"doy": "dar", "da": "dar", "dan": "dar", "dio": "dar",
	"veo": "ver", "ve": "ver", "ven": "ver", "vio": "ver", "visto": "ver",
	"pongo": "poner", "pone": "poner", "ponen": "poner", "puso": "poner",
	"vengo": "venir", "viene": "venir", "vienen": "venir", "vino": "venir",
	"lidero": "liderar", "lidera": "liderar", "lideran": "liderar",
	"logro": "lograr", "logra": "lograr", "logran": "lograr",
	// high-frequency job-posting verbs the suffix rules cannot reach
	"busca": "buscar", "buscan": "buscar", "buscamos": "buscar",
	"requiere": "requerir", "requieren": "requerir", "requerimos": "requerir",
	"ofrece": "ofrecer", "ofrecen": "ofrecer", "ofrecemos": "ofrecer",
	"necesita": "necesitar", "necesitan": "necesitar", "necesitamos": "necesitar",
	"valora": "valorar", "valoran": "valorar", "valoramos": "valorar",
	"solicita": "solicitar", "solicitan": "solicitar",
	"maneja": "manejar", "manejan": "manejar",
	"domina": "dominar", "conoce": "conocer", "conocen": "conocer",
	"trabaja": "trabajar", "trabajan": "trabajar", "trabajamos": "trabajar",
	"incluye": "incluir", "incluyen": "incluir",
	"cuenta": "contar", "contamos": "contar",
	"desea": "desear", "demuestra": "demostrar", "aplica": "aplicar",
	"utiliza": "utilizar", "utilizan": "utilizar",
}

// lemmaExceptions handles nouns the suffix rules would mangle.
var lemmaExceptions = map[string]string{
	"crisis":    "crisis",
	"analisis":  "analisis",
	"análisis":  "análisis",
	"sintesis":  "sintesis",
	"síntesis":  "síntesis",
	"veces":     "vez",
	"paises":    "pais",
	"países":    "país",
	"ingles":    "ingles",
	"inglés":    "inglés",
	"portugues": "portugues",
	"portugués": "portugués",
	"datos":     "dato",
	"ventas":    "venta",
	"redes":     "red",
	"niveles":   "nivel",
	"meses":     "mes",
	"lunes":     "lunes",
	"gestion":   "gestion",
	"gestión":   "gestión",
}

// nounSuffixExceptions are words whose infinitive-like ending is nominal.
var nounSuffixExceptions = map[string]struct{}{
	"lugar": {}, "hogar": {}, "azucar": {}, "mujer": {}, "taller": {},
	"nivel": {}, "papel": {}, "militar": {}, "bienestar": {}, "pilar": {},
	"caracter": {}, "lider": {}, "poder": {}, "cancer": {}, "dolar": {},
	"software": {}, "hardware": {}, "saber": {},
}

// Lemma returns a heuristic lemma for a lowercase Spanish word. The rules
// cover plural stripping, gerunds and participles; everything else maps to
// itself. Diacritics are preserved so the surface stays readable.
func Lemma(word string) string {
	if len(word) < 3 {
		return word
	}
	if lem, ok := lemmaExceptions[word]; ok {
		return lem
	}
	if inf, ok := irregularVerbForms[Fold(word)]; ok {
		return inf
	}

	switch {
	case strings.HasSuffix(word, "ando") && len(word) > 5:
		return word[:len(word)-4] + "ar"
	case strings.HasSuffix(word, "iendo") && len(word) > 6:
		return word[:len(word)-5] + "er"
	case strings.HasSuffix(word, "yendo") && len(word) > 6:
		return word[:len(word)-5] + "er"
	case strings.HasSuffix(word, "ados") && len(word) > 5:
		return word[:len(word)-4] + "ar"
	case strings.HasSuffix(word, "adas") && len(word) > 5:
		return word[:len(word)-4] + "ar"
	case strings.HasSuffix(word, "ado") && len(word) > 4:
		return word[:len(word)-3] + "ar"
	case strings.HasSuffix(word, "ada") && len(word) > 4:
		return word[:len(word)-3] + "ar"
	case strings.HasSuffix(word, "ces"):
		return word[:len(word)-3] + "z"
	case strings.HasSuffix(word, "ciones"):
		return word[:len(word)-6] + "ción"
	case strings.HasSuffix(word, "siones"):
		return word[:len(word)-6] + "sión"
	case strings.HasSuffix(word, "idades"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "es") && len(word) > 4 && endsConsonantBefore(word, 2):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "s") && len(word) > 3 && !strings.HasSuffix(word, "us"):
		return word[:len(word)-1]
	}
	return word
}

// endsConsonantBefore reports whether the rune before the final n-byte suffix
// is a consonant, e.g. "habilidades" before "es" has "d".
func endsConsonantBefore(word string, n int) bool {
	r := []rune(word)
	if len(r) <= n {
		return false
	}
	c := r[len(r)-n-1]
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'á', 'é', 'í', 'ó', 'ú':
		return false
	}
	return true
}

func hasVerbSuffix(folded string) bool {
	if _, ok := nounSuffixExceptions[folded]; ok {
		return false
	}
	if len(folded) < 5 {
		return false
	}
	switch {
	case strings.HasSuffix(folded, "ar"), strings.HasSuffix(folded, "er"),
		strings.HasSuffix(folded, "ir"):
		return true
	case strings.HasSuffix(folded, "ando"), strings.HasSuffix(folded, "iendo"),
		strings.HasSuffix(folded, "yendo"):
		return true
	}
	return false
}

func hasAdjectiveSuffix(folded string) bool {
	if len(folded) < 5 {
		return false
	}
	suffixes := []string{
		"oso", "osa", "osos", "osas",
		"ivo", "iva", "ivos", "ivas",
		"able", "ables", "ible", "ibles",
		"al", "ales", "ario", "aria",
		"ico", "ica", "icos", "icas",
		"agil", "agiles",
	}
	for _, s := range suffixes {
		if strings.HasSuffix(folded, s) {
			return true
		}
	}
	return false
}
