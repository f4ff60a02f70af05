package rules

import "regexp"

// domainRule ties a functional area to its minimum-years requirement. The
// offer patterns detect the area in the posting, the cv patterns detect
// evidence of the same area in the CV. StrongRole, when set, activates the
// rule even without an explicit years figure (senior titles imply the
// experience bar).
type domainRule struct {
	Label      string
	Offer      []*regexp.Regexp
	CV         []*regexp.Regexp
	StrongRole *regexp.Regexp
}

// yearsNear matches "5 años", "mínimo 3 años", "al menos 4 años",
// "experiencia de 2 años" on folded text (años is folded to anos).
var yearsNear = regexp.MustCompile(`(?:m[i]n(?:imo)?\s*|al\s+menos\s*|experiencia\s+de\s*)?(\d+)\s*\+?\s*anos`)

// experienciaMention is the loose CV evidence gate: the domain pattern must
// co-occur with some mention of experience or a years figure.
var experienciaMention = regexp.MustCompile(`experiencia|\d+\s*anos|trayectoria`)

func domainRules() []domainRule {
	return []domainRule{
		{
			Label: "mercadeo/marketing",
			Offer: []*regexp.Regexp{
				regexp.MustCompile(`mercadeo|marketing|trade\s+marketing|brand(ing)?`),
			},
			CV: []*regexp.Regexp{
				regexp.MustCompile(`mercadeo|marketing|trade\s+marketing|brand(ing)?|campanas`),
			},
		},
		{
			Label: "área comercial/ventas",
			Offer: []*regexp.Regexp{
				regexp.MustCompile(`comercial(es)?|ventas?|negocios?`),
			},
			CV: []*regexp.Regexp{
				regexp.MustCompile(`comercial(es)?|ventas?|negociacion|cartera\s+de\s+clientes`),
			},
			StrongRole: regexp.MustCompile(`\b(gerente|director|jefe)\s+comercial\b`),
		},
		{
			Label: "recursos humanos",
			Offer: []*regexp.Regexp{
				regexp.MustCompile(`recursos\s+humanos|talento\s+humano|\brr\s*hh\b|gestion\s+humana`),
			},
			CV: []*regexp.Regexp{
				regexp.MustCompile(`recursos\s+humanos|talento\s+humano|\brr\s*hh\b|gestion\s+humana|seleccion\s+de\s+personal|nomina`),
			},
		},
		{
			Label: "auditoría",
			Offer: []*regexp.Regexp{
				regexp.MustCompile(`auditoria`),
			},
			CV: []*regexp.Regexp{
				regexp.MustCompile(`auditoria|auditor[a]?\b`),
			},
		},
		{
			Label: "logística/cadena de suministro",
			Offer: []*regexp.Regexp{
				regexp.MustCompile(`logistica|cadena\s+de\s+suministro|supply\s+chain`),
			},
			CV: []*regexp.Regexp{
				regexp.MustCompile(`logistica|cadena\s+de\s+suministro|supply\s+chain|inventarios?|distribucion`),
			},
		},
		{
			Label: "analítica/BI/datos",
			Offer: []*regexp.Regexp{
				regexp.MustCompile(`analitica|business\s+intelligence|\bbi\b|ciencia\s+de\s+datos|analisis\s+de\s+datos`),
			},
			CV: []*regexp.Regexp{
				regexp.MustCompile(`analitica|business\s+intelligence|\bbi\b|ciencia\s+de\s+datos|analisis\s+de\s+datos|power\s*bi|tableau|sql`),
			},
		},
	}
}

// yearsForDomain finds the minimum years figure nearest to a domain mention
// in the folded offer text. It scans line by line so an unrelated years
// figure elsewhere in the posting does not attach to the wrong area.
func yearsForDomain(offerLines []string, d domainRule) (int, bool) {
	for _, line := range offerLines {
		hit := false
		for _, re := range d.Offer {
			if re.MatchString(line) {
				hit = true
				break
			}
		}
		if !hit {
			continue
		}
		if m := yearsNear.FindStringSubmatch(line); m != nil {
			return atoiSafe(m[1]), true
		}
	}
	return 0, false
}

func atoiSafe(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return n
		}
		n = n*10 + int(r-'0')
	}
	return n
}
