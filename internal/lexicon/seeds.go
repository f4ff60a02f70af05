package lexicon

// Seed vocabularies and word lists. All entries are stored folded (lowercase,
// diacritics stripped) and every membership check folds its argument first,
// so "Gestión" and "gestion" land on the same key.

// TechSeed holds the technical seed skills.
var TechSeed = []string{
	"python", "javascript", "java", "sql", "html", "css", "nodejs", "react",
	"aws", "azure", "gcp", "docker", "kubernetes", "git", "linux", "cloud",
	"big data", "etl", "machine learning", "devops", "iot", "tensorflow",
	"pandas", "power bi", "tableau", "sap", "ciberseguridad",
	"arquitectura de datos", "nube", "transformacion digital", "fintech",
	"benchmarking", "metodologias agiles", "gobernanza de datos",
	"gobierno de ti", "estrategia tecnologica", "planificacion estrategica",
	"orquestacion de proyectos",

	// operaciones / negocio
	"gestion operativa", "cumplimiento operativo", "tasa de conversion",
	"margen operativo", "economia unitaria", "unit economics", "kpi", "okr",
	"sla", "nps", "crm", "salesforce", "hubspot", "looker studio",
	"data studio", "google analytics",

	// marketing / crecimiento
	"seo", "sem", "marketing digital", "redes sociales", "publicidad online",
	"email marketing", "automatizacion de marketing", "content marketing",
	"gestion de campanas", "analisis web", "optimizacion de conversiones",
	"growth hacking", "e-commerce", "google ads", "facebook ads",
	"linkedin ads", "programmatic advertising", "data driven marketing",

	// salud digital / hospitalario
	"salud digital", "informatica medica", "gestion clinica",
	"interoperabilidad", "telemedicina", "historia clinica electronica",
	"analitica en salud", "seguridad de la informacion",
	"proteccion de datos",
}

// SoftSeed holds the soft seed skills.
var SoftSeed = []string{
	"liderazgo", "comunicacion", "trabajo en equipo",
	"resolucion de problemas", "adaptabilidad", "creatividad",
	"pensamiento critico", "gestion del tiempo", "empatia", "colaboracion",
	"organizacion", "negociacion", "iniciativa", "gestion del cambio",
	"influencia", "orientacion a resultados", "toma de decisiones",
	"gestion de conflictos", "motivacion", "planificacion",
	"vision estrategica", "pensamiento analitico", "inteligencia emocional",
	"resiliencia", "gestion de proyectos", "orientacion al cliente",
	"habilidades interpersonales", "gestion del estres", "etica profesional",
	"mentoria", "coaching", "networking", "habilidades de presentacion",
	"gestion de equipos", "facilitacion", "resolucion de conflictos",
	"orientacion a objetivos", "gestion del conocimiento",
	"cultura organizacional", "desarrollo de talento",
	"gestion del desempeno", "evaluacion de riesgos",
	"gestion de la innovacion", "liderazgo de equipos",
	"comunicacion efectiva", "negociacion avanzada",
	"gestion del cambio organizacional", "pensamiento estrategico",
}

// ExperienceSeed holds the experience seed terms.
var ExperienceSeed = []string{
	"liderar", "coordinar", "supervisar", "gestionar", "desarrollar",
	"ejecutar", "organizar", "planificar", "estrategia", "transformacion",
	"analizar", "evaluar", "controlar", "monitorear", "optimizar",
	"formacion", "coaching", "administrar", "orquestar", "modelar",
	"implementacion", "gobernanza", "planificacion estrategica",
	"gestion de proyectos", "gestion de portafolio",
	"innovacion tecnologica", "seguridad informatica", "ciberseguridad",
	"analitica de datos", "inteligencia de negocios", "big data",
	"computacion en la nube", "transformacion digital",
	"metodologias agiles", "scrum", "kanban", "lean", "six sigma",
	"gestion del cambio", "gestion de riesgos", "gestion de la calidad",
	"mejora continua", "gestion del talento", "desarrollo organizacional",
	"gestion del conocimiento", "gestion del desempeno",
	"evaluacion de proyectos", "gestion financiera", "analisis financiero",
	"planificacion financiera", "control presupuestario",
	"optimizacion de costos",

	// operaciones
	"reclutar", "formar", "entrenar", "asegurar", "garantizar", "consolidar",
	"reportar", "supervisar ventas", "mantener autonomia", "tomar decisiones",
	"resolver conflictos", "gestionar equipos", "alcanzar objetivos",
	"cumplir metas", "liderar cambios", "fomentar innovacion",
	"impulsar crecimiento",
}

func toSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Stopwords are Spanish function words ignored by every extraction path.
var Stopwords = toSet(
	"de", "la", "que", "el", "en", "y", "a", "los", "del", "se", "las",
	"por", "un", "para", "con", "no", "una", "su", "al", "es", "lo", "como",
	"mas", "pero", "sus", "le", "ya", "o", "este", "si", "porque", "esta",
	"entre", "cuando", "muy", "sin", "sobre", "tambien", "me", "hasta",
	"hay", "donde", "quien", "desde", "todo", "nos", "durante", "todos",
	"uno", "les", "ni", "cada", "algo", "otro", "tanto", "poco", "mucho",
	"algun", "alguna", "cualquier", "cualquiera", "quienes", "cual",
	"cuales", "cuyos", "cuyas", "tenido", "tiene", "tenia", "tenemos",
	"tuvo", "tuvieron", "tener", "haya", "hubiera", "fuera", "ser", "soy",
	"era", "eres", "sea", "fui", "fue", "esta", "estaba", "estuvo",
	"estuve", "estar", "acerca", "estamos", "esa", "esas", "eso", "esos",
	"mi", "mis", "tus", "nuestro", "nuestra", "nuestras", "vosotros",
	"vosotras", "ellos", "ellas", "ustedes", "usted", "estos", "estas",
)

// PermittedVerbs may count as skills when they appear as bare tokens.
var PermittedVerbs = toSet(
	"liderar", "gestionar", "implementar", "orquestar", "planificar",
	"optimizar", "analizar", "modelar", "supervisar", "coordinar",
	"desarrollar", "evaluar", "monitorear",
)

// DiscardedVerbs never count as skills.
var DiscardedVerbs = toSet(
	"ser", "estar", "tener", "hacer", "poder", "deber", "dar", "trabajar",
	"apoyar",
)

// HeadNouns are noun-phrase heads that signal a professional competence.
var HeadNouns = toSet(
	"gestion", "estrategia", "innovacion", "proyecto", "portafolio",
	"arquitectura", "analitica", "modelo", "modelacion", "planificacion",
	"gobernanza", "gobierno", "transformacion", "seguridad",
	"ciberseguridad", "dato", "datos", "tecnologia", "finanzas", "fintech",
	"metodologia", "metodologias", "okr", "operacion", "operaciones",
	"cumplimiento", "conversion", "margen", "servicio", "servicios",
	"reclutamiento", "formacion", "venta", "ventas", "kpi", "sla", "nps",
	"economia", "economics", "partners", "equipo", "asistencia",
	"puntualidad", "crm", "clinica", "interoperabilidad", "logistica",
	"cadena", "suministro", "calidad", "auditoria",
)

// GenericNouns carry no competence signal on their own.
var GenericNouns = toSet(
	"base", "clave", "nivel", "requisito", "requisitos", "persona",
	"empresa", "compania", "area", "areas", "sector", "sectores",
	"resultado", "experiencia", "objetivo", "objetivos", "cambio",
	"negocio", "vision", "direccion", "retorno", "candidato", "candidatos",
	"perfil", "habilidad", "habilidades", "capacidad", "capacidades",
	"funcion", "responsabilidad", "responsabilidades", "actividad",
	"actividades", "tarea", "tareas", "labor", "labores", "desempeno",
	"rendimiento", "potencial", "oportunidad", "oportunidades",
	"desarrollo", "crecimiento", "avance", "mejora", "mejoras", "impacto",
	"iniciativa", "motivacion", "valores", "valor", "etica", "visionario",
	"visionaria", "visionarios", "visionarias", "lider", "lideres",
	"compromiso", "compromisos", "desafio", "desafios", "principales",
	"responsable", "responsables",
)

// AbstractTerms are abstract nouns penalized by the skill scorer.
var AbstractTerms = toSet(
	"conocimiento", "control", "estrategica", "proceso", "competencia",
	"habilidad", "organizacion", "entorno", "cultura", "flexibilidad",
	"sesgo", "sesgos", "tecnico", "tecnicos", "rol", "roles", "potencial",
	"potenciales", "cualidad", "cualidades", "virtud", "virtudes", "dote",
	"dotes", "talento", "talentos", "carrera", "carreras", "trayectoria",
	"trayectorias", "vocacion", "vocaciones", "pasion", "pasiones",
	"entusiasmo", "entusiasmos",
)

// Determiners are stripped from the front of candidate phrases.
var Determiners = toSet(
	"la", "el", "los", "las", "esta", "este", "estos", "estas", "una", "un",
)

// PrepExclude lists prepositions that disqualify a phrase when leading it.
var PrepExclude = toSet(
	"con", "sin", "para", "por", "en", "de", "del", "al", "sobre", "entre",
	"desde", "hacia", "hasta", "bajo", "tras", "segun", "durante",
	"mediante", "excepto", "salvo", "como",
)

// WhitelistTechTokens are single tokens always accepted as technical.
var WhitelistTechTokens = toSet(
	"python", "javascript", "java", "sql", "aws", "azure", "gcp", "sap",
	"crm", "salesforce", "hubspot", "okrs", "okr", "kpi", "nps", "sla",
	"docker", "kubernetes", "react", "nodejs", "tableau", "pandas", "git",
	"linux", "cloud", "fintech", "looker", "studio", "datastudio", "etl",
	"power", "bi", "tensorflow", "nube", "ia", "iot", "ciberseguridad",
	"seguridad", "devops", "powerbi",

	// creativo / audiovisual
	"photoshop", "illustrator", "indesign", "premiere", "lightroom",
	"after", "effects", "aftereffects", "figma", "canva", "davinci",
	"resolve", "audition", "media", "encoder", "adobe", "final", "cut",
	"pro", "audacity", "gimp", "blender", "cinema", "4d", "autodesk",
	"maya",
)

// BusinessSingletons are business words too vague to stand alone.
var BusinessSingletons = toSet(
	"cumplimiento", "formacion", "gestion", "operacion", "operaciones",
	"sistema", "sistemas", "tecnologia", "negocio", "proyecto", "proyectos",
	"servicio", "servicios", "vision", "direccion", "proceso", "procesos",
)

// TechGenericBlock lists generic singles that never count as technical.
var TechGenericBlock = toSet(
	"cumplimiento", "eficiencia", "especializacion", "formacion", "gestion",
	"innovacion", "profesional", "sistemas", "soluciones", "tecnologia",
	"transformacion", "calidad", "datos", "proceso", "procesos", "digital",
	"excelencia", "ingenieria", "ciencia", "ciencias", "institucion",
	"fundacion", "colombia",
)

// WhitelistTechPhrases are multi-word technical signals detected textually.
var WhitelistTechPhrases = []string{
	// TI / gestión / innovación
	"seguridad de la informacion", "proteccion de datos", "gobierno de ti",
	"arquitectura tecnologica", "arquitectura tecnologica y digital",
	"transformacion digital", "automatizacion de procesos",
	"cumplimiento de sla", "continuidad del negocio",
	"recuperacion ante desastres", "gestion de riesgos tecnologicos",
	"metodologias agiles", "gestion de proyectos",
	"orquestacion de proyectos", "estrategia tecnologica", "innovacion",
	"okr", "okrs",

	// creativo / audiovisual
	"adobe creative suite", "produccion audiovisual", "edicion de video",
	"retoque fotografico", "fotografia profesional",
	"composicion fotografica", "manejo de camara", "iluminacion",
	"diseno grafico", "motion graphics",
}

// ExcludeTerms are contextual, commercial and geographic words that must not
// surface as skills or training suggestions.
var ExcludeTerms = toSet(
	"postulate", "postulacion", "postular", "postula", "busqueda", "buscar",
	"fortalezca", "fortalecer", "envia", "enviar", "aplica", "aplicar",
	"aplicacion", "oportunidad", "reto", "proximo", "gran", "equipo",
	"empresa", "compania", "laboral", "profesional", "profesionales",
	"puesto", "vacante", "vacantes", "trabajo", "empleo", "oferta",
	"ofertas", "carrera", "carreras", "trayectoria", "trayectorias",
	"postulantes", "postulante", "seleccion", "contratacion", "contratar",
	"reclutamiento", "reclutador", "reclutadores", "rrhh", "rr.hh",
	"humano", "humanos", "recursos", "talento", "talentos", "humana",
	"humanas", "cv", "hoja de vida", "curriculum", "perfil", "perfiles",
	"laborales", "profesionalismo", "empleabilidad", "empleable",
	"empleables", "mercado", "mercados", "oportunidades", "desarrollo",
	"crecimiento", "mejora", "mejoras", "impacto", "iniciativa", "valores",
	"valor", "medellin", "bogota", "cali", "bucaramanga", "barranquilla",
	"cartagena", "latam", "presencial", "hibrido", "sobre", "acerca",
	"nosotros", "startup", "domesticos", "servicios", "sector",
	"transicion", "plataforma", "diaria", "todo", "mes", "porcentaje",
	"dias", "dia", "servicio", "asistencia", "carga", "operativa",
	"operativos", "operativo", "administrativa", "administrativo",
	"administrativos", "soporte", "soportes", "tecnico", "tecnicos",
	"area", "areas", "ceo", "acerca del empleo", "acerca del trabajo",
	"oferta laboral", "excelentes beneficios", "zona estrategica",
	"gran escala", "reto estrategico", "contrato",
	"a termino indefinido", "salario", "beneficios", "ubicacion",
	"nuestro equipo", "nuestra empresa", "nuestros clientes",
	"nuestras soluciones", "profesional apasionado",
	"profesional apasionado por la tecnologia", "soluciones tecnologicas",
	"institucion", "fundacion", "colombia",
)

// NoisePhrases are posting boilerplate fragments that disqualify candidates.
var NoisePhrases = []string{
	"sobre nosotros", "acerca del empleo", "acerca de", "somos",
	"estamos contratando", "hibrido", "excelentes beneficios",
	"proceso de seleccion", "postulate", "nuestro equipo",
	"nuestra empresa", "nuestras soluciones", "zona estrategica",
	"retos estrategicos",
}

// SectionPrefixes open marketing or section lines with no skill content.
var SectionPrefixes = []string{
	"sobre ", "acerca ", "estamos ", "somos ", "todo ", "en ", "por ",
	"del ", "como ",
}
