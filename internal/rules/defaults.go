package rules

// DefaultSet returns the built-in rule set for callers that run without a
// rules file.
func DefaultSet() RuleSet { return defaultRuleSet() }

// defaultRuleSet is the built-in rule table. User files extend it: unknown
// ids are kept, known ids get their missing fields filled from here.
func defaultRuleSet() RuleSet {
	return RuleSet{
		Rules: defaultRules(),

		ExperienceRegex: `(min(?:imo)?\s*)?(\d+)\s*(?:\+|mas\s+de\s+)?\s*(anos|years?)`,

		KnowledgePrefixes: []string{
			"conocimiento en", "conocimientos en", "manejo de", "dominio de",
			"nivel avanzado en",
		},
		KnowledgeSectionHeaders: []string{
			"conocimientos tecnicos", "conocimientos",
			"habilidades tecnicas", "herramientas", "tecnologias",
			"requerimientos", "otras habilidades",
		},
		BulletMarkers: []string{"•", "-", "*", "·"},

		CanonicalTokenCap: 5,
	}
}

func defaultRules() []Rule {
	return []Rule{
		// ===== idiomas =====
		{
			ID:         "lang_english",
			Label:      "Inglés requerido",
			Type:       TypeLanguage,
			Lang:       "en",
			TriggerAny: []string{"inglés", "ingles", "english", "bilingüe", "bilingual"},
			LevelRegex: `\b([abc][12])\b|bilingue|bilingual|fluido|avanzado`,
			LevelSynonyms: map[string]string{
				"basico": "a2", "intermedio": "b1", "avanzado": "c1",
				"fluido": "c1", "bilingue": "c1", "bilingual": "c1",
			},
		},
		{
			ID:         "lang_portuguese",
			Label:      "Portugués requerido",
			Type:       TypeLanguage,
			Lang:       "pt",
			TriggerAny: []string{"portugués", "portugues", "portuguese", "fluente", "avançado"},
			LevelRegex: `\b([abc][12])\b|fluente|avancado|avanzado|intermedio|basico|bilingue|bilingual`,
			LevelSynonyms: map[string]string{
				"basico": "a2", "intermedio": "b1", "intermediario": "b1",
				"avanzado": "c1", "avancado": "c1", "fluente": "c1",
				"fluido": "c1", "bilingue": "c1", "bilingual": "c1",
			},
		},
		{
			ID:         "lang_german",
			Label:      "Alemán requerido",
			Type:       TypeLanguage,
			Lang:       "de",
			TriggerAny: []string{"alemán", "aleman", "deutsch", "german"},
			LevelRegex: `\b([abc][12])\b|fliessend|fortgeschritten|mittelstufe|grundkenntnisse`,
			LevelSynonyms: map[string]string{
				"grundkenntnisse": "a2", "mittelstufe": "b1",
				"fliessend": "c1", "fortgeschritten": "c1",
			},
		},

		// ===== profesiones =====
		{
			ID:    "prof_enfermeria",
			Label: "Título/Licencia en Enfermería requerido",
			Type:  TypeProfession,
			TriggerAny: []string{
				"enfermera jefe", "enfermera líder", "enfermera coordinadora",
				"enfermera", "enfermero", "enfermería", "profesional de enfermería",
			},
			CVAny: []string{
				"enfermera", "enfermero", "enfermería", "colegio de enfermería",
				"licenciatura en enfermería", "rn ",
			},
		},
		{
			ID:    "prof_medico_general",
			Label: "Título/Licencia en Medicina (Médico General) requerido",
			Type:  TypeProfession,
			TriggerAny: []string{
				"médico general", "médico", "medico", "consulta externa",
			},
			RequireAny: []string{
				"médico general", "medico general", "consulta externa", "ips",
				"hospital", "clínica", "clinica",
			},
			CVAny: []string{
				"médico", "medicina", "md", "tarjeta profesional",
				"registro médico",
			},
		},
		{
			ID:    "prof_optometria",
			Label: "Título/Licencia en Optometría (Optómetra) requerido",
			Type:  TypeProfession,
			TriggerAny: []string{
				"optometría", "optómetra", "profesional en optometría",
			},
			CVAny: []string{
				"optometría", "optómetra", "licenciatura en optometría",
			},
		},

		// ===== sectores =====
		{
			ID:    "sector_manufactura",
			Label: "Experiencia en sector manufactura",
			Type:  TypeSector,
			TriggerAny: []string{
				"manufactura", "manufacturero", "manufacturing", "planta",
				"fábrica", "línea de producción",
			},
			// the trigger word alone must not fire the rule, the posting
			// has to name an actual site or line
			RequireAny: []string{"planta", "fábric", "línea de", "linea de"},
			CVAny:      []string{"manufactura", "manufacturero", "planta", "producción", "fábrica"},
		},
		{
			ID:    "sector_agro",
			Label: "Experiencia en sector agroindustrial",
			Type:  TypeSector,
			TriggerAny: []string{
				"agroindustrial", "agrícola", "cultivo", "maquinaria agrícola",
				"fertilización", "aceite de palma",
			},
			CVAny: []string{
				"agroindustrial", "agrícola", "cultivo", "maquinaria agrícola",
				"fertilización", "aceite de palma",
			},
		},
		{
			ID:    "sector_salud",
			Label: "Experiencia en sector salud",
			Type:  TypeSector,
			TriggerAny: []string{
				"sector salud", "hospital", "clínica", "ips", "salud pública",
				"salud digital", "rias",
			},
			CVAny: []string{"hospital", "clínica", "ips", "salud pública", "salud"},
		},
		{
			ID:         "sector_financiero",
			Label:      "Experiencia en sector financiero",
			Type:       TypeSector,
			TriggerAny: []string{"sector financiero", "banca", "bancario", "entidad financiera", "servicios financieros"},
			CVAny:      []string{"banca", "bancario", "entidad financiera", "sector financiero"},
		},
		{
			ID:         "sector_tecnologia",
			Label:      "Experiencia en sector tecnología",
			Type:       TypeSector,
			TriggerAny: []string{"sector tecnología", "software house", "empresa de software", "it services"},
			CVAny:      []string{"software", "tecnología", "it services"},
		},
		{
			ID:    "sector_retail",
			Label: "Experiencia en sector retail / consumo masivo",
			Type:  TypeSector,
			TriggerAny: []string{
				"sector retail", "retail", "consumo masivo", "gran consumo",
				"fmcg", "canal moderno", "canal tradicional",
			},
			CVAny: []string{"retail", "consumo masivo", "gran consumo", "fmcg", "canal moderno", "canal tradicional"},
		},
		{
			ID:         "sector_comercial_b2b",
			Label:      "Experiencia en ventas B2B",
			Type:       TypeSector,
			TriggerAny: []string{"ventas b2b", "comercial b2b", "negocios empresa a empresa"},
			CVAny:      []string{"b2b", "ventas b2b", "comercial b2b"},
		},
		{
			ID:         "sector_comercial_b2c",
			Label:      "Experiencia en ventas B2C",
			Type:       TypeSector,
			TriggerAny: []string{"ventas b2c", "comercial b2c", "retail b2c"},
			CVAny:      []string{"b2c", "ventas b2c", "comercial b2c"},
		},
		{
			ID:    "sector_produccion_planta",
			Label: "Experiencia en operaciones de planta de producción",
			Type:  TypeSector,
			TriggerAny: []string{
				"producción", "turnos", "línea de producción", "operaciones de planta",
			},
			RequireAny: []string{"planta", "turnos", "línea de", "linea de"},
			CVAny:      []string{"planta", "producción", "turnos", "línea de producción"},
		},
		{
			ID:    "sector_logistica",
			Label: "Experiencia en logística y cadena de suministro",
			Type:  TypeSector,
			TriggerAny: []string{
				"logística", "supply chain", "cadena de suministro",
				"almacenamiento", "distribución", "inventarios",
				"centro de distribución", "última milla",
			},
			CVAny: []string{
				"logística", "supply chain", "cadena de suministro",
				"almacenamiento", "distribución", "inventarios",
			},
		},
		{
			ID:    "sector_innovacion_id",
			Label: "Experiencia en innovación / I+D",
			Type:  TypeSector,
			TriggerAny: []string{
				"i+d", "i + d", "investigación y desarrollo", "innovación",
				"laboratorio de innovación", "open innovation",
			},
			CVAny: []string{"i+d", "investigación y desarrollo", "innovación", "open innovation"},
		},
		{
			ID:    "sector_educacion",
			Label: "Experiencia en sector educación / edtech",
			Type:  TypeSector,
			TriggerAny: []string{
				"sector educativo", "institución educativa", "universidad",
				"colegio", "edtech", "plataforma educativa",
			},
			CVAny: []string{"universidad", "colegio", "sector educativo", "edtech", "plataforma educativa"},
		},
		{
			ID:         "sector_publico",
			Label:      "Experiencia en sector público",
			Type:       TypeSector,
			TriggerAny: []string{"sector público", "entidad pública", "gubernamental"},
			CVAny:      []string{"sector público", "entidad pública"},
		},
		{
			ID:         "sector_ong",
			Label:      "Experiencia en organizaciones sin ánimo de lucro / ONG",
			Type:       TypeSector,
			TriggerAny: []string{"ong", "organización sin ánimo de lucro", "fundación", "nonprofit"},
			CVAny:      []string{"ong", "fundación", "nonprofit"},
		},
		{
			ID:    "sector_ssc",
			Label: "Experiencia en centros de servicios compartidos (SSC)",
			Type:  TypeSector,
			TriggerAny: []string{
				"centro de servicios compartidos", "centros de servicios compartidos",
				"servicios compartidos", "shared services", "ssc",
			},
			RequireAny: []string{"servicios compartidos", "shared services", "ssc"},
			CVAny: []string{
				"servicios compartidos", "shared services", "ssc",
				"centro de servicios compartidos",
			},
		},

		// ===== roles =====
		{
			ID:    "role_visitador_medico_derma",
			Label: "Experiencia como Visitador Médico (dermatología/estética) requerida",
			Type:  TypeRole,
			TriggerAny: []string{
				"visitador médico", "visita médica",
				"representante de ventas médicas", "asesor científico",
				"dermatólogo", "dermatología", "médicos estéticos",
				"cirujanos plásticos",
			},
			RequireAny: []string{"dermat", "estétic", "estetic", "plástic", "plastic"},
			CVAny: []string{
				"visitador médico", "visita médica", "dermatolog", "estética",
				"medicina estética", "cirugía plástica",
			},
		},

		// ===== títulos =====
		{
			ID:    "degree_mercadeo_o_afines",
			Label: "Título requerido: Profesional en Mercadeo/Administración/Economía/Ingeniería Industrial (o afines)",
			Type:  TypeDegree,
			TriggerAny: []string{
				"profesional en mercadeo", "profesional en marketing",
				"profesional en administración", "profesional en economía",
				"profesional en ingeniería industrial", "carreras afines en mercadeo",
				"carreras afines a mercadeo",
			},
			CVAny: []string{
				"mercadeo", "marketing", "administración", "economía",
				"ingeniería industrial",
			},
		},

		// ===== conocimientos / herramientas / procesos =====
		{
			ID:         "kn_gestion_clinica",
			Label:      "Conocimiento requerido: gestión clínica",
			Type:       TypeKnowledge,
			TriggerAny: []string{"gestión clínica"},
			CVAny:      []string{"gestión clínica"},
		},
		{
			ID:         "kn_auditoria_salud",
			Label:      "Conocimiento requerido: auditoría en salud",
			Type:       TypeKnowledge,
			TriggerAny: []string{"auditoría en salud", "auditoría clínica"},
			CVAny:      []string{"auditoría en salud", "auditoría clínica"},
		},
		{
			ID:         "kn_normativa_salud",
			Label:      "Conocimiento requerido: normativa en salud",
			Type:       TypeKnowledge,
			TriggerAny: []string{"normativa en salud", "normatividad en salud", "regulación sanitaria"},
			CVAny:      []string{"normativa en salud", "normatividad en salud", "regulación sanitaria"},
		},
		{
			ID:         "kn_res_3280",
			Label:      "Conocimiento requerido: Resolución 3280",
			Type:       TypeKnowledge,
			TriggerAny: []string{"resolución 3280"},
			CVAny:      []string{"resolución 3280"},
		},
		{
			ID:         "kn_rias",
			Label:      "Conocimiento requerido: RIAS (Rutas Integrales de Atención en Salud)",
			Type:       TypeKnowledge,
			TriggerAny: []string{"rias", "rutas integrales de atención en salud"},
			CVAny:      []string{"rias", "ruta integral de atención"},
		},
		{
			ID:         "kn_pyp_pym",
			Label:      "Conocimiento requerido: programas PyP / PyM",
			Type:       TypeKnowledge,
			TriggerAny: []string{"programas de pyp", "pyp", "pym"},
			CVAny:      []string{"pyp", "pym"},
		},
		{
			ID:         "pos_auditoria_salud_enf",
			Label:      "Conocimiento requerido: Auditoría en Salud / Salud Pública / Epidemiología",
			Type:       TypeKnowledge,
			TriggerAny: []string{"posgrado en auditoría en salud", "salud pública", "epidemiología"},
			CVAny:      []string{"auditoría en salud", "salud pública", "epidemiología"},
		},
		{
			ID:         "fin_finanzas_corporativas",
			Label:      "Conocimiento requerido: finanzas corporativas",
			Type:       TypeKnowledge,
			TriggerAny: []string{"finanzas corporativas"},
			CVAny:      []string{"finanzas corporativas", "corporate finance", "modelación financiera"},
		},
		{
			ID:    "fin_niif_ifrs",
			Label: "Conocimiento requerido: NIIF / IFRS",
			Type:  TypeKnowledge,
			TriggerAny: []string{
				"niif", "ifrs", "estados financieros", "consolidación",
				"modelación financiera", "presupuestos", "tesorería", "flujo de caja",
			},
			CVAny: []string{
				"niif", "ifrs", "estados financieros", "consolidación",
				"modelación financiera", "presupuestos", "tesorería", "flujo de caja",
			},
		},
		{
			ID:         "tool_excel_avanzado",
			Label:      "Conocimiento requerido: excel avanzado",
			Type:       TypeTool,
			TriggerAny: []string{"excel avanzado", "nivel avanzado en excel", "excel nivel avanzado"},
			CVAny:      []string{"excel"},
		},
		{
			ID:         "tool_sap",
			Label:      "Conocimiento requerido: sap",
			Type:       TypeTool,
			TriggerAny: []string{"sap"},
			CVAny:      []string{"sap"},
		},
		{
			ID:         "proc_tesoreria",
			Label:      "Conocimiento requerido: tesorería",
			Type:       TypeProcess,
			TriggerAny: []string{"tesorería"},
			CVAny:      []string{"tesorería"},
		},
		{
			ID:         "proc_flujo_caja",
			Label:      "Conocimiento requerido: flujo de caja",
			Type:       TypeProcess,
			TriggerAny: []string{"flujo de caja"},
			CVAny:      []string{"flujo de caja"},
		},
		{
			ID:         "proc_liquidez",
			Label:      "Conocimiento requerido: liquidez",
			Type:       TypeProcess,
			TriggerAny: []string{"liquidez"},
			CVAny:      []string{"liquidez"},
		},
		{
			ID:         "proc_control_interno",
			Label:      "Conocimiento requerido: control interno",
			Type:       TypeProcess,
			TriggerAny: []string{"control interno", "controles internos"},
			CVAny:      []string{"control interno", "controles internos"},
		},
		{
			ID:         "it_agile",
			Label:      "Conocimiento requerido: metodologías ágiles",
			Type:       TypeKnowledge,
			TriggerAny: []string{"metodologías ágiles", "agile", "scrum", "kanban"},
			CVAny:      []string{"metodologías ágiles", "agile", "scrum", "kanban"},
		},
		{
			ID:         "it_project_mgmt",
			Label:      "Conocimiento requerido: gestión de proyectos",
			Type:       TypeKnowledge,
			TriggerAny: []string{"gestión de proyectos", "project management"},
			CVAny:      []string{"gestión de proyectos", "project management"},
		},
		{
			ID:         "it_okr",
			Label:      "Conocimiento requerido: OKR",
			Type:       TypeKnowledge,
			TriggerAny: []string{"okr", "okrs"},
			CVAny:      []string{"okr", "okrs"},
		},
		{
			ID:         "it_estrategia_tec",
			Label:      "Conocimiento requerido: estrategia tecnológica",
			Type:       TypeKnowledge,
			TriggerAny: []string{"estrategia tecnológica", "technology strategy"},
			CVAny:      []string{"estrategia tecnológica", "technology strategy"},
		},
		{
			ID:    "derma_despigmentantes_inyectables",
			Label: "Conocimiento requerido: tratamientos despigmentantes e inyectables",
			Type:  TypeKnowledge,
			TriggerAny: []string{
				"despigmentantes", "inyectables", "toxina botulínica", "botox",
				"ácido hialurónico", "mesoterapia", "bioestimuladores", "peeling",
			},
			CVAny: []string{
				"despigmentantes", "inyectables", "toxina botulínica", "botox",
				"ácido hialurónico", "mesoterapia", "bioestimuladores", "peeling",
			},
		},
		{
			ID:    "sales_venta_consultiva",
			Label: "Conocimiento requerido: técnicas de venta consultiva",
			Type:  TypeKnowledge,
			TriggerAny: []string{
				"venta consultiva", "técnicas de venta consultiva",
				"consultative selling", "solution selling", "spin selling",
			},
			CVAny: []string{"venta consultiva", "consultative selling", "solution selling", "spin selling"},
		},
		{
			ID:    "sales_scoring_plataformas",
			Label: "Conocimiento requerido: scoring y plataformas comerciales/crediticias",
			Type:  TypeKnowledge,
			TriggerAny: []string{
				"scoring", "score crediticio", "score de riesgo",
				"plataformas de originación", "originación digital",
				"motor de decisiones", "decision engine",
			},
			CVAny: []string{
				"scoring", "score crediticio", "score de riesgo", "originación",
				"motor de decisiones", "decision engine",
			},
		},
		{
			ID:    "sales_portafolio_pyme",
			Label: "Conocimiento requerido: portafolio PyME/Empresarial",
			Type:  TypeKnowledge,
			TriggerAny: []string{
				"pyme", "pymes", "portafolio pyme", "segmento pyme",
				"banca empresarial", "segmento empresarial", "smb", "sme",
			},
			CVAny: []string{"pyme", "pymes", "empresarial", "banca empresarial", "smb", "sme"},
		},
		{
			ID:         "sales_banca_personal",
			Label:      "Conocimiento requerido: portafolio banca personal/particular",
			Type:       TypeKnowledge,
			TriggerAny: []string{"banca personal", "banca de personas", "retail banking"},
			CVAny:      []string{"banca personal", "retail banking", "particular", "consumo"},
		},
		{
			ID:         "sales_crm_pipeline_forecast",
			Label:      "Conocimiento requerido: CRM / Pipeline / Forecast",
			Type:       TypeTool,
			TriggerAny: []string{"crm", "pipeline", "forecast", "embudo de ventas", "salesforce", "hubspot"},
			CVAny:      []string{"crm", "pipeline", "forecast", "embudo de ventas", "salesforce", "hubspot"},
		},
		{
			ID:    "ssc_procesos_tipicos",
			Label: "Conocimiento requerido: procesos típicos de SSC",
			Type:  TypeKnowledge,
			TriggerAny: []string{
				"procure to pay", "p2p", "order to cash", "o2c",
				"record to report", "r2r", "cierre contable",
				"cuentas por cobrar", "cuentas por pagar",
			},
			CVAny: []string{
				"procure to pay", "p2p", "order to cash", "o2c",
				"record to report", "r2r", "cierre contable", "shared services",
				"ssc", "cuentas por cobrar", "cuentas por pagar",
			},
		},
	}
}
