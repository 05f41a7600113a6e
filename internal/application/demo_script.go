package application

import (
	"github.com/Maryncell/iabot-landing-page/internal/domain"
)

// El guion completo de la demo vive en este archivo como tablas
// declarativas. El resolver y el generador de sugerencias leen las
// mismas tablas, así cada chip corresponde siempre a una entrada que el
// resolver reconoce.

// simRule es una regla dentro de un paso de simulación: frases
// disparadoras (ya normalizadas), la respuesta enlatada y el paso
// siguiente. Next vacío significa quedarse en el mismo paso para seguir
// explorando. Triggers[0] es el valor del chip sugerido.
type simRule struct {
	Triggers []string
	Label    string
	Reply    string
	Next     domain.StepID
}

// scenarioScript es una micro-conversación dentro de un rubro.
type scenarioScript struct {
	Slug    string
	Keyword string
	Label   string
	Intro   string
	Rules   []simRule
}

// verticalScript agrupa los escenarios de un rubro de negocio.
type verticalScript struct {
	Vertical  domain.Vertical
	Triggers  []string
	Label     string
	Framing   string
	Scenarios []scenarioScript
}

// Comandos globales, disponibles en cualquier paso.
var (
	resetTriggers  = []string{"reiniciar simulacion", "reiniciar demo", "reset"}
	menuTriggers   = []string{"menu principal"}
	finishTriggers = []string{"finalizar demo y contactar"}
	startTriggers  = []string{"iniciar demo", "probar la demo", "comenzar demo"}
)

// Chips de los comandos globales.
var (
	chipMenu   = domain.SuggestionChip{Label: "🏠 Menú principal", Value: "menu principal"}
	chipReset  = domain.SuggestionChip{Label: "🔄 Reiniciar simulación", Value: "reiniciar simulacion"}
	chipFinish = domain.SuggestionChip{Label: "✅ Finalizar demo y contactar", Value: "finalizar demo y contactar"}
	chipStart  = domain.SuggestionChip{Label: "🤖 Iniciar demo", Value: "iniciar demo"}
)

// Textos globales del guion.
const (
	replyWelcome = "¡Hola! 👋 Soy el bot demo de IABOT Soluciones.\n\n" +
		"Te voy a mostrar cómo un chatbot puede atender a tus clientes las 24 horas.\n\n" +
		"Para empezar, contame: ¿a qué rubro se dedica tu negocio?"

	replyAskBusinessType = "¿A qué rubro se dedica tu negocio? Elegí una opción o escribila:"

	replyReset = "🔄 ¡Listo! Reinicié la simulación.\n\n" +
		"Cuando quieras volver a probar el bot, tocá \"Iniciar demo\"."

	replyFinalCallToAction = "¡Genial! 🎉 Para coordinar una demo completa con tu propio contenido, " +
		"dejame tu nombre y tu email (por ejemplo: \"Soy Ana, ana@minegocio.com\")."

	replyFinalRePrompt = "¡Perfecto! Solo necesito tu nombre y tu email para coordinarla. " +
		"Escribilos en un solo mensaje, por ejemplo: \"Soy Ana, ana@minegocio.com\"."

	replyFinalFormatError = "Mmm, no pude encontrar un email válido en tu mensaje. 🙈\n\n" +
		"Probá de nuevo con el formato \"Tu nombre, tu@email.com\"."

	replyDemoEnd = "¡Eso es todo por ahora! 🙌 Ya registré tus datos y el equipo te va a escribir muy pronto.\n\n" +
		"Si querés volver a recorrer la demo, escribí \"reiniciar simulacion\"."

	replyUnknownStep = "Ups, algo salió mal con la simulación. 😅 La reinicié por las dudas; " +
		"tocá \"Iniciar demo\" para arrancar de nuevo."

	replyVerticalNotUnderstood = "No llegué a identificar el rubro. 🤔 " +
		"Elegí una de las opciones de abajo o escribí, por ejemplo, \"servicios\" o \"ventas\"."

	replyScenarioNotUnderstood = "Esa opción no la tengo en esta demo. 😅 " +
		"Elegí alguno de los temas sugeridos para ver al bot en acción."

	replySimulationNotUnderstood = "En esta parte de la demo no tengo una respuesta para eso. 🙈 " +
		"Probá con alguna de las opciones sugeridas, o escribí \"menu principal\" para cambiar de tema."
)

// Respuestas de cortesía cuando la demo está apagada. No cambian el estado.
var inactiveSmallTalk = []simRule{
	{
		Triggers: []string{"hola", "buenas", "buen dia", "buenos dias", "buenas tardes"},
		Reply: "¡Hola! 👋 Soy el asistente de IABOT Soluciones. " +
			"Activá la demo para ver cómo funcionaría un bot en tu negocio.",
	},
	{
		Triggers: []string{"precio", "precios", "plan", "planes", "costo", "cuanto cuesta"},
		Reply: "💰 Tenemos planes desde $49/mes. Podés ver el detalle en la sección Planes, " +
			"o activar la demo para ver el bot en acción.",
	},
	{
		Triggers: []string{"gracias", "genial", "perfecto"},
		Reply:    "¡De nada! 😊 Cualquier consulta, por acá estoy.",
	},
	{
		Triggers: []string{"contacto", "contactar", "hablar con alguien", "asesor"},
		Reply: "📩 Podés dejarnos tus datos en el formulario de contacto y te escribimos a la brevedad. " +
			"O probá la demo para ver primero cómo trabaja el bot.",
	},
}

const replyInactiveFallback = "Para ver al bot en acción, activá la demo con el botón \"Iniciar demo\". 🤖"

// script es la tabla completa: un verticalScript por rubro, en el orden
// en que se muestran los chips.
var script = []verticalScript{
	{
		Vertical: domain.VerticalServicios,
		Triggers: []string{"servicios"},
		Label:    "🛠️ Servicios / Turnos",
		Framing: "¡Buenísimo! 🛠️ Para un negocio de servicios, el bot puede encargarse de los turnos, " +
			"las consultas repetidas y los precios.\n\n¿Qué te gustaría ver primero?",
		Scenarios: []scenarioScript{
			{
				Slug:    "agendamiento",
				Keyword: "agendamiento de turnos",
				Label:   "📅 Agendamiento de turnos",
				Intro: "📅 Supongamos que un cliente te escribe un domingo a la noche: " +
					"el bot le ofrece los horarios libres de tu agenda y confirma el turno solo.\n\n" +
					"Preguntame, por ejemplo, cómo se agenda un turno.",
				Rules: []simRule{
					{
						Triggers: []string{"como se agenda un turno", "agendar un turno", "como agenda"},
						Label:    "¿Cómo se agenda un turno?",
						Reply: "El cliente elige día y horario entre los que el bot le muestra, " +
							"deja su nombre y listo: el turno queda en tu calendario y ambos reciben la confirmación. ✅",
					},
					{
						Triggers: []string{"envia recordatorios", "recordatorios"},
						Label:    "¿Envía recordatorios?",
						Reply: "Sí 🔔 El bot manda un recordatorio automático antes del turno, " +
							"con opción de confirmar o reprogramar. Eso baja muchísimo el ausentismo.",
					},
					{
						Triggers: []string{"quiero esto para mi negocio", "me interesa"},
						Label:    "¡Quiero esto para mi negocio!",
						Reply:    "¡Excelente decisión! 🚀",
						Next:     domain.StepFinalCallToAction,
					},
				},
			},
			{
				Slug:    "faq",
				Keyword: "preguntas frecuentes",
				Label:   "❓ Preguntas frecuentes",
				Intro: "❓ El bot responde al instante las preguntas que hoy contestás mil veces por día: " +
					"horarios, ubicación, formas de pago...\n\nProbá preguntarme por los horarios.",
				Rules: []simRule{
					{
						Triggers: []string{"cuales son los horarios", "horarios"},
						Label:    "¿Cuáles son los horarios?",
						Reply: "🕒 \"Atendemos de lunes a viernes de 9 a 18 hs y sábados de 9 a 13 hs.\"\n\n" +
							"Así respondería tu bot, al segundo y sin que toques el teléfono.",
					},
					{
						Triggers: []string{"como cargo mis preguntas", "cargar preguntas"},
						Label:    "¿Cómo cargo mis preguntas?",
						Reply: "Nos pasás las preguntas y respuestas de tu negocio y las dejamos cargadas por vos. " +
							"Después las podés editar cuando quieras desde el panel. ✏️",
					},
					{
						Triggers: []string{"quiero esto para mi negocio", "me interesa"},
						Label:    "¡Quiero esto para mi negocio!",
						Reply:    "¡Excelente decisión! 🚀",
						Next:     domain.StepFinalCallToAction,
					},
				},
			},
			{
				Slug:    "precios",
				Keyword: "precios",
				Label:   "💰 Precios",
				Intro: "💰 El bot también puede informar tus precios y armar presupuestos simples.\n\n" +
					"Preguntame qué incluye el servicio.",
				Rules: []simRule{
					{
						Triggers: []string{"que incluye", "que incluye el servicio"},
						Label:    "¿Qué incluye el servicio?",
						Reply: "Incluye la configuración inicial, las respuestas personalizadas con tus precios " +
							"y los ajustes que necesites el primer mes. Todo llave en mano. 🔑",
					},
					{
						Triggers: []string{"quiero contratarlo", "contratar"},
						Label:    "Quiero contratarlo",
						Reply:    "¡Genial! 🙌",
						Next:     domain.StepFinalCallToAction,
					},
				},
			},
			{
				Slug:    "otra",
				Keyword: "otra consulta",
				Label:   "💬 Otra consulta",
				Intro: "💬 Contame qué otra tarea repetitiva te gustaría delegar y te muestro cómo " +
					"encararla con el bot. También podés volver al menú principal.",
				Rules: []simRule{
					{
						Triggers: []string{"hablar con una persona", "persona real"},
						Label:    "¿Y si piden hablar con una persona?",
						Reply: "El bot detecta cuándo la consulta lo supera y deriva la conversación a tu equipo, " +
							"con todo el contexto ya recolectado. 🙋 Nadie queda sin respuesta.",
					},
					{
						Triggers: []string{"quiero esto para mi negocio", "me interesa"},
						Label:    "¡Quiero esto para mi negocio!",
						Reply:    "¡Excelente decisión! 🚀",
						Next:     domain.StepFinalCallToAction,
					},
				},
			},
		},
	},
	{
		Vertical: domain.VerticalVentas,
		Triggers: []string{"ventas", "ecommerce"},
		Label:    "🛒 Ventas / Ecommerce",
		Framing: "¡Perfecto! 🛒 En un ecommerce el bot trabaja de vendedor: recupera carritos, " +
			"informa pedidos y recomienda productos.\n\n¿Qué querés ver?",
		Scenarios: []scenarioScript{
			{
				Slug:    "carritos",
				Keyword: "recuperar carritos",
				Label:   "🛍️ Recuperar carritos",
				Intro: "🛍️ Un cliente dejó el carrito por la mitad. El bot le escribe, le recuerda lo que " +
					"eligió y le ofrece ayuda para terminar la compra.\n\nPreguntame cómo lo hace.",
				Rules: []simRule{
					{
						Triggers: []string{"como recupera un carrito", "como lo hace"},
						Label:    "¿Cómo recupera un carrito?",
						Reply: "Detecta el carrito abandonado, espera un rato prudente y manda un mensaje con " +
							"los productos elegidos y un link directo al pago. 💳 Muchos vuelven y terminan la compra.",
					},
					{
						Triggers: []string{"puede ofrecer descuentos", "descuento"},
						Label:    "¿Puede ofrecer descuentos?",
						Reply: "Sí 🎁 Podés configurar un cupón automático para los carritos que superen " +
							"cierto monto o lleven más de un día abandonados.",
					},
					{
						Triggers: []string{"quiero esto para mi negocio", "me interesa"},
						Label:    "¡Quiero esto para mi negocio!",
						Reply:    "¡Excelente decisión! 🚀",
						Next:     domain.StepFinalCallToAction,
					},
				},
			},
			{
				Slug:    "pedidos",
				Keyword: "seguimiento de pedidos",
				Label:   "📦 Seguimiento de pedidos",
				Intro: "📦 \"¿Dónde está mi pedido?\" es la pregunta número uno de todo ecommerce. " +
					"El bot la contesta solo, con el estado real del envío.\n\nProbá preguntarme por un pedido.",
				Rules: []simRule{
					{
						Triggers: []string{"donde esta mi pedido", "estado de mi pedido"},
						Label:    "¿Dónde está mi pedido?",
						Reply: "🚚 \"Tu pedido #1042 salió del depósito hoy a las 10:30 y llega mañana antes " +
							"de las 18 hs.\"\n\nEl bot lo responde consultando el estado real, sin que intervenga nadie.",
					},
					{
						Triggers: []string{"quiero esto para mi negocio", "me interesa"},
						Label:    "¡Quiero esto para mi negocio!",
						Reply:    "¡Excelente decisión! 🚀",
						Next:     domain.StepFinalCallToAction,
					},
				},
			},
			{
				Slug:    "recomendaciones",
				Keyword: "recomendaciones de productos",
				Label:   "✨ Recomendaciones de productos",
				Intro: "✨ El bot puede sugerir productos según lo que el cliente busca, como un vendedor " +
					"que conoce todo el catálogo.\n\nPedime una recomendación.",
				Rules: []simRule{
					{
						Triggers: []string{"recomendame algo", "que me recomendas"},
						Label:    "Recomendame algo",
						Reply: "🎯 \"Si te gustó la zapatilla urbana, esta semana la tenés en negro con 15% off, " +
							"y combina con estas dos camperas.\"\n\nAsí vende tu bot: con el catálogo al día.",
					},
					{
						Triggers: []string{"quiero esto para mi negocio", "me interesa"},
						Label:    "¡Quiero esto para mi negocio!",
						Reply:    "¡Excelente decisión! 🚀",
						Next:     domain.StepFinalCallToAction,
					},
				},
			},
			{
				Slug:    "otra",
				Keyword: "otra consulta",
				Label:   "💬 Otra consulta",
				Intro: "💬 Contame qué parte de la venta te gustaría automatizar y te muestro un ejemplo. " +
					"También podés volver al menú principal.",
				Rules: []simRule{
					{
						Triggers: []string{"se integra con mi tienda", "integracion"},
						Label:    "¿Se integra con mi tienda?",
						Reply: "Sí 🔌 Trabajamos con las plataformas más usadas (Tienda Nube, Shopify, " +
							"WooCommerce) y también por API si tu tienda es a medida.",
					},
					{
						Triggers: []string{"quiero esto para mi negocio", "me interesa"},
						Label:    "¡Quiero esto para mi negocio!",
						Reply:    "¡Excelente decisión! 🚀",
						Next:     domain.StepFinalCallToAction,
					},
				},
			},
		},
	},
	{
		Vertical: domain.VerticalEducacion,
		Triggers: []string{"educacion", "academia", "instituto"},
		Label:    "🎓 Educación",
		Framing: "¡Qué bueno! 🎓 Para academias e institutos, el bot informa cursos, toma inscripciones " +
			"y responde sobre aranceles.\n\n¿Por dónde empezamos?",
		Scenarios: []scenarioScript{
			{
				Slug:    "cursos",
				Keyword: "informacion de cursos",
				Label:   "📚 Información de cursos",
				Intro: "📚 Un interesado pregunta a cualquier hora qué cursos hay, cuándo empiezan y qué " +
					"incluyen. El bot tiene toda la oferta cargada.\n\nPreguntame por los cursos.",
				Rules: []simRule{
					{
						Triggers: []string{"que cursos hay", "cursos disponibles"},
						Label:    "¿Qué cursos hay?",
						Reply: "🗓️ \"Este mes abren inscripciones: Marketing Digital (martes 19 hs), " +
							"Excel Avanzado (sábados 10 hs) e Inglés Conversacional (online).\"\n\n" +
							"El bot lista tu oferta real, siempre actualizada.",
					},
					{
						Triggers: []string{"cuando empiezan", "fechas de inicio"},
						Label:    "¿Cuándo empiezan?",
						Reply: "El bot responde con las fechas de inicio de cada comisión y, si el curso ya " +
							"arrancó, ofrece anotar al interesado para la próxima. 📆",
					},
					{
						Triggers: []string{"quiero esto para mi negocio", "me interesa"},
						Label:    "¡Quiero esto para mi instituto!",
						Reply:    "¡Excelente decisión! 🚀",
						Next:     domain.StepFinalCallToAction,
					},
				},
			},
			{
				Slug:    "inscripciones",
				Keyword: "inscripciones",
				Label:   "📝 Inscripciones",
				Intro: "📝 El bot toma la inscripción completa: curso, comisión y datos del alumno, " +
					"todo en la misma conversación.\n\nPreguntame cómo es el proceso.",
				Rules: []simRule{
					{
						Triggers: []string{"como me inscribo", "proceso de inscripcion"},
						Label:    "¿Cómo me inscribo?",
						Reply: "El interesado elige curso y comisión, deja sus datos y el bot le confirma la " +
							"vacante al instante. Vos recibís la inscripción ya ordenada en tu planilla. ✅",
					},
					{
						Triggers: []string{"quiero esto para mi negocio", "me interesa"},
						Label:    "¡Quiero esto para mi instituto!",
						Reply:    "¡Excelente decisión! 🚀",
						Next:     domain.StepFinalCallToAction,
					},
				},
			},
			{
				Slug:    "aranceles",
				Keyword: "aranceles",
				Label:   "💰 Aranceles",
				Intro: "💰 Cuotas, matrículas, descuentos por pago anual... el bot responde todo sin que " +
					"se acumulen mensajes.\n\nPreguntame por los aranceles.",
				Rules: []simRule{
					{
						Triggers: []string{"cuanto sale la cuota", "aranceles", "cuanto cuesta"},
						Label:    "¿Cuánto sale la cuota?",
						Reply: "💵 \"La cuota de Marketing Digital es de $25.000, con 20% de descuento " +
							"abonando el cuatrimestre completo.\"\n\nEl bot informa tus valores vigentes.",
					},
					{
						Triggers: []string{"quiero esto para mi negocio", "me interesa"},
						Label:    "¡Quiero esto para mi instituto!",
						Reply:    "¡Excelente decisión! 🚀",
						Next:     domain.StepFinalCallToAction,
					},
				},
			},
			{
				Slug:    "otra",
				Keyword: "otra consulta",
				Label:   "💬 Otra consulta",
				Intro: "💬 Contame qué consulta recibís más seguido y te muestro cómo la resolvería el bot. " +
					"También podés volver al menú principal.",
				Rules: []simRule{
					{
						Triggers: []string{"certificados", "dan certificado"},
						Label:    "¿Dan certificado?",
						Reply: "El bot puede responder por cada curso si entrega certificado, qué validez " +
							"tiene y cómo descargarlo una vez finalizado. 🎖️",
					},
					{
						Triggers: []string{"quiero esto para mi negocio", "me interesa"},
						Label:    "¡Quiero esto para mi instituto!",
						Reply:    "¡Excelente decisión! 🚀",
						Next:     domain.StepFinalCallToAction,
					},
				},
			},
		},
	},
	{
		Vertical: domain.VerticalSalud,
		Triggers: []string{"salud", "consultorio", "clinica"},
		Label:    "🩺 Salud",
		Framing: "¡Perfecto! 🩺 Para consultorios y clínicas el bot agenda citas, recuerda controles " +
			"y filtra urgencias.\n\n¿Qué te muestro?",
		Scenarios: []scenarioScript{
			{
				Slug:    "citas",
				Keyword: "agendamiento de citas",
				Label:   "📅 Agendamiento de citas",
				Intro: "📅 El paciente pide turno por WhatsApp a cualquier hora y el bot le ofrece los " +
					"huecos reales de la agenda.\n\nPreguntame cómo se pide una cita.",
				Rules: []simRule{
					{
						Triggers: []string{"como pido una cita", "pedir un turno"},
						Label:    "¿Cómo pido una cita?",
						Reply: "El bot pregunta especialidad y obra social, muestra los horarios libres y " +
							"confirma la cita con un recordatorio automático 24 hs antes. 🗓️",
					},
					{
						Triggers: []string{"que pasa con las urgencias", "urgencias"},
						Label:    "¿Y las urgencias?",
						Reply: "Si detecta palabras de urgencia, el bot corta el flujo y deriva de inmediato " +
							"al teléfono de guardia. 🚨 Eso se configura con tu protocolo.",
					},
					{
						Triggers: []string{"quiero esto para mi negocio", "me interesa"},
						Label:    "¡Quiero esto para mi consultorio!",
						Reply:    "¡Excelente decisión! 🚀",
						Next:     domain.StepFinalCallToAction,
					},
				},
			},
			{
				Slug:    "recordatorios",
				Keyword: "recordatorios de pacientes",
				Label:   "🔔 Recordatorios de pacientes",
				Intro: "🔔 Turnos olvidados son horas perdidas. El bot recuerda cada cita y permite " +
					"confirmar o reprogramar con un toque.\n\nPreguntame cómo funcionan.",
				Rules: []simRule{
					{
						Triggers: []string{"como funcionan los recordatorios", "recordatorios"},
						Label:    "¿Cómo funcionan los recordatorios?",
						Reply: "El día anterior, el paciente recibe: \"Mañana 15:30 hs con la Dra. Paz. " +
							"¿Confirmás?\" Si reprograma, el hueco se libera y se ofrece a la lista de espera. ♻️",
					},
					{
						Triggers: []string{"quiero esto para mi negocio", "me interesa"},
						Label:    "¡Quiero esto para mi consultorio!",
						Reply:    "¡Excelente decisión! 🚀",
						Next:     domain.StepFinalCallToAction,
					},
				},
			},
			{
				Slug:    "faq",
				Keyword: "preguntas frecuentes",
				Label:   "❓ Preguntas frecuentes",
				Intro: "❓ Obras sociales, preparaciones para estudios, direcciones... el bot contesta " +
					"todo eso solo.\n\nPreguntame qué obras sociales atendemos.",
				Rules: []simRule{
					{
						Triggers: []string{"que obras sociales atienden", "obras sociales"},
						Label:    "¿Qué obras sociales atienden?",
						Reply: "🏥 \"Atendemos OSDE, Swiss Medical y Galeno. Para otras coberturas, la " +
							"consulta particular es de $20.000.\"\n\nEl bot responde con tu lista real.",
					},
					{
						Triggers: []string{"quiero esto para mi negocio", "me interesa"},
						Label:    "¡Quiero esto para mi consultorio!",
						Reply:    "¡Excelente decisión! 🚀",
						Next:     domain.StepFinalCallToAction,
					},
				},
			},
			{
				Slug:    "otra",
				Keyword: "otra consulta",
				Label:   "💬 Otra consulta",
				Intro: "💬 Contame qué tarea del consultorio te gustaría delegar y vemos un ejemplo. " +
					"También podés volver al menú principal.",
				Rules: []simRule{
					{
						Triggers: []string{"es seguro para los datos", "privacidad"},
						Label:    "¿Es seguro para los datos?",
						Reply: "Sí 🔒 Los datos de pacientes viajan cifrados y no se comparten con terceros. " +
							"Podemos firmar el acuerdo de confidencialidad que tu institución requiera.",
					},
					{
						Triggers: []string{"quiero esto para mi negocio", "me interesa"},
						Label:    "¡Quiero esto para mi consultorio!",
						Reply:    "¡Excelente decisión! 🚀",
						Next:     domain.StepFinalCallToAction,
					},
				},
			},
		},
	},
	{
		Vertical: domain.VerticalFreelance,
		Triggers: []string{"freelance", "freelancer", "independiente"},
		Label:    "💻 Freelance",
		Framing: "¡Genial! 💻 Si trabajás por tu cuenta, el bot filtra consultas, arma presupuestos " +
			"y muestra tu portfolio mientras vos producís.\n\n¿Qué querés ver?",
		Scenarios: []scenarioScript{
			{
				Slug:    "filtrado",
				Keyword: "filtrado de consultas",
				Label:   "🧹 Filtrado de consultas",
				Intro: "🧹 El bot hace las preguntas de calificación por vos: qué necesita el cliente, " +
					"para cuándo y con qué presupuesto.\n\nPreguntame cómo filtra.",
				Rules: []simRule{
					{
						Triggers: []string{"como filtra las consultas", "como filtra"},
						Label:    "¿Cómo filtra las consultas?",
						Reply: "Pregunta tipo de proyecto, plazo y presupuesto estimado. Solo te llegan las " +
							"consultas que valen tu tiempo, con toda la info ya recolectada. 🎯",
					},
					{
						Triggers: []string{"quiero esto para mi negocio", "me interesa"},
						Label:    "¡Quiero esto para mi trabajo!",
						Reply:    "¡Excelente decisión! 🚀",
						Next:     domain.StepFinalCallToAction,
					},
				},
			},
			{
				Slug:    "presupuestos",
				Keyword: "envio de presupuestos",
				Label:   "📄 Envío de presupuestos",
				Intro: "📄 Para servicios con precio tabulado, el bot arma y envía el presupuesto al " +
					"momento.\n\nPedime un presupuesto de ejemplo.",
				Rules: []simRule{
					{
						Triggers: []string{"pasame un presupuesto", "presupuesto de ejemplo"},
						Label:    "Pasame un presupuesto",
						Reply: "🧾 \"Logo + identidad básica: $80.000, entrega en 10 días hábiles. " +
							"¿Querés agendar una llamada para ajustar detalles?\"\n\nAsí cotiza tu bot, al instante.",
					},
					{
						Triggers: []string{"quiero esto para mi negocio", "me interesa"},
						Label:    "¡Quiero esto para mi trabajo!",
						Reply:    "¡Excelente decisión! 🚀",
						Next:     domain.StepFinalCallToAction,
					},
				},
			},
			{
				Slug:    "portfolio",
				Keyword: "mostrar portfolio",
				Label:   "🖼️ Mostrar portfolio",
				Intro: "🖼️ El bot puede mostrar tus mejores trabajos según lo que el cliente busca.\n\n" +
					"Pedime ver trabajos anteriores.",
				Rules: []simRule{
					{
						Triggers: []string{"mostrame trabajos anteriores", "ver portfolio"},
						Label:    "Mostrame trabajos anteriores",
						Reply: "El bot comparte los casos más parecidos al proyecto del cliente, con " +
							"resultados y testimonios. Tu portfolio trabajando solo, 24/7. ⭐",
					},
					{
						Triggers: []string{"quiero esto para mi negocio", "me interesa"},
						Label:    "¡Quiero esto para mi trabajo!",
						Reply:    "¡Excelente decisión! 🚀",
						Next:     domain.StepFinalCallToAction,
					},
				},
			},
			{
				Slug:    "otra",
				Keyword: "otra consulta",
				Label:   "💬 Otra consulta",
				Intro: "💬 Contame qué parte de tu día a día te gustaría automatizar. " +
					"También podés volver al menú principal.",
				Rules: []simRule{
					{
						Triggers: []string{"funciona en whatsapp", "whatsapp"},
						Label:    "¿Funciona en WhatsApp?",
						Reply: "Sí 📱 El mismo bot puede atender en tu web, en WhatsApp y en Instagram, " +
							"con la misma base de respuestas.",
					},
					{
						Triggers: []string{"quiero esto para mi negocio", "me interesa"},
						Label:    "¡Quiero esto para mi trabajo!",
						Reply:    "¡Excelente decisión! 🚀",
						Next:     domain.StepFinalCallToAction,
					},
				},
			},
		},
	},
	{
		Vertical: domain.VerticalOtro,
		Triggers: []string{"otro", "otro rubro"},
		Label:    "📦 Otro rubro",
		Framing: "¡No hay problema! 📦 Un bot se adapta a casi cualquier negocio. Lo más pedido es " +
			"capturar leads, dar soporte y responder preguntas frecuentes.\n\n¿Qué te muestro?",
		Scenarios: []scenarioScript{
			{
				Slug:    "leads",
				Keyword: "captura de leads",
				Label:   "🧲 Captura de leads",
				Intro: "🧲 Cada visita a tu web puede dejar su contacto conversando con el bot, en vez de " +
					"irse sin dejar rastro.\n\nPreguntame cómo captura leads.",
				Rules: []simRule{
					{
						Triggers: []string{"como captura leads", "capturar contactos"},
						Label:    "¿Cómo captura leads?",
						Reply: "El bot conversa, detecta interés y pide nombre y email en el momento justo. " +
							"Los contactos te llegan ordenados, listos para el seguimiento. 📋",
					},
					{
						Triggers: []string{"quiero esto para mi negocio", "me interesa"},
						Label:    "¡Quiero esto para mi negocio!",
						Reply:    "¡Excelente decisión! 🚀",
						Next:     domain.StepFinalCallToAction,
					},
				},
			},
			{
				Slug:    "soporte",
				Keyword: "soporte automatico",
				Label:   "🛟 Soporte automático",
				Intro: "🛟 El bot resuelve los reclamos simples y escala los complejos a tu equipo con " +
					"el historial completo.\n\nPreguntame cómo resuelve un reclamo.",
				Rules: []simRule{
					{
						Triggers: []string{"como resuelve un reclamo", "resolver reclamos"},
						Label:    "¿Cómo resuelve un reclamo?",
						Reply: "Identifica el tipo de problema, ofrece la solución guiada paso a paso y, si " +
							"no alcanza, abre un ticket para tu equipo con todo el contexto. 🎫",
					},
					{
						Triggers: []string{"quiero esto para mi negocio", "me interesa"},
						Label:    "¡Quiero esto para mi negocio!",
						Reply:    "¡Excelente decisión! 🚀",
						Next:     domain.StepFinalCallToAction,
					},
				},
			},
			{
				Slug:    "faq",
				Keyword: "preguntas frecuentes",
				Label:   "❓ Preguntas frecuentes",
				Intro: "❓ Sea cual sea tu rubro, siempre hay diez preguntas que se repiten. El bot las " +
					"responde al instante.\n\nPreguntame cómo se cargan.",
				Rules: []simRule{
					{
						Triggers: []string{"como se cargan las preguntas", "cargar preguntas"},
						Label:    "¿Cómo se cargan las preguntas?",
						Reply: "Nos pasás tus preguntas y respuestas y las dejamos configuradas. Después " +
							"podés agregar o editar desde el panel, sin conocimientos técnicos. ✏️",
					},
					{
						Triggers: []string{"quiero esto para mi negocio", "me interesa"},
						Label:    "¡Quiero esto para mi negocio!",
						Reply:    "¡Excelente decisión! 🚀",
						Next:     domain.StepFinalCallToAction,
					},
				},
			},
			{
				Slug:    "otra",
				Keyword: "otra consulta",
				Label:   "💬 Otra consulta",
				Intro: "💬 Contame un poco más de tu negocio y te muestro por dónde arrancaría un bot. " +
					"También podés volver al menú principal.",
				Rules: []simRule{
					{
						Triggers: []string{"cuanto tarda la implementacion", "cuanto tarda"},
						Label:    "¿Cuánto tarda la implementación?",
						Reply: "Entre 5 y 10 días hábiles desde que nos pasás tu contenido. La mayoría de " +
							"los bots salen a producción dentro de las dos semanas. ⏱️",
					},
					{
						Triggers: []string{"quiero esto para mi negocio", "me interesa"},
						Label:    "¡Quiero esto para mi negocio!",
						Reply:    "¡Excelente decisión! 🚀",
						Next:     domain.StepFinalCallToAction,
					},
				},
			},
		},
	},
}

// Disparadores de "quiero la demo completa" dentro del paso final: el
// bot vuelve a pedir nombre y email sin cambiar de paso.
var finalRePromptTriggers = []string{
	"quiero la demo completa",
	"quiero un video",
	"agendar una reunion",
	"quiero una reunion",
}

// verticalByInput busca el rubro cuyo disparador aparece en el texto
// normalizado. Devuelve nil si ninguno matchea.
func verticalByInput(normalized string) *verticalScript {
	for i := range script {
		for _, trigger := range script[i].Triggers {
			if containsTrigger(normalized, trigger) {
				return &script[i]
			}
		}
	}
	return nil
}

func verticalScriptFor(v domain.Vertical) *verticalScript {
	for i := range script {
		if script[i].Vertical == v {
			return &script[i]
		}
	}
	return nil
}

// scenarioByStep localiza el escenario dueño de un paso de simulación.
func scenarioByStep(step domain.StepID) (*verticalScript, *scenarioScript) {
	for i := range script {
		for j := range script[i].Scenarios {
			if domain.SimulationStep(script[i].Vertical, script[i].Scenarios[j].Slug) == step {
				return &script[i], &script[i].Scenarios[j]
			}
		}
	}
	return nil, nil
}
