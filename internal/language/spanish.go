package language

import "github.com/mpeirce/logipair/internal/model"

// Spanish returns the Spanish pattern bank. Coverage matches English across
// every rule category and complexity level.
func Spanish() Bank {
	basicConditional := []string{
		"si {p}, entonces {q}",
		"si {p} entonces {q}",
		"{q} si {p}",
		"dado {p}, {q}",
	}
	formalConditional := []string{
		"si {p}, entonces {q}",
		"dado que {p}, {q}",
		"siempre que {p}, {q}",
		"en el caso de que {p}, {q}",
	}
	expertConditional := []string{
		"si {p}, entonces {q}",
		"{p} implica {q}",
		"{p} conlleva que {q}",
	}

	basicConjunction := []string{
		"{p} y {q}",
		"{p}, y {q}",
		"tanto {p} como {q}",
		"{p} así como {q}",
	}
	formalConjunction := []string{
		"{p} y {q}",
		"tanto {p} como {q}",
		"{p} en conjunción con {q}",
		"{p} junto con {q}",
	}

	basicDisjunction := []string{
		"{p} o {q}",
		"o {p} o {q}",
	}
	formalDisjunction := []string{
		"{p} o {q}",
		"o {p} o {q}",
		"al menos uno de {p} y {q}",
	}

	basicNegation := []string{
		"no es el caso que {s}",
		"{s} es falso",
		"{s} no se cumple",
	}
	formalNegation := []string{
		"no es el caso que {s}",
		"es falso que {s}",
		"{s} no es verdad",
	}

	basicConclusion := []string{"por lo tanto", "así", "por ende", "entonces", "en consecuencia"}
	formalConclusion := []string{"por lo tanto", "en consecuencia", "por ende", "así pues", "se sigue que"}
	expertConclusion := []string{"por lo tanto", "se sigue que", "∴"}

	basicPremise := []string{"después de todo,", "porque", "ya que"}
	formalPremise := []string{"después de todo,", "dado que", "esto se sigue porque"}

	return &table{
		code: "es",
		name: "Spanish",
		markers: map[MarkerKind]map[model.Complexity][]string{
			MarkerConditional: levels(basicConditional, basicConditional, formalConditional, expertConditional),
			MarkerConjunction: levels(basicConjunction, basicConjunction, formalConjunction, formalConjunction),
			MarkerDisjunction: levels(basicDisjunction, basicDisjunction, formalDisjunction, formalDisjunction),
			MarkerNegation:    levels(basicNegation, basicNegation, formalNegation, formalNegation),
			MarkerConclusion:  levels(basicConclusion, basicConclusion, formalConclusion, expertConclusion),
			MarkerPremise:     levels(basicPremise, basicPremise, formalPremise, formalPremise),
		},
		skeletons: standardSkeletons(),
		compWhole: levels(
			[]string{"el grupo en su conjunto tiene la propiedad de que {s}", "el equipo en su totalidad es tal que {s}"},
			[]string{"el grupo en su conjunto tiene la propiedad de que {s}", "el equipo en su totalidad es tal que {s}"},
			[]string{"el colectivo tiene la propiedad de que {s}", "la organización en su conjunto es tal que {s}"},
			[]string{"el colectivo tiene la propiedad de que {s}", "la organización en su conjunto es tal que {s}"},
		),
		compPart: levels(
			[]string{"cada miembro tiene la propiedad de que {s}", "cada parte es tal que {s}"},
			[]string{"cada miembro tiene la propiedad de que {s}", "cada parte es tal que {s}"},
			[]string{"cada integrante tiene la propiedad de que {s}", "cada miembro individual es tal que {s}"},
			[]string{"cada integrante tiene la propiedad de que {s}", "cada miembro individual es tal que {s}"},
		),
		exclusivity: levels(
			[]string{"una de estas debe ser verdadera", "estas son las únicas opciones"},
			[]string{"una de estas debe ser verdadera", "estas son las únicas opciones"},
			[]string{"no existe otra posibilidad", "estas agotan las alternativas"},
			[]string{"no existe otra posibilidad", "estas agotan las alternativas"},
		),
	}
}
