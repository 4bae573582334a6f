package activities

// Presentation es metadata de UI; no forma parte del modelo de datos.
type Presentation struct {
	Type    Type   `json:"type"`
	Label   string `json:"label"`
	Icon    string `json:"icon"`
	Color   string `json:"color"`
	BgColor string `json:"bg_color"`
}

var catalog = map[Type]Presentation{
	Feeding:    {Type: Feeding, Label: "Food", Icon: "utensils", Color: "#F97316", BgColor: "#FFEDD5"},
	Watering:   {Type: Watering, Label: "Water", Icon: "droplets", Color: "#06B6D4", BgColor: "#CFFAFE"},
	Urination:  {Type: Urination, Label: "Pee", Icon: "droplets", Color: "#3B82F6", BgColor: "#DBEAFE"},
	Defecation: {Type: Defecation, Label: "Poop", Icon: "poop", Color: "#B45309", BgColor: "#FEF3C7"},
	Play:       {Type: Play, Label: "Play", Icon: "gamepad-2", Color: "#A855F7", BgColor: "#F3E8FF"},
	Sleep:      {Type: Sleep, Label: "Sleep", Icon: "moon", Color: "#6366F1", BgColor: "#E0E7FF"},
	Medication: {Type: Medication, Label: "Meds", Icon: "pill", Color: "#EF4444", BgColor: "#FEE2E2"},
	Grooming:   {Type: Grooming, Label: "Groom", Icon: "scissors", Color: "#EC4899", BgColor: "#FCE7F3"},
}

// fallback para tipos desconocidos (no debería pasar con datos validados)
var unknownPresentation = Presentation{Label: "Unknown", Icon: "circle", Color: "#9CA3AF", BgColor: "#F3F4F6"}

// Describe devuelve la metadata de presentación de t.
func Describe(t Type) Presentation {
	if p, ok := catalog[t]; ok {
		return p
	}
	p := unknownPresentation
	p.Type = t
	return p
}

// Catalog devuelve la tabla completa en orden canónico.
func Catalog() []Presentation {
	out := make([]Presentation, 0, len(canonical))
	for _, t := range canonical {
		out = append(out, catalog[t])
	}
	return out
}
