package entity

// CatalogEntry is one element of the default catalog.
type CatalogEntry struct {
	Name           string
	ConsumptionLPM float64
}

// ElementCatalog returns the elements seeded for an owner who has none.
func ElementCatalog() []CatalogEntry {
	return []CatalogEntry{
		{Name: "Antimônio", ConsumptionLPM: 1.5},
		{Name: "Alumínio", ConsumptionLPM: 4.5},
		{Name: "Arsênio", ConsumptionLPM: 1.5},
		{Name: "Bário", ConsumptionLPM: 4.5},
		{Name: "Cádmio", ConsumptionLPM: 1.5},
		{Name: "Chumbo", ConsumptionLPM: 2.0},
		{Name: "Cobalto", ConsumptionLPM: 1.5},
		{Name: "Cobre", ConsumptionLPM: 1.5},
		{Name: "Cromo", ConsumptionLPM: 4.5},
		{Name: "Estanho FAAS", ConsumptionLPM: 4.5},
		{Name: "Estanho HG", ConsumptionLPM: 1.5},
		{Name: "Ferro", ConsumptionLPM: 2.0},
		{Name: "Manganês", ConsumptionLPM: 1.5},
		{Name: "Mercúrio", ConsumptionLPM: 0},
		{Name: "Molibdênio", ConsumptionLPM: 4.5},
		{Name: "Níquel", ConsumptionLPM: 1.5},
		{Name: "Prata", ConsumptionLPM: 1.5},
		{Name: "Selênio", ConsumptionLPM: 2.0},
		{Name: "Zinco", ConsumptionLPM: 1.5},
		{Name: "Tálio", ConsumptionLPM: 1.5},
	}
}
