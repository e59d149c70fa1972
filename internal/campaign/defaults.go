package campaign

const defaultURLTemplate = "https://agenciabrasilia.df.gov.br/w/cartao-uniforme-escolar-permite-a-aquisicao-de-itens-para-estudantes-da-rede-publica-em-malharias-credenciadas?redirect=%2Fnoticias&utm_source=dv360&utm_medium=display&utm_campaign=uniforme_escolar&utm_content={reporting_label}"

// Default returns the built-in GDF school uniform campaign: three characters,
// two secondary texts, and four formats.
func Default() Campaign {
	return Campaign{
		Name:       "GDF Uniforme Escolar",
		Headline:   "Cartao Uniforme Escolar.",
		Frame1Text: "Feito na medida certa para 442 mil estudantes das escolas publicas.",
		SecondaryTexts: []string{
			"Desbloqueie o seu cartao no aplicativo BRB Social e confira as malharias credenciadas.",
			"Em caso de duvidas, procure a Regional de Ensino do seu filho.",
		},
		URLTemplate: defaultURLTemplate,
		Characters: []Character{
			{ID: "menina01", Name: "Menina com trancas"},
			{ID: "menino01", Name: "Menino com oculos"},
			{ID: "menino02", Name: "Menino loiro"},
		},
		Formats: []Format{
			{Name: "300x250", Width: 300, Height: 250, Kind: "Medium Rectangle"},
			{Name: "468x60", Width: 468, Height: 60, Kind: "Full Banner"},
			{Name: "728x90", Width: 728, Height: 90, Kind: "Leaderboard"},
			{Name: "970x250", Width: 970, Height: 250, Kind: "Billboard"},
		},
	}
}
