package models

// Safe Catering document kinds tracked by the archive. The codes are the
// short prefixes the paper system stamped on each monitoring form.
var documentKinds = []struct {
	code        string
	description string
}{
	{"SC1:", "Deliveries-In"},
	{"SC2:", "Chiller Checks"},
	{"SC3:", "Cooking Log"},
	{"SC4:", "Hot Holding"},
	{"SC5:", "Hygiene Inspection"},
	{"SC6:", "Hygiene Training"},
	{"SC7:", "Fitness To Work"},
	{"SC8:", "All-In-One Form (SC1: - SC4: inc)"},
	{"SC9:", "Deliveries-Out"},
	{"OPN:", "Opening Checks"},
	{"CLS:", "Closing Checks"},
}

// KnownDocumentKinds the registered document kind codes, in registry order
func KnownDocumentKinds() []string {
	codes := make([]string, 0, len(documentKinds))
	for _, kind := range documentKinds {
		codes = append(codes, kind.code)
	}
	return codes
}

// DocumentKindDescription look up the human readable description of a kind code
func DocumentKindDescription(code string) (string, bool) {
	for _, kind := range documentKinds {
		if kind.code == code {
			return kind.description, true
		}
	}
	return "", false
}
