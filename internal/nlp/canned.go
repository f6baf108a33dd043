package nlp

// Ensure Canned implements the interface.
var _ Provider = (*Canned)(nil)

// Canned is a Provider that returns preconfigured results. It stands in
// when no real provider is wired up and serves as a test double.
// Zero-value fields come back as empty results, never errors.
type Canned struct {
	Transliterations map[string]string
	Lemmas           map[string]string
	Stems            map[string]string
	RootMap          map[string]string
	POSTags          map[string][]string
	Segments         map[string]string
	PMIScores        map[string]float64
	PKLScores        map[string]float64
}

func (c *Canned) Transliterate(text string) (string, error) {
	if out, ok := c.Transliterations[text]; ok {
		return out, nil
	}
	return text, nil
}

func (c *Canned) Lemmatize(string) (map[string]string, error) { return c.Lemmas, nil }

func (c *Canned) Stem(string) (map[string]string, error) { return c.Stems, nil }

func (c *Canned) Roots(string) (map[string]string, error) { return c.RootMap, nil }

func (c *Canned) POS(string) (map[string][]string, error) { return c.POSTags, nil }

func (c *Canned) Segment(string) (map[string]string, error) { return c.Segments, nil }

func (c *Canned) PMI(string) (map[string]float64, error) { return c.PMIScores, nil }

func (c *Canned) PKL(string) (map[string]float64, error) { return c.PKLScores, nil }
