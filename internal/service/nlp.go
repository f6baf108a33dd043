package service

// Linguistic aids are capabilities of the external NLP provider; the
// editor only forwards to it.

func (e *Editor) Transliterate(text string) (string, error) {
	return e.nlp.Transliterate(text)
}

func (e *Editor) Lemmatize(text string) (map[string]string, error) {
	return e.nlp.Lemmatize(text)
}

func (e *Editor) Stem(text string) (map[string]string, error) {
	return e.nlp.Stem(text)
}

func (e *Editor) Roots(text string) (map[string]string, error) {
	return e.nlp.Roots(text)
}

func (e *Editor) POS(text string) (map[string][]string, error) {
	return e.nlp.POS(text)
}

func (e *Editor) Segment(text string) (map[string]string, error) {
	return e.nlp.Segment(text)
}

func (e *Editor) PMI(text string) (map[string]float64, error) {
	return e.nlp.PMI(text)
}

func (e *Editor) PKL(text string) (map[string]float64, error) {
	return e.nlp.PKL(text)
}
