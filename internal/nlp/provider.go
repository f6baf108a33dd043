// Package nlp defines the capability set of the external Arabic NLP
// provider the editor delegates to. The engine never implements these
// capabilities itself and never depends on a concrete provider, only on
// this interface.
package nlp

// Provider exposes one method per linguistic capability. Implementations
// live outside this module; Canned is a replaceable stand-in.
type Provider interface {
	Transliterate(text string) (string, error)
	Lemmatize(text string) (map[string]string, error)
	Stem(text string) (map[string]string, error)
	Roots(text string) (map[string]string, error)
	POS(text string) (map[string][]string, error)
	Segment(text string) (map[string]string, error)
	PMI(text string) (map[string]float64, error)
	PKL(text string) (map[string]float64, error)
}
