// Package stats reports knowledge base statistics.
package stats

// Report describes the knowledge base and the service's privacy posture.
type Report struct {
	CorpusSize      int
	CatalogSize     int
	StorageType     string
	PrivacyFeatures []string
	Capabilities    []string
}

// Service builds stats reports over the static datasets.
type Service struct {
	corpusSize  int
	catalogSize int
}

// New creates a stats service.
func New(corpusSize, catalogSize int) *Service {
	return &Service{corpusSize: corpusSize, catalogSize: catalogSize}
}

// Report returns the current knowledge base statistics. The datasets are
// static, so the report is constant for the process lifetime.
func (s *Service) Report() Report {
	return Report{
		CorpusSize:  s.corpusSize,
		CatalogSize: s.catalogSize,
		StorageType: "in-memory",
		PrivacyFeatures: []string{
			"Anonymous query logging",
			"Feedback stored without content",
			"Local data processing",
		},
		Capabilities: []string{
			"Keyword relevance ranking",
			"Query suggestions",
			"Templated suggestion fallback",
		},
	}
}
