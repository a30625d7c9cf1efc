package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks over the loaded datasets and the
// feedback store.
type Service struct {
	corpusSize  int
	catalogSize int
	store       StorePinger
}

// New creates a Service. store can be nil.
func New(corpusSize, catalogSize int, store StorePinger) *Service {
	return &Service{corpusSize: corpusSize, catalogSize: catalogSize, store: store}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if s.corpusSize > 0 {
		checks["corpus"] = CheckOK
	} else {
		checks["corpus"] = CheckError
	}

	if s.catalogSize > 0 {
		checks["catalog"] = CheckOK
	} else {
		checks["catalog"] = CheckError
	}

	if s.store != nil {
		if err := s.store.Ping(ctx); err != nil {
			checks["feedback_store"] = CheckError
		} else {
			checks["feedback_store"] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}
