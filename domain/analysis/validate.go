package analysis

import "fmt"

// Validate checks the structural invariants of a result before it is handed
// to the renderer or stored in a session.
func (r *Result) Validate() error {
	if r.Summary == nil {
		return fmt.Errorf("result summary must be present")
	}
	if r.Interpretation.Summary == "" {
		return fmt.Errorf("result interpretation must be present")
	}

	if err := r.validateDetailExclusivity(); err != nil {
		return err
	}

	if r.CorrelationMatrix != nil {
		if err := validateMatrix(r.CorrelationMatrix); err != nil {
			return err
		}
	}
	if r.Model != nil {
		if len(r.Model.Coefficients) != len(r.Model.Features) {
			return fmt.Errorf("model has %d coefficients for %d features",
				len(r.Model.Coefficients), len(r.Model.Features))
		}
	}
	if r.Clusters != nil {
		if err := validateClusters(r.Clusters); err != nil {
			return err
		}
	}
	return nil
}

// validateDetailExclusivity enforces "at most one detail block set"
func (r *Result) validateDetailExclusivity() error {
	count := 0
	if r.Statistics != nil {
		count++
	}
	if r.CorrelationMatrix != nil {
		count++
	}
	if r.Model != nil {
		count++
	}
	if r.Clusters != nil {
		count++
	}
	if r.TTest != nil {
		count++
	}
	if r.Quality != nil {
		count++
	}
	if count > 1 {
		return fmt.Errorf("result carries %d detail blocks, want at most 1", count)
	}
	return nil
}

func validateMatrix(matrix map[string]map[string]float64) error {
	for a, row := range matrix {
		if row[a] != 1.0 {
			return fmt.Errorf("correlation diagonal for %q is %f, want 1.0", a, row[a])
		}
		for b, v := range row {
			if v < -1.0 || v > 1.0 {
				return fmt.Errorf("correlation %q/%q is %f, want [-1, 1]", a, b, v)
			}
			if matrix[b][a] != v {
				return fmt.Errorf("correlation matrix asymmetric at %q/%q", a, b)
			}
		}
	}
	return nil
}

func validateClusters(c *ClusterResult) error {
	if c.K <= 0 {
		return fmt.Errorf("cluster count must be positive, got %d", c.K)
	}
	for i, a := range c.Assignments {
		if a < 0 || a >= c.K {
			return fmt.Errorf("assignment %d is cluster %d, want [0, %d)", i, a, c.K)
		}
	}
	for i, center := range c.Centers {
		if len(center) != len(c.Features) {
			return fmt.Errorf("center %d has %d coordinates for %d features",
				i, len(center), len(c.Features))
		}
	}
	return nil
}
