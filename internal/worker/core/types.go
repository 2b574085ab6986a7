package core

import "fmt"

// ReplicaIdentity is the (id, count) pair that parameterizes one
// replica's share of the input. It is constructed once at startup and
// never mutated; every ownership decision takes it as an explicit
// argument so no code path depends on initialization order.
type ReplicaIdentity struct {
	ID    int
	Count int
}

func (r ReplicaIdentity) Validate() error {
	if r.Count < 1 {
		return fmt.Errorf("replica count must be >= 1, got %d", r.Count)
	}
	if r.ID < 0 || r.ID >= r.Count {
		return fmt.Errorf("replica id must be in [0, %d), got %d", r.Count, r.ID)
	}
	return nil
}

func (r ReplicaIdentity) String() string {
	return fmt.Sprintf("%d/%d", r.ID, r.Count)
}

// FileMetrics holds the per-file counts emitted into the artifact.
type FileMetrics struct {
	Words   int `json:"words"`
	Letters int `json:"letters"`
}

// ResultSet maps a base filename to its metrics. One replica owns
// exactly one ResultSet per run.
type ResultSet map[string]FileMetrics

// FileFailure records a per-file error that was recovered from. The
// file is excluded from the ResultSet but the failure is surfaced so
// downstream tooling can tell a skipped file from an unowned one.
type FileFailure struct {
	Filename string
	Err      error
}

// Report is the outcome of one replica run: the metrics that were
// computed and the files that failed.
type Report struct {
	Results      ResultSet
	Failures     []FileFailure
	ArtifactPath string
}
