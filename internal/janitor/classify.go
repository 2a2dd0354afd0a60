package janitor

// Classification is the verdict on a scanned resource.
type Classification int

const (
	// Unrecognized resources carry no instance ID and are never deleted.
	Unrecognized Classification = iota
	// Live resources belong to an instance in the ground truth.
	Live
	// Orphaned resources belong to an instance that no longer exists.
	Orphaned
)

func (c Classification) String() string {
	switch c {
	case Live:
		return "live"
	case Orphaned:
		return "orphaned"
	default:
		return "unrecognized"
	}
}

// Classify decides the fate of r against ground truth g.
func Classify(r ScannedResource, g *GroundTruth) Classification {
	if !r.HasInstanceID {
		return Unrecognized
	}
	if g.Contains(r.InstanceID) {
		return Live
	}
	return Orphaned
}
