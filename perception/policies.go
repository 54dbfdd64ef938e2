package perception

// ObservationPolicy determines whether an observer detects a fact at
// all, how accurate the resulting perception is, and how that accuracy
// translates into noise and confidence.
type ObservationPolicy interface {
	// CanDetect reports whether the observer can perceive the target at
	// all, given distance and concealment.
	CanDetect(cfg Config, observer ObserverStats, target TargetStats, distance float64) (DetectionFailureReason, bool)

	// CalculateAccuracy returns how close the perceived value will be
	// to ground truth, in [0.0, 1.0].
	CalculateAccuracy(cfg Config, observer ObserverStats, target TargetStats, distance float64) float64

	// ApplyNoise samples a perceived value around groundTruth, with
	// noise magnitude growing as accuracy falls.
	ApplyNoise(groundTruth GroundTruth, accuracy float64, cfg Config, roll float64) GroundTruth

	// CalculateConfidence derives initial confidence from accuracy.
	CalculateConfidence(accuracy float64) float64

	// DecayConfidence erodes a previously recorded confidence value
	// over elapsed time.
	DecayConfidence(confidence float64, elapsed uint32, cfg Config) float64
}
