package perception

import "github.com/kentwait/issun-mechanics/mechanic"

// Mechanic is the generic perception composer, parameterized by the
// single ObservationPolicy axis.
type Mechanic[P ObservationPolicy] struct{}

// Step attempts detection, computes accuracy and noise on success, and
// then decays the stored confidence (including one this attempt just
// recorded) by elapsed time, whether or not this attempt succeeded.
func (m Mechanic[P]) Step(config Config, state *State, input Input, emitter mechanic.EventEmitter[Event]) {
	var policy P

	emitter.Emit(ObservationAttempted{FactID: input.FactID})

	if reason, ok := policy.CanDetect(config, input.Observer, input.Target, input.Distance); !ok {
		emitter.Emit(DetectionFailed{Reason: reason})
	} else {
		accuracy := policy.CalculateAccuracy(config, input.Observer, input.Target, input.Distance)
		perceived := policy.ApplyNoise(input.GroundTruth, accuracy, config, input.RNG)
		confidence := policy.CalculateConfidence(accuracy)

		state.Perception = &perceived
		state.Accuracy = accuracy
		state.Confidence = confidence
		state.LastUpdated = input.CurrentTick

		emitter.Emit(PerceptionUpdated{Value: perceived, Accuracy: accuracy, Confidence: confidence})
	}

	if input.ElapsedTime > 0 && state.Confidence > 0 {
		decayed := policy.DecayConfidence(state.Confidence, input.ElapsedTime, config)
		if decayed != state.Confidence {
			state.Confidence = decayed
			emitter.Emit(ConfidenceDecayed{NewValue: decayed})
		}
	}
}
