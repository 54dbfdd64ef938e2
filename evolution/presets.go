package evolution

// Presets name the combinations mod.rs's "Available Presets" list
// documents.

// OrganicGrowth is plant/biological growth slowed by temperature
// deviation, with diminishing returns near its cap.
type OrganicGrowth = Mechanic[Growth, TemperatureBased, DiminishingRate]

// FoodDecay is humidity-accelerated spoilage, exponential as it
// progresses.
type FoodDecay = Mechanic[Decay, HumidityBased, ExponentialRate]

// ResourceRegeneration regrows with diminishing returns and no
// environmental influence.
type ResourceRegeneration = Mechanic[Growth, NoEnvironment, DiminishingRate]

// EquipmentDegradation is constant linear wear, unaffected by
// environment.
type EquipmentDegradation = Mechanic[Decay, NoEnvironment, LinearRate]

// PopulationDynamics cycles between growth and decay under the full
// multi-factor environment.
type PopulationDynamics = Mechanic[Cyclic, ComprehensiveEnvironment, ThresholdRate]

// SeasonalCycle oscillates sinusoidally, linear in rate.
type SeasonalCycle = Mechanic[Oscillating, NoEnvironment, LinearRate]
