package exchange

// Presets name the two combinations mod.rs's worked examples walk
// through.

// FairMarket is direct value comparison with strict fairness
// enforcement — no liquidity/reputation bonus, no urgency relaxation.
type FairMarket = Mechanic[SimpleValuation, FairTradeExecution]

// UrgentMarket adjusts fair value by liquidity and reputation, and
// relaxes its fairness/minimum checks under urgency.
type UrgentMarket = Mechanic[MarketAdjustedValuation, UrgentExecution]
