package inventory

// Presets name the combinations presets.rs documents.

// BasicInventory is a fixed-slot, auto-stacking, free RPG inventory.
type BasicInventory = Mechanic[FixedSlotCapacity, AlwaysStack, NoCost]

// UniqueItemInventory is fixed-slot but never stacks, for equipment
// slots and collectibles.
type UniqueItemInventory = Mechanic[FixedSlotCapacity, NeverStack, NoCost]

// WeightLimitedInventory caps total carried weight instead of slot
// count.
type WeightLimitedInventory = Mechanic[WeightBasedCapacity, AlwaysStack, NoCost]

// UnlimitedInventory has no capacity limit at all.
type UnlimitedInventory = Mechanic[UnlimitedCapacity, AlwaysStack, NoCost]

// WarehouseInventory is fixed-slot with a per-slot holding fee.
type WarehouseInventory = Mechanic[FixedSlotCapacity, AlwaysStack, SlotBasedCost]

// TransportInventory is weight-limited with a per-weight holding fee.
type TransportInventory = Mechanic[WeightBasedCapacity, AlwaysStack, WeightBasedCost]

// LimitedStackInventory is fixed-slot with a per-stack quantity cap
// (Minecraft-style).
type LimitedStackInventory = Mechanic[FixedSlotCapacity, LimitedStack, NoCost]

// VaultInventory combines weight-based capacity, a per-stack cap, and
// a per-weight holding fee.
type VaultInventory = Mechanic[WeightBasedCapacity, LimitedStack, WeightBasedCost]
