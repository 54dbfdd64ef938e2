package rights

// Presets name the eight combinations presets.rs documents.

// ModernPropertyRights is absolute ownership, freely transferable,
// self-recognized — real estate, personal belongings.
type ModernPropertyRights = Mechanic[AbsoluteRights, FreeTransfer, SelfRecognition]

// StockOwnership is fractional, freely transferable, self-recognized —
// corporate stock, shared ownership.
type StockOwnership = Mechanic[PartialRights, FreeTransfer, SelfRecognition]

// StateRecognizedProperty is absolute ownership requiring authority
// recognition to transfer — land titles, vehicle registration.
type StateRecognizedProperty = Mechanic[AbsoluteRights, RestrictedTransfer, AuthorityRecognition]

// FeudalRights is layered, restricted-transfer, authority-recognized —
// vassal systems, hierarchical ownership.
type FeudalRights = Mechanic[LayeredRights, RestrictedTransfer, AuthorityRecognition]

// DAOGovernance is fractional, freely transferable, with legitimacy
// scaling by vote count.
type DAOGovernance = Mechanic[PartialRights, FreeTransfer, ConsensusRecognition]

// PersonalRights is absolute, non-transferable, self-recognized —
// inalienable rights.
type PersonalRights = Mechanic[AbsoluteRights, NonTransferable, SelfRecognition]

// LeaseRights is fractional use-rights, restricted transfer, authority
// recognition — rentals, leasing contracts.
type LeaseRights = Mechanic[PartialRights, RestrictedTransfer, AuthorityRecognition]

// ContestedTerritory is layered, freely transferable, with legitimacy
// scaling by support — territorial disputes, competing factions.
type ContestedTerritory = Mechanic[LayeredRights, FreeTransfer, ConsensusRecognition]
