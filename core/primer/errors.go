package primer

import "pickprimers-core/oligo"

// Sentinel errors returned (wrapped) by New and ReverseComplement.
// They are the same values oligo uses, so errors.Is works across both.
var (
	ErrEmptySequence = oligo.ErrEmpty
	ErrInvalidSymbol = oligo.ErrInvalidBase
)
