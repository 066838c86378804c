package cart

import (
	"sort"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// Customization is the identity-bearing part of a cart line: the selected
// add-on choices, the removed ingredients, and the special instructions.
// Choice and ingredient collections have set semantics; they are
// deduplicated and canonically ordered on construction so that {1,2} and
// {2,1} produce the same identity. Instructions are trimmed, and an empty
// string means "no instructions".
//
// Two lines for the same menu item with equal Customization values are the
// same line and must be merged, never duplicated.
type Customization struct {
	choices      []kernel.UUID
	removed      []kernel.UUID
	instructions string

	guard guard.ConstructorGuard
}

// NewCustomization normalizes and validates a customization. Every choice
// and removed-ingredient identifier must be a constructed UUID.
func NewCustomization(choices, removed []kernel.UUID, instructions string) (Customization, error) {
	normChoices, err := normalizeIDSet(choices)
	if err != nil {
		return Customization{}, err
	}
	normRemoved, err := normalizeIDSet(removed)
	if err != nil {
		return Customization{}, err
	}

	return Customization{
		choices:      normChoices,
		removed:      normRemoved,
		instructions: strings.TrimSpace(instructions),

		guard: guard.NewConstructorGuard(),
	}, nil
}

// EmptyCustomization returns the customization of a plain, unmodified item.
func EmptyCustomization() Customization {
	c, _ := NewCustomization(nil, nil, "")
	return c
}

func normalizeIDSet(ids []kernel.UUID) ([]kernel.UUID, error) {
	seen := make(map[kernel.UUID]struct{}, len(ids))
	out := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})

	return out, nil
}

// Validate checks that the customization was created via a constructor.
func (c Customization) Validate() error {
	return c.guard.Validate(errInvalidCustomization)
}

// Choices returns a copy of the canonical choice set.
func (c Customization) Choices() []kernel.UUID {
	return append([]kernel.UUID(nil), c.choices...)
}

// Removed returns a copy of the canonical removed-ingredient set.
func (c Customization) Removed() []kernel.UUID {
	return append([]kernel.UUID(nil), c.removed...)
}

// Instructions returns the trimmed special instructions, empty if absent.
func (c Customization) Instructions() string {
	return c.instructions
}

// Key returns the canonical identity string. Equal keys mean equal
// customization identity.
func (c Customization) Key() string {
	var b strings.Builder
	for _, id := range c.choices {
		b.WriteString(id.String())
		b.WriteByte(',')
	}
	b.WriteByte('|')
	for _, id := range c.removed {
		b.WriteString(id.String())
		b.WriteByte(',')
	}
	b.WriteByte('|')
	b.WriteString(c.instructions)

	return b.String()
}

// IsEqual reports whether two customizations share the same identity.
func (c Customization) IsEqual(other Customization) bool {
	return c.Key() == other.Key()
}
