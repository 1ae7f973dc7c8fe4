package services

import (
	"slices"

	"github.com/vsinha/craftreq/pkg/domain/entities"
)

// SubstituteRule lets actor state stand in for a component the inventory lacks
type SubstituteRule interface {
	Satisfies(itemType entities.ItemTypeID, batch int) bool
}

// NoSubstitutes never satisfies anything
type NoSubstitutes struct{}

func (NoSubstitutes) Satisfies(entities.ItemTypeID, int) bool { return false }

// ActorState is the slice of the crafting actor a SubstituteRule may consult
type ActorState interface {
	HasTrait(trait string) bool
	Hunger() int
}

// StaticActor is a fixed ActorState, used for configuration and tests
type StaticActor struct {
	Traits      []string
	HungerLevel int
}

func (a StaticActor) HasTrait(trait string) bool { return slices.Contains(a.Traits, trait) }
func (a StaticActor) Hunger() int                { return a.HungerLevel }

const (
	// TraitWebRope lets the actor spin webbing into any amount of rope
	TraitWebRope = "WEB_ROPE"
	// webRopeHungerLimit is the hunger above which the actor is too famished to spin
	webRopeHungerLimit = 300
)

var webRopeTypes = []entities.ItemTypeID{"rope_30", "rope_6"}

// WebRopeRule satisfies any rope component while the actor can spin webbing.
// The amount of rope does not matter.
type WebRopeRule struct {
	Actor ActorState
}

func (r WebRopeRule) Satisfies(itemType entities.ItemTypeID, _ int) bool {
	if r.Actor == nil || !slices.Contains(webRopeTypes, itemType) {
		return false
	}
	return r.Actor.HasTrait(TraitWebRope) && r.Actor.Hunger() <= webRopeHungerLimit
}
