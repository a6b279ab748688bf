package ecs

import (
	sintax "github.com/Kinterofoto/sintax-ai"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SceneEventType is the Donburi event type for sintax scene events.
// Subscribe to this in your ECS systems to receive pointer, scroll and
// resize events.
var SceneEventType = events.NewEventType[sintax.SceneEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Events are queued on SceneEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) sintax.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event sintax.SceneEvent) {
	SceneEventType.Publish(s.world, event)
}
