// Package ecs provides ECS adapters for sintax's scene event stream.
//
// The primary adapter is [NewDonburiSink], which bridges sintax pointer,
// scroll and resize events into a [Donburi] world as typed events.
// Subscribe to [SceneEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
