// Package notify provides a small typed publish/subscribe emitter with
// structured topic keys. It replaces stringly-named, concatenated event
// types with a Topic of base name plus optional context label, while
// keeping the coarse-listener property: subscribing to a base receives
// every context published under it.
//
//	emitter := notify.NewEmitter[MyEvent]()
//	defer emitter.Close()
//
//	sub := emitter.Subscribe(ctx, notify.Topic{Base: "entry_invalid"})
//	emitter.Publish(ctx, notify.Topic{Base: "entry_invalid", Context: "pricing"}, ev)
//
// Delivery is non-blocking; subscribers that stop draining their
// channel are dropped rather than allowed to stall publishers.
package notify
