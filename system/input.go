package system

import (
	"github.com/DanBellman/Wandern-to-kill-a-Box/engine"
	"github.com/DanBellman/Wandern-to-kill-a-Box/event"
	"github.com/DanBellman/Wandern-to-kill-a-Box/parameter"
)

// InputSystem turns the tick's intent frame into player intent and request events
type InputSystem struct {
	world *engine.World

	enabled bool
}

func NewInputSystem(world *engine.World) engine.System {
	s := &InputSystem{
		world: world,
	}
	s.Init()
	return s
}

func (s *InputSystem) Init() {
	s.enabled = true
}

func (s *InputSystem) Name() string {
	return "input"
}

func (s *InputSystem) Priority() int {
	return parameter.PriorityInput
}

func (s *InputSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
	}
}

func (s *InputSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *InputSystem) Update() {
	if !s.enabled {
		return
	}

	frame := &s.world.Resources.Input.Frame
	frame.Clamp()

	if e := s.world.Resources.Player.Entity; e != 0 {
		if p, ok := s.world.Components.Player.GetComponent(e); ok {
			p.Intent = frame.Horizontal
			s.world.Components.Player.SetComponent(e, p)
		}
	}

	if frame.Interact {
		s.world.PushEvent(event.EventShopToggleRequest, nil)
	}
	if frame.PurchaseSlot > 0 {
		s.world.PushEvent(event.EventPurchaseRequest, &event.PurchaseRequestPayload{Slot: frame.PurchaseSlot})
	}
	if frame.CycleWeapon {
		s.world.PushEvent(event.EventWeaponCycleRequest, nil)
	}
}
