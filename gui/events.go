// This file is part of 86Box.
//
// 86Box is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// 86Box is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with 86Box.  If not, see <https://www.gnu.org/licenses/>.

package gui

// KeyMod identifies the modifier keys held when a key is pressed.
type KeyMod int

// List of valid key modifiers.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventID identifies the type of an Event.
type EventID int

// List of valid events.
const (
	EventQuit EventID = iota
	EventKeyboard
)

// EventData represents the data that is associated with an event.
type EventData any

// Event is the structure that is passed over the event channel.
type Event struct {
	ID   EventID
	Data EventData
}

// EventDataKeyboard is the data that accompanies EventKeyboard events.
type EventDataKeyboard struct {
	Key  string
	Down bool
	Mod  KeyMod
}

// EventQueueSize is the capacity of the event channel of the backends.
const EventQueueSize = 32

// Push an event onto the channel. The event is dropped if the channel is
// full.
func Push(events chan Event, ev Event) {
	select {
	case events <- ev:
	default:
	}
}
