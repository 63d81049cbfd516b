package events

import "strings"

var (
	nameToType = map[string]EventType{}
	typeToName = map[EventType]string{}
)

func init() {
	register("SessionStarted", EventSessionStarted)
	register("SessionReset", EventSessionReset)
	register("Paused", EventPaused)
	register("Resumed", EventResumed)
	register("DirectionChanged", EventDirectionChanged)
	register("FoodEaten", EventFoodEaten)
	register("SpeedUp", EventSpeedUp)
	register("GameOver", EventGameOver)
}

func register(name string, et EventType) {
	nameToType[name] = et
	typeToName[et] = name
}

// GetEventType returns the EventType for a given name, matching is case-insensitive and accepts an "Event" prefix
func GetEventType(name string) (EventType, bool) {
	name = strings.TrimPrefix(name, "Event")
	for n, et := range nameToType {
		if strings.EqualFold(n, name) {
			return et, true
		}
	}
	return EventNone, false
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "None"
}

func (et EventType) String() string {
	return GetEventName(et)
}
