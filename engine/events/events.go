package events

import "time"

// Name tags an event on the bus. The payload type for each name is fixed:
// subscribers can type-assert without runtime field checks.
type Name string

const (
	ProjectLoaded    Name = "projectLoaded"
	ModeChanged      Name = "modeChanged"
	ToolChanged      Name = "toolChanged"
	ObjectSelected   Name = "objectSelected"
	ObjectAdded      Name = "objectAdded"
	ObjectUpdated    Name = "objectUpdated"
	ObjectDeleted    Name = "objectDeleted"
	SelectionCleared Name = "selectionCleared"
	Error            Name = "error"
)

// Payload is the closed set of event payloads. Each payload knows its name;
// Publish rejects a payload published under the wrong name.
type Payload interface{ EventName() Name }

type ProjectLoadedPayload struct {
	ProjectID  string
	LayerCount int
}

func (ProjectLoadedPayload) EventName() Name { return ProjectLoaded }

type ModeChangedPayload struct {
	Mode string
}

func (ModeChangedPayload) EventName() Name { return ModeChanged }

type ToolChangedPayload struct {
	Tool string
}

func (ToolChangedPayload) EventName() Name { return ToolChanged }

type ObjectSelectedPayload struct {
	IDs []string
}

func (ObjectSelectedPayload) EventName() Name { return ObjectSelected }

type ObjectAddedPayload struct {
	ID   string
	Kind string
}

func (ObjectAddedPayload) EventName() Name { return ObjectAdded }

type ObjectUpdatedPayload struct {
	ID            string
	ChangedFields []string
}

func (ObjectUpdatedPayload) EventName() Name { return ObjectUpdated }

type ObjectDeletedPayload struct {
	ID string
}

func (ObjectDeletedPayload) EventName() Name { return ObjectDeleted }

type SelectionClearedPayload struct{}

func (SelectionClearedPayload) EventName() Name { return SelectionCleared }

type ErrorPayload struct {
	Op  string
	Err error
}

func (ErrorPayload) EventName() Name { return Error }

// Event is what a handler receives. Transient, never persisted.
type Event struct {
	Name      Name
	Payload   Payload
	Timestamp time.Time
}
