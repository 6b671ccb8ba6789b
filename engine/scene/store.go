package scene

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Hendawy97/giraffe-demo/engine/events"
	"github.com/Hendawy97/giraffe-demo/engine/geom"
)

// Props is a partial update for UpdateObject. Nil fields are left alone.
// Fields that do not apply to the object's kind are rejected.
type Props struct {
	Start     *geom.Vec3
	End       *geom.Vec3
	Height    *float64
	Thickness *float64

	Position *geom.Vec3
	Width    *float64
	WallID   *string
	Swing    *Swing

	Bounds *geom.Bounds

	Color    *string
	Material *string
}

// Store owns every scene object. Pure data and CRUD; it knows nothing about
// rendering. All mutations come from the interaction router or project load —
// the store is not safe for concurrent use.
type Store struct {
	log       *logrus.Logger
	bus       *events.Bus
	objects   map[string]*Object
	order     []string
	selection Selection
}

func NewStore(bus *events.Bus, log *logrus.Logger) *Store {
	if log == nil {
		log = logrus.New()
	}
	return &Store{
		log:     log,
		bus:     bus,
		objects: make(map[string]*Object),
	}
}

func (s *Store) Selection() *Selection { return &s.selection }

// Add validates the object, assigns an id and publishes objectAdded.
// The input is cloned; the caller's copy never aliases store state.
func (s *Store) Add(o *Object) (string, error) {
	c := o.Clone()
	if err := c.Validate(); err != nil {
		return "", err
	}
	if err := s.checkRefs(c); err != nil {
		return "", err
	}
	c.ID = uuid.NewString()
	s.objects[c.ID] = c
	s.order = append(s.order, c.ID)
	s.log.WithFields(logrus.Fields{"id": c.ID, "kind": c.Kind}).Debug("scene: object added")
	s.bus.Publish(events.ObjectAdded, events.ObjectAddedPayload{ID: c.ID, Kind: string(c.Kind)})
	return c.ID, nil
}

// Update applies a partial update. The change is staged on a clone and
// validated before the store is touched, so a rejected update is a no-op.
func (s *Store) Update(id string, p Props) error {
	cur, ok := s.objects[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	next := cur.Clone()
	changed, err := applyProps(next, p)
	if err != nil {
		return err
	}
	if len(changed) == 0 {
		return nil
	}
	if err := next.Validate(); err != nil {
		return err
	}
	if err := s.checkRefs(next); err != nil {
		return err
	}
	s.objects[id] = next
	s.bus.Publish(events.ObjectUpdated, events.ObjectUpdatedPayload{ID: id, ChangedFields: changed})
	return nil
}

// Delete removes the object, prunes it from the selection, and clears the
// wall reference of any door that pointed at it.
func (s *Store) Delete(id string) error {
	obj, ok := s.objects[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(s.objects, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
	if obj.Kind == KindWall {
		for _, other := range s.objects {
			if other.Kind == KindDoor && other.Door.WallID == id {
				other.Door.WallID = ""
			}
		}
	}
	if s.selection.remove(id) && s.selection.IsEmpty() {
		s.bus.Publish(events.SelectionCleared, events.SelectionClearedPayload{})
	}
	s.bus.Publish(events.ObjectDeleted, events.ObjectDeletedPayload{ID: id})
	return nil
}

// Get returns a copy, or nil when absent.
func (s *Store) Get(id string) *Object {
	o, ok := s.objects[id]
	if !ok {
		return nil
	}
	return o.Clone()
}

// List returns copies in insertion order, optionally filtered by kind.
func (s *Store) List(kinds ...Kind) []*Object {
	out := make([]*Object, 0, len(s.order))
	for _, id := range s.order {
		o := s.objects[id]
		if len(kinds) > 0 && !kindIn(o.Kind, kinds) {
			continue
		}
		out = append(out, o.Clone())
	}
	return out
}

func (s *Store) Len() int { return len(s.order) }

// Bounds is the union of all object bounds, for fit-to-view framing.
func (s *Store) Bounds() geom.Bounds {
	b := geom.EmptyBounds()
	for _, id := range s.order {
		b = b.Union(s.objects[id].Bounds())
	}
	return b
}

// Replace swaps the whole scene contents in one step. Used by project load;
// the objects are assumed pre-validated, ids are reassigned. Selection is
// cleared. No per-object events are published — the load path announces
// itself with a single projectLoaded event.
func (s *Store) Replace(objs []*Object) {
	s.objects = make(map[string]*Object, len(objs))
	s.order = s.order[:0]
	for _, o := range objs {
		c := o.Clone()
		c.ID = uuid.NewString()
		s.objects[c.ID] = c
		s.order = append(s.order, c.ID)
	}
	if s.selection.Clear() {
		s.bus.Publish(events.SelectionCleared, events.SelectionClearedPayload{})
	}
}

func (s *Store) checkRefs(o *Object) error {
	if o.Kind != KindDoor || o.Door.WallID == "" {
		return nil
	}
	ref, ok := s.objects[o.Door.WallID]
	if !ok || ref.Kind != KindWall {
		return &ValidationError{Field: "wallId", Reason: "does not reference a live wall"}
	}
	return nil
}

func kindIn(k Kind, kinds []Kind) bool {
	for _, v := range kinds {
		if v == k {
			return true
		}
	}
	return false
}

func applyProps(o *Object, p Props) ([]string, error) {
	var changed []string
	set := func(name string, ok bool, apply func()) error {
		if !ok {
			return &ValidationError{Field: name, Reason: "not applicable to " + string(o.Kind)}
		}
		apply()
		changed = append(changed, name)
		return nil
	}

	if p.Start != nil {
		if err := set("start", o.Kind == KindWall, func() { o.Wall.Start = *p.Start }); err != nil {
			return nil, err
		}
	}
	if p.End != nil {
		if err := set("end", o.Kind == KindWall, func() { o.Wall.End = *p.End }); err != nil {
			return nil, err
		}
	}
	if p.Height != nil {
		switch o.Kind {
		case KindWall:
			o.Wall.Height = *p.Height
		case KindDoor:
			o.Door.Height = *p.Height
		default:
			return nil, &ValidationError{Field: "height", Reason: "not applicable to " + string(o.Kind)}
		}
		changed = append(changed, "height")
	}
	if p.Thickness != nil {
		if err := set("thickness", o.Kind == KindWall, func() { o.Wall.Thickness = *p.Thickness }); err != nil {
			return nil, err
		}
	}
	if p.Position != nil {
		if err := set("position", o.Kind == KindDoor, func() { o.Door.Position = *p.Position }); err != nil {
			return nil, err
		}
	}
	if p.Width != nil {
		if err := set("width", o.Kind == KindDoor, func() { o.Door.Width = *p.Width }); err != nil {
			return nil, err
		}
	}
	if p.WallID != nil {
		if err := set("wallId", o.Kind == KindDoor, func() { o.Door.WallID = *p.WallID }); err != nil {
			return nil, err
		}
	}
	if p.Swing != nil {
		if err := set("type", o.Kind == KindDoor, func() { o.Door.Swing = *p.Swing }); err != nil {
			return nil, err
		}
	}
	if p.Bounds != nil {
		if err := set("bounds", o.Kind == KindVolume, func() { o.Volume.Bounds = *p.Bounds }); err != nil {
			return nil, err
		}
	}
	if p.Color != nil {
		o.Style.Color = *p.Color
		changed = append(changed, "color")
	}
	if p.Material != nil {
		o.Style.Material = *p.Material
		changed = append(changed, "material")
	}
	return changed, nil
}
